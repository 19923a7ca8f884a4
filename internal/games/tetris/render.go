package tetris

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// Layout constants, in terminal cells.
const (
	cellW          = 2                      // Each grid cell is drawn two characters wide
	hudHeight      = 1                      // Status line above the board
	boardW         = core.Columns*cellW + 2 // Including the frame
	boardH         = core.Rows + 2          // Including the frame
	previewW       = 4*cellW + 4            // Widest piece plus frame and padding
	previewGap     = 2                      // Space between board and preview
	previewLines   = 3                      // Lines per previewed piece
	requiredHeight = hudHeight + boardH
)

// requiredWidth returns the minimum screen width for the layout.
func requiredWidth(showNext bool) int {
	if showNext {
		return boardW + previewGap + previewW
	}
	return boardW
}

// kindColors assigns the conventional color to each piece kind.
var kindColors = [core.KindCount]platformcore.Color{
	core.KindO: platformcore.ColorYellow,
	core.KindI: platformcore.ColorCyan,
	core.KindT: platformcore.ColorMagenta,
	core.KindL: platformcore.ColorOrange,
	core.KindJ: platformcore.ColorBlue,
	core.KindS: platformcore.ColorGreen,
	core.KindZ: platformcore.ColorRed,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", requiredWidth(g.cfg.Display.ShowNext), requiredHeight))
		return
	}

	boardX := (dst.Width() - requiredWidth(g.cfg.Display.ShowNext)) / 2
	boardY := hudHeight

	g.renderBoard(dst, boardX, boardY)
	if g.cfg.Display.ShowNext {
		g.renderPreview(dst, boardX+boardW+previewGap, boardY)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Tetris — Lines: %d  Pieces: %d", g.lines, g.pieces)
	dst.DrawText(0, 0, hud)
}

// renderBoard draws the frame, the locked cells and the falling piece.
// Grid row 0 is the bottom, so rows are flipped onto the screen.
func (g *Game) renderBoard(dst *platformcore.Screen, x, y int) {
	dst.DrawBox(platformcore.NewRect(x, y, boardW, boardH), platformcore.ColorGray)

	occupied := g.state.Grid().Occupancy()
	for row := 0; row < core.Rows; row++ {
		for col := 0; col < core.Columns; col++ {
			sx, sy := boardCell(x, y, row, col)
			if occupied[row][col] {
				dst.DrawTextColor(sx, sy, "██", platformcore.ColorWhite)
			} else {
				dst.DrawTextColor(sx, sy, " .", platformcore.ColorGray)
			}
		}
	}

	color := kindColors[g.state.Falling().Kind]
	for _, c := range g.state.FallingCells() {
		if !core.InBounds(c) {
			continue
		}
		sx, sy := boardCell(x, y, c.Row, c.Column)
		dst.DrawTextColor(sx, sy, "██", color)
	}
}

// boardCell converts a grid cell to the screen position of its left character.
func boardCell(boardX, boardY, row, col int) (int, int) {
	return boardX + 1 + col*cellW, boardY + 1 + (core.Rows - 1 - row)
}

// renderPreview draws the next queue as small shapes, top to bottom in deal order.
func (g *Game) renderPreview(dst *platformcore.Screen, x, y int) {
	dst.DrawBox(platformcore.NewRect(x, y, previewW, boardH), platformcore.ColorGray)
	dst.DrawText(x+2, y+1, "NEXT")

	for i, kind := range g.state.Upcoming() {
		top := y + 3 + i*previewLines
		for _, c := range previewCells(kind) {
			dst.DrawTextColor(x+2+c.Column*cellW, top+c.Row, "██", kindColors[kind])
		}
	}
}

// previewCells returns the spawn shape of a kind normalized to a top-left origin,
// with Row growing downward.
func previewCells(kind core.Kind) [4]core.Cell {
	cells := core.Spawn(kind).Snap()
	minCol, maxRow := cells[0].Column, cells[0].Row
	for _, c := range cells[1:] {
		minCol = min(minCol, c.Column)
		maxRow = max(maxRow, c.Row)
	}
	for i, c := range cells {
		cells[i] = core.Cell{Row: maxRow - c.Row, Column: c.Column - minCol}
	}
	return cells
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := platformcore.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	drawCentered(dst, box, line1, box.Y+1)
	drawCentered(dst, box, line2, box.Y+3)
}

// drawCentered draws text centered within the box on line y.
func drawCentered(dst *platformcore.Screen, box platformcore.Rect, text string, y int) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawText(x, y, text)
}
