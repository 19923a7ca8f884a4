package tetris

import (
	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// actionIntents maps platform actions to gameplay intents.
// Meta actions (pause, restart, quit) have no intent.
var actionIntents = map[platformcore.Action]core.Intent{
	platformcore.ActionRotateCW:  core.RotateClockwise,
	platformcore.ActionRotateCCW: core.RotateCounterclockwise,
	platformcore.ActionLeft:      core.ShiftLeft,
	platformcore.ActionRight:     core.ShiftRight,
	platformcore.ActionSoftDrop:  core.SoftDrop,
	platformcore.ActionHardDrop:  core.HardDrop,
}

// FramePlayer is the human player: it turns one tick of keyboard actions
// into the gameplay intent set, preserving arrival order.
type FramePlayer struct {
	Frame platformcore.InputFrame
}

// Intents returns the intents carried by the frame.
func (p FramePlayer) Intents() core.Intents {
	var out core.Intents
	for _, a := range p.Frame.Actions() {
		if intent, ok := actionIntents[a]; ok {
			out = out.Add(intent)
		}
	}
	return out
}
