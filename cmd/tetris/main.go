// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play in the local terminal
//	tetris serve             - Start SSH server for remote play
//	tetris sim               - Run a headless game with a random player
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--config <path>        - Path to a custom tetris.yaml
//	--difficulty <preset>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game that runs in the terminal or over SSH.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game with a random player

Examples:
  tetris play
  tetris play --difficulty hard
  tetris serve --ssh :2222
  tetris sim --seed 42 --ticks 6000`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger returns a stderr logger for the given command.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// loadConfig resolves the tetris configuration from the global flags.
// Skipped config files are logged as warnings.
func loadConfig(logger *log.Logger) (config.TetrisConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	cfg, err := config.LoadTetris(flagConfig, func(path string, err error) {
		logger.Warn("ignoring config file", "path", path, "error", err)
	})
	if err != nil {
		return cfg, err
	}

	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, nil
}
