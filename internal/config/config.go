// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Physics TetrisPhysics `yaml:"physics"`
	Rules   TetrisRules   `yaml:"rules"`
	Display TetrisDisplay `yaml:"display"`
}

// TetrisPhysics defines fall parameters.
type TetrisPhysics struct {
	FallSpeed          float64 `yaml:"fall_speed"`           // Cells per second
	SoftDropMultiplier float64 `yaml:"soft_drop_multiplier"` // Applied while soft drop is held
}

// TetrisRules toggles optional gameplay rules.
type TetrisRules struct {
	HardDrop bool `yaml:"hard_drop"`
}

// TetrisDisplay controls what the renderer shows next to the board.
type TetrisDisplay struct {
	ShowNext bool `yaml:"show_next"`
	ShowHelp bool `yaml:"show_help"`
}

// CorePhysics converts the config into gameplay physics.
func (c TetrisConfig) CorePhysics() core.Physics {
	return core.Physics{
		FallSpeed:          c.Physics.FallSpeed,
		SoftDropMultiplier: c.Physics.SoftDropMultiplier,
		HardDrop:           c.Rules.HardDrop,
	}
}

// Validate checks that the config describes a playable game.
func (c TetrisConfig) Validate() error {
	if c.Physics.FallSpeed <= 0 {
		return fmt.Errorf("config: fall_speed must be positive, got %v", c.Physics.FallSpeed)
	}
	if c.Physics.SoftDropMultiplier < 1 {
		return fmt.Errorf("config: soft_drop_multiplier must be at least 1, got %v", c.Physics.SoftDropMultiplier)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// SpeedScaleForPreset returns the fall speed multiplier for a difficulty preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyTetrisPreset scales the fall speed for the given preset.
// The fixed preset leaves the configured speed untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	cfg.Physics.FallSpeed *= SpeedScaleForPreset(preset)
}
