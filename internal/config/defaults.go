package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Physics: TetrisPhysics{
			FallSpeed:          2.0,
			SoftDropMultiplier: 10.0,
		},
		Rules: TetrisRules{
			HardDrop: true,
		},
		Display: TetrisDisplay{
			ShowNext: true,
			ShowHelp: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
