package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the hardcoded default configuration.
// It matches defaults/blockfall.yaml.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Playfield: PlayfieldConfig{
			Width:  10,
			Height: 20,
			SpawnX: -1,
			SpawnY: 0,
		},
		Rules: RulesConfig{
			Movement: MovementStrict,
		},
		Scoring: ScoringConfig{
			LinePoints: []int{0, 40, 100, 300, 1200},
			SoftDrop:   1,
			HardDrop:   2,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartLevel: 0,
			Progression: ProgressionConfig{
				Type:          "lines",
				LinesPerLevel: 10,
			},
			Speed: SpeedConfig{
				BaseIntervalMS: 1000,
				StepMS:         100,
				MinIntervalMS:  100,
				LevelCap:       10,
			},
		},
	}
}
