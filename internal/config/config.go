// Package config provides YAML-based game configuration loading and
// difficulty management for blockfall.
package config

import (
	"errors"
	"fmt"
)

// Movement policies for left/right/down moves.
const (
	// MovementStrict tests the candidate position and only commits a move
	// that does not collide.
	MovementStrict = "strict"
	// MovementPermissive refuses a move only when the piece already collides
	// where it stands, and otherwise applies it unconditionally.
	MovementPermissive = "permissive"
)

// MaxPieceSize is the side of the largest piece matrix. An explicit spawn
// point must leave this much room to the right and below it.
const MaxPieceSize = 4

// BlockfallConfig contains all configuration for the game.
type BlockfallConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Rules      RulesConfig      `yaml:"rules"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the grid dimensions and where pieces spawn.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"` // -1 centers the piece horizontally
	SpawnY int `yaml:"spawn_y"`
}

// RulesConfig defines movement behaviour.
type RulesConfig struct {
	Movement string `yaml:"movement"` // "strict" or "permissive"
}

// ScoringConfig defines points awarded for clears and drops.
type ScoringConfig struct {
	LinePoints []int `yaml:"line_points"` // Indexed by lines cleared at once, multiplied by level+1
	SoftDrop   int   `yaml:"soft_drop"`   // Per row moved by a soft drop
	HardDrop   int   `yaml:"hard_drop"`   // Per row moved by a hard drop
}

// DifficultyConfig defines the level progression system.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	StartLevel  int               `yaml:"start_level"`
	Progression ProgressionConfig `yaml:"progression"`
	Speed       SpeedConfig       `yaml:"speed"`
}

// ProgressionConfig defines how the level increases.
type ProgressionConfig struct {
	Type          string `yaml:"type"`            // "lines" or "none"
	LinesPerLevel int    `yaml:"lines_per_level"` // Lines needed for each level
}

// SpeedConfig defines the auto-drop interval curve.
type SpeedConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"` // Interval at level 0
	StepMS         int `yaml:"step_ms"`          // Reduction per level
	MinIntervalMS  int `yaml:"min_interval_ms"`  // Floor, also used past the level cap
	LevelCap       int `yaml:"level_cap"`        // Above this level the floor applies
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is allowed and means
// "keep the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// StartLevelForPreset returns the start level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports every problem that would make the engine unusable.
func (c BlockfallConfig) Validate() error {
	var errs []error
	if c.Playfield.Width < 4 || c.Playfield.Height < 4 {
		errs = append(errs, fmt.Errorf("playfield %dx%d is too small (min 4x4)", c.Playfield.Width, c.Playfield.Height))
	}
	if x := c.Playfield.SpawnX; x < -1 || (x >= 0 && x+MaxPieceSize > c.Playfield.Width) {
		errs = append(errs, fmt.Errorf("spawn_x %d leaves no room for a %d-wide piece", x, MaxPieceSize))
	}
	if y := c.Playfield.SpawnY; y < 0 || y+MaxPieceSize > c.Playfield.Height {
		errs = append(errs, fmt.Errorf("spawn_y %d leaves no room for a %d-tall piece", y, MaxPieceSize))
	}
	switch c.Rules.Movement {
	case MovementStrict, MovementPermissive:
	default:
		errs = append(errs, fmt.Errorf("unknown movement policy %q", c.Rules.Movement))
	}
	if len(c.Scoring.LinePoints) == 0 {
		errs = append(errs, errors.New("scoring.line_points must not be empty"))
	}
	s := c.Difficulty.Speed
	if s.BaseIntervalMS <= 0 || s.MinIntervalMS <= 0 {
		errs = append(errs, errors.New("drop intervals must be positive"))
	}
	if c.Difficulty.StartLevel < 0 {
		errs = append(errs, fmt.Errorf("start_level %d is negative", c.Difficulty.StartLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
