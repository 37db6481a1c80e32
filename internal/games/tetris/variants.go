package tetris

import (
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Variant IDs.
const (
	VariantMarathon = "marathon"
	VariantClassic  = "classic"
	VariantWide     = "wide"
)

func init() {
	registry.Register(VariantMarathon, func(cfg config.BlockfallConfig, seed int64) registry.Game {
		return NewMarathon(cfg, seed)
	})
	registry.Register(VariantClassic, func(cfg config.BlockfallConfig, seed int64) registry.Game {
		return NewClassic(cfg, seed)
	})
	registry.Register(VariantWide, func(cfg config.BlockfallConfig, seed int64) registry.Game {
		return NewWide(cfg, seed)
	})
}

// NewMarathon creates the standard game with the config as loaded.
func NewMarathon(cfg config.BlockfallConfig, seed int64) *Engine {
	return New(cfg, seed)
}

// NewClassic creates a game with permissive movement: moves are refused
// only when the piece already collides where it stands.
func NewClassic(cfg config.BlockfallConfig, seed int64) *Engine {
	cfg.Rules.Movement = config.MovementPermissive
	e := New(cfg, seed)
	e.id = VariantClassic
	e.title = "Classic (permissive moves)"
	return e
}

// NewWide creates a game on a 16×24 playfield.
func NewWide(cfg config.BlockfallConfig, seed int64) *Engine {
	cfg.Playfield.Width = 16
	cfg.Playfield.Height = 24
	if cfg.Playfield.SpawnX >= cfg.Playfield.Width {
		cfg.Playfield.SpawnX = -1
	}
	e := New(cfg, seed)
	e.id = VariantWide
	e.title = "Wide (16x24)"
	return e
}
