// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the engine contract the controller drives.
// Implementations contain pure logic with no Bubble Tea dependency; the
// platform handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "marathon").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset empties the playfield, zeroes the counters and spawns a piece.
	Reset()

	// MovePieceLeft, MovePieceRight and MovePieceDown translate the active
	// piece by one cell. They report whether the piece moved.
	MovePieceLeft() bool
	MovePieceRight() bool
	MovePieceDown() bool

	// RotatePiece rotates clockwise, reverting if the result collides.
	RotatePiece() bool

	// HasCollision reports whether the active piece overlaps a filled cell
	// or lies outside the playfield.
	HasCollision() bool

	// LockPiece copies the active piece into the playfield.
	LockPiece()

	// Drop runs one gravity step, locking and spawning when blocked.
	Drop() core.DropResult

	// SoftDrop is a player-initiated Drop that scores soft drop points.
	SoftDrop() core.DropResult

	// HardDrop moves the piece down until blocked and locks it.
	HardDrop() core.DropResult

	// DropInterval returns the auto-drop interval for the current level.
	DropInterval() time.Duration

	// State returns a read-only snapshot.
	State() core.GameState
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game from the loaded configuration and an RNG seed.
// Factories may adjust their copy of the config for the variant.
type Factory func(cfg config.BlockfallConfig, seed int64) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a game package's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(config.DefaultBlockfallConfig(), 1)
	titles[id] = g.Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg config.BlockfallConfig, seed int64) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg, seed), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
