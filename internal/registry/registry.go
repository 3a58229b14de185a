// Package registry holds the catalog of playable games. Games register a
// factory from an init function; the CLI looks them up by ID without
// importing game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mkarwowski/pacmaze/internal/core"
)

// Game is the interface every playable game implements. The platform drives
// it with a fixed tick: Reset, then Step/Render per tick.
type Game interface {
	// ID returns a stable identifier used on the command line.
	ID() string
	// Title returns the human-readable name shown in the UI.
	Title() string
	// Reset (re)initializes the game for the given runtime configuration.
	Reset(cfg core.RuntimeConfig)
	// Step advances the simulation by one tick.
	Step(input core.InputFrame) core.StepResult
	// Render draws the current state into the screen buffer.
	Render(screen *core.Screen)
	// State reports score, lives and game-over status.
	State() core.GameState
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a game factory under its ID. It panics on duplicate
// registration, which indicates conflicting init functions.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q registered twice", id))
	}
	factories[id] = f
}

// New creates a game instance by ID.
func New(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// IDs returns all registered game IDs in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
