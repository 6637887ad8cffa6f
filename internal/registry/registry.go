// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the CLI, the menu and
// the SSH server discover every stage pack without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// Game is what the platform drives: one Step per tick, one Render per frame.
// Implementations keep Bubble Tea out of their logic.
type Game interface {
	// ID keys CLI commands and stored scores, e.g. "chase" or "chase_mini".
	ID() string
	Title() string

	// Reset (re)builds the game for the given screen, tick rate and seed.
	// The platform calls it once before the first Step.
	Reset(cfg core.RuntimeConfig)

	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen the platform has already cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. The title is read once from a throwaway
// instance. Registering an empty or duplicate id panics.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: f().Title()}, factory: f}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
