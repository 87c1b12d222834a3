// Package registry provides a global registry for display/input surfaces.
// Surfaces register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/game"
)

// Surface drives a game session: it polls keys, measures tick time, calls
// Session.Tick and draws the returned frame until the frame requests quit.
type Surface interface {
	// ID returns a unique identifier for this surface (e.g., "bubbletea", "tcell").
	// Used for the --surface flag.
	ID() string

	// Title returns a short human-readable description.
	Title() string

	// Run blocks until the player quits, ctx is cancelled or the terminal fails.
	Run(ctx context.Context, s *game.Session, opts Options) error
}

// Options carries what every surface needs besides the session.
type Options struct {
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Listener Listener
}

// Listener observes every tick after it has been drawn.
type Listener interface {
	Observe(res game.StepResult)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(res game.StepResult)

// Observe calls f(res).
func (f ListenerFunc) Observe(res game.StepResult) {
	f(res)
}

// Notify forwards res to the listener if one is set.
func (o Options) Notify(res game.StepResult) {
	if o.Listener != nil {
		o.Listener.Observe(res)
	}
}

// SurfaceInfo contains metadata about a registered surface.
type SurfaceInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new surface.
type Factory func() Surface

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a surface factory to the registry.
// Typically called from a surface's init() function.
// Panics if a surface with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: surface %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered surfaces, sorted by ID.
func List() []SurfaceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SurfaceInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SurfaceInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a surface by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Surface, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown surface %q", id)
	}

	return f(), nil
}

// Exists checks if a surface with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
