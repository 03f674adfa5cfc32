// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used by default when no DB_PATH is configured, and in tests.
//
// Characteristics:
//   - Stores copies of *game.Game keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/fourword/internal/game"
)

// ErrNotFound is returned by Get for unknown game IDs.
var ErrNotFound = errors.New("store: game not found")

// Store defines the persistence interface for game sessions.
// Implementations may be backed by memory (this file) or SQLite (sqlite.go).
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete removes a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

// Save stores a copy so later mutations by the caller don't leak in.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g.Clone()
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}
