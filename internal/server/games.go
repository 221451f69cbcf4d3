package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/decklab/chainquiz/internal/deck"
	"github.com/decklab/chainquiz/internal/engine"
)

// Games holds the active sessions, keyed by game id. Engine state is not
// safe for concurrent use, so all access goes through Do under the lock.
type Games struct {
	mu     sync.Mutex
	active map[string]*engine.Game
}

func NewGames() *Games {
	return &Games{active: make(map[string]*engine.Game)}
}

// Create registers a new game for the player and returns its id.
func (g *Games) Create(playerName string) string {
	id := uuid.NewString()
	g.mu.Lock()
	g.active[id] = engine.NewGame(playerName, deck.Catalog())
	g.mu.Unlock()
	return id
}

// Do runs fn against the game with the given id while holding the lock.
// It reports false if no such game exists.
func (g *Games) Do(id string, fn func(*engine.Game)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	game, ok := g.active[id]
	if !ok {
		return false
	}
	fn(game)
	return true
}

// Remove takes the game out of the registry, returning it for final
// processing. Subsequent operations on the id fail with not found.
func (g *Games) Remove(id string) (*engine.Game, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	game, ok := g.active[id]
	if ok {
		delete(g.active, id)
	}
	return game, ok
}
