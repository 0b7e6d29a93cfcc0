// internal/practice/sessions.go
//
// In-memory session store for the practice server.
// One entry per registered session token; state is lost on restart, which
// is fine for a practice opponent.

package practice

import (
	"errors"
	"sync"
)

// game is the state of one practice game.
type game struct {
	Answer   string // the secret word (always lowercase)
	Guesses  int    // guesses made so far
	Finished bool   // true once won or out of guesses
	Won      bool
}

// sessionStore is a concurrency-safe map of session token → game.
type sessionStore struct {
	mu    sync.RWMutex
	games map[string]*game
}

func newSessionStore() *sessionStore {
	return &sessionStore{games: make(map[string]*game)}
}

func (s *sessionStore) save(token string, g *game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[token] = g
}

func (s *sessionStore) get(token string) (*game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if g, ok := s.games[token]; ok {
		return g, nil
	}
	return nil, errors.New("not found")
}

func (s *sessionStore) exists(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[token]
	return ok
}
