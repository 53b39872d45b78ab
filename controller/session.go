package controller

import (
	"sync"
	"time"

	"github.com/Abhisg5/snakeAPI/rules"
)

var now = time.Now

// Session is one game held by the controller. All access to the game goes
// through the session so concurrent requests never touch it at once.
type Session struct {
	ID      string
	Created time.Time

	mu         sync.Mutex
	game       *rules.Game
	lastActive time.Time
}

// NewSession wraps game in a session with the given id.
func NewSession(id string, game *rules.Game) *Session {
	t := now()
	return &Session{
		ID:         id,
		Created:    t,
		game:       game,
		lastActive: t,
	}
}

// Do runs fn with exclusive access to the game and marks the session as
// active.
func (s *Session) Do(fn func(*rules.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActive = now()
	return fn(s.game)
}

// State returns a snapshot of the game.
func (s *Session) State() rules.State {
	var st rules.State
	_ = s.Do(func(g *rules.Game) error {
		st = g.State()
		return nil
	})
	return st
}

// LastActive is the last time the game was read or changed.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
