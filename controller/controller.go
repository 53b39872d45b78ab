// Package controller holds the running games. It keeps a registry of
// sessions, gives one client at a time write access to a session through
// lock tokens, and applies moves to the games it owns.
package controller

import (
	"context"
	"sync"

	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// DefaultSessionID is the session used by the single game routes.
const DefaultSessionID = "default"

// Options tune a Controller.
type Options struct {
	// MaxSessions caps the number of live sessions, zero means no cap.
	MaxSessions int
	// Defaults fills the unset size and speed of the config passed to
	// Create.
	Defaults rules.Config
}

// New will initialize a new Controller.
func New(store Store, opts Options) *Controller {
	return &Controller{
		Store:       store,
		MaxSessions: opts.MaxSessions,
		Defaults:    opts.Defaults.WithDefaults(),
	}
}

// Controller applies operations to the sessions in its store.
type Controller struct {
	Store       Store
	MaxSessions int
	Defaults    rules.Config

	// creating serialises the session count check with the insert.
	creating sync.Mutex
}

func (c *Controller) config(cfg rules.Config) rules.Config {
	d := c.Defaults
	if cfg.Width == 0 {
		cfg.Width = d.Width
	}
	if cfg.Height == 0 {
		cfg.Height = d.Height
	}
	if cfg.Speed == 0 {
		cfg.Speed = d.Speed
	}
	return cfg
}

// Create starts a new game. An empty id gets a generated one.
func (c *Controller) Create(ctx context.Context, id string, cfg rules.Config) (*Session, error) {
	c.creating.Lock()
	defer c.creating.Unlock()

	if c.MaxSessions > 0 {
		ids, err := c.Store.ListSessions(ctx)
		if err != nil {
			return nil, err
		}
		if len(ids) >= c.MaxSessions {
			return nil, ErrTooManySessions
		}
	}
	if id == "" {
		id = uuid.NewV4().String()
	}
	game, err := rules.New(c.config(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create game")
	}
	s := NewSession(id, game)
	if err := c.Store.CreateSession(ctx, s); err != nil {
		return nil, err
	}
	activeSessions.Inc()
	log.WithFields(log.Fields{
		"game":     id,
		"width":    game.Config().Width,
		"height":   game.Config().Height,
		"boundary": game.Config().Boundary,
	}).Info("game created")
	return s, nil
}

// Ensure returns the session with id, creating it when missing.
func (c *Controller) Ensure(ctx context.Context, id string, cfg rules.Config) (*Session, error) {
	s, err := c.Store.GetSession(ctx, id)
	if err == nil {
		return s, nil
	}
	if err != ErrNotFound {
		return nil, err
	}
	s, err = c.Create(ctx, id, cfg)
	if err == ErrExists {
		// Lost a race with another creator.
		return c.Store.GetSession(ctx, id)
	}
	return s, err
}

// Status returns a snapshot of the game.
func (c *Controller) Status(ctx context.Context, id string) (rules.State, error) {
	s, err := c.Store.GetSession(ctx, id)
	if err != nil {
		return rules.State{}, err
	}
	return s.State(), nil
}

// write fetches the session and checks the caller may change it.
func (c *Controller) write(ctx context.Context, id string) (*Session, error) {
	s, err := c.Store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Store.Authorize(ctx, id, ContextGetLockToken(ctx)); err != nil {
		return nil, err
	}
	return s, nil
}

// Move advances the game by one tick.
func (c *Controller) Move(ctx context.Context, id string) (rules.MoveResult, rules.State, error) {
	return c.step(ctx, id, nil)
}

// Step changes direction and then advances the game by one tick.
func (c *Controller) Step(ctx context.Context, id string, dir rules.Direction) (rules.MoveResult, rules.State, error) {
	return c.step(ctx, id, &dir)
}

func (c *Controller) step(ctx context.Context, id string, dir *rules.Direction) (rules.MoveResult, rules.State, error) {
	s, err := c.write(ctx, id)
	if err != nil {
		return rules.GameOver, rules.State{}, err
	}
	var (
		res rules.MoveResult
		st  rules.State
	)
	err = s.Do(func(g *rules.Game) error {
		if dir != nil {
			if err := g.SetDirection(*dir); err != nil {
				return err
			}
		}
		wasOver := g.IsOver()
		res = g.Tick()
		observeTick(res, wasOver, g)
		if !wasOver && g.IsOver() {
			log.WithFields(log.Fields{
				"game":  id,
				"cause": g.Cause(),
				"score": g.Score(),
				"turn":  g.Turn(),
			}).Info("game over")
		}
		st = g.State()
		return nil
	})
	if err != nil {
		return rules.GameOver, rules.State{}, err
	}
	return res, st, nil
}

// Turn changes the direction the snake will move on the next tick.
func (c *Controller) Turn(ctx context.Context, id string, dir rules.Direction) error {
	s, err := c.write(ctx, id)
	if err != nil {
		return err
	}
	return s.Do(func(g *rules.Game) error { return g.SetDirection(dir) })
}

// Reset restarts the game with its original configuration.
func (c *Controller) Reset(ctx context.Context, id string) (rules.State, error) {
	s, err := c.write(ctx, id)
	if err != nil {
		return rules.State{}, err
	}
	var st rules.State
	err = s.Do(func(g *rules.Game) error {
		err := g.Reset()
		st = g.State()
		return err
	})
	if err != nil {
		return st, errors.Wrapf(err, "reset game %s", id)
	}
	log.WithField("game", id).Debug("game reset")
	return st, nil
}

// SetSpeed changes the advisory speed of the game.
func (c *Controller) SetSpeed(ctx context.Context, id string, speed float64) error {
	s, err := c.write(ctx, id)
	if err != nil {
		return err
	}
	return s.Do(func(g *rules.Game) error { return g.SetSpeed(speed) })
}

// End removes the game.
func (c *Controller) End(ctx context.Context, id string) error {
	if _, err := c.write(ctx, id); err != nil {
		return err
	}
	if err := c.Store.DeleteSession(ctx, id); err != nil {
		return err
	}
	activeSessions.Dec()
	log.WithField("game", id).Info("game removed")
	return nil
}

// List returns the ids of all sessions.
func (c *Controller) List(ctx context.Context) ([]string, error) {
	return c.Store.ListSessions(ctx)
}

// Lock should lock a specific game using the token in the context, or a new
// one when the context has none. The game being locked does not need to
// exist.
func (c *Controller) Lock(ctx context.Context, id string) (string, error) {
	return c.Store.Lock(ctx, id, ContextGetLockToken(ctx))
}

// Unlock releases the lock held with the token in the context.
func (c *Controller) Unlock(ctx context.Context, id string) error {
	return c.Store.Unlock(ctx, id, ContextGetLockToken(ctx))
}
