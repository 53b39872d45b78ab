package controller

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Abhisg5/snakeAPI/rules"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, max int) *Controller {
	return New(InstrumentStore(InMemStore()), Options{
		MaxSessions: max,
		Defaults:    rules.Config{Width: 10, Height: 10},
	})
}

// parkFood moves the food out of the way of a snake heading right from the
// center.
func parkFood(t *testing.T, c *Controller, id string) {
	s, err := c.Store.GetSession(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, s.Do(func(g *rules.Game) error {
		return g.SetFood(rules.Point{X: 0, Y: 0})
	}))
}

func TestController_Create(t *testing.T) {
	ctx := context.Background()
	c := newController(t, 0)

	s, err := c.Create(ctx, "", rules.Config{Seed: 3})
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	st := s.State()
	require.Equal(t, 10, st.Width)
	require.Equal(t, 10, st.Height)
	require.Equal(t, 1, st.Length)
	require.Equal(t, rules.Wall, st.Boundary)

	s2, err := c.Create(ctx, "named", rules.Config{Width: 5, Height: 4, Boundary: rules.Wrap})
	require.NoError(t, err)
	require.Equal(t, "named", s2.ID)
	require.Equal(t, 5, s2.State().Width)
	require.Equal(t, rules.Wrap, s2.State().Boundary)

	_, err = c.Create(ctx, "named", rules.Config{})
	require.Equal(t, ErrExists, err)

	_, err = c.Create(ctx, "", rules.Config{Width: -1})
	require.Equal(t, rules.ErrInvalidConfig, errors.Cause(err))

	ids, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 2)
}

func TestController_MaxSessions(t *testing.T) {
	ctx := context.Background()
	c := newController(t, 2)

	_, err := c.Create(ctx, "a", rules.Config{})
	require.NoError(t, err)
	_, err = c.Create(ctx, "b", rules.Config{})
	require.NoError(t, err)
	_, err = c.Create(ctx, "c", rules.Config{})
	require.Equal(t, ErrTooManySessions, err)

	require.NoError(t, c.End(ctx, "a"))
	_, err = c.Create(ctx, "c", rules.Config{})
	require.NoError(t, err)
}

// slowStore widens the window between counting and inserting sessions.
type slowStore struct {
	Store
}

func (s slowStore) ListSessions(ctx context.Context) ([]string, error) {
	time.Sleep(10 * time.Millisecond)
	return s.Store.ListSessions(ctx)
}

func TestController_MaxSessionsConcurrent(t *testing.T) {
	ctx := context.Background()
	c := New(slowStore{InMemStore()}, Options{MaxSessions: 1})

	var created, rejected uint32
	var wg sync.WaitGroup
	wg.Add(10)
	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			_, err := c.Create(ctx, "", rules.Config{})
			switch err {
			case nil:
				atomic.AddUint32(&created, 1)
			case ErrTooManySessions:
				atomic.AddUint32(&rejected, 1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint32(1), created)
	require.Equal(t, uint32(9), rejected)
	ids, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 1)
}

func TestController_NotFound(t *testing.T) {
	ctx := context.Background()
	c := newController(t, 0)

	_, err := c.Status(ctx, "missing")
	require.Equal(t, ErrNotFound, err)
	_, _, err = c.Move(ctx, "missing")
	require.Equal(t, ErrNotFound, err)
	require.Equal(t, ErrNotFound, c.Turn(ctx, "missing", rules.Up))
	_, err = c.Reset(ctx, "missing")
	require.Equal(t, ErrNotFound, err)
	require.Equal(t, ErrNotFound, c.SetSpeed(ctx, "missing", 2))
	require.Equal(t, ErrNotFound, c.End(ctx, "missing"))
}

func TestController_Move(t *testing.T) {
	ctx := context.Background()
	c := newController(t, 0)

	s, err := c.Create(ctx, "", rules.Config{})
	require.NoError(t, err)
	parkFood(t, c, s.ID)

	res, st, err := c.Move(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, rules.Continue, res)
	require.Equal(t, rules.Point{X: 6, Y: 5}, st.Head())
	require.Equal(t, 1, st.Turn)

	require.NoError(t, c.Turn(ctx, s.ID, rules.Down))
	res, st, err = c.Move(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, rules.Continue, res)
	require.Equal(t, rules.Point{X: 6, Y: 6}, st.Head())

	res, st, err = c.Step(ctx, s.ID, rules.Left)
	require.NoError(t, err)
	require.Equal(t, rules.Continue, res)
	require.Equal(t, rules.Point{X: 5, Y: 6}, st.Head())
	require.Equal(t, rules.Left, st.Direction)

	err = c.Turn(ctx, s.ID, rules.Direction(9))
	require.Equal(t, rules.ErrInvalidDirection, errors.Cause(err))
	_, _, err = c.Step(ctx, s.ID, rules.Direction(9))
	require.Equal(t, rules.ErrInvalidDirection, errors.Cause(err))
}

func TestController_GameOver(t *testing.T) {
	ctx := context.Background()
	c := newController(t, 0)

	s, err := c.Create(ctx, "", rules.Config{Width: 3, Height: 3})
	require.NoError(t, err)
	parkFood(t, c, s.ID)

	// Center of a 3x3 grid is one step from the right wall.
	res, _, err := c.Move(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, rules.Continue, res)

	res, st, err := c.Move(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, rules.GameOver, res)
	require.True(t, st.GameOver)
	require.Equal(t, rules.CauseWallCollision, st.Cause)

	res, _, err = c.Move(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, rules.GameOver, res)

	st, err = c.Reset(ctx, s.ID)
	require.NoError(t, err)
	require.False(t, st.GameOver)
	require.Equal(t, 0, st.Score)
	require.Equal(t, 1, st.Length)
}

func TestController_SetSpeed(t *testing.T) {
	ctx := context.Background()
	c := newController(t, 0)

	s, err := c.Create(ctx, "", rules.Config{})
	require.NoError(t, err)

	require.NoError(t, c.SetSpeed(ctx, s.ID, 2.5))
	st, err := c.Status(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, 2.5, st.Speed)

	err = c.SetSpeed(ctx, s.ID, -1)
	require.Equal(t, rules.ErrInvalidConfig, errors.Cause(err))
}

func TestController_Lock(t *testing.T) {
	ctx := context.Background()
	c := newController(t, 0)

	s, err := c.Create(ctx, "", rules.Config{})
	require.NoError(t, err)
	parkFood(t, c, s.ID)

	// Lock key.
	tok, err := c.Lock(ctx, s.ID)
	require.NoError(t, err)

	// Lock again (without token).
	_, err = c.Lock(ctx, s.ID)
	require.Equal(t, ErrIsLocked, err)

	// Writers without the token are rejected, readers are not.
	_, _, err = c.Move(ctx, s.ID)
	require.Equal(t, ErrIsLocked, err)
	require.Equal(t, ErrIsLocked, c.Turn(ctx, s.ID, rules.Up))
	require.Equal(t, ErrIsLocked, c.End(ctx, s.ID))
	_, err = c.Status(ctx, s.ID)
	require.NoError(t, err)

	// Lock again (with token).
	lctx := ContextWithLockToken(ctx, tok)
	tok2, err := c.Lock(lctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, tok, tok2)

	_, _, err = c.Move(lctx, s.ID)
	require.NoError(t, err)

	// Unlock (with token).
	require.NoError(t, c.Unlock(lctx, s.ID))
	_, _, err = c.Move(ctx, s.ID)
	require.NoError(t, err)
}

func TestController_Ensure(t *testing.T) {
	ctx := context.Background()
	c := newController(t, 0)

	s, err := c.Ensure(ctx, DefaultSessionID, rules.Config{})
	require.NoError(t, err)
	require.Equal(t, DefaultSessionID, s.ID)

	again, err := c.Ensure(ctx, DefaultSessionID, rules.Config{})
	require.NoError(t, err)
	require.True(t, s == again)

	ids, err := c.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{DefaultSessionID}, ids)
}

func TestSession_LastActive(t *testing.T) {
	defer func() { now = time.Now }()
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	now = func() time.Time { return t0 }

	g, err := rules.New(rules.Config{Width: 4, Height: 4, Speed: 1})
	require.NoError(t, err)
	s := NewSession("x", g)
	require.Equal(t, t0, s.Created)
	require.Equal(t, t0, s.LastActive())

	now = func() time.Time { return t0.Add(time.Minute) }
	_ = s.State()
	require.Equal(t, t0.Add(time.Minute), s.LastActive())
	require.Equal(t, t0, s.Created)
}

func TestContextLockToken(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, "", ContextGetLockToken(ctx))
	require.Equal(t, "abc", ContextGetLockToken(ContextWithLockToken(ctx, "abc")))
}
