package testsuite

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Abhisg5/snakeAPI/controller"
	"github.com/Abhisg5/snakeAPI/rules"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, id string) *controller.Session {
	g, err := rules.New(rules.Config{Width: 10, Height: 10, Speed: 1, Seed: 1})
	require.NoError(t, err)
	return controller.NewSession(id, g)
}

func testStoreLock(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()

	ctx := context.Background()

	// Lock random key.
	tok, err := s.Lock(ctx, key, "")
	require.Nil(t, err)
	require.NotEmpty(t, tok)

	// Lock with valid token, no error same token returned.
	tok2, err := s.Lock(ctx, key, tok)
	require.Nil(t, err)
	require.Equal(t, tok, tok2)

	// Lock without token while held.
	_, err = s.Lock(ctx, key, "")
	require.Equal(t, controller.ErrIsLocked, err)

	// Unlock without valid token returns error.
	err = s.Unlock(ctx, key, "")
	require.Error(t, err)

	// Unlock with valid token no error.
	err = s.Unlock(ctx, key, tok)
	require.Nil(t, err)

	// Unlock where lock doesn't exist returns no error.
	err = s.Unlock(ctx, key+"-missing", "")
	require.Nil(t, err)
}

func testStoreLockExpiry(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Negative expiry, will always be expired.
	controller.LockExpiry = -10 * time.Second
	defer func() { controller.LockExpiry = 5 * time.Second }()

	// Lock random key.
	tok, err := s.Lock(ctx, key, "")
	require.Nil(t, err)
	require.NotEmpty(t, tok)

	// Lock (with token) has expired.
	tok2, err := s.Lock(ctx, key, tok)
	require.Nil(t, err)
	require.Equal(t, tok, tok2)

	// Expired locks authorize anyone.
	require.NoError(t, s.Authorize(ctx, key, ""))

	// Unlock (no token) has expired.
	err = s.Unlock(ctx, key, "")
	require.NoError(t, err)

	// Lock (no token) has expired.
	_, err = s.Lock(ctx, key, "")
	require.Nil(t, err)

	// Unlock (no token) has expired.
	err = s.Unlock(ctx, key, "")
	require.Nil(t, err)
}

func testStoreAuthorize(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Unlocked keys authorize anyone.
	require.NoError(t, s.Authorize(ctx, key, ""))
	require.NoError(t, s.Authorize(ctx, key, "someone"))

	tok, err := s.Lock(ctx, key, "")
	require.NoError(t, err)

	require.NoError(t, s.Authorize(ctx, key, tok))
	require.Equal(t, controller.ErrIsLocked, s.Authorize(ctx, key, ""))
	require.Equal(t, controller.ErrIsLocked, s.Authorize(ctx, key, "someone"))

	require.NoError(t, s.Unlock(ctx, key, tok))
	require.NoError(t, s.Authorize(ctx, key, ""))
}

func testStoreSessions(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	// Create and fetch a session.
	err := s.CreateSession(ctx, newSession(t, key))
	require.Nil(t, err)
	sess, err := s.GetSession(ctx, key)
	require.Nil(t, err)
	require.Equal(t, key, sess.ID)

	// Duplicate ids are rejected.
	err = s.CreateSession(ctx, newSession(t, key))
	require.Equal(t, controller.ErrExists, err)

	// NotFound error thrown.
	_, err = s.GetSession(ctx, key+"-missing")
	require.Equal(t, controller.ErrNotFound, err)

	// Listed.
	ids, err := s.ListSessions(ctx)
	require.Nil(t, err)
	require.Contains(t, ids, key)

	// Delete drops the session and its lock.
	_, err = s.Lock(ctx, key, "")
	require.Nil(t, err)
	require.Nil(t, s.DeleteSession(ctx, key))
	_, err = s.GetSession(ctx, key)
	require.Equal(t, controller.ErrNotFound, err)
	require.NoError(t, s.Authorize(ctx, key, ""))
	ids, err = s.ListSessions(ctx)
	require.Nil(t, err)
	require.NotContains(t, ids, key)

	// Deleting twice.
	require.Equal(t, controller.ErrNotFound, s.DeleteSession(ctx, key))
}

func testStoreListSorted(t *testing.T, s controller.Store) {
	ctx := context.Background()
	prefix := uuid.NewV4().String()
	for _, suffix := range []string{"c", "a", "b"} {
		require.NoError(t, s.CreateSession(ctx, newSession(t, prefix+suffix)))
	}

	ids, err := s.ListSessions(ctx)
	require.NoError(t, err)

	var mine []string
	for _, id := range ids {
		if len(id) > len(prefix) && id[:len(prefix)] == prefix {
			mine = append(mine, id)
		}
	}
	require.Equal(t, []string{prefix + "a", prefix + "b", prefix + "c"}, mine)
}

func testStoreConcurrentWriters(t *testing.T, s controller.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	err := s.CreateSession(ctx, newSession(t, key))
	require.Nil(t, err)

	var ok uint32 // How many got the lock.
	var wg sync.WaitGroup
	wg.Add(20)

	for i := 0; i < 20; i++ {
		go func() {
			_, errl := s.Lock(ctx, key, "")
			if errl == nil {
				atomic.AddUint32(&ok, 1)
			}
			wg.Done()
		}()
	}

	wg.Wait()

	require.Equal(t, uint32(1), ok)
}

// Suite will execute the store testsuite.
func Suite(t *testing.T, s controller.Store, pretest func()) {
	s = controller.InstrumentStore(s)
	t.Run("Lock", func(t *testing.T) { pretest(); testStoreLock(t, s) })
	t.Run("LockExpiry", func(t *testing.T) { pretest(); testStoreLockExpiry(t, s) })
	t.Run("Authorize", func(t *testing.T) { pretest(); testStoreAuthorize(t, s) })
	t.Run("Sessions", func(t *testing.T) { pretest(); testStoreSessions(t, s) })
	t.Run("ListSorted", func(t *testing.T) { pretest(); testStoreListSorted(t, s) })
	t.Run("ConcurrentWriters", func(t *testing.T) { pretest(); testStoreConcurrentWriters(t, s) })
}
