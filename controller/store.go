package controller

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

var (
	// LockExpiry is the time after which a lock will expire.
	LockExpiry = 5 * time.Second
	// ErrNotFound is returned when a session is not found.
	ErrNotFound = errors.New("controller: game not found")
	// ErrExists is returned when creating a session whose id is taken.
	ErrExists = errors.New("controller: game already exists")
	// ErrIsLocked is returned when a session is locked by another token.
	ErrIsLocked = errors.New("controller: game is locked")
	// ErrTooManySessions is returned when the session limit is reached.
	ErrTooManySessions = errors.New("controller: too many games")
)

// Store is the interface to the session registry.
type Store interface {
	// Lock takes or refreshes the write lock on key. An empty token asks
	// for a new lock, the current token refreshes it.
	Lock(ctx context.Context, key, token string) (string, error)
	// Unlock releases the lock on key if token holds it.
	Unlock(ctx context.Context, key, token string) error
	// Authorize returns ErrIsLocked when key is locked by a token other
	// than the one given.
	Authorize(ctx context.Context, key, token string) error
	CreateSession(context.Context, *Session) error
	GetSession(context.Context, string) (*Session, error)
	DeleteSession(context.Context, string) error
	ListSessions(context.Context) ([]string, error)
}

// InMemStore returns an in memory implementation of the Store interface
// whose locks last LockExpiry.
func InMemStore() Store { return NewInMemStore(0) }

// NewInMemStore returns an in memory store whose locks last expiry, or
// LockExpiry when expiry is zero.
func NewInMemStore(expiry time.Duration) Store {
	return &inmem{
		sessions: map[string]*Session{},
		locks:    map[string]*lock{},
		expiry:   expiry,
	}
}

type lock struct {
	token   string
	expires time.Time
}

type inmem struct {
	sessions map[string]*Session
	locks    map[string]*lock
	expiry   time.Duration
	lock     sync.Mutex
}

func (in *inmem) lockExpiry() time.Duration {
	if in.expiry != 0 {
		return in.expiry
	}
	return LockExpiry
}

func (in *inmem) Lock(ctx context.Context, key, token string) (string, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	t := now()
	l, ok := in.locks[key]
	if ok {
		if l.expires.Before(t) {
			delete(in.locks, key)
		} else if token != "" && l.token == token {
			l.expires = t.Add(in.lockExpiry())
			return l.token, nil
		} else {
			return "", ErrIsLocked
		}
	}
	if token == "" {
		token = uuid.NewV4().String()
	}
	l = &lock{
		token:   token,
		expires: t.Add(in.lockExpiry()),
	}
	in.locks[key] = l
	return l.token, nil
}

func (in *inmem) holder(key string) (string, bool) {
	l, ok := in.locks[key]
	if !ok || l.expires.Before(now()) {
		return "", false
	}
	return l.token, true
}

func (in *inmem) Unlock(ctx context.Context, key, token string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	holder, locked := in.holder(key)
	if !locked {
		delete(in.locks, key)
		return nil
	}
	if holder != token {
		return ErrIsLocked
	}
	delete(in.locks, key)
	return nil
}

func (in *inmem) Authorize(ctx context.Context, key, token string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if holder, locked := in.holder(key); locked && holder != token {
		return ErrIsLocked
	}
	return nil
}

func (in *inmem) CreateSession(ctx context.Context, s *Session) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.sessions[s.ID]; ok {
		return ErrExists
	}
	in.sessions[s.ID] = s
	return nil
}

func (in *inmem) GetSession(ctx context.Context, id string) (*Session, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if s, ok := in.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (in *inmem) DeleteSession(ctx context.Context, id string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(in.sessions, id)
	delete(in.locks, id)
	return nil
}

func (in *inmem) ListSessions(ctx context.Context) ([]string, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	ids := make([]string, 0, len(in.sessions))
	for id := range in.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
