// Package worker reaps abandoned games. Clients that stop playing leave
// their sessions behind, the worker removes the ones nobody has touched for
// a while so the registry does not grow without bound.
package worker

import (
	"context"
	"time"

	"github.com/Abhisg5/snakeAPI/controller"
	log "github.com/sirupsen/logrus"
)

var now = time.Now

// Worker removes idle sessions from a controller.
type Worker struct {
	Controller   *controller.Controller
	PollInterval time.Duration
	IdleTimeout  time.Duration
}

// Run will run the worker in a loop until the context is done.
func (w *Worker) Run(ctx context.Context, workerID int) {
	for {
		n, err := w.run(ctx, workerID)
		if err != nil && ctx.Err() == nil {
			log.WithError(err).WithField("worker", workerID).Error("reap failed")
		} else if n > 0 {
			log.WithFields(log.Fields{
				"worker": workerID,
				"reaped": n,
			}).Info("reaped idle games")
		}

		select {
		case <-time.After(w.PollInterval):
		case <-ctx.Done():
			return
		}
	}
}

// run makes a single pass over the sessions and returns how many it removed.
func (w *Worker) run(ctx context.Context, workerID int) (int, error) {
	ids, err := w.Controller.List(ctx)
	if err != nil {
		return 0, err
	}

	reaped := 0
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return reaped, ctx.Err()
		default:
		}

		ok, err := w.reap(ctx, workerID, id)
		if err != nil {
			return reaped, err
		}
		if ok {
			reaped++
		}
	}
	return reaped, nil
}

// reap removes the session if it is idle and nobody holds its lock.
func (w *Worker) reap(ctx context.Context, workerID int, id string) (bool, error) {
	s, err := w.Controller.Store.GetSession(ctx, id)
	if err == controller.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if now().Sub(s.LastActive()) < w.IdleTimeout {
		return false, nil
	}

	// Holding the lock keeps clients out while the session is removed.
	token, err := w.Controller.Lock(ctx, id)
	if err == controller.ErrIsLocked {
		log.WithFields(log.Fields{
			"worker": workerID,
			"game":   id,
		}).Debug("idle game is locked, skipping")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	ctx = controller.ContextWithLockToken(ctx, token)

	// Activity may have happened before the lock was taken.
	if now().Sub(s.LastActive()) < w.IdleTimeout {
		if err := w.Controller.Unlock(ctx, id); err != nil {
			log.WithError(err).WithField("game", id).Warn("unlock failed")
		}
		return false, nil
	}

	if err := w.Controller.End(ctx, id); err != nil {
		if err == controller.ErrNotFound {
			return false, nil
		}
		if uerr := w.Controller.Unlock(ctx, id); uerr != nil {
			log.WithError(uerr).WithField("game", id).Warn("unlock failed")
		}
		return false, err
	}
	log.WithFields(log.Fields{
		"worker": workerID,
		"game":   id,
		"idle":   now().Sub(s.LastActive()).String(),
	}).Debug("reaped game")
	return true, nil
}
