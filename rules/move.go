package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetDirection changes the heading used by the next Tick. A request for the
// exact opposite of the current heading is ignored, as is any request once
// the game is over. Only values outside the four directions are errors.
func (g *Game) SetDirection(d Direction) error {
	if !d.Valid() {
		return errors.Wrapf(ErrInvalidDirection, "%d", int(d))
	}
	if g.over {
		return nil
	}
	if d == g.direction.Opposite() {
		log.WithFields(log.Fields{
			"Current":   g.direction,
			"Requested": d,
		}).Debug("reversal ignored")
		return nil
	}
	g.direction = d
	return nil
}

// advance inserts next as the new head. Without grow the tail is dropped so
// the length stays the same. The segment store was sized for the whole grid
// so growing never reallocates.
func (g *Game) advance(next Point, grow bool) {
	if grow {
		g.snake = g.snake[:len(g.snake)+1]
	}
	copy(g.snake[1:], g.snake[:len(g.snake)-1])
	g.snake[0] = next
}
