package rules

import log "github.com/sirupsen/logrus"

// occupied reports whether p is covered by any segment, tail included.
func (g *Game) occupied(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

func (g *Game) outOfBounds(p Point) bool {
	return !p.inBounds(g.cfg.Width, g.cfg.Height)
}

func (g *Game) end(cause Cause) {
	g.over = true
	g.cause = cause
	log.WithFields(log.Fields{
		"Cause": cause,
		"Score": g.score,
		"Turn":  g.turn,
		"Head":  g.snake[0],
	}).Debug("game over")
}
