package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Tick advances the game by one cell in the current direction.
func (g *Game) Tick() MoveResult {
	if g.over {
		return GameOver
	}

	next := g.snake[0].Add(g.direction.Delta())
	if g.outOfBounds(next) {
		if g.cfg.Boundary != Wrap {
			g.end(CauseWallCollision)
			return GameOver
		}
		next = next.wrap(g.cfg.Width, g.cfg.Height)
	}
	if g.occupied(next) {
		g.end(CauseSelfCollision)
		return GameOver
	}

	g.turn++
	if !g.hasFood || next != g.food {
		g.advance(next, false)
		return Continue
	}

	g.advance(next, true)
	g.score += FoodReward
	log.WithFields(log.Fields{
		"Food":   next,
		"Score":  g.score,
		"Length": len(g.snake),
	}).Debug("food eaten")

	food, err := g.placeFood()
	if err != nil {
		g.hasFood = false
		g.end(CauseBoardFull)
		return FoodEaten
	}
	g.food = food
	return FoodEaten
}

// SetFood moves the food to p. It exists so callers can set up a known
// board; p must be inside the grid and clear of the snake.
func (g *Game) SetFood(p Point) error {
	if g.over {
		return ErrGameOver
	}
	if g.outOfBounds(p) {
		return errors.Wrapf(ErrOutOfBounds, "food %v", p)
	}
	if g.occupied(p) {
		return errors.Wrapf(ErrOccupied, "food %v", p)
	}
	g.food = p
	g.hasFood = true
	return nil
}

// placeFood picks a free cell uniformly at random.
func (g *Game) placeFood() (Point, error) {
	open := g.unoccupiedPoints()
	if len(open) == 0 {
		return Point{}, ErrNoFreeCell
	}
	p := open[g.rng.Intn(len(open))]
	log.WithField("Food", p).Debug("food placed")
	return p, nil
}

func (g *Game) unoccupiedPoints() []Point {
	width, height := g.cfg.Width, g.cfg.Height
	taken := make([]bool, width*height)
	for _, s := range g.snake {
		taken[s.Y*width+s.X] = true
	}

	points := make([]Point, 0, width*height-len(g.snake))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !taken[y*width+x] {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}
