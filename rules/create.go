package rules

import (
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Game is the state of one snake game. It is not safe for concurrent use;
// callers serialise SetDirection, Tick and Reset themselves.
type Game struct {
	cfg Config

	snake     []Point
	direction Direction
	food      Point
	hasFood   bool
	score     int
	turn      int
	over      bool
	cause     Cause
	speed     float64

	rng *rand.Rand
}

// New creates a game from cfg: a single segment in the middle of the grid
// heading right, score zero and food on a random free cell.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		cfg:   cfg,
		snake: make([]Point, 0, cfg.Width*cfg.Height),
		speed: cfg.Speed,
		rng:   rand.New(rand.NewSource(seed)),
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"Width":    cfg.Width,
		"Height":   cfg.Height,
		"Boundary": cfg.Boundary,
		"Head":     g.snake[0],
		"Food":     g.food,
	}).Debug("game created")
	return g, nil
}

// NewDefault creates a game with DefaultConfig.
func NewDefault() (*Game, error) {
	return New(DefaultConfig())
}

// Reset puts the game back to its initial state and places new food. The
// configuration and speed are kept.
func (g *Game) Reset() error {
	g.snake = append(g.snake[:0], g.start())
	g.direction = Right
	g.score = 0
	g.turn = 0
	g.over = false
	g.cause = CauseNone

	food, err := g.placeFood()
	if err != nil {
		g.hasFood = false
		g.end(CauseBoardFull)
		return err
	}
	g.food = food
	g.hasFood = true
	return nil
}

func (g *Game) start() Point {
	return Point{X: g.cfg.Width / 2, Y: g.cfg.Height / 2}
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// Head returns the head segment.
func (g *Game) Head() Point { return g.snake[0] }

// Length is the number of segments.
func (g *Game) Length() int { return len(g.snake) }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Turn counts the moves made since the last reset.
func (g *Game) Turn() int { return g.turn }

// Direction returns the current heading.
func (g *Game) Direction() Direction { return g.direction }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.over }

// Cause says why the game ended. It is empty while the game runs.
func (g *Game) Cause() Cause { return g.cause }

// Food returns the food position. ok is false once the snake has filled
// the grid.
func (g *Game) Food() (p Point, ok bool) { return g.food, g.hasFood }

// Speed returns the advisory speed.
func (g *Game) Speed() float64 { return g.speed }

// SetSpeed changes the advisory speed.
func (g *Game) SetSpeed(speed float64) error {
	if err := validSpeed(speed); err != nil {
		return err
	}
	g.speed = speed
	return nil
}
