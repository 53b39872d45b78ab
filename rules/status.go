package rules

import "github.com/pkg/errors"

// MoveResult is the outcome of a single Tick.
type MoveResult int

const (
	// Continue means the snake moved one cell.
	Continue MoveResult = iota
	// FoodEaten means the snake moved onto the food and grew.
	FoodEaten
	// GameOver means the game ended on this tick or had already ended.
	GameOver
)

var moveResultNames = [...]string{"continue", "food-eaten", "game-over"}

func (r MoveResult) String() string {
	if r < Continue || r > GameOver {
		return "unknown"
	}
	return moveResultNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r MoveResult) MarshalText() ([]byte, error) {
	if r < Continue || r > GameOver {
		return nil, errors.Errorf("rules: unknown move result %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *MoveResult) UnmarshalText(text []byte) error {
	for i, n := range moveResultNames {
		if n == string(text) {
			*r = MoveResult(i)
			return nil
		}
	}
	return errors.Errorf("rules: unknown move result %q", string(text))
}

// State is a read-only snapshot of a game.
type State struct {
	Snake     []Point        `json:"snake"`
	Length    int            `json:"length"`
	Food      *Point         `json:"food"`
	Score     int            `json:"score"`
	Direction Direction      `json:"direction"`
	GameOver  bool           `json:"game_over"`
	Won       bool           `json:"won"`
	Cause     Cause          `json:"cause,omitempty"`
	Turn      int            `json:"turn"`
	Speed     float64        `json:"speed"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Boundary  BoundaryPolicy `json:"boundary"`
}

// State returns a snapshot of the game. The snapshot shares no memory with
// the game.
func (g *Game) State() State {
	snake := make([]Point, len(g.snake))
	copy(snake, g.snake)

	st := State{
		Snake:     snake,
		Length:    len(snake),
		Score:     g.score,
		Direction: g.direction,
		GameOver:  g.over,
		Won:       g.cause.Won(),
		Cause:     g.cause,
		Turn:      g.turn,
		Speed:     g.speed,
		Width:     g.cfg.Width,
		Height:    g.cfg.Height,
		Boundary:  g.cfg.Boundary,
	}
	if g.hasFood {
		food := g.food
		st.Food = &food
	}
	return st
}

// Head returns the head of the snake in the snapshot.
func (s State) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}
