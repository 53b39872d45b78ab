package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	g, err := New(cfg)
	require.NoError(t, err)
	return g
}

func grid(width, height int, boundary BoundaryPolicy) Config {
	return Config{Width: width, Height: height, Boundary: boundary, Speed: 1, Seed: 7}
}

// setSnake replaces the body and heading and moves the food off the body.
func setSnake(t *testing.T, g *Game, dir Direction, body ...Point) {
	t.Helper()
	g.snake = append(g.snake[:0], body...)
	g.direction = dir
	food, err := g.placeFood()
	require.NoError(t, err)
	g.food = food
	g.hasFood = true
}

func requireFoodClear(t *testing.T, st State) {
	t.Helper()
	if st.Food == nil {
		return
	}
	for _, s := range st.Snake {
		require.NotEqual(t, *st.Food, s, "food placed on the snake")
	}
}
