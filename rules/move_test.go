package rules

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSetDirectionRejectsReversal(t *testing.T) {
	for _, current := range []Direction{Up, Right, Down, Left} {
		for _, requested := range []Direction{Up, Right, Down, Left} {
			g := newTestGame(t, DefaultConfig())
			g.direction = current

			require.NoError(t, g.SetDirection(requested))
			if requested == current.Opposite() {
				require.Equal(t, current, g.Direction(), "%v -> %v should be ignored", current, requested)
			} else {
				require.Equal(t, requested, g.Direction(), "%v -> %v should apply", current, requested)
			}
		}
	}
}

func TestSetDirectionReversalKeepsHeading(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	require.NoError(t, g.SetFood(Point{X: 0, Y: 0}))
	require.NoError(t, g.SetDirection(Up))
	require.NoError(t, g.SetDirection(Down))
	require.Equal(t, Up, g.Direction())

	require.Equal(t, Continue, g.Tick())
	require.Equal(t, Point{X: 10, Y: 9}, g.Head(), "snake should have moved up")
}

func TestSetDirectionInvalid(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	err := g.SetDirection(Direction(7))
	require.Equal(t, ErrInvalidDirection, errors.Cause(err))
	require.Equal(t, Right, g.Direction())

	err = g.SetDirection(Direction(-1))
	require.Equal(t, ErrInvalidDirection, errors.Cause(err))
}

func TestSetDirectionAfterGameOver(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	setSnake(t, g, Right, Point{X: 19, Y: 10})
	require.Equal(t, GameOver, g.Tick())

	require.NoError(t, g.SetDirection(Up))
	require.Equal(t, Right, g.Direction())
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"up":      Up,
		"RIGHT":   Right,
		"Down":    Down,
		" left\n": Left,
	}
	for in, want := range tests {
		d, err := ParseDirection(in)
		require.NoError(t, err, in)
		require.Equal(t, want, d, in)
	}

	for _, in := range []string{"", "invalid", "north", "u"} {
		_, err := ParseDirection(in)
		require.Equal(t, ErrInvalidDirection, errors.Cause(err), in)
	}
}

func TestDirectionOppositeAndDelta(t *testing.T) {
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Left, Right.Opposite())
	require.Equal(t, Up, Down.Opposite())
	require.Equal(t, Right, Left.Opposite())

	for _, d := range []Direction{Up, Right, Down, Left} {
		sum := d.Delta().Add(d.Opposite().Delta())
		require.Equal(t, Point{}, sum, d.String())
	}
}

func TestDirectionJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		D Direction `json:"d"`
	}{Left})
	require.NoError(t, err)
	require.Equal(t, `{"d":"left"}`, string(data))

	var out struct {
		D Direction `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"UP"}`), &out))
	require.Equal(t, Up, out.D)
	require.Error(t, json.Unmarshal([]byte(`{"d":"sideways"}`), &out))

	_, err = json.Marshal(Direction(12))
	require.Error(t, err)
}

func TestAdvance(t *testing.T) {
	g := newTestGame(t, DefaultConfig())
	setSnake(t, g, Right, Point{X: 3, Y: 3}, Point{X: 2, Y: 3}, Point{X: 1, Y: 3})

	g.advance(Point{X: 4, Y: 3}, false)
	require.Equal(t, []Point{{X: 4, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 3}}, g.snake)

	g.advance(Point{X: 5, Y: 3}, true)
	require.Equal(t, []Point{{X: 5, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 3}}, g.snake)
}
