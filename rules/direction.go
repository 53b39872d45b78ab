package rules

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Direction is the heading of the snake.
type Direction int

// The numeric values match the order used by clients: up, right, down, left.
const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionNames = [...]string{"up", "right", "down", "left"}

// ParseDirection converts a direction name to a Direction. Case and
// surrounding whitespace are ignored.
func ParseDirection(s string) (Direction, error) {
	name := strings.TrimSpace(s)
	for i, n := range directionNames {
		if strings.EqualFold(name, n) {
			return Direction(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidDirection, "%q", s)
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta is the one cell offset a move in d applies to the head.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	}
	return Point{}
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.Wrapf(ErrInvalidDirection, "%d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
