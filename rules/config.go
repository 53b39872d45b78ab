package rules

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// BoundaryPolicy decides what happens when the head leaves the grid.
type BoundaryPolicy int

const (
	// Wall ends the game when the head would leave the grid.
	Wall BoundaryPolicy = iota
	// Wrap moves the head to the opposite edge.
	Wrap
)

// Defaults used when a Config field is left at its zero value.
const (
	DefaultWidth  = 20
	DefaultHeight = 20
	DefaultSpeed  = 1.0

	// FoodReward is added to the score for every food eaten.
	FoodReward = 10
	// MaxCells caps width*height. The segment store is allocated for the
	// whole grid up front.
	MaxCells = 1 << 20
)

var boundaryNames = [...]string{"wall", "wrap"}

// ParseBoundaryPolicy converts "wall" or "wrap" to a BoundaryPolicy.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	name := strings.TrimSpace(s)
	for i, n := range boundaryNames {
		if strings.EqualFold(name, n) {
			return BoundaryPolicy(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown boundary policy %q", s)
}

func (b BoundaryPolicy) valid() bool {
	return b == Wall || b == Wrap
}

func (b BoundaryPolicy) String() string {
	if !b.valid() {
		return "unknown"
	}
	return boundaryNames[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b BoundaryPolicy) MarshalText() ([]byte, error) {
	if !b.valid() {
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown boundary policy %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BoundaryPolicy) UnmarshalText(text []byte) error {
	v, err := ParseBoundaryPolicy(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Config holds everything a game is constructed from.
type Config struct {
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	Boundary BoundaryPolicy `json:"boundary"`
	// Speed is advisory. It is reported back to whoever drives the game
	// and never changes the simulation.
	Speed float64 `json:"speed"`
	// Seed feeds the food placement random source. Zero seeds from the
	// clock.
	Seed uint64 `json:"seed,omitempty"`
}

// DefaultConfig is a 20x20 walled grid at speed 1.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Boundary: Wall,
		Speed:    DefaultSpeed,
	}
}

// WithDefaults returns c with zero sizes and speed replaced by the defaults.
func (c Config) WithDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Speed == 0 {
		c.Speed = DefaultSpeed
	}
	return c
}

// Validate checks that a game can be built from c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d", c.Width, c.Height)
	}
	if err := validSpeed(c.Speed); err != nil {
		return err
	}
	if !c.Boundary.valid() {
		return errors.Wrapf(ErrInvalidConfig, "unknown boundary policy %d", int(c.Boundary))
	}
	if c.Width > MaxCells/c.Height {
		return errors.Wrapf(ErrResourceExhausted, "grid %dx%d is larger than %d cells", c.Width, c.Height, MaxCells)
	}
	if c.Width*c.Height < 2 {
		return errors.Wrapf(ErrNoFreeCell, "grid %dx%d", c.Width, c.Height)
	}
	return nil
}

func validSpeed(speed float64) error {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return errors.Wrapf(ErrInvalidConfig, "speed %v", speed)
	}
	return nil
}
