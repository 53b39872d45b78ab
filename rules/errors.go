package rules

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned for grid sizes, speeds or boundary
	// policies the engine cannot run with.
	ErrInvalidConfig = errors.New("rules: invalid config")
	// ErrInvalidDirection is returned for values outside the four directions.
	ErrInvalidDirection = errors.New("rules: invalid direction")
	// ErrResourceExhausted is returned when a grid is too large to allocate.
	ErrResourceExhausted = errors.New("rules: resource exhausted")
	// ErrNoFreeCell is returned when food cannot be placed because the
	// snake covers the whole grid.
	ErrNoFreeCell = errors.New("rules: no free cell for food")
	// ErrOutOfBounds is returned for points outside the grid.
	ErrOutOfBounds = errors.New("rules: point out of bounds")
	// ErrOccupied is returned when a point is covered by the snake.
	ErrOccupied = errors.New("rules: point occupied by snake")
	// ErrGameOver is returned by setters that cannot apply to a finished game.
	ErrGameOver = errors.New("rules: game is over")
)
