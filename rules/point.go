package rules

import "fmt"

// Point is a single cell on the grid. (0,0) is the top left corner.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Point) inBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// wrap folds p back onto a width x height torus.
func (p Point) wrap(width, height int) Point {
	return Point{X: mod(p.X, width), Y: mod(p.Y, height)}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
