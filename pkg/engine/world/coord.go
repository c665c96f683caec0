package world

import "fmt"

// Coord addresses a cell by column and row (0-based, row grows downwards).
// It is comparable and can be used directly as a set or map key.
type Coord struct {
	Col int
	Row int
}

// String returns "col,row"
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}

// Step returns the coordinate one cell away in the given direction
func (c Coord) Step(dir Direction) Coord {
	rowDelta, colDelta := dir.Delta()
	return Coord{Col: c.Col + colDelta, Row: c.Row + rowDelta}
}

// ManhattanDistance calculates the Manhattan distance between two coordinates
func ManhattanDistance(a, b Coord) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// ChebyshevDistance is the king-move distance: max of the axis distances
func ChebyshevDistance(a, b Coord) int {
	colDist := abs(a.Col - b.Col)
	rowDist := abs(a.Row - b.Row)
	if colDist > rowDist {
		return colDist
	}
	return rowDist
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
