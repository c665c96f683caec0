// Package world provides generic 2D grid-based maze primitives.
// These are engine-level constructs usable by any wall-based grid game.
package world

// Cell represents a single cell of a walled maze grid.
type Cell struct {
	// Grid position
	Col int
	Row int

	// Walls is indexed by Direction: Walls[North] is the top wall,
	// Walls[East] the right wall and so on. A fresh cell is fully walled.
	Walls [4]bool

	// Visited is transient generation state. Generators clear it before
	// handing the grid out.
	Visited bool
}

// NewCell creates a fully walled cell at the given position
func NewCell(col, row int) *Cell {
	return &Cell{
		Col:   col,
		Row:   row,
		Walls: [4]bool{true, true, true, true},
	}
}

// Coord returns the cell's grid coordinate
func (c *Cell) Coord() Coord {
	return Coord{Col: c.Col, Row: c.Row}
}

// HasWall reports whether the wall on the given side is standing
func (c *Cell) HasWall(dir Direction) bool {
	if c == nil || !dir.IsValid() {
		return true
	}
	return c.Walls[dir]
}

// OpenSides returns the number of open walls
func (c *Cell) OpenSides() int {
	open := 0
	for _, dir := range AllDirections() {
		if !c.Walls[dir] {
			open++
		}
	}
	return open
}

// IsDeadEnd returns true if the cell has exactly one open wall
func (c *Cell) IsDeadEnd() bool {
	return c.OpenSides() == 1
}
