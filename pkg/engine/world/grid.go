package world

import (
	"fmt"
)

// Grid is a dense, row-major grid of walled cells
type Grid struct {
	cells []*Cell
	rows  int
	cols  int
}

// NewGrid creates a new fully walled grid with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Build(cols, rows)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the number of cells (cols × rows)
func (g *Grid) Len() int {
	return len(g.cells)
}

// Index returns the row-major index of a position
func (g *Grid) Index(col, row int) int {
	return row*g.cols + col
}

// Entrance returns the top-left coordinate
func (g *Grid) Entrance() Coord {
	return Coord{Col: 0, Row: 0}
}

// Exit returns the bottom-right coordinate
func (g *Grid) Exit() Coord {
	return Coord{Col: g.cols - 1, Row: g.rows - 1}
}

// IsValidPosition checks if a col/row position is within grid bounds
func (g *Grid) IsValidPosition(col, row int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether the coordinate lies inside the grid
func (g *Grid) Contains(c Coord) bool {
	return g.IsValidPosition(c.Col, c.Row)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(col, row int) *Cell {
	if !g.IsValidPosition(col, row) {
		return nil
	}
	return g.cells[g.Index(col, row)]
}

// At returns the cell at the coordinate, or nil if out of bounds
func (g *Grid) At(c Coord) *Cell {
	return g.GetCell(c.Col, c.Row)
}

// CellAtIndex returns the cell at a row-major index
func (g *Grid) CellAtIndex(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return g.cells[i]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Col+colRel, c.Row+rowRel)
}

// OpenNeighbor returns the neighbour reachable through an open wall in the
// given direction, or nil if the wall stands or the neighbour is off-grid.
func (g *Grid) OpenNeighbor(c *Cell, dir Direction) *Cell {
	if c == nil || c.HasWall(dir) {
		return nil
	}
	return g.GetCellRelative(c, dir)
}

// Carve knocks down the wall between c and its neighbour in dir, on both
// cells. Returns the neighbour, or nil (and changes nothing) when off-grid.
func (g *Grid) Carve(c *Cell, dir Direction) *Cell {
	next := g.GetCellRelative(c, dir)
	if next == nil {
		return nil
	}
	c.Walls[dir] = false
	next.Walls[dir.Opposite()] = false
	return next
}

// Build initializes the grid with the given dimensions, every wall standing
func (g *Grid) Build(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]*Cell, 0, rows*cols)

	for currentRow := 0; currentRow < rows; currentRow++ {
		for currentCol := 0; currentCol < cols; currentCol++ {
			g.cells = append(g.cells, NewCell(currentCol, currentRow))
		}
	}
}

// ResetVisited clears the transient visited flag on every cell
func (g *Grid) ResetVisited() {
	for _, c := range g.cells {
		c.Visited = false
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(col, row int, cell *Cell)) {
	for _, cell := range g.cells {
		fn(cell.Col, cell.Row, cell)
	}
}

// Validate checks the shared-wall invariant: for every pair of adjacent
// cells the wall between them is either open on both sides or closed on both.
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 || len(g.cells) != g.rows*g.cols {
		return fmt.Errorf("grid has invalid dimensions %dx%d", g.cols, g.rows)
	}

	for _, cell := range g.cells {
		for _, dir := range []Direction{East, South} {
			next := g.GetCellRelative(cell, dir)
			if next == nil {
				continue
			}
			if cell.Walls[dir] != next.Walls[dir.Opposite()] {
				return fmt.Errorf("asymmetric wall between %v and %v", cell.Coord(), next.Coord())
			}
		}
	}

	return nil
}
