// Package level holds a built level: the carved grid laid out in screen
// space, its solution path, hazards and start spots.
package level

import (
	"math"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/difficulty"
	"tiltmaze/pkg/game/entities"
)

// Viewport is the drawable area a maze is fitted into
type Viewport struct {
	Width  float64
	Height float64
}

// Maze is a grid placed in screen space plus everything built on top of it.
// It is not modified after the level build finishes.
type Maze struct {
	Grid *world.Grid

	cellSize      float64
	WallThickness float64
	Origin        geom.Vec2 // top-left corner of cell (0,0)
	GoalInset     float64   // fraction of cell size

	Path     []world.Coord
	DeadEnds []world.Coord
	Spikes   []entities.Spike
	Resets   []entities.Reset
	Starts   []entities.StartSpot
}

// NewMaze fits grid into the viewport, keeping square cells and centring the
// result. Cell size is whole pixels and never below 1.
func NewMaze(grid *world.Grid, vp Viewport, p difficulty.Params) *Maze {
	cw := vp.Width - p.Padding*2
	ch := vp.Height - p.Padding*2
	cellSize := math.Max(1, math.Floor(math.Min(cw/float64(grid.Cols()), ch/float64(grid.Rows()))))

	width := cellSize * float64(grid.Cols())
	height := cellSize * float64(grid.Rows())

	return &Maze{
		Grid:          grid,
		cellSize:      cellSize,
		WallThickness: p.WallThickness,
		Origin:        geom.V(math.Floor((vp.Width-width)/2), math.Floor((vp.Height-height)/2)),
		GoalInset:     p.GoalInset,
	}
}

// Cols returns the grid width in cells
func (m *Maze) Cols() int { return m.Grid.Cols() }

// Rows returns the grid height in cells
func (m *Maze) Rows() int { return m.Grid.Rows() }

// CellSize returns the side of one cell in screen units
func (m *Maze) CellSize() float64 { return m.cellSize }

// Width returns the maze width in screen units
func (m *Maze) Width() float64 { return m.cellSize * float64(m.Cols()) }

// Height returns the maze height in screen units
func (m *Maze) Height() float64 { return m.cellSize * float64(m.Rows()) }

// CellRect returns the screen rectangle of a cell
func (m *Maze) CellRect(c world.Coord) geom.Rect {
	return geom.Rect{
		X: m.Origin.X + float64(c.Col)*m.cellSize,
		Y: m.Origin.Y + float64(c.Row)*m.cellSize,
		W: m.cellSize,
		H: m.cellSize,
	}
}

// CellCenter returns the centre of a cell in screen units
func (m *Maze) CellCenter(c world.Coord) geom.Vec2 {
	return m.CellRect(c).Center()
}

// CellAt returns the cell under p, clamped to the grid
func (m *Maze) CellAt(p geom.Vec2) world.Coord {
	col := int(math.Floor((p.X - m.Origin.X) / m.cellSize))
	row := int(math.Floor((p.Y - m.Origin.Y) / m.cellSize))
	return world.Coord{
		Col: geom.ClampInt(col, 0, m.Cols()-1),
		Row: geom.ClampInt(row, 0, m.Rows()-1),
	}
}

// BodyRadius returns the ball radius for this maze
func (m *Maze) BodyRadius() float64 {
	return entities.BodyRadius(m.cellSize)
}

// CellWalls returns the standing walls of one cell as rectangles of the wall
// thickness centred on the cell boundary
func (m *Maze) CellWalls(c world.Coord) []geom.Rect {
	cell := m.Grid.At(c)
	if cell == nil {
		return nil
	}
	s, t := m.cellSize, m.WallThickness
	r := m.CellRect(c)

	var rects []geom.Rect
	if cell.HasWall(world.North) {
		rects = append(rects, geom.Rect{X: r.X, Y: r.Y - t/2, W: s, H: t})
	}
	if cell.HasWall(world.South) {
		rects = append(rects, geom.Rect{X: r.X, Y: r.Y + s - t/2, W: s, H: t})
	}
	if cell.HasWall(world.West) {
		rects = append(rects, geom.Rect{X: r.X - t/2, Y: r.Y, W: t, H: s})
	}
	if cell.HasWall(world.East) {
		rects = append(rects, geom.Rect{X: r.X + s - t/2, Y: r.Y, W: t, H: s})
	}
	return rects
}

// Boundary returns the four outer wall rectangles
func (m *Maze) Boundary() []geom.Rect {
	t := m.WallThickness
	w, h := m.Width(), m.Height()
	o := m.Origin
	return []geom.Rect{
		{X: o.X, Y: o.Y - t/2, W: w, H: t},
		{X: o.X, Y: o.Y + h - t/2, W: w, H: t},
		{X: o.X - t/2, Y: o.Y, W: t, H: h},
		{X: o.X + w - t/2, Y: o.Y, W: t, H: h},
	}
}

// WallRectsNear returns the wall rectangles a body at p can touch: every
// standing wall of the 3×3 block around its cell plus the outer boundary.
// Shared walls appear once per owning cell.
func (m *Maze) WallRectsNear(p geom.Vec2) []geom.Rect {
	centre := m.CellAt(p)
	var rects []geom.Rect
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			c := world.Coord{Col: centre.Col + dc, Row: centre.Row + dr}
			if m.Grid.Contains(c) {
				rects = append(rects, m.CellWalls(c)...)
			}
		}
	}
	return append(rects, m.Boundary()...)
}

// GoalRect returns the exit cell inset by the goal margin
func (m *Maze) GoalRect() geom.Rect {
	return m.CellRect(m.Grid.Exit()).Inset(m.GoalInset * m.cellSize)
}

// InGoal reports whether p is strictly inside the goal pad
func (m *Maze) InGoal(p geom.Vec2) bool {
	return m.GoalRect().ContainsStrict(p)
}
