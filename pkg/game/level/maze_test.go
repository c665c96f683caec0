package level

import (
	"testing"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/difficulty"
)

func newTestMaze(cols, rows int) *Maze {
	p := difficulty.ForLevel(1)
	return NewMaze(world.NewGrid(cols, rows), Viewport{Width: float64(cols)*40 + 32, Height: float64(rows)*40 + 32}, p)
}

func TestNewMaze_FitsViewport(t *testing.T) {
	p := difficulty.ForLevel(1)
	m := NewMaze(world.NewGrid(11, 17), Viewport{Width: 400, Height: 600}, p)

	if m.CellSize() != 33 {
		t.Errorf("CellSize() = %v, want 33", m.CellSize())
	}
	if m.Origin != geom.V(18, 19) {
		t.Errorf("Origin = %v, want (18, 19)", m.Origin)
	}
	if m.Width() != 363 || m.Height() != 561 {
		t.Errorf("size = %vx%v, want 363x561", m.Width(), m.Height())
	}
}

func TestNewMaze_TinyViewport(t *testing.T) {
	m := NewMaze(world.NewGrid(11, 17), Viewport{Width: 10, Height: 10}, difficulty.ForLevel(1))
	if m.CellSize() != 1 {
		t.Errorf("CellSize() on a tiny viewport = %v, want 1", m.CellSize())
	}
}

func TestCellAt_Clamps(t *testing.T) {
	m := newTestMaze(3, 3)
	tests := []struct {
		p    geom.Vec2
		want world.Coord
	}{
		{geom.V(16+20, 16+20), world.Coord{Col: 0, Row: 0}},
		{geom.V(16+100, 16+60), world.Coord{Col: 2, Row: 1}},
		{geom.V(-50, -50), world.Coord{Col: 0, Row: 0}},
		{geom.V(5000, 5000), world.Coord{Col: 2, Row: 2}},
	}
	for _, tt := range tests {
		if got := m.CellAt(tt.p); got != tt.want {
			t.Errorf("CellAt(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestWallRectsNear_Counts(t *testing.T) {
	m := newTestMaze(3, 3)

	// Fully walled: 4 rects per cell in the block plus 4 boundary rects
	if got := len(m.WallRectsNear(m.CellCenter(world.Coord{Col: 1, Row: 1}))); got != 9*4+4 {
		t.Errorf("centre block rects = %d, want %d", got, 9*4+4)
	}
	if got := len(m.WallRectsNear(m.CellCenter(world.Coord{Col: 0, Row: 0}))); got != 4*4+4 {
		t.Errorf("corner block rects = %d, want %d", got, 4*4+4)
	}

	m.Grid.Carve(m.Grid.GetCell(1, 1), world.East)
	if got := len(m.WallRectsNear(m.CellCenter(world.Coord{Col: 1, Row: 1}))); got != 9*4+4-2 {
		t.Errorf("after carve rects = %d, want %d", got, 9*4+4-2)
	}
}

func TestCellWalls_CentredOnBoundary(t *testing.T) {
	m := newTestMaze(1, 1)
	rects := m.CellWalls(world.Coord{})
	if len(rects) != 4 {
		t.Fatalf("CellWalls() = %d rects, want 4", len(rects))
	}
	top := rects[0]
	if top.Y+top.H/2 != m.Origin.Y {
		t.Errorf("top wall centre line at %v, want %v", top.Y+top.H/2, m.Origin.Y)
	}
	if top.H != m.WallThickness {
		t.Errorf("top wall thickness = %v, want %v", top.H, m.WallThickness)
	}
}

func TestInGoal(t *testing.T) {
	m := newTestMaze(3, 3)
	exit := m.CellRect(m.Grid.Exit())
	inset := m.GoalInset * m.CellSize()

	if !m.InGoal(exit.Center()) {
		t.Error("InGoal(exit centre) = false, want true")
	}
	// Points on the inset edge are not strictly inside
	if m.InGoal(geom.V(exit.X+inset, exit.Center().Y)) {
		t.Error("InGoal(inset edge) = true, want false")
	}
	if m.InGoal(m.CellCenter(world.Coord{})) {
		t.Error("InGoal(entrance) = true, want false")
	}
}
