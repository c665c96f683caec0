package world

import "testing"

func TestNewGrid_FullyWalled(t *testing.T) {
	g := NewGrid(3, 2)
	if g.Cols() != 3 || g.Rows() != 2 {
		t.Fatalf("NewGrid(3, 2) dims = %dx%d, want 3x2", g.Cols(), g.Rows())
	}
	if g.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", g.Len())
	}
	g.ForEachCell(func(col, row int, cell *Cell) {
		if cell.OpenSides() != 0 {
			t.Errorf("cell (%d,%d) has %d open sides, want 0", col, row, cell.OpenSides())
		}
		if g.CellAtIndex(g.Index(col, row)) != cell {
			t.Errorf("row-major index mismatch at (%d,%d)", col, row)
		}
	})
}

func TestNewGrid_ClampsDimensions(t *testing.T) {
	g := NewGrid(0, -4)
	if g.Cols() != 1 || g.Rows() != 1 {
		t.Errorf("NewGrid(0, -4) dims = %dx%d, want 1x1", g.Cols(), g.Rows())
	}
}

func TestGetCell_OutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if c := g.GetCell(pos[0], pos[1]); c != nil {
			t.Errorf("GetCell(%d, %d) = %v, want nil", pos[0], pos[1], c)
		}
	}
}

func TestCarve_OpensBothSides(t *testing.T) {
	g := NewGrid(2, 2)
	a := g.GetCell(0, 0)

	b := g.Carve(a, East)
	if b != g.GetCell(1, 0) {
		t.Fatalf("Carve(East) returned %v, want cell (1,0)", b)
	}
	if a.HasWall(East) || b.HasWall(West) {
		t.Error("Carve(East) left a wall standing between (0,0) and (1,0)")
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if g.OpenNeighbor(a, East) != b {
		t.Error("OpenNeighbor(East) did not follow the carved wall")
	}
	if g.OpenNeighbor(a, South) != nil {
		t.Error("OpenNeighbor(South) crossed a standing wall")
	}
}

func TestCarve_OffGridIsNoop(t *testing.T) {
	g := NewGrid(1, 1)
	c := g.GetCell(0, 0)
	if next := g.Carve(c, North); next != nil {
		t.Errorf("Carve(North) on 1x1 = %v, want nil", next)
	}
	if !c.HasWall(North) {
		t.Error("Carve off-grid opened the boundary wall")
	}
}

func TestValidate_DetectsAsymmetricWall(t *testing.T) {
	g := NewGrid(2, 1)
	g.GetCell(0, 0).Walls[East] = false
	if err := g.Validate(); err == nil {
		t.Error("Validate() = nil, want asymmetric wall error")
	}
}

func TestDistances(t *testing.T) {
	a := Coord{Col: 1, Row: 1}
	b := Coord{Col: 4, Row: 3}
	if got := ManhattanDistance(a, b); got != 5 {
		t.Errorf("ManhattanDistance = %d, want 5", got)
	}
	if got := ChebyshevDistance(a, b); got != 3 {
		t.Errorf("ChebyshevDistance = %d, want 3", got)
	}
}

func TestDirectionBetween(t *testing.T) {
	from := Coord{Col: 2, Row: 2}
	for _, dir := range AllDirections() {
		got, ok := DirectionBetween(from, from.Step(dir))
		if !ok || got != dir {
			t.Errorf("DirectionBetween(step %v) = %v, %v; want %v, true", dir, got, ok, dir)
		}
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v.Opposite().Opposite() != %v", dir, dir)
		}
	}
	if _, ok := DirectionBetween(from, Coord{Col: 4, Row: 2}); ok {
		t.Error("DirectionBetween on non-neighbours returned ok")
	}
}
