package setup

import (
	"errors"
	"testing"

	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/difficulty"
	"tiltmaze/pkg/game/entities"
	"tiltmaze/pkg/game/level"
)

var testViewport = level.Viewport{Width: 480, Height: 720}

func TestBuild_Sound(t *testing.T) {
	for levelNum := 1; levelNum <= 12; levelNum++ {
		for seed := int64(1); seed <= 6; seed++ {
			s := BuildSnapshot(levelNum, seed, testViewport)
			if err := Verify(s); err != nil {
				t.Errorf("level %d seed %d: Verify() = %v", levelNum, seed, err)
			}
			if len(s.Maze.Spikes) > s.Params.SpikeCount || len(s.Maze.Resets) > s.Params.ResetCount {
				t.Errorf("level %d seed %d: placed %d/%d hazards, desired %d/%d", levelNum, seed,
					len(s.Maze.Spikes), len(s.Maze.Resets), s.Params.SpikeCount, s.Params.ResetCount)
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := BuildSnapshot(7, 42, testViewport)
	b := BuildSnapshot(7, 42, testViewport)

	if len(a.Maze.Spikes) != len(b.Maze.Spikes) || len(a.Maze.Resets) != len(b.Maze.Resets) {
		t.Fatal("hazard counts differ for the same seed")
	}
	for i := range a.Maze.Spikes {
		if a.Maze.Spikes[i] != b.Maze.Spikes[i] {
			t.Errorf("spike %d differs: %+v vs %+v", i, a.Maze.Spikes[i], b.Maze.Spikes[i])
		}
	}
	for i := range a.Maze.Resets {
		if a.Maze.Resets[i] != b.Maze.Resets[i] {
			t.Errorf("reset %d differs: %+v vs %+v", i, a.Maze.Resets[i], b.Maze.Resets[i])
		}
	}
	a.Maze.Grid.ForEachCell(func(col, row int, cell *world.Cell) {
		if cell.Walls != b.Maze.Grid.GetCell(col, row).Walls {
			t.Fatalf("cell (%d,%d) differs for the same seed", col, row)
		}
	})
}

func TestBuild_ZeroBuilderUsesDefaults(t *testing.T) {
	var zero Builder
	got := zero.Build(5, 9, testViewport)
	want := BuildSnapshot(5, 9, testViewport)

	if got.Params != want.Params {
		t.Errorf("zero builder params = %+v, want %+v", got.Params, want.Params)
	}
	got.Maze.Grid.ForEachCell(func(col, row int, cell *world.Cell) {
		if cell.Walls != want.Maze.Grid.GetCell(col, row).Walls {
			t.Fatalf("cell (%d,%d) differs from the default build", col, row)
		}
	})
}

func TestBuild_StartSpots(t *testing.T) {
	one := BuildSnapshot(1, 1, testViewport)
	if len(one.Maze.Starts) != 1 || one.BodyCount() != 1 {
		t.Fatalf("level 1: %d start spots, %d bodies; want 1, 1", len(one.Maze.Starts), one.BodyCount())
	}

	two := BuildSnapshot(6, 1, testViewport)
	if len(two.Maze.Starts) != 2 || two.BodyCount() != 2 {
		t.Fatalf("level 6: %d start spots, %d bodies; want 2, 2", len(two.Maze.Starts), two.BodyCount())
	}
	want := world.Coord{Col: 0, Row: two.Maze.Rows() - 1}
	if two.Maze.Starts[1].Cell != want {
		t.Errorf("second start at %v, want %v", two.Maze.Starts[1].Cell, want)
	}
	if two.Maze.Starts[1].Pos != two.Maze.CellCenter(want) {
		t.Errorf("second start pos %v, want cell centre", two.Maze.Starts[1].Pos)
	}
}

func TestBuild_LevelClampedToOne(t *testing.T) {
	if s := BuildSnapshot(0, 3, testViewport); s.Level != 1 {
		t.Errorf("BuildSnapshot(0).Level = %d, want 1", s.Level)
	}
}

func TestBuild_CustomTuning(t *testing.T) {
	tuning := difficulty.Default()
	tuning.Grid = difficulty.GridTuning{BaseCols: 4, MaxCols: 4, BaseRows: 4, MaxRows: 4}
	tuning.TwoBodiesFrom = 1

	s := NewBuilder(tuning).Build(1, 9, testViewport)
	if s.Maze.Cols() != 4 || s.Maze.Rows() != 4 {
		t.Errorf("grid = %dx%d, want 4x4", s.Maze.Cols(), s.Maze.Rows())
	}
	if s.BodyCount() != 2 {
		t.Errorf("BodyCount() = %d, want 2", s.BodyCount())
	}
	if err := Verify(s); err != nil {
		t.Errorf("Verify() = %v", err)
	}
}

func TestVerify_DetectsBadHazard(t *testing.T) {
	s := BuildSnapshot(3, 5, testViewport)
	s.Maze.Resets = append(s.Maze.Resets, entities.Reset{Cell: world.Coord{Col: 1, Row: 1}})
	if err := Verify(s); !errors.Is(err, ErrUnsound) {
		t.Errorf("Verify(reset next to start) = %v, want ErrUnsound", err)
	}
}
