package difficulty

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForLevel_LevelOne(t *testing.T) {
	p := ForLevel(1)
	if p.Cols != 11 || p.Rows != 17 {
		t.Errorf("ForLevel(1) grid = %dx%d, want 11x17", p.Cols, p.Rows)
	}
	if p.SpikeCount != 1 {
		t.Errorf("ForLevel(1).SpikeCount = %d, want 1", p.SpikeCount)
	}
	if p.ResetCount != 2 {
		t.Errorf("ForLevel(1).ResetCount = %d, want 2", p.ResetCount)
	}
	if p.TwoBodies {
		t.Error("ForLevel(1).TwoBodies = true, want false")
	}
	if math.Abs(p.SpikePeriod-2.34) > 1e-9 {
		t.Errorf("ForLevel(1).SpikePeriod = %v, want 2.34", p.SpikePeriod)
	}
	if math.Abs(p.MaxAccel-1745) > 1e-9 {
		t.Errorf("ForLevel(1).MaxAccel = %v, want 1745", p.MaxAccel)
	}
}

func TestForLevel_BelowOneIsLevelOne(t *testing.T) {
	for _, level := range []int{0, -3} {
		if got, want := ForLevel(level), ForLevel(1); got != want {
			t.Errorf("ForLevel(%d) = %+v, want %+v", level, got, want)
		}
	}
}

func TestForLevel_TwoBodiesThreshold(t *testing.T) {
	if ForLevel(5).TwoBodies {
		t.Error("ForLevel(5).TwoBodies = true, want false")
	}
	if !ForLevel(6).TwoBodies {
		t.Error("ForLevel(6).TwoBodies = false, want true")
	}
	if got := ForLevel(6).BodyCount(); got != 2 {
		t.Errorf("ForLevel(6).BodyCount() = %d, want 2", got)
	}
}

func TestForLevel_MonotonicAndBounded(t *testing.T) {
	prev := ForLevel(1)
	for level := 1; level <= 200; level++ {
		p := ForLevel(level)

		if p.SpikeCount < 1 || p.SpikeCount > max(1, p.Cells()/24) {
			t.Errorf("level %d: SpikeCount %d out of bounds", level, p.SpikeCount)
		}
		if p.ResetCount > max(1, p.Cells()/18) {
			t.Errorf("level %d: ResetCount %d over capacity", level, p.ResetCount)
		}
		if p.SpikePeriod < 1.2 || p.SpikePeriod > 2.4 {
			t.Errorf("level %d: SpikePeriod %v out of [1.2, 2.4]", level, p.SpikePeriod)
		}
		if p.SpikeDuty < 0.45 || p.SpikeDuty > 0.65 {
			t.Errorf("level %d: SpikeDuty %v out of [0.45, 0.65]", level, p.SpikeDuty)
		}
		if p.MaxAccel < 1700 || p.MaxAccel > 2500 {
			t.Errorf("level %d: MaxAccel %v out of [1700, 2500]", level, p.MaxAccel)
		}
		if p.Damping < 0.986 || p.Damping > 0.995 {
			t.Errorf("level %d: Damping %v out of [0.986, 0.995]", level, p.Damping)
		}
		if p.Cols > 15 || p.Rows > 23 {
			t.Errorf("level %d: grid %dx%d over 15x23", level, p.Cols, p.Rows)
		}

		if level > 1 {
			if p.Cols < prev.Cols || p.Rows < prev.Rows {
				t.Errorf("level %d: grid shrank", level)
			}
			if p.SpikeCount < prev.SpikeCount || p.ResetCount < prev.ResetCount {
				t.Errorf("level %d: hazard counts dropped", level)
			}
			if p.SpikePeriod > prev.SpikePeriod || p.SpikeDuty < prev.SpikeDuty {
				t.Errorf("level %d: spikes got easier", level)
			}
			if p.MaxAccel < prev.MaxAccel || p.Damping > prev.Damping {
				t.Errorf("level %d: physics got easier", level)
			}
		}
		prev = p
	}
}

func TestForLevel_CapacityWinsOverFloor(t *testing.T) {
	tuning := Default()
	tuning.Grid = GridTuning{BaseCols: 3, MaxCols: 3, BaseRows: 3, MaxRows: 3}

	p := tuning.ForLevel(10)
	// 9 cells: both caps are max(1, 0) = 1, below the reset floor of 2
	if p.SpikeCount != 1 || p.ResetCount != 1 {
		t.Errorf("3x3 counts = %d spikes, %d resets; want 1, 1", p.SpikeCount, p.ResetCount)
	}
}

func TestForLevel_ZeroCellsPerHazard(t *testing.T) {
	tuning := Default()
	tuning.Spikes.CellsPerHazard = 0
	tuning.Resets.CellsPerHazard = -3

	for level := 1; level <= 30; level++ {
		p := tuning.ForLevel(level)
		if p.SpikeCount > p.Cells() || p.ResetCount > p.Cells() {
			t.Errorf("level %d: %d spikes, %d resets in %d cells", level, p.SpikeCount, p.ResetCount, p.Cells())
		}
	}
}

func TestForLevel_ZeroTuning(t *testing.T) {
	p := Tuning{}.ForLevel(4)
	if p.Level != 4 {
		t.Errorf("Level = %d, want 4", p.Level)
	}
	if p.SpikeCount < 0 || p.ResetCount < 0 {
		t.Errorf("negative counts: %d spikes, %d resets", p.SpikeCount, p.ResetCount)
	}
}

func TestForLevel_FixedGrid(t *testing.T) {
	tuning := Default()
	tuning.Grid.ColsEvery = 0
	tuning.Grid.RowsEvery = 0
	if p := tuning.ForLevel(50); p.Cols != 11 || p.Rows != 17 {
		t.Errorf("fixed grid at level 50 = %dx%d, want 11x17", p.Cols, p.Rows)
	}
}

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero cols", func(tu *Tuning) { tu.Grid.BaseCols = 0 }},
		{"max below base", func(tu *Tuning) { tu.Grid.MaxRows = 5 }},
		{"zero capacity", func(tu *Tuning) { tu.Spikes.CellsPerHazard = 0 }},
		{"inverted period", func(tu *Tuning) { tu.Timing.PeriodMin = 3 }},
		{"duty over one", func(tu *Tuning) { tu.Timing.DutyMax = 1.5 }},
		{"inverted accel", func(tu *Tuning) { tu.Physics.AccelMax = 100 }},
		{"zero damping", func(tu *Tuning) { tu.Physics.DampingMin = 0 }},
		{"zero step", func(tu *Tuning) { tu.Physics.MaxStep = 0 }},
		{"goal inset", func(tu *Tuning) { tu.Layout.GoalInset = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := Default()
			tt.mutate(&tu)
			if err := tu.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("Validate() = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestReadTuning_PartialKeepsDefaults(t *testing.T) {
	src := `
two_bodies_from: 3
physics:
  accel_max: 3000
`
	tu, err := ReadTuning(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTuning() error = %v", err)
	}
	if tu.TwoBodiesFrom != 3 {
		t.Errorf("TwoBodiesFrom = %d, want 3", tu.TwoBodiesFrom)
	}
	if tu.Physics.AccelMax != 3000 {
		t.Errorf("Physics.AccelMax = %v, want 3000", tu.Physics.AccelMax)
	}
	if tu.Physics.AccelStart != 1700 || tu.Grid.BaseCols != 11 {
		t.Errorf("omitted keys lost their defaults: %+v", tu)
	}
}

func TestReadTuning_Empty(t *testing.T) {
	tu, err := ReadTuning(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadTuning(empty) error = %v", err)
	}
	if tu != Default() {
		t.Errorf("ReadTuning(empty) = %+v, want defaults", tu)
	}
}

func TestReadTuning_Invalid(t *testing.T) {
	_, err := ReadTuning(strings.NewReader("grid:\n  base_cols: -1\n"))
	if !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("ReadTuning(base_cols -1) error = %v, want ErrInvalidTuning", err)
	}
	if _, err := ReadTuning(strings.NewReader("grid: [")); err == nil {
		t.Error("ReadTuning(malformed) error = nil")
	}
}

func TestTuning_WriteLoad(t *testing.T) {
	want := Default()
	want.Spikes.Spacing = 4
	want.Layout.GoalInset = 0.2

	var buf bytes.Buffer
	if err := WriteTuning(&buf, want); err != nil {
		t.Fatalf("WriteTuning() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning() error = %v", err)
	}
	if got != want {
		t.Errorf("LoadTuning() = %+v, want %+v", got, want)
	}
}

func TestLoadTuning_Missing(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadTuning(missing) error = nil")
	}
}
