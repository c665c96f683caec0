package difficulty

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned (wrapped) when tuning values are out of range
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the constants behind the difficulty curve. The defaults were
// tuned by playtesting; only the clamp shape matters semantically.
type Tuning struct {
	Grid          GridTuning    `yaml:"grid"`
	Spikes        HazardTuning  `yaml:"spikes"`
	Resets        HazardTuning  `yaml:"resets"`
	Timing        SpikeTiming   `yaml:"spike_timing"`
	Physics       PhysicsTuning `yaml:"physics"`
	Layout        LayoutTuning  `yaml:"layout"`
	TwoBodiesFrom int           `yaml:"two_bodies_from"`
}

// GridTuning controls maze size growth
type GridTuning struct {
	BaseCols  int `yaml:"base_cols"`
	MaxCols   int `yaml:"max_cols"`
	ColsEvery int `yaml:"cols_every"` // levels per extra column, 0 = fixed
	BaseRows  int `yaml:"base_rows"`
	MaxRows   int `yaml:"max_rows"`
	RowsEvery int `yaml:"rows_every"`
}

// HazardTuning controls the desired count and spacing of one hazard kind
type HazardTuning struct {
	Base           float64 `yaml:"base"`
	PerLevel       float64 `yaml:"per_level"`
	Min            int     `yaml:"min"`
	CellsPerHazard int     `yaml:"cells_per_hazard"` // capacity cap: at most cells/N
	Spacing        int     `yaml:"spacing"`          // minimum Manhattan distance in cells
}

// SpikeTiming controls the spike on/off cycle
type SpikeTiming struct {
	PeriodStart float64 `yaml:"period_start"`
	PeriodStep  float64 `yaml:"period_step"`
	PeriodMin   float64 `yaml:"period_min"`
	DutyStart   float64 `yaml:"duty_start"`
	DutyStep    float64 `yaml:"duty_step"`
	DutyMax     float64 `yaml:"duty_max"`
}

// PhysicsTuning controls acceleration, damping and contacts
type PhysicsTuning struct {
	AccelStart   float64 `yaml:"accel_start"`
	AccelStep    float64 `yaml:"accel_step"`
	AccelMax     float64 `yaml:"accel_max"`
	DampingStart float64 `yaml:"damping_start"`
	DampingStep  float64 `yaml:"damping_step"`
	DampingMin   float64 `yaml:"damping_min"` // floor that keeps integration stable
	Restitution  float64 `yaml:"restitution"`
	MaxStep      float64 `yaml:"max_step"`
}

// LayoutTuning controls geometry and placement margins
type LayoutTuning struct {
	WallThickness   float64 `yaml:"wall_thickness"`
	Padding         float64 `yaml:"padding"`
	ExclusionRadius int     `yaml:"exclusion_radius"` // Chebyshev cells around starts and exit
	PathMargin      int     `yaml:"path_margin"`      // path cells skipped at each end for spikes
	GoalInset       float64 `yaml:"goal_inset"`
}

// Default returns the stock tuning
func Default() Tuning {
	return Tuning{
		Grid: GridTuning{
			BaseCols: 11, MaxCols: 15, ColsEvery: 4,
			BaseRows: 17, MaxRows: 23, RowsEvery: 3,
		},
		Spikes: HazardTuning{Base: 1, PerLevel: 0.6, Min: 1, CellsPerHazard: 24, Spacing: 3},
		Resets: HazardTuning{Base: 2, PerLevel: 0.8, Min: 2, CellsPerHazard: 18, Spacing: 3},
		Timing: SpikeTiming{
			PeriodStart: 2.4, PeriodStep: 0.06, PeriodMin: 1.2,
			DutyStart: 0.45, DutyStep: 0.01, DutyMax: 0.65,
		},
		Physics: PhysicsTuning{
			AccelStart: 1700, AccelStep: 45, AccelMax: 2500,
			DampingStart: 0.995, DampingStep: 0.0004, DampingMin: 0.986,
			Restitution: 0.12,
			MaxStep:     0.033,
		},
		Layout: LayoutTuning{
			WallThickness:   10,
			Padding:         16,
			ExclusionRadius: 1,
			PathMargin:      2,
			GoalInset:       0.25,
		},
		TwoBodiesFrom: 6,
	}
}

// Validate checks that every bound is usable
func (t Tuning) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(t.Grid.BaseCols >= 1 && t.Grid.BaseRows >= 1, "grid base dimensions must be >= 1")
	check(t.Grid.MaxCols >= t.Grid.BaseCols, "grid.max_cols below base_cols")
	check(t.Grid.MaxRows >= t.Grid.BaseRows, "grid.max_rows below base_rows")
	check(t.Spikes.CellsPerHazard > 0 && t.Resets.CellsPerHazard > 0, "cells_per_hazard must be > 0")
	check(t.Spikes.Spacing >= 0 && t.Resets.Spacing >= 0, "spacing must be >= 0")
	check(t.Timing.PeriodMin > 0 && t.Timing.PeriodMin <= t.Timing.PeriodStart, "spike period range inverted or non-positive")
	check(t.Timing.DutyStart >= 0 && t.Timing.DutyStart <= t.Timing.DutyMax && t.Timing.DutyMax <= 1, "spike duty must satisfy 0 <= start <= max <= 1")
	check(t.Physics.AccelStart >= 0 && t.Physics.AccelMax >= t.Physics.AccelStart, "acceleration range inverted")
	check(t.Physics.DampingMin > 0 && t.Physics.DampingMin <= t.Physics.DampingStart && t.Physics.DampingStart <= 1, "damping must satisfy 0 < min <= start <= 1")
	check(t.Physics.Restitution >= 0, "restitution must be >= 0")
	check(t.Physics.MaxStep > 0, "max_step must be > 0")
	check(t.Layout.WallThickness >= 0 && t.Layout.Padding >= 0, "layout sizes must be >= 0")
	check(t.Layout.ExclusionRadius >= 0 && t.Layout.PathMargin >= 0, "layout margins must be >= 0")
	check(t.Layout.GoalInset >= 0 && t.Layout.GoalInset < 0.5, "goal_inset must be in [0, 0.5)")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTuning, problems)
	}
	return nil
}

// LoadTuning reads a YAML tuning file. Keys missing from the file keep their
// default values.
func LoadTuning(path string) (Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	return ReadTuning(f)
}

// ReadTuning decodes YAML tuning from r on top of the defaults
func ReadTuning(r io.Reader) (Tuning, error) {
	t := Default()
	if err := yaml.NewDecoder(r).Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// WriteTuning encodes t as YAML
func WriteTuning(w io.Writer, t Tuning) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode tuning: %w", err)
	}
	return enc.Close()
}
