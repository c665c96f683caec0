// Package difficulty maps a level number to maze size, hazard counts and
// timing, and physics tuning. Counts and timings are a pure function of the
// level; only hazard positions are left to the random source.
package difficulty

import (
	"math"

	"tiltmaze/pkg/engine/geom"
)

// Params is the full configuration for one level
type Params struct {
	Level int

	// Grid dimensions in cells
	Cols int
	Rows int

	// Desired hazard counts (placement may fall short)
	SpikeCount int
	ResetCount int

	// Spike timing: seconds per cycle and active fraction of the cycle
	SpikePeriod float64
	SpikeDuty   float64

	// Physics
	MaxAccel    float64 // units/s² at full tilt
	Damping     float64 // velocity factor per 1/60 s
	Restitution float64
	MaxStep     float64 // seconds; longer frames are clamped to this

	TwoBodies bool

	// Placement constraints, in cells
	SpikeSpacing    int
	ResetSpacing    int
	ExclusionRadius int
	PathMargin      int

	// Layout
	GoalInset     float64 // fraction of cell size
	WallThickness float64
	Padding       float64
}

// BodyCount returns how many balls the level has
func (p Params) BodyCount() int {
	if p.TwoBodies {
		return 2
	}
	return 1
}

// Cells returns cols × rows
func (p Params) Cells() int {
	return p.Cols * p.Rows
}

// ForLevel returns the parameters for the given level (1-based). Levels
// below 1 are treated as level 1. Every output moves monotonically with the
// level and stays within the tuning bounds.
func (t Tuning) ForLevel(level int) Params {
	if level < 1 {
		level = 1
	}
	l := float64(level)

	cols := grow(t.Grid.BaseCols, t.Grid.MaxCols, t.Grid.ColsEvery, level)
	rows := grow(t.Grid.BaseRows, t.Grid.MaxRows, t.Grid.RowsEvery, level)
	cells := cols * rows

	spikeCap := hazardCap(cells, t.Spikes.CellsPerHazard)
	resetCap := hazardCap(cells, t.Resets.CellsPerHazard)

	return Params{
		Level: level,
		Cols:  cols,
		Rows:  rows,

		SpikeCount: geom.ClampInt(int(math.Floor(t.Spikes.Base+l*t.Spikes.PerLevel)), t.Spikes.Min, spikeCap),
		ResetCount: geom.ClampInt(int(math.Floor(t.Resets.Base+l*t.Resets.PerLevel)), t.Resets.Min, resetCap),

		SpikePeriod: geom.Clamp(t.Timing.PeriodStart-l*t.Timing.PeriodStep, t.Timing.PeriodMin, t.Timing.PeriodStart),
		SpikeDuty:   geom.Clamp(t.Timing.DutyStart+l*t.Timing.DutyStep, t.Timing.DutyStart, t.Timing.DutyMax),

		MaxAccel:    geom.Clamp(t.Physics.AccelStart+l*t.Physics.AccelStep, t.Physics.AccelStart, t.Physics.AccelMax),
		Damping:     geom.Clamp(t.Physics.DampingStart-l*t.Physics.DampingStep, t.Physics.DampingMin, t.Physics.DampingStart),
		Restitution: t.Physics.Restitution,
		MaxStep:     t.Physics.MaxStep,

		TwoBodies: level >= t.TwoBodiesFrom,

		SpikeSpacing:    t.Spikes.Spacing,
		ResetSpacing:    t.Resets.Spacing,
		ExclusionRadius: t.Layout.ExclusionRadius,
		PathMargin:      t.Layout.PathMargin,

		GoalInset:     t.Layout.GoalInset,
		WallThickness: t.Layout.WallThickness,
		Padding:       t.Layout.Padding,
	}
}

// ForLevel returns the parameters for the given level using Default tuning
func ForLevel(level int) Params {
	return Default().ForLevel(level)
}

// hazardCap is the most hazards a grid of cells can hold at one per
// cellsPer cells. cellsPer <= 0 means one per cell.
func hazardCap(cells, cellsPer int) int {
	if cellsPer <= 0 {
		return max(1, cells)
	}
	return max(1, cells/cellsPer)
}

// grow adds one cell every `every` levels past level 1, capped at limit.
// every <= 0 disables growth.
func grow(base, limit, every, level int) int {
	if every <= 0 {
		return base
	}
	return geom.ClampInt(base+(level-1)/every, base, limit)
}
