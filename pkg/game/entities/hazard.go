package entities

import (
	"math"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/engine/world"
)

// HazardKind represents the different maze hazards
type HazardKind int

const (
	HazardReset HazardKind = iota // Static pad - sends the ball back to its start
	HazardSpike                   // Timed spike - sends the ball back while active
)

// HazardInfo contains display information for each hazard kind
type HazardInfo struct {
	NameKey      string // gotext key
	Icon         string
	IconInactive string
}

// HazardKinds maps hazard kinds to their display information
var HazardKinds = map[HazardKind]HazardInfo{
	HazardReset: {
		NameKey:      "HAZARD_RESET",
		Icon:         "◎",
		IconInactive: "◎",
	},
	HazardSpike: {
		NameKey:      "HAZARD_SPIKE",
		Icon:         "✸",
		IconInactive: "·",
	},
}

// Reset is a static hazard. Overlapping it teleports a body back to its
// start spot with zero velocity.
type Reset struct {
	Cell   world.Coord
	Pos    geom.Vec2
	Radius float64
}

// Spike is a periodic hazard that is only dangerous while active
type Spike struct {
	Cell   world.Coord
	Pos    geom.Vec2
	Radius float64

	Period float64 // seconds per cycle, > 0
	Duty   float64 // active fraction of the cycle, in (0, 1)
	Phase  float64 // seconds, in [0, Period)
}

// Phase01 returns the position within the cycle at time t as a fraction in
// [0, 1). Negative times wrap like positive ones.
func (s Spike) Phase01(t float64) float64 {
	if s.Period <= 0 {
		return 0
	}
	m := math.Mod(t+s.Phase, s.Period)
	if m < 0 {
		m += s.Period
	}
	return m / s.Period
}

// Active reports whether the spike is extended at time t
func (s Spike) Active(t float64) bool {
	return s.Phase01(t) < s.Duty
}

// HazardRadius returns the drawn and collision radius of a hazard for the
// given cell size
func HazardRadius(cellSize float64) float64 {
	return geom.Clamp(cellSize*0.22, 6, 14)
}
