package physics

import "tiltmaze/pkg/game/entities"

// HitKind says which hazard, if any, caught a ball
type HitKind int

const (
	HitNone HitKind = iota
	HitReset
	HitSpike
)

// CheckHazards tests a ball against reset pads first, then spikes active at
// time t. The first hit wins.
func CheckHazards(b *entities.Body, resets []entities.Reset, spikes []entities.Spike, t float64) HitKind {
	for _, r := range resets {
		if Overlaps(b.Pos, b.Radius, r.Pos, r.Radius) {
			return HitReset
		}
	}
	for _, s := range spikes {
		if s.Active(t) && Overlaps(b.Pos, b.Radius, s.Pos, s.Radius) {
			return HitSpike
		}
	}
	return HitNone
}
