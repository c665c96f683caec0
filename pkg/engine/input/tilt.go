package input

import (
	"math"
	"time"

	"tiltmaze/pkg/engine/geom"
)

// MaxPointerDegrees is the tilt reached at the edge of the window when
// steering with a pointer
const MaxPointerDegrees = 45.0

// Orientation is a device attitude in degrees: Beta is front-back tilt,
// Gamma left-right tilt
type Orientation struct {
	Beta  float64
	Gamma float64
}

// Tilt turns orientation readings into the tilt vector the simulation
// consumes. The zero value is ready to use with no calibration and no
// reading, which yields zero tilt.
type Tilt struct {
	current    Orientation
	zero       Orientation
	hasReading bool
}

// Update stores the latest reading
func (t *Tilt) Update(o Orientation) {
	t.current = o
	t.hasReading = true
}

// Calibrate makes the current reading the neutral attitude
func (t *Tilt) Calibrate() {
	t.zero = t.current
}

// ResetCalibration restores a level neutral attitude
func (t *Tilt) ResetCalibration() {
	t.zero = Orientation{}
}

// Pointer takes a reading from a pointer position inside a w×h area: the
// centre is level and the edges are ±MaxPointerDegrees
func (t *Tilt) Pointer(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	t.Update(Orientation{
		Gamma: geom.Clamp((x/w-0.5)*2*MaxPointerDegrees, -MaxPointerDegrees, MaxPointerDegrees),
		Beta:  geom.Clamp((y/h-0.5)*2*MaxPointerDegrees, -MaxPointerDegrees, MaxPointerDegrees),
	})
}

// Vector returns the calibrated tilt as the sine of each angle: X from
// Gamma, Y from Beta
func (t *Tilt) Vector() geom.Vec2 {
	if !t.hasReading {
		return geom.Vec2{}
	}
	return geom.V(
		math.Sin((t.current.Gamma-t.zero.Gamma)*math.Pi/180),
		math.Sin((t.current.Beta-t.zero.Beta)*math.Pi/180),
	)
}

// KeyTilt produces a tilt vector from directional key presses. Terminals
// only report presses (repeated while held), so each press holds its
// direction for a short window.
type KeyTilt struct {
	Hold     time.Duration
	Strength float64 // tilt magnitude per axis, 0..1

	last map[Action]time.Time
}

// NewKeyTilt returns a KeyTilt holding each press for hold
func NewKeyTilt(hold time.Duration, strength float64) *KeyTilt {
	return &KeyTilt{
		Hold:     hold,
		Strength: strength,
		last:     make(map[Action]time.Time),
	}
}

// Press records a tilt action at time now. Other actions are ignored.
func (k *KeyTilt) Press(a Action, now time.Time) {
	switch a {
	case ActionTiltUp, ActionTiltDown, ActionTiltLeft, ActionTiltRight:
		k.last[a] = now
	}
}

// Release forgets every held direction
func (k *KeyTilt) Release() {
	clear(k.last)
}

func (k *KeyTilt) held(a Action, now time.Time) bool {
	t, ok := k.last[a]
	return ok && now.Sub(t) <= k.Hold
}

// Vector returns the tilt at time now. The vector points the way the
// keys say; the simulation inverts it.
func (k *KeyTilt) Vector(now time.Time) geom.Vec2 {
	var v geom.Vec2
	if k.held(ActionTiltLeft, now) {
		v.X -= k.Strength
	}
	if k.held(ActionTiltRight, now) {
		v.X += k.Strength
	}
	if k.held(ActionTiltUp, now) {
		v.Y -= k.Strength
	}
	if k.held(ActionTiltDown, now) {
		v.Y += k.Strength
	}
	return v
}
