// Package physics advances balls under tilt and resolves their contacts with
// maze walls and hazards.
package physics

import (
	"math"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/game/entities"
)

// ReferenceRate is the frame rate damping factors are expressed against
const ReferenceRate = 60.0

// ClampStep bounds a frame delta to [0, maxStep]
func ClampStep(delta, maxStep float64) float64 {
	return geom.Clamp(delta, 0, maxStep)
}

// TiltAccel converts a tilt vector into acceleration. Controls are inverted:
// tilting one way pushes the ball the other way.
func TiltAccel(tilt geom.Vec2, maxAccel float64) geom.Vec2 {
	return tilt.Scale(-maxAccel)
}

// Integrate advances one body by dt seconds with semi-implicit Euler.
// Damping is per reference frame, so dt*60 frames' worth is applied.
func Integrate(b *entities.Body, accel geom.Vec2, damping, dt float64) {
	b.Vel = b.Vel.Add(accel.Scale(dt))
	b.Vel = b.Vel.Scale(math.Pow(damping, dt*ReferenceRate))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}
