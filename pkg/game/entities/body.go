// Package entities holds the simulated objects placed in a maze: balls,
// their start spots and the hazards that send them back.
package entities

import (
	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/engine/world"
)

// StartSpot is where a ball spawns and respawns
type StartSpot struct {
	Cell world.Coord
	Pos  geom.Vec2
}

// Body is a controllable ball
type Body struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Spot   int // index of the bound start spot
}

// NewBody creates a ball at rest on the given start spot
func NewBody(spots []StartSpot, spot int, radius float64) *Body {
	b := &Body{Radius: radius, Spot: spot}
	b.Respawn(spots)
	return b
}

// Respawn moves the ball back to its start spot and stops it. A spot index
// past the end falls back to the last spot.
func (b *Body) Respawn(spots []StartSpot) {
	if len(spots) == 0 {
		b.Vel = geom.Vec2{}
		return
	}
	i := min(b.Spot, len(spots)-1)
	b.Pos = spots[i].Pos
	b.Vel = geom.Vec2{}
}

// BodyRadius returns the ball radius for the given cell size
func BodyRadius(cellSize float64) float64 {
	return geom.Clamp(cellSize*0.28, 8, 16)
}
