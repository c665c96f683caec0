package physics

import (
	"math"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/game/entities"
)

// DefaultRestitution is the bounce kept when a ball hits a wall
const DefaultRestitution = 0.12

// ResolveCircleRect pushes a ball out of a rectangle it overlaps and reflects
// the inbound part of its velocity along the contact normal. Returns whether
// there was a contact.
func ResolveCircleRect(b *entities.Body, rect geom.Rect, restitution float64) bool {
	closest := rect.ClosestPoint(b.Pos)
	diff := b.Pos.Sub(closest)
	dist := diff.Len()
	if dist >= b.Radius {
		return false
	}

	var normal geom.Vec2
	push := b.Radius - dist
	if dist > 0 {
		normal = diff.Scale(1 / dist)
	} else {
		// Centre on or inside the rectangle: leave through the face on the
		// axis with the larger offset from the rectangle centre, clearing
		// that face by the full radius. Ties go vertical.
		offset := b.Pos.Sub(rect.Center())
		if math.Abs(offset.X) > math.Abs(offset.Y) {
			normal = geom.V(sign(offset.X), 0)
			push = rect.W/2 - math.Abs(offset.X) + b.Radius
		} else {
			normal = geom.V(0, sign(offset.Y))
			push = rect.H/2 - math.Abs(offset.Y) + b.Radius
		}
	}

	b.Pos = b.Pos.Add(normal.Scale(push))

	if vn := b.Vel.Dot(normal); vn < 0 {
		b.Vel = b.Vel.Sub(normal.Scale((1 + restitution) * vn))
	}
	return true
}

// ResolveWalls resolves the body against each rectangle once, in order.
// Returns the number of contacts.
func ResolveWalls(b *entities.Body, rects []geom.Rect, restitution float64) int {
	contacts := 0
	for _, r := range rects {
		if ResolveCircleRect(b, r, restitution) {
			contacts++
		}
	}
	return contacts
}

// Overlaps reports whether two circles touch or overlap
func Overlaps(a geom.Vec2, ra float64, b geom.Vec2, rb float64) bool {
	rr := ra + rb
	return a.Sub(b).LenSq() <= rr*rr
}

// sign returns -1 for negative values and +1 otherwise
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
