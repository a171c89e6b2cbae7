package physics

import (
	"math"

	"github.com/VectorPanic/rune-sdk-sub000/geom"
)

// OverlapBias is the slack, in pixels, added when deciding whether a
// detected overlap is real or a numerical/speed artifact.
const OverlapBias = 2.0

// Separate resolves the overlap between two bodies, X axis first, then Y.
// It reports whether either axis moved anything. A rejected overlap
// (exceeding the bias, or disallowed by either side's permission mask) is
// a normal outcome, not an error.
func Separate(a, b *Body) bool {
	movedX := SeparateX(a, b)
	movedY := SeparateY(a, b)
	return movedX || movedY
}

// SeparateX resolves horizontal overlap between two bodies and applies the
// velocity response. It reports whether anything moved.
func SeparateX(a, b *Body) bool {
	if a.Immovable && b.Immovable {
		return false
	}

	deltaA := a.Hitbox.X() - a.Hitbox.PreviousX()
	deltaB := b.Hitbox.X() - b.Hitbox.PreviousX()
	if deltaA == deltaB {
		return false
	}

	// Sweep each hitbox backward along its own delta so the test covers
	// every position it occupied this tick.
	sweptA := sweptRectX(a, deltaA)
	sweptB := sweptRectX(b, deltaB)

	var overlap float64
	if sweptA.Intersects(sweptB) {
		maxOverlap := math.Abs(deltaA) + math.Abs(deltaB) + OverlapBias
		if deltaA > deltaB {
			overlap = a.Hitbox.Right() - b.Hitbox.X()
			if overlap > maxOverlap ||
				!a.AllowCollisions.Has(Right) || !b.AllowCollisions.Has(Left) {
				overlap = 0
			} else {
				a.Touching |= Right
				b.Touching |= Left
			}
		} else {
			overlap = a.Hitbox.X() - b.Hitbox.Width() - b.Hitbox.X()
			if -overlap > maxOverlap ||
				!a.AllowCollisions.Has(Left) || !b.AllowCollisions.Has(Right) {
				overlap = 0
			} else {
				a.Touching |= Left
				b.Touching |= Right
			}
		}
	}

	if overlap == 0 {
		return false
	}

	va := a.Velocity.X
	vb := b.Velocity.X
	switch {
	case !a.Immovable && !b.Immovable:
		overlap *= 0.5
		a.X -= overlap
		b.X += overlap
		a.Velocity.X, b.Velocity.X = respond(va, vb, a, b)
	case !a.Immovable:
		a.X -= overlap
		a.Velocity.X = vb - va*a.Elasticity
	case !b.Immovable:
		b.X += overlap
		b.Velocity.X = va - vb*b.Elasticity
	}
	return true
}

// SeparateY resolves vertical overlap between two bodies, including the
// sticky moving-platform transfer of horizontal motion. It reports whether
// anything moved.
func SeparateY(a, b *Body) bool {
	if a.Immovable && b.Immovable {
		return false
	}

	deltaA := a.Hitbox.Y() - a.Hitbox.PreviousY()
	deltaB := b.Hitbox.Y() - b.Hitbox.PreviousY()
	if deltaA == deltaB {
		return false
	}

	sweptA := sweptRectY(a, deltaA)
	sweptB := sweptRectY(b, deltaB)

	var overlap float64
	if sweptA.Intersects(sweptB) {
		maxOverlap := math.Abs(deltaA) + math.Abs(deltaB) + OverlapBias
		if deltaA > deltaB {
			overlap = a.Hitbox.Bottom() - b.Hitbox.Y()
			if overlap > maxOverlap ||
				!a.AllowCollisions.Has(Down) || !b.AllowCollisions.Has(Up) {
				overlap = 0
			} else {
				a.Touching |= Down
				b.Touching |= Up
			}
		} else {
			overlap = a.Hitbox.Y() - b.Hitbox.Height() - b.Hitbox.Y()
			if -overlap > maxOverlap ||
				!a.AllowCollisions.Has(Up) || !b.AllowCollisions.Has(Down) {
				overlap = 0
			} else {
				a.Touching |= Up
				b.Touching |= Down
			}
		}
	}

	if overlap == 0 {
		return false
	}

	va := a.Velocity.Y
	vb := b.Velocity.Y
	switch {
	case !a.Immovable && !b.Immovable:
		overlap *= 0.5
		a.Y -= overlap
		b.Y += overlap
		a.Velocity.Y, b.Velocity.Y = respond(va, vb, a, b)
	case !a.Immovable:
		a.Y -= overlap
		a.Velocity.Y = vb - va*a.Elasticity
		// Riding a sticky platform: the platform's own horizontal motion
		// carries the body resting on it.
		if b.Sticky && deltaA > deltaB {
			a.X += b.X - b.LastX
		}
	case !b.Immovable:
		b.Y += overlap
		b.Velocity.Y = va - vb*b.Elasticity
		if a.Sticky && deltaA < deltaB {
			b.X += a.X - a.LastX
		}
	}
	return true
}

// respond computes the post-collision speeds for two movable bodies: a
// mass-weighted elastic exchange averaged between the two sides, with each
// side's deviation from the average scaled by its own elasticity.
func respond(va, vb float64, a, b *Body) (newVA, newVB float64) {
	newVA, newVB = exchange(va, vb, a.Mass, b.Mass)
	average := (newVA + newVB) * 0.5
	newVA -= average
	newVB -= average
	newVA = average + newVA*a.Elasticity
	newVB = average + newVB*b.Elasticity
	return newVA, newVB
}

// exchange transfers each body's momentum to the other, preserving the
// direction of the donor's motion.
func exchange(va, vb, massA, massB float64) (float64, float64) {
	newVA := math.Sqrt(vb*vb*massB/massA) * sign(vb)
	newVB := math.Sqrt(va*va*massA/massB) * sign(va)
	return newVA, newVB
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

// sweptRectX extends the hitbox backward along its horizontal delta,
// keeping the previous-tick vertical position.
func sweptRectX(b *Body, delta float64) geom.Rectangle {
	r := geom.Rectangle{
		X:      b.Hitbox.X(),
		Y:      b.Hitbox.PreviousY(),
		Width:  b.Hitbox.Width() + math.Abs(delta),
		Height: b.Hitbox.Height(),
	}
	if delta > 0 {
		r.X -= delta
	}
	return r
}

// sweptRectY extends the hitbox backward along its vertical delta, keeping
// the previous-tick horizontal position.
func sweptRectY(b *Body, delta float64) geom.Rectangle {
	r := geom.Rectangle{
		X:      b.Hitbox.PreviousX(),
		Y:      b.Hitbox.Y(),
		Width:  b.Hitbox.Width(),
		Height: b.Hitbox.Height() + math.Abs(delta),
	}
	if delta > 0 {
		r.Y -= delta
	}
	return r
}
