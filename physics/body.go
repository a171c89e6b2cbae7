package physics

import (
	"github.com/VectorPanic/rune-sdk-sub000/geom"
)

// Body is the physical state of a collidable entity: transform, motion and
// contact flags. Game objects embed or wrap a Body (the ECS layer wraps it
// in a component) and the collision core mutates it in place; a single
// Separate call is the unit of atomicity.
type Body struct {
	// Position of the owner's origin, and the position saved at the start
	// of the current tick. The previous position is what makes swept
	// collision possible without a second hitbox snapshot.
	X, Y         float64
	LastX, LastY float64

	// Scale applied to the hitbox offset rectangle.
	ScaleX, ScaleY float64

	Velocity     geom.Vector2D
	Acceleration geom.Vector2D
	MaxVelocity  geom.Vector2D

	// Rotation is not part of collision; the scalar angular velocity is
	// integrated and passed through unchanged.
	Rotation        float64
	AngularVelocity float64

	Mass       float64
	Elasticity float64
	Immovable  bool

	// Sticky marks an immovable surface that drags resting entities along
	// with its own horizontal motion (moving-platform semantics).
	Sticky bool

	// AllowCollisions gates which sides this body may be struck from.
	AllowCollisions Direction

	// Touching is rebuilt every tick by the solver; Touched holds the
	// previous tick's value.
	Touching Direction
	Touched  Direction

	Hitbox *Hitbox
}

// NewBody returns a movable body at (x, y) with a hitbox of the given size
// anchored at the owner origin. Mass defaults to 1 and all collision
// directions are allowed.
func NewBody(x, y, width, height float64) *Body {
	b := &Body{
		X: x, Y: y,
		LastX: x, LastY: y,
		ScaleX: 1, ScaleY: 1,
		MaxVelocity:     geom.Vector2D{X: 10000, Y: 10000},
		Mass:            1,
		AllowCollisions: Any,
	}
	b.Hitbox = newHitbox(b)
	b.Hitbox.Set(0, 0, width, height)
	return b
}

// SavePosition snapshots the current position as the previous-tick
// position. Call once per tick before moving the body.
func (b *Body) SavePosition() {
	b.LastX = b.X
	b.LastY = b.Y
}

// AdvanceTouching rolls the touching record over to touched and clears it
// for the coming tick.
func (b *Body) AdvanceTouching() {
	b.Touched = b.Touching
	b.Touching = None
}

// IsTouching reports whether the body is in contact along any of the given
// directions this tick.
func (b *Body) IsTouching(dir Direction) bool { return b.Touching&dir != None }

// JustTouched reports whether contact along the given directions began
// this tick.
func (b *Body) JustTouched(dir Direction) bool {
	return b.Touching&dir != None && b.Touched&dir == None
}

// Integrate advances position and velocity by the elapsed time in seconds.
// The caller supplies the time step explicitly; the core keeps no clock.
func (b *Body) Integrate(dt float64) {
	b.Velocity.X = clampAbs(b.Velocity.X+b.Acceleration.X*dt, b.MaxVelocity.X)
	b.Velocity.Y = clampAbs(b.Velocity.Y+b.Acceleration.Y*dt, b.MaxVelocity.Y)
	b.X += b.Velocity.X * dt
	b.Y += b.Velocity.Y * dt
	b.Rotation += b.AngularVelocity * dt
}

func clampAbs(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return geom.Clamp(v, -limit, limit)
}
