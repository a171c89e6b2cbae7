package physics

import (
	"github.com/VectorPanic/rune-sdk-sub000/geom"
)

// Hitbox is the rectangle actually used for collision. It stores an offset
// rectangle in the owner's local coordinate space; every public coordinate
// is recomputed on access from the owner's current transform, so the
// hitbox can never drift out of sync with the body it belongs to. A hitbox
// is created by NewBody and never outlives its owner.
type Hitbox struct {
	owner  *Body
	offset geom.Rectangle
}

func newHitbox(owner *Body) *Hitbox {
	return &Hitbox{owner: owner}
}

// Set assigns the offset rectangle in the owner's local space.
func (h *Hitbox) Set(x, y, width, height float64) {
	h.offset = geom.Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Offset returns the raw offset rectangle as assigned by Set.
func (h *Hitbox) Offset() geom.Rectangle { return h.offset }

func (h *Hitbox) X() float64 { return h.owner.X + h.owner.ScaleX*h.offset.X }
func (h *Hitbox) Y() float64 { return h.owner.Y + h.owner.ScaleY*h.offset.Y }

func (h *Hitbox) Width() float64  { return h.owner.ScaleX * h.offset.Width }
func (h *Hitbox) Height() float64 { return h.owner.ScaleY * h.offset.Height }

func (h *Hitbox) Left() float64   { return h.X() }
func (h *Hitbox) Right() float64  { return h.X() + h.Width() }
func (h *Hitbox) Top() float64    { return h.Y() }
func (h *Hitbox) Bottom() float64 { return h.Y() + h.Height() }

// PreviousX returns the hitbox X derived from the owner's previous-tick
// position, enabling swept collision without a second hitbox snapshot.
func (h *Hitbox) PreviousX() float64 { return h.owner.LastX + h.owner.ScaleX*h.offset.X }

// PreviousY returns the hitbox Y derived from the owner's previous-tick
// position.
func (h *Hitbox) PreviousY() float64 { return h.owner.LastY + h.owner.ScaleY*h.offset.Y }

// Rect returns the hitbox as a world-space rectangle at the owner's
// current transform.
func (h *Hitbox) Rect() geom.Rectangle {
	return geom.Rectangle{X: h.X(), Y: h.Y(), Width: h.Width(), Height: h.Height()}
}

// PreviousRect returns the hitbox at the owner's previous-tick position.
func (h *Hitbox) PreviousRect() geom.Rectangle {
	return geom.Rectangle{X: h.PreviousX(), Y: h.PreviousY(), Width: h.Width(), Height: h.Height()}
}
