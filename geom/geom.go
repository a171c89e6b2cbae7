// Package geom provides the axis-aligned rectangle and vector primitives
// shared by the collision, tilemap and ECS layers. It has no dependencies
// on ebitengine or donburi.
package geom

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Vector2D is a direction with magnitude, used for velocity and
// acceleration.
type Vector2D struct {
	X, Y float64
}

// Rectangle is an axis-aligned rectangle described by its top-left corner
// and size.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangle returns a rectangle with the given position and size.
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

func (r Rectangle) Left() float64   { return r.X }
func (r Rectangle) Right() float64  { return r.X + r.Width }
func (r Rectangle) Top() float64    { return r.Y }
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center of the rectangle.
func (r Rectangle) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rectangle) CenterY() float64 { return r.Y + r.Height/2 }

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point { return Point{X: r.CenterX(), Y: r.CenterY()} }

// Corners returns the four corner points in TL, TR, BL, BR order.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.X, r.Bottom()},
		{r.Right(), r.Bottom()},
	}
}

// Intersects reports whether the two rectangles overlap. Touching edges
// count as an intersection.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.Right() >= o.X && o.Right() >= r.X &&
		r.Bottom() >= o.Y && o.Bottom() >= r.Y
}

// ContainsPoint reports whether the point lies inside the rectangle,
// bounds inclusive.
func (r Rectangle) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// IsPoint reports whether the rectangle has zero size.
func (r Rectangle) IsPoint() bool { return r.Width == 0 && r.Height == 0 }

// Clamp constrains a value to the range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
