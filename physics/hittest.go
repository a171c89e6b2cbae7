package physics

import (
	"fmt"

	"github.com/VectorPanic/rune-sdk-sub000/geom"
)

// Callback receives the two bodies involved in a hit. For HitTest it runs
// on every overlapping pair before the result is returned; for
// HitTestAndSeparate it runs only when the separation actually moved
// something. Callbacks run synchronously and may mutate the world,
// including removing the objects being iterated.
type Callback func(self, other *Body)

// Target is the closed set of things a hit test can be run against: a
// single body, a group, a container, a point, a tile layer (through
// TileTarget) or a heterogeneous list. The kind is dispatched with a type
// switch; an unknown kind is a programming error.
type Target interface {
	hitTestTarget()
}

func (*Body) hitTestTarget()      {}
func (*Group) hitTestTarget()     {}
func (*Container) hitTestTarget() {}
func (TargetList) hitTestTarget() {}
func (pointTarget) hitTestTarget() {}
func (tileTarget) hitTestTarget()  {}

// TargetList fans a hit test out over each element, OR-ing the results.
type TargetList []Target

type pointTarget geom.Point

// AtPoint wraps a pixel-space point as a hit-test target. Point tests use
// inclusive containment against the hitbox rectangle.
func AtPoint(x, y float64) Target { return pointTarget{X: x, Y: y} }

// TileCollider is the seam through which a tile layer participates in hit
// testing: it runs the tile-vs-body narrow phase (and optionally
// separation) against the body's hitbox.
type TileCollider interface {
	CollideBody(b *Body, separate bool, cb Callback) bool
}

type tileTarget struct {
	c TileCollider
}

// TileTarget wraps a tile layer as a hit-test target.
func TileTarget(c TileCollider) Target { return tileTarget{c: c} }

// HitTest reports whether subject and target overlap, invoking cb for each
// overlapping entity pair. No positions are changed.
func HitTest(subject, target Target, cb Callback) bool {
	return dispatch(subject, target, false, cb)
}

// HitTestAndSeparate resolves overlaps between subject and target through
// the separation solver, mutating positions, velocities and touching
// flags. cb is invoked only for pairs the solver actually moved. It
// reports whether anything moved.
func HitTestAndSeparate(subject, target Target, cb Callback) bool {
	return dispatch(subject, target, true, cb)
}

func dispatch(subject, target Target, separate bool, cb Callback) bool {
	switch s := subject.(type) {
	case *Body:
		return bodyTest(s, target, separate, cb)
	case *Group:
		return groupTest(s, target, separate, cb)
	case *Container:
		hit := false
		// Reverse order tolerates removal of the current child from
		// inside a callback.
		for i := len(s.children) - 1; i >= 0; i-- {
			if i >= len(s.children) {
				continue
			}
			if dispatch(s.children[i], target, separate, cb) {
				hit = true
			}
		}
		return hit
	case TargetList:
		hit := false
		for _, element := range s {
			if dispatch(element, target, separate, cb) {
				hit = true
			}
		}
		return hit
	case pointTarget, tileTarget:
		// Points and tile layers carry no traversal of their own; flip
		// the pair so the entity side drives.
		switch target.(type) {
		case pointTarget, tileTarget:
			panic(fmt.Sprintf("physics: cannot hit test %T against %T", subject, target))
		}
		return dispatch(target, subject, separate, cb)
	default:
		panic(fmt.Sprintf("physics: unknown hit test target %T", subject))
	}
}

// groupTest runs the members of g against the target. When the target has
// a definite query rectangle the group's broad phase prunes the member
// set; otherwise every member is tested and the target side does its own
// pruning.
func groupTest(g *Group, target Target, separate bool, cb Callback) bool {
	hit := false
	if query, ok := targetRect(target); ok && g.UseQuadtree {
		for _, member := range g.candidates(query) {
			if bodyTest(member, target, separate, cb) {
				hit = true
			}
		}
		return hit
	}
	for i := len(g.members) - 1; i >= 0; i-- {
		if i >= len(g.members) {
			continue
		}
		if bodyTest(g.members[i], target, separate, cb) {
			hit = true
		}
	}
	return hit
}

// targetRect returns the query rectangle for targets that have one (a
// body's hitbox, or a point as a zero-size rectangle).
func targetRect(target Target) (geom.Rectangle, bool) {
	switch t := target.(type) {
	case *Body:
		return t.Hitbox.Rect(), true
	case pointTarget:
		return geom.Rectangle{X: t.X, Y: t.Y}, true
	}
	return geom.Rectangle{}, false
}

// bodyTest reduces every target kind down to pairwise narrow-phase tests
// against a single body.
func bodyTest(b *Body, target Target, separate bool, cb Callback) bool {
	switch t := target.(type) {
	case *Body:
		if t == b {
			return false
		}
		if !b.Hitbox.Rect().Intersects(t.Hitbox.Rect()) {
			return false
		}
		if separate {
			moved := Separate(b, t)
			if moved && cb != nil {
				cb(b, t)
			}
			return moved
		}
		if cb != nil {
			cb(b, t)
		}
		return true

	case *Group:
		hit := false
		for _, candidate := range t.candidates(b.Hitbox.Rect()) {
			if candidate == b {
				continue
			}
			if bodyTest(b, candidate, separate, cb) {
				hit = true
			}
		}
		return hit

	case *Container:
		hit := false
		for i := len(t.children) - 1; i >= 0; i-- {
			if i >= len(t.children) {
				continue
			}
			if bodyTest(b, t.children[i], separate, cb) {
				hit = true
			}
		}
		return hit

	case pointTarget:
		return b.Hitbox.Rect().ContainsPoint(geom.Point(t))

	case tileTarget:
		return t.c.CollideBody(b, separate, cb)

	case TargetList:
		hit := false
		for _, element := range t {
			if bodyTest(b, element, separate, cb) {
				hit = true
			}
		}
		return hit

	default:
		panic(fmt.Sprintf("physics: unknown hit test target %T", target))
	}
}

// HitTest reports whether the body overlaps the target. See the package
// HitTest function.
func (b *Body) HitTest(target Target, cb Callback) bool {
	return HitTest(b, target, cb)
}

// HitTestAndSeparate resolves overlaps between the body and the target.
// See the package HitTestAndSeparate function.
func (b *Body) HitTestAndSeparate(target Target, cb Callback) bool {
	return HitTestAndSeparate(b, target, cb)
}
