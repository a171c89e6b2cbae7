package physics

import (
	"github.com/VectorPanic/rune-sdk-sub000/geom"
)

// Quadtree broad-phase defaults, used when a Group enables indexing
// without tuning them.
const (
	QuadtreeThreshold = 8
	QuadtreeMaxDepth  = 6
)

// Quadrant indices, fixed order.
const (
	quadTL = iota
	quadTR
	quadBL
	quadBR
)

// Quadtree is a recursive spatial index over rectangles. Members are
// classified by which child quadrants their corners fall into; a rectangle
// straddling a quadrant boundary is registered in every quadrant it
// touches rather than clipped, and retrieval de-duplicates. Intended to be
// rebuilt from scratch for each query cycle.
type Quadtree[T comparable] struct {
	bounds    geom.Rectangle
	threshold int
	maxDepth  int
	depth     int

	members  []quadMember[T]
	children [4]*Quadtree[T]
	divided  bool
}

type quadMember[T comparable] struct {
	rect  geom.Rectangle
	value T
}

// NewQuadtree returns an empty tree covering bounds. A node splits once it
// holds more than threshold members, down to maxDepth levels.
func NewQuadtree[T comparable](bounds geom.Rectangle, threshold, maxDepth int) *Quadtree[T] {
	if threshold <= 0 {
		threshold = QuadtreeThreshold
	}
	if maxDepth <= 0 {
		maxDepth = QuadtreeMaxDepth
	}
	return &Quadtree[T]{bounds: bounds, threshold: threshold, maxDepth: maxDepth}
}

// Bounds returns the region this node covers.
func (q *Quadtree[T]) Bounds() geom.Rectangle { return q.bounds }

// Clear empties the whole subtree, resetting the node to a single empty
// leaf.
func (q *Quadtree[T]) Clear() {
	q.members = q.members[:0]
	for i := range q.children {
		if q.children[i] != nil {
			q.children[i].Clear()
			q.children[i] = nil
		}
	}
	q.divided = false
}

// center returns the quadrant boundary point. Halving truncates to whole
// pixels so the four children partition the bounds exactly.
func (q *Quadtree[T]) center() (cx, cy float64) {
	cx = q.bounds.X + float64(int(q.bounds.Width)>>1)
	cy = q.bounds.Y + float64(int(q.bounds.Height)>>1)
	return cx, cy
}

// indexOfPoint classifies a point against the node center. A point exactly
// on a center line resolves toward the lower index (left/top).
func (q *Quadtree[T]) indexOfPoint(p geom.Point) int {
	cx, cy := q.center()
	index := quadTL
	if p.X > cx {
		index |= 1
	}
	if p.Y > cy {
		index |= 2
	}
	return index
}

// indexOfRect returns the de-duplicated set of quadrants the rectangle's
// four corners fall into, as a presence array indexed by quadrant.
func (q *Quadtree[T]) indexOfRect(r geom.Rectangle) [4]bool {
	var set [4]bool
	for _, corner := range r.Corners() {
		set[q.indexOfPoint(corner)] = true
	}
	return set
}

// Insert registers a value under the given rectangle.
func (q *Quadtree[T]) Insert(r geom.Rectangle, v T) {
	if q.divided {
		q.insertIntoChildren(r, v)
		return
	}

	q.members = append(q.members, quadMember[T]{rect: r, value: v})
	if len(q.members) <= q.threshold || q.depth >= q.maxDepth {
		return
	}

	q.split()

	// Redistribute: members confined to a single quadrant move down;
	// boundary-straddlers are pushed into every quadrant they touch and
	// also stay registered here. Retrieval de-duplicates, so the double
	// registration widens coverage instead of corrupting results.
	kept := q.members[:0]
	for _, m := range q.members {
		set := q.indexOfRect(m.rect)
		if count(set) == 1 {
			q.insertIntoChildren(m.rect, m.value)
			continue
		}
		q.insertIntoChildren(m.rect, m.value)
		kept = append(kept, m)
	}
	q.members = kept
}

func (q *Quadtree[T]) insertIntoChildren(r geom.Rectangle, v T) {
	set := q.indexOfRect(r)
	for i, in := range set {
		if in {
			q.children[i].Insert(r, v)
		}
	}
}

func count(set [4]bool) int {
	n := 0
	for _, in := range set {
		if in {
			n++
		}
	}
	return n
}

// split quarters the node's bounds into four children. Widths and heights
// are halved with floor rounding; the right and bottom children absorb the
// remainder so the union stays exactly the parent bounds.
func (q *Quadtree[T]) split() {
	hw := float64(int(q.bounds.Width) >> 1)
	hh := float64(int(q.bounds.Height) >> 1)
	x, y := q.bounds.X, q.bounds.Y
	w, h := q.bounds.Width, q.bounds.Height

	q.children[quadTL] = q.child(geom.Rectangle{X: x, Y: y, Width: hw, Height: hh})
	q.children[quadTR] = q.child(geom.Rectangle{X: x + hw, Y: y, Width: w - hw, Height: hh})
	q.children[quadBL] = q.child(geom.Rectangle{X: x, Y: y + hh, Width: hw, Height: h - hh})
	q.children[quadBR] = q.child(geom.Rectangle{X: x + hw, Y: y + hh, Width: w - hw, Height: h - hh})
	q.divided = true
}

func (q *Quadtree[T]) child(bounds geom.Rectangle) *Quadtree[T] {
	return &Quadtree[T]{
		bounds:    bounds,
		threshold: q.threshold,
		maxDepth:  q.maxDepth,
		depth:     q.depth + 1,
	}
}

// Retrieve returns every value whose insertion rectangle may intersect the
// query rectangle. The result is a superset of the true intersection set
// and contains no duplicates. A zero-size rectangle queries as a bare
// point.
func (q *Quadtree[T]) Retrieve(r geom.Rectangle) []T {
	var out []T
	seen := make(map[T]struct{})
	q.retrieve(r, func(v T) {
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	})
	return out
}

func (q *Quadtree[T]) retrieve(r geom.Rectangle, emit func(T)) {
	if !q.bounds.Intersects(r) {
		return
	}
	for _, m := range q.members {
		emit(m.value)
	}
	if !q.divided {
		return
	}
	if r.IsPoint() {
		q.children[q.indexOfPoint(geom.Point{X: r.X, Y: r.Y})].retrieve(r, emit)
		return
	}
	set := q.indexOfRect(r)
	for i, in := range set {
		if in {
			q.children[i].retrieve(r, emit)
		}
	}
}
