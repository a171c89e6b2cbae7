package physics

import (
	"fmt"

	"github.com/VectorPanic/rune-sdk-sub000/geom"
)

// Group is an ordered collection of bodies that can be hit-tested as one
// unit. When UseQuadtree is set, member lookups during hit testing go
// through a quadtree rebuilt from the current member hitboxes on every
// query, pruning the pairwise tests; otherwise the full member list is
// scanned.
type Group struct {
	// Bounds is the world region covered by the broad-phase index.
	Bounds geom.Rectangle

	// UseQuadtree toggles quadtree-backed candidate pruning.
	UseQuadtree bool

	// Threshold and MaxDepth tune the broad-phase tree; zero values fall
	// back to the package defaults.
	Threshold int
	MaxDepth  int

	members []*Body
}

// NewGroup returns an empty group whose broad-phase index covers bounds.
func NewGroup(bounds geom.Rectangle) *Group {
	return &Group{Bounds: bounds}
}

// Add appends a body to the group.
func (g *Group) Add(b *Body) { g.members = append(g.members, b) }

// Remove removes the first occurrence of b and reports whether it was a
// member.
func (g *Group) Remove(b *Body) bool {
	for i, m := range g.members {
		if m == b {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.members) }

// At returns the member at index i. An out-of-range index is a programming
// error and panics.
func (g *Group) At(i int) *Body {
	if i < 0 || i >= len(g.members) {
		panic(fmt.Sprintf("physics: group index %d out of range [0,%d)", i, len(g.members)))
	}
	return g.members[i]
}

// Members returns a copy of the member list. Mutating the copy does not
// affect the group.
func (g *Group) Members() []*Body {
	out := make([]*Body, len(g.members))
	copy(out, g.members)
	return out
}

// candidates returns the members that may intersect the query rectangle:
// the quadtree retrieval when indexing is enabled, the full member list
// otherwise. The tree is rebuilt from scratch per query, so the index can
// never be stale.
func (g *Group) candidates(query geom.Rectangle) []*Body {
	if !g.UseQuadtree {
		return g.members
	}
	tree := NewQuadtree[*Body](g.Bounds, g.Threshold, g.MaxDepth)
	for _, m := range g.members {
		tree.Insert(m.Hitbox.Rect(), m)
	}
	return tree.Retrieve(query)
}

// HitTest reports whether any member overlaps the target. See the package
// HitTest function.
func (g *Group) HitTest(target Target, cb Callback) bool {
	return HitTest(g, target, cb)
}

// HitTestAndSeparate resolves overlaps between members and the target. See
// the package HitTestAndSeparate function.
func (g *Group) HitTestAndSeparate(target Target, cb Callback) bool {
	return HitTestAndSeparate(g, target, cb)
}
