package physics

import (
	"math/rand"
	"testing"

	"github.com/VectorPanic/rune-sdk-sub000/geom"
)

func randomRect(rng *rand.Rand) geom.Rectangle {
	return geom.Rectangle{
		X:      rng.Float64() * 220,
		Y:      rng.Float64() * 220,
		Width:  1 + rng.Float64()*30,
		Height: 1 + rng.Float64()*30,
	}
}

// Retrieval must return a duplicate-free superset of the truly
// intersecting members, no matter how the members landed in the tree.
func TestQuadtreeRetrieveSuperset(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bounds := geom.Rectangle{Width: 256, Height: 256}

	tree := NewQuadtree[int](bounds, 4, 4)
	rects := make([]geom.Rectangle, 200)
	for i := range rects {
		rects[i] = randomRect(rng)
		tree.Insert(rects[i], i)
	}

	for q := 0; q < 50; q++ {
		query := randomRect(rng)
		got := tree.Retrieve(query)

		seen := make(map[int]bool, len(got))
		for _, v := range got {
			if seen[v] {
				t.Fatalf("query %d: duplicate value %d", q, v)
			}
			seen[v] = true
		}

		for i, r := range rects {
			if r.Intersects(query) && !seen[i] {
				t.Errorf("query %d (%+v): missing member %d (%+v)", q, query, i, r)
			}
		}
	}
}

func TestQuadtreeRetrieveAll(t *testing.T) {
	bounds := geom.Rectangle{Width: 128, Height: 128}
	tree := NewQuadtree[int](bounds, 2, 3)

	rng := rand.New(rand.NewSource(2))
	const n = 50
	for i := 0; i < n; i++ {
		r := randomRect(rng)
		r.X /= 2
		r.Y /= 2
		tree.Insert(r, i)
	}

	got := tree.Retrieve(bounds)
	if len(got) != n {
		t.Errorf("full-bounds retrieve returned %d values, want %d", len(got), n)
	}
}

func TestQuadtreePointQuery(t *testing.T) {
	bounds := geom.Rectangle{Width: 256, Height: 256}
	tree := NewQuadtree[int](bounds, 1, 6)

	rects := []geom.Rectangle{
		{X: 10, Y: 10, Width: 20, Height: 20},
		{X: 40, Y: 40, Width: 20, Height: 20},
		{X: 200, Y: 200, Width: 20, Height: 20},
		{X: 15, Y: 15, Width: 5, Height: 5},
	}
	for i, r := range rects {
		tree.Insert(r, i)
	}

	point := geom.Rectangle{X: 17, Y: 17}
	got := tree.Retrieve(point)
	seen := make(map[int]bool, len(got))
	for _, v := range got {
		seen[v] = true
	}
	for i, r := range rects {
		if r.ContainsPoint(geom.Point{X: point.X, Y: point.Y}) && !seen[i] {
			t.Errorf("point query missed member %d (%+v)", i, r)
		}
	}
}

func TestQuadtreeClear(t *testing.T) {
	bounds := geom.Rectangle{Width: 64, Height: 64}
	tree := NewQuadtree[int](bounds, 1, 4)
	for i := 0; i < 10; i++ {
		tree.Insert(geom.Rectangle{X: float64(i * 5), Y: float64(i * 5), Width: 4, Height: 4}, i)
	}

	tree.Clear()
	if got := tree.Retrieve(bounds); len(got) != 0 {
		t.Errorf("retrieve after clear returned %d values", len(got))
	}

	tree.Insert(geom.Rectangle{X: 1, Y: 1, Width: 2, Height: 2}, 42)
	got := tree.Retrieve(bounds)
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("tree unusable after clear: %v", got)
	}
}

func TestQuadtreeSplitPartition(t *testing.T) {
	// Odd bounds force floor halving; the right/bottom children absorb
	// the remainder so the four children tile the parent exactly.
	bounds := geom.Rectangle{Width: 101, Height: 51}
	tree := NewQuadtree[int](bounds, 2, 4)

	// Three members confined to one quadrant each push the node past its
	// threshold and trigger a split.
	tree.Insert(geom.Rectangle{X: 1, Y: 1, Width: 2, Height: 2}, 0)
	tree.Insert(geom.Rectangle{X: 5, Y: 5, Width: 2, Height: 2}, 1)
	tree.Insert(geom.Rectangle{X: 60, Y: 30, Width: 2, Height: 2}, 2)

	if !tree.divided {
		t.Fatalf("tree did not split past its threshold")
	}
	want := [4]geom.Rectangle{
		{X: 0, Y: 0, Width: 50, Height: 25},
		{X: 50, Y: 0, Width: 51, Height: 25},
		{X: 0, Y: 25, Width: 50, Height: 26},
		{X: 50, Y: 25, Width: 51, Height: 26},
	}
	for i, child := range tree.children {
		if child.Bounds() != want[i] {
			t.Errorf("child %d bounds %+v, want %+v", i, child.Bounds(), want[i])
		}
	}
}

func TestQuadtreeDefaults(t *testing.T) {
	tree := NewQuadtree[int](geom.Rectangle{Width: 32, Height: 32}, 0, 0)
	if tree.threshold != QuadtreeThreshold || tree.maxDepth != QuadtreeMaxDepth {
		t.Errorf("defaults not applied: threshold %d, maxDepth %d", tree.threshold, tree.maxDepth)
	}
}
