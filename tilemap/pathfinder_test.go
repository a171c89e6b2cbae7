package tilemap

import (
	"math"
	"testing"
)

// tilesOf converts a pixel-space path back to tile coordinates for
// step-by-step checks.
func tilesOf(layer *TileLayer, path []PathNode) [][2]int {
	out := make([][2]int, len(path))
	for i, n := range path {
		out[i] = [2]int{int(n.X) / layer.TileWidth, int(n.Y) / layer.TileHeight}
	}
	return out
}

// checkSteps verifies that every consecutive pair of tiles is one legal
// move apart and that diagonal moves never cut past a solid corner.
func checkSteps(t *testing.T, layer *TileLayer, tiles [][2]int, diagonal bool) {
	t.Helper()
	for i := 1; i < len(tiles); i++ {
		dx := tiles[i][0] - tiles[i-1][0]
		dy := tiles[i][1] - tiles[i-1][1]
		adx, ady := int(math.Abs(float64(dx))), int(math.Abs(float64(dy)))
		if adx > 1 || ady > 1 || (adx == 0 && ady == 0) {
			t.Fatalf("step %d: illegal move %d,%d", i, dx, dy)
		}
		if adx == 1 && ady == 1 {
			if !diagonal {
				t.Fatalf("step %d: diagonal move with diagonals disabled", i)
			}
			if layer.Solid(tiles[i-1][0]+dx, tiles[i-1][1]) ||
				layer.Solid(tiles[i-1][0], tiles[i-1][1]+dy) {
				t.Fatalf("step %d: diagonal move cuts a solid corner", i)
			}
		}
		if layer.Solid(tiles[i][0], tiles[i][1]) {
			t.Fatalf("step %d: path crosses solid tile %v", i, tiles[i])
		}
	}
}

func TestGetPathBlockedEndpoints(t *testing.T) {
	layer := gridLayer(t, []string{
		"#..",
		"...",
	})
	p := NewPathfinder(layer)

	if path := p.GetPath(8, 8, 40, 24, false); path != nil {
		t.Errorf("path from a solid start tile: %v", path)
	}
	if path := p.GetPath(24, 24, 8, 8, false); path != nil {
		t.Errorf("path to a solid goal tile: %v", path)
	}
	if path := p.GetPath(-20, 8, 24, 24, false); path != nil {
		t.Errorf("path from outside the grid: %v", path)
	}
}

func TestGetPathOrthogonal(t *testing.T) {
	layer := gridLayer(t, []string{
		"...",
		"...",
		"...",
	})
	p := NewPathfinder(layer)

	path := p.GetPath(8, 8, 40, 40, false)
	if path == nil {
		t.Fatalf("no path on an open grid")
	}
	if path[0] != (PathNode{X: 8, Y: 8}) {
		t.Errorf("first waypoint %v, want the start tile center", path[0])
	}
	if last := path[len(path)-1]; last != (PathNode{X: 40, Y: 40}) {
		t.Errorf("last waypoint %v, want the goal tile center", last)
	}
	// Four orthogonal hops between opposite corners.
	if len(path) != 5 {
		t.Errorf("path has %d waypoints, want 5", len(path))
	}
	checkSteps(t, layer, tilesOf(layer, path), false)
}

func TestGetPathDiagonal(t *testing.T) {
	layer := gridLayer(t, []string{
		"...",
		"...",
		"...",
	})
	p := NewPathfinder(layer)

	path := p.GetPath(8, 8, 40, 40, true)
	if path == nil {
		t.Fatalf("no path on an open grid")
	}
	// Two diagonal hops straight down the main diagonal.
	want := []PathNode{{X: 8, Y: 8}, {X: 24, Y: 24}, {X: 40, Y: 40}}
	if len(path) != len(want) {
		t.Fatalf("path %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("waypoint %d is %v, want %v", i, path[i], want[i])
		}
	}
}

func TestGetPathNoCornerCutting(t *testing.T) {
	layer := gridLayer(t, []string{
		".#.",
		".#.",
		"...",
	})
	p := NewPathfinder(layer)

	path := p.GetPath(8, 8, 40, 8, true)
	if path == nil {
		t.Fatalf("expected a path around the wall")
	}
	tiles := tilesOf(layer, path)
	checkSteps(t, layer, tiles, true)
	// Every corner of the wall is guarded, so the detour is fully
	// orthogonal: down the left side, across the bottom, up the right.
	if len(path) != 7 {
		t.Errorf("path has %d waypoints, want 7: %v", len(path), tiles)
	}
}

func TestGetPathUnreachable(t *testing.T) {
	layer := gridLayer(t, []string{
		".#.",
		".#.",
		".#.",
	})
	p := NewPathfinder(layer)

	if path := p.GetPath(8, 8, 40, 8, true); path != nil {
		t.Errorf("path through a solid wall: %v", path)
	}
}

func TestGetPathSameTile(t *testing.T) {
	layer := gridLayer(t, []string{
		"..",
		"..",
	})
	p := NewPathfinder(layer)

	path := p.GetPath(3, 3, 12, 12, false)
	if len(path) != 1 {
		t.Fatalf("path within one tile: %v", path)
	}
	if path[0] != (PathNode{X: 8, Y: 8}) {
		t.Errorf("waypoint %v, want the shared tile center", path[0])
	}
}
