package tilemap

import (
	"testing"

	"github.com/VectorPanic/rune-sdk-sub000/physics"
)

// gridLayer builds a layer from rows of runes: '.' is passable, '#' is
// fully solid, '^' collides from above only. Tiles are 16x16 pixels.
func gridLayer(t *testing.T, rows []string) *TileLayer {
	t.Helper()
	w := len(rows[0])
	h := len(rows)
	tiles := make([]uint32, 0, w*h)
	for _, row := range rows {
		for _, r := range row {
			switch r {
			case '.':
				tiles = append(tiles, 0)
			case '#':
				tiles = append(tiles, 1)
			case '^':
				tiles = append(tiles, 2)
			default:
				t.Fatalf("unknown tile rune %q", r)
			}
		}
	}
	layer, err := NewTileLayer(tiles, w, h, 16, 16, func(value uint32) physics.Direction {
		switch value {
		case 1:
			return physics.Any
		case 2:
			return physics.Up
		default:
			return physics.None
		}
	})
	if err != nil {
		t.Fatalf("NewTileLayer: %v", err)
	}
	return layer
}

// fallingBody returns a body that dropped from (x, y) by dy this tick.
func fallingBody(x, y, dy float64) *physics.Body {
	b := physics.NewBody(x, y, 10, 10)
	b.SavePosition()
	b.Y += dy
	b.Velocity.Y = 240
	return b
}

func TestNewTileLayerLengthMismatch(t *testing.T) {
	if _, err := NewTileLayer(make([]uint32, 5), 2, 3, 16, 16, nil); err == nil {
		t.Errorf("expected error for short tile slice")
	}
}

func TestCollideBodySeparatesFromSolidTile(t *testing.T) {
	layer := gridLayer(t, []string{
		".....",
		".....",
		"..#..",
	})

	// Tile (2,2) spans pixels [32,48). Land on its top edge at y=32.
	b := fallingBody(34, 20, 6)
	if !layer.CollideBody(b, true, nil) {
		t.Fatalf("expected collision")
	}
	if b.Y != 22 {
		t.Errorf("body at y=%v, want 22", b.Y)
	}
	if b.Velocity.Y != 0 {
		t.Errorf("fall velocity not absorbed: %v", b.Velocity.Y)
	}
	if !b.IsTouching(physics.Floor) {
		t.Errorf("body not touching floor: %v", b.Touching)
	}
}

func TestCollideBodyPassableTiles(t *testing.T) {
	layer := gridLayer(t, []string{
		"...",
		"...",
	})

	b := fallingBody(8, 8, 4)
	if layer.CollideBody(b, true, nil) {
		t.Errorf("collision on an empty layer")
	}
	if b.Y != 12 {
		t.Errorf("body moved to y=%v", b.Y)
	}
}

func TestCollideBodyOneWayTile(t *testing.T) {
	layer := gridLayer(t, []string{
		"...",
		".^.",
		"...",
	})

	// Falling onto the ledge from above lands on it.
	faller := fallingBody(18, 4, 6)
	if !layer.CollideBody(faller, true, nil) {
		t.Fatalf("expected landing on one-way tile")
	}
	if faller.Y != 6 {
		t.Errorf("faller at y=%v, want 6", faller.Y)
	}

	// Rising through it from below passes.
	riser := physics.NewBody(18, 28, 10, 10)
	riser.SavePosition()
	riser.Y = 24
	if layer.CollideBody(riser, true, nil) {
		t.Errorf("rising body stopped by one-way tile")
	}
	if riser.Y != 24 {
		t.Errorf("riser moved to y=%v", riser.Y)
	}
}

func TestCollideBodySpansMultipleTiles(t *testing.T) {
	layer := gridLayer(t, []string{
		"...",
		"##.",
	})

	// The hitbox straddles the boundary between tiles (0,1) and (1,1),
	// so the narrow phase must visit both.
	b := physics.NewBody(10, 10, 12, 10)
	hits := 0
	if !layer.CollideBody(b, false, func(self, other *physics.Body) { hits++ }) {
		t.Fatalf("expected overlap")
	}
	if hits != 2 {
		t.Errorf("callback ran %d times, want 2", hits)
	}
	if b.Y != 10 {
		t.Errorf("overlap-only test moved the body to y=%v", b.Y)
	}
}

func TestSolidOutOfBounds(t *testing.T) {
	layer := gridLayer(t, []string{"..", ".."})
	if layer.Solid(0, 0) {
		t.Errorf("open tile reported solid")
	}
	if !layer.Solid(-1, 0) || !layer.Solid(0, 5) {
		t.Errorf("out-of-bounds tiles must count as solid")
	}
}
