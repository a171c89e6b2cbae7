package tilemap

import (
	"math"

	"github.com/VectorPanic/rune-sdk-sub000/physics"
)

// CollideBody runs the tile-vs-body narrow phase against every solid tile
// the body's hitbox spans, optionally separating the body out of them. It
// implements physics.TileCollider, so a layer can be passed to the hit
// test dispatch through physics.TileTarget.
//
// The tile span covers partially overlapped edge tiles: the covered tile
// count rounds up whenever the hitbox does not align to the grid.
func (l *TileLayer) CollideBody(b *physics.Body, separate bool, cb physics.Callback) bool {
	hb := b.Hitbox.Rect()

	tw := float64(l.TileWidth)
	th := float64(l.TileHeight)
	x0 := int(math.Floor(hb.X / tw))
	y0 := int(math.Floor(hb.Y / th))
	x1 := int(math.Ceil(hb.Right() / tw))
	y1 := int(math.Ceil(hb.Bottom() / th))

	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, l.WidthInTiles)
	y1 = min(y1, l.HeightInTiles)

	hit := false
	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			mask := l.mask(l.tiles[l.Index(tx, ty)])
			if mask == physics.None {
				continue
			}
			if l.collideTile(b, tx, ty, mask, separate, cb) {
				hit = true
			}
		}
	}
	return hit
}

// collideTile positions the reusable tile body over one tile and runs the
// entity-vs-entity narrow phase against it.
func (l *TileLayer) collideTile(b *physics.Body, tx, ty int, mask physics.Direction, separate bool, cb physics.Callback) bool {
	tile := l.tileBody
	tile.X = float64(tx * l.TileWidth)
	tile.Y = float64(ty * l.TileHeight)
	// Tiles never move; zero delta keeps the sweep degenerate.
	tile.LastX = tile.X
	tile.LastY = tile.Y
	tile.AllowCollisions = mask
	tile.Touching = physics.None

	if !b.Hitbox.Rect().Intersects(tile.Hitbox.Rect()) {
		return false
	}
	if separate {
		moved := physics.Separate(b, tile)
		if moved && cb != nil {
			cb(b, tile)
		}
		return moved
	}
	if cb != nil {
		cb(b, tile)
	}
	return true
}
