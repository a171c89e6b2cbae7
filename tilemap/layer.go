// Package tilemap provides the tile-grid side of the collision core: a
// flat tile layer with per-value collision masks, tile-vs-body collision
// that reuses the entity separation solver, TMX loading, and grid
// pathfinding over the same solidity data.
package tilemap

import (
	"fmt"

	"github.com/VectorPanic/rune-sdk-sub000/physics"
)

// MaskFunc maps a raw tile value to the collision permission mask of tiles
// holding that value. Zero means fully passable. The same mapping feeds
// both tile collision and pathfinding, so the two can never disagree about
// what is solid.
type MaskFunc func(value uint32) physics.Direction

// TileLayer is a grid of tile values with fixed tile pixel dimensions.
type TileLayer struct {
	TileWidth     int
	TileHeight    int
	WidthInTiles  int
	HeightInTiles int

	tiles []uint32
	mask  MaskFunc

	// Reusable synthetic body standing in for whichever tile is being
	// tested; repositioned per tile, never shared across layers.
	tileBody *physics.Body
}

// NewTileLayer builds a layer from a flat tile slice in row-major order.
// The slice length must equal widthInTiles*heightInTiles.
func NewTileLayer(tiles []uint32, widthInTiles, heightInTiles, tileWidth, tileHeight int, mask MaskFunc) (*TileLayer, error) {
	if len(tiles) != widthInTiles*heightInTiles {
		return nil, fmt.Errorf("tilemap: tile data length %d does not match %dx%d grid",
			len(tiles), widthInTiles, heightInTiles)
	}
	if mask == nil {
		mask = func(value uint32) physics.Direction {
			if value == 0 {
				return physics.None
			}
			return physics.Any
		}
	}
	l := &TileLayer{
		TileWidth:     tileWidth,
		TileHeight:    tileHeight,
		WidthInTiles:  widthInTiles,
		HeightInTiles: heightInTiles,
		tiles:         tiles,
		mask:          mask,
	}
	l.tileBody = physics.NewBody(0, 0, float64(tileWidth), float64(tileHeight))
	l.tileBody.Immovable = true
	return l, nil
}

// Len returns the total tile count.
func (l *TileLayer) Len() int { return len(l.tiles) }

// Index returns the flat index of the tile at (tx, ty).
func (l *TileLayer) Index(tx, ty int) int { return ty*l.WidthInTiles + tx }

// InBounds reports whether the tile coordinate lies inside the grid.
func (l *TileLayer) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < l.WidthInTiles && ty >= 0 && ty < l.HeightInTiles
}

// ValueAt returns the raw tile value at (tx, ty). An out-of-bounds
// coordinate is a programming error and panics.
func (l *TileLayer) ValueAt(tx, ty int) uint32 {
	if !l.InBounds(tx, ty) {
		panic(fmt.Sprintf("tilemap: tile (%d,%d) out of %dx%d grid",
			tx, ty, l.WidthInTiles, l.HeightInTiles))
	}
	return l.tiles[l.Index(tx, ty)]
}

// MaskAt returns the collision mask of the tile at (tx, ty).
func (l *TileLayer) MaskAt(tx, ty int) physics.Direction {
	return l.mask(l.ValueAt(tx, ty))
}

// Solid reports whether the tile at (tx, ty) has a non-zero collision
// mask. Coordinates outside the grid count as solid.
func (l *TileLayer) Solid(tx, ty int) bool {
	if !l.InBounds(tx, ty) {
		return true
	}
	return l.mask(l.tiles[l.Index(tx, ty)]) != physics.None
}

// SetValue replaces the tile value at (tx, ty).
func (l *TileLayer) SetValue(tx, ty int, value uint32) {
	if !l.InBounds(tx, ty) {
		panic(fmt.Sprintf("tilemap: tile (%d,%d) out of %dx%d grid",
			tx, ty, l.WidthInTiles, l.HeightInTiles))
	}
	l.tiles[l.Index(tx, ty)] = value
}

// PixelWidth returns the layer width in pixels.
func (l *TileLayer) PixelWidth() int { return l.WidthInTiles * l.TileWidth }

// PixelHeight returns the layer height in pixels.
func (l *TileLayer) PixelHeight() int { return l.HeightInTiles * l.TileHeight }

// TileCenter returns the pixel-space center of the tile at (tx, ty).
func (l *TileLayer) TileCenter(tx, ty int) (float64, float64) {
	return float64(tx*l.TileWidth) + float64(l.TileWidth)/2,
		float64(ty*l.TileHeight) + float64(l.TileHeight)/2
}
