package tilemap

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/VectorPanic/rune-sdk-sub000/physics"
)

// Level is the collision-relevant content of a TMX map: the solidity tile
// layer plus any spawn markers. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
type Level struct {
	Layer  *TileLayer
	Spawns []Spawn
}

// Spawn is a named object marker from the map's object groups.
type Spawn struct {
	Name string
	X, Y float64
}

// Load parses a TMX file and builds the tile layer named layerName, using
// each tileset tile's "collision" property ("any", "none", or a comma
// list of up/right/down/left) as its collision mask. Tiles without the
// property default to fully solid: presence on the collision layer means
// solid unless the tile says otherwise.
func Load(fsys fs.FS, tmxPath, layerName string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var source *tiled.Layer
	for _, layer := range m.Layers {
		if layer.Name == layerName {
			source = layer
			break
		}
	}
	if source == nil {
		return nil, fmt.Errorf("load TMX %s: no layer named %q", tmxPath, layerName)
	}

	tiles := make([]uint32, m.Width*m.Height)
	masks := map[uint32]physics.Direction{0: physics.None}
	for i, tile := range source.Tiles {
		if tile.IsNil() {
			continue
		}
		gid := tile.Tileset.FirstGID + tile.ID
		tiles[i] = gid
		if _, known := masks[gid]; known {
			continue
		}
		mask := physics.Any
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			mask, err = parseCollisionMask(tilesetTile.Properties.GetString("collision"))
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: tile %d: %w", tmxPath, gid, err)
			}
		}
		masks[gid] = mask
	}

	layer, err := NewTileLayer(tiles, m.Width, m.Height, m.TileWidth, m.TileHeight,
		func(value uint32) physics.Direction { return masks[value] })
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{Layer: layer}
	for _, og := range m.ObjectGroups {
		for _, o := range og.Objects {
			level.Spawns = append(level.Spawns, Spawn{Name: o.Name, X: o.X, Y: o.Y})
		}
	}
	return level, nil
}

// parseCollisionMask converts a tile "collision" property to a direction
// mask. The empty string means the property was absent and defaults to
// fully solid.
func parseCollisionMask(value string) (physics.Direction, error) {
	switch value {
	case "", "any":
		return physics.Any, nil
	case "none":
		return physics.None, nil
	}

	mask := physics.None
	for _, token := range strings.Split(value, ",") {
		switch strings.TrimSpace(token) {
		case "up":
			mask |= physics.Up
		case "right":
			mask |= physics.Right
		case "down":
			mask |= physics.Down
		case "left":
			mask |= physics.Left
		default:
			return physics.None, fmt.Errorf("unknown collision direction %q", token)
		}
	}
	return mask, nil
}
