package components

import (
	"github.com/yohamta/donburi"

	"github.com/VectorPanic/rune-sdk-sub000/physics"
	"github.com/VectorPanic/rune-sdk-sub000/tilemap"
)

// LevelData ties together the loaded tile layer, the pathfinder running
// over its solidity data, and the group of platform bodies entities
// collide with.
type LevelData struct {
	Layer      *tilemap.TileLayer
	Pathfinder *tilemap.Pathfinder
	Platforms  *physics.Group
	Spawns     []tilemap.Spawn
}

var Level = donburi.NewComponentType[LevelData]()
