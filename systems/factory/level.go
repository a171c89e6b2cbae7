package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/archetypes"
	"github.com/VectorPanic/rune-sdk-sub000/assets"
	"github.com/VectorPanic/rune-sdk-sub000/components"
	"github.com/VectorPanic/rune-sdk-sub000/geom"
	"github.com/VectorPanic/rune-sdk-sub000/physics"
	"github.com/VectorPanic/rune-sdk-sub000/tilemap"
)

// CreateLevel loads the embedded demo map and spawns the level entity
// holding its tile layer, pathfinder and platform group.
func CreateLevel(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Level.Spawn(e)

	level, err := tilemap.Load(assets.FS, "levels/demo.tmx", "collision")
	if err != nil {
		panic("failed to load demo level: " + err.Error())
	}

	bounds := geom.NewRectangle(0, 0,
		float64(level.Layer.PixelWidth()), float64(level.Layer.PixelHeight()))
	platforms := physics.NewGroup(bounds)
	platforms.UseQuadtree = true

	components.Level.Set(entry, &components.LevelData{
		Layer:      level.Layer,
		Pathfinder: tilemap.NewPathfinder(level.Layer),
		Platforms:  platforms,
		Spawns:     level.Spawns,
	})
	return entry
}
