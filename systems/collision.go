package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/components"
	"github.com/VectorPanic/rune-sdk-sub000/physics"
	"github.com/VectorPanic/rune-sdk-sub000/tags"
)

// UpdateCollisions resolves every moving body against the level: the tile
// layer first, then the platform group, then the player/enemy pairs.
func UpdateCollisions(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	world := physics.TargetList{
		physics.TileTarget(level.Layer),
		level.Platforms,
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		body := components.Object.Get(entry).Body
		physics.HitTestAndSeparate(body, world, nil)
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		body := components.Object.Get(entry).Body
		physics.HitTestAndSeparate(body, world, nil)

		tags.Player.Each(e.World, func(playerEntry *donburi.Entry) {
			player := components.Object.Get(playerEntry).Body
			physics.HitTestAndSeparate(body, player, nil)
		})
	})
}
