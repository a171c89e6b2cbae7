package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/archetypes"
	"github.com/VectorPanic/rune-sdk-sub000/components"
	cfg "github.com/VectorPanic/rune-sdk-sub000/config"
	"github.com/VectorPanic/rune-sdk-sub000/physics"
)

// CreateEnemy spawns a route-following chaser. It has no gravity so it can
// track the player along any path the grid allows.
func CreateEnemy(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Enemy.Spawn(e)

	body := physics.NewBody(x, y, cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight)
	components.Object.SetValue(entry, components.ObjectData{Body: body})

	components.Route.Set(entry, &components.RouteData{
		RepathFrames: cfg.Pathfinding.RepathFrames,
		Speed:        cfg.Enemy.FollowSpeed,
	})
	return entry
}
