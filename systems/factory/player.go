package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/archetypes"
	"github.com/VectorPanic/rune-sdk-sub000/components"
	cfg "github.com/VectorPanic/rune-sdk-sub000/config"
	"github.com/VectorPanic/rune-sdk-sub000/physics"
)

func CreatePlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)

	body := physics.NewBody(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	body.Acceleration.Y = cfg.Player.Gravity
	body.MaxVelocity.Y = cfg.Player.MaxFall
	components.Object.SetValue(entry, components.ObjectData{Body: body})

	return entry
}
