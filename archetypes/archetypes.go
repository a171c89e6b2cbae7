package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/components"
	cfg "github.com/VectorPanic/rune-sdk-sub000/config"
	"github.com/VectorPanic/rune-sdk-sub000/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Object,
		components.Route,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Level = newArchetype(
		components.Level,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
