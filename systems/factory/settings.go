package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/archetypes"
	"github.com/VectorPanic/rune-sdk-sub000/components"
)

func CreateSettings(e *ecs.ECS, diagonalPaths, debugOverlay bool) *donburi.Entry {
	entry := archetypes.Settings.Spawn(e)
	components.Settings.Set(entry, &components.SettingsData{
		DiagonalPaths: diagonalPaths,
		DebugOverlay:  debugOverlay,
	})
	return entry
}
