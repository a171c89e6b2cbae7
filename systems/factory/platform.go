package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/archetypes"
	"github.com/VectorPanic/rune-sdk-sub000/components"
	cfg "github.com/VectorPanic/rune-sdk-sub000/config"
	"github.com/VectorPanic/rune-sdk-sub000/physics"
)

// CreateFloatingPlatform spawns an immovable sticky platform that drifts
// back and forth horizontally, carrying whatever rests on it.
func CreateFloatingPlatform(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.FloatingPlatform.Spawn(e)

	body := physics.NewBody(x, y, cfg.Platform.Width, cfg.Platform.Height)
	body.Immovable = true
	body.Sticky = true
	components.Object.SetValue(entry, components.ObjectData{Body: body})

	// The platform moves along a *gween.Sequence of tweens, back and
	// forth between x and x+Travel.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(x), float32(x+cfg.Platform.Travel), cfg.Platform.Seconds, ease.InOutQuad),
		gween.New(float32(x+cfg.Platform.Travel), float32(x), cfg.Platform.Seconds, ease.InOutQuad),
	)
	components.Tween.Set(entry, tw)

	return entry
}
