package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/components"
	cfg "github.com/VectorPanic/rune-sdk-sub000/config"
	"github.com/VectorPanic/rune-sdk-sub000/tags"
)

// UpdateTweens drives floating platforms along their tween sequences.
// Runs after UpdateMotion so the platform's saved position yields the
// per-tick delta the sticky transfer needs.
func UpdateTweens(e *ecs.ECS) {
	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		body := components.Object.Get(entry).Body

		x, _, done := tw.Update(float32(cfg.C.TimeStep))
		body.X = float64(x)
		if done {
			tw.Reset()
		}
	})
}
