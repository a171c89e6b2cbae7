package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/components"
	cfg "github.com/VectorPanic/rune-sdk-sub000/config"
)

// UpdateMotion snapshots every body's tick state and integrates velocity.
// It must run before anything moves bodies this tick, so the saved
// positions feed the swept collision pass.
func UpdateMotion(e *ecs.ECS) {
	dt := cfg.C.TimeStep
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		body := components.Object.Get(entry).Body
		body.SavePosition()
		body.AdvanceTouching()
		body.Integrate(dt)
	})
}
