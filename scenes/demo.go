package scenes

import (
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/components"
	cfg "github.com/VectorPanic/rune-sdk-sub000/config"
	"github.com/VectorPanic/rune-sdk-sub000/systems"
	"github.com/VectorPanic/rune-sdk-sub000/systems/factory"
	"github.com/VectorPanic/rune-sdk-sub000/tags"
)

// DemoScene is the playground scene: a tile level, a player, a
// route-following enemy and a sticky floating platform.
type DemoScene struct {
	ecs   *ecs.ECS
	saved *systems.SavedSettings
	once  sync.Once
}

// NewDemoScene creates the demo scene. saved may be nil when no settings
// were persisted yet.
func NewDemoScene(saved *systems.SavedSettings) *DemoScene {
	return &DemoScene{saved: saved}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)
	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DemoScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateMotion)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateRoutes)
	e.AddSystem(systems.UpdateCollisions)

	e.AddRenderer(cfg.Default, systems.DrawWorld)

	ds.ecs = e

	levelEntry := factory.CreateLevel(e)
	level := components.Level.Get(levelEntry)

	diagonal, overlay := false, true
	if ds.saved != nil {
		diagonal = ds.saved.DiagonalPaths
		overlay = ds.saved.DebugOverlay
	}
	factory.CreateSettings(e, diagonal, overlay)

	for _, spawn := range level.Spawns {
		switch {
		case spawn.Name == "player":
			factory.CreatePlayer(e, spawn.X, spawn.Y)
		case spawn.Name == "enemy":
			factory.CreateEnemy(e, spawn.X, spawn.Y)
		case strings.HasPrefix(spawn.Name, "platform"):
			factory.CreateFloatingPlatform(e, spawn.X, spawn.Y)
		}
	}

	// Platform bodies join the level's broad-phase group.
	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		level.Platforms.Add(components.Object.Get(entry).Body)
	})
}
