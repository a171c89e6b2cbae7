package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/components"
	cfg "github.com/VectorPanic/rune-sdk-sub000/config"
	"github.com/VectorPanic/rune-sdk-sub000/physics"
	"github.com/VectorPanic/rune-sdk-sub000/tags"
)

// UpdateInput applies keyboard control to the player and handles the demo
// toggles.
func UpdateInput(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		body := components.Object.Get(entry).Body

		body.Velocity.X = 0
		if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
			body.Velocity.X = -cfg.Player.MoveSpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
			body.Velocity.X = cfg.Player.MoveSpeed
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) && body.IsTouching(physics.Floor) {
			body.Velocity.Y = -cfg.Player.JumpSpeed
		}
	})

	if settingsEntry, ok := components.Settings.First(e.World); ok {
		settings := components.Settings.Get(settingsEntry)
		changed := false
		if inpututil.IsKeyJustPressed(ebiten.KeyG) {
			settings.DiagonalPaths = !settings.DiagonalPaths
			changed = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			settings.DebugOverlay = !settings.DebugOverlay
			changed = true
		}
		if changed {
			SaveSettings(&SavedSettings{
				DiagonalPaths: settings.DiagonalPaths,
				DebugOverlay:  settings.DebugOverlay,
			})
		}
	}
}
