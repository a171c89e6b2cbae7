package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/components"
	"github.com/VectorPanic/rune-sdk-sub000/physics"
	"github.com/VectorPanic/rune-sdk-sub000/tags"
)

var (
	colorSolidTile = color.RGBA{0x4a, 0x4a, 0x55, 0xff}
	colorOneWay    = color.RGBA{0x6a, 0x5a, 0x2a, 0xff}
	colorPlatform  = color.RGBA{0x3a, 0x8a, 0x4a, 0xff}
	colorPlayer    = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	colorEnemy     = color.RGBA{0xc0, 0x40, 0x40, 0xff}
	colorRoute     = color.RGBA{0xd0, 0xc0, 0x30, 0xff}
)

// DrawWorld renders the demo as flat rectangles: tiles, platforms, bodies
// and, when the overlay is on, enemy routes.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	overlay := false
	diagonal := false
	if settingsEntry, ok := components.Settings.First(e.World); ok {
		settings := components.Settings.Get(settingsEntry)
		overlay = settings.DebugOverlay
		diagonal = settings.DiagonalPaths
	}

	layer := level.Layer
	for ty := 0; ty < layer.HeightInTiles; ty++ {
		for tx := 0; tx < layer.WidthInTiles; tx++ {
			mask := layer.MaskAt(tx, ty)
			if mask == physics.None {
				continue
			}
			clr := colorSolidTile
			if mask != physics.Any {
				clr = colorOneWay
			}
			vector.DrawFilledRect(screen,
				float32(tx*layer.TileWidth), float32(ty*layer.TileHeight),
				float32(layer.TileWidth), float32(layer.TileHeight),
				clr, false)
		}
	}

	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		drawBody(screen, components.Object.Get(entry).Body, colorPlatform)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		drawBody(screen, components.Object.Get(entry).Body, colorEnemy)
		if overlay {
			drawRoute(screen, components.Route.Get(entry))
		}
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawBody(screen, components.Object.Get(entry).Body, colorPlayer)
	})

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("arrows/wasd move | space jump | g diagonals (%v) | f1 overlay", diagonal),
		4, 4)
}

func drawBody(screen *ebiten.Image, body *physics.Body, clr color.Color) {
	r := body.Hitbox.Rect()
	vector.DrawFilledRect(screen,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		clr, false)
}

func drawRoute(screen *ebiten.Image, route *components.RouteData) {
	for i := 1; i < len(route.Nodes); i++ {
		a := route.Nodes[i-1]
		b := route.Nodes[i]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			1, colorRoute, false)
	}
}
