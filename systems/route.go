package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/VectorPanic/rune-sdk-sub000/components"
	"github.com/VectorPanic/rune-sdk-sub000/tags"
)

// waypointSlack is how close, in pixels, a follower must get to a
// waypoint before advancing to the next one.
const waypointSlack = 2.0

// UpdateRoutes periodically recomputes each enemy's path to the player and
// steers the enemy along its waypoints.
func UpdateRoutes(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Object.Get(playerEntry).Body

	diagonal := false
	if settingsEntry, ok := components.Settings.First(e.World); ok {
		diagonal = components.Settings.Get(settingsEntry).DiagonalPaths
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		route := components.Route.Get(entry)
		body := components.Object.Get(entry).Body

		route.FrameCounter++
		if len(route.Nodes) == 0 || route.FrameCounter >= route.RepathFrames {
			route.FrameCounter = 0
			nodes := level.Pathfinder.GetPath(
				body.Hitbox.Rect().CenterX(), body.Hitbox.Rect().CenterY(),
				player.Hitbox.Rect().CenterX(), player.Hitbox.Rect().CenterY(),
				diagonal,
			)
			if nodes != nil {
				route.Nodes = nodes
				route.Index = 0
			}
		}

		if route.Index >= len(route.Nodes) {
			body.Velocity.X = 0
			body.Velocity.Y = 0
			return
		}

		node := route.Nodes[route.Index]
		dx := node.X - body.Hitbox.Rect().CenterX()
		dy := node.Y - body.Hitbox.Rect().CenterY()
		dist := math.Hypot(dx, dy)
		if dist <= waypointSlack {
			route.Index++
			return
		}
		body.Velocity.X = dx / dist * route.Speed
		body.Velocity.Y = dy / dist * route.Speed
	})
}
