package components

import (
	"github.com/yohamta/donburi"

	"github.com/VectorPanic/rune-sdk-sub000/tilemap"
)

// RouteData holds an entity's current pathfinder waypoints and repath
// timing.
type RouteData struct {
	Nodes        []tilemap.PathNode
	Index        int
	RepathFrames int // recompute the route every N frames
	FrameCounter int
	Speed        float64 // follow speed in pixels per second
}

var Route = donburi.NewComponentType[RouteData]()
