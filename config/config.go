package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer all demo entities and renderers live on.
const Default = ecs.LayerID(0)

// GameConfig contains window and timing configuration.
type GameConfig struct {
	Width    int
	Height   int
	TimeStep float64 // seconds per tick, passed explicitly into integration
}

var C = GameConfig{
	Width:    640,
	Height:   384,
	TimeStep: 1.0 / 60.0,
}

// PlayerConfig contains movement values for the demo player.
type PlayerConfig struct {
	MoveSpeed float64
	JumpSpeed float64
	Gravity   float64
	MaxFall   float64

	CollisionWidth  float64
	CollisionHeight float64
}

var Player = PlayerConfig{
	MoveSpeed:       120,
	JumpSpeed:       260,
	Gravity:         600,
	MaxFall:         480,
	CollisionWidth:  12,
	CollisionHeight: 14,
}

// EnemyConfig contains movement values for the route-following enemy.
type EnemyConfig struct {
	FollowSpeed     float64
	CollisionWidth  float64
	CollisionHeight float64
}

var Enemy = EnemyConfig{
	FollowSpeed:     60,
	CollisionWidth:  12,
	CollisionHeight: 12,
}

// PathfindingConfig controls route recomputation in the demo.
type PathfindingConfig struct {
	RepathFrames int
}

var Pathfinding = PathfindingConfig{
	RepathFrames: 30,
}

// PlatformConfig describes the floating sticky platform.
type PlatformConfig struct {
	Width   float64
	Height  float64
	Travel  float64 // horizontal travel distance in pixels
	Seconds float32 // one-way tween duration
}

var Platform = PlatformConfig{
	Width:   48,
	Height:  8,
	Travel:  96,
	Seconds: 2,
}
