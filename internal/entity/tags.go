// Package entity holds the demo world's inhabitants: the controllable
// player, the solid walls it collides with, and a pair of bouncing
// movers that make time scaling visible.
package entity

import (
	"github.com/farrowlabs/jumpbox/internal/engine"
	"github.com/farrowlabs/jumpbox/internal/geom"
)

// Tags the demo entities carry for engine queries.
const (
	TagWall          engine.Tag = "wall"
	TagPlayer        engine.Tag = "player"
	TagWallCollision engine.Tag = "wall-collision"
)

// Action names the player listens to. The game registers bindings for
// them at startup.
const (
	ActionMoveLeft  = "move left"
	ActionMoveRight = "move right"
	ActionJump      = "jump"
)

// World movement tuning, in pixels and seconds.
const (
	Gravity      = 600.0 // downward acceleration, px/s²
	MaxFallSpeed = 600.0 // terminal fall velocity, px/s
)

// Solid is anything with a collision box the player resolves against.
// Entities tagged TagWallCollision are expected to implement it.
type Solid interface {
	Box() geom.Rect
}
