package entity

import (
	"image/color"
	"math"

	"github.com/farrowlabs/jumpbox/internal/engine"
	"github.com/farrowlabs/jumpbox/internal/gamepad"
	"github.com/farrowlabs/jumpbox/internal/geom"
	"github.com/farrowlabs/jumpbox/internal/input"
)

const (
	playerWidth     = 20.0
	playerHeight    = 32.0
	playerRunSpeed  = 200.0 // px/s at full deflection
	playerJumpSpeed = 350.0 // upward impulse, px/s
	playerMaxJumps  = 2

	// Stick deflection past which the analog value takes over from the
	// digital move actions.
	stickOverride = 0.5
)

var playerColor = color.RGBA{R: 0x61, G: 0xae, B: 0xee, A: 0xff}

// Player is the controllable box. It runs from digital actions or the
// left stick, jumps on a small air budget, and resolves collisions
// against every Solid tagged TagWallCollision.
type Player struct {
	engine.Base

	pos      geom.Vec2 // center
	vel      geom.Vec2
	collider geom.Rect
	jumps    int

	world *engine.Engine
	in    *input.Input
	pad   *gamepad.Gamepad // may be nil
}

// NewPlayer places the player with its center at (x, y). The pad is
// optional; without one movement comes from the digital actions alone.
func NewPlayer(x, y float64, world *engine.Engine, in *input.Input, pad *gamepad.Gamepad) *Player {
	p := &Player{
		Base:     engine.Base{Tags: []engine.Tag{TagPlayer}},
		pos:      geom.Vec2{X: x, Y: y},
		collider: geom.Rect{Width: playerWidth, Height: playerHeight},
		jumps:    playerMaxJumps,
		world:    world,
		in:       in,
		pad:      pad,
	}
	p.syncCollider()
	return p
}

// Pos returns the player's center.
func (p *Player) Pos() geom.Vec2 { return p.pos }

// Vel returns the current velocity.
func (p *Player) Vel() geom.Vec2 { return p.vel }

// JumpsLeft reports how many jumps remain before the player has to
// land again.
func (p *Player) JumpsLeft() int { return p.jumps }

// Box returns the player's collision rectangle.
func (p *Player) Box() geom.Rect { return p.collider }

func (p *Player) syncCollider() {
	p.collider.X = p.pos.X - playerWidth/2
	p.collider.Y = p.pos.Y - playerHeight/2
}

func (p *Player) Update(dt float64) {
	p.vel.X = p.moveDir() * playerRunSpeed

	if p.in.Active(ActionJump) && p.jumps > 0 {
		p.vel.Y = -playerJumpSpeed
		p.jumps--
	}
	p.vel.Y = math.Min(p.vel.Y+Gravity*dt, MaxFallSpeed)

	p.pos = p.pos.Add(p.vel.Scale(dt))
	p.syncCollider()
	p.collideWalls()
}

// moveDir resolves horizontal intent in [-1, 1]. A stick deflection
// past the override threshold wins over the digital actions.
func (p *Player) moveDir() float64 {
	if p.pad != nil {
		if x := p.pad.StickPos(gamepad.StickLeft).X; math.Abs(x) > stickOverride {
			return x
		}
	}
	dir := 0.0
	if p.in.Active(ActionMoveLeft) {
		dir--
	}
	if p.in.Active(ActionMoveRight) {
		dir++
	}
	return dir
}

// collideWalls pushes the player out of every solid it overlaps, kills
// the velocity component along the resolved axis, and refills the jump
// budget when the push was upward.
func (p *Player) collideWalls() {
	for _, ent := range p.world.Tagged(TagWallCollision) {
		solid, ok := ent.(Solid)
		if !ok {
			continue
		}
		box := solid.Box()
		if !p.collider.Intersects(box) {
			continue
		}
		push := p.collider.Resolve(box)
		p.pos = p.pos.Add(push)
		p.syncCollider()
		if push.X != 0 {
			p.vel.X = 0
		} else {
			p.vel.Y = 0
			if push.Y < 0 {
				p.jumps = playerMaxJumps // landed
			}
		}
	}
}

func (p *Player) Render(dst engine.Surface) {
	dst.FillRect(p.collider.X, p.collider.Y, p.collider.Width, p.collider.Height, playerColor)
}
