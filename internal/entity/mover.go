package entity

import (
	"math"

	"golang.org/x/image/colornames"

	"github.com/farrowlabs/jumpbox/internal/engine"
	"github.com/farrowlabs/jumpbox/internal/geom"
)

const (
	moverSpeed = 300.0 // px/s
	moverRange = 200.0 // distance from origin before reversing
	moverSize  = 16.0
)

// Bouncer is a demo mover: a small box drifting back and forth
// horizontally, reversing moverRange pixels from its origin. It draws
// above the player and follows the engine's scaled clock.
type Bouncer struct {
	engine.Base

	origin geom.Vec2
	pos    geom.Vec2
	dir    float64
}

// NewBouncer starts a bouncer centered at (x, y).
func NewBouncer(x, y float64) *Bouncer {
	return &Bouncer{
		Base:   engine.Base{Layer: 5},
		origin: geom.Vec2{X: x, Y: y},
		pos:    geom.Vec2{X: x, Y: y},
		dir:    1,
	}
}

// Pos returns the bouncer's center.
func (b *Bouncer) Pos() geom.Vec2 { return b.pos }

func (b *Bouncer) Update(dt float64) {
	b.pos.X += b.dir * moverSpeed * dt
	if math.Abs(b.pos.X-b.origin.X) >= moverRange {
		b.pos.X = b.origin.X + math.Copysign(moverRange, b.pos.X-b.origin.X)
		b.dir = -b.dir
	}
}

func (b *Bouncer) Render(dst engine.Surface) {
	dst.FillRect(b.pos.X-moverSize/2, b.pos.Y-moverSize/2, moverSize, moverSize, colornames.Crimson)
}

// RawBouncer is the bouncer's vertical twin. It carries TagRawDelta,
// so it keeps full speed while the rest of the world is time scaled.
type RawBouncer struct {
	engine.Base

	origin geom.Vec2
	pos    geom.Vec2
	dir    float64
}

// NewRawBouncer starts a raw-clock bouncer centered at (x, y).
func NewRawBouncer(x, y float64) *RawBouncer {
	return &RawBouncer{
		Base:   engine.Base{Layer: 5, Tags: []engine.Tag{engine.TagRawDelta}},
		origin: geom.Vec2{X: x, Y: y},
		pos:    geom.Vec2{X: x, Y: y},
		dir:    1,
	}
}

// Pos returns the bouncer's center.
func (b *RawBouncer) Pos() geom.Vec2 { return b.pos }

func (b *RawBouncer) Update(dt float64) {
	b.pos.Y += b.dir * moverSpeed * dt
	if math.Abs(b.pos.Y-b.origin.Y) >= moverRange {
		b.pos.Y = b.origin.Y + math.Copysign(moverRange, b.pos.Y-b.origin.Y)
		b.dir = -b.dir
	}
}

func (b *RawBouncer) Render(dst engine.Surface) {
	dst.FillRect(b.pos.X-moverSize/2, b.pos.Y-moverSize/2, moverSize, moverSize, colornames.Royalblue)
}
