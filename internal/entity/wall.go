package entity

import (
	"image/color"

	"github.com/farrowlabs/jumpbox/internal/engine"
	"github.com/farrowlabs/jumpbox/internal/geom"
)

var wallColor = color.RGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff}

// Wall is a static solid block. Walls render beneath everything else
// and carry the collision tag the player sweeps against.
type Wall struct {
	engine.Base

	collider geom.Rect
}

// NewWall builds a wall whose collision box has its top-left corner at
// (x, y).
func NewWall(x, y, w, h float64) *Wall {
	return &Wall{
		Base:     engine.Base{Layer: -5, Tags: []engine.Tag{TagWall, TagWallCollision}},
		collider: geom.Rect{X: x, Y: y, Width: w, Height: h},
	}
}

// Box returns the wall's collision rectangle.
func (w *Wall) Box() geom.Rect { return w.collider }

func (w *Wall) Render(dst engine.Surface) {
	dst.FillRect(w.collider.X, w.collider.Y, w.collider.Width, w.collider.Height, wallColor)
}
