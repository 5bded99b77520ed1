package engine

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface adapts an ebiten image to the Surface contract. Ebiten
// hands Draw a fresh screen image every frame, so the game loop points
// the surface at it with SetTarget before calling Render.
type EbitenSurface struct {
	dst *ebiten.Image
}

// SetTarget aims the surface at this frame's screen image.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) { s.dst = dst }

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if s.dst == nil {
		return
	}
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if s.dst == nil {
		return
	}
	vector.FillCircle(s.dst, float32(cx), float32(cy), float32(r), c, false)
}
