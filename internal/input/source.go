package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source supplies the keyboard and mouse state the action system reads
// each frame.
type Source interface {
	// KeyPressed reports one key's current held state.
	KeyPressed(k ebiten.Key) bool
	// MouseButtons returns the pressed state of the left, middle and
	// right mouse buttons, in that order.
	MouseButtons() [3]bool
	// AnyKeyPressed reports whether any keyboard key at all is held,
	// for source arbitration.
	AnyKeyPressed() bool
}

// EbitenSource reads the live keyboard and mouse through ebiten.
type EbitenSource struct {
	keys []ebiten.Key // scratch buffer for AppendPressedKeys
}

func (s *EbitenSource) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (s *EbitenSource) MouseButtons() [3]bool {
	return [3]bool{
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
}

func (s *EbitenSource) AnyKeyPressed() bool {
	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	return len(s.keys) > 0
}
