package input

import "github.com/hajimehoshi/ebiten/v2"

// StubSource is a scriptable keyboard and mouse for tests and headless
// runs. Set keys and mouse buttons directly between updates.
type StubSource struct {
	Keys  map[ebiten.Key]bool
	Mouse [3]bool
}

func NewStubSource() *StubSource {
	return &StubSource{Keys: make(map[ebiten.Key]bool)}
}

func (s *StubSource) KeyPressed(k ebiten.Key) bool { return s.Keys[k] }

func (s *StubSource) MouseButtons() [3]bool { return s.Mouse }

func (s *StubSource) AnyKeyPressed() bool {
	for _, down := range s.Keys {
		if down {
			return true
		}
	}
	return false
}

// Clear releases every key and mouse button.
func (s *StubSource) Clear() {
	s.Keys = make(map[ebiten.Key]bool)
	s.Mouse = [3]bool{}
}
