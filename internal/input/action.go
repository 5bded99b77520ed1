package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/farrowlabs/jumpbox/internal/gamepad"
)

// Mode selects how an action turns its bindings' pressed state into
// the active flag.
type Mode int

const (
	// Hold actions mirror their bindings: active exactly while held.
	Hold Mode = iota
	// Press actions fire once on the pressing edge and stay silent
	// until release, optionally kept readable for a buffer window.
	Press
)

func (m Mode) String() string {
	if m == Press {
		return "press"
	}
	return "hold"
}

// Option configures an action at registration.
type Option func(*action)

// WithKeys binds keyboard keys and mouse buttons by name. Names are
// case-insensitive; mouse buttons ("left mouse", "mouse 1", ...) are
// recognized inside the same list.
func WithKeys(names ...string) Option {
	return func(a *action) { a.keyNames = append(a.keyNames, names...) }
}

// WithButtons binds gamepad buttons by name.
func WithButtons(names ...string) Option {
	return func(a *action) { a.buttonNames = append(a.buttonNames, names...) }
}

// PressMode makes the action one-shot edge-triggered instead of
// continuously active while held.
func PressMode() Option {
	return func(a *action) { a.mode = Press }
}

// Chorded requires every binding of the dominant source pressed at
// once, instead of at least one of them.
func Chorded() Option {
	return func(a *action) { a.chord = true }
}

type action struct {
	name        string
	keyNames    []string // keyboard/mouse bindings as registered
	buttonNames []string // gamepad bindings as registered

	keys    []ebiten.Key     // resolved keyboard codes
	mouse   []int            // resolved mouse button indexes
	buttons []gamepad.Button // resolved gamepad buttons

	mode  Mode
	chord bool

	active    bool
	wasActive bool    // press debounce: fired and still held
	buffer    float64 // press buffer seconds remaining
}

// resolve turns the registered binding names into key codes, mouse
// indexes and gamepad buttons. Unknown names report the offending
// binding and the action it belongs to.
func (a *action) resolve() error {
	for _, raw := range a.keyNames {
		name := strings.ToLower(raw)
		if idx, ok := mouseButtonNames[name]; ok {
			a.mouse = append(a.mouse, idx)
			continue
		}
		if alias, ok := keyAliases[name]; ok {
			name = alias
		}
		code, ok := keyCodes[name]
		if !ok {
			return fmt.Errorf("invalid key %q bound to action %q", raw, a.name)
		}
		a.keys = append(a.keys, code)
	}
	for _, raw := range a.buttonNames {
		btn, ok := padButtonNames[strings.ToLower(raw)]
		if !ok {
			return fmt.Errorf("invalid gamepad button %q bound to action %q", raw, a.name)
		}
		a.buttons = append(a.buttons, btn)
	}
	return nil
}

// update advances the action one frame given the already-arbitrated
// dominant source.
func (a *action) update(in *Input, dt float64) {
	pressed := a.pressedNow(in)

	if a.mode == Hold {
		a.active = pressed
		return
	}

	switch {
	case pressed && a.buffer > 0:
		a.active = true
		a.buffer -= dt
	case pressed && a.wasActive:
		a.active = false
	case pressed:
		a.active = true
		a.wasActive = true
		a.buffer = in.bufferDuration
	default:
		a.active = false
		a.wasActive = false
	}
}

// pressedNow evaluates only the dominant source's bindings. An action
// with no bindings for that source reads as not pressed.
func (a *action) pressedNow(in *Input) bool {
	if in.source == SourceGamepad {
		if len(a.buttons) == 0 {
			return false
		}
		if a.chord {
			for _, b := range a.buttons {
				if !in.pad.ButtonDown(b) {
					return false
				}
			}
			return true
		}
		for _, b := range a.buttons {
			if in.pad.ButtonDown(b) {
				return true
			}
		}
		return false
	}

	if len(a.keys) == 0 && len(a.mouse) == 0 {
		return false
	}
	mb := in.src.MouseButtons()
	if a.chord {
		for _, k := range a.keys {
			if !in.src.KeyPressed(k) {
				return false
			}
		}
		for _, m := range a.mouse {
			if !mb[m] {
				return false
			}
		}
		return true
	}
	for _, k := range a.keys {
		if in.src.KeyPressed(k) {
			return true
		}
	}
	for _, m := range a.mouse {
		if mb[m] {
			return true
		}
	}
	return false
}
