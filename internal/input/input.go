// Package input maps named logical actions ("jump", "fire") onto
// keyboard keys, mouse buttons and gamepad buttons. Actions carry
// hold/press semantics, optional chording and press buffering, and
// each frame they listen to a single arbitrated source: keyboard/mouse
// or gamepad, whichever the player touched last.
package input

import (
	"fmt"

	"github.com/farrowlabs/jumpbox/internal/gamepad"
)

// SourceKind names the device family that currently dominates input.
type SourceKind int

const (
	SourceKeyboard SourceKind = iota
	SourceGamepad
)

func (s SourceKind) String() string {
	if s == SourceGamepad {
		return "gamepad"
	}
	return "keyboard"
}

// Input is the action registry. Register actions once at setup, call
// Update every frame, then query Active from entity code. The zero
// value is not usable; construct with New.
type Input struct {
	src Source
	pad *gamepad.Gamepad // optional: nil means keyboard-only

	actions map[string]*action
	order   []string // registration order

	bufferDuration float64 // press buffer window in seconds
	source         SourceKind
}

// New builds a registry reading keyboard and mouse state from src and,
// when pad is non-nil, gamepad state from pad.
func New(src Source, pad *gamepad.Gamepad) *Input {
	return &Input{
		src:     src,
		pad:     pad,
		actions: make(map[string]*action),
	}
}

// AddAction registers a named action. It fails on a duplicate name, on
// an action with no bindings at all, and on binding names no table
// knows.
func (in *Input) AddAction(name string, opts ...Option) error {
	if _, ok := in.actions[name]; ok {
		return fmt.Errorf("action %q already exists", name)
	}
	a := &action{name: name}
	for _, o := range opts {
		o(a)
	}
	if len(a.keyNames) == 0 && len(a.buttonNames) == 0 {
		return fmt.Errorf("action %q has no bindings", name)
	}
	if err := a.resolve(); err != nil {
		return err
	}
	in.actions[name] = a
	in.order = append(in.order, name)
	return nil
}

// Update arbitrates the dominant input source for this frame, then
// advances every action. dt is the frame delta in seconds.
func (in *Input) Update(dt float64) {
	in.source = in.arbitrate()
	for _, name := range in.order {
		in.actions[name].update(in, dt)
	}
}

// arbitrate picks the device family actions listen to this frame. The
// priority is fixed: a missing or disconnected pad forces keyboard;
// any pad button beats any pad axis beats any key or mouse button;
// with nothing pressed anywhere the previous source sticks.
func (in *Input) arbitrate() SourceKind {
	switch {
	case in.pad == nil || !in.pad.Connected():
		return SourceKeyboard
	case in.pad.AnyButtonDown():
		return SourceGamepad
	case in.pad.AnyAxisActive():
		return SourceGamepad
	case in.src.AnyKeyPressed():
		return SourceKeyboard
	}
	if mb := in.src.MouseButtons(); mb[0] || mb[1] || mb[2] {
		return SourceKeyboard
	}
	return in.source
}

// Active reports whether the named action fired this frame. For Press
// actions a true result zeroes the remaining buffer, so a buffered
// press is consumed by its first reader; use Peek to leave the buffer
// running. Unknown names panic: bindings are fixed at setup, so a miss
// is a programming error.
func (in *Input) Active(name string) bool {
	a := in.lookup(name)
	if a.active {
		a.buffer = 0
	}
	return a.active
}

// Peek is Active without consuming the press buffer.
func (in *Input) Peek(name string) bool {
	return in.lookup(name).active
}

// ActionData is an immutable snapshot of one action's registration.
type ActionData struct {
	Name    string
	Keys    []string
	Buttons []string
	Mode    Mode
	Chord   bool
}

// Data returns a snapshot of the named action's registration. Unknown
// names panic.
func (in *Input) Data(name string) ActionData {
	a := in.lookup(name)
	return ActionData{
		Name:    a.name,
		Keys:    append([]string(nil), a.keyNames...),
		Buttons: append([]string(nil), a.buttonNames...),
		Mode:    a.mode,
		Chord:   a.chord,
	}
}

// ActionNames lists every registered action in registration order.
func (in *Input) ActionNames() []string {
	return append([]string(nil), in.order...)
}

// LastSource reports which device family actions listened to on the
// most recent Update.
func (in *Input) LastSource() SourceKind { return in.source }

// BufferDuration returns the press buffer window in seconds.
func (in *Input) BufferDuration() float64 { return in.bufferDuration }

// SetBufferDuration sets the grace window during which an unconsumed
// Press action keeps reading active before it auto-clears. Zero (the
// default) disables buffering.
func (in *Input) SetBufferDuration(seconds float64) { in.bufferDuration = seconds }

func (in *Input) lookup(name string) *action {
	a, ok := in.actions[name]
	if !ok {
		panic(fmt.Sprintf("input: action %q does not exist (action names are case-sensitive)", name))
	}
	return a
}
