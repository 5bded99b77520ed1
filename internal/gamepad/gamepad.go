package gamepad

import (
	"github.com/farrowlabs/jumpbox/internal/geom"
)

// Button identifies one digital input on the controller. The last four
// are virtual: they derive from the analog trigger axes.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftBumper
	ButtonRightBumper
	ButtonBack
	ButtonStart
	ButtonGuide
	ButtonLeftStick
	ButtonRightStick

	// Virtual trigger pulls, derived from the trigger axes.
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonLeftTriggerFull
	ButtonRightTriggerFull

	buttonCount
)

// Axis identifies one analog axis on the controller.
type Axis int

const (
	AxisLeftStickX Axis = iota
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY
	AxisLeftTrigger
	AxisRightTrigger
	AxisDPadX
	AxisDPadY

	axisCount
)

// Stick identifies a 2-axis input for the composite queries. The dpad
// counts as a stick that only reaches -1, 0 and 1.
type Stick int

const (
	StickLeft Stick = iota
	StickRight
	StickDPad
)

// Trigger pull thresholds for the virtual trigger buttons, against the
// shaped [0,1] trigger value.
const (
	triggerSoftPull = 0.25
	triggerFullPull = 0.95
)

// Gamepad exposes at most one claimed hardware device as clean digital
// buttons and shaped analog axes. A disconnected instance answers every
// query with inert defaults: buttons false, axes zero.
//
// Instances are created through a Manager, which routes hardware
// connect and disconnect events to them.
type Gamepad struct {
	device Device
	inner  float64 // stick deadzone lower threshold
	outer  float64 // stick deadzone saturation margin
}

// Connected reports whether this instance currently owns a device.
func (p *Gamepad) Connected() bool { return p.device != nil }

// Name returns the claimed device's name, or "" when disconnected.
func (p *Gamepad) Name() string {
	if p.device == nil {
		return ""
	}
	return p.device.Name()
}

// ButtonDown reports the current pressed state of b. The virtual
// trigger buttons fire from the trigger axes: soft pulls at 25%
// travel, full pulls at 95%.
func (p *Gamepad) ButtonDown(b Button) bool {
	if p.device == nil {
		return false
	}
	switch b {
	case ButtonLeftTrigger:
		return p.AxisValue(AxisLeftTrigger) >= triggerSoftPull
	case ButtonRightTrigger:
		return p.AxisValue(AxisRightTrigger) >= triggerSoftPull
	case ButtonLeftTriggerFull:
		return p.AxisValue(AxisLeftTrigger) >= triggerFullPull
	case ButtonRightTriggerFull:
		return p.AxisValue(AxisRightTrigger) >= triggerFullPull
	}
	return p.device.ButtonDown(b)
}

// AxisValue returns an axis with the standard shaping applied: stick
// axes are deadzoned, triggers are remapped from their native [-1,1]
// to [0,1], and dpad axes report exactly -1, 0 or 1 with the vertical
// axis flipped so that -1 means up.
func (p *Gamepad) AxisValue(a Axis) float64 { return p.axis(a, false) }

// AxisValueRaw is AxisValue without the stick deadzone. Trigger and
// dpad shaping still apply; neither is ever deadzoned.
func (p *Gamepad) AxisValueRaw(a Axis) float64 { return p.axis(a, true) }

func (p *Gamepad) axis(a Axis, raw bool) float64 {
	if p.device == nil {
		return 0
	}
	switch a {
	case AxisLeftTrigger, AxisRightTrigger:
		return p.device.Axis(a)/2 + 0.5
	case AxisDPadX:
		x, _ := p.device.Hat()
		return float64(x)
	case AxisDPadY:
		_, y := p.device.Hat()
		return float64(-y)
	}
	v := p.device.Axis(a)
	if raw {
		return v
	}
	return deadzone(v, p.inner, p.outer)
}

// StickPos returns the deadzoned 2D position of a stick, or the dpad
// as a vector of -1/0/1 components.
func (p *Gamepad) StickPos(s Stick) geom.Vec2 {
	x, y := stickAxes(s)
	return geom.Vec2{X: p.AxisValue(x), Y: p.AxisValue(y)}
}

// StickPosRaw is StickPos without the deadzone.
func (p *Gamepad) StickPosRaw(s Stick) geom.Vec2 {
	x, y := stickAxes(s)
	return geom.Vec2{X: p.AxisValueRaw(x), Y: p.AxisValueRaw(y)}
}

// StickVector returns the stick direction as a unit vector. A centered
// stick yields the zero vector.
func (p *Gamepad) StickVector(s Stick) geom.Vec2 {
	return p.StickPos(s).Normalized()
}

func stickAxes(s Stick) (x, y Axis) {
	switch s {
	case StickRight:
		return AxisRightStickX, AxisRightStickY
	case StickDPad:
		return AxisDPadX, AxisDPadY
	}
	return AxisLeftStickX, AxisLeftStickY
}

// AnyButtonDown reports whether any button, virtual trigger pulls
// included, is currently pressed. Used for input-source arbitration.
func (p *Gamepad) AnyButtonDown() bool {
	if p.device == nil {
		return false
	}
	for b := Button(0); b < buttonCount; b++ {
		if p.ButtonDown(b) {
			return true
		}
	}
	return false
}

// AnyAxisActive reports whether any shaped axis reads non-zero.
func (p *Gamepad) AnyAxisActive() bool {
	if p.device == nil {
		return false
	}
	for a := Axis(0); a < axisCount; a++ {
		if p.AxisValue(a) != 0 {
			return true
		}
	}
	return false
}
