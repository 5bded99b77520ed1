package gamepad

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller turns ebiten's per-frame gamepad reports into connect and
// disconnect Events. Poll must run once per frame, before Dispatch.
type Poller struct {
	ids []ebiten.GamepadID // ids seen last frame, for disconnect checks
}

// Poll appends this frame's events to buf and returns it.
func (p *Poller) Poll(buf []Event) []Event {
	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		buf = append(buf, Event{Kind: DeviceAdded, Device: &ebitenDevice{id: id}})
	}
	for _, id := range p.ids {
		if inpututil.IsGamepadJustDisconnected(id) {
			buf = append(buf, Event{Kind: DeviceRemoved, ID: int(id)})
		}
	}
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	return buf
}

// ebitenDevice adapts one ebiten gamepad id to the Device interface
// through the standard layout, so button positions match across
// vendors.
type ebitenDevice struct {
	id ebiten.GamepadID
}

func (d *ebitenDevice) ID() int { return int(d.id) }

func (d *ebitenDevice) Name() string { return ebiten.GamepadName(d.id) }

var standardButtons = map[Button]ebiten.StandardGamepadButton{
	ButtonA:           ebiten.StandardGamepadButtonRightBottom,
	ButtonB:           ebiten.StandardGamepadButtonRightRight,
	ButtonX:           ebiten.StandardGamepadButtonRightLeft,
	ButtonY:           ebiten.StandardGamepadButtonRightTop,
	ButtonLeftBumper:  ebiten.StandardGamepadButtonFrontTopLeft,
	ButtonRightBumper: ebiten.StandardGamepadButtonFrontTopRight,
	ButtonBack:        ebiten.StandardGamepadButtonCenterLeft,
	ButtonStart:       ebiten.StandardGamepadButtonCenterRight,
	ButtonGuide:       ebiten.StandardGamepadButtonCenterCenter,
	ButtonLeftStick:   ebiten.StandardGamepadButtonLeftStick,
	ButtonRightStick:  ebiten.StandardGamepadButtonRightStick,
}

func (d *ebitenDevice) ButtonDown(b Button) bool {
	sb, ok := standardButtons[b]
	if !ok {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(d.id, sb)
}

func (d *ebitenDevice) Axis(a Axis) float64 {
	switch a {
	case AxisLeftStickX:
		return ebiten.StandardGamepadAxisValue(d.id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	case AxisLeftStickY:
		return ebiten.StandardGamepadAxisValue(d.id, ebiten.StandardGamepadAxisLeftStickVertical)
	case AxisRightStickX:
		return ebiten.StandardGamepadAxisValue(d.id, ebiten.StandardGamepadAxisRightStickHorizontal)
	case AxisRightStickY:
		return ebiten.StandardGamepadAxisValue(d.id, ebiten.StandardGamepadAxisRightStickVertical)
	case AxisLeftTrigger:
		// The standard layout reports trigger travel in [0,1]; Device
		// axes are native [-1,1] with -1 at rest.
		return ebiten.StandardGamepadButtonValue(d.id, ebiten.StandardGamepadButtonFrontBottomLeft)*2 - 1
	case AxisRightTrigger:
		return ebiten.StandardGamepadButtonValue(d.id, ebiten.StandardGamepadButtonFrontBottomRight)*2 - 1
	}
	return 0
}

func (d *ebitenDevice) Hat() (int, int) {
	x, y := 0, 0
	if ebiten.IsStandardGamepadButtonPressed(d.id, ebiten.StandardGamepadButtonLeftLeft) {
		x--
	}
	if ebiten.IsStandardGamepadButtonPressed(d.id, ebiten.StandardGamepadButtonLeftRight) {
		x++
	}
	if ebiten.IsStandardGamepadButtonPressed(d.id, ebiten.StandardGamepadButtonLeftTop) {
		y++
	}
	if ebiten.IsStandardGamepadButtonPressed(d.id, ebiten.StandardGamepadButtonLeftBottom) {
		y--
	}
	return x, y
}
