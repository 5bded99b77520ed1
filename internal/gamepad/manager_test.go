package gamepad

import "testing"

func added(id int, name string) Event {
	return Event{Kind: DeviceAdded, Device: NewStubDevice(id, name)}
}

func removed(id int) Event {
	return Event{Kind: DeviceRemoved, ID: id}
}

func TestManager_FirstDisconnectedInstanceClaims(t *testing.T) {
	m := NewManager()
	first := m.NewPad()
	second := m.NewPad()

	m.Dispatch(added(7, "Xbox Wireless Controller"))
	if !first.Connected() {
		t.Fatal("first registered pad should claim the device")
	}
	if second.Connected() {
		t.Fatal("second pad must not claim an already-handled event")
	}

	m.Dispatch(added(8, "Xbox Wireless Controller"))
	if !second.Connected() {
		t.Fatal("second pad should claim the next device")
	}
}

func TestManager_UnsupportedDeviceIgnored(t *testing.T) {
	m := NewManager()
	p := m.NewPad()
	m.Dispatch(added(3, "Generic USB Joystick"))
	if p.Connected() {
		t.Fatal("unsupported device name must not be claimed")
	}
}

func TestManager_DeviceNameMatchIsCaseInsensitive(t *testing.T) {
	m := NewManager()
	p := m.NewPad()
	m.Dispatch(added(3, "Microsoft XBOX Elite Controller"))
	if !p.Connected() {
		t.Fatal("name match should ignore case")
	}
}

func TestManager_DisconnectReleasesClaim(t *testing.T) {
	m := NewManager()
	p := m.NewPad()

	m.Dispatch(added(7, "Xbox Wireless Controller"))
	m.Dispatch(removed(7))
	if p.Connected() {
		t.Fatal("pad should release on its device's removal")
	}

	// The id is free again, so the same pad can reclaim it.
	m.Dispatch(added(7, "Xbox Wireless Controller"))
	if !p.Connected() {
		t.Fatal("released device id should be claimable again")
	}
}

func TestManager_RemovalOfUnclaimedIdDropped(t *testing.T) {
	m := NewManager()
	p := m.NewPad()
	m.Dispatch(added(7, "Xbox Wireless Controller"))
	m.Dispatch(removed(99))
	if !p.Connected() {
		t.Fatal("removal of an unrelated id must not disturb the claim")
	}
}

func TestManager_ClaimedIdNeverDoubleBound(t *testing.T) {
	m := NewManager()
	first := m.NewPad()
	second := m.NewPad()

	m.Dispatch(added(7, "Xbox Wireless Controller"))
	// A duplicate added event for the same id must not bind pad two.
	m.Dispatch(added(7, "Xbox Wireless Controller"))
	if !first.Connected() {
		t.Fatal("first pad should hold its claim")
	}
	if second.Connected() {
		t.Fatal("claimed device id must not bind a second instance")
	}
}

func TestManager_DeadzoneOptionPropagates(t *testing.T) {
	m := NewManager(WithDeadzone(0.2, 0.1))
	p := m.NewPad()
	d := NewStubDevice(0, "Xbox Series X Controller")
	m.Dispatch(Event{Kind: DeviceAdded, Device: d})

	d.Axes[AxisLeftStickX] = 0.15
	if got := p.AxisValue(AxisLeftStickX); got != 0 {
		t.Fatalf("axis inside widened deadzone = %v, expected 0", got)
	}
	d.Axes[AxisLeftStickX] = 0.95
	if got := p.AxisValue(AxisLeftStickX); got != 1 {
		t.Fatalf("axis beyond widened saturation = %v, expected 1", got)
	}
}
