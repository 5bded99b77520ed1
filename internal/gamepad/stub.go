package gamepad

// StubDevice is a scriptable Device for tests and headless runs.
// Unset axes read 0, except triggers which rest at their native -1.
type StubDevice struct {
	DeviceID   int
	DeviceName string
	Buttons    map[Button]bool
	Axes       map[Axis]float64
	HatX, HatY int
}

func NewStubDevice(id int, name string) *StubDevice {
	return &StubDevice{
		DeviceID:   id,
		DeviceName: name,
		Buttons:    make(map[Button]bool),
		Axes:       make(map[Axis]float64),
	}
}

func (d *StubDevice) ID() int { return d.DeviceID }

func (d *StubDevice) Name() string { return d.DeviceName }

func (d *StubDevice) ButtonDown(b Button) bool { return d.Buttons[b] }

func (d *StubDevice) Axis(a Axis) float64 {
	if v, ok := d.Axes[a]; ok {
		return v
	}
	if a == AxisLeftTrigger || a == AxisRightTrigger {
		return -1
	}
	return 0
}

func (d *StubDevice) Hat() (int, int) { return d.HatX, d.HatY }

// SetTrigger scripts a trigger position using the shaped [0,1] range,
// 0 released to 1 fully pulled.
func (d *StubDevice) SetTrigger(a Axis, pull float64) {
	d.Axes[a] = pull*2 - 1
}
