package gamepad

// Device is the raw surface of one physical controller as the platform
// layer reports it: digital buttons, native axes and a dpad hat.
type Device interface {
	// ID is the platform's stable instance id for this controller.
	ID() int
	// Name is the platform-reported device name.
	Name() string
	// ButtonDown reports a physical button's pressed state. The
	// virtual trigger-pull buttons are never passed here.
	ButtonDown(b Button) bool
	// Axis returns a stick or trigger axis in its native [-1,1] range.
	// Triggers rest at -1 and reach +1 when fully pulled.
	Axis(a Axis) float64
	// Hat returns the dpad state, one of {-1,0,1} per axis, +1 = up.
	Hat() (x, y int)
}

// EventKind tags a controller lifecycle event.
type EventKind int

const (
	DeviceAdded EventKind = iota
	DeviceRemoved
)

// Event is one controller connect or disconnect observed by the
// platform layer. Added events carry the opened Device; removed events
// carry only the departed instance id.
type Event struct {
	Kind   EventKind
	Device Device // set for DeviceAdded
	ID     int    // set for DeviceRemoved
}
