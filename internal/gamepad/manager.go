package gamepad

import (
	"strings"

	"go.uber.org/zap"
)

// Manager owns every Gamepad instance and routes hardware connect and
// disconnect events to them. Each event is offered to instances in
// registration order and stops at the first one that handles it, so at
// most one instance reacts per event. A device id can only ever be
// bound to one instance at a time.
type Manager struct {
	log     *zap.Logger
	pads    []*Gamepad
	claimed map[int]bool // device ids currently bound to an instance
	inner   float64
	outer   float64
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithDeadzone overrides the stick deadzone thresholds applied to every
// instance the Manager creates.
func WithDeadzone(inner, outer float64) Option {
	return func(m *Manager) {
		m.inner = inner
		m.outer = outer
	}
}

// WithLogger attaches a logger for connect and disconnect events.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) { m.log = log }
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		log:     zap.NewNop(),
		claimed: make(map[int]bool),
		inner:   DefaultDeadzoneInner,
		outer:   DefaultDeadzoneOuter,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// NewPad registers a new, initially disconnected instance.
func (m *Manager) NewPad() *Gamepad {
	p := &Gamepad{inner: m.inner, outer: m.outer}
	m.pads = append(m.pads, p)
	return p
}

// Dispatch routes one hardware event to the first instance that can
// handle it. Events nobody can handle (an unsupported device, a
// disconnect for an unclaimed id) are dropped.
func (m *Manager) Dispatch(ev Event) {
	for _, p := range m.pads {
		if m.offer(p, ev) {
			return
		}
	}
}

func (m *Manager) offer(p *Gamepad, ev Event) bool {
	switch ev.Kind {
	case DeviceAdded:
		if p.device != nil || m.claimed[ev.Device.ID()] || !supportedDevice(ev.Device.Name()) {
			return false
		}
		p.device = ev.Device
		m.claimed[ev.Device.ID()] = true
		m.log.Info("gamepad connected",
			zap.Int("device", ev.Device.ID()),
			zap.String("name", ev.Device.Name()))
		return true
	case DeviceRemoved:
		if p.device == nil || p.device.ID() != ev.ID {
			return false
		}
		delete(m.claimed, ev.ID)
		p.device = nil
		m.log.Info("gamepad disconnected", zap.Int("device", ev.ID))
		return true
	}
	return false
}

// supportedDevice reports whether the device name marks a controller
// family this layer knows how to read.
func supportedDevice(name string) bool {
	return strings.Contains(strings.ToLower(name), "xbox")
}
