package game

import (
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/farrowlabs/jumpbox/internal/config"
	"github.com/farrowlabs/jumpbox/internal/entity"
	"github.com/farrowlabs/jumpbox/internal/gamepad"
	"github.com/farrowlabs/jumpbox/internal/input"
)

// scriptedEvents is an EventSource whose queue tests fill by hand.
type scriptedEvents struct {
	queue []gamepad.Event
}

func (s *scriptedEvents) Poll(buf []gamepad.Event) []gamepad.Event {
	buf = append(buf, s.queue...)
	s.queue = nil
	return buf
}

func newHeadless(t *testing.T) (*Game, *input.StubSource, *scriptedEvents) {
	t.Helper()
	src := input.NewStubSource()
	ev := &scriptedEvents{}
	g, err := New(config.Default(), zap.NewNop(), WithSource(src), WithEventSource(ev))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, src, ev
}

func TestNew_RegistersConfiguredAndSceneActions(t *testing.T) {
	g, _, _ := newHeadless(t)
	have := map[string]bool{}
	for _, name := range g.in.ActionNames() {
		have[name] = true
	}
	for _, want := range []string{
		"hold", "hold chord", "press", "press chord",
		entity.ActionMoveLeft, entity.ActionMoveRight, entity.ActionJump,
		actionSlowTime, actionCopyDiagnostics,
	} {
		if !have[want] {
			t.Fatalf("action %q not registered (have %v)", want, g.in.ActionNames())
		}
	}
}

func TestNew_RejectsBadBinding(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Actions = append(cfg.Input.Actions, config.ActionConfig{
		Name: "broken",
		Keys: []string{"no such key"},
	})
	_, err := New(cfg, zap.NewNop(), WithSource(input.NewStubSource()), WithEventSource(&scriptedEvents{}))
	if err == nil {
		t.Fatal("New accepted an unknown key binding")
	}
}

func TestNew_TPSOverride(t *testing.T) {
	_, err := New(config.Default(), zap.NewNop(),
		WithSource(input.NewStubSource()), WithEventSource(&scriptedEvents{}), WithTPS(0))
	if err == nil {
		t.Fatal("New accepted a non-positive tps")
	}

	g, err := New(config.Default(), zap.NewNop(),
		WithSource(input.NewStubSource()), WithEventSource(&scriptedEvents{}), WithTPS(50))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// One airborne frame at 50 tps accumulates gravity over 20ms.
	if got := g.Player().Vel().Y; got != entity.Gravity/50 {
		t.Fatalf("fall speed after one frame = %v, expected %v", got, entity.Gravity/50)
	}
}

func TestGame_IndicatorsTrackActions(t *testing.T) {
	g, src, _ := newHeadless(t)

	byName := func(name string) *indicator {
		t.Helper()
		for i := range g.indicators {
			if g.indicators[i].action == name {
				return &g.indicators[i]
			}
		}
		t.Fatalf("no indicator for %q", name)
		return nil
	}

	src.Keys[ebiten.KeyZ] = true
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !byName("hold").lit {
		t.Fatal("hold indicator dark while z held")
	}
	if byName("hold chord").lit {
		t.Fatal("hold chord indicator lit with only half the chord held")
	}

	src.Keys[ebiten.KeyX] = true
	g.Update()
	if !byName("hold chord").lit {
		t.Fatal("hold chord indicator dark with z and x held")
	}

	src.Clear()
	src.Keys[ebiten.KeyC] = true
	g.Update()
	if !byName("press").lit {
		t.Fatal("press indicator dark on press edge")
	}
	g.Update()
	if byName("press").lit {
		t.Fatal("press indicator still lit while key held")
	}
}

func TestGame_SlowTimeScalesWorld(t *testing.T) {
	g, src, _ := newHeadless(t)

	src.Keys[ebiten.KeyTab] = true
	g.Update()
	if got := g.world.TimeScale; got != slowTimeScale {
		t.Fatalf("TimeScale while slow-time held = %v, want %v", got, slowTimeScale)
	}

	src.Clear()
	g.Update()
	if got := g.world.TimeScale; got != 1 {
		t.Fatalf("TimeScale after release = %v, want 1", got)
	}
}

func TestGame_PadHotplugAndReport(t *testing.T) {
	g, _, ev := newHeadless(t)

	dev := gamepad.NewStubDevice(3, "Xbox One Controller")
	ev.queue = append(ev.queue, gamepad.Event{Kind: gamepad.DeviceAdded, Device: dev})
	g.Update()
	if !g.pad.Connected() {
		t.Fatal("pad did not bind after connect event")
	}

	report := g.Report()
	for _, want := range []string{
		"jumpbox diagnostics",
		"session=",
		`pad="Xbox One Controller"`,
		"player pos=",
		"actions:",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}

	ev.queue = append(ev.queue, gamepad.Event{Kind: gamepad.DeviceRemoved, ID: 3})
	g.Update()
	if g.pad.Connected() {
		t.Fatal("pad still bound after disconnect event")
	}
	if !strings.Contains(g.Report(), "pad=none") {
		t.Fatal("report still shows a pad after disconnect")
	}
}

func TestGame_PlayerSettlesOnFloor(t *testing.T) {
	g, _, _ := newHeadless(t)
	if got := g.world.Len(); got != 8 {
		t.Fatalf("world holds %d entities, want 8 (5 walls, player, 2 movers)", got)
	}

	for i := 0; i < 120; i++ {
		g.Update()
	}
	if got := g.player.Vel().Y; got != 0 {
		t.Fatalf("player vel.y after settling = %v, want 0", got)
	}
	// Floor top is window height minus thickness; the player's center
	// rests half its height above that.
	if got := g.player.Pos().Y; math.Abs(got-564) > 1e-9 {
		t.Fatalf("player rest y = %v, want 564", got)
	}
}

func TestGame_LayoutIsConfiguredWindow(t *testing.T) {
	g, _, _ := newHeadless(t)
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Fatalf("Layout = %dx%d, want 800x600", w, h)
	}
}
