// Package game wires the demo scene together: config-driven action
// bindings, one managed gamepad, the entity world, and on-screen
// indicator circles mirroring the four test actions.
package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/farrowlabs/jumpbox/internal/config"
	"github.com/farrowlabs/jumpbox/internal/engine"
	"github.com/farrowlabs/jumpbox/internal/entity"
	"github.com/farrowlabs/jumpbox/internal/gamepad"
	"github.com/farrowlabs/jumpbox/internal/input"
)

// defaultTPS is the fixed simulation rate ebiten drives Update at.
const defaultTPS = 60

// Actions the scene registers for itself on top of the configured set.
const (
	actionSlowTime        = "slow time"
	actionCopyDiagnostics = "copy diagnostics"
)

// slowTimeScale is the world speed while the slow-time action is held.
const slowTimeScale = 0.25

// EventSource feeds gamepad connect and disconnect events once per
// frame. The live implementation is gamepad.Poller; the headless
// runner scripts its own.
type EventSource interface {
	Poll(buf []gamepad.Event) []gamepad.Event
}

// Game implements ebiten.Game for the demo scene.
type Game struct {
	log     *zap.Logger
	session string
	cfg     *config.Config

	src    input.Source
	events EventSource
	pads   *gamepad.Manager
	pad    *gamepad.Gamepad
	in     *input.Input

	world   *engine.Engine
	surface *engine.EbitenSurface
	player  *entity.Player

	indicators []indicator
	evbuf      []gamepad.Event
	tps        int
	tick       int
	dt         float64
}

// Option overrides a hardware source at construction, for headless
// runs and tests.
type Option func(*Game)

// WithSource replaces the live keyboard and mouse.
func WithSource(src input.Source) Option {
	return func(g *Game) { g.src = src }
}

// WithEventSource replaces the live gamepad hotplug poller.
func WithEventSource(ev EventSource) Option {
	return func(g *Game) { g.events = ev }
}

// WithTPS overrides the simulation rate, for headless runs stepping
// virtual time at a rate ebiten is not driving.
func WithTPS(n int) Option {
	return func(g *Game) { g.tps = n }
}

func New(cfg *config.Config, log *zap.Logger, opts ...Option) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		log:     log,
		session: uuid.NewString(),
		cfg:     cfg,
		tps:     defaultTPS,
	}
	for _, o := range opts {
		o(g)
	}
	if g.src == nil {
		g.src = &input.EbitenSource{}
	}
	if g.events == nil {
		g.events = &gamepad.Poller{}
	}
	if g.tps <= 0 {
		return nil, fmt.Errorf("tps %d must be positive", g.tps)
	}
	g.dt = 1.0 / float64(g.tps)

	g.pads = gamepad.NewManager(
		gamepad.WithDeadzone(cfg.Gamepad.DeadzoneInner, cfg.Gamepad.DeadzoneOuter),
		gamepad.WithLogger(log),
	)
	g.pad = g.pads.NewPad()

	g.in = input.New(g.src, g.pad)
	g.in.SetBufferDuration(cfg.Input.BufferSeconds)
	if err := g.registerActions(); err != nil {
		return nil, err
	}

	g.world = &engine.Engine{}
	g.surface = &engine.EbitenSurface{}
	g.world.Init(engine.FixedClock{TPS: g.tps}, g.surface)
	g.buildWorld()
	g.initIndicators()

	log.Info("game ready",
		zap.String("session", g.session),
		zap.Strings("actions", g.in.ActionNames()),
		zap.Int("entities", g.world.Len()))
	return g, nil
}

// registerActions loads the configured bindings, then guarantees the
// actions the scene itself depends on exist no matter what the file
// declares.
func (g *Game) registerActions() error {
	for _, a := range g.cfg.Input.Actions {
		var opts []input.Option
		if len(a.Keys) > 0 {
			opts = append(opts, input.WithKeys(a.Keys...))
		}
		if len(a.Buttons) > 0 {
			opts = append(opts, input.WithButtons(a.Buttons...))
		}
		if a.Mode == "press" {
			opts = append(opts, input.PressMode())
		}
		if a.Chord {
			opts = append(opts, input.Chorded())
		}
		if err := g.in.AddAction(a.Name, opts...); err != nil {
			return fmt.Errorf("configuring input: %w", err)
		}
	}

	if err := g.ensureAction(entity.ActionMoveLeft, input.WithKeys("a", "left")); err != nil {
		return err
	}
	if err := g.ensureAction(entity.ActionMoveRight, input.WithKeys("d", "right")); err != nil {
		return err
	}
	if err := g.ensureAction(entity.ActionJump,
		input.WithKeys("space", "w", "up"), input.WithButtons("a"), input.PressMode()); err != nil {
		return err
	}
	if err := g.ensureAction(actionSlowTime,
		input.WithKeys("tab"), input.WithButtons("left bumper")); err != nil {
		return err
	}
	return g.ensureAction(actionCopyDiagnostics, input.WithKeys("f12"), input.PressMode())
}

func (g *Game) ensureAction(name string, opts ...input.Option) error {
	for _, have := range g.in.ActionNames() {
		if have == name {
			return nil
		}
	}
	return g.in.AddAction(name, opts...)
}

// buildWorld populates the arena: border walls, a platform, the player
// and the two demo movers.
func (g *Game) buildWorld() {
	w := float64(g.cfg.Window.Width)
	h := float64(g.cfg.Window.Height)
	const t = 20 // wall thickness

	g.world.AddEntity(entity.NewWall(0, h-t, w, t), true)
	g.world.AddEntity(entity.NewWall(0, 0, w, t), true)
	g.world.AddEntity(entity.NewWall(0, 0, t, h), true)
	g.world.AddEntity(entity.NewWall(w-t, 0, t, h), true)
	g.world.AddEntity(entity.NewWall(w/2+100, h-180, 200, t), true)

	g.player = entity.NewPlayer(w/2, h/2, g.world, g.in, g.pad)
	g.world.AddEntity(g.player, true)

	g.world.AddEntity(entity.NewBouncer(w/2, 80), true)
	g.world.AddEntity(entity.NewRawBouncer(w-120, h/2), true)
}

func (g *Game) Update() error {
	g.tick++

	g.evbuf = g.events.Poll(g.evbuf[:0])
	for _, ev := range g.evbuf {
		g.pads.Dispatch(ev)
	}

	g.in.Update(g.dt)

	if g.in.Active(actionSlowTime) {
		g.world.TimeScale = slowTimeScale
	} else {
		g.world.TimeScale = 1
	}

	for i := range g.indicators {
		g.indicators[i].lit = g.in.Active(g.indicators[i].action)
	}

	g.world.Update()
	g.handleDiagnostics()
	return nil
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// World exposes the entity engine, for the headless runner.
func (g *Game) World() *engine.Engine { return g.world }

// Input exposes the action registry, for the headless runner.
func (g *Game) Input() *input.Input { return g.in }

// Player returns the controllable player entity.
func (g *Game) Player() *entity.Player { return g.player }
