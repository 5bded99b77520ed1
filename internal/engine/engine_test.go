package engine

import (
	"image/color"
	"testing"
	"time"
)

type stubClock struct {
	d time.Duration
}

func (c *stubClock) Delta() time.Duration { return c.d }

type nullSurface struct{}

func (nullSurface) FillRect(x, y, w, h float64, c color.Color)  {}
func (nullSurface) FillCircle(cx, cy, r float64, c color.Color) {}

// probe records everything the engine does to it.
type probe struct {
	Base
	name      string
	renderLog *[]string
	updates   []float64
	added     int
	removed   int
	onUpdate  func(dt float64)
}

func (p *probe) Update(dt float64) {
	p.updates = append(p.updates, dt)
	if p.onUpdate != nil {
		p.onUpdate(dt)
	}
}

func (p *probe) Render(dst Surface) {
	if p.renderLog != nil {
		*p.renderLog = append(*p.renderLog, p.name)
	}
}

func (p *probe) OnAdd() { p.added++ }

func (p *probe) OnRemove() { p.removed++ }

func newEngine(step time.Duration) *Engine {
	e := &Engine{}
	e.Init(&stubClock{d: step}, nullSurface{})
	return e
}

// --- Lifecycle ---

func TestEngine_PanicsBeforeInit(t *testing.T) {
	ops := map[string]func(e *Engine){
		"Update":    func(e *Engine) { e.Update() },
		"Render":    func(e *Engine) { e.Render() },
		"AddEntity": func(e *Engine) { e.AddEntity(&probe{}, true) },
		"Entities":  func(e *Engine) { e.Entities() },
		"RemoveAll": func(e *Engine) { e.RemoveAll(true) },
	}
	for name, op := range ops {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s before Init should panic", name)
				}
			}()
			op(&Engine{})
		}()
	}
}

func TestEngine_DoubleInitPanics(t *testing.T) {
	e := newEngine(time.Second / 60)
	defer func() {
		if recover() == nil {
			t.Fatal("second Init should panic")
		}
	}()
	e.Init(&stubClock{}, nullSurface{})
}

func TestEngine_AddEntityReturnsEntityAndRunsHook(t *testing.T) {
	e := newEngine(time.Second / 60)
	p := &probe{name: "p"}
	if got := e.AddEntity(p, true); got != Entity(p) {
		t.Fatal("AddEntity should hand the entity back")
	}
	if p.added != 1 {
		t.Fatalf("OnAdd ran %d times, expected 1", p.added)
	}

	quiet := &probe{name: "quiet"}
	e.AddEntity(quiet, false)
	if quiet.added != 0 {
		t.Fatal("allowSetup=false must suppress OnAdd")
	}
}

// --- Dispatch order ---

func TestEngine_RenderLayerOrder(t *testing.T) {
	e := newEngine(time.Second / 60)
	var log []string
	e.AddEntity(&probe{Base: Base{Layer: 0}, name: "mid", renderLog: &log}, true)
	e.AddEntity(&probe{Base: Base{Layer: -5}, name: "floor", renderLog: &log}, true)
	e.AddEntity(&probe{Base: Base{Layer: 5}, name: "top", renderLog: &log}, true)

	e.Render()
	want := []string{"floor", "mid", "top"}
	if len(log) != len(want) {
		t.Fatalf("render log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("render order = %v, expected %v", log, want)
		}
	}
}

func TestEngine_RenderInsertionOrderWithinLayer(t *testing.T) {
	e := newEngine(time.Second / 60)
	var log []string
	e.AddEntity(&probe{name: "first", renderLog: &log}, true)
	e.AddEntity(&probe{name: "second", renderLog: &log}, true)

	e.Render()
	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Fatalf("same-layer render order = %v", log)
	}
}

func TestEngine_UpdateIsInsertionOrder(t *testing.T) {
	e := newEngine(100 * time.Millisecond)
	var order []string
	a := &probe{name: "a"}
	a.onUpdate = func(float64) { order = append(order, "a") }
	b := &probe{name: "b"}
	b.onUpdate = func(float64) { order = append(order, "b") }
	e.AddEntity(a, true)
	e.AddEntity(b, true)

	e.Update()
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("update order = %v", order)
	}
}

// --- Time scaling ---

func TestEngine_TimeScaleAndRawDelta(t *testing.T) {
	e := newEngine(100 * time.Millisecond)
	e.TimeScale = 0.5

	scaled := &probe{name: "scaled"}
	raw := &probe{Base: Base{Tags: []Tag{TagRawDelta}}, name: "raw"}
	e.AddEntity(scaled, true)
	e.AddEntity(raw, true)

	e.Update()
	if dt := scaled.updates[0]; dt != 0.05 {
		t.Fatalf("scaled entity got dt=%v, expected 0.05", dt)
	}
	if dt := raw.updates[0]; dt != 0.1 {
		t.Fatalf("raw-delta entity got dt=%v, expected 0.1", dt)
	}
	if e.DeltaTime() != 0.05 || e.DeltaTimeRaw() != 0.1 {
		t.Fatalf("DeltaTime=%v DeltaTimeRaw=%v", e.DeltaTime(), e.DeltaTimeRaw())
	}
}

// --- Removal ---

func TestEngine_SelfRemovalPurgesAfterSweep(t *testing.T) {
	e := newEngine(time.Second / 60)
	var log []string
	first := &probe{name: "first", renderLog: &log}
	quitter := &probe{name: "quitter", renderLog: &log}
	quitter.onUpdate = func(float64) { quitter.Remove() }
	last := &probe{name: "last", renderLog: &log}
	e.AddEntity(first, true)
	e.AddEntity(quitter, true)
	e.AddEntity(last, true)

	e.Update()
	// The frame the mark happens: every entity still got its update.
	for _, p := range []*probe{first, quitter, last} {
		if len(p.updates) != 1 {
			t.Fatalf("%s updated %d times in the marking frame", p.name, len(p.updates))
		}
	}
	if quitter.removed != 1 {
		t.Fatalf("OnRemove ran %d times, expected 1", quitter.removed)
	}
	if e.Len() != 2 {
		t.Fatalf("engine owns %d entities, expected 2", e.Len())
	}

	// Next frame: the purged entity neither updates nor renders.
	e.Update()
	e.Render()
	if len(quitter.updates) != 1 {
		t.Fatal("purged entity must not update again")
	}
	for _, name := range log {
		if name == "quitter" {
			t.Fatal("purged entity must not render")
		}
	}
}

func TestEngine_MarkedEntitySkippedWithinSweep(t *testing.T) {
	e := newEngine(time.Second / 60)
	var victim *probe
	killer := &probe{name: "killer"}
	killer.onUpdate = func(float64) { victim.Remove() }
	victim = &probe{name: "victim"}
	e.AddEntity(killer, true)
	e.AddEntity(victim, true)

	e.Update()
	if len(victim.updates) != 0 {
		t.Fatal("an entity marked earlier in the sweep must be skipped")
	}
	if victim.removed != 1 {
		t.Fatal("the skipped entity should still be purged with its hook")
	}
}

func TestEngine_AddDuringUpdateRunsSameFrame(t *testing.T) {
	e := newEngine(time.Second / 60)
	child := &probe{name: "child"}
	parent := &probe{name: "parent"}
	spawned := false
	parent.onUpdate = func(float64) {
		if !spawned {
			spawned = true
			e.AddEntity(child, true)
		}
	}
	e.AddEntity(parent, true)

	e.Update()
	if len(child.updates) != 1 {
		t.Fatalf("entity added mid-sweep updated %d times, expected 1", len(child.updates))
	}
}

func TestEngine_RemoveIfSilent(t *testing.T) {
	e := newEngine(time.Second / 60)
	p := &probe{name: "p"}
	e.AddEntity(p, true)

	e.RemoveIf(func(Entity) bool { return true }, true)
	if p.removed != 0 {
		t.Fatal("silent removal must not fire OnRemove")
	}
	if e.Len() != 0 {
		t.Fatal("entity should be gone")
	}
}

func TestEngine_RemoveTagged(t *testing.T) {
	e := newEngine(time.Second / 60)
	const tagEnemy Tag = "enemy"
	keep := &probe{name: "keep"}
	foe1 := &probe{Base: Base{Tags: []Tag{tagEnemy}}, name: "foe1"}
	foe2 := &probe{Base: Base{Tags: []Tag{tagEnemy}}, name: "foe2"}
	e.AddEntity(keep, true)
	e.AddEntity(foe1, true)
	e.AddEntity(foe2, true)

	if got := len(e.Tagged(tagEnemy)); got != 2 {
		t.Fatalf("Tagged found %d entities, expected 2", got)
	}

	e.RemoveTagged(tagEnemy, false)
	if e.Len() != 1 {
		t.Fatalf("engine owns %d entities, expected 1", e.Len())
	}
	if foe1.removed != 1 || foe2.removed != 1 {
		t.Fatal("tagged entities should get their OnRemove hooks")
	}
	if keep.removed != 0 {
		t.Fatal("untagged entity must survive")
	}
}

func TestEngine_RemoveAllResetsLayers(t *testing.T) {
	e := newEngine(time.Second / 60)
	var log []string
	e.AddEntity(&probe{Base: Base{Layer: 2}, name: "old", renderLog: &log}, true)
	e.RemoveAll(true)

	e.Render()
	if len(log) != 0 {
		t.Fatalf("render after RemoveAll drew %v", log)
	}

	e.AddEntity(&probe{Base: Base{Layer: 3}, name: "new", renderLog: &log}, true)
	e.Render()
	if len(log) != 1 || log[0] != "new" {
		t.Fatalf("render after re-add = %v", log)
	}
}

// --- Queries ---

func TestEngine_QueriesReturnCopies(t *testing.T) {
	e := newEngine(time.Second / 60)
	e.AddEntity(&probe{name: "p"}, true)

	all := e.Entities()
	all[0] = nil
	if e.Entities()[0] == nil {
		t.Fatal("mutating a query result must not reach engine state")
	}

	named := e.EntitiesIf(func(ent Entity) bool { return true })
	if len(named) != 1 {
		t.Fatalf("EntitiesIf returned %d entities", len(named))
	}
}
