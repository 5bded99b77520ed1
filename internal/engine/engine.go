// Package engine owns the live entity collection and drives the
// per-frame update and render dispatch: update order is insertion
// order, render order is display-layer order. Removal is deferred to
// the end of the update sweep so mutation never corrupts iteration.
package engine

import "sort"

// Engine is the entity world. The zero value is uninitialized: call
// Init exactly once before anything else; every other method panics
// until then.
type Engine struct {
	clock  Clock
	target Surface

	entities []Entity             // update dispatch order = insertion order
	layers   map[float64][]Entity // render buckets keyed by exact layer value
	order    []float64            // distinct layer values, ascending

	// TimeScale multiplies the delta handed to entities that do not
	// carry TagRawDelta. Keep it above zero.
	TimeScale float64

	rawDelta    float64 // seconds elapsed in the current frame
	initialized bool
}

// Init wires the frame clock and render target. It must run exactly
// once; a second call panics.
func (e *Engine) Init(clock Clock, target Surface) {
	if e.initialized {
		panic("engine: already initialized")
	}
	if clock == nil || target == nil {
		panic("engine: Init requires a clock and a render target")
	}
	e.clock = clock
	e.target = target
	e.layers = make(map[float64][]Entity)
	e.TimeScale = 1
	e.initialized = true
}

func (e *Engine) mustInit() {
	if !e.initialized {
		panic("engine: not initialized")
	}
}

// AddEntity hands ent to the engine, appending it to the update order
// and to the render bucket for its current layer. The OnAdd hook runs
// unless allowSetup is false. Returns ent.
func (e *Engine) AddEntity(ent Entity, allowSetup bool) Entity {
	e.mustInit()
	e.entities = append(e.entities, ent)

	layer := ent.base().Layer
	bucket, ok := e.layers[layer]
	if !ok {
		e.order = append(e.order, layer)
		sort.Float64s(e.order)
	}
	e.layers[layer] = append(bucket, ent)

	if allowSetup {
		ent.OnAdd()
	}
	return ent
}

// Update advances one frame: read the clock, dispatch Update to every
// live entity, then purge everything marked for removal. Entities
// added during the sweep still update this frame; entities marked
// during it are skipped on dispatch and purged at the end, so removal
// never disturbs the iteration in progress.
func (e *Engine) Update() {
	e.mustInit()
	e.rawDelta = e.clock.Delta().Seconds()
	scaled := e.rawDelta * e.TimeScale

	for i := 0; i < len(e.entities); i++ {
		ent := e.entities[i]
		b := ent.base()
		if b.marked {
			continue
		}
		if b.HasTag(TagRawDelta) {
			ent.Update(e.rawDelta)
		} else {
			ent.Update(scaled)
		}
	}

	e.RemoveIf(func(ent Entity) bool { return ent.base().marked }, false)
}

// Render draws every entity onto the configured target, layers
// ascending, insertion order within a layer.
func (e *Engine) Render() {
	e.mustInit()
	for _, layer := range e.order {
		for _, ent := range e.layers[layer] {
			ent.Render(e.target)
		}
	}
}

// RemoveIf removes every entity matching pred from the update order
// and all render buckets. OnRemove hooks fire after the removal has
// been committed, unless silent.
func (e *Engine) RemoveIf(pred func(Entity) bool, silent bool) {
	e.mustInit()

	var removed []Entity
	gone := make(map[Entity]struct{})
	kept := make([]Entity, 0, len(e.entities))
	for _, ent := range e.entities {
		if pred(ent) {
			removed = append(removed, ent)
			gone[ent] = struct{}{}
			continue
		}
		kept = append(kept, ent)
	}
	if len(removed) == 0 {
		return
	}
	e.entities = kept

	for layer, bucket := range e.layers {
		filtered := bucket[:0]
		for _, ent := range bucket {
			if _, out := gone[ent]; !out {
				filtered = append(filtered, ent)
			}
		}
		e.layers[layer] = filtered
	}

	if !silent {
		for _, ent := range removed {
			ent.OnRemove()
		}
	}
}

// RemoveAll empties the world and clears the layer bookkeeping that
// RemoveIf leaves behind. OnRemove hooks fire unless silent.
func (e *Engine) RemoveAll(silent bool) {
	e.mustInit()
	e.RemoveIf(func(Entity) bool { return true }, silent)
	e.layers = make(map[float64][]Entity)
	e.order = nil
}

// RemoveTagged removes every entity carrying tag.
func (e *Engine) RemoveTagged(tag Tag, silent bool) {
	e.RemoveIf(func(ent Entity) bool { return ent.base().HasTag(tag) }, silent)
}

// Entities returns a copy of the update-ordered entity list.
func (e *Engine) Entities() []Entity {
	e.mustInit()
	return append([]Entity(nil), e.entities...)
}

// EntitiesIf returns every entity matching pred, in update order.
func (e *Engine) EntitiesIf(pred func(Entity) bool) []Entity {
	e.mustInit()
	var out []Entity
	for _, ent := range e.entities {
		if pred(ent) {
			out = append(out, ent)
		}
	}
	return out
}

// Tagged returns every entity carrying tag, in update order.
func (e *Engine) Tagged(tag Tag) []Entity {
	return e.EntitiesIf(func(ent Entity) bool { return ent.base().HasTag(tag) })
}

// Len reports how many entities the engine currently owns.
func (e *Engine) Len() int {
	e.mustInit()
	return len(e.entities)
}

// DeltaTime returns the current frame's delta scaled by TimeScale.
func (e *Engine) DeltaTime() float64 {
	e.mustInit()
	return e.rawDelta * e.TimeScale
}

// DeltaTimeRaw returns the current frame's unscaled delta.
func (e *Engine) DeltaTimeRaw() float64 {
	e.mustInit()
	return e.rawDelta
}
