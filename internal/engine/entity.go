package engine

// Tag marks an entity with a type or capability for queries and bulk
// removal. Applications declare their own tags; the engine itself only
// knows TagRawDelta.
type Tag string

// TagRawDelta opts an entity out of time scaling: its Update always
// receives the unscaled frame delta.
const TagRawDelta Tag = "raw-delta-time"

// Entity is anything the engine can own: updated every frame, rendered
// by display layer, told when it joins and leaves the world. Concrete
// entities embed Base, which supplies no-op defaults for every hook
// and satisfies the unexported accessor.
type Entity interface {
	Update(dt float64)
	Render(dst Surface)
	OnAdd()
	OnRemove()

	base() *Base
}

// Base carries the engine-facing state every entity shares. Embed it
// in entity structs (and add them as pointers); set Layer and Tags at
// construction, before AddEntity.
type Base struct {
	// Layer orders rendering: higher layers draw later, on top of
	// lower ones. Read once at AddEntity and matched as an exact
	// float64 key.
	Layer float64
	// Tags mark type and capabilities.
	Tags []Tag

	marked bool // removal flag, honored at the end of the update sweep
}

func (b *Base) base() *Base { return b }

// Update does nothing; entities that move override it.
func (b *Base) Update(dt float64) {}

// Render does nothing; visible entities override it.
func (b *Base) Render(dst Surface) {}

// OnAdd runs right after the entity joins the engine.
func (b *Base) OnAdd() {}

// OnRemove runs as the entity leaves the engine.
func (b *Base) OnRemove() {}

// Remove marks the entity for purging at the end of the current update
// sweep. A marked entity stops receiving updates immediately.
func (b *Base) Remove() { b.marked = true }

// Removed reports whether Remove has been called.
func (b *Base) Removed() bool { return b.marked }

// HasTag reports whether the entity carries t.
func (b *Base) HasTag(t Tag) bool {
	for _, have := range b.Tags {
		if have == t {
			return true
		}
	}
	return false
}

// DisplayLayer returns the entity's render layer.
func (b *Base) DisplayLayer() float64 { return b.Layer }
