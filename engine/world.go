package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/corsair/core"
)

type slot struct {
	gen    uint32
	entity *Entity
}

// World is the entity arena
// Handles carry a generation so stale references fail to resolve after reuse.
// Spawns and kills issued during a pass are staged and applied by Flush,
// so iteration never skips or revisits an element.
type World struct {
	slots []slot
	free  []uint32

	// Owning lists per kind, insertion ordered
	lists   [core.KindCount][]*Entity
	pending []*Entity
	dead    []*Entity
	live    [core.KindCount]int

	clock  core.TimeSource
	player core.Entity
}

// NewWorld creates an empty arena whose timers read clock
func NewWorld(clock core.TimeSource) *World {
	return &World{clock: clock}
}

// Clock returns the time source entity timers are bound to
func (w *World) Clock() core.TimeSource {
	return w.clock
}

// Spawn allocates an entity of kind at pos
// The entity resolves through Get immediately but joins iteration on the next Flush
func (w *World) Spawn(kind core.Kind, pos mgl64.Vec3) *Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[idx]
	s.gen++
	e := &Entity{
		Handle:   core.MakeEntity(idx, s.gen),
		Kind:     kind,
		Position: pos,
		Scale:    1,
	}
	s.entity = e

	w.pending = append(w.pending, e)
	w.live[kind]++
	if kind == core.KindPlayer {
		w.player = e.Handle
	}
	return e
}

// Get resolves a handle to a live entity
func (w *World) Get(h core.Entity) (*Entity, bool) {
	if h == core.NoEntity {
		return nil, false
	}
	idx := h.Index()
	if int(idx) >= len(w.slots) {
		return nil, false
	}
	s := w.slots[idx]
	if s.gen != h.Generation() || s.entity == nil || s.entity.Dead {
		return nil, false
	}
	return s.entity, true
}

// Alive reports whether h still resolves
func (w *World) Alive(h core.Entity) bool {
	_, ok := w.Get(h)
	return ok
}

// Kill marks the entity dead; repeated kills are no-ops
// Returns true only for the call that actually killed it
func (w *World) Kill(h core.Entity) bool {
	e, ok := w.Get(h)
	if !ok {
		return false
	}
	e.Dead = true
	w.dead = append(w.dead, e)
	w.live[e.Kind]--
	if h == w.player {
		w.player = core.NoEntity
	}
	return true
}

// Each visits live entities of kind in insertion order
// Entities spawned during the walk are not visited; killed ones are skipped
func (w *World) Each(kind core.Kind, fn func(e *Entity) bool) {
	list := w.lists[kind]
	for _, e := range list {
		if e.Dead {
			continue
		}
		if !fn(e) {
			return
		}
	}
}

// Count returns the number of live entities of kind, including staged spawns
func (w *World) Count(kind core.Kind) int {
	return w.live[kind]
}

// Player returns the singleton player while it is alive
func (w *World) Player() (*Entity, bool) {
	return w.Get(w.player)
}

// Flush applies staged kills then staged spawns
func (w *World) Flush() {
	if len(w.dead) > 0 {
		var touched [core.KindCount]bool
		for _, e := range w.dead {
			touched[e.Kind] = true
			idx := e.Handle.Index()
			if w.slots[idx].entity == e {
				w.slots[idx].entity = nil
				w.free = append(w.free, idx)
			}
		}
		for k := range touched {
			if !touched[k] {
				continue
			}
			list := w.lists[k]
			kept := list[:0]
			for _, e := range list {
				if !e.Dead {
					kept = append(kept, e)
				}
			}
			clear(list[len(kept):])
			w.lists[k] = kept
		}
		clear(w.dead)
		w.dead = w.dead[:0]
	}

	if len(w.pending) > 0 {
		for _, e := range w.pending {
			if !e.Dead {
				w.lists[e.Kind] = append(w.lists[e.Kind], e)
			}
		}
		clear(w.pending)
		w.pending = w.pending[:0]
	}
}

// Snapshot returns the flushed live entities of kind
// The slice is a copy; the pointed-to records are owned by the arena
func (w *World) Snapshot(kind core.Kind) []*Entity {
	out := make([]*Entity, 0, len(w.lists[kind]))
	w.Each(kind, func(e *Entity) bool {
		out = append(out, e)
		return true
	})
	return out
}
