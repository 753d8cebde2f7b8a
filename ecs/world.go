package ecs

import "github.com/milk9111/herorun/ecs/component"

// World owns entities, their components and the frame's event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components. It returns false if e
// was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	return w.entities.all()
}

// First returns the first live entity that has kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, id := range s.ids() {
		if e, ok := w.entityOf(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Query returns the live entities that have every kind, ordered by the first
// kind's storage.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	sets := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	var out []Entity
	for _, id := range intersect(sets) {
		if e, ok := w.entityOf(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

func (w *World) entityOf(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(w.entities.gen) || !w.entities.alive[id-1] {
		return 0, false
	}
	return makeEntity(id, w.entities.gen[id-1]), true
}
