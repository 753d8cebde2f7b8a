package ecs

import "fmt"

// Entity is a handle packing a generation in the high 32 bits and an id in
// the low 32. A recycled id gets a new generation, so stale handles stop
// resolving.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String formats e as id.generation.
func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.id(), e.generation())
}

// Valid reports whether e could name an entity. It does not check liveness.
func (e Entity) Valid() bool {
	return e.id() != 0
}
