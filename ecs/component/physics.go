package component

import "github.com/milk9111/herorun/physics"

// PhysicsBody links an entity to its body in the physics world.
type PhysicsBody struct {
	Body *physics.Body
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// PhysicsWorld is the singleton holding the level's physics space.
type PhysicsWorld struct {
	World *physics.World
}

var PhysicsWorldComponent = NewComponent[PhysicsWorld]()
