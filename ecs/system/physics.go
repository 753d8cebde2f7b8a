package system

import (
	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
)

type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem(dt float64) *PhysicsSystem {
	return &PhysicsSystem{dt: dt}
}

// Update steps every physics world and copies body bounds into transforms.
func (p *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || p.dt <= 0 {
		return
	}
	ecs.ForEach(w, component.PhysicsWorldComponent.Kind(), func(_ ecs.Entity, pw *component.PhysicsWorld) {
		if pw.World != nil {
			pw.World.Step(p.dt)
		}
	})
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		t.X, t.Y, t.Width, t.Height = pb.Body.Bounds()
	})
}
