package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
	"github.com/milk9111/herorun/hero"
	"github.com/milk9111/herorun/physics"
)

// HazardSystem turns spike and goal overlaps into deaths.
type HazardSystem struct {
	log logrus.FieldLogger
}

func NewHazardSystem(log logrus.FieldLogger) *HazardSystem {
	return &HazardSystem{log: log}
}

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var overlaps []physics.Overlap
	ecs.ForEach(w, component.PhysicsWorldComponent.Kind(), func(_ ecs.Entity, pw *component.PhysicsWorld) {
		if pw.World != nil {
			overlaps = append(overlaps, pw.World.Overlaps()...)
		}
	})
	if len(overlaps) == 0 {
		return
	}

	ecs.ForEach(w, component.ControllerComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller) {
		if ctrl.Lifecycle == nil || ctrl.Lifecycle.Hero() == nil {
			return
		}
		body := ctrl.Lifecycle.Hero().Body()
		for _, o := range overlaps {
			// Reports from an earlier body can still be queued.
			if hero.Body(o.Body) != body {
				continue
			}
			if !ctrl.Lifecycle.Kill(o.Cause) {
				continue
			}
			if o.Cause == physics.CauseGoal {
				ctrl.Goals++
				w.Events().Push(ecs.Event{Type: ecs.EventGoal, Entity: e})
			}
		}
	})
}
