package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
)

// HeroSystem runs one controller tick per frame.
type HeroSystem struct {
	log logrus.FieldLogger
}

func NewHeroSystem(log logrus.FieldLogger) *HeroSystem {
	return &HeroSystem{log: log}
}

func (h *HeroSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ControllerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller, input *component.Input) {
		if ctrl.Lifecycle == nil {
			return
		}
		tick := ctrl.Lifecycle.Tick(input.Controls)
		ctrl.Last = tick
		if tick.Movement == "" && tick.Animation == "" {
			return
		}
		h.log.WithFields(logrus.Fields{
			"entity":    e.String(),
			"movement":  tick.Movement,
			"animation": tick.Animation,
		}).Debug("hero transition")
	})
}
