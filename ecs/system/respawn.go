package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
)

// RespawnSystem replaces a dead hero once its corpse has left the view.
type RespawnSystem struct {
	log logrus.FieldLogger
}

func NewRespawnSystem(log logrus.FieldLogger) *RespawnSystem {
	return &RespawnSystem{log: log}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ControllerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, ctrl *component.Controller, input *component.Input) {
		lc := ctrl.Lifecycle
		if lc == nil || !lc.ReadyToRespawn(input.Restart) {
			return
		}
		if err := lc.Respawn(); err != nil {
			s.log.WithError(err).Error("respawn failed")
			return
		}
		w.Events().Push(ecs.Event{Type: ecs.EventSpawned, Entity: e, Data: lc.Lives()})
	})
}
