package system

import (
	"github.com/milk9111/herorun/ecs"
)

type AudioSystem struct {
	sink Sink
}

func NewAudioSystem(sink Sink) *AudioSystem {
	return &AudioSystem{sink: sink}
}

// Update plays one sound per hero event queued this frame.
func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil || a.sink == nil {
		return
	}
	for _, evt := range w.Events().Peek() {
		switch evt.Type {
		case ecs.EventJumped, ecs.EventDoubleJumped, ecs.EventDied:
			a.sink.Play(string(evt.Type))
		}
	}
}
