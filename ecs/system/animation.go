package system

import (
	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
)

type AnimationSystem struct {
	dt float64
}

func NewAnimationSystem(dt float64) *AnimationSystem {
	return &AnimationSystem{dt: dt}
}

// Update advances frame timers. Non-looping clips hold their last frame.
func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil || a.dt <= 0 {
		return
	}
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(_ ecs.Entity, anim *component.Animation) {
		if !anim.Playing {
			return
		}
		def, ok := anim.Def()
		if !ok || def.FPS <= 0 || def.FrameCount <= 1 {
			return
		}
		frame := 1 / def.FPS
		anim.FrameTimer += a.dt
		for anim.FrameTimer >= frame {
			anim.FrameTimer -= frame
			anim.Frame++
			if anim.Frame < def.FrameCount {
				continue
			}
			if def.Loop {
				anim.Frame = 0
				continue
			}
			anim.Frame = def.FrameCount - 1
			anim.Playing = false
			return
		}
	})
}
