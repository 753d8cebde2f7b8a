package system

import (
	"github.com/milk9111/herorun/common"
	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
)

type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update centres the camera on the hero while it is following, clamped to
// the level.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !ecs.IsAlive(w, cs.camEntity) {
		e, ok := w.First(component.CameraTagComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = e
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok || !cam.Following {
		return
	}

	target, ok := w.First(component.HeroTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	viewW, viewH := cam.Size()
	x := t.X + t.Width/2 - viewW/2
	y := t.Y + t.Height/2 - viewH/2
	if _, pw, ok := ecs.First(w, component.PhysicsWorldComponent.Kind()); ok && pw.World != nil {
		levelW, levelH := pw.World.Level().PixelSize()
		// A level smaller than the view pins it to 0.
		x = common.Clamp(x, 0, levelW-viewW)
		y = common.Clamp(y, 0, levelH-viewH)
	}

	if cam.Snap {
		cam.X, cam.Y = x, y
		cam.Snap = false
		return
	}
	// Smoothness is the share of the remaining distance kept each frame.
	cam.X = common.Lerp(x, cam.X, cam.Smoothness)
	cam.Y = common.Lerp(y, cam.Y, cam.Smoothness)
}
