package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
	"github.com/milk9111/herorun/levels"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 33, A: 255}
	solidColor      = colornames.Slategray
	spikeColor      = colornames.Crimson
	goalColor       = colornames.Gold
)

// Draw renders the level tiles, every hero box and, in debug mode, the
// controller state.
func Draw(screen *ebiten.Image, w *ecs.World, debug bool) {
	if w == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)
	camX, camY, zoom := cameraTransform(w)

	if _, pw, ok := ecs.First(w, component.PhysicsWorldComponent.Kind()); ok && pw.World != nil {
		drawLevel(screen, pw.World.Level(), camX, camY, zoom)
	}

	ecs.ForEach3(w, component.HeroTagComponent.Kind(), component.TransformComponent.Kind(), component.AnimationComponent.Kind(), func(_ ecs.Entity, _ *component.HeroTag, t *component.Transform, anim *component.Animation) {
		clr := color.Color(colornames.White)
		if def, ok := anim.Def(); ok && def.Color != nil {
			clr = def.Color
		}
		x := float32((t.X - camX) * zoom)
		y := float32((t.Y - camY) * zoom)
		wdt := float32(t.Width * zoom)
		hgt := float32(t.Height * zoom)
		vector.DrawFilledRect(screen, x, y, wdt, hgt, clr, false)
		if debug {
			vector.StrokeRect(screen, x, y, wdt, hgt, 1, colornames.Lightgrey, false)
		}
	})

	drawHUD(screen, w, debug)
}

func drawLevel(screen *ebiten.Image, level *levels.Level, camX, camY, zoom float64) {
	size := float64(level.TileSize)
	for ty := 0; ty < level.Height; ty++ {
		for tx := 0; tx < level.Width; tx++ {
			x := (float64(tx)*size - camX) * zoom
			y := (float64(ty)*size - camY) * zoom
			s := float32(size * zoom)
			switch level.Tile(tx, ty) {
			case levels.TileSolid:
				vector.DrawFilledRect(screen, float32(x), float32(y), s, s, solidColor, false)
			case levels.TileSpike:
				drawSpike(screen, float32(x), float32(y), s)
			case levels.TileGoal:
				vector.StrokeRect(screen, float32(x)+2, float32(y)+2, s-4, s-4, 2, goalColor, false)
			}
		}
	}
}

func drawSpike(screen *ebiten.Image, x, y, s float32) {
	vector.StrokeLine(screen, x, y+s, x+s/2, y, 2, spikeColor, true)
	vector.StrokeLine(screen, x+s/2, y, x+s, y+s, 2, spikeColor, true)
	vector.StrokeLine(screen, x, y+s, x+s, y+s, 2, spikeColor, true)
}

func drawHUD(screen *ebiten.Image, w *ecs.World, debug bool) {
	_, ctrl, ok := ecs.First(w, component.ControllerComponent.Kind())
	if !ok || ctrl.Stats == nil || ctrl.Lifecycle == nil {
		return
	}
	s := ctrl.Stats
	line := fmt.Sprintf("life %d  jumps %d  flips %d  deaths %d  goals %d",
		ctrl.Lifecycle.Lives(), s.Jumps, s.Flips, s.Deaths, ctrl.Goals)
	ebitenutil.DebugPrintAt(screen, line, 8, 4)

	h := ctrl.Lifecycle.Hero()
	if h == nil {
		return
	}
	if h.IsDead() {
		ebitenutil.DebugPrintAt(screen, "press R to respawn", 8, 20)
	}
	if !debug {
		return
	}
	vx, vy := h.Body().Velocity()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("move %s  anim %s  facing %d\nvx %.1f  vy %.1f  floor %t\nTPS %.0f",
		h.Movement().Current(), h.Animation().Current(), h.Facing(),
		vx, vy, h.Body().OnFloor(), ebiten.ActualTPS()), 8, 36)
}

func cameraTransform(w *ecs.World) (x, y, zoom float64) {
	_, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return 0, 0, 1
	}
	zoom = cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return cam.X, cam.Y, zoom
}
