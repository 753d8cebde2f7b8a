package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/herorun/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBounds
	collisionTypeHazard
	collisionTypeGoal
	collisionTypeBody
	collisionTypeGroundSensor
)

// Overlap causes.
const (
	CauseSpike = "spike"
	CauseGoal  = "goal"
)

// Overlap reports a body starting to touch a spike or the goal.
type Overlap struct {
	Body  *Body
	Cause string
}

// World owns the Chipmunk space, the level's static shapes and every dynamic
// body. Coordinates are in pixels with y growing downward.
type World struct {
	level *levels.Level
	space *cp.Space

	bodies   []*Body
	byShape  map[*cp.Shape]*Body
	overlaps []Overlap
}

// NewWorld builds the static geometry for level.
func NewWorld(level *levels.Level) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: level.Gravity})

	w := &World{
		level:   level,
		space:   space,
		byShape: make(map[*cp.Shape]*Body),
	}
	w.buildStaticShapes()
	w.setupHandlers()
	return w
}

func (w *World) Space() *cp.Space { return w.space }

func (w *World) Level() *levels.Level { return w.level }

// Bodies returns the live bodies in the order they were added.
func (w *World) Bodies() []*Body { return w.bodies }

// Step advances the simulation by dt seconds and refreshes floor contact.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.touching = false
	}
	w.space.Step(dt)
	for _, b := range w.bodies {
		b.onFloor = b.touching
		if b.onFloor {
			b.settle()
		}
	}
}

// Overlaps returns the overlap reports gathered since the last call.
func (w *World) Overlaps() []Overlap {
	out := w.overlaps
	w.overlaps = nil
	return out
}

func (w *World) buildStaticShapes() {
	lvl := w.level
	size := float64(lvl.TileSize)
	processed := make([]bool, lvl.Width*lvl.Height)

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			idx := y*lvl.Width + x
			if processed[idx] {
				continue
			}
			processed[idx] = true

			x0 := float64(x) * size
			y0 := float64(y) * size

			switch lvl.Tiles[idx] {
			case levels.TileEmpty:
				continue
			case levels.TileSpike:
				verts := []cp.Vector{
					{X: x0, Y: y0 + size},
					{X: x0 + size/2.0, Y: y0},
					{X: x0 + size, Y: y0 + size},
				}
				shape := cp.NewPolyShapeRaw(w.space.StaticBody, 3, verts, 0)
				shape.SetSensor(true)
				shape.SetCollisionType(collisionTypeHazard)
				w.space.AddShape(shape)
				continue
			case levels.TileGoal:
				shape := cp.NewBox2(w.space.StaticBody, cp.BB{L: x0, B: y0, R: x0 + size, T: y0 + size}, 0)
				shape.SetSensor(true)
				shape.SetCollisionType(collisionTypeGoal)
				w.space.AddShape(shape)
				continue
			}

			// Grow the solid run right, then down, into one box.
			tw := 1
			for x+tw < lvl.Width {
				idx2 := y*lvl.Width + x + tw
				if processed[idx2] || lvl.Tiles[idx2] != levels.TileSolid {
					break
				}
				tw++
			}
			th := 1
		heightLoop:
			for y+th < lvl.Height {
				for xi := x; xi < x+tw; xi++ {
					idx2 := (y+th)*lvl.Width + xi
					if processed[idx2] || lvl.Tiles[idx2] != levels.TileSolid {
						break heightLoop
					}
				}
				th++
			}

			bb := cp.BB{L: x0, B: y0, R: x0 + float64(tw)*size, T: y0 + float64(th)*size}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetFriction(0.8)
			shape.SetCollisionType(collisionTypeSolid)
			w.space.AddShape(shape)

			for yy := y; yy < y+th; yy++ {
				for xx := x; xx < x+tw; xx++ {
					processed[yy*lvl.Width+xx] = true
				}
			}
		}
	}

	// Left, right and bottom only: the sky is open.
	worldW, worldH := lvl.PixelSize()
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeBounds)
		w.space.AddShape(shape)
	}
}

func (w *World) bodyOf(arb *cp.Arbiter) *Body {
	a, b := arb.Shapes()
	if body, ok := w.byShape[a]; ok {
		return body
	}
	return w.byShape[b]
}

func (w *World) setupHandlers() {
	bounds := w.space.NewCollisionHandler(collisionTypeBody, collisionTypeBounds)
	bounds.UserData = w
	bounds.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		body := userData.(*World).bodyOf(arb)
		return body == nil || body.bounded
	}

	ground := w.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	ground.UserData = w
	ground.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if body := userData.(*World).bodyOf(arb); body != nil {
			body.touching = true
		}
		return true
	}

	groundBounds := w.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeBounds)
	groundBounds.UserData = w
	groundBounds.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if body := userData.(*World).bodyOf(arb); body != nil && body.bounded {
			body.touching = true
		}
		return true
	}

	w.overlapHandler(collisionTypeHazard, CauseSpike)
	w.overlapHandler(collisionTypeGoal, CauseGoal)
}

func (w *World) overlapHandler(kind cp.CollisionType, cause string) {
	h := w.space.NewCollisionHandler(collisionTypeBody, kind)
	h.UserData = w
	h.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*World)
		if body := world.bodyOf(arb); body != nil {
			world.overlaps = append(world.overlaps, Overlap{Body: body, Cause: cause})
		}
		return true
	}
}
