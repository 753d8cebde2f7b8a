package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// BodySpec describes a dynamic box. X and Y are the box centre.
type BodySpec struct {
	X, Y          float64
	Width, Height float64

	// DragX slows the body horizontally while no acceleration is applied.
	DragX float64
	// Zero leaves that axis unclamped.
	MaxVelocityX float64
	MaxVelocityY float64
}

// Body is a dynamic box with arcade-style steering on top of Chipmunk:
// constant acceleration, linear drag that stops at exactly zero, and a
// per-axis speed cap.
type Body struct {
	world  *World
	spec   BodySpec
	body   *cp.Body
	shape  *cp.Shape
	ground *cp.Shape

	accel    cp.Vector
	bounded  bool
	detached bool
	touching bool
	onFloor  bool
}

// AddBody adds a dynamic body that collides with the level and the world
// bounds.
func (w *World) AddBody(spec BodySpec) *Body {
	b := &Body{world: w, spec: spec, bounded: true}

	b.body = cp.NewBody(1, math.Inf(1))
	b.body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	b.body.SetVelocityUpdateFunc(b.updateVelocity)

	b.shape = cp.NewBox(b.body, spec.Width, spec.Height, 0)
	b.shape.SetFriction(0)
	b.shape.SetElasticity(0)
	b.shape.SetCollisionType(collisionTypeBody)

	gw := spec.Width * 0.9
	b.ground = cp.NewBox2(b.body, cp.BB{
		L: -gw / 2,
		B: spec.Height / 2,
		R: gw / 2,
		T: spec.Height/2 + 2,
	}, 0)
	b.ground.SetSensor(true)
	b.ground.SetCollisionType(collisionTypeGroundSensor)

	w.space.AddBody(b.body)
	w.space.AddShape(b.shape)
	w.space.AddShape(b.ground)
	w.byShape[b.shape] = b
	w.byShape[b.ground] = b
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody takes b and its shapes out of the world.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	b.DetachColliders()
	w.space.RemoveBody(b.body)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
}

func (b *Body) updateVelocity(body *cp.Body, gravity cp.Vector, damping, dt float64) {
	cp.BodyUpdateVelocity(body, gravity.Add(b.accel), damping, dt)
	v := body.Velocity()
	if b.accel.X == 0 {
		v.X = applyDrag(v.X, b.spec.DragX*dt)
	}
	v.X = clampSpeed(v.X, b.spec.MaxVelocityX)
	v.Y = clampSpeed(v.Y, b.spec.MaxVelocityY)
	body.SetVelocity(v.X, v.Y)
}

// applyDrag moves v toward zero by drag and snaps to exactly zero instead of
// crossing it.
func applyDrag(v, drag float64) float64 {
	switch {
	case drag <= 0:
		return v
	case v-drag > 0:
		return v - drag
	case v+drag < 0:
		return v + drag
	default:
		return 0
	}
}

// restingSpeed is the vertical speed below which a grounded body counts as
// resting.
const restingSpeed = 5

// settle zeroes the solver's leftover vertical jitter on a grounded body so
// callers see vy == 0 at rest.
func (b *Body) settle() {
	v := b.body.Velocity()
	if math.Abs(v.Y) < restingSpeed {
		b.body.SetVelocity(v.X, 0)
	}
}

func clampSpeed(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}

func (b *Body) Velocity() (float64, float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *Body) SetVelocityX(vx float64) { b.body.SetVelocity(vx, b.body.Velocity().Y) }

func (b *Body) SetVelocityY(vy float64) { b.body.SetVelocity(b.body.Velocity().X, vy) }

func (b *Body) SetVelocity(vx, vy float64) { b.body.SetVelocity(vx, vy) }

func (b *Body) Acceleration() (float64, float64) { return b.accel.X, b.accel.Y }

func (b *Body) SetAccelerationX(ax float64) { b.accel.X = ax }

func (b *Body) SetAcceleration(ax, ay float64) { b.accel = cp.Vector{X: ax, Y: ay} }

// OnFloor reports ground contact during the last Step.
func (b *Body) OnFloor() bool { return b.onFloor }

func (b *Body) SetCollideWorldBounds(on bool) { b.bounded = on }

func (b *Body) CollidesWithWorldBounds() bool { return b.bounded }

// DetachColliders removes the body's shapes; the body keeps falling under
// gravity but touches nothing.
func (b *Body) DetachColliders() {
	if b.detached || b.world == nil {
		return
	}
	b.detached = true
	b.onFloor = false
	b.world.space.RemoveShape(b.shape)
	b.world.space.RemoveShape(b.ground)
	delete(b.world.byShape, b.shape)
	delete(b.world.byShape, b.ground)
}

func (b *Body) Detached() bool { return b.detached }

func (b *Body) Position() (x, y float64) {
	p := b.body.Position()
	return p.X, p.Y
}

func (b *Body) SetPosition(x, y float64) { b.body.SetPosition(cp.Vector{X: x, Y: y}) }

func (b *Body) Size() (w, h float64) { return b.spec.Width, b.spec.Height }

func (b *Body) Top() float64 {
	return b.body.Position().Y - b.spec.Height/2
}

// Bounds returns the box's top-left corner and size.
func (b *Body) Bounds() (x, y, w, h float64) {
	p := b.body.Position()
	return p.X - b.spec.Width/2, p.Y - b.spec.Height/2, b.spec.Width, b.spec.Height
}
