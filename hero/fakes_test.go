package hero

import "errors"

type fakeBody struct {
	vx, vy   float64
	ax, ay   float64
	onFloor  bool
	top      float64
	bounded  bool
	detached bool
}

func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) OnFloor() bool { return b.onFloor }
func (b *fakeBody) Top() float64 { return b.top }
func (b *fakeBody) SetVelocityX(vx float64) { b.vx = vx }
func (b *fakeBody) SetVelocityY(vy float64) { b.vy = vy }
func (b *fakeBody) SetVelocity(vx, vy float64) { b.vx, b.vy = vx, vy }
func (b *fakeBody) SetAccelerationX(ax float64) { b.ax = ax }
func (b *fakeBody) SetAcceleration(ax, ay float64) { b.ax, b.ay = ax, ay }
func (b *fakeBody) SetCollideWorldBounds(on bool) { b.bounded = on }
func (b *fakeBody) DetachColliders() { b.detached = true }

type fakeAnimator struct {
	clips []string
}

func (a *fakeAnimator) Play(clip string) { a.clips = append(a.clips, clip) }

func (a *fakeAnimator) last() string {
	if len(a.clips) == 0 {
		return ""
	}
	return a.clips[len(a.clips)-1]
}

type spawnCall struct {
	x, y float64
}

type fakeScene struct {
	viewBottom float64
	failSpawn  bool

	spawns    []spawnCall
	bodies    []*fakeBody
	destroyed []Rig
	following bool
}

var errSpawn = errors.New("spawn failed")

func (s *fakeScene) Spawn(x, y float64, _ Tuning) (Rig, error) {
	if s.failSpawn {
		return Rig{}, errSpawn
	}
	s.spawns = append(s.spawns, spawnCall{x, y})
	b := &fakeBody{onFloor: true, bounded: true, top: y - 40}
	s.bodies = append(s.bodies, b)
	return Rig{Body: b, Animator: &fakeAnimator{}}, nil
}

func (s *fakeScene) Destroy(r Rig) { s.destroyed = append(s.destroyed, r) }
func (s *fakeScene) Follow(Rig) { s.following = true }
func (s *fakeScene) StopFollow() { s.following = false }
func (s *fakeScene) ViewBottom() float64 { return s.viewBottom }

type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) { r.events = append(r.events, ev) }

func (r *recorder) count(ev Event) int {
	n := 0
	for _, e := range r.events {
		if e == ev {
			n++
		}
	}
	return n
}
