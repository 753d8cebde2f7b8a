package hero

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/herorun/fsm"
)

func newTestHero(t *testing.T, ls ...Listener) (*Hero, *fakeBody, *fakeAnimator) {
	t.Helper()
	b := &fakeBody{onFloor: true}
	a := &fakeAnimator{}
	h, err := New(100, 200, Rig{Body: b, Animator: a}, Options{
		Tuning:    DefaultTuning(),
		Listeners: ls,
		Strict:    true,
	})
	require.NoError(t, err)
	return h, b, a
}

func TestNewStartsStandingIdle(t *testing.T) {
	h, _, a := newTestHero(t)

	assert.Equal(t, Standing, h.Movement().Current())
	assert.Equal(t, Idle, h.Animation().Current())
	assert.Equal(t, []string{"hero-idle"}, a.clips)
	assert.Equal(t, 1, h.Facing())
	x, y := h.Spawn()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 200.0, y)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(0, 0, Rig{}, Options{Tuning: DefaultTuning()})
	assert.Error(t, err)

	bad := DefaultTuning()
	bad.JumpImpulse = 0
	_, err = New(0, 0, Rig{Body: &fakeBody{}}, Options{Tuning: bad})
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestNewWithoutAnimator(t *testing.T) {
	h, err := New(0, 0, Rig{Body: &fakeBody{onFloor: true}}, Options{Tuning: DefaultTuning()})
	require.NoError(t, err)
	assert.NotPanics(t, func() { h.Update(Controls{JumpPressed: true}) })
	assert.Equal(t, AnimJumping, h.Animation().Current())
}

func TestRestingTickFiresNothing(t *testing.T) {
	rec := &recorder{}
	h, _, a := newTestHero(t, rec.listen)

	tick := h.Update(Controls{})

	assert.Equal(t, Tick{}, tick)
	assert.Equal(t, Standing, h.Movement().Current())
	assert.Equal(t, Idle, h.Animation().Current())
	assert.Empty(t, rec.events)
	assert.Len(t, a.clips, 1)
}

func TestJumpFromStanding(t *testing.T) {
	rec := &recorder{}
	h, b, a := newTestHero(t, rec.listen)

	tick := h.Update(Controls{Jump: true, JumpPressed: true})

	assert.Equal(t, Tick{Movement: "jump", Animation: "jump"}, tick)
	assert.Equal(t, Jumping, h.Movement().Current())
	assert.Equal(t, AnimJumping, h.Animation().Current())
	assert.Equal(t, -400.0, b.vy)
	assert.Equal(t, []Event{EventJumped}, rec.events)
	assert.Equal(t, "hero-jumping", a.last())
}

func TestFlipAndNoTripleJump(t *testing.T) {
	rec := &recorder{}
	h, b, a := newTestHero(t, rec.listen)
	h.Update(Controls{Jump: true, JumpPressed: true})
	b.onFloor = false

	tick := h.Update(Controls{Jump: true, JumpPressed: true})
	assert.Equal(t, Tick{Movement: "flip", Animation: "flip"}, tick)
	assert.Equal(t, Flipping, h.Movement().Current())
	assert.Equal(t, AnimFlipping, h.Animation().Current())
	assert.Equal(t, -300.0, b.vy)
	assert.Equal(t, "hero-flipping", a.last())

	tick = h.Update(Controls{Jump: true, JumpPressed: true})
	assert.Equal(t, Tick{}, tick)
	assert.Equal(t, Flipping, h.Movement().Current())
	assert.Equal(t, []Event{EventJumped, EventDoubleJumped}, rec.events)
}

func TestFlipFromFallingAnimation(t *testing.T) {
	h, b, _ := newTestHero(t)
	h.Update(Controls{Jump: true, JumpPressed: true})
	b.onFloor = false
	b.vy = 20
	h.Update(Controls{Jump: true})
	require.Equal(t, AnimFalling, h.Animation().Current())
	require.Equal(t, Jumping, h.Movement().Current())

	tick := h.Update(Controls{Jump: true, JumpPressed: true})

	assert.Equal(t, Tick{Movement: "flip", Animation: "flip"}, tick)
}

func TestJumpReleaseClamp(t *testing.T) {
	cases := []struct {
		name  string
		setup func(h *Hero, b *fakeBody)
		jump  bool
		vy    float64
		want  float64
	}{
		{
			name:  "released while rising fast",
			setup: func(h *Hero, b *fakeBody) { h.Update(Controls{Jump: true, JumpPressed: true}); b.onFloor = false },
			vy:    -400,
			want:  -150,
		},
		{
			name:  "held while rising fast",
			setup: func(h *Hero, b *fakeBody) { h.Update(Controls{Jump: true, JumpPressed: true}); b.onFloor = false },
			jump:  true,
			vy:    -400,
			want:  -400,
		},
		{
			name:  "released while rising slowly",
			setup: func(h *Hero, b *fakeBody) { h.Update(Controls{Jump: true, JumpPressed: true}); b.onFloor = false },
			vy:    -100,
			want:  -100,
		},
		{
			name:  "standing is never clamped",
			setup: func(h *Hero, b *fakeBody) {},
			vy:    -400,
			want:  -400,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, b, _ := newTestHero(t)
			tc.setup(h, b)
			b.vy = tc.vy
			h.holdJump(Controls{Jump: tc.jump})
			assert.Equal(t, tc.want, b.vy)
		})
	}
}

func TestSteering(t *testing.T) {
	h, b, _ := newTestHero(t)

	h.Update(Controls{Left: true})
	assert.Equal(t, -1000.0, b.ax)
	assert.Equal(t, -1, h.Facing())

	h.Update(Controls{Right: true})
	assert.Equal(t, 1000.0, b.ax)
	assert.Equal(t, 1, h.Facing())

	h.Update(Controls{})
	assert.Equal(t, 0.0, b.ax)
	assert.Equal(t, 1, h.Facing())

	h.Kill()
	h.Update(Controls{Left: true})
	assert.Equal(t, 0.0, b.ax)
	assert.Equal(t, 1, h.Facing())
}

func TestRunPivotIdle(t *testing.T) {
	h, b, _ := newTestHero(t)

	b.vx = 120
	assert.Equal(t, "run", h.Update(Controls{Right: true}).Animation)
	assert.Equal(t, Running, h.Animation().Current())

	// Pressing left while still sliding right.
	assert.Equal(t, "pivot", h.Update(Controls{Left: true}).Animation)
	assert.Equal(t, Pivoting, h.Animation().Current())

	b.vx = -50
	assert.Equal(t, "run", h.Update(Controls{Left: true}).Animation)

	b.vx = 0
	assert.Equal(t, "idle", h.Update(Controls{}).Animation)
}

func TestIdleConvergence(t *testing.T) {
	cases := []struct {
		name  string
		prior AnimState
		reach func(h *Hero, b *fakeBody)
	}{
		{
			name:  "from running",
			prior: Running,
			reach: func(h *Hero, b *fakeBody) { b.vx = 100; h.Update(Controls{Right: true}) },
		},
		{
			name:  "from pivoting",
			prior: Pivoting,
			reach: func(h *Hero, b *fakeBody) {
				b.vx = 100
				h.Update(Controls{Right: true})
				h.Update(Controls{Left: true})
			},
		},
		{
			name:  "from falling",
			prior: AnimFalling,
			reach: func(h *Hero, b *fakeBody) { b.onFloor = false; b.vy = 50; h.Update(Controls{}) },
		},
		{
			name:  "from idle",
			prior: Idle,
			reach: func(h *Hero, b *fakeBody) {},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, b, a := newTestHero(t)
			tc.reach(h, b)
			require.Equal(t, tc.prior, h.Animation().Current())

			b.onFloor, b.vx, b.vy = true, 0, 0
			h.Update(Controls{})

			assert.Equal(t, Idle, h.Animation().Current())
			assert.Equal(t, Standing, h.Movement().Current())
			assert.Equal(t, "hero-idle", a.last())
		})
	}
}

func TestKillWhileStanding(t *testing.T) {
	rec := &recorder{}
	h, b, a := newTestHero(t, rec.listen)
	b.vx = 80
	b.ax = 1000

	require.True(t, h.Kill())
	assert.True(t, h.IsDead())
	assert.Equal(t, MoveDead, h.Movement().Current())
	assert.Equal(t, AnimDead, h.Animation().Current())
	assert.Equal(t, 0.0, b.vx)
	assert.Equal(t, -500.0, b.vy)
	assert.Equal(t, 0.0, b.ax)
	assert.Equal(t, 0.0, b.ay)
	assert.Equal(t, "hero-dead", a.last())

	assert.False(t, h.Kill())
	assert.Equal(t, 1, rec.count(EventDied))

	// The corpse keeps moving but nothing fires.
	for _, snap := range []fakeBody{
		{vy: -200},
		{vy: 300},
		{vy: 0, onFloor: true},
		{vx: 40, onFloor: true},
	} {
		b.vx, b.vy, b.onFloor = snap.vx, snap.vy, snap.onFloor
		assert.Equal(t, Tick{}, h.Update(Controls{Jump: true, JumpPressed: true, Left: true}))
	}
	assert.Equal(t, MoveDead, h.Movement().Current())
	assert.Equal(t, AnimDead, h.Animation().Current())
	assert.Equal(t, []Event{EventDied}, rec.events)
}

func TestKillFromEveryLiveState(t *testing.T) {
	cases := []struct {
		name  string
		reach func(h *Hero, b *fakeBody)
		want  MoveState
	}{
		{"standing", func(h *Hero, b *fakeBody) {}, Standing},
		{"jumping", func(h *Hero, b *fakeBody) {
			h.Update(Controls{Jump: true, JumpPressed: true})
		}, Jumping},
		{"flipping", func(h *Hero, b *fakeBody) {
			h.Update(Controls{Jump: true, JumpPressed: true})
			b.onFloor = false
			h.Update(Controls{Jump: true, JumpPressed: true})
		}, Flipping},
		{"falling", func(h *Hero, b *fakeBody) {
			b.onFloor = false
			h.Update(Controls{})
		}, Falling},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, b, _ := newTestHero(t)
			tc.reach(h, b)
			require.Equal(t, tc.want, h.Movement().Current())
			assert.True(t, h.Kill())
			assert.Equal(t, AnimDead, h.Animation().Current())
		})
	}
}

// Random walks over physics snapshots in strict mode: any illegal
// transition would panic.
func TestRandomSnapshotsStayLegal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	velocities := []float64{-300, -150, -1, 0, 1, 150, 300}
	pick := func() float64 { return velocities[rng.Intn(len(velocities))] }

	for run := 0; run < 200; run++ {
		h, b, _ := newTestHero(t)
		for step := 0; step < 60; step++ {
			b.vx, b.vy, b.onFloor = pick(), pick(), rng.Intn(2) == 0
			c := Controls{
				Left:        rng.Intn(3) == 0,
				Right:       rng.Intn(3) == 0,
				Jump:        rng.Intn(2) == 0,
				JumpPressed: rng.Intn(4) == 0,
			}
			wasDead := h.IsDead()
			var tick Tick
			require.NotPanics(t, func() { tick = h.Update(c) })
			if wasDead {
				require.Equal(t, Tick{}, tick)
				require.Equal(t, MoveDead, h.Movement().Current())
			}
			if rng.Intn(40) == 0 {
				h.Kill()
			}
		}
	}
}

func TestFaultModes(t *testing.T) {
	err := &fsm.IllegalTransitionError[MoveState]{Name: "jump", State: MoveDead}

	h, _, _ := newTestHero(t)
	assert.Panics(t, func() { h.fault(err) })

	logger, hook := test.NewNullLogger()
	h.strict = false
	h.log = logger
	assert.NotPanics(t, func() { h.fault(err) })
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	logged, ok := hook.LastEntry().Data[logrus.ErrorKey].(error)
	require.True(t, ok)
	assert.True(t, errors.Is(logged, fsm.ErrIllegalTransition))
}

func TestStatsListener(t *testing.T) {
	var s Stats
	h, b, _ := newTestHero(t, nil, s.Listen)

	h.Update(Controls{Jump: true, JumpPressed: true})
	b.onFloor = false
	h.Update(Controls{Jump: true, JumpPressed: true})
	h.Kill()

	assert.Equal(t, Stats{Jumps: 1, Flips: 1, Deaths: 1}, s)
}

func TestClipNames(t *testing.T) {
	for _, s := range animStates {
		assert.Equal(t, "hero-"+s.String(), s.Clip())
	}
	assert.Equal(t, "hero-idle", Idle.Clip())
	assert.Equal(t, "dead", MoveDead.String())
}

func TestTuningValidate(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())

	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero max velocity", func(t *Tuning) { t.MaxVelocityX = 0 }},
		{"negative flip", func(t *Tuning) { t.FlipImpulse = -1 }},
		{"zero height", func(t *Tuning) { t.Height = 0 }},
		{"negative drag", func(t *Tuning) { t.DragX = -5 }},
		{"negative margin", func(t *Tuning) { t.RespawnMargin = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tu := DefaultTuning()
			tc.mutate(&tu)
			assert.ErrorIs(t, tu.Validate(), ErrInvalidTuning)
		})
	}
}
