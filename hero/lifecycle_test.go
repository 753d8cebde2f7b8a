package hero

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLifecycle(t *testing.T, mutate func(*LifecycleConfig)) (*Lifecycle, *fakeScene, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	scene := &fakeScene{viewBottom: 600}
	cfg := LifecycleConfig{
		SpawnX: 64,
		SpawnY: 480,
		Tuning: DefaultTuning(),
		Strict: true,
		Log:    logger,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	l, err := NewLifecycle(scene, cfg)
	require.NoError(t, err)
	return l, scene, hook
}

func TestNewLifecycleSpawnsFirstHero(t *testing.T) {
	l, scene, hook := newTestLifecycle(t, nil)

	require.NotNil(t, l.Hero())
	assert.Equal(t, 1, l.Lives())
	assert.Equal(t, []spawnCall{{64, 480}}, scene.spawns)
	assert.True(t, scene.following)
	assert.Equal(t, Standing, l.Hero().Movement().Current())
	assert.Equal(t, "hero spawned", hook.LastEntry().Message)
	assert.Equal(t, 1, hook.LastEntry().Data["life"])
}

func TestNewLifecycleErrors(t *testing.T) {
	_, err := NewLifecycle(nil, LifecycleConfig{Tuning: DefaultTuning()})
	assert.ErrorIs(t, err, ErrNoScene)

	_, err = NewLifecycle(&fakeScene{}, LifecycleConfig{})
	assert.ErrorIs(t, err, ErrInvalidTuning)

	_, err = NewLifecycle(&fakeScene{failSpawn: true}, LifecycleConfig{Tuning: DefaultTuning()})
	assert.ErrorIs(t, err, errSpawn)
}

func TestLifecycleKill(t *testing.T) {
	rec := &recorder{}
	l, scene, hook := newTestLifecycle(t, func(c *LifecycleConfig) {
		c.Listeners = []Listener{rec.listen}
	})
	body := scene.bodies[0]

	require.True(t, l.Kill("spike"))
	assert.True(t, l.Hero().IsDead())
	assert.False(t, body.bounded)
	assert.True(t, body.detached)
	assert.False(t, scene.following)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "spike", hook.LastEntry().Data["cause"])

	// A second overlap in the same frame.
	assert.False(t, l.Kill("spike"))
	assert.Equal(t, 1, rec.count(EventDied))
}

func TestReadyToRespawn(t *testing.T) {
	cases := []struct {
		name    string
		auto    bool
		kill    bool
		top     float64
		restart bool
		want    bool
	}{
		{name: "alive", top: 900, restart: true},
		{name: "dead inside view", kill: true, top: 650, restart: true},
		{name: "dead exactly at margin", kill: true, top: 700, restart: true},
		{name: "dead below margin without restart", kill: true, top: 701},
		{name: "dead below margin with restart", kill: true, top: 701, restart: true, want: true},
		{name: "auto respawn", auto: true, kill: true, top: 701, want: true},
		{name: "auto respawn still waits for the drop", auto: true, kill: true, top: 500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, scene, _ := newTestLifecycle(t, func(c *LifecycleConfig) { c.AutoRespawn = tc.auto })
			if tc.kill {
				require.True(t, l.Kill("spike"))
			}
			scene.bodies[0].top = tc.top
			assert.Equal(t, tc.want, l.ReadyToRespawn(tc.restart))
		})
	}
}

func TestRespawnBuildsFreshHero(t *testing.T) {
	var stats Stats
	l, scene, _ := newTestLifecycle(t, func(c *LifecycleConfig) {
		c.Listeners = []Listener{stats.Listen}
	})
	first := l.Hero()
	l.Tick(Controls{Jump: true, JumpPressed: true})
	l.Kill("spike")
	l.SetSpawn(10, 20)

	require.NoError(t, l.Respawn())

	second := l.Hero()
	assert.NotSame(t, first, second)
	require.Len(t, scene.destroyed, 1)
	assert.Same(t, scene.bodies[0], scene.destroyed[0].Body)
	assert.Equal(t, spawnCall{10, 20}, scene.spawns[1])
	assert.Equal(t, Standing, second.Movement().Current())
	assert.Equal(t, Idle, second.Animation().Current())
	assert.True(t, scene.following)
	assert.Equal(t, 2, l.Lives())

	// Listeners carry over; the dead hero's body is no longer driven.
	l.Tick(Controls{Jump: true, JumpPressed: true})
	assert.Equal(t, Stats{Jumps: 2, Deaths: 1}, stats)
	assert.Equal(t, -500.0, scene.bodies[0].vy)
	assert.Equal(t, -400.0, scene.bodies[1].vy)
}

func TestRespawnUsesNewTuning(t *testing.T) {
	l, scene, _ := newTestLifecycle(t, nil)

	bad := DefaultTuning()
	bad.Width = 0
	assert.ErrorIs(t, l.SetTuning(bad), ErrInvalidTuning)

	floaty := DefaultTuning()
	floaty.JumpImpulse = 250
	require.NoError(t, l.SetTuning(floaty))
	l.Kill("goal")
	require.NoError(t, l.Respawn())

	l.Tick(Controls{Jump: true, JumpPressed: true})
	assert.Equal(t, -250.0, scene.bodies[1].vy)
}

func TestRespawnFailure(t *testing.T) {
	l, scene, _ := newTestLifecycle(t, nil)
	l.Kill("spike")
	scene.failSpawn = true

	assert.ErrorIs(t, l.Respawn(), errSpawn)
	assert.Nil(t, l.Hero())
	assert.Equal(t, Tick{}, l.Tick(Controls{JumpPressed: true}))
	assert.False(t, l.Kill("spike"))
	assert.False(t, l.ReadyToRespawn(true))

	scene.failSpawn = false
	require.NoError(t, l.Respawn())
	assert.Len(t, scene.destroyed, 1)
	assert.NotNil(t, l.Hero())
}
