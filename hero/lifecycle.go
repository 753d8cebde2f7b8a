package hero

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// LifecycleConfig is fixed for the lifetime of a Lifecycle, except for the
// spawn point and tuning which can be swapped between lives.
type LifecycleConfig struct {
	SpawnX, SpawnY float64
	Tuning         Tuning
	// Listeners are handed to every hero this lifecycle spawns.
	Listeners []Listener
	// AutoRespawn drops the restart-key requirement.
	AutoRespawn bool
	Strict      bool
	Log         logrus.FieldLogger
}

// Lifecycle owns the current hero. It spawns it into a Scene, kills it on
// request and replaces it with a fresh one on respawn.
type Lifecycle struct {
	scene Scene
	cfg   LifecycleConfig
	log   logrus.FieldLogger

	hero  *Hero
	rig   Rig
	lives int
}

var ErrNoScene = errors.New("hero: lifecycle needs a scene")

// NewLifecycle spawns the first hero.
func NewLifecycle(scene Scene, cfg LifecycleConfig) (*Lifecycle, error) {
	if scene == nil {
		return nil, ErrNoScene
	}
	if err := cfg.Tuning.Validate(); err != nil {
		return nil, err
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	l := &Lifecycle{scene: scene, cfg: cfg, log: cfg.Log}
	if err := l.spawn(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lifecycle) spawn() error {
	rig, err := l.scene.Spawn(l.cfg.SpawnX, l.cfg.SpawnY, l.cfg.Tuning)
	if err != nil {
		return err
	}
	h, err := New(l.cfg.SpawnX, l.cfg.SpawnY, rig, Options{
		Tuning:    l.cfg.Tuning,
		Listeners: l.cfg.Listeners,
		Strict:    l.cfg.Strict,
		Log:       l.log,
	})
	if err != nil {
		l.scene.Destroy(rig)
		return err
	}
	l.hero = h
	l.rig = rig
	l.lives++
	l.scene.Follow(rig)
	l.log.WithFields(logrus.Fields{
		"x":    l.cfg.SpawnX,
		"y":    l.cfg.SpawnY,
		"life": l.lives,
	}).Info("hero spawned")
	return nil
}

// Hero returns the current hero. It is nil only after a failed Respawn.
func (l *Lifecycle) Hero() *Hero { return l.hero }

// Lives counts heroes spawned so far, the first one included.
func (l *Lifecycle) Lives() int { return l.lives }

func (l *Lifecycle) Spawn() (x, y float64) { return l.cfg.SpawnX, l.cfg.SpawnY }

// Tick updates the current hero.
func (l *Lifecycle) Tick(c Controls) Tick {
	if l.hero == nil {
		return Tick{}
	}
	return l.hero.Update(c)
}

// Kill handles a hazard or goal report. Reports arriving after the hero is
// already dead are ignored and Kill returns false.
func (l *Lifecycle) Kill(cause string) bool {
	if l.hero == nil || !l.hero.Kill() {
		return false
	}
	l.rig.Body.SetCollideWorldBounds(false)
	l.rig.Body.DetachColliders()
	l.scene.StopFollow()
	l.log.WithFields(logrus.Fields{
		"cause": cause,
		"life":  l.lives,
	}).Info("hero died")
	return true
}

// ReadyToRespawn reports whether the dead hero has dropped far enough below
// the view and the player asked for a restart.
func (l *Lifecycle) ReadyToRespawn(restart bool) bool {
	if l.hero == nil || !l.hero.IsDead() {
		return false
	}
	if !restart && !l.cfg.AutoRespawn {
		return false
	}
	return l.rig.Body.Top() > l.scene.ViewBottom()+l.hero.tuning.RespawnMargin
}

// Respawn destroys the current hero and spawns a new one at the spawn point.
func (l *Lifecycle) Respawn() error {
	if l.hero != nil {
		l.scene.Destroy(l.rig)
	}
	l.hero = nil
	l.rig = Rig{}
	return l.spawn()
}

// SetSpawn moves the spawn point used by the next Respawn.
func (l *Lifecycle) SetSpawn(x, y float64) {
	l.cfg.SpawnX, l.cfg.SpawnY = x, y
}

// SetTuning swaps the tuning used by the next Respawn.
func (l *Lifecycle) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	l.cfg.Tuning = t
	return nil
}
