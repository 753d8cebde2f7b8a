package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/hero"
)

// KeySource samples the player's controls once per frame.
type KeySource interface {
	Controls() hero.Controls
}

// Sink plays a named sound effect.
type Sink interface {
	Play(name string)
}

// Options configures the default system pipeline.
type Options struct {
	Keys KeySource
	// Sink may be nil to run silently.
	Sink Sink
	// DT is the fixed frame step in seconds.
	DT  float64
	Log logrus.FieldLogger
}

// Default builds the frame pipeline: input, physics, hero, hazard, respawn,
// camera, animation, audio.
func Default(opts Options) *ecs.Scheduler {
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	return ecs.NewScheduler(
		NewInputSystem(opts.Keys),
		NewPhysicsSystem(opts.DT),
		NewHeroSystem(opts.Log),
		NewHazardSystem(opts.Log),
		NewRespawnSystem(opts.Log),
		NewCameraSystem(),
		NewAnimationSystem(opts.DT),
		NewAudioSystem(opts.Sink),
	)
}
