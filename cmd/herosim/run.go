package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
	"github.com/milk9111/herorun/ecs/entity"
	"github.com/milk9111/herorun/ecs/system"
	"github.com/milk9111/herorun/levels"
	"github.com/milk9111/herorun/prefabs"
)

// Options for one headless replay.
type Options struct {
	Level       string
	AutoRespawn bool
	Strict      bool
	DT          float64
	ViewW       float64
	ViewH       float64
	Log         logrus.FieldLogger
}

// Summary is the state after the last frame.
type Summary struct {
	Frames int
	Lives  int
	Jumps  int
	Flips  int
	Deaths int
	Goals  int
	Move   string
	Anim   string
}

// Run replays script through the default systems, writing one line per
// fired transition and per event to out.
func Run(script *Script, opts Options, out io.Writer) (Summary, error) {
	name := opts.Level
	if script.Level != "" {
		name = script.Level
	}
	level, err := levels.Load(name)
	if err != nil {
		return Summary{}, err
	}
	heroSpec, err := prefabs.LoadHeroSpec()
	if err != nil {
		return Summary{}, err
	}
	camSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return Summary{}, err
	}

	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, entity.SceneConfig{
		Level:       level,
		Hero:        heroSpec,
		Camera:      camSpec,
		ViewW:       opts.ViewW,
		ViewH:       opts.ViewH,
		AutoRespawn: opts.AutoRespawn || script.AutoRespawn,
		Strict:      opts.Strict,
		Log:         opts.Log,
	})
	if err != nil {
		return Summary{}, err
	}

	frames := script.Frames()
	frame := 0
	sched := system.Default(system.Options{
		Keys: &replay{frames: frames},
		DT:   opts.DT,
		Log:  opts.Log,
	})
	sched.Add(ecs.SystemFunc(func(w *ecs.World) {
		if ctrl, ok := ecs.Get(w, scene.Controller(), component.ControllerComponent.Kind()); ok {
			if ctrl.Last.Movement != "" {
				fmt.Fprintf(out, "%5d movement  %s\n", frame, ctrl.Last.Movement)
			}
			if ctrl.Last.Animation != "" {
				fmt.Fprintf(out, "%5d animation %s\n", frame, ctrl.Last.Animation)
			}
		}
		for _, evt := range w.Events().Peek() {
			fmt.Fprintf(out, "%5d event     %s\n", frame, evt.Type)
		}
	}))

	for frame = 1; frame <= len(frames); frame++ {
		sched.Update(world)
	}

	lc := scene.Lifecycle()
	sum := Summary{
		Frames: len(frames),
		Lives:  lc.Lives(),
		Jumps:  scene.Stats().Jumps,
		Flips:  scene.Stats().Flips,
		Deaths: scene.Stats().Deaths,
	}
	if ctrl, ok := ecs.Get(world, scene.Controller(), component.ControllerComponent.Kind()); ok {
		sum.Goals = ctrl.Goals
	}
	if h := lc.Hero(); h != nil {
		sum.Move = h.Movement().Current().String()
		sum.Anim = h.Animation().Current().String()
	}
	return sum, nil
}
