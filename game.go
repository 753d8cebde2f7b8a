package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/herorun/assets"
	"github.com/milk9111/herorun/config"
	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/entity"
	"github.com/milk9111/herorun/ecs/render"
	"github.com/milk9111/herorun/ecs/system"
	"github.com/milk9111/herorun/levels"
	"github.com/milk9111/herorun/logger"
	"github.com/milk9111/herorun/prefabs"
)

type Game struct {
	cfg   config.Config
	log   *logrus.Entry
	world *ecs.World
	scene *entity.Scene
	sched *ecs.Scheduler

	watcher *prefabs.Watcher
	tones   *assets.ToneBank
}

func NewGame(cfg config.Config) (*Game, error) {
	log := logger.For("game")

	level, err := levels.Load(cfg.Level)
	if err != nil {
		return nil, err
	}
	heroSpec, err := prefabs.LoadHeroSpec()
	if err != nil {
		return nil, err
	}
	camSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, entity.SceneConfig{
		Level:       level,
		Hero:        heroSpec,
		Camera:      camSpec,
		ViewW:       float64(cfg.Width),
		ViewH:       float64(cfg.Height),
		AutoRespawn: cfg.AutoRespawn,
		Strict:      cfg.Debug,
		Log:         logger.For("hero"),
	})
	if err != nil {
		return nil, err
	}

	g := &Game{cfg: cfg, log: log, world: world, scene: scene}

	var sink system.Sink
	if !cfg.Mute {
		tones, err := assets.NewToneBank(heroSpec.Sounds, logger.For("audio"))
		if err != nil {
			return nil, err
		}
		g.tones = tones
		sink = tones
	}
	g.sched = system.Default(system.Options{
		Keys: ebitenKeys{},
		Sink: sink,
		DT:   cfg.DT(),
		Log:  logger.For("system"),
	})

	if cfg.Watch || cfg.Debug {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			log.WithError(err).Warn("hot reload disabled")
		} else {
			g.watcher = w
		}
	}

	log.WithFields(logrus.Fields{
		"level": level.Name,
		"tps":   cfg.TPS,
		"debug": cfg.Debug,
	}).Info("game ready")
	return g, nil
}

func (g *Game) Update() error {
	g.reload()
	g.sched.Update(g.world)
	return nil
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.WithError(err).Warn("watcher error")
	default:
	}
	for _, ch := range g.watcher.Drain() {
		applied, err := g.scene.Reload(ch)
		entry := g.log.WithField("path", ch.Path)
		switch {
		case err != nil:
			entry.WithError(err).Warn("reload failed")
		case applied:
			entry.Info("reloaded for next spawn")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Draw(screen, g.world, g.cfg.Debug)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if g.tones != nil {
		if err := g.tones.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
