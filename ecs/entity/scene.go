package entity

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
	"github.com/milk9111/herorun/hero"
	"github.com/milk9111/herorun/levels"
	"github.com/milk9111/herorun/physics"
	"github.com/milk9111/herorun/prefabs"
)

var ErrNoSpawn = errors.New("entity: level has no start entity")

const heroPrefab = "hero.yaml"

// SceneConfig is everything BuildScene needs to populate a world.
type SceneConfig struct {
	Level  *levels.Level
	Hero   *prefabs.HeroSpec
	Camera *prefabs.CameraSpec
	// ViewW and ViewH are the screen size in pixels.
	ViewW, ViewH float64
	AutoRespawn  bool
	Strict       bool
	Log          logrus.FieldLogger
}

// Scene populates an ECS world with a level, a camera and a hero controller,
// and implements hero.Scene on top of them.
type Scene struct {
	world   *ecs.World
	physics *physics.World
	log     logrus.FieldLogger

	level      ecs.Entity
	camera     ecs.Entity
	controller ecs.Entity

	clips     map[string]component.AnimationDef
	stats     *hero.Stats
	lifecycle *hero.Lifecycle
}

var _ hero.Scene = (*Scene)(nil)

// BuildScene creates the level, camera and controller entities and spawns
// the first hero at the level's start.
func BuildScene(w *ecs.World, cfg SceneConfig) (*Scene, error) {
	if w == nil || cfg.Level == nil || cfg.Hero == nil {
		return nil, errors.New("entity: build scene: world, level and hero spec are required")
	}
	x, y, ok := cfg.Level.Spawn()
	if !ok {
		return nil, fmt.Errorf("entity: build scene %q: %w", cfg.Level.Name, ErrNoSpawn)
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	camSpec := cfg.Camera
	if camSpec == nil {
		camSpec = &prefabs.CameraSpec{Zoom: 1}
	}

	s := &Scene{
		world:   w,
		physics: physics.NewWorld(cfg.Level),
		log:     cfg.Log,
		clips:   Clips(cfg.Hero),
		stats:   &hero.Stats{},
	}

	s.level = ecs.CreateEntity(w)
	if err := ecs.Add(w, s.level, component.PhysicsWorldComponent.Kind(), &component.PhysicsWorld{World: s.physics}); err != nil {
		return nil, fmt.Errorf("entity: add physics world: %w", err)
	}

	s.camera = ecs.CreateEntity(w)
	if err := ecs.Add(w, s.camera, component.CameraComponent.Kind(), &component.Camera{
		ViewW:      cfg.ViewW,
		ViewH:      cfg.ViewH,
		Zoom:       camSpec.Zoom,
		Smoothness: camSpec.Smoothness,
	}); err != nil {
		return nil, fmt.Errorf("entity: add camera: %w", err)
	}
	if err := ecs.Add(w, s.camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return nil, fmt.Errorf("entity: add camera tag: %w", err)
	}

	s.controller = ecs.CreateEntity(w)
	if err := ecs.Add(w, s.controller, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return nil, fmt.Errorf("entity: add input: %w", err)
	}

	lc, err := hero.NewLifecycle(s, hero.LifecycleConfig{
		SpawnX:      x,
		SpawnY:      y,
		Tuning:      cfg.Hero.Tuning(),
		Listeners:   []hero.Listener{s.stats.Listen, s.forward},
		AutoRespawn: cfg.AutoRespawn,
		Strict:      cfg.Strict,
		Log:         cfg.Log,
	})
	if err != nil {
		return nil, fmt.Errorf("entity: build scene %q: %w", cfg.Level.Name, err)
	}
	s.lifecycle = lc

	if err := ecs.Add(w, s.controller, component.ControllerComponent.Kind(), &component.Controller{
		Lifecycle: lc,
		Stats:     s.stats,
	}); err != nil {
		return nil, fmt.Errorf("entity: add controller: %w", err)
	}
	return s, nil
}

// forward copies hero events onto the world queue.
func (s *Scene) forward(ev hero.Event) {
	s.world.Events().Push(ecs.Event{Type: ecs.EventType(ev), Entity: s.controller})
}

// Spawn places a hero body so the sprite's bottom centre sits on (x, y).
func (s *Scene) Spawn(x, y float64, t hero.Tuning) (hero.Rig, error) {
	left := x - t.SpriteW/2 + t.OffsetX
	top := y - t.SpriteH + t.OffsetY
	body := s.physics.AddBody(physics.BodySpec{
		X:            left + t.Width/2,
		Y:            top + t.Height/2,
		Width:        t.Width,
		Height:       t.Height,
		DragX:        t.DragX,
		MaxVelocityX: t.MaxVelocityX,
		MaxVelocityY: t.MaxVelocityY,
	})

	e := ecs.CreateEntity(s.world)
	anim := &component.Animation{Defs: s.clips}
	bx, by, bw, bh := body.Bounds()
	err := errors.Join(
		ecs.Add(s.world, e, component.HeroTagComponent.Kind(), &component.HeroTag{}),
		ecs.Add(s.world, e, component.TransformComponent.Kind(), &component.Transform{X: bx, Y: by, Width: bw, Height: bh}),
		ecs.Add(s.world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body}),
		ecs.Add(s.world, e, component.AnimationComponent.Kind(), anim),
	)
	if err != nil {
		s.physics.RemoveBody(body)
		ecs.DestroyEntity(s.world, e)
		return hero.Rig{}, fmt.Errorf("entity: spawn hero: %w", err)
	}
	return hero.Rig{Body: body, Animator: anim}, nil
}

// Destroy removes the entity and physics body behind r.
func (s *Scene) Destroy(r hero.Rig) {
	var doomed []ecs.Entity
	ecs.ForEach(s.world, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		if r.Body != nil && hero.Body(pb.Body) == r.Body {
			s.physics.RemoveBody(pb.Body)
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		ecs.DestroyEntity(s.world, e)
	}
}

func (s *Scene) Follow(hero.Rig) {
	if cam, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind()); ok {
		cam.Following = true
		cam.Snap = true
	}
}

func (s *Scene) StopFollow() {
	if cam, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind()); ok {
		cam.Following = false
	}
}

func (s *Scene) ViewBottom() float64 {
	cam, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	return cam.Bottom()
}

// Reload applies a watched file change to the next spawn. It reports
// whether the change concerned this scene.
func (s *Scene) Reload(ch prefabs.Change) (bool, error) {
	switch ch.Kind {
	case prefabs.ChangePrefab:
		if filepath.Base(ch.Path) != heroPrefab {
			return false, nil
		}
		spec, err := prefabs.LoadHeroSpec()
		if err != nil {
			return true, err
		}
		return true, s.SetHeroSpec(spec)
	case prefabs.ChangeLevel:
		name := s.physics.Level().Name
		if levels.NameOf(ch.Path) != name {
			return false, nil
		}
		level, err := levels.Load(name)
		if err != nil {
			return true, err
		}
		return true, s.SetSpawnFrom(level)
	}
	return false, nil
}

// SetHeroSpec swaps the tuning and clips used by the next spawn.
func (s *Scene) SetHeroSpec(spec *prefabs.HeroSpec) error {
	if err := s.lifecycle.SetTuning(spec.Tuning()); err != nil {
		return err
	}
	s.clips = Clips(spec)
	return nil
}

// SetSpawnFrom moves the next spawn to level's start entity. The physics
// geometry is not rebuilt.
func (s *Scene) SetSpawnFrom(level *levels.Level) error {
	x, y, ok := level.Spawn()
	if !ok {
		return fmt.Errorf("entity: level %q: %w", level.Name, ErrNoSpawn)
	}
	s.lifecycle.SetSpawn(x, y)
	return nil
}

func (s *Scene) World() *ecs.World { return s.world }

func (s *Scene) Physics() *physics.World { return s.physics }

func (s *Scene) Lifecycle() *hero.Lifecycle { return s.lifecycle }

func (s *Scene) Stats() *hero.Stats { return s.stats }

func (s *Scene) Camera() ecs.Entity { return s.camera }

func (s *Scene) Controller() ecs.Entity { return s.controller }

// Clips converts the prefab animation table into component definitions.
func Clips(spec *prefabs.HeroSpec) map[string]component.AnimationDef {
	out := make(map[string]component.AnimationDef, len(spec.Animation.Defs))
	for name, d := range spec.Animation.Defs {
		var c color.Color = colornames.Magenta
		if d.Color != nil && d.Color.Color != nil {
			c = d.Color.Color
		}
		out[name] = component.AnimationDef{
			Name:       name,
			FrameCount: d.FrameCount,
			FPS:        d.FPS,
			Loop:       d.Loop,
			Color:      c,
		}
	}
	return out
}
