package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/herorun/hero"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type HeroSpec struct {
	Name      string              `yaml:"name"`
	Movement  MovementSpec        `yaml:"movement"`
	Collider  ColliderSpec        `yaml:"collider"`
	Sprite    SpriteSpec          `yaml:"sprite"`
	Animation AnimationSpec       `yaml:"animation"`
	Sounds    map[string]ToneSpec `yaml:"sounds"`
}

type MovementSpec struct {
	RunAcceleration  float64 `yaml:"run_acceleration"`
	DragX            float64 `yaml:"drag_x"`
	MaxVelocityX     float64 `yaml:"max_velocity_x"`
	MaxVelocityY     float64 `yaml:"max_velocity_y"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	FlipImpulse      float64 `yaml:"flip_impulse"`
	JumpReleaseClamp float64 `yaml:"jump_release_clamp"`
	DeathImpulse     float64 `yaml:"death_impulse"`
	RespawnMargin    float64 `yaml:"respawn_margin"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type SpriteSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationSpec struct {
	Current string                      `yaml:"current"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount int        `yaml:"frame_count"`
	FPS        float64    `yaml:"fps"`
	Loop       bool       `yaml:"loop"`
	Color      *YAMLColor `yaml:"color"`
}

// ToneSpec is a generated beep played for a hero event.
type ToneSpec struct {
	Frequency  float64 `yaml:"frequency"`
	DurationMS int     `yaml:"duration_ms"`
	Volume     float64 `yaml:"volume"`
}

// LoadHeroSpec reads and validates hero.yaml.
func LoadHeroSpec() (*HeroSpec, error) {
	spec, err := LoadSpec[HeroSpec]("hero.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Tuning().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: hero.yaml: %w", err)
	}
	for name := range spec.Animation.Defs {
		if !strings.HasPrefix(name, hero.ClipPrefix) {
			return nil, fmt.Errorf("prefabs: hero.yaml: clip %q lacks the %q prefix", name, hero.ClipPrefix)
		}
	}
	return &spec, nil
}

// Tuning converts the spec into controller tuning.
func (s *HeroSpec) Tuning() hero.Tuning {
	m := s.Movement
	return hero.Tuning{
		RunAcceleration:  m.RunAcceleration,
		DragX:            m.DragX,
		MaxVelocityX:     m.MaxVelocityX,
		MaxVelocityY:     m.MaxVelocityY,
		JumpImpulse:      m.JumpImpulse,
		FlipImpulse:      m.FlipImpulse,
		JumpReleaseClamp: m.JumpReleaseClamp,
		DeathImpulse:     m.DeathImpulse,
		RespawnMargin:    m.RespawnMargin,
		Width:            s.Collider.Width,
		Height:           s.Collider.Height,
		OffsetX:          s.Collider.OffsetX,
		OffsetY:          s.Collider.OffsetY,
		SpriteW:          s.Sprite.Width,
		SpriteH:          s.Sprite.Height,
	}
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	Smoothness float64 `yaml:"smoothness"`
	Zoom       float64 `yaml:"zoom"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	if spec.Smoothness < 0 || spec.Smoothness >= 1 {
		return nil, fmt.Errorf("prefabs: camera.yaml: smoothness %v outside [0, 1)", spec.Smoothness)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
