package hero

import (
	"errors"
	"fmt"
)

// Tuning holds the hero's movement constants. Velocities are world units per
// second, y grows downward.
type Tuning struct {
	RunAcceleration  float64
	DragX            float64
	MaxVelocityX     float64
	MaxVelocityY     float64
	JumpImpulse      float64
	FlipImpulse      float64
	JumpReleaseClamp float64
	DeathImpulse     float64
	RespawnMargin    float64

	// Collider size and offset from the sprite's top-left; the sprite's
	// origin is its bottom centre.
	Width, Height    float64
	OffsetX, OffsetY float64
	SpriteW, SpriteH float64
}

// DefaultTuning returns the values the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		RunAcceleration:  1000,
		DragX:            650,
		MaxVelocityX:     250,
		MaxVelocityY:     400,
		JumpImpulse:      400,
		FlipImpulse:      300,
		JumpReleaseClamp: 150,
		DeathImpulse:     500,
		RespawnMargin:    100,
		Width:            12,
		Height:           40,
		OffsetX:          12,
		OffsetY:          23,
		SpriteW:          32,
		SpriteH:          64,
	}
}

var ErrInvalidTuning = errors.New("hero: invalid tuning")

// Validate rejects tunings the controller cannot run with.
func (t Tuning) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"max velocity x", t.MaxVelocityX},
		{"max velocity y", t.MaxVelocityY},
		{"jump impulse", t.JumpImpulse},
		{"flip impulse", t.FlipImpulse},
		{"width", t.Width},
		{"height", t.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}
	nonNegative := []struct {
		name string
		v    float64
	}{
		{"run acceleration", t.RunAcceleration},
		{"drag x", t.DragX},
		{"jump release clamp", t.JumpReleaseClamp},
		{"death impulse", t.DeathImpulse},
		{"respawn margin", t.RespawnMargin},
	}
	for _, p := range nonNegative {
		if p.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, p.name, p.v)
		}
	}
	return nil
}
