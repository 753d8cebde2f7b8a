package hero

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/herorun/fsm"
)

// Options configures a new hero.
type Options struct {
	Tuning    Tuning
	Listeners []Listener
	// Strict makes an illegal transition panic instead of being logged and
	// dropped.
	Strict bool
	Log    logrus.FieldLogger
}

// Tick reports the transitions fired during one Update; empty means none.
type Tick struct {
	Movement  string
	Animation string
}

// Hero is one life of the player character: a body plus the movement and
// animation machines driven from it. A hero is never revived; Lifecycle
// replaces it.
type Hero struct {
	spawnX, spawnY float64
	tuning         Tuning
	body           Body
	facing         int
	events         emitter
	strict         bool
	log            logrus.FieldLogger

	moveCtx   *moveCtx
	animCtx   *animCtx
	movement  *fsm.Machine[MoveState, *moveCtx]
	animation *fsm.Machine[AnimState, *animCtx]
}

type nopAnimator struct{}

func (nopAnimator) Play(string) {}

// New builds a hero standing and idle at (x, y) and starts its idle clip.
func New(x, y float64, rig Rig, opts Options) (*Hero, error) {
	if rig.Body == nil {
		return nil, errors.New("hero: rig has no body")
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	player := rig.Animator
	if player == nil {
		player = nopAnimator{}
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	h := &Hero{
		spawnX: x,
		spawnY: y,
		tuning: opts.Tuning,
		body:   rig.Body,
		facing: 1,
		events: newEmitter(opts.Listeners),
		strict: opts.Strict,
		log:    log,
	}
	h.moveCtx = &moveCtx{body: h.body, tuning: &h.tuning, events: &h.events}
	h.movement = fsm.New(movementTable, h.moveCtx)
	h.animCtx = &animCtx{movement: h.movement, player: player}
	h.animation = fsm.New(animationTable, h.animCtx)

	player.Play(h.animation.Current().Clip())
	return h, nil
}

// Update runs one controller tick. Physics must already have integrated
// this frame.
func (h *Hero) Update(c Controls) Tick {
	dead := h.IsDead()
	h.steer(c, dead)
	h.holdJump(c)

	jumpPressed := !dead && c.JumpPressed
	var tick Tick

	h.moveCtx.snap = h.snapshot(jumpPressed)
	name, err := fsm.Step(h.movement, movementPredicates)
	if err != nil {
		h.fault(err)
	}
	tick.Movement = name

	// Re-read so the animation sees impulses the movement step just set.
	h.animCtx.snap = h.snapshot(jumpPressed)
	name, err = fsm.Step(h.animation, animationPredicates)
	if err != nil {
		h.fault(err)
	}
	tick.Animation = name

	return tick
}

// Kill fires die on both machines. It returns false, and does nothing, when
// the hero is already dead.
func (h *Hero) Kill() bool {
	if !h.movement.Can(transitionDie) {
		return false
	}
	if err := h.movement.Fire(transitionDie); err != nil {
		h.fault(err)
		return false
	}
	if err := h.animation.Fire(transitionDie); err != nil {
		h.fault(err)
	}
	return true
}

func (h *Hero) IsDead() bool { return h.movement.Is(MoveDead) }

func (h *Hero) Movement() fsm.Reader[MoveState] { return h.movement }

func (h *Hero) Animation() fsm.Reader[AnimState] { return h.animation }

func (h *Hero) Body() Body { return h.body }

// Facing is 1 when the hero faces right and -1 when it faces left.
func (h *Hero) Facing() int { return h.facing }

func (h *Hero) Spawn() (x, y float64) { return h.spawnX, h.spawnY }

func (h *Hero) Tuning() Tuning { return h.tuning }

func (h *Hero) steer(c Controls, dead bool) {
	switch {
	case !dead && c.Left:
		h.body.SetAccelerationX(-h.tuning.RunAcceleration)
		h.facing = -1
	case !dead && c.Right:
		h.body.SetAccelerationX(h.tuning.RunAcceleration)
		h.facing = 1
	default:
		h.body.SetAccelerationX(0)
	}
}

// holdJump cuts the rise short once jump is released.
func (h *Hero) holdJump(c Controls) {
	if c.Jump || !(h.movement.Is(Jumping) || h.movement.Is(Flipping)) {
		return
	}
	if _, vy := h.body.Velocity(); vy < -h.tuning.JumpReleaseClamp {
		h.body.SetVelocityY(-h.tuning.JumpReleaseClamp)
	}
}

func (h *Hero) snapshot(jumpPressed bool) Snapshot {
	vx, vy := h.body.Velocity()
	return Snapshot{
		VX:          vx,
		VY:          vy,
		OnFloor:     h.body.OnFloor(),
		Facing:      h.facing,
		JumpPressed: jumpPressed,
	}
}

func (h *Hero) fault(err error) {
	if h.strict {
		panic(err)
	}
	h.log.WithError(err).Warn("hero: transition rejected")
}
