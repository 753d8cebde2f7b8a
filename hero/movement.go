package hero

import "github.com/milk9111/herorun/fsm"

const (
	transitionJump      = "jump"
	transitionFlip      = "flip"
	transitionFall      = "fall"
	transitionTouchdown = "touchdown"
	transitionDie       = "die"
	transitionIdle      = "idle"
	transitionRun       = "run"
	transitionPivot     = "pivot"
)

// moveCtx is what movement predicates and effects see.
type moveCtx struct {
	body   Body
	tuning *Tuning
	events *emitter
	snap   Snapshot
}

var moveStates = []MoveState{Standing, Jumping, Flipping, Falling, MoveDead}

var movementTable = fsm.MustCompile(fsm.Spec[MoveState, *moveCtx]{
	Initial:  Standing,
	States:   moveStates,
	Terminal: []MoveState{MoveDead},
	Rules: []fsm.Rule[MoveState, *moveCtx]{
		{
			Name: transitionJump,
			From: []MoveState{Standing},
			To:   Jumping,
			Effect: func(m *moveCtx) {
				m.body.SetVelocityY(-m.tuning.JumpImpulse)
				m.events.emit(EventJumped)
			},
		},
		{
			Name: transitionFlip,
			From: []MoveState{Jumping},
			To:   Flipping,
			Effect: func(m *moveCtx) {
				m.body.SetVelocityY(-m.tuning.FlipImpulse)
				m.events.emit(EventDoubleJumped)
			},
		},
		{Name: transitionFall, From: []MoveState{Standing}, To: Falling},
		{Name: transitionTouchdown, From: []MoveState{Jumping, Flipping, Falling}, To: Standing},
		{
			Name: transitionDie,
			From: fsm.Except(moveStates, MoveDead),
			To:   MoveDead,
			Effect: func(m *moveCtx) {
				m.body.SetVelocity(0, -m.tuning.DeathImpulse)
				m.body.SetAcceleration(0, 0)
				m.events.emit(EventDied)
			},
		},
	},
})

// jump and flip share a predicate; only one of them is ever legal.
var movementPredicates = fsm.Predicates[*moveCtx]{
	transitionJump:      func(m *moveCtx) bool { return m.snap.JumpPressed },
	transitionFlip:      func(m *moveCtx) bool { return m.snap.JumpPressed },
	transitionFall:      func(m *moveCtx) bool { return !m.snap.OnFloor },
	transitionTouchdown: func(m *moveCtx) bool { return m.snap.OnFloor },
}
