package hero

import "github.com/milk9111/herorun/fsm"

// animCtx is what animation predicates see. The movement machine is only
// reachable through a read-only view.
type animCtx struct {
	snap     Snapshot
	movement fsm.Reader[MoveState]
	player   Animator
}

var animStates = []AnimState{Idle, Running, Pivoting, AnimJumping, AnimFlipping, AnimFalling, AnimDead}

var animationTable = fsm.MustCompile(fsm.Spec[AnimState, *animCtx]{
	Initial:  Idle,
	States:   animStates,
	Terminal: []AnimState{AnimDead},
	Rules: []fsm.Rule[AnimState, *animCtx]{
		{Name: transitionIdle, From: []AnimState{AnimFalling, Running, Pivoting}, To: Idle},
		{Name: transitionRun, From: []AnimState{AnimFalling, Idle, Pivoting}, To: Running},
		{Name: transitionPivot, From: []AnimState{AnimFalling, Running}, To: Pivoting},
		{Name: transitionJump, From: []AnimState{Idle, Running, Pivoting}, To: AnimJumping},
		{Name: transitionFlip, From: []AnimState{AnimJumping, AnimFalling}, To: AnimFlipping},
		{Name: transitionFall, From: fsm.Except(animStates, AnimFalling, AnimDead), To: AnimFalling},
		{Name: transitionDie, From: fsm.Except(animStates, AnimDead), To: AnimDead},
	},
	OnEnter: func(a *animCtx, t fsm.Transition[AnimState]) {
		a.player.Play(t.To.Clip())
	},
})

// Declaration order above decides ties: idle beats run and pivot, and flip is
// checked before fall.
var animationPredicates = fsm.Predicates[*animCtx]{
	transitionIdle: func(a *animCtx) bool {
		return a.snap.OnFloor && a.snap.VX == 0
	},
	transitionRun: func(a *animCtx) bool {
		return a.snap.OnFloor && sign(a.snap.VX) == a.snap.Facing
	},
	transitionPivot: func(a *animCtx) bool {
		return a.snap.OnFloor && sign(a.snap.VX) == -a.snap.Facing
	},
	transitionJump: func(a *animCtx) bool {
		return a.snap.VY < 0
	},
	transitionFlip: func(a *animCtx) bool {
		return a.snap.VY < 0 && a.movement.Is(Flipping)
	},
	transitionFall: func(a *animCtx) bool {
		return a.snap.VY > 0
	},
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
