package hero

// MoveState is the hero's physical intent.
type MoveState int

const (
	Standing MoveState = iota
	Jumping
	Flipping
	Falling
	MoveDead
)

var moveStateNames = [...]string{
	Standing: "standing",
	Jumping:  "jumping",
	Flipping: "flipping",
	Falling:  "falling",
	MoveDead: "dead",
}

func (s MoveState) String() string {
	if s < 0 || int(s) >= len(moveStateNames) {
		return "unknown"
	}
	return moveStateNames[s]
}

// AnimState is the hero's visual intent. Each state has a clip of the same
// name.
type AnimState int

const (
	Idle AnimState = iota
	Running
	Pivoting
	AnimJumping
	AnimFlipping
	AnimFalling
	AnimDead
)

var animStateNames = [...]string{
	Idle:         "idle",
	Running:      "running",
	Pivoting:     "pivoting",
	AnimJumping:  "jumping",
	AnimFlipping: "flipping",
	AnimFalling:  "falling",
	AnimDead:     "dead",
}

func (s AnimState) String() string {
	if s < 0 || int(s) >= len(animStateNames) {
		return "unknown"
	}
	return animStateNames[s]
}

// ClipPrefix is prepended to an animation state's name to get its clip.
const ClipPrefix = "hero-"

// Clip returns the animation clip played while in s.
func (s AnimState) Clip() string { return ClipPrefix + s.String() }
