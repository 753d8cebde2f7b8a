package hero

// Controls is the input sampled for one frame.
type Controls struct {
	Left    bool
	Right   bool
	Jump    bool
	Restart bool
	// JumpPressed is true only on the frame Jump went down.
	JumpPressed bool
}

// Body is the physics collaborator backing a hero. Reads reflect the last
// integration step plus any velocity set since; acceleration commands apply
// at the next step.
type Body interface {
	Velocity() (x, y float64)
	OnFloor() bool
	// Top is the world y of the body's upper edge.
	Top() float64

	SetVelocityX(x float64)
	SetVelocityY(y float64)
	SetVelocity(x, y float64)
	SetAccelerationX(x float64)
	SetAcceleration(x, y float64)
	SetCollideWorldBounds(collide bool)
	// DetachColliders stops the body from touching the ground and from
	// reporting hazard or goal overlaps.
	DetachColliders()
}

// Animator plays a named clip. Playing the current clip restarts it.
type Animator interface {
	Play(clip string)
}

// Rig is what a scene hands back for one spawned hero.
type Rig struct {
	Body     Body
	Animator Animator
}

// Scene owns physics bodies and the camera. A Lifecycle uses it to create and
// destroy heroes.
type Scene interface {
	Spawn(x, y float64, t Tuning) (Rig, error)
	Destroy(r Rig)
	Follow(r Rig)
	StopFollow()
	// ViewBottom is the world y of the camera's lower edge.
	ViewBottom() float64
}

// Snapshot is the read-only view of physics the predicates are evaluated
// against.
type Snapshot struct {
	VX, VY      float64
	OnFloor     bool
	Facing      int
	JumpPressed bool
}
