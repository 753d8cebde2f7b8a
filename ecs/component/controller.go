package component

import "github.com/milk9111/herorun/hero"

// Controller owns the hero lifecycle across respawns.
type Controller struct {
	Lifecycle *hero.Lifecycle
	Stats     *hero.Stats
	// Last is the previous frame's fired transitions.
	Last hero.Tick
	// Goals counts goal touches.
	Goals int
}

var ControllerComponent = NewComponent[Controller]()
