package component

import "github.com/milk9111/herorun/hero"

// Input stores per-frame input state for an entity.
type Input struct {
	hero.Controls
}

var InputComponent = NewComponent[Input]()
