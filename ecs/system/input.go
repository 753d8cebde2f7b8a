package system

import (
	"github.com/milk9111/herorun/ecs"
	"github.com/milk9111/herorun/ecs/component"
	"github.com/milk9111/herorun/hero"
)

type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var c hero.Controls
	if i.keys != nil {
		c = i.keys.Controls()
	}
	// Jump cannot be newly pressed without being held.
	c.JumpPressed = c.JumpPressed && c.Jump

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Controls = c
	})
}
