package component

import "image/color"

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
	Color      color.Color
}

type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
	// Plays counts Play calls, so a restarted clip is visible to observers.
	Plays int
}

// Play starts clip from its first frame. Playing the current clip restarts it.
func (a *Animation) Play(clip string) {
	a.Current = clip
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
	a.Plays++
}

// Def returns the definition of the current clip.
func (a *Animation) Def() (AnimationDef, bool) {
	def, ok := a.Defs[a.Current]
	return def, ok
}

var AnimationComponent = NewComponent[Animation]()
