package component

// Transform is an axis-aligned box in world pixels. X and Y are the top-left.
type Transform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var TransformComponent = NewComponent[Transform]()
