package component

// Camera is a view rectangle in world pixels. X and Y are its top-left.
type Camera struct {
	X, Y       float64
	ViewW      float64
	ViewH      float64
	Zoom       float64
	Smoothness float64
	// Following is cleared when the hero dies so the corpse can drop out of
	// view.
	Following bool
	// Snap moves the camera straight to the target on the next update.
	Snap bool
}

// Bottom is the world y of the view's lower edge.
func (c *Camera) Bottom() float64 {
	return c.Y + c.ViewH/c.zoom()
}

// Size is the view size in world pixels.
func (c *Camera) Size() (w, h float64) {
	return c.ViewW / c.zoom(), c.ViewH / c.zoom()
}

func (c *Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}

var CameraComponent = NewComponent[Camera]()
