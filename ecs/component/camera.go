package component

type Camera struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Smoothness float64
	// LookOffset shifts the view ahead of the facing direction.
	LookOffset float64
}

var CameraComponent = NewComponent[Camera]()
