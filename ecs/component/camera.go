package component

import "github.com/go-gl/mathgl/mgl32"

type Camera struct {
	Projection mgl32.Mat4
}

// NewOrthographicCamera returns a camera viewing the box left..right, bottom..top.
func NewOrthographicCamera(left, right, bottom, top float32) Camera {
	return Camera{Projection: mgl32.Ortho(left, right, bottom, top, -100, 100)}
}

var CameraComponent = NewComponent[Camera]()
