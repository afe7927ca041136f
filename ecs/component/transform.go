package component

import "github.com/go-gl/mathgl/mgl32"

// Transform places an entity in world space. A zero Scale is treated as 1.
type Transform struct {
	Translation mgl32.Vec3
	Scale       mgl32.Vec3
	// Rotation around the Z axis in radians.
	Rotation float32
}

// Matrix returns the local-to-world matrix T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	scale := t.Scale
	for i := range scale {
		if scale[i] == 0 {
			scale[i] = 1
		}
	}
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation)).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

var TransformComponent = NewComponent[Transform]()
