package common

import "github.com/go-gl/mathgl/mgl32"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// SafeInverse inverts m, returning the identity when m is singular.
func SafeInverse(m mgl32.Mat4) mgl32.Mat4 {
	if det := m.Det(); det == 0 || det != det {
		return mgl32.Ident4()
	}
	return m.Inv()
}

// ClipToScreen maps a clip-space position to pixel coordinates of a w x h target
// with a top-left origin.
func ClipToScreen(clip mgl32.Vec4, w, h int) (x, y float32) {
	cw := clip.W()
	if cw == 0 {
		cw = 1
	}
	nx, ny := clip.X()/cw, clip.Y()/cw
	return (nx + 1) / 2 * float32(w), (1 - ny) / 2 * float32(h)
}
