package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSafeInverse(t *testing.T) {
	m := mgl32.Translate3D(10, -4, 2)
	inv := SafeInverse(m)
	if got := inv.Mul4(m); !got.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("SafeInverse(m) * m = %v, want identity", got)
	}

	singular := mgl32.Scale3D(0, 1, 1)
	if got := SafeInverse(singular); got != mgl32.Ident4() {
		t.Errorf("SafeInverse(singular) = %v, want identity", got)
	}
}

func TestClipToScreen(t *testing.T) {
	cases := []struct {
		clip   mgl32.Vec4
		wx, wy float32
	}{
		{mgl32.Vec4{-1, 1, 0, 1}, 0, 0},
		{mgl32.Vec4{1, -1, 0, 1}, 200, 100},
		{mgl32.Vec4{0, 0, 0, 1}, 100, 50},
		{mgl32.Vec4{2, 2, 0, 2}, 200, 0},
	}
	for _, c := range cases {
		x, y := ClipToScreen(c.clip, 200, 100)
		if x != c.wx || y != c.wy {
			t.Errorf("ClipToScreen(%v) = (%v, %v), want (%v, %v)", c.clip, x, y, c.wx, c.wy)
		}
	}
}
