package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/tilemap/common"
	"github.com/milk9111/tilemap/ecs"
	"github.com/milk9111/tilemap/ecs/component"
)

// CameraView is the projection and view a pass renders with.
type CameraView struct {
	Entity     ecs.Entity
	Projection mgl32.Mat4
	View       mgl32.Mat4
}

// SelectCamera picks the world's active camera when it is alive and carries a
// Camera and Transform, otherwise the first entity that does. With no camera
// both matrices are identity.
func SelectCamera(w *ecs.World) (CameraView, bool) {
	if e, ok := w.ActiveCamera(); ok {
		if view, ok := cameraView(w, e); ok {
			return view, true
		}
	}

	var (
		found CameraView
		ok    bool
	)
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, cam *component.Camera, t *component.Transform) {
			if ok {
				return
			}
			found = CameraView{Entity: e, Projection: cam.Projection, View: common.SafeInverse(t.Matrix())}
			ok = true
		})
	if ok {
		return found, true
	}
	return CameraView{Projection: mgl32.Ident4(), View: mgl32.Ident4()}, false
}

func cameraView(w *ecs.World, e ecs.Entity) (CameraView, bool) {
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return CameraView{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return CameraView{}, false
	}
	return CameraView{Entity: e, Projection: cam.Projection, View: common.SafeInverse(t.Matrix())}, true
}
