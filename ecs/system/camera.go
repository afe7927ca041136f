package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/tilemap/ecs"
	"github.com/milk9111/tilemap/ecs/component"
)

// CameraSystem pans the active camera.
type CameraSystem struct {
	camEntity ecs.Entity
	// Speed is in world units per update.
	Speed float32
}

func NewCameraSystem(speed float32) *CameraSystem {
	return &CameraSystem{Speed: speed}
}

// Update moves the camera by (dx, dy) steps of Speed.
func (cs *CameraSystem) Update(w *ecs.World, dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	if !ecs.IsAlive(w, cs.camEntity) {
		view, ok := SelectCamera(w)
		if !ok {
			return
		}
		cs.camEntity = view.Entity
	}

	t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.Translation = t.Translation.Add(mgl32.Vec3{dx * cs.Speed, dy * cs.Speed, 0})
}
