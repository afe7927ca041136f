package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/tilemap/config"
	"github.com/milk9111/tilemap/ecs"
	"github.com/milk9111/tilemap/ecs/component"
)

// NewCamera spawns an orthographic camera and makes it the active one.
func NewCamera(w *ecs.World, spec config.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)

	cam := component.NewOrthographicCamera(spec.Left, spec.Right, spec.Bottom, spec.Top)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &cam); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		Translation: mgl32.Vec3{spec.X, spec.Y, 0},
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	w.SetActiveCamera(camera)
	return camera, nil
}
