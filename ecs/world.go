package ecs

import "github.com/milk9111/tilemap/ecs/component"

// World owns entities, their components and scene-wide resources.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet

	activeCamera Entity
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components. It returns false when e
// was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.removeID(e.id())
	}
	if w.activeCamera == e {
		w.activeCamera = 0
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities in ascending id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// SetActiveCamera designates the camera the render passes should prefer.
func (w *World) SetActiveCamera(e Entity) {
	if w == nil {
		return
	}
	w.activeCamera = e
}

// ActiveCamera returns the designated camera, if one is set and still alive.
func (w *World) ActiveCamera() (Entity, bool) {
	if w == nil || !w.activeCamera.Valid() || !w.entities.isAlive(w.activeCamera) {
		return 0, false
	}
	return w.activeCamera, true
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*sparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}
