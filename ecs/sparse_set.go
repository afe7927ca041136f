package ecs

import "slices"

// sparseSet stores one component type keyed by entity id. Values are kept
// densely packed; removal swaps the last element into the hole.
type sparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

func (s *sparseSet) index(e Entity) (int, bool) {
	id := int(e.id())
	if id >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *sparseSet) has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

func (s *sparseSet) get(e Entity) (any, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet) set(e Entity, v any) {
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) <= id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id] = len(s.dense) - 1
}

func (s *sparseSet) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()] = idx

	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[e.id()] = -1
	return true
}

func (s *sparseSet) removeID(id entityID) {
	if int(id) >= len(s.sparse) {
		return
	}
	idx := s.sparse[id]
	if idx < 0 || idx >= len(s.dense) {
		return
	}
	s.remove(s.dense[idx])
}

// sorted returns the stored entities in ascending id order.
func (s *sparseSet) sorted() []Entity {
	out := slices.Clone(s.dense)
	slices.SortFunc(out, func(a, b Entity) int {
		return int(a.id()) - int(b.id())
	})
	return out
}
