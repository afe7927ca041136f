package assets

import "fmt"

// Handle refers to a slot in a Storage. The zero Handle refers to nothing.
type Handle struct {
	id  uint32
	gen uint32
}

func (h Handle) Valid() bool {
	return h.id != 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.id, h.gen)
}

type slot[T any] struct {
	gen    uint32
	live   bool
	loaded bool
	value  T
}

// Storage holds assets of one type. A handle may be reserved before its asset
// has finished loading; Get only succeeds once the asset is set. Storage is
// not safe for concurrent use and belongs to the render thread.
type Storage[T any] struct {
	slots []slot[T]
	free  []uint32
}

func NewStorage[T any]() *Storage[T] {
	// slot 0 stays unused so the zero Handle never resolves.
	return &Storage[T]{slots: make([]slot[T], 1)}
}

// Reserve allocates a handle whose asset is not loaded yet.
func (s *Storage[T]) Reserve() Handle {
	var id uint32
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot[T]{})
		id = uint32(len(s.slots) - 1)
	}
	sl := &s.slots[id]
	sl.live = true
	sl.loaded = false
	return Handle{id: id, gen: sl.gen}
}

// Insert stores a loaded asset under a new handle.
func (s *Storage[T]) Insert(v T) Handle {
	h := s.Reserve()
	s.Set(h, v)
	return h
}

// Set fills a reserved handle. It reports false when the handle was released
// in the meantime, in which case v is dropped.
func (s *Storage[T]) Set(h Handle, v T) bool {
	sl, ok := s.slot(h)
	if !ok {
		return false
	}
	sl.value = v
	sl.loaded = true
	return true
}

// Get returns the asset for h if it is live and loaded.
func (s *Storage[T]) Get(h Handle) (T, bool) {
	var zero T
	sl, ok := s.slot(h)
	if !ok || !sl.loaded {
		return zero, false
	}
	return sl.value, true
}

// Loaded reports whether h resolves to a loaded asset.
func (s *Storage[T]) Loaded(h Handle) bool {
	_, ok := s.Get(h)
	return ok
}

// IsLive reports whether h has not been released.
func (s *Storage[T]) IsLive(h Handle) bool {
	_, ok := s.slot(h)
	return ok
}

// Release frees h. Later Set calls for h are ignored.
func (s *Storage[T]) Release(h Handle) {
	sl, ok := s.slot(h)
	if !ok {
		return
	}
	var zero T
	sl.value = zero
	sl.live = false
	sl.loaded = false
	sl.gen++
	s.free = append(s.free, h.id)
}

// Len returns the number of live handles.
func (s *Storage[T]) Len() int {
	return len(s.slots) - 1 - len(s.free)
}

func (s *Storage[T]) slot(h Handle) (*slot[T], bool) {
	if s == nil || h.id == 0 || int(h.id) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[h.id]
	if !sl.live || sl.gen != h.gen {
		return nil, false
	}
	return sl, true
}
