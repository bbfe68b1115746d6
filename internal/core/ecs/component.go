package ecs

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Store is a dense sparse-set component store for kinds the simulation
// iterates every tick. Components live in a contiguous slice; iteration
// order is insertion order, which keeps ticks deterministic. No reflect,
// no interface{} — pure generics.
type Store[T any] struct {
	index    map[EntityID]int
	entities []EntityID
	items    []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[EntityID]int, 256),
		entities: make([]EntityID, 0, 256),
		items:    make([]T, 0, 256),
	}
}

// Set inserts or replaces the component for an entity.
func (s *Store[T]) Set(id EntityID, c T) {
	if i, ok := s.index[id]; ok {
		s.items[i] = c
		return
	}
	s.index[id] = len(s.entities)
	s.entities = append(s.entities, id)
	s.items = append(s.items, c)
}

// Get returns a copy of the component. Absent entities (including stale
// handles) yield the zero value and false.
func (s *Store[T]) Get(id EntityID) (T, bool) {
	if i, ok := s.index[id]; ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer into the store for in-place mutation, or nil if
// absent. The pointer is invalidated by the next Set or Remove.
func (s *Store[T]) Ptr(id EntityID) *T {
	if i, ok := s.index[id]; ok {
		return &s.items[i]
	}
	return nil
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Remove deletes the component via swap-remove. Removing an absent entity
// is a no-op.
func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.items[i] = s.items[last]
		s.index[s.entities[i]] = i
	}
	s.entities = s.entities[:last]
	s.items = s.items[:last]
	delete(s.index, id)
}

func (s *Store[T]) Len() int { return len(s.entities) }

// Each visits every component in insertion order. The callback must not
// add or remove components of this kind.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i := range s.entities {
		fn(s.entities[i], &s.items[i])
	}
}

// All returns a copy of the entity list, safe to hold across mutations.
func (s *Store[T]) All() []EntityID {
	out := make([]EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

func (s *Store[T]) Clear() {
	s.index = make(map[EntityID]int, 256)
	s.entities = s.entities[:0]
	s.items = s.items[:0]
}

// SparseStore is a map-backed store for rarely-attached kinds (gadget
// state, the field singleton). Pointer semantics: callers mutate through
// the returned pointer.
type SparseStore[T any] struct {
	data map[EntityID]*T
}

func NewSparseStore[T any]() *SparseStore[T] {
	return &SparseStore[T]{data: make(map[EntityID]*T, 16)}
}

func (s *SparseStore[T]) Set(id EntityID, c *T) { s.data[id] = c }

func (s *SparseStore[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *SparseStore[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *SparseStore[T]) Remove(id EntityID) { delete(s.data, id) }

func (s *SparseStore[T]) Len() int { return len(s.data) }

func (s *SparseStore[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}
