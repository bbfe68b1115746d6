package ecs

// Maintainable is implemented by stores that need a housekeeping pass at
// the end of the tick (change-log compaction).
type Maintainable interface {
	Maintain()
}

// Registry tracks all component stores for bulk cleanup on entity destroy
// and for end-of-tick maintenance.
type Registry struct {
	stores     []Removable
	maintained []Maintainable
}

func NewRegistry() *Registry {
	return &Registry{stores: make([]Removable, 0, 16)}
}

// Register adds a component store. Stores that also implement Maintainable
// are included in the maintenance pass.
func (r *Registry) Register(store Removable) {
	r.stores = append(r.stores, store)
	if m, ok := store.(Maintainable); ok {
		r.maintained = append(r.maintained, m)
	}
}

// RemoveAll clears the given entity from every registered component store.
func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}

// MaintainAll runs the housekeeping pass on every maintained store.
func (r *Registry) MaintainAll() {
	for _, m := range r.maintained {
		m.Maintain()
	}
}
