package system

import (
	"time"

	"github.com/helkite/aster/internal/render"
	"github.com/helkite/aster/internal/world"
)

// CleanupSystem flushes the deferred destruction queue at the end of the
// tick. For each queued entity the render handle is released before the
// entity record is torn down, so the backend never holds a handle for a
// dead entity. Store maintenance runs last, after the flush.
type CleanupSystem struct {
	st  *world.State
	mgr render.Manager
}

func NewCleanupSystem(st *world.State, mgr render.Manager) *CleanupSystem {
	return &CleanupSystem{st: st, mgr: mgr}
}

func (s *CleanupSystem) Update(time.Duration) {
	for _, id := range s.st.World.DrainDestroyQueue() {
		if model, ok := s.st.Models.Get(id); ok && model.HasHandle() {
			s.mgr.RemoveModel(model.Mesh, model.Handle)
		}
		s.st.World.Destroy(id)
	}
	s.st.World.Maintain()
}
