package system

import (
	"time"

	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/render"
	"github.com/helkite/aster/internal/world"
)

// ModelSyncSystem mirrors simulation state into the render backend. It
// owns two independent change readers: model insertions allocate render
// handles, transform modifications push fresh matrices to entities that
// already have one. Insertions run first so an entity spawned and moved
// in the same tick gets its handle before the move is applied.
type ModelSyncSystem struct {
	st  *world.State
	mgr render.Manager

	modelReader *ecs.ChangeReader
	tfReader    *ecs.ChangeReader
}

func NewModelSyncSystem(st *world.State, mgr render.Manager) *ModelSyncSystem {
	return &ModelSyncSystem{
		st:          st,
		mgr:         mgr,
		modelReader: st.Models.NewReader(),
		tfReader:    st.Transforms.NewReader(),
	}
}

func (s *ModelSyncSystem) Update(time.Duration) {
	// Insertion pass: allocate handles for new models.
	for _, ch := range s.st.Models.Read(s.modelReader) {
		if ch.Kind != ecs.ChangeInserted {
			continue
		}
		model, ok := s.st.Models.Get(ch.Entity)
		if !ok || model.HasHandle() {
			continue
		}
		tf, ok := s.st.Transforms.Get(ch.Entity)
		if !ok {
			continue
		}
		model.Handle = s.mgr.CreateModel(model.Mesh, tf.Matrix())
		s.st.Models.Set(ch.Entity, model)
	}

	// Modification pass: push matrices for moved entities. Entities
	// without a model or without a handle yet are skipped.
	for _, ch := range s.st.Transforms.Read(s.tfReader) {
		if ch.Kind != ecs.ChangeModified {
			continue
		}
		model, ok := s.st.Models.Get(ch.Entity)
		if !ok || !model.HasHandle() {
			continue
		}
		tf, ok := s.st.Transforms.Get(ch.Entity)
		if !ok {
			continue
		}
		s.mgr.UpdateModel(model.Mesh, model.Handle, tf.Matrix())
	}
}
