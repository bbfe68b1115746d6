package component

import "github.com/helkite/aster/internal/render"

// Model associates an entity with a mesh and, once the model-sync system
// has observed the insertion, a render handle. The handle is borrowed
// from the external render manager; it is released by the cleanup system
// before the entity is deleted.
type Model struct {
	Mesh   render.MeshID
	Handle render.ModelID // zero until model-sync creates it
}

func NewModel(mesh render.MeshID) Model {
	return Model{Mesh: mesh}
}

// HasHandle reports whether a render handle has been created.
func (m Model) HasHandle() bool { return m.Handle != 0 }
