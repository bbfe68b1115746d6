package render

import "github.com/helkite/aster/internal/vmath"

// MeshID identifies a mesh registered with the render-resource manager.
type MeshID int

// ModelID is an opaque handle for one GPU-resident (or terminal-resident)
// instance of a mesh. The zero value means "no handle".
type ModelID uint32

// Manager is the external render-resource manager contract. The
// simulation core calls it from exactly two places: the model-sync system
// (create/update) and the cleanup system (remove). It never reads state
// back; failures are fatal upstream, not surfaced here.
type Manager interface {
	CreateModel(mesh MeshID, world vmath.Mat4) ModelID
	UpdateModel(mesh MeshID, id ModelID, world vmath.Mat4)
	RemoveModel(mesh MeshID, id ModelID)
}
