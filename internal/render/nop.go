package render

import "github.com/helkite/aster/internal/vmath"

// NopManager satisfies Manager without a backend. Used headless and in
// tests that only care about simulation state.
type NopManager struct {
	next ModelID
}

func NewNopManager() *NopManager { return &NopManager{} }

func (m *NopManager) CreateModel(MeshID, vmath.Mat4) ModelID {
	m.next++
	return m.next
}

func (m *NopManager) UpdateModel(MeshID, ModelID, vmath.Mat4) {}

func (m *NopManager) RemoveModel(MeshID, ModelID) {}
