package render

import "fmt"

// MeshRegistry assigns stable integer ids to mesh names at boot. Frozen
// once the world is built; the core only ever reads from it.
type MeshRegistry struct {
	byName map[string]MeshID
	names  []string
}

func NewMeshRegistry() *MeshRegistry {
	return &MeshRegistry{byName: make(map[string]MeshID, 32)}
}

// Register returns the id for name, registering it on first use.
func (r *MeshRegistry) Register(name string) MeshID {
	if id, ok := r.byName[name]; ok {
		return id
	}
	id := MeshID(len(r.names))
	r.byName[name] = id
	r.names = append(r.names, name)
	return id
}

// Lookup resolves a registered mesh name. Unknown names are a content
// error at boot time.
func (r *MeshRegistry) Lookup(name string) (MeshID, error) {
	id, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown mesh %q", name)
	}
	return id, nil
}

// Name returns the mesh name for an id, or "" if out of range.
func (r *MeshRegistry) Name(id MeshID) string {
	if int(id) < 0 || int(id) >= len(r.names) {
		return ""
	}
	return r.names[id]
}

func (r *MeshRegistry) Count() int { return len(r.names) }
