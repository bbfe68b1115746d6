package component

import "github.com/helkite/aster/internal/vmath"

// Transform is an entity's position, rotation and non-uniform scale in
// world space. Stored change-tracked: every write must go through the
// tracked store so the model-sync system observes it the same tick.
type Transform struct {
	Position vmath.Vec3
	Rotation vmath.Quat
	Scale    vmath.Vec3
}

// NewTransform returns a transform at the given position with identity
// rotation and unit scale.
func NewTransform(x, y, z float64) Transform {
	return Transform{
		Position: vmath.V3(x, y, z),
		Rotation: vmath.QuatIdentity(),
		Scale:    vmath.V3(1, 1, 1),
	}
}

// WithRotationZ returns a copy rotated about +z by angle radians.
func (t Transform) WithRotationZ(angle float64) Transform {
	t.Rotation = vmath.QuatFromAngleZ(angle)
	return t
}

// Matrix composes the world matrix: translation × rotation × scale.
func (t Transform) Matrix() vmath.Mat4 {
	return vmath.TRS(t.Position, t.Rotation, t.Scale)
}
