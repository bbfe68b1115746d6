package vmath

// Mat4 is a column-major 4x4 matrix, the layout render back-ends expect.
// Element (row r, col c) lives at index c*4+r.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Mat4Translation returns a translation matrix.
func Mat4Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[12], m[13], m[14] = t.X, t.Y, t.Z
	return m
}

// Mat4Scale returns a non-uniform scale matrix.
func Mat4Scale(s Vec3) Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = s.X, s.Y, s.Z, 1
	return m
}

// Mul returns a*b (apply b first, then a).
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[k*4+r] * b[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TRS composes translation × rotation × non-uniform scale, the world
// matrix order the render manager consumes.
func TRS(translation Vec3, rotation Quat, scale Vec3) Mat4 {
	return Mat4Translation(translation).Mul(rotation.Mat4()).Mul(Mat4Scale(scale))
}

// Translation extracts the translation column.
func (a Mat4) Translation() Vec3 {
	return Vec3{a[12], a[13], a[14]}
}
