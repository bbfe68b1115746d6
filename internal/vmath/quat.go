package vmath

import "math"

// Quat is a rotation quaternion (w + xi + yj + zk). Identity is {1,0,0,0}.
type Quat struct {
	W, X, Y, Z float64
}

func QuatIdentity() Quat { return Quat{W: 1} }

// QuatFromAngleZ builds a rotation of angle radians about the +z axis.
func QuatFromAngleZ(angle float64) Quat {
	half := angle / 2
	return Quat{W: math.Cos(half), Z: math.Sin(half)}
}

// AngleZ extracts the rotation angle about +z. Only meaningful for
// quaternions produced by QuatFromAngleZ; hitbox placement ignores
// rotation so nothing else is needed.
func (q Quat) AngleZ() float64 {
	return 2 * math.Atan2(q.Z, q.W)
}

// Mat4 returns the 3x3 rotation embedded in a 4x4 matrix.
func (q Quat) Mat4() Mat4 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	m := Mat4Identity()
	m[0], m[1], m[2] = 1-(yy+zz), xy+wz, xz-wy
	m[4], m[5], m[6] = xy-wz, 1-(xx+zz), yz+wx
	m[8], m[9], m[10] = xz+wy, yz-wx, 1-(xx+yy)
	return m
}
