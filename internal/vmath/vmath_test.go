package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -2, 1)

	require.Equal(t, V3(5, 0, 4), a.Add(b))
	require.Equal(t, V3(-3, 4, 2), a.Sub(b))
	require.Equal(t, V3(2, 4, 6), a.Scale(2))
	require.InDelta(t, 3.0, a.Dot(b), 1e-12)
	require.InDelta(t, 14.0, a.LenSq(), 1e-12)
	require.InDelta(t, math.Sqrt(14), a.Len(), 1e-12)

	n := V3(3, 0, 4).Normalized()
	require.InDelta(t, 1.0, n.Len(), 1e-12)
	require.InDelta(t, 0.6, n.X, 1e-12)

	require.InDelta(t, 5.0, Dist(V3(0, 0, 0), V3(3, 4, 0)), 1e-12)
}

func TestQuatAngleZ(t *testing.T) {
	for _, angle := range []float64{0, math.Pi / 4, -math.Pi / 2, 1.3} {
		q := QuatFromAngleZ(angle)
		require.InDelta(t, angle, q.AngleZ(), 1e-12)
	}
	require.Equal(t, QuatIdentity(), QuatFromAngleZ(0))
}

func TestMat4(t *testing.T) {
	t.Run("translation composes and extracts", func(t *testing.T) {
		m := Mat4Translation(V3(1, 2, 3)).Mul(Mat4Translation(V3(4, 5, 6)))
		require.Equal(t, V3(5, 7, 9), m.Translation())
	})

	t.Run("trs applies scale then rotation then translation", func(t *testing.T) {
		m := TRS(V3(10, 0, 0), QuatFromAngleZ(math.Pi/2), V3(2, 2, 2))
		require.Equal(t, V3(10, 0, 0), m.Translation())

		// Rotating scaled +x by 90 degrees about z lands on +y.
		p := m.Mul(Mat4Translation(V3(1, 0, 0))).Translation()
		require.InDelta(t, 10.0, p.X, 1e-12)
		require.InDelta(t, 2.0, p.Y, 1e-12)
		require.InDelta(t, 0.0, p.Z, 1e-12)
	})

	t.Run("identity is neutral", func(t *testing.T) {
		m := Mat4Translation(V3(7, 8, 9))
		require.Equal(t, m, Mat4Identity().Mul(m))
		require.Equal(t, m, m.Mul(Mat4Identity()))
	})
}
