package physics

import (
	"math"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/vmath"
)

const rayEpsilon = 1e-9

// raySphere returns the smallest positive ray parameter at which the ray
// origin+t*dir (dir normalized) enters the sphere, or ok=false.
func raySphere(origin, dir, center vmath.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.LenSq() - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	if t := -b - sq; t > rayEpsilon {
		return t, true
	}
	// Origin inside the sphere: the exit point still counts as a hit
	// strictly beyond the origin.
	if t := -b + sq; t > rayEpsilon {
		return t, true
	}
	return 0, false
}

// rayCuboid is the slab test against an axis-aligned box.
func rayCuboid(origin, dir, center, halfExtents vmath.Vec3) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	lo := center.Sub(halfExtents)
	hi := center.Add(halfExtents)

	for axis := 0; axis < 3; axis++ {
		o, d := pick(origin, axis), pick(dir, axis)
		l, h := pick(lo, axis), pick(hi, axis)
		if math.Abs(d) < rayEpsilon {
			if o < l || o > h {
				return 0, false
			}
			continue
		}
		t1 := (l - o) / d
		t2 := (h - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin > rayEpsilon {
		return tmin, true
	}
	if tmax > rayEpsilon {
		return tmax, true
	}
	return 0, false
}

func pick(v vmath.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// cuboidsOverlap is the axis-aligned box intersection test.
func cuboidsOverlap(aCenter, aHalf, bCenter, bHalf vmath.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		gap := math.Abs(pick(aCenter, axis) - pick(bCenter, axis))
		if gap > pick(aHalf, axis)+pick(bHalf, axis) {
			return false
		}
	}
	return true
}

// sphereOverlaps reports whether a query sphere intersects the shape
// placed at center.
func sphereOverlaps(qCenter vmath.Vec3, qRadius float64, shape component.Shape, center vmath.Vec3) bool {
	switch shape.Kind {
	case component.ShapeSphere:
		r := qRadius + shape.Radius
		return qCenter.Sub(center).LenSq() <= r*r
	case component.ShapeCuboid:
		// Distance from the sphere center to the box, per axis.
		lo := center.Sub(shape.HalfExtents)
		hi := center.Add(shape.HalfExtents)
		var distSq float64
		for axis := 0; axis < 3; axis++ {
			p := pick(qCenter, axis)
			if l := pick(lo, axis); p < l {
				distSq += (l - p) * (l - p)
			} else if h := pick(hi, axis); p > h {
				distSq += (p - h) * (p - h)
			}
		}
		return distSq <= qRadius*qRadius
	}
	return false
}
