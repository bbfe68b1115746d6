// Package physics provides the broad-phase queries the combat systems
// use: nearest-hit raycasts and sphere overlap scans over a flat
// snapshot of collidable bodies. Shapes are spheres and axis-aligned
// cuboids; entity rotation is ignored for collision purposes.
package physics

import (
	"math"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/vmath"
)

// Body is one collidable entity as seen by a query: its shape placed at
// the world-space center (transform position plus hitbox offset).
type Body struct {
	Entity   ecs.EntityID
	Shape    component.Shape
	Center   vmath.Vec3
	Category component.Category
	Mask     component.Category
}

// Hit is a raycast result.
type Hit struct {
	Entity   ecs.EntityID
	Distance float64
	Point    vmath.Vec3
}

// CanCollide reports whether the two bodies' category/mask pairs agree
// in both directions.
func CanCollide(a, b Body) bool {
	return a.Category&b.Mask != 0 && b.Category&a.Mask != 0
}

// BodiesOverlap reports whether two bodies' shapes intersect. Category
// filtering is the caller's concern; see CanCollide.
func BodiesOverlap(a, b Body) bool {
	switch {
	case a.Shape.Kind == component.ShapeSphere:
		return sphereOverlaps(a.Center, a.Shape.Radius, b.Shape, b.Center)
	case b.Shape.Kind == component.ShapeSphere:
		return sphereOverlaps(b.Center, b.Shape.Radius, a.Shape, a.Center)
	default:
		return cuboidsOverlap(a.Center, a.Shape.HalfExtents, b.Center, b.Shape.HalfExtents)
	}
}

// Raycast scans all bodies and returns the closest intersection
// strictly beyond the ray's origin. The ray passes through origin and
// target and extends past the target. Only bodies whose category
// matches categories are considered; entities listed in exclude are
// skipped.
func Raycast(bodies []Body, origin, target vmath.Vec3, categories component.Category, exclude ...ecs.EntityID) (Hit, bool) {
	dir := target.Sub(origin)
	if dir.LenSq() < rayEpsilon {
		return Hit{}, false
	}
	dir = dir.Normalized()

	best := Hit{Distance: math.Inf(1)}
	found := false
scan:
	for _, b := range bodies {
		if b.Category&categories == 0 {
			continue
		}
		for _, ex := range exclude {
			if b.Entity == ex {
				continue scan
			}
		}
		var (
			t  float64
			ok bool
		)
		switch b.Shape.Kind {
		case component.ShapeSphere:
			t, ok = raySphere(origin, dir, b.Center, b.Shape.Radius)
		case component.ShapeCuboid:
			t, ok = rayCuboid(origin, dir, b.Center, b.Shape.HalfExtents)
		}
		if ok && t < best.Distance {
			best = Hit{Entity: b.Entity, Distance: t, Point: origin.Add(dir.Scale(t))}
			found = true
		}
	}
	return best, found
}

// OverlapSphere returns every body whose shape intersects the sphere at
// center with the given radius, filtered by category and the exclude
// list. Results come back in body order.
func OverlapSphere(bodies []Body, center vmath.Vec3, radius float64, categories component.Category, exclude ...ecs.EntityID) []ecs.EntityID {
	var out []ecs.EntityID
scan:
	for _, b := range bodies {
		if b.Category&categories == 0 {
			continue
		}
		for _, ex := range exclude {
			if b.Entity == ex {
				continue scan
			}
		}
		if sphereOverlaps(center, radius, b.Shape, b.Center) {
			out = append(out, b.Entity)
		}
	}
	return out
}
