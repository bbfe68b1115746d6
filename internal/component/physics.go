package component

import "github.com/helkite/aster/internal/vmath"

// RigidBody carries a constant per-tick velocity. Physics reads velocity
// and writes Transform; nothing reads Transform back into velocity.
type RigidBody struct {
	Velocity vmath.Vec3
}

// Category is a collision category bitmask. A pair of colliders interacts
// only if each one's category is present in the other's mask.
type Category uint32

const (
	CategoryShip Category = 1 << iota
	CategoryAsteroid
	CategoryMissile

	CategoryAny Category = ^Category(0)
)

// ShapeKind discriminates the closed set of collider shapes.
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeCuboid
)

// Shape is a sphere or an axis-aligned cuboid. Collider placement ignores
// the owning transform's rotation, so cuboids stay axis-aligned.
type Shape struct {
	Kind        ShapeKind
	Radius      float64    // ShapeSphere
	HalfExtents vmath.Vec3 // ShapeCuboid
}

func Sphere(radius float64) Shape { return Shape{Kind: ShapeSphere, Radius: radius} }

func Cuboid(halfExtents vmath.Vec3) Shape {
	return Shape{Kind: ShapeCuboid, HalfExtents: halfExtents}
}

// Hitbox is a shape plus a local offset from the owning transform.
type Hitbox struct {
	Shape  Shape
	Offset vmath.Vec3
}

// Collider attaches a hitbox with category filtering to an entity.
type Collider struct {
	Hitbox   Hitbox
	Category Category // what this collider is
	Mask     Category // what it is allowed to hit
}
