package world

import (
	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/vmath"
)

// Mesh names shared by the spawn helpers and the display layer.
const (
	MeshAsteroid = "asteroid"
	MeshMissile  = "missile"
)

// SpawnAsteroid creates a drifting asteroid with the given velocity,
// hit points and drop item.
func (s *State) SpawnAsteroid(pos, vel vmath.Vec3, hp, itemID int) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Transforms.Set(id, component.NewTransform(pos.X, pos.Y, pos.Z))
	s.Models.Set(id, component.NewModel(s.Meshes.Register(MeshAsteroid)))
	s.Bodies.Set(id, component.RigidBody{Velocity: vel})
	s.Colliders.Set(id, component.Collider{
		Hitbox:   component.Hitbox{Shape: component.Sphere(0.5)},
		Category: component.CategoryAsteroid,
		Mask:     component.CategoryShip | component.CategoryMissile,
	})
	s.Healths.Set(id, component.Health{HP: hp})
	s.Asteroids.Set(id, component.Asteroid{ItemID: itemID})
	return id
}

// SpawnField creates the asteroid field spawner entity. The countdown
// starts expired so the first asteroid appears on the first field tick.
func (s *State) SpawnField(xRange float64) ecs.EntityID {
	id := s.World.CreateEntity()
	s.Fields.Set(id, &component.AsteroidField{
		XRange: xRange,
	})
	return id
}

// SpawnMissile creates a mining missile at pos heading toward the
// target's current position.
func (s *State) SpawnMissile(pos vmath.Vec3, target ecs.EntityID, speed float64, damage int, radius float64) ecs.EntityID {
	vel := vmath.Vec3{}
	if tf, ok := s.Transforms.Get(target); ok {
		delta := tf.Position.Sub(pos)
		if delta.LenSq() > 0 {
			vel = delta.Normalized().Scale(speed)
		}
	}

	id := s.World.CreateEntity()
	s.Transforms.Set(id, component.NewTransform(pos.X, pos.Y, pos.Z))
	s.Models.Set(id, component.NewModel(s.Meshes.Register(MeshMissile)))
	s.Bodies.Set(id, component.RigidBody{Velocity: vel})
	s.Colliders.Set(id, component.Collider{
		Hitbox:   component.Hitbox{Shape: component.Sphere(radius)},
		Category: component.CategoryMissile,
		Mask:     component.CategoryAsteroid,
	})
	s.Missiles.Set(id, &component.Missile{Target: target, Damage: damage})
	return id
}
