package world

import (
	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/physics"
)

// CollisionBodies snapshots every collidable entity for physics
// queries. Entities whose transform is missing are skipped. The slice
// is rebuilt on each call; queries within one system share a snapshot.
func (s *State) CollisionBodies() []physics.Body {
	bodies := make([]physics.Body, 0, s.Colliders.Len())
	s.Colliders.Each(func(id ecs.EntityID, col *component.Collider) {
		tf, ok := s.Transforms.Get(id)
		if !ok {
			return
		}
		bodies = append(bodies, physics.Body{
			Entity:   id,
			Shape:    col.Hitbox.Shape,
			Center:   tf.Position.Add(col.Hitbox.Offset),
			Category: col.Category,
			Mask:     col.Mask,
		})
	})
	return bodies
}
