package system

import (
	"time"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/world"
)

// PhysicsSystem integrates rigid body velocities into transforms.
// Writes go through the tracked store so render sync observes every
// moved entity.
type PhysicsSystem struct {
	st *world.State
}

func NewPhysicsSystem(st *world.State) *PhysicsSystem {
	return &PhysicsSystem{st: st}
}

func (s *PhysicsSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	s.st.Bodies.Each(func(id ecs.EntityID, body *component.RigidBody) {
		tf, ok := s.st.Transforms.Get(id)
		if !ok {
			return
		}
		if body.Velocity.LenSq() == 0 {
			return
		}
		tf.Position = tf.Position.Add(body.Velocity.Scale(sec))
		s.st.Transforms.Set(id, tf)
	})
}
