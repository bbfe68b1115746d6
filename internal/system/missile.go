package system

import (
	"time"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/physics"
	"github.com/helkite/aster/internal/vmath"
	"github.com/helkite/aster/internal/world"
)

// missileRange is the distance from the origin beyond which a stray
// missile is reclaimed.
const missileRange = 100.0

// Missiles steer toward their target each tick and detonate on contact,
// applying their damage to the struck asteroid. Missiles whose target
// died keep flying straight until they hit something or leave the field.
type MissileSystem struct {
	st  *world.State
	cfg config.MinerConfig
}

func NewMissileSystem(st *world.State, cfg config.MinerConfig) *MissileSystem {
	return &MissileSystem{st: st, cfg: cfg}
}

func (s *MissileSystem) Update(time.Duration) {
	bodies := s.st.CollisionBodies()

	s.st.Missiles.Each(func(id ecs.EntityID, m *component.Missile) {
		tf, ok := s.st.Transforms.Get(id)
		if !ok {
			return
		}
		if tf.Position.LenSq() > missileRange*missileRange {
			s.st.World.MarkForDestruction(id)
			return
		}

		s.steer(id, m, tf.Position)

		col, ok := s.st.Colliders.Get(id)
		if !ok {
			return
		}
		self := physics.Body{
			Entity:   id,
			Shape:    col.Hitbox.Shape,
			Center:   tf.Position.Add(col.Hitbox.Offset),
			Category: col.Category,
			Mask:     col.Mask,
		}
		for _, b := range bodies {
			if b.Entity == id || !physics.CanCollide(self, b) {
				continue
			}
			if !physics.BodiesOverlap(self, b) {
				continue
			}
			if h := s.st.Healths.Ptr(b.Entity); h != nil {
				h.Damage(m.Damage)
			}
			s.st.World.MarkForDestruction(id)
			return
		}
	})
}

// steer re-aims the missile at its target's current position. A dead
// target leaves the velocity untouched.
func (s *MissileSystem) steer(id ecs.EntityID, m *component.Missile, pos vmath.Vec3) {
	if !s.st.World.Alive(m.Target) {
		return
	}
	aim, ok := s.st.Transforms.Get(m.Target)
	if !ok {
		return
	}
	delta := aim.Position.Sub(pos)
	if delta.LenSq() == 0 {
		return
	}
	if body := s.st.Bodies.Ptr(id); body != nil {
		body.Velocity = delta.Normalized().Scale(s.cfg.MissileSpeed)
	}
}
