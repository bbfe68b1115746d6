package system

import (
	"math"
	"time"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/core/event"
	"github.com/helkite/aster/internal/input"
	"github.com/helkite/aster/internal/physics"
	"github.com/helkite/aster/internal/vmath"
	"github.com/helkite/aster/internal/world"
)

// Laser turrets fire continuously while the laser action is held with a
// live target locked. Each firing turret heats its ship, damages every
// asteroid caught in the blast radius around the aim point, and attaches
// a visible beam line. Beams from the previous tick are cleared first.
type LaserSystem struct {
	st  *world.State
	cfg config.LaserConfig
}

func NewLaserSystem(st *world.State, cfg config.LaserConfig) *LaserSystem {
	return &LaserSystem{st: st, cfg: cfg}
}

// beamOffset lifts the beam origin above the turret block.
var beamOffset = vmath.V3(0, 0, 0.4)

var beamColor = vmath.V3(1, 0.2, 0.2)

func (s *LaserSystem) Update(time.Duration) {
	s.clearBeams()

	target, locked := s.st.Input.TargetOf()
	if !locked || s.st.Input.Action != input.ActionLaser || !s.st.World.Alive(target) {
		return
	}
	aim, ok := s.st.Transforms.Get(target)
	if !ok {
		return
	}

	var bodies []physics.Body
	if s.cfg.RequireLineOfSight {
		bodies = s.st.CollisionBodies()
	}

	s.st.Lasers.Each(func(id ecs.EntityID, _ *component.Laser) {
		tf, ok := s.st.Transforms.Get(id)
		if !ok {
			return
		}

		// Turn the turret toward the target and push the beam origin
		// out of the barrel along the horizontal firing angle.
		delta := aim.Position.Sub(tf.Position)
		angle := math.Atan2(delta.Y, delta.X)
		tf.Rotation = vmath.QuatFromAngleZ(angle)
		s.st.Transforms.Set(id, tf)

		from := tf.Position.Add(beamOffset)
		from.X += math.Cos(angle) * s.cfg.Radius
		from.Y += math.Sin(angle) * s.cfg.Radius

		if s.cfg.RequireLineOfSight {
			hit, found := physics.Raycast(bodies, from, aim.Position, component.CategoryAsteroid)
			if !found || hit.Entity != target {
				return
			}
		}

		s.applyHeat(id)
		s.applyDamage(aim.Position, target)
		s.st.Lines.Set(id, &component.Line{From: from, To: aim.Position, Color: beamColor})
		event.Emit(s.st.Bus, event.LaserFired{Laser: id, Target: target})
	})
}

// applyHeat charges the firing turret's ship.
func (s *LaserSystem) applyHeat(laser ecs.EntityID) {
	blk, ok := s.st.Blocks.Get(laser)
	if !ok {
		return
	}
	if ship := s.st.Ships.Ptr(blk.Ship); ship != nil {
		ship.Heat += s.cfg.HeatPerShot
	}
}

// applyDamage hurts every asteroid within the blast radius of the aim
// point. The locked target is always included even when the radius scan
// misses it by a hair.
func (s *LaserSystem) applyDamage(aim vmath.Vec3, target ecs.EntityID) {
	hit := map[ecs.EntityID]struct{}{target: {}}
	bodies := s.st.CollisionBodies()
	for _, id := range physics.OverlapSphere(bodies, aim, s.cfg.Radius, component.CategoryAsteroid) {
		hit[id] = struct{}{}
	}
	for id := range hit {
		if h := s.st.Healths.Ptr(id); h != nil {
			h.Damage(s.cfg.Damage)
		}
	}
}

func (s *LaserSystem) clearBeams() {
	var stale []ecs.EntityID
	s.st.Lines.Each(func(id ecs.EntityID, _ *component.Line) {
		stale = append(stale, id)
	})
	for _, id := range stale {
		s.st.Lines.Remove(id)
	}
}
