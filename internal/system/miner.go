package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/core/event"
	"github.com/helkite/aster/internal/input"
	"github.com/helkite/aster/internal/vmath"
	"github.com/helkite/aster/internal/world"
)

// Miner turrets charge one tick at a time. A fully charged turret fires
// a mining missile when the player holds the mining action with a live
// target locked; firing resets the charge.
type MinerSystem struct {
	st  *world.State
	cfg config.MinerConfig
	log *zap.Logger
}

func NewMinerSystem(st *world.State, cfg config.MinerConfig) *MinerSystem {
	return &MinerSystem{st: st, cfg: cfg, log: st.Log.Named("miner")}
}

// muzzleOffset lifts the launch point above the turret block.
var muzzleOffset = vmath.V3(0, 0, 0.5)

func (s *MinerSystem) Update(time.Duration) {
	target, locked := s.st.Input.TargetOf()
	canFire := locked &&
		s.st.Input.Action == input.ActionMining &&
		s.st.World.Alive(target)

	s.st.Miners.Each(func(id ecs.EntityID, m *component.Miner) {
		if m.Charge <= s.cfg.ChargeTicks {
			m.Charge++
			return
		}
		if !canFire {
			return
		}
		tf, ok := s.st.Transforms.Get(id)
		if !ok {
			return
		}
		from := tf.Position.Add(muzzleOffset)
		missile := s.st.SpawnMissile(from, target, s.cfg.MissileSpeed, s.cfg.MissileDamage, s.cfg.MissileRadius)
		m.Charge = 0

		event.Emit(s.st.Bus, event.MissileLaunched{Turret: id, Missile: missile, Target: target})
		s.log.Debug("missile launched",
			zap.Uint64("turret", uint64(id)),
			zap.Uint64("target", uint64(target)))
	})
}
