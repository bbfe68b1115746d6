package system

import (
	"time"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/world"
)

// Coolers bleed heat off their ship every tick, floored at zero.
type CoolerSystem struct {
	st  *world.State
	cfg config.CoolerConfig
}

func NewCoolerSystem(st *world.State, cfg config.CoolerConfig) *CoolerSystem {
	return &CoolerSystem{st: st, cfg: cfg}
}

func (s *CoolerSystem) Update(time.Duration) {
	s.st.Coolers.Each(func(id ecs.EntityID, _ *component.Cooler) {
		blk, ok := s.st.Blocks.Get(id)
		if !ok {
			return
		}
		ship := s.st.Ships.Ptr(blk.Ship)
		if ship == nil {
			return
		}
		ship.Heat -= s.cfg.Rate
		if ship.Heat < 0 {
			ship.Heat = 0
		}
	})
}
