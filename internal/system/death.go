package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/core/event"
	"github.com/helkite/aster/internal/world"
)

// DeathSystem marks every entity with depleted health for end-of-tick
// destruction and announces asteroid kills on the bus. It never destroys
// directly; the cleanup system owns the actual teardown.
type DeathSystem struct {
	st  *world.State
	log *zap.Logger
}

func NewDeathSystem(st *world.State) *DeathSystem {
	return &DeathSystem{st: st, log: st.Log.Named("death")}
}

func (s *DeathSystem) Update(time.Duration) {
	s.st.Healths.Each(func(id ecs.EntityID, h *component.Health) {
		if !h.Dead() {
			return
		}
		s.st.World.MarkForDestruction(id)
		if a, ok := s.st.Asteroids.Get(id); ok {
			event.Emit(s.st.Bus, event.AsteroidDestroyed{Asteroid: id, ItemID: a.ItemID})
			s.log.Debug("asteroid destroyed", zap.Uint64("entity", uint64(id)))
		}
	})
}
