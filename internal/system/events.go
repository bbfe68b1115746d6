// Package system contains the per-tick gameplay systems. Each one
// implements the core system.System interface and is ordered by the
// runner at startup.
package system

import (
	"time"

	"github.com/helkite/aster/internal/core/event"
)

// EventSystem rotates the event bus at the start of the tick: events
// emitted during the previous tick are dispatched to subscribers now.
type EventSystem struct {
	bus *event.Bus
}

func NewEventSystem(bus *event.Bus) *EventSystem {
	return &EventSystem{bus: bus}
}

func (s *EventSystem) Update(time.Duration) {
	s.bus.SwapAndDispatch()
}
