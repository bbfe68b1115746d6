package system

import "time"

// System is the interface every per-tick system implements. Update runs
// synchronously once per tick; a system with no work is a no-op. There is
// no failure path: a system that cannot uphold its invariants panics,
// which aborts the process (programming error, not a runtime condition).
type System interface {
	Update(dt time.Duration)
}
