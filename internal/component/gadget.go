package component

import "github.com/helkite/aster/internal/vmath"

// Gadget state. Each kind is a small sparse component advanced by its own
// system; the systems share only the owning ship's heat.

// Miner is the mining turret's charge state machine: it counts ticks
// until the counter passes the charge threshold, then fires on command
// and resets.
type Miner struct {
	Charge int // ticks accumulated toward the fire threshold
}

// Laser marks a laser turret block. The laser has no per-tick state of
// its own; its beam is the Line component it attaches while firing.
type Laser struct{}

// Cooler marks a cooler block.
type Cooler struct{}

// Line is a visible beam segment from a laser turret to its target.
type Line struct {
	From  vmath.Vec3
	To    vmath.Vec3
	Color vmath.Vec3
}
