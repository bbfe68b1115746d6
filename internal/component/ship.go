package component

import "github.com/helkite/aster/internal/core/ecs"

// Ship is the aggregate a block belongs to. Heat is the shared per-ship
// resource: lasers add to it, coolers subtract, floored at zero. The ship
// does not enumerate its blocks; blocks hold the back-reference.
type Ship struct {
	Heat float64
}

// Tile is a block's grid position on its ship.
type Tile struct {
	X, Y int
}

// BlockEntity is the back-reference from a block entity to its owning
// ship. Non-owning: used for lookup only, never destruction propagation.
type BlockEntity struct {
	Ship    ecs.EntityID
	Tile    Tile
	BlockID int
}

// Health is integer hit points. An entity with Health at or below zero is
// marked for removal by the death system.
type Health struct {
	HP int
}

// Damage reduces hit points; callers check Dead afterwards.
func (h *Health) Damage(n int) { h.HP -= n }

func (h Health) Dead() bool { return h.HP <= 0 }
