package component

import "github.com/helkite/aster/internal/core/ecs"

// Asteroid tags an asteroid entity with the ore item it carries.
type Asteroid struct {
	ItemID int
}

// Missile is a mining missile in flight toward a target.
type Missile struct {
	Target ecs.EntityID
	Damage int
}

// AsteroidField is the spawner's singleton state, attached to a dedicated
// entity and mutated only by the field system.
type AsteroidField struct {
	Asteroids []ecs.EntityID // roster of live asteroid handles
	Countdown int            // ticks until the next spawn
	Level     int            // difficulty, capped
	XRange    float64        // playfield half-width on the drift axis
}
