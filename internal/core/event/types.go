package event

import "github.com/helkite/aster/internal/core/ecs"

// Domain events. Consumers: audio cues, logging, the HUD.

// LaserFired is emitted each tick a laser beam lands on its target.
type LaserFired struct {
	Laser  ecs.EntityID
	Target ecs.EntityID
}

// MissileLaunched is emitted when a mining turret releases a missile.
type MissileLaunched struct {
	Turret  ecs.EntityID
	Missile ecs.EntityID
	Target  ecs.EntityID
}

// AsteroidDestroyed is emitted when an asteroid's health reaches zero.
type AsteroidDestroyed struct {
	Asteroid ecs.EntityID
	ItemID   int
}

// LevelRaised is emitted when the asteroid field escalates difficulty.
type LevelRaised struct {
	Level int
}
