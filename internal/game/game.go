// Package game assembles the simulation: it builds the player ship,
// seeds the asteroid field, and registers every system with the runner
// in its declared order.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/ecs"
	coresys "github.com/helkite/aster/internal/core/system"
	"github.com/helkite/aster/internal/render"
	"github.com/helkite/aster/internal/scripting"
	"github.com/helkite/aster/internal/system"
	"github.com/helkite/aster/internal/world"
)

type Game struct {
	st     *world.State
	runner *coresys.Runner
	ship   ecs.EntityID
	log    *zap.Logger
}

// New builds the world and resolves the system schedule. The schedule is
// fixed from here on; a dependency cycle or unknown edge is a startup
// error.
func New(cfg *config.Config, st *world.State, engine *scripting.Engine, mgr render.Manager) (*Game, error) {
	// Systems are built before any entity spawns so the model-sync
	// change readers observe the initial ship and field insertions.
	// The gadget systems are mutually unordered; registration order
	// breaks the tie, so the resolved schedule is still deterministic.
	r := coresys.NewRunner()
	r.Register("events", system.NewEventSystem(st.Bus))
	r.Register("physics", system.NewPhysicsSystem(st), "events")
	r.Register("miner", system.NewMinerSystem(st, cfg.Miner), "physics")
	r.Register("laser", system.NewLaserSystem(st, cfg.Laser), "physics")
	r.Register("cooler", system.NewCoolerSystem(st, cfg.Cooler), "physics")
	r.Register("missile", system.NewMissileSystem(st, cfg.Miner), "physics")
	r.Register("death", system.NewDeathSystem(st), "laser", "missile")
	r.Register("modelsync", system.NewModelSyncSystem(st, mgr), "death")
	r.Register("field", system.NewFieldSystem(st, cfg.Field, engine), "modelsync")
	r.Register("cleanup", system.NewCleanupSystem(st, mgr), "field")

	if err := r.Resolve(); err != nil {
		return nil, fmt.Errorf("resolve system schedule: %w", err)
	}
	st.Log.Info("system schedule resolved", zap.Strings("order", r.Order()))

	ship, err := world.BuildShip(st, engine.ShipBlueprint(), world.NewAttachRegistry())
	if err != nil {
		return nil, fmt.Errorf("build ship: %w", err)
	}
	st.SpawnField(cfg.Field.XRange)

	return &Game{st: st, runner: r, ship: ship, log: st.Log.Named("game")}, nil
}

// Tick advances the simulation by one step.
func (g *Game) Tick(dt time.Duration) {
	g.runner.Tick(dt)
}

// State exposes the shared simulation state (input, stores).
func (g *Game) State() *world.State { return g.st }

// Ship returns the player ship entity.
func (g *Game) Ship() ecs.EntityID { return g.ship }

// Schedule returns the resolved system order.
func (g *Game) Schedule() []string { return g.runner.Order() }
