// Package world holds the shared simulation state the systems operate
// on: the ECS world, every component store, player input, random
// source, data tables and the event bus.
package world

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/core/event"
	"github.com/helkite/aster/internal/data"
	"github.com/helkite/aster/internal/input"
	"github.com/helkite/aster/internal/render"
)

// State is the root simulation state. One instance is shared by every
// system; access is single-goroutine (the game loop).
type State struct {
	World *ecs.World

	// Tracked stores feed change readers (render sync).
	Transforms *ecs.TrackedStore[component.Transform]
	Models     *ecs.TrackedStore[component.Model]

	// Dense stores for hot per-tick iteration.
	Bodies    *ecs.Store[component.RigidBody]
	Colliders *ecs.Store[component.Collider]
	Healths   *ecs.Store[component.Health]
	Ships     *ecs.Store[component.Ship]
	Blocks    *ecs.Store[component.BlockEntity]
	Asteroids *ecs.Store[component.Asteroid]

	// Sparse stores for rare components.
	Miners   *ecs.SparseStore[component.Miner]
	Lasers   *ecs.SparseStore[component.Laser]
	Coolers  *ecs.SparseStore[component.Cooler]
	Lines    *ecs.SparseStore[component.Line]
	Missiles *ecs.SparseStore[component.Missile]
	Fields   *ecs.SparseStore[component.AsteroidField]

	Input      *input.State
	Rng        *rand.Rand
	BlockTable *data.BlockTable
	Items      *data.ItemTable
	Meshes     *render.MeshRegistry
	Bus        *event.Bus
	Log        *zap.Logger
}

// NewState builds a State with every store registered in the world's
// registry so destruction and maintenance sweep all of them.
func NewState(rng *rand.Rand, blocks *data.BlockTable, items *data.ItemTable, log *zap.Logger) *State {
	st := &State{
		World:      ecs.NewWorld(),
		Transforms: ecs.NewTrackedStore[component.Transform](),
		Models:     ecs.NewTrackedStore[component.Model](),
		Bodies:     ecs.NewStore[component.RigidBody](),
		Colliders:  ecs.NewStore[component.Collider](),
		Healths:    ecs.NewStore[component.Health](),
		Ships:      ecs.NewStore[component.Ship](),
		Blocks:     ecs.NewStore[component.BlockEntity](),
		Asteroids:  ecs.NewStore[component.Asteroid](),
		Miners:     ecs.NewSparseStore[component.Miner](),
		Lasers:     ecs.NewSparseStore[component.Laser](),
		Coolers:    ecs.NewSparseStore[component.Cooler](),
		Lines:      ecs.NewSparseStore[component.Line](),
		Missiles:   ecs.NewSparseStore[component.Missile](),
		Fields:     ecs.NewSparseStore[component.AsteroidField](),
		Input:      &input.State{},
		Rng:        rng,
		BlockTable: blocks,
		Items:      items,
		Meshes:     render.NewMeshRegistry(),
		Bus:        event.NewBus(),
		Log:        log,
	}

	reg := st.World.Registry()
	reg.Register(st.Transforms)
	reg.Register(st.Models)
	reg.Register(st.Bodies)
	reg.Register(st.Colliders)
	reg.Register(st.Healths)
	reg.Register(st.Ships)
	reg.Register(st.Blocks)
	reg.Register(st.Asteroids)
	reg.Register(st.Miners)
	reg.Register(st.Lasers)
	reg.Register(st.Coolers)
	reg.Register(st.Lines)
	reg.Register(st.Missiles)
	reg.Register(st.Fields)

	return st
}
