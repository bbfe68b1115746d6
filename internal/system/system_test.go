package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/core/event"
	"github.com/helkite/aster/internal/input"
	"github.com/helkite/aster/internal/render"
	"github.com/helkite/aster/internal/vmath"
	"github.com/helkite/aster/internal/world"
)

const tick = 16 * time.Millisecond

func newTestState() *world.State {
	return world.NewState(rand.New(rand.NewSource(1)), nil, nil, zap.NewNop())
}

// addShipWithBlock creates a ship and one gadget block at pos. The
// gadget component itself is attached by the caller.
func addShipWithBlock(st *world.State, pos vmath.Vec3) (ship, block ecs.EntityID) {
	ship = st.World.CreateEntity()
	st.Transforms.Set(ship, component.NewTransform(0, 0, 0))
	st.Ships.Set(ship, component.Ship{})

	block = st.World.CreateEntity()
	st.Transforms.Set(block, component.NewTransform(pos.X, pos.Y, pos.Z))
	st.Blocks.Set(block, component.BlockEntity{Ship: ship})
	return ship, block
}

// recorder is a render.Manager that records every call.
type recorder struct {
	next    render.ModelID
	created []render.ModelID
	updated []render.ModelID
	removed []render.ModelID
}

func (r *recorder) CreateModel(render.MeshID, vmath.Mat4) render.ModelID {
	r.next++
	r.created = append(r.created, r.next)
	return r.next
}

func (r *recorder) UpdateModel(_ render.MeshID, id render.ModelID, _ vmath.Mat4) {
	r.updated = append(r.updated, id)
}

func (r *recorder) RemoveModel(_ render.MeshID, id render.ModelID) {
	r.removed = append(r.removed, id)
}

func TestPhysicsSystem(t *testing.T) {
	st := newTestState()
	sys := NewPhysicsSystem(st)
	reader := st.Transforms.NewReader()

	id := st.SpawnAsteroid(vmath.V3(0, 0, 0), vmath.V3(2, 0, 0), 20, 1)
	st.Transforms.Read(reader) // drain the insertion

	sys.Update(500 * time.Millisecond)

	tf, _ := st.Transforms.Get(id)
	require.InDelta(t, 1.0, tf.Position.X, 1e-12)

	changes := st.Transforms.Read(reader)
	require.Len(t, changes, 1)
	require.Equal(t, ecs.ChangeModified, changes[0].Kind)
	require.Equal(t, id, changes[0].Entity)

	// Zero velocity produces no change entry.
	st.Bodies.Ptr(id).Velocity = vmath.Vec3{}
	sys.Update(500 * time.Millisecond)
	require.Empty(t, st.Transforms.Read(reader))
}

func TestLaserSystem(t *testing.T) {
	cfg := config.Defaults().Laser

	setup := func() (*world.State, ecs.EntityID, ecs.EntityID) {
		st := newTestState()
		_, block := addShipWithBlock(st, vmath.V3(0, 0, 0))
		st.Lasers.Set(block, &component.Laser{})
		target := st.SpawnAsteroid(vmath.V3(5, 0, 0), vmath.Vec3{}, 10, 1)
		return st, block, target
	}

	t.Run("firing heats the ship and damages the target", func(t *testing.T) {
		st, block, target := setup()
		sys := NewLaserSystem(st, cfg)

		st.Input.Action = input.ActionLaser
		st.Input.SetTarget(target)
		sys.Update(tick)

		blk, _ := st.Blocks.Get(block)
		require.InDelta(t, 0.3, st.Ships.Ptr(blk.Ship).Heat, 1e-12)
		require.Equal(t, 9, st.Healths.Ptr(target).HP)

		line, ok := st.Lines.Get(block)
		require.True(t, ok)
		require.InDelta(t, 0.4, line.From.Z, 1e-12)
		require.InDelta(t, cfg.Radius, line.From.X, 1e-12, "beam starts at the barrel, not the block center")
		require.Equal(t, vmath.V3(5, 0, 0), line.To)
	})

	t.Run("beam lasts one tick after fire stops", func(t *testing.T) {
		st, block, target := setup()
		sys := NewLaserSystem(st, cfg)

		st.Input.Action = input.ActionLaser
		st.Input.SetTarget(target)
		sys.Update(tick)
		require.True(t, st.Lines.Has(block))

		st.Input.Action = input.ActionNone
		sys.Update(tick)
		require.False(t, st.Lines.Has(block))
	})

	t.Run("no fire without the laser action", func(t *testing.T) {
		st, _, target := setup()
		sys := NewLaserSystem(st, cfg)

		st.Input.Action = input.ActionMining
		st.Input.SetTarget(target)
		sys.Update(tick)
		require.Equal(t, 10, st.Healths.Ptr(target).HP)
	})

	t.Run("no fire on a dead target", func(t *testing.T) {
		st, _, target := setup()
		sys := NewLaserSystem(st, cfg)

		st.Input.Action = input.ActionLaser
		st.Input.SetTarget(target)
		st.World.Destroy(target)
		sys.Update(tick)

		var fired bool
		st.Lines.Each(func(ecs.EntityID, *component.Line) { fired = true })
		require.False(t, fired)
	})

	t.Run("splash damages asteroids near the aim point", func(t *testing.T) {
		st, _, target := setup()
		sys := NewLaserSystem(st, cfg)
		near := st.SpawnAsteroid(vmath.V3(5.2, 0, 0), vmath.Vec3{}, 10, 1)
		far := st.SpawnAsteroid(vmath.V3(8, 0, 0), vmath.Vec3{}, 10, 1)

		st.Input.Action = input.ActionLaser
		st.Input.SetTarget(target)
		sys.Update(tick)

		require.Equal(t, 9, st.Healths.Ptr(target).HP)
		require.Equal(t, 9, st.Healths.Ptr(near).HP)
		require.Equal(t, 10, st.Healths.Ptr(far).HP)
	})

	t.Run("line of sight gate blocks occluded shots", func(t *testing.T) {
		st, _, target := setup()
		losCfg := cfg
		losCfg.RequireLineOfSight = true
		sys := NewLaserSystem(st, losCfg)

		// Blocker directly between the turret and the target.
		blocker := st.SpawnAsteroid(vmath.V3(2, 0, 0.2), vmath.Vec3{}, 10, 1)

		st.Input.Action = input.ActionLaser
		st.Input.SetTarget(target)
		sys.Update(tick)

		require.Equal(t, 10, st.Healths.Ptr(target).HP)
		require.Equal(t, 10, st.Healths.Ptr(blocker).HP)
	})
}

func TestCoolerSystem(t *testing.T) {
	cfg := config.Defaults().Cooler
	st := newTestState()
	ship, block := addShipWithBlock(st, vmath.V3(0, 1, 0))
	st.Coolers.Set(block, &component.Cooler{})
	sys := NewCoolerSystem(st, cfg)

	st.Ships.Ptr(ship).Heat = 1.0
	sys.Update(tick)
	require.InDelta(t, 0.87, st.Ships.Ptr(ship).Heat, 1e-12)

	st.Ships.Ptr(ship).Heat = 0.05
	sys.Update(tick)
	require.Equal(t, 0.0, st.Ships.Ptr(ship).Heat, "heat floors at zero")
}

func TestMinerSystem(t *testing.T) {
	cfg := config.Defaults().Miner
	cfg.ChargeTicks = 3

	setup := func() (*world.State, ecs.EntityID, ecs.EntityID) {
		st := newTestState()
		_, block := addShipWithBlock(st, vmath.V3(0, 0, 0))
		st.Miners.Set(block, &component.Miner{})
		target := st.SpawnAsteroid(vmath.V3(6, 0, 0.5), vmath.Vec3{}, 20, 1)
		return st, block, target
	}

	t.Run("holds a full charge until commanded", func(t *testing.T) {
		st, block, _ := setup()
		sys := NewMinerSystem(st, cfg)

		for i := 0; i < 10; i++ {
			sys.Update(tick)
		}
		m, _ := st.Miners.Get(block)
		require.Equal(t, cfg.ChargeTicks+1, m.Charge, "charge stops just past the threshold")
		require.Equal(t, 0, st.Missiles.Len())
	})

	t.Run("fires once the charge exceeds the threshold", func(t *testing.T) {
		st, block, target := setup()
		sys := NewMinerSystem(st, cfg)

		st.Input.Action = input.ActionMining
		st.Input.SetTarget(target)

		// Charging while the counter is at or below the threshold;
		// the tick after it passes fires.
		for i := 0; i <= cfg.ChargeTicks; i++ {
			sys.Update(tick)
			require.Equal(t, 0, st.Missiles.Len())
		}
		sys.Update(tick)
		require.Equal(t, 1, st.Missiles.Len())

		m, _ := st.Miners.Get(block)
		require.Equal(t, 0, m.Charge, "charge resets after firing")

		st.Missiles.Each(func(id ecs.EntityID, mis *component.Missile) {
			require.Equal(t, target, mis.Target)
			tf, _ := st.Transforms.Get(id)
			require.InDelta(t, 0.5, tf.Position.Z, 1e-12, "launch point sits above the turret")
		})
	})

	t.Run("does not fire at a dead target", func(t *testing.T) {
		st, _, target := setup()
		sys := NewMinerSystem(st, cfg)

		st.Input.Action = input.ActionMining
		st.Input.SetTarget(target)
		st.World.Destroy(target)

		for i := 0; i < 5; i++ {
			sys.Update(tick)
		}
		require.Equal(t, 0, st.Missiles.Len())
	})
}

func TestMissileSystem(t *testing.T) {
	cfg := config.Defaults().Miner

	t.Run("detonates on contact and damages the asteroid", func(t *testing.T) {
		st := newTestState()
		target := st.SpawnAsteroid(vmath.V3(0.6, 0, 0), vmath.Vec3{}, 20, 1)
		missile := st.SpawnMissile(vmath.V3(0, 0, 0), target, cfg.MissileSpeed, cfg.MissileDamage, cfg.MissileRadius)
		sys := NewMissileSystem(st, cfg)

		sys.Update(tick)

		require.Equal(t, 15, st.Healths.Ptr(target).HP)
		require.Equal(t, []ecs.EntityID{missile}, st.World.DrainDestroyQueue())
	})

	t.Run("steers toward a moving target", func(t *testing.T) {
		st := newTestState()
		target := st.SpawnAsteroid(vmath.V3(10, 0, 0), vmath.Vec3{}, 20, 1)
		missile := st.SpawnMissile(vmath.V3(0, 0, 0), target, cfg.MissileSpeed, cfg.MissileDamage, cfg.MissileRadius)
		sys := NewMissileSystem(st, cfg)

		// Target moved sideways; velocity must re-aim.
		tf, _ := st.Transforms.Get(target)
		tf.Position = vmath.V3(0, 10, 0)
		st.Transforms.Set(target, tf)

		sys.Update(tick)

		body, _ := st.Bodies.Get(missile)
		require.InDelta(t, 0.0, body.Velocity.X, 1e-9)
		require.InDelta(t, cfg.MissileSpeed, body.Velocity.Y, 1e-9)
	})

	t.Run("reclaims strays outside the field", func(t *testing.T) {
		st := newTestState()
		target := st.SpawnAsteroid(vmath.V3(10, 0, 0), vmath.Vec3{}, 20, 1)
		missile := st.SpawnMissile(vmath.V3(0, 0, 0), target, cfg.MissileSpeed, cfg.MissileDamage, cfg.MissileRadius)
		sys := NewMissileSystem(st, cfg)

		tf, _ := st.Transforms.Get(missile)
		tf.Position = vmath.V3(200, 0, 0)
		st.Transforms.Set(missile, tf)

		sys.Update(tick)
		require.Equal(t, []ecs.EntityID{missile}, st.World.DrainDestroyQueue())
	})
}

func TestDeathSystem(t *testing.T) {
	st := newTestState()
	sys := NewDeathSystem(st)

	var destroyed []event.AsteroidDestroyed
	event.Subscribe(st.Bus, func(e event.AsteroidDestroyed) {
		destroyed = append(destroyed, e)
	})

	dead := st.SpawnAsteroid(vmath.V3(0, 0, 0), vmath.Vec3{}, 20, 2)
	alive := st.SpawnAsteroid(vmath.V3(5, 0, 0), vmath.Vec3{}, 20, 1)
	st.Healths.Ptr(dead).HP = 0

	sys.Update(tick)

	require.Equal(t, []ecs.EntityID{dead}, st.World.DrainDestroyQueue())
	require.True(t, st.World.Alive(alive))

	st.Bus.SwapAndDispatch()
	require.Len(t, destroyed, 1)
	require.Equal(t, dead, destroyed[0].Asteroid)
	require.Equal(t, 2, destroyed[0].ItemID)
}

func TestModelSyncSystem(t *testing.T) {
	t.Run("insertions allocate handles, moves push matrices", func(t *testing.T) {
		st := newTestState()
		rec := &recorder{}
		sys := NewModelSyncSystem(st, rec)

		id := st.SpawnAsteroid(vmath.V3(1, 0, 0), vmath.V3(1, 0, 0), 20, 1)
		sys.Update(tick)

		require.Len(t, rec.created, 1)
		model, _ := st.Models.Get(id)
		require.True(t, model.HasHandle())
		require.Empty(t, rec.updated, "insertion tick pushes no updates")

		// Move and sync again.
		NewPhysicsSystem(st).Update(time.Second)
		sys.Update(tick)
		require.Equal(t, []render.ModelID{model.Handle}, rec.updated)

		// Idle tick is quiet.
		sys.Update(tick)
		require.Len(t, rec.created, 1)
		require.Len(t, rec.updated, 1)
	})

	t.Run("moves before a handle exists are skipped", func(t *testing.T) {
		st := newTestState()
		rec := &recorder{}
		sys := NewModelSyncSystem(st, rec)

		// Transform without a model never reaches the backend.
		bare := st.World.CreateEntity()
		st.Transforms.Set(bare, component.NewTransform(0, 0, 0))
		tf, _ := st.Transforms.Get(bare)
		tf.Position.X = 2
		st.Transforms.Set(bare, tf)

		sys.Update(tick)
		require.Empty(t, rec.created)
		require.Empty(t, rec.updated)
	})
}

func TestCleanupSystem(t *testing.T) {
	st := newTestState()
	rec := &recorder{}
	modelSync := NewModelSyncSystem(st, rec)
	cleanup := NewCleanupSystem(st, rec)

	id := st.SpawnAsteroid(vmath.V3(0, 0, 0), vmath.Vec3{}, 20, 1)
	modelSync.Update(tick)
	model, _ := st.Models.Get(id)
	require.True(t, model.HasHandle())

	st.World.MarkForDestruction(id)
	cleanup.Update(tick)

	require.Equal(t, []render.ModelID{model.Handle}, rec.removed)
	require.False(t, st.World.Alive(id))
	require.False(t, st.Transforms.Has(id))

	// Second pass is a no-op.
	cleanup.Update(tick)
	require.Len(t, rec.removed, 1)
}

func TestFieldSystem(t *testing.T) {
	cfg := config.Defaults().Field

	t.Run("expired countdown raises level and spawns", func(t *testing.T) {
		st := newTestState()
		st.SpawnField(cfg.XRange)
		sys := NewFieldSystem(st, cfg, nil)

		var raised []int
		event.Subscribe(st.Bus, func(e event.LevelRaised) { raised = append(raised, e.Level) })

		sys.Update(tick)

		var field *component.AsteroidField
		st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) { field = f })
		require.NotNil(t, field)
		require.Equal(t, 1, field.Level)
		require.Equal(t, 194, field.Countdown, "countdown resets to 200 - 6*level")
		require.Len(t, field.Asteroids, 1)

		id := field.Asteroids[0]
		tf, _ := st.Transforms.Get(id)
		require.InDelta(t, -cfg.XRange, tf.Position.X, 1e-12, "spawns at the -x edge")
		body, _ := st.Bodies.Get(id)
		require.InDelta(t, cfg.AsteroidSpeed, body.Velocity.X, 1e-12)
		require.Equal(t, cfg.AsteroidHP, st.Healths.Ptr(id).HP)

		st.Bus.SwapAndDispatch()
		require.Equal(t, []int{1}, raised)
	})

	t.Run("countdown ticks down between spawns", func(t *testing.T) {
		st := newTestState()
		st.SpawnField(cfg.XRange)
		sys := NewFieldSystem(st, cfg, nil)

		sys.Update(tick) // first spawn
		sys.Update(tick)
		sys.Update(tick)

		var field *component.AsteroidField
		st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) { field = f })
		require.Equal(t, 192, field.Countdown)
		require.Len(t, field.Asteroids, 1)
	})

	t.Run("level caps at the maximum", func(t *testing.T) {
		capped := cfg
		capped.MaxLevel = 2
		st := newTestState()
		st.SpawnField(capped.XRange)
		sys := NewFieldSystem(st, capped, nil)

		var field *component.AsteroidField
		st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) { field = f })

		for i := 0; i < 3; i++ {
			field.Countdown = 0
			sys.Update(tick)
		}
		require.Equal(t, 2, field.Level)
	})

	t.Run("a positive countdown only decrements", func(t *testing.T) {
		st := newTestState()
		st.SpawnField(cfg.XRange)
		sys := NewFieldSystem(st, cfg, nil)

		var field *component.AsteroidField
		st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) { field = f })
		field.Countdown = 1

		sys.Update(tick)
		require.Equal(t, 0, field.Countdown)
		require.Empty(t, field.Asteroids, "the tick that decrements to zero does not spawn")
		require.Equal(t, 0, field.Level)

		sys.Update(tick)
		require.Len(t, field.Asteroids, 1, "the tick that starts at zero spawns")
	})

	t.Run("countdown never drops below the floor", func(t *testing.T) {
		floored := cfg
		floored.MinCountdown = 150
		st := newTestState()
		st.SpawnField(floored.XRange)
		sys := NewFieldSystem(st, floored, nil)

		var field *component.AsteroidField
		st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) { field = f })
		field.Level = floored.MaxLevel
		sys.Update(tick)

		require.Equal(t, 150, field.Countdown)
	})

	t.Run("dead asteroids leave the roster", func(t *testing.T) {
		st := newTestState()
		st.SpawnField(cfg.XRange)
		sys := NewFieldSystem(st, cfg, nil)

		sys.Update(tick)
		var field *component.AsteroidField
		st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) { field = f })
		require.Len(t, field.Asteroids, 1)

		st.World.Destroy(field.Asteroids[0])
		sys.Update(tick)
		require.Empty(t, field.Asteroids)
	})

	t.Run("asteroids past either edge are reclaimed", func(t *testing.T) {
		for name, x := range map[string]float64{
			"far":  cfg.XRange + 1,
			"near": -(cfg.XRange + 1),
		} {
			t.Run(name, func(t *testing.T) {
				st := newTestState()
				st.SpawnField(cfg.XRange)
				sys := NewFieldSystem(st, cfg, nil)

				sys.Update(tick)
				var field *component.AsteroidField
				st.Fields.Each(func(_ ecs.EntityID, f *component.AsteroidField) { field = f })
				id := field.Asteroids[0]

				tf, _ := st.Transforms.Get(id)
				tf.Position.X = x
				st.Transforms.Set(id, tf)

				sys.Update(tick)
				require.Equal(t, []ecs.EntityID{id}, st.World.DrainDestroyQueue())
			})
		}
	})

	t.Run("asteroids at the spawn edge are kept", func(t *testing.T) {
		st := newTestState()
		st.SpawnField(cfg.XRange)
		sys := NewFieldSystem(st, cfg, nil)

		sys.Update(tick) // spawns at x = -xRange exactly
		sys.Update(tick)
		require.Empty(t, st.World.DrainDestroyQueue())
	})
}
