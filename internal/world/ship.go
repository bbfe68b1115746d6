package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/helkite/aster/internal/component"
	"github.com/helkite/aster/internal/core/ecs"
	"github.com/helkite/aster/internal/data"
	"github.com/helkite/aster/internal/scripting"
	"github.com/helkite/aster/internal/vmath"
)

// AttachFunc gives a block kind its gameplay components when the block
// entity is built.
type AttachFunc func(st *State, block ecs.EntityID, entry *data.BlockEntry)

// AttachRegistry maps block kinds to their component attachment logic.
// New gadget kinds register here without touching the ship builder.
type AttachRegistry struct {
	byKind map[string]AttachFunc
}

func NewAttachRegistry() *AttachRegistry {
	r := &AttachRegistry{byKind: make(map[string]AttachFunc)}
	r.Register("miner", func(st *State, block ecs.EntityID, _ *data.BlockEntry) {
		st.Miners.Set(block, &component.Miner{})
	})
	r.Register("laser", func(st *State, block ecs.EntityID, _ *data.BlockEntry) {
		st.Lasers.Set(block, &component.Laser{})
	})
	r.Register("cooler", func(st *State, block ecs.EntityID, _ *data.BlockEntry) {
		st.Coolers.Set(block, &component.Cooler{})
	})
	return r
}

// Register installs the attach callback for a block kind, replacing any
// previous one.
func (r *AttachRegistry) Register(kind string, fn AttachFunc) {
	r.byKind[kind] = fn
}

const tileSize = 1.0

// BuildShip creates the player ship and one entity per blueprint block.
// Block entities carry transform, model, collider and health; gadget
// kinds additionally get their components through the attach registry.
// Returns the ship entity.
func BuildShip(st *State, bp []scripting.BlueprintBlock, attach *AttachRegistry) (ecs.EntityID, error) {
	ship := st.World.CreateEntity()
	st.Transforms.Set(ship, component.NewTransform(0, 0, 0))
	st.Ships.Set(ship, component.Ship{})

	for _, b := range bp {
		entry := st.BlockTable.GetByName(b.Block)
		if entry == nil {
			return 0, fmt.Errorf("blueprint references unknown block %q", b.Block)
		}

		block := st.World.CreateEntity()
		pos := vmath.V3(float64(b.X)*tileSize, float64(b.Y)*tileSize, 0)
		st.Transforms.Set(block, component.NewTransform(pos.X, pos.Y, pos.Z))

		mesh := st.Meshes.Register(entry.Mesh)
		st.Models.Set(block, component.NewModel(mesh))

		st.Blocks.Set(block, component.BlockEntity{
			Ship:    ship,
			Tile:    component.Tile{X: b.X, Y: b.Y},
			BlockID: entry.ID,
		})
		st.Colliders.Set(block, component.Collider{
			Hitbox:   hitboxFromEntry(entry),
			Category: component.CategoryShip,
			Mask:     component.CategoryAsteroid,
		})
		st.Healths.Set(block, component.Health{HP: 10})

		if fn, ok := attach.byKind[entry.Kind]; ok {
			fn(st, block, entry)
		}
		st.Log.Debug("placed block",
			zap.String("block", entry.Name),
			zap.Int("x", b.X),
			zap.Int("y", b.Y))
	}

	return ship, nil
}

func hitboxFromEntry(entry *data.BlockEntry) component.Hitbox {
	var shape component.Shape
	switch entry.Hitbox.Shape {
	case "cuboid":
		shape = component.Cuboid(vmath.V3(entry.Hitbox.HalfX, entry.Hitbox.HalfY, entry.Hitbox.HalfZ))
	default:
		shape = component.Sphere(entry.Hitbox.Radius)
	}
	return component.Hitbox{
		Shape:  shape,
		Offset: vmath.V3(0, 0, entry.Hitbox.OffsetZ),
	}
}
