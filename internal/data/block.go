package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BlockEntry defines one buildable ship block: its mesh, footprint and
// hitbox template.
type BlockEntry struct {
	ID     int     `yaml:"id"`
	Name   string  `yaml:"name"`
	Kind   string  `yaml:"kind"` // "core", "hull", "miner", "laser", "cooler"
	Mesh   string  `yaml:"mesh"`
	Width  int     `yaml:"width"`  // footprint in tiles
	Depth  int     `yaml:"depth"`  // footprint in tiles
	Height float64 `yaml:"height"` // visual height in world units
	Hitbox Hitbox  `yaml:"hitbox"`
	Cost   int     `yaml:"cost"` // ore units to build
}

// Hitbox is the collision template attached to a block entity.
type Hitbox struct {
	Shape   string  `yaml:"shape"` // "sphere" or "cuboid"
	Radius  float64 `yaml:"radius"`
	HalfX   float64 `yaml:"half_x"`
	HalfY   float64 `yaml:"half_y"`
	HalfZ   float64 `yaml:"half_z"`
	OffsetZ float64 `yaml:"offset_z"`
}

// BlockTable provides block definition lookup by numeric ID.
type BlockTable struct {
	blocks map[int]*BlockEntry
	byName map[string]*BlockEntry
}

// LoadBlockTable loads block_list.yaml.
func LoadBlockTable(path string) (*BlockTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read block list: %w", err)
	}
	var entries []BlockEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse block list: %w", err)
	}
	t := &BlockTable{
		blocks: make(map[int]*BlockEntry, len(entries)),
		byName: make(map[string]*BlockEntry, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		if _, dup := t.blocks[e.ID]; dup {
			return nil, fmt.Errorf("duplicate block id %d", e.ID)
		}
		t.blocks[e.ID] = e
		t.byName[e.Name] = e
	}
	return t, nil
}

// Get returns the block with the given ID, or an error if unknown.
func (t *BlockTable) Get(id int) (*BlockEntry, error) {
	e, ok := t.blocks[id]
	if !ok {
		return nil, fmt.Errorf("unknown block id %d", id)
	}
	return e, nil
}

// GetByName returns the block with the given name, or nil if none.
func (t *BlockTable) GetByName(name string) *BlockEntry {
	return t.byName[name]
}

// Count returns the number of block definitions loaded.
func (t *BlockTable) Count() int {
	return len(t.blocks)
}
