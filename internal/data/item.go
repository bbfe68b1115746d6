package data

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemEntry defines one item kind dropped by destroyed asteroids.
type ItemEntry struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Mesh  string `yaml:"mesh"`
	Value int    `yaml:"value"` // ore units gained on pickup
}

// ItemTable provides item definition lookup by numeric ID.
type ItemTable struct {
	items map[int]*ItemEntry
	ids   []int // load order, for deterministic random picks
}

// LoadItemTable loads item_list.yaml.
func LoadItemTable(path string) (*ItemTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item list: %w", err)
	}
	var entries []ItemEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse item list: %w", err)
	}
	t := &ItemTable{items: make(map[int]*ItemEntry, len(entries))}
	for i := range entries {
		e := &entries[i]
		if _, dup := t.items[e.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %d", e.ID)
		}
		t.items[e.ID] = e
		t.ids = append(t.ids, e.ID)
	}
	return t, nil
}

// Get returns the item with the given ID, or nil if none.
func (t *ItemTable) Get(id int) *ItemEntry {
	return t.items[id]
}

// Count returns the number of item definitions loaded.
func (t *ItemTable) Count() int {
	return len(t.items)
}

// RandomID picks an item id uniformly, in load order. rng must be the
// caller's source so picks stay reproducible under a fixed seed.
func (t *ItemTable) RandomID(rng *rand.Rand) (int, bool) {
	if len(t.ids) == 0 {
		return 0, false
	}
	return t.ids[rng.Intn(len(t.ids))], true
}
