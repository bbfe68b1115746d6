package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorldDeferredDestruction(t *testing.T) {
	t.Run("marks are deduplicated and ordered", func(t *testing.T) {
		w := NewWorld()
		a := w.CreateEntity()
		b := w.CreateEntity()

		w.MarkForDestruction(a)
		w.MarkForDestruction(b)
		w.MarkForDestruction(a) // duplicate

		require.Equal(t, []EntityID{a, b}, w.DrainDestroyQueue())
		require.Nil(t, w.DrainDestroyQueue(), "queue is empty after drain")
	})

	t.Run("marking a dead entity is a no-op", func(t *testing.T) {
		w := NewWorld()
		a := w.CreateEntity()
		w.Destroy(a)

		w.MarkForDestruction(a)
		require.Nil(t, w.DrainDestroyQueue())
	})

	t.Run("entities stay alive until destroy", func(t *testing.T) {
		w := NewWorld()
		a := w.CreateEntity()

		w.MarkForDestruction(a)
		require.True(t, w.Alive(a), "mark must not kill the entity mid-tick")

		for _, id := range w.DrainDestroyQueue() {
			w.Destroy(id)
		}
		require.False(t, w.Alive(a))
	})

	t.Run("destroy sweeps every registered store", func(t *testing.T) {
		w := NewWorld()
		s1 := NewStore[pos]()
		s2 := NewSparseStore[pos]()
		w.Registry().Register(s1)
		w.Registry().Register(s2)

		a := w.CreateEntity()
		s1.Set(a, pos{1, 0})
		s2.Set(a, &pos{2, 0})

		w.Destroy(a)
		require.False(t, s1.Has(a))
		require.False(t, s2.Has(a))
	})

	t.Run("maintain compacts registered tracked stores", func(t *testing.T) {
		w := NewWorld()
		ts := NewTrackedStore[pos]()
		w.Registry().Register(ts)

		a := w.CreateEntity()
		r := ts.NewReader()
		ts.Set(a, pos{1, 0})
		ts.Read(r)

		w.Maintain()

		ts.Set(a, pos{2, 0})
		require.Equal(t, []ChangeKind{ChangeModified}, kinds(ts.Read(r)))
	})
}
