package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recordSystem appends its name to a shared trace on every update.
type recordSystem struct {
	name  string
	trace *[]string
}

func (s *recordSystem) Update(time.Duration) {
	*s.trace = append(*s.trace, s.name)
}

func rec(trace *[]string, name string) *recordSystem {
	return &recordSystem{name: name, trace: trace}
}

func TestRunner(t *testing.T) {
	t.Run("runs-after edges are honored", func(t *testing.T) {
		var trace []string
		r := NewRunner()
		r.Register("c", rec(&trace, "c"), "b")
		r.Register("a", rec(&trace, "a"))
		r.Register("b", rec(&trace, "b"), "a")

		require.NoError(t, r.Resolve())
		r.Tick(time.Millisecond)
		require.Equal(t, []string{"a", "b", "c"}, trace)
	})

	t.Run("ties break by registration order", func(t *testing.T) {
		var trace []string
		r := NewRunner()
		r.Register("x", rec(&trace, "x"))
		r.Register("y", rec(&trace, "y"))
		r.Register("z", rec(&trace, "z"))

		require.NoError(t, r.Resolve())
		require.Equal(t, []string{"x", "y", "z"}, r.Order())
	})

	t.Run("unknown dependency fails resolve", func(t *testing.T) {
		var trace []string
		r := NewRunner()
		r.Register("a", rec(&trace, "a"), "ghost")

		err := r.Resolve()
		require.Error(t, err)
		require.Contains(t, err.Error(), "ghost")
	})

	t.Run("cycle fails resolve", func(t *testing.T) {
		var trace []string
		r := NewRunner()
		r.Register("a", rec(&trace, "a"), "b")
		r.Register("b", rec(&trace, "b"), "a")

		err := r.Resolve()
		require.Error(t, err)
		require.Contains(t, err.Error(), "cycle")
	})

	t.Run("duplicate name fails resolve", func(t *testing.T) {
		var trace []string
		r := NewRunner()
		r.Register("a", rec(&trace, "a"))
		r.Register("a", rec(&trace, "a"))

		require.Error(t, r.Resolve())
	})

	t.Run("tick before resolve panics", func(t *testing.T) {
		r := NewRunner()
		require.Panics(t, func() { r.Tick(time.Millisecond) })
	})
}
