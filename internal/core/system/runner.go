package system

import (
	"fmt"
	"time"
)

// Runner executes systems in an order derived from declared runs-after
// edges. The order is resolved once at startup; ties between unordered
// systems are broken by registration order, so the schedule is
// deterministic.
type Runner struct {
	entries       []entry
	resolved      []System
	resolvedNames []string
}

type entry struct {
	name  string
	sys   System
	after []string
}

func NewRunner() *Runner {
	return &Runner{entries: make([]entry, 0, 16)}
}

// Register adds a named system that runs after all systems named in
// after. Must be called before Resolve.
func (r *Runner) Register(name string, sys System, after ...string) {
	r.entries = append(r.entries, entry{name: name, sys: sys, after: after})
	r.resolved = nil
	r.resolvedNames = nil
}

// Resolve topologically sorts the registered systems. An unknown
// dependency or a cycle is a programming error in the schedule
// declaration and aborts startup.
func (r *Runner) Resolve() error {
	index := make(map[string]int, len(r.entries))
	for i, e := range r.entries {
		if _, dup := index[e.name]; dup {
			return fmt.Errorf("duplicate system %q", e.name)
		}
		index[e.name] = i
	}

	indegree := make([]int, len(r.entries))
	dependents := make([][]int, len(r.entries))
	for i, e := range r.entries {
		for _, dep := range e.after {
			j, ok := index[dep]
			if !ok {
				return fmt.Errorf("system %q runs after unknown system %q", e.name, dep)
			}
			dependents[j] = append(dependents[j], i)
			indegree[i]++
		}
	}

	// Kahn's algorithm. The ready set is scanned in registration order
	// each round, which yields the declaration-order tie break.
	order := make([]int, 0, len(r.entries))
	done := make([]bool, len(r.entries))
	for len(order) < len(r.entries) {
		picked := -1
		for i := range r.entries {
			if !done[i] && indegree[i] == 0 {
				picked = i
				break
			}
		}
		if picked < 0 {
			return fmt.Errorf("cycle in system schedule")
		}
		done[picked] = true
		order = append(order, picked)
		for _, d := range dependents[picked] {
			indegree[d]--
		}
	}

	r.resolved = make([]System, len(order))
	r.resolvedNames = make([]string, len(order))
	for i, idx := range order {
		r.resolved[i] = r.entries[idx].sys
		r.resolvedNames[i] = r.entries[idx].name
	}
	return nil
}

// Order returns the resolved system names, for logging and tests.
func (r *Runner) Order() []string { return r.resolvedNames }

// Tick runs every system once, in resolved order. Panics if Resolve has
// not been called — running an unresolved schedule is a programming error.
func (r *Runner) Tick(dt time.Duration) {
	if r.resolved == nil {
		panic("system runner: Tick before Resolve")
	}
	for _, s := range r.resolved {
		s.Update(dt)
	}
}
