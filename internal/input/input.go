// Package input holds the per-tick player intent the gameplay systems
// read. The display layer translates raw key and mouse events into an
// Action and an optional target entity before the tick runs.
package input

import "github.com/helkite/aster/internal/core/ecs"

// Action is the player's current tool mode.
type Action int

const (
	ActionNone Action = iota
	ActionMining
	ActionLaser
)

func (a Action) String() string {
	switch a {
	case ActionMining:
		return "mining"
	case ActionLaser:
		return "laser"
	default:
		return "none"
	}
}

// State is the input snapshot for one tick.
type State struct {
	Action    Action
	Target    ecs.EntityID
	HasTarget bool
}

// SetTarget records a locked target entity.
func (s *State) SetTarget(id ecs.EntityID) {
	s.Target = id
	s.HasTarget = true
}

// ClearTarget drops the current lock.
func (s *State) ClearTarget() {
	s.Target = 0
	s.HasTarget = false
}

// TargetOf returns the target if one is locked.
func (s *State) TargetOf() (ecs.EntityID, bool) {
	return s.Target, s.HasTarget
}
