package fsm

import (
	"errors"
)

var (
	// ErrInvalidTransition is returned when no edge connects the active state to the target
	ErrInvalidTransition = errors.New("fsm: invalid transition")

	// ErrUnknownState is returned for states never added to the machine
	ErrUnknownState = errors.New("fsm: unknown state")
)

// Machine is a flat finite state machine over comparable state ids
// T is the context type passed to actions (e.g., *engine.Engine)
// Not safe for concurrent use; owned by a single event loop
type Machine[S comparable, T any] struct {
	// Graph Data (Immutable after build)
	nodes   map[S]*Node[S, T]
	initial S

	// Runtime State
	active S
}

// Node represents a state and its outgoing edges
type Node[S comparable, T any] struct {
	ID   S
	Name string

	// Lifecycle Actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	targets map[S]struct{}
}

// ActionFunc executes a side effect on entering or leaving a state
type ActionFunc[T any] func(ctx T)
