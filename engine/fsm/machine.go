package fsm

import (
	"fmt"
)

// NewMachine creates a machine that starts, and resets, in initial
// The initial state is added automatically
func NewMachine[S comparable, T any](initial S, name string) *Machine[S, T] {
	m := &Machine[S, T]{
		nodes:   make(map[S]*Node[S, T]),
		initial: initial,
		active:  initial,
	}
	m.AddState(initial, name)
	return m
}

// Active returns the current state id
func (m *Machine[S, T]) Active() S {
	return m.active
}

// Name returns the display name of a state
func (m *Machine[S, T]) Name(id S) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// CanTransition checks whether an edge from -> to exists
func (m *Machine[S, T]) CanTransition(from, to S) bool {
	node, ok := m.nodes[from]
	if !ok {
		return false
	}
	_, ok = node.targets[to]
	return ok
}

// Transition moves to target, running exit then enter actions
// Returns ErrInvalidTransition without side effects when no edge exists
func (m *Machine[S, T]) Transition(ctx T, target S) error {
	if _, ok := m.nodes[target]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownState, target)
	}
	if !m.CanTransition(m.active, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Name(m.active), m.Name(target))
	}

	for _, action := range m.nodes[m.active].OnExit {
		action(ctx)
	}
	m.active = target
	for _, action := range m.nodes[target].OnEnter {
		action(ctx)
	}
	return nil
}

// Reset forces the machine back to its initial state without running actions
// Used on teardown where no transition semantics apply
func (m *Machine[S, T]) Reset() {
	m.active = m.initial
}
