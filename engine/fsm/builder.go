package fsm

import "fmt"

// AddState adds a node to the machine
func (m *Machine[S, T]) AddState(id S, name string) *Node[S, T] {
	node := &Node[S, T]{
		ID:      id,
		Name:    name,
		OnEnter: make([]ActionFunc[T], 0),
		OnExit:  make([]ActionFunc[T], 0),
		targets: make(map[S]struct{}),
	}
	m.nodes[id] = node
	return node
}

// Allow adds edges from one state to each target
// Both ends must already be added
func (m *Machine[S, T]) Allow(from S, targets ...S) error {
	node, ok := m.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownState, from)
	}
	for _, to := range targets {
		if _, ok := m.nodes[to]; !ok {
			return fmt.Errorf("%w: %v", ErrUnknownState, to)
		}
		node.targets[to] = struct{}{}
	}
	return nil
}

// OnEnter appends an action run after the machine enters id
func (m *Machine[S, T]) OnEnter(id S, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit appends an action run before the machine leaves id
func (m *Machine[S, T]) OnExit(id S, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}
