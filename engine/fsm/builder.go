package fsm

// AddState adds a node to the machine; the first added state becomes the initial state
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	if m.InitialStateID == StateNone {
		m.InitialStateID = id
	}
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// Enter appends OnEnter actions
func (n *Node[T]) Enter(fns ...ActionFunc[T]) *Node[T] {
	n.OnEnter = append(n.OnEnter, fns...)
	return n
}

// Update appends OnUpdate actions
func (n *Node[T]) Update(fns ...ActionFunc[T]) *Node[T] {
	n.OnUpdate = append(n.OnUpdate, fns...)
	return n
}

// Exit appends OnExit actions
func (n *Node[T]) Exit(fns ...ActionFunc[T]) *Node[T] {
	n.OnExit = append(n.OnExit, fns...)
	return n
}
