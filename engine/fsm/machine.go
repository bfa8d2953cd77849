package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/hollow/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	m.activeStateID = node.ID
	m.timeInState = 0
	for _, fn := range node.OnEnter {
		fn(ctx)
	}
	return nil
}

// Update advances the machine by delta time: OnUpdate actions, then the first passing tick transition
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt

	node := m.nodes[m.activeStateID]
	for _, fn := range node.OnUpdate {
		fn(ctx)
	}

	// OnUpdate may have forced a transition
	node = m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event == event.EventNone && (trans.Guard == nil || trans.Guard(ctx)) {
			m.Transition(ctx, trans.TargetID)
			return
		}
	}
}

// HandleEvent fires the first matching event transition of the active state
// Returns true if a transition happened
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if m.activeStateID == StateNone {
		return false
	}
	for _, trans := range m.nodes[m.activeStateID].Transitions {
		if trans.Event == eventType && (trans.Guard == nil || trans.Guard(ctx)) {
			m.Transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// Transition forces a state change, running OnExit then OnEnter
// A transition to the active state is ignored
func (m *Machine[T]) Transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	from := m.activeStateID
	if node, ok := m.nodes[from]; ok {
		for _, fn := range node.OnExit {
			fn(ctx)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0

	for _, fn := range target.OnEnter {
		fn(ctx)
	}

	if m.OnChange != nil {
		m.OnChange(from, targetID)
	}
}

// State returns the active state ID
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the active state name, "" before Init
func (m *Machine[T]) StateName() string {
	return m.Name(m.activeStateID)
}

// Name returns the name of a state
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
