package event

import (
	"github.com/lixenwraith/hollow/parameter"
)

// EventQueue is a fixed ring buffer of game events
// Single-threaded: producers and the consumer run inside the same tick
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
	tick   uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// SetTick stamps subsequently pushed events
func (eq *EventQueue) SetTick(tick uint64) {
	eq.tick = tick
}

// Push appends an event, O(1)
func (eq *EventQueue) Push(eventType EventType, payload any) {
	eq.events[eq.tail&parameter.EventBufferMask] = GameEvent{Type: eventType, Payload: payload, Tick: eq.tick}
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if eq.tail == eq.head {
		return nil
	}
	result := make([]GameEvent, 0, eq.tail-eq.head)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		result = append(result, eq.events[idx])
		eq.events[idx] = GameEvent{}
	}
	eq.head = eq.tail
	return result
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}
