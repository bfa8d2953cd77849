package system

import (
	"time"

	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/input"
	"github.com/lixenwraith/hollow/parameter"
)

// InputSystem turns the tick's input snapshot into player actions
// Clicks toggle torches, interact toggles adjacent torches, the resolved direction becomes a move request
type InputSystem struct {
	world *engine.World

	// LastMove is the outcome of the most recent move request
	LastMove engine.MoveResult

	enabled bool
}

func NewInputSystem(world *engine.World) *InputSystem {
	return &InputSystem{world: world, enabled: true}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) Update(dt time.Duration) {
	w := s.world
	if !s.enabled || w.Room == nil {
		return
	}
	in := w.Input

	for _, cell := range in.Clicks {
		w.ToggleTorchAt(cell)
	}
	if in.Has(input.KeyInteract) {
		w.Interact()
	}

	dir := in.Direction()
	if dir.IsZero() {
		return
	}
	// A player still sliding reports busy; the held key retries next tick
	s.LastMove = w.RequestMove(w.Player, dir)
}

// SetEnabled pauses player control, used while the game is not in play
func (s *InputSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}
