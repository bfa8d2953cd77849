package engine

import (
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/event"
)

// ToggleTorchAt flips the torch at p; returns false when p holds no torch
func (w *World) ToggleTorchAt(p core.Point) bool {
	if w.Room == nil {
		return false
	}
	for _, e := range w.Grid.At(p) {
		if w.Components.Torch.Has(e) {
			w.toggleTorch(e)
			return true
		}
	}
	return false
}

// Interact toggles every torch next to the player, returning how many changed
func (w *World) Interact() int {
	if w.Room == nil {
		return 0
	}
	cell := w.PlayerMotion().Cell
	toggled := 0
	for _, dir := range core.Cardinals {
		if w.ToggleTorchAt(cell.Add(dir)) {
			toggled++
		}
	}
	return toggled
}

// Torches returns the active room's torches ordered by index
func (w *World) Torches() []core.Entity {
	if w.Room == nil {
		return nil
	}
	var torches []core.Entity
	for _, e := range w.Room.Entities {
		if w.Components.Torch.Has(e) {
			torches = append(torches, e)
		}
	}
	return torches
}

func (w *World) toggleTorch(e core.Entity) {
	t, _ := w.Components.Torch.Get(e)
	t.Lit = !t.Lit
	w.Components.Torch.Set(e, t)
	w.CheckSolve = true
	w.PushEvent(event.EventTorchToggled, &event.TorchToggledPayload{Torch: e, Lit: t.Lit})
}
