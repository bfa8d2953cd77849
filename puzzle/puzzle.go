// Package puzzle holds the per-room win-condition checkers
package puzzle

import (
	"log"
	"slices"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/engine"
)

// Checker decides whether the active room's puzzle is solved
// Checkers only read world state; unlocking is left to the caller
type Checker interface {
	Check(w *engine.World) bool
}

// CheckerFunc adapts a plain function to Checker
type CheckerFunc func(w *engine.World) bool

func (f CheckerFunc) Check(w *engine.World) bool { return f(w) }

// Puzzle names as written in room data
const (
	None         = "none"
	Holes        = "holes"
	Magic        = "magic"
	Torches      = "torches"
	TorchPattern = "torch-pattern"
	HolesTorches = "holes-torches"
)

var registry = map[string]Checker{
	None:         CheckerFunc(func(*engine.World) bool { return true }),
	Holes:        CheckerFunc(holesFilled),
	Magic:        CheckerFunc(magicFilled),
	Torches:      CheckerFunc(torchesLit),
	TorchPattern: CheckerFunc(torchPattern),
	HolesTorches: CheckerFunc(func(w *engine.World) bool { return holesFilled(w) && torchesLit(w) }),
}

// For returns the checker registered under name
// Unknown names fall back to None so a typo never seals a room
func For(name string) Checker {
	if name == "" {
		return registry[None]
	}
	c, ok := registry[name]
	if !ok {
		log.Printf("[puzzle] unknown puzzle %q, treating as %s", name, None)
		return registry[None]
	}
	return c
}

// Known reports whether name is a registered puzzle
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// holesFilled: every hole, plain or magic, is filled
func holesFilled(w *engine.World) bool {
	return allHoles(w, func(component.Kind) bool { return true })
}

func magicFilled(w *engine.World) bool {
	return allHoles(w, func(k component.Kind) bool { return k == component.KindMagicHole })
}

func allHoles(w *engine.World, match func(component.Kind) bool) bool {
	if w.Room == nil {
		return false
	}
	for _, e := range w.Room.Entities {
		h, ok := w.Components.Hole.Get(e)
		if !ok || !match(w.Components.KindOf(e)) {
			continue
		}
		if !h.Filled {
			return false
		}
	}
	return true
}

func torchesLit(w *engine.World) bool {
	if w.Room == nil {
		return false
	}
	for _, e := range w.Torches() {
		if t, _ := w.Components.Torch.Get(e); !t.Lit {
			return false
		}
	}
	return true
}

// torchPattern: the lit torch indices equal the room's pattern exactly
func torchPattern(w *engine.World) bool {
	if w.Room == nil {
		return false
	}
	var lit []int
	for _, e := range w.Torches() {
		if t, _ := w.Components.Torch.Get(e); t.Lit {
			lit = append(lit, t.Index)
		}
	}
	want := slices.Clone(w.Room.Pattern)
	slices.Sort(lit)
	slices.Sort(want)
	want = slices.Compact(want)
	return slices.Equal(lit, want)
}
