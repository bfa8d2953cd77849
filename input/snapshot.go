package input

import (
	"slices"

	"github.com/lixenwraith/hollow/core"
)

// Snapshot is the input state of one tick
type Snapshot struct {
	// Held keys, in scan order
	Held []Key
	// Pressed are key-down events of this tick, in arrival order
	Pressed []Key
	// Clicks are mouse-down cells of this tick
	Clicks []core.Point
}

// Direction resolves the single movement direction of the tick
// Pressed events are applied first, then held keys; the last write wins
func (s Snapshot) Direction() core.Direction {
	dir := core.DirNone
	for _, k := range s.Pressed {
		if d := k.Direction(); !d.IsZero() {
			dir = d
		}
	}
	for _, k := range s.Held {
		if d := k.Direction(); !d.IsZero() {
			dir = d
		}
	}
	return dir
}

// Has reports a key-down event for k this tick
func (s Snapshot) Has(k Key) bool {
	return slices.Contains(s.Pressed, k)
}

// Empty reports a tick without input
func (s Snapshot) Empty() bool {
	return len(s.Held) == 0 && len(s.Pressed) == 0 && len(s.Clicks) == 0
}
