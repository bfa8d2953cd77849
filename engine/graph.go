package engine

import (
	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/navigation"
)

// EnsureGraph rebuilds the active room's connectivity graph when the dirty flag is set
// Returns the graph generation and whether it was rebuilt
func (w *World) EnsureGraph() (uint64, bool) {
	if w.GraphDirty {
		w.Nav.MarkDirty()
		w.GraphDirty = false
	}
	if w.Room == nil {
		return w.Nav.Generation(), false
	}
	return w.Nav.Ensure(w.buildGraph)
}

func (w *World) buildGraph(g *navigation.Graph) {
	g.Build(w.Room.Width, w.Room.Height, w.graphBlocked)

	// Doors are path endpoints for travellers entering or leaving
	for _, e := range w.Room.Entities {
		if w.Components.Door.Has(e) {
			m, _ := w.Components.Motion.Get(e)
			g.Attach(m.Cell)
		}
	}
}

// graphBlocked reports a cell held by a static, a pushable or an unfilled hole
func (w *World) graphBlocked(p core.Point) bool {
	for _, e := range w.Grid.At(p) {
		if w.IsDead(e) {
			continue
		}
		switch w.Components.KindOf(e).Class() {
		case component.ClassStatic, component.ClassPushable:
			return true
		case component.ClassHole:
			if h, _ := w.Components.Hole.Get(e); !h.Filled {
				return true
			}
		}
	}
	return false
}
