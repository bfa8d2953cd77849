package engine

import (
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/parameter"
)

// Cell holds a fixed number of entity slots
// 7 * 8 (Entities) + 1 (Count) + 7 (Padding) = 64 bytes, one cache line
type Cell struct {
	Count    uint8
	_        [7]byte
	Entities [parameter.MaxEntitiesPerCell]core.Entity
}

// SpatialGrid is the dense cell index of the active room
// An entity is registered at its resting cell and, while moving, also at its reserved desired cell
type SpatialGrid struct {
	Width  int
	Height int
	Cells  []Cell // 1D array: index = y*Width + x
}

// NewSpatialGrid creates a new grid with the specified dimensions
func NewSpatialGrid(width, height int) *SpatialGrid {
	return &SpatialGrid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// Add inserts an entity at p
// Returns false if out of bounds or the cell is full; a duplicate add is a successful no-op
func (g *SpatialGrid) Add(e core.Entity, p core.Point) bool {
	if !p.In(g.Width, g.Height) {
		return false
	}
	cell := &g.Cells[p.Y*g.Width+p.X]
	for i := uint8(0); i < cell.Count; i++ {
		if cell.Entities[i] == e {
			return true
		}
	}
	if cell.Count < parameter.MaxEntitiesPerCell {
		cell.Entities[cell.Count] = e
		cell.Count++
		return true
	}
	return false
}

// Remove deletes an entity from p using swap-remove
func (g *SpatialGrid) Remove(e core.Entity, p core.Point) {
	if !p.In(g.Width, g.Height) {
		return
	}
	cell := &g.Cells[p.Y*g.Width+p.X]
	for i := uint8(0); i < cell.Count; i++ {
		if cell.Entities[i] == e {
			cell.Count--
			if i < cell.Count {
				cell.Entities[i] = cell.Entities[cell.Count]
			}
			cell.Entities[cell.Count] = 0
			return
		}
	}
}

// At returns a view of the entities at p; callers must not keep it across mutations
func (g *SpatialGrid) At(p core.Point) []core.Entity {
	if !p.In(g.Width, g.Height) {
		return nil
	}
	cell := &g.Cells[p.Y*g.Width+p.X]
	if cell.Count == 0 {
		return nil
	}
	return cell.Entities[:cell.Count]
}

// HasAny returns true if there is at least one entity at p
func (g *SpatialGrid) HasAny(p core.Point) bool {
	if !p.In(g.Width, g.Height) {
		return false
	}
	return g.Cells[p.Y*g.Width+p.X].Count > 0
}

// Clear removes all entities from all cells
func (g *SpatialGrid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = Cell{}
	}
}

// Resize resizes the grid, clearing all data
func (g *SpatialGrid) Resize(width, height int) {
	g.Width = width
	g.Height = height
	g.Cells = make([]Cell, width*height)
}
