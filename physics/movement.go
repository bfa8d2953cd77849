package physics

import (
	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/vmath"
)

// tileSize is the cell side in Q32.32 units
var tileSize = vmath.FromInt(parameter.TileSize)

// CellOrigin returns the continuous position of a cell's top-left corner
func CellOrigin(p core.Point) (int64, int64) {
	return vmath.Mul(vmath.FromInt(p.X), tileSize), vmath.Mul(vmath.FromInt(p.Y), tileSize)
}

// CellAt returns the cell containing a continuous position
func CellAt(x, y int64) core.Point {
	return core.Point{X: floorDiv(x, tileSize), Y: floorDiv(y, tileSize)}
}

func floorDiv(v, d int64) int {
	q := v / d
	if v%d != 0 && (v < 0) != (d < 0) {
		q--
	}
	return int(q)
}

// Place snaps the motion state onto a cell and clears any pending move
func Place(m *component.MotionComponent, p core.Point) {
	m.Cell = p
	m.Desired = p
	m.X, m.Y = CellOrigin(p)
	m.DesiredX, m.DesiredY = m.X, m.Y
	m.Dir = core.DirNone
	m.Moving = false
}

// RequestDirection points the entity at the neighbouring cell in dir
// The desired cell is derived from the committed cell, so re-requesting while moving is idempotent
func RequestDirection(m *component.MotionComponent, dir core.Direction) {
	m.Dir = dir
	m.Desired = m.Cell.Add(dir)
	m.DesiredX, m.DesiredY = CellOrigin(m.Desired)
	m.Moving = !dir.IsZero()
}

// SetTarget points the entity at an arbitrary cell; used by path followers
func SetTarget(m *component.MotionComponent, p core.Point) {
	m.Dir = core.DirectionTo(m.Cell, p)
	m.Desired = p
	m.DesiredX, m.DesiredY = CellOrigin(p)
	m.Moving = m.X != m.DesiredX || m.Y != m.DesiredY
}

// Cancel resets the direction to zero; the entity slides back to its committed cell
func Cancel(m *component.MotionComponent) {
	RequestDirection(m, core.DirNone)
	m.Moving = m.X != m.DesiredX || m.Y != m.DesiredY
}

// Advance moves the continuous position toward the desired position by at most step
// When the desired position is reached the desired cell is committed and Moving clears
// Returns true only on the tick the commit happens; idle components are untouched
func Advance(m *component.MotionComponent, step int64) bool {
	if !m.Moving {
		return false
	}
	if m.SpeedFactor != 0 {
		step = vmath.Mul(step, m.SpeedFactor)
	}
	m.X, m.Y = vmath.MoveTowards(m.X, m.Y, m.DesiredX, m.DesiredY, step)
	if m.X != m.DesiredX || m.Y != m.DesiredY {
		return false
	}
	m.Cell = m.Desired
	m.Dir = core.DirNone
	m.Moving = false
	return true
}
