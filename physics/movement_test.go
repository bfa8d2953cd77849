package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/vmath"
)

func TestRequestDirection_SetsDesired(t *testing.T) {
	var m component.MotionComponent
	Place(&m, core.Pt(2, 3))

	RequestDirection(&m, core.DirRight)
	assert.True(t, m.Moving)
	assert.Equal(t, core.Pt(3, 3), m.Desired)
	assert.Equal(t, vmath.FromInt(3*parameter.TileSize), m.DesiredX)

	// Re-requesting derives from the committed cell, not the desired one
	RequestDirection(&m, core.DirRight)
	assert.Equal(t, core.Pt(3, 3), m.Desired)
}

func TestAdvance_CommitsOnArrival(t *testing.T) {
	var m component.MotionComponent
	Place(&m, core.Pt(0, 0))
	RequestDirection(&m, core.DirDown)

	step := vmath.FromInt(parameter.TileSize / 4)
	for i := 0; i < 3; i++ {
		require.False(t, Advance(&m, step), "tick %d", i)
		assert.Equal(t, core.Pt(0, 0), m.Cell, "cell commits only on arrival")
	}
	assert.True(t, Advance(&m, step))
	assert.Equal(t, core.Pt(0, 1), m.Cell)
	assert.False(t, m.Moving)
}

func TestAdvance_IdleIsNoOp(t *testing.T) {
	var m component.MotionComponent
	Place(&m, core.Pt(4, 4))
	before := m
	for i := 0; i < 10; i++ {
		assert.False(t, Advance(&m, vmath.FromInt(1000)))
	}
	assert.Equal(t, before, m)
}

func TestAdvance_SpeedFactor(t *testing.T) {
	var m component.MotionComponent
	Place(&m, core.Pt(0, 0))
	m.SpeedFactor = vmath.FromFloat(0.5)
	RequestDirection(&m, core.DirRight)

	Advance(&m, vmath.FromInt(10))
	assert.Equal(t, vmath.FromInt(5), m.X)
}

func TestCancel_ReturnsToCell(t *testing.T) {
	var m component.MotionComponent
	Place(&m, core.Pt(1, 1))
	RequestDirection(&m, core.DirLeft)
	Cancel(&m)
	assert.False(t, m.Moving)
	assert.Equal(t, core.Pt(1, 1), m.Desired)
	assert.Equal(t, core.DirNone, m.Dir)
}

func TestCellAt(t *testing.T) {
	x, y := CellOrigin(core.Pt(3, 2))
	assert.Equal(t, core.Pt(3, 2), CellAt(x, y))
	assert.Equal(t, core.Pt(3, 2), CellAt(x+vmath.FromInt(parameter.TileSize-1), y))
	assert.Equal(t, core.Pt(-1, 0), CellAt(-vmath.FromInt(1), 0))
}
