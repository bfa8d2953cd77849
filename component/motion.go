package component

import (
	"github.com/lixenwraith/hollow/core"
)

// MotionComponent tracks the discrete cell and the continuous position sliding toward the next cell
// Positions use Q32.32 fixed-point units where one cell spans parameter.TileSize
type MotionComponent struct {
	// Cell is the authoritative occupied cell
	Cell core.Point
	// X, Y is the continuous position, converging to Cell * TileSize when idle
	X, Y int64

	// Desired is the cell being entered; equals Cell when idle
	Desired            core.Point
	DesiredX, DesiredY int64

	Dir    core.Direction
	Moving bool

	// SpeedFactor scales the base speed (Q32.32), 0 means 1.0
	SpeedFactor int64
}
