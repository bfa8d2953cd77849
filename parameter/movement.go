package parameter

import "time"

// Grid & Movement
const (
	// TileSize is the side of one cell in continuous position units
	TileSize = 64

	// EntitySpeed is the base interpolation speed in units per second
	EntitySpeed = 250.0

	// FallFrames is the number of frames in the block-into-hole animation
	FallFrames = 6

	// FallFrameDuration is the time each fall frame is shown
	FallFrameDuration = 60 * time.Millisecond
)
