package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame interval of the terminal front-end (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after stalls
	MaxFrameDelta = 100 * time.Millisecond

	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1

	// MaxEntitiesPerCell bounds cell index slots; resting + reserved + decoration
	MaxEntitiesPerCell = 7
)

// Dungeon Layout
const (
	// LayoutColumns is the width of the room board
	LayoutColumns = 3

	// RoomCount is the number of rooms on the board, ids 1..RoomCount
	RoomCount = 9

	// StartRoom is the room the player starts in
	StartRoom = 1
)
