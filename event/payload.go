package event

import (
	"github.com/lixenwraith/hollow/core"
)

// RoomChangePayload describes a door crossing
type RoomChangePayload struct {
	From int
	To   int
	// Exit is the side of the door crossed in From; the traveller arrives on Exit.Opposite()
	Exit core.DoorSide
	Door core.Entity
}

// RoomEnteredPayload describes the newly active room
type RoomEnteredPayload struct {
	Room     int
	Entry    core.DoorSide
	Restored bool
}

// BlockPushedPayload describes a committed push chain
type BlockPushedPayload struct {
	Pusher core.Entity
	Chain  []core.Entity
	Dir    core.Direction
}

// HoleFilledPayload describes a consumed block
type HoleFilledPayload struct {
	Hole  core.Entity
	Block core.Entity
	Cell  core.Point
}

// TorchToggledPayload describes a torch change
type TorchToggledPayload struct {
	Torch core.Entity
	Lit   bool
}

// RoomSolvedPayload names the solved room
type RoomSolvedPayload struct {
	Room int
}

// PlayerCaughtPayload names where the catch happened
type PlayerCaughtPayload struct {
	Room int
	Cell core.Point
}

// PursuitStatePayload reports a pursuit transition
type PursuitStatePayload struct {
	From, To string
	Room     int
}
