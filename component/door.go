package component

import (
	"github.com/lixenwraith/hollow/core"
)

// DoorComponent links a room edge to the neighbouring room
type DoorComponent struct {
	Side      core.DoorSide
	RoomDelta int
	Locked    bool
	// Final doors stay locked until every room is solved
	Final bool
}
