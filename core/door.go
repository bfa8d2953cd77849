package core

// DoorSide names the room edge a door sits on
// Rooms are laid out on a 3x3 board numbered 1..9 row-major, so crossing a door
// moves by a fixed room id delta
type DoorSide int

const (
	SideNone DoorSide = iota
	SideNorth
	SideEast
	SideSouth
	SideWest
)

// Opposite returns the side a traveller arrives on after crossing a door on s
func (s DoorSide) Opposite() DoorSide {
	switch s {
	case SideNorth:
		return SideSouth
	case SideSouth:
		return SideNorth
	case SideEast:
		return SideWest
	case SideWest:
		return SideEast
	}
	return SideNone
}

// RoomDelta returns the room id offset reached through a door on s
func (s DoorSide) RoomDelta() int {
	switch s {
	case SideNorth:
		return -3
	case SideSouth:
		return 3
	case SideEast:
		return 1
	case SideWest:
		return -1
	}
	return 0
}

// Inward returns the step that leads from a door on s into the room
func (s DoorSide) Inward() Direction {
	switch s {
	case SideNorth:
		return DirDown
	case SideSouth:
		return DirUp
	case SideEast:
		return DirLeft
	case SideWest:
		return DirRight
	}
	return DirNone
}

// SideForDelta maps a room id offset to the door a traveller enters through
// Moving to room-1 (west) enters through that room's east door, and so on
func SideForDelta(delta int) DoorSide {
	switch delta {
	case -1:
		return SideEast
	case 1:
		return SideWest
	case -3:
		return SideSouth
	case 3:
		return SideNorth
	}
	return SideNone
}

// SideForCell derives the edge a door occupies from its cell in a width x height room
// Checked in the order north, east, west, south; interior cells yield SideNone
func SideForCell(p Point, width, height int) DoorSide {
	switch {
	case p.Y == 0:
		return SideNorth
	case p.X == width-1:
		return SideEast
	case p.X == 0:
		return SideWest
	case p.Y == height-1:
		return SideSouth
	}
	return SideNone
}

func (s DoorSide) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideEast:
		return "east"
	case SideSouth:
		return "south"
	case SideWest:
		return "west"
	}
	return "none"
}
