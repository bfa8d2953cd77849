package component

// TorchComponent is a static light the player toggles
type TorchComponent struct {
	Lit bool
	// Index is the torch's order in the room, row-major
	Index int
}
