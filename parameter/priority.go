package parameter

// System execution order, lower runs first
const (
	PriorityInput      = 10
	PriorityMovement   = 20
	PriorityPursuit    = 30
	PriorityPuzzle     = 40
	PriorityNavigation = 50
)
