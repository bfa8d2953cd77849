package system

import (
	"time"

	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/parameter"
)

// MovementSystem advances every live entity of the active room one tick
// Slides commit to their cells here and blocks settling on matching holes start falling
type MovementSystem struct {
	world *engine.World
}

func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Update(dt time.Duration) {
	s.world.UpdateRoom(dt)
}
