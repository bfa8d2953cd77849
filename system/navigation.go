package system

import (
	"time"

	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/parameter"
)

// NavigationSystem rebuilds the connectivity graph at the end of the tick when walkability changed
// The pursuit system may already have rebuilt it earlier in the same tick
type NavigationSystem struct {
	world *engine.World

	// Generation of the last graph seen
	Generation uint64
}

func NewNavigationSystem(world *engine.World) *NavigationSystem {
	return &NavigationSystem{world: world}
}

func (s *NavigationSystem) Name() string {
	return "navigation"
}

func (s *NavigationSystem) Priority() int {
	return parameter.PriorityNavigation
}

func (s *NavigationSystem) Update(dt time.Duration) {
	s.Generation, _ = s.world.EnsureGraph()
}
