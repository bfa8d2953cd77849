package component

import (
	"time"

	"github.com/lixenwraith/hollow/core"
)

// BlockComponent is the pushable payload: its symbol and the fall-into-hole animation
type BlockComponent struct {
	Symbol rune

	// Fall animation: Falling from the moment the block settles on a matching hole
	// until Frame reaches FallFrames
	Falling   bool
	Frame     int
	FrameTime time.Duration
	Hole      core.Entity
}

// StartFall begins the fall animation into hole
func (b *BlockComponent) StartFall(hole core.Entity) {
	b.Falling = true
	b.Frame = 0
	b.FrameTime = 0
	b.Hole = hole
}

// AdvanceFall steps the animation by dt and reports completion
// Completion is sticky: once done, further calls keep returning true
func (b *BlockComponent) AdvanceFall(dt time.Duration, frames int, frameDuration time.Duration) bool {
	if !b.Falling {
		return false
	}
	if b.Frame >= frames {
		return true
	}
	b.FrameTime += dt
	for b.FrameTime >= frameDuration && b.Frame < frames {
		b.FrameTime -= frameDuration
		b.Frame++
	}
	return b.Frame >= frames
}
