package system

import (
	"log"
	"time"

	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/puzzle"
)

// PuzzleSystem runs the active room's checker whenever the world raised check-solve
type PuzzleSystem struct {
	world *engine.World
	// Lookup resolves a room's puzzle name to its checker
	Lookup func(name string) puzzle.Checker
}

func NewPuzzleSystem(world *engine.World) *PuzzleSystem {
	return &PuzzleSystem{world: world, Lookup: puzzle.For}
}

func (s *PuzzleSystem) Name() string {
	return "puzzle"
}

func (s *PuzzleSystem) Priority() int {
	return parameter.PriorityPuzzle
}

func (s *PuzzleSystem) Update(dt time.Duration) {
	w := s.world
	if !w.CheckSolve || w.Room == nil {
		return
	}
	w.CheckSolve = false

	id := w.RoomID()
	if w.Solved[id] {
		// Solving elsewhere may have released the final door
		if n := w.UnlockDoors(); n > 0 {
			log.Printf("[puzzle] room %d: %d doors released", id, n)
		}
		return
	}
	if !s.Lookup(w.Room.Puzzle).Check(w) {
		return
	}

	w.Solved[id] = true
	n := w.UnlockDoors()
	log.Printf("[puzzle] room %d solved (%s), %d doors unlocked", id, w.Room.Puzzle, n)
	w.PushEvent(event.EventRoomSolved, &event.RoomSolvedPayload{Room: id})
}
