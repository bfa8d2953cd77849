package engine

import (
	"slices"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/physics"
)

// MoveOutcome is the result class of a move request
type MoveOutcome uint8

const (
	// MoveAccepted: every chain member received the direction
	MoveAccepted MoveOutcome = iota
	// MoveBlocked: nothing changed
	MoveBlocked
	// MoveDoor: the player hit an unlocked door; a room change was requested
	MoveDoor
	// MoveBusy: the mover is already sliding or falling
	MoveBusy
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveAccepted:
		return "accepted"
	case MoveBlocked:
		return "blocked"
	case MoveDoor:
		return "door"
	case MoveBusy:
		return "busy"
	}
	return "invalid"
}

// MoveResult reports a resolved move request
type MoveResult struct {
	Outcome MoveOutcome
	// Chain is the mover followed by every pushed entity, in push order
	Chain []core.Entity
	// Door is the door entity for MoveDoor
	Door core.Entity
}

// probe is the verdict on one target cell
type probe uint8

const (
	probeFree probe = iota
	probeBlocked
	probeDoor
	probePush
)

// RequestMove resolves a move of e by one cell in dir
// The full push chain is validated before any state changes; on success all members move together
func (w *World) RequestMove(e core.Entity, dir core.Direction) MoveResult {
	if w.Room == nil || !dir.IsCardinal() {
		return MoveResult{Outcome: MoveBlocked}
	}
	m, ok := w.Components.Motion.Get(e)
	if !ok {
		return MoveResult{Outcome: MoveBlocked}
	}
	if m.Moving || w.falling(e) {
		return MoveResult{Outcome: MoveBusy}
	}

	chain := []core.Entity{e}
	cur := m.Cell
	for {
		mover := chain[len(chain)-1]
		next := cur.Add(dir)
		verdict, other := w.probeCell(mover, next, chain)
		switch verdict {
		case probeBlocked:
			w.cancelMove(e, m)
			return MoveResult{Outcome: MoveBlocked, Chain: chain}
		case probeDoor:
			w.cancelMove(e, m)
			if len(chain) > 1 {
				return MoveResult{Outcome: MoveBlocked, Chain: chain}
			}
			w.requestRoomChange(other)
			return MoveResult{Outcome: MoveDoor, Chain: chain, Door: other}
		case probePush:
			chain = append(chain, other)
			cur = next
			continue
		}
		break
	}

	w.commit(chain, dir)
	return MoveResult{Outcome: MoveAccepted, Chain: chain}
}

// cancelMove zeroes the direction of a rejected requester
func (w *World) cancelMove(e core.Entity, m component.MotionComponent) {
	physics.Cancel(&m)
	w.Components.Motion.Set(e, m)
}

// probeCell classifies cell for mover
// Occupants are examined in ascending id order so a violated invariant still resolves deterministically
func (w *World) probeCell(mover core.Entity, cell core.Point, chain []core.Entity) (probe, core.Entity) {
	if !cell.In(w.Room.Width, w.Room.Height) {
		return probeBlocked, 0
	}

	moverClass := w.Components.KindOf(mover).Class()
	occupants := slices.Clone(w.Grid.At(cell))
	slices.Sort(occupants)

	var door, pushed core.Entity
	for _, o := range occupants {
		// Self-collision is skipped
		if slices.Contains(chain, o) || w.IsDead(o) {
			continue
		}
		switch w.Components.KindOf(o).Class() {
		case component.ClassForeground, component.ClassPathingAgent:
			continue

		case component.ClassStatic:
			d, isDoor := w.Components.Door.Get(o)
			if !isDoor || d.Locked || moverClass != component.ClassPlayerControlled {
				return probeBlocked, o
			}
			if door == 0 {
				door = o
			}

		case component.ClassHole:
			h, _ := w.Components.Hole.Get(o)
			if h.Filled {
				continue
			}
			b, isBlock := w.Components.Block.Get(mover)
			if !isBlock || !h.Accepts(b.Symbol) {
				return probeBlocked, o
			}

		case component.ClassPushable:
			om, _ := w.Components.Motion.Get(o)
			if om.Moving {
				// Leaving the cell frees it; entering reserves it
				if om.Cell == cell {
					continue
				}
				return probeBlocked, o
			}
			if w.falling(o) {
				return probeBlocked, o
			}
			if pushed == 0 {
				pushed = o
			}

		case component.ClassPlayerControlled:
			if moverClass != component.ClassPlayerControlled {
				return probeBlocked, o
			}
		}
	}

	switch {
	case door != 0 && pushed != 0:
		return probeBlocked, pushed
	case door != 0:
		return probeDoor, door
	case pushed != 0:
		return probePush, pushed
	}
	return probeFree, 0
}

// commit hands dir to every chain member and reserves their target cells
func (w *World) commit(chain []core.Entity, dir core.Direction) {
	for _, e := range chain {
		m, _ := w.Components.Motion.Get(e)
		physics.RequestDirection(&m, dir)
		w.Components.Motion.Set(e, m)
		w.Grid.Add(e, m.Desired)
	}
	w.GraphDirty = true
	if len(chain) > 1 {
		w.PushEvent(event.EventBlockPushed, &event.BlockPushedPayload{
			Pusher: chain[0],
			Chain:  slices.Clone(chain[1:]),
			Dir:    dir,
		})
	}
}

func (w *World) requestRoomChange(door core.Entity) {
	d, _ := w.Components.Door.Get(door)
	from := w.RoomID()
	w.PushEvent(event.EventRoomChangeRequest, &event.RoomChangePayload{
		From: from,
		To:   from + d.RoomDelta,
		Exit: d.Side,
		Door: door,
	})
}

func (w *World) falling(e core.Entity) bool {
	b, ok := w.Components.Block.Get(e)
	return ok && b.Falling
}
