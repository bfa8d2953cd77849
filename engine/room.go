package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/physics"
)

// Room is one bounded tile area and its cached entity set
type Room struct {
	ID     int
	Width  int
	Height int

	// Entities in stable update order; the player handle sits at a fixed slot
	Entities []core.Entity
	// Background holds decoration runes, row-major, 0 for bare floor
	Background []rune

	Puzzle  string
	Pattern []int
	Riddle  string

	// Spawn is the player's tile-defined start, used when no entry door applies
	Spawn    core.Point
	HasSpawn bool
	// AgentSpawn is the pursuit agent's fallback cell
	AgentSpawn    core.Point
	HasAgentSpawn bool
}

// BackgroundAt returns the decoration rune at p, 0 when none
func (r *Room) BackgroundAt(p core.Point) rune {
	if !p.In(r.Width, r.Height) {
		return 0
	}
	return r.Background[p.Y*r.Width+p.X]
}

// DrawPasses partitions the active room into the fixed draw order
type DrawPasses struct {
	Background []core.Entity
	Player     []core.Entity
	Foreground []core.Entity
}

// EnterRoom makes id the active room; the player arrives through the door on the entry side
// A cached room is restored verbatim; otherwise it is built from the source
func (w *World) EnterRoom(id int, entry core.DoorSide) error {
	room, restored := w.rooms[id]
	if !restored {
		data, err := w.Source.Room(id)
		if err != nil {
			return fmt.Errorf("enter room %d: %w", id, err)
		}
		room = w.buildRoom(data)
		w.rooms[id] = room
	}

	w.Room = room
	w.Entry = entry
	w.MonsterActive = false
	w.reindex()

	w.placeEntity(w.Player, w.arrivalCell(entry))
	w.unlockEntryDoor(entry)

	w.GraphDirty = true
	w.CheckSolve = true
	log.Printf("[room] enter %d from %s (restored=%v)", id, entry, restored)
	w.PushEvent(event.EventRoomEntered, &event.RoomEnteredPayload{Room: id, Entry: entry, Restored: restored})
	return nil
}

// HasCachedRoom reports whether id has been visited since the last reset
func (w *World) HasCachedRoom(id int) bool {
	_, ok := w.rooms[id]
	return ok
}

// ResetRooms drops the room cache and every room-owned entity
func (w *World) ResetRooms() {
	for _, room := range w.rooms {
		for _, e := range room.Entities {
			if e != w.Player && e != w.Monster {
				w.Components.removeAll(e)
			}
		}
	}
	w.rooms = make(map[int]*Room)
	w.Solved = make(map[int]bool)
	w.Room = nil
	w.Entry = core.SideNone
	w.MonsterActive = false
	w.Grid.Resize(0, 0)
	w.CheckSolve = false
	w.GraphDirty = true

	for _, e := range []core.Entity{w.Player, w.Monster} {
		m, _ := w.Components.Motion.Get(e)
		physics.Place(&m, core.Point{})
		w.Components.Motion.Set(e, m)
	}
}

// UpdateRoom removes dead entities, then advances every live entity in list order
func (w *World) UpdateRoom(dt time.Duration) {
	if w.Room == nil {
		return
	}
	w.removeDead()

	step := w.Step(dt)
	for _, e := range w.Room.Entities {
		if m, ok := w.Components.Motion.Get(e); ok && m.Moving {
			from := m.Cell
			if physics.Advance(&m, step) {
				if from != m.Cell {
					w.Grid.Remove(e, from)
					w.GraphDirty = true
				}
				w.Components.Motion.Set(e, m)
				w.onArrive(e, m.Cell)
			} else {
				w.Components.Motion.Set(e, m)
			}
		}

		if b, ok := w.Components.Block.Get(e); ok && b.Falling && !w.IsDead(e) {
			done := b.AdvanceFall(dt, parameter.FallFrames, parameter.FallFrameDuration)
			w.Components.Block.Set(e, b)
			if done {
				w.completeFall(e, b)
			}
		}
	}
}

// DrawPasses returns background (holes first), player and foreground passes
func (w *World) DrawPasses() DrawPasses {
	var passes DrawPasses
	if w.Room == nil {
		return passes
	}

	var magicHoles, holes, rest []core.Entity
	for _, e := range w.Room.Entities {
		if w.IsDead(e) {
			continue
		}
		switch kind := w.Components.KindOf(e); {
		case e == w.Player:
			passes.Player = append(passes.Player, e)
		case kind == component.KindMagicHole:
			magicHoles = append(magicHoles, e)
		case kind == component.KindHole:
			holes = append(holes, e)
		case kind.Class() == component.ClassForeground:
			passes.Foreground = append(passes.Foreground, e)
		default:
			rest = append(rest, e)
		}
	}
	passes.Background = append(append(magicHoles, holes...), rest...)
	return passes
}

// UnlockDoors unlocks the active room's doors; final doors need every room solved
func (w *World) UnlockDoors() int {
	if w.Room == nil {
		return 0
	}
	allSolved := w.AllSolved()
	unlocked := 0
	for _, e := range w.Room.Entities {
		d, ok := w.Components.Door.Get(e)
		if !ok || !d.Locked || (d.Final && !allSolved) {
			continue
		}
		d.Locked = false
		w.Components.Door.Set(e, d)
		unlocked++
	}
	return unlocked
}

// DoorOnSide finds the active room's door on a side
func (w *World) DoorOnSide(side core.DoorSide) (core.Entity, component.DoorComponent, bool) {
	if w.Room == nil || side == core.SideNone {
		return 0, component.DoorComponent{}, false
	}
	for _, e := range w.Room.Entities {
		if d, ok := w.Components.Door.Get(e); ok && d.Side == side {
			return e, d, true
		}
	}
	return 0, component.DoorComponent{}, false
}

// DoorArrival returns the walkable cell just inside the door on side
func (w *World) DoorArrival(side core.DoorSide) (core.Point, bool) {
	e, _, ok := w.DoorOnSide(side)
	if !ok {
		return core.Point{}, false
	}
	m, _ := w.Components.Motion.Get(e)
	return m.Cell.Add(side.Inward()), true
}

// NearestFree returns the closest in-bounds cell without a blocking occupant, scanning rings by distance
func (w *World) NearestFree(from core.Point) (core.Point, bool) {
	if w.Room == nil {
		return from, false
	}
	maxD := w.Room.Width + w.Room.Height
	for d := 0; d <= maxD; d++ {
		for dy := -d; dy <= d; dy++ {
			dx := d - abs(dy)
			for _, p := range [2]core.Point{{X: from.X - dx, Y: from.Y + dy}, {X: from.X + dx, Y: from.Y + dy}} {
				if p.In(w.Room.Width, w.Room.Height) && !w.cellBlocked(p) {
					return p, true
				}
				if dx == 0 {
					break
				}
			}
		}
	}
	return from, false
}

// cellBlocked reports a blocking occupant at p, other than the player
func (w *World) cellBlocked(p core.Point) bool {
	for _, e := range w.Grid.At(p) {
		if e != w.Player && w.isBlocking(e) {
			return true
		}
	}
	return false
}

func (w *World) arrivalCell(entry core.DoorSide) core.Point {
	target := core.Pt(w.Room.Width/2, w.Room.Height/2)
	if p, ok := w.DoorArrival(entry); ok {
		target = p
	} else if w.Room.HasSpawn {
		target = w.Room.Spawn
	}
	free, _ := w.NearestFree(target)
	return free
}

func (w *World) unlockEntryDoor(entry core.DoorSide) {
	e, d, ok := w.DoorOnSide(entry)
	if !ok || !d.Locked || d.Final {
		return
	}
	d.Locked = false
	w.Components.Door.Set(e, d)
}

// reindex rebuilds the cell index of the active room from motion state
func (w *World) reindex() {
	w.Grid.Resize(w.Room.Width, w.Room.Height)
	for _, e := range w.Room.Entities {
		// The player is placed by the caller
		if e == w.Player || w.IsDead(e) {
			continue
		}
		m, ok := w.Components.Motion.Get(e)
		if !ok {
			continue
		}
		if !w.Grid.Add(e, m.Cell) {
			log.Printf("[room] cell %s full, entity %d not indexed", m.Cell, e)
		}
		if m.Moving {
			w.Grid.Add(e, m.Desired)
		}
	}
}

func (w *World) removeDead() {
	live := w.Room.Entities[:0]
	for _, e := range w.Room.Entities {
		if w.IsDead(e) && e != w.Player {
			w.DestroyEntity(e)
			continue
		}
		live = append(live, e)
	}
	// Clear the tail so dropped handles are not kept alive
	for i := len(live); i < len(w.Room.Entities); i++ {
		w.Room.Entities[i] = 0
	}
	w.Room.Entities = live
}

// onArrive starts the fall when a block settles on a matching hole
func (w *World) onArrive(e core.Entity, cell core.Point) {
	b, ok := w.Components.Block.Get(e)
	if !ok {
		return
	}
	w.CheckSolve = true
	for _, other := range w.Grid.At(cell) {
		h, ok := w.Components.Hole.Get(other)
		if ok && h.Accepts(b.Symbol) {
			b.StartFall(other)
			w.Components.Block.Set(e, b)
			return
		}
	}
}

func (w *World) completeFall(e core.Entity, b component.BlockComponent) {
	h, ok := w.Components.Hole.Get(b.Hole)
	if ok {
		h.Filled = true
		w.Components.Hole.Set(b.Hole, h)
	}
	m, _ := w.Components.Motion.Get(e)
	w.Grid.Remove(e, m.Cell)
	w.Components.Death.Set(e, component.DeathComponent{})

	w.CheckSolve = true
	w.GraphDirty = true
	w.PushEvent(event.EventHoleFilled, &event.HoleFilledPayload{Hole: b.Hole, Block: e, Cell: m.Cell})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
