package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/config"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/input"
	"github.com/lixenwraith/hollow/level"
	"github.com/lixenwraith/hollow/navigation"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/physics"
	"github.com/lixenwraith/hollow/vmath"
)

// System is a per-tick participant of the simulation
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(dt time.Duration)
}

// World is the single owned simulation state threaded through every system
// All mutation happens on the tick goroutine; nothing here is synchronized
type World struct {
	Config     *config.Config
	Clock      Clock
	Rand       *vmath.FastRand
	Events     *event.EventQueue
	Components ComponentStore
	Source     level.Source

	// Grid indexes the active room
	Grid *SpatialGrid
	// Room is the active room, nil before the first EnterRoom
	Room *Room
	// Entry is the side the player entered the active room from
	Entry core.DoorSide

	rooms map[int]*Room

	// Player and Monster persist across rooms
	Player  core.Entity
	Monster core.Entity
	// MonsterActive is set while the agent is on the board of the active room
	MonsterActive bool

	// Nav caches the connectivity graph of the active room
	Nav *navigation.GraphCache
	// GraphDirty is raised by any walkability change
	GraphDirty bool
	// CheckSolve is raised by pushes, falls and torch toggles
	CheckSolve bool
	Solved     map[int]bool

	// Input is the snapshot of the current tick
	Input input.Snapshot

	nextEntity core.Entity
	systems    []System
	speed      int64
}

// NewWorld creates a world over a room source; the player and agent exist from the start
func NewWorld(cfg *config.Config, src level.Source) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	w := &World{
		Config:     cfg,
		Rand:       vmath.NewFastRand(uint64(cfg.Dungeon.Seed)),
		Events:     event.NewEventQueue(),
		Components: newComponentStore(),
		Source:     src,
		Grid:       NewSpatialGrid(0, 0),
		Nav:        navigation.NewGraphCache(),
		rooms:      make(map[int]*Room),
		Solved:     make(map[int]bool),
		nextEntity: 1,
		speed:      vmath.FromFloat(cfg.Movement.EntitySpeed),
	}

	w.Player = w.CreateEntity()
	w.Components.Kind.Set(w.Player, component.KindComponent{Kind: component.KindPlayer, Glyph: '@'})
	w.Components.Motion.Set(w.Player, component.MotionComponent{})

	w.Monster = w.CreateEntity()
	w.Components.Kind.Set(w.Monster, component.KindComponent{Kind: component.KindMonster, Glyph: 'M'})
	w.Components.Motion.Set(w.Monster, component.MotionComponent{
		SpeedFactor: vmath.FromFloat(cfg.Pursuit.SpeedFactor),
	})

	return w
}

// CreateEntity reserves a new entity ID; ids grow with creation order
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntity
	w.nextEntity++
	return id
}

// DestroyEntity removes all components of e and its cell index entries
func (w *World) DestroyEntity(e core.Entity) {
	if m, ok := w.Components.Motion.Get(e); ok && w.Room != nil {
		w.Grid.Remove(e, m.Cell)
		w.Grid.Remove(e, m.Desired)
	}
	w.Components.removeAll(e)
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Stable insertion sort, small N
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update(dt time.Duration) {
	for _, s := range w.systems {
		s.Update(dt)
	}
}

// PushEvent emits a game event stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Events.SetTick(w.Clock.Tick())
	w.Events.Push(eventType, payload)
}

// RoomID returns the active room id, 0 before the first room
func (w *World) RoomID() int {
	if w.Room == nil {
		return 0
	}
	return w.Room.ID
}

// Step returns the base movement distance for dt in Q32.32 units
func (w *World) Step(dt time.Duration) int64 {
	return vmath.Rate(w.speed, dt)
}

// IsDead reports whether e is marked for removal
func (w *World) IsDead(e core.Entity) bool {
	return w.Components.Death.Has(e)
}

// AllSolved reports whether every room of the layout is solved
func (w *World) AllSolved() bool {
	for id := 1; id <= parameter.RoomCount; id++ {
		if !w.Solved[id] {
			return false
		}
	}
	return true
}

// isBlocking reports whether e's resting cell is exclusive
// The player counts: no blocking entity may rest under it
func (w *World) isBlocking(e core.Entity) bool {
	switch w.Components.KindOf(e).Class() {
	case component.ClassStatic, component.ClassPlayerControlled:
		return true
	case component.ClassPushable:
		b, _ := w.Components.Block.Get(e)
		return !b.Falling
	case component.ClassHole:
		h, _ := w.Components.Hole.Get(e)
		return !h.Filled
	}
	return false
}

// CheckInvariant verifies that no two blocking entities share a resting cell
// A violation means a resolver bug; callers treat it as fatal
func (w *World) CheckInvariant() error {
	if w.Room == nil {
		return nil
	}
	occupied := make(map[core.Point]core.Entity, len(w.Room.Entities))
	for _, e := range w.Room.Entities {
		if w.IsDead(e) || !w.isBlocking(e) {
			continue
		}
		m, ok := w.Components.Motion.Get(e)
		if !ok {
			continue
		}
		if other, dup := occupied[m.Cell]; dup {
			err := fmt.Errorf("room %d: cell %s shared by entities %d (%s) and %d (%s)",
				w.Room.ID, m.Cell, other, w.Components.KindOf(other), e, w.Components.KindOf(e))
			log.Printf("[world] invariant violated: %v", err)
			return err
		}
		occupied[m.Cell] = e
	}
	return nil
}

// PlayerMotion returns the player's motion state
func (w *World) PlayerMotion() component.MotionComponent {
	m, _ := w.Components.Motion.Get(w.Player)
	return m
}

// placeEntity snaps e onto p and indexes it
func (w *World) placeEntity(e core.Entity, p core.Point) {
	m, _ := w.Components.Motion.Get(e)
	if w.Room != nil {
		w.Grid.Remove(e, m.Cell)
		w.Grid.Remove(e, m.Desired)
	}
	physics.Place(&m, p)
	w.Components.Motion.Set(e, m)
	if w.Room != nil && e != w.Monster {
		w.Grid.Add(e, p)
	}
}
