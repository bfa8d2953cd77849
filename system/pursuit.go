package system

import (
	"log"
	"math"
	"slices"
	"time"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/config"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/engine/fsm"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/navigation"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/physics"
	"github.com/lixenwraith/hollow/vmath"
)

// Pursuit states
const (
	PursuitIdle fsm.StateID = iota + 1
	PursuitRoomSelect
	PursuitAligning
	PursuitChasing
)

var agentSide = vmath.FromInt(parameter.TileSize)

// PursuitSystem drives the chasing agent
// The agent haunts one room of the board at a time; it is only on the board while it shares the player's room
type PursuitSystem struct {
	world   *engine.World
	machine *fsm.Machine[*PursuitSystem]
	cfg     config.PursuitConfig

	// room is the agent's tracked room, entry the side it comes in through
	room     int
	entry    core.DoorSide
	lastRoom int

	relocate   engine.Timer
	relocateCD engine.Cooldown
	catchCD    engine.Cooldown

	// playerLeft is the room the player last walked out of, avoided while leftCD runs
	playerLeft  int
	leftCD      engine.Cooldown
	pendingFrom int
	pendingTo   int

	path       navigation.Path
	generation uint64
	searched   bool
	reachable  bool

	// Follow decision taken when the player crosses a door mid-chase
	follow     bool
	followRoom int
	followSide core.DoorSide

	dt      time.Duration
	enabled bool
}

func NewPursuitSystem(world *engine.World) *PursuitSystem {
	s := &PursuitSystem{
		world: world,
		cfg:   world.Config.Pursuit,
	}
	s.relocate.Interval = s.cfg.MoveInterval.Duration

	m := fsm.NewMachine[*PursuitSystem]()
	m.AddState(PursuitIdle, "idle").
		Enter((*PursuitSystem).enterIdle)
	m.AddState(PursuitRoomSelect, "room-select").
		Enter((*PursuitSystem).selectRoom).
		Update((*PursuitSystem).updateRoomSelect)
	m.AddState(PursuitAligning, "aligning").
		Enter((*PursuitSystem).enterAligning).
		Update((*PursuitSystem).updateAligning)
	m.AddState(PursuitChasing, "chasing").
		Enter((*PursuitSystem).enterChasing).
		Update((*PursuitSystem).updateChasing)

	m.AddTransition(PursuitIdle, fsm.Transition[*PursuitSystem]{TargetID: PursuitAligning, Guard: (*PursuitSystem).sharesRoom})
	m.AddTransition(PursuitIdle, fsm.Transition[*PursuitSystem]{TargetID: PursuitRoomSelect, Guard: (*PursuitSystem).rollRelocation})
	m.AddTransition(PursuitRoomSelect, fsm.Transition[*PursuitSystem]{TargetID: PursuitAligning, Guard: (*PursuitSystem).sharesRoom})
	m.AddTransition(PursuitAligning, fsm.Transition[*PursuitSystem]{TargetID: PursuitIdle, Guard: (*PursuitSystem).playerAway})
	m.AddTransition(PursuitAligning, fsm.Transition[*PursuitSystem]{TargetID: PursuitChasing, Guard: (*PursuitSystem).onBoard})
	m.AddTransition(PursuitChasing, fsm.Transition[*PursuitSystem]{TargetID: PursuitIdle, Event: event.EventGameReset})

	m.OnChange = s.stateChanged
	s.machine = m

	s.room = s.cfg.StartRoom
	s.enabled = s.cfg.Enabled
	if err := m.Init(s); err != nil {
		log.Printf("[pursuit] init: %v", err)
	}
	return s
}

func (s *PursuitSystem) Name() string {
	return "pursuit"
}

func (s *PursuitSystem) Priority() int {
	return parameter.PriorityPursuit
}

func (s *PursuitSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRoomChangeRequest,
		event.EventRoomEntered,
		event.EventGameReset,
	}
}

func (s *PursuitSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.reset()

	case event.EventRoomChangeRequest:
		if payload, ok := ev.Payload.(*event.RoomChangePayload); ok {
			s.pendingFrom, s.pendingTo = payload.From, payload.To
			s.decideFollow(payload)
		}

	case event.EventRoomEntered:
		if payload, ok := ev.Payload.(*event.RoomEnteredPayload); ok {
			if s.pendingTo != 0 && payload.Room == s.pendingTo {
				s.playerLeft = s.pendingFrom
				s.leftCD.Start(s.world.Clock.Now(), s.cfg.RelocateCooldown.Duration)
			}
			s.pendingFrom, s.pendingTo = 0, 0
			s.playerEntered(payload.Room)
		}
	}
}

func (s *PursuitSystem) Update(dt time.Duration) {
	// A crossing that went through is answered by RoomEntered within the same dispatch;
	// anything still pending here was refused
	s.dropStaleCrossing()
	if !s.enabled || s.world.Room == nil {
		return
	}
	s.dt = dt
	s.machine.Update(s, dt)
}

// State returns the active pursuit state
func (s *PursuitSystem) State() fsm.StateID {
	return s.machine.State()
}

// StateName returns the active pursuit state name
func (s *PursuitSystem) StateName() string {
	return s.machine.StateName()
}

// Room returns the agent's tracked room
func (s *PursuitSystem) Room() int {
	return s.room
}

// Path returns a copy of the remaining path, excluding the cell being entered
func (s *PursuitSystem) Path() navigation.Path {
	return slices.Clone(s.path)
}

// Reachable reports whether the last search found the player
func (s *PursuitSystem) Reachable() bool {
	return s.reachable
}

// CatchCooldown returns the time left before the agent may re-enter the player's room
func (s *PursuitSystem) CatchCooldown() time.Duration {
	return s.catchCD.Remaining(s.world.Clock.Now())
}

// --- Guards ---

func (s *PursuitSystem) sharesRoom() bool {
	return s.room == s.world.RoomID() && !s.catchCD.Active(s.world.Clock.Now())
}

// rollRelocation consumes the relocation timer, then rolls the move chance
// An agent sharing the player's room during the catch cooldown keeps rolling to leave it
func (s *PursuitSystem) rollRelocation() bool {
	now := s.world.Clock.Now()
	if s.room == s.world.RoomID() && !s.catchCD.Active(now) {
		return false
	}
	return s.relocate.Elapsed(now) && s.world.Rand.Chance(s.cfg.MoveChance)
}

func (s *PursuitSystem) playerAway() bool {
	return s.room != s.world.RoomID()
}

func (s *PursuitSystem) onBoard() bool {
	return s.world.MonsterActive
}

// --- Actions ---

func (s *PursuitSystem) enterIdle() {
	s.world.MonsterActive = false
	s.clearPath()
	s.follow = false
	s.relocate.Reset(s.world.Clock.Now())
}

func (s *PursuitSystem) updateRoomSelect() {
	if s.rollRelocation() {
		s.selectRoom()
	}
}

// selectRoom moves the agent to a random neighbour of its room
func (s *PursuitSystem) selectRoom() {
	now := s.world.Clock.Now()
	player := s.world.RoomID()

	candidates := adjacentRooms(s.room)
	if s.catchCD.Active(now) {
		candidates = slices.DeleteFunc(candidates, func(id int) bool { return id == player })
	}
	if s.relocateCD.Active(now) && s.lastRoom != 0 {
		candidates = preferWithout(candidates, s.lastRoom)
	}
	if s.leftCD.Active(now) && s.playerLeft != 0 {
		candidates = preferWithout(candidates, s.playerLeft)
	}
	if len(candidates) == 0 {
		return
	}

	next := candidates[s.world.Rand.Intn(len(candidates))]
	s.lastRoom = s.room
	s.entry = core.SideForDelta(next - s.room)
	s.room = next
	s.relocateCD.Start(now, s.cfg.RelocateCooldown.Duration)
	log.Printf("[pursuit] relocate %d -> %d, entering %s", s.lastRoom, s.room, s.entry)
}

func (s *PursuitSystem) enterAligning() {
	s.world.MonsterActive = false
	s.clearPath()
}

// updateAligning keeps the agent off the board for the align delay, then places it at its entry
func (s *PursuitSystem) updateAligning() {
	if s.playerAway() || s.machine.TimeInState() < s.cfg.AlignDelay.Duration {
		return
	}
	cell, ok := s.entryCell()
	if !ok {
		return
	}

	w := s.world
	m, _ := w.Components.Motion.Get(w.Monster)
	physics.Place(&m, cell)
	w.Components.Motion.Set(w.Monster, m)
	w.MonsterActive = true
	log.Printf("[pursuit] emerged in room %d at %s", s.room, cell)
}

// entryCell picks the agent's door, then the player's entry door, then the room's agent spawn
func (s *PursuitSystem) entryCell() (core.Point, bool) {
	w := s.world
	for _, side := range []core.DoorSide{s.entry, w.Entry} {
		if e, _, ok := w.DoorOnSide(side); ok {
			m, _ := w.Components.Motion.Get(e)
			return m.Cell, true
		}
	}
	if w.Room.HasAgentSpawn {
		return w.Room.AgentSpawn, true
	}
	return w.NearestFree(core.Pt(w.Room.Width/2, w.Room.Height/2))
}

func (s *PursuitSystem) enterChasing() {
	s.clearPath()
}

// updateChasing re-plans on every graph rebuild and otherwise walks the current path
func (s *PursuitSystem) updateChasing() {
	w := s.world
	generation, _ := w.EnsureGraph()
	m, _ := w.Components.Motion.Get(w.Monster)
	player := w.PlayerMotion()

	if !s.searched || generation != s.generation {
		s.search(m, player.Cell, generation)
	}

	if !m.Moving && len(s.path) > 0 {
		physics.SetTarget(&m, s.path[0])
		s.path = s.path[1:]
	}
	physics.Advance(&m, w.Step(s.dt))
	w.Components.Motion.Set(w.Monster, m)

	if vmath.Overlap(m.X, m.Y, player.X, player.Y, agentSide) {
		s.catchPlayer(m.Cell)
	}
}

// search plans from the cell the agent is settling on; no path leaves the agent where it is
func (s *PursuitSystem) search(m component.MotionComponent, target core.Point, generation uint64) {
	anchor := m.Cell
	if m.Moving {
		anchor = m.Desired
	}
	path, ok := s.world.Nav.Graph.Search(anchor, target)

	if ok != s.reachable || !s.searched {
		log.Printf("[pursuit] room %d: player at %s reachable=%v", s.room, target, ok)
	}
	s.searched = true
	s.reachable = ok
	s.generation = generation
	s.path = nil
	if ok {
		s.path = path[1:]
	}
}

func (s *PursuitSystem) catchPlayer(cell core.Point) {
	w := s.world
	s.catchCD.Start(w.Clock.Now(), s.cfg.CatchCooldown.Duration)
	log.Printf("[pursuit] caught player in room %d at %s", w.RoomID(), cell)
	w.PushEvent(event.EventPlayerCaught, &event.PlayerCaughtPayload{Room: w.RoomID(), Cell: cell})
	s.machine.Transition(s, PursuitIdle)
}

// decideFollow runs before the room swap, while both are still on the old board
func (s *PursuitSystem) decideFollow(p *event.RoomChangePayload) {
	w := s.world
	if s.machine.State() != PursuitChasing || !w.MonsterActive {
		return
	}
	m, _ := w.Components.Motion.Get(w.Monster)
	player := w.PlayerMotion()
	dist := math.Hypot(vmath.ToFloat(m.X-player.X), vmath.ToFloat(m.Y-player.Y))
	if dist >= s.cfg.ChaseDistance {
		return
	}
	s.follow = true
	s.followRoom = p.To
	s.followSide = p.Exit.Opposite()
}

func (s *PursuitSystem) playerEntered(room int) {
	if s.machine.State() != PursuitChasing || room == s.room {
		return
	}
	if s.follow && room == s.followRoom {
		s.lastRoom = s.room
		s.room = room
		s.entry = s.followSide
		s.follow = false
		log.Printf("[pursuit] following player into room %d through %s", room, s.entry)
		s.machine.Transition(s, PursuitAligning)
		return
	}
	s.machine.Transition(s, PursuitIdle)
}

func (s *PursuitSystem) reset() {
	s.room = s.cfg.StartRoom
	s.lastRoom = 0
	s.entry = core.SideNone
	s.playerLeft = 0
	s.leftCD = engine.Cooldown{}
	s.pendingFrom, s.pendingTo = 0, 0
	if !s.machine.HandleEvent(s, event.EventGameReset) {
		s.machine.Transition(s, PursuitIdle)
	}
	// Transition is a no-op when already idle
	s.enterIdle()
}

// dropStaleCrossing forgets a crossing that never produced RoomEntered
func (s *PursuitSystem) dropStaleCrossing() {
	if s.pendingTo == 0 && !s.follow {
		return
	}
	if s.follow {
		log.Printf("[pursuit] crossing into room %d refused, not following", s.followRoom)
	}
	s.pendingFrom, s.pendingTo = 0, 0
	s.follow = false
	s.followRoom = 0
}

func (s *PursuitSystem) clearPath() {
	s.path = nil
	s.searched = false
	s.reachable = false
}

func (s *PursuitSystem) stateChanged(from, to fsm.StateID) {
	fromName, toName := s.machine.Name(from), s.machine.Name(to)
	log.Printf("[pursuit] %s -> %s (room %d)", fromName, toName, s.room)
	s.world.PushEvent(event.EventPursuitState, &event.PursuitStatePayload{From: fromName, To: toName, Room: s.room})
}

// preferWithout drops id from candidates unless nothing else would remain
func preferWithout(candidates []int, id int) []int {
	rest := slices.DeleteFunc(slices.Clone(candidates), func(c int) bool { return c == id })
	if len(rest) == 0 {
		return candidates
	}
	return rest
}

// adjacentRooms lists the board neighbours of room: same-row ±1 and ±LayoutColumns
func adjacentRooms(room int) []int {
	var out []int
	for _, delta := range []int{-1, 1, -parameter.LayoutColumns, parameter.LayoutColumns} {
		next := room + delta
		if next < 1 || next > parameter.RoomCount {
			continue
		}
		if (delta == 1 || delta == -1) && (next-1)/parameter.LayoutColumns != (room-1)/parameter.LayoutColumns {
			continue
		}
		out = append(out, next)
	}
	return out
}
