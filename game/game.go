// Package game is the game-state layer: it owns the world, runs the per-tick system order
// and reacts to room changes, catches and victory
package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/hollow/config"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/input"
	"github.com/lixenwraith/hollow/level"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/system"
)

// State is the outer game state
type State uint8

const (
	StatePlaying State = iota
	StateCaught
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateCaught:
		return "caught"
	case StateWon:
		return "won"
	}
	return "unknown"
}

// Game wires the world, its systems and the event router
type Game struct {
	World *engine.World
	State State

	Input   *system.InputSystem
	Pursuit *system.PursuitSystem
	Puzzle  *system.PuzzleSystem

	// LastError is the most recent failed room change
	LastError error
	// CheckInvariants logs cell overlaps after every tick
	CheckInvariants bool

	router    *event.Router
	startRoom int
}

// New builds a game over src and enters the configured start room
func New(cfg *config.Config, src level.Source) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if src == nil {
		return nil, errors.New("game: nil room source")
	}
	w := engine.NewWorld(cfg, src)
	g := &Game{
		World:     w,
		router:    event.NewRouter(w.Events),
		startRoom: cfg.Dungeon.StartRoom,
	}

	g.Input = system.NewInputSystem(w)
	g.Pursuit = system.NewPursuitSystem(w)
	g.Puzzle = system.NewPuzzleSystem(w)
	w.AddSystem(g.Input)
	w.AddSystem(system.NewMovementSystem(w))
	w.AddSystem(g.Pursuit)
	w.AddSystem(g.Puzzle)
	w.AddSystem(system.NewNavigationSystem(w))

	// Pursuit sees door crossings before the room swap
	g.router.Register(g.Pursuit)
	g.router.Register(g)

	if err := w.EnterRoom(g.startRoom, core.SideNone); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.router.DispatchAll()
	log.Printf("[game] started in room %d", g.startRoom)
	return g, nil
}

// Register adds an event handler, e.g. audio cues
func (g *Game) Register(h event.Handler) {
	g.router.Register(h)
}

// Tick advances the game by dt with this tick's input
// While caught or won only the restart key is honoured
func (g *Game) Tick(dt time.Duration, in input.Snapshot) {
	if in.Has(input.KeyRestart) {
		if err := g.Restart(); err != nil {
			log.Printf("[game] restart: %v", err)
		}
		return
	}
	if g.State != StatePlaying || dt <= 0 {
		return
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}

	w := g.World
	w.Clock.Advance(dt)
	w.Input = in
	w.Update(dt)
	w.Input = input.Snapshot{}
	g.router.DispatchAll()

	if g.CheckInvariants {
		if err := w.CheckInvariant(); err != nil {
			log.Printf("[game] tick %d: %v", w.Clock.Tick(), err)
		}
	}
}

// Restart drops every room and starts over; the agent's catch cooldown survives
func (g *Game) Restart() error {
	w := g.World
	w.ResetRooms()
	g.State = StatePlaying
	g.LastError = nil
	w.PushEvent(event.EventGameReset, nil)
	err := w.EnterRoom(g.startRoom, core.SideNone)
	g.router.DispatchAll()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	log.Printf("[game] restarted in room %d", g.startRoom)
	return nil
}

// SolvedCount returns the number of solved rooms
func (g *Game) SolvedCount() int {
	n := 0
	for id := 1; id <= parameter.RoomCount; id++ {
		if g.World.Solved[id] {
			n++
		}
	}
	return n
}

func (g *Game) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRoomChangeRequest,
		event.EventPlayerCaught,
		event.EventVictory,
	}
}

func (g *Game) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventRoomChangeRequest:
		if payload, ok := ev.Payload.(*event.RoomChangePayload); ok {
			g.changeRoom(payload)
		}

	case event.EventPlayerCaught:
		if g.State == StatePlaying {
			g.State = StateCaught
			log.Printf("[game] caught in room %d", g.World.RoomID())
		}

	case event.EventVictory:
		if g.State == StatePlaying {
			g.State = StateWon
			log.Printf("[game] won after %s", g.World.Clock.Now())
		}
	}
}

// changeRoom swaps the active room; the final door ends the game instead
func (g *Game) changeRoom(p *event.RoomChangePayload) {
	w := g.World
	if d, ok := w.Components.Door.Get(p.Door); ok && d.Final {
		w.PushEvent(event.EventVictory, nil)
		return
	}
	if err := w.EnterRoom(p.To, p.Exit.Opposite()); err != nil {
		g.LastError = err
		log.Printf("[game] room change %d -> %d failed: %v", p.From, p.To, err)
	}
}
