package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hollow/config"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/input"
)

func TestAdjacentRooms(t *testing.T) {
	cases := map[int][]int{
		1: {2, 4},
		3: {2, 6},
		4: {5, 1, 7},
		5: {4, 6, 2, 8},
		7: {8, 4},
		9: {8, 6},
	}
	for room, want := range cases {
		assert.Equal(t, want, adjacentRooms(room), "room %d", room)
	}
}

// runUntil ticks the pursuit system until cond holds or the budget runs out
func runUntil(t *testing.T, w *engine.World, ps *PursuitSystem, budget int, cond func() bool) bool {
	t.Helper()
	for i := 0; i < budget; i++ {
		if cond() {
			return true
		}
		tick(t, w, ps)
	}
	return cond()
}

func TestPursuitChasesAndCatches(t *testing.T) {
	w := newWorld(t, pursuitConfig(1, 100*time.Millisecond), 1, roomDoc(1, "none",
		"##########",
		"#@......M#",
		"##########",
	))
	ps := NewPursuitSystem(w)
	assert.Equal(t, PursuitIdle, ps.State())
	assert.False(t, w.MonsterActive)

	tick(t, w, ps)
	assert.Equal(t, PursuitAligning, ps.State())
	assert.False(t, w.MonsterActive, "agent stays off the board while aligning")

	require.True(t, runUntil(t, w, ps, 20, func() bool { return ps.State() == PursuitChasing }))
	assert.True(t, w.MonsterActive)
	assert.Equal(t, core.Pt(8, 1), cellOf(w, w.Monster), "no door: agent spawn tile")

	tick(t, w, ps)
	require.True(t, ps.Reachable())
	path := ps.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, core.Pt(1, 1), path[len(path)-1])

	caught := false
	for i := 0; i < 1000 && !caught; i++ {
		tick(t, w, ps)
		caught = hasEvent(w.Events.Consume(), event.EventPlayerCaught)
	}
	require.True(t, caught)
	assert.Equal(t, PursuitIdle, ps.State())
	assert.False(t, w.MonsterActive)
	assert.Positive(t, ps.CatchCooldown())

	// Cooldown keeps the agent out even though it shares the room
	for i := 0; i < 100; i++ {
		tick(t, w, ps)
	}
	assert.NotEqual(t, PursuitAligning, ps.State())
	assert.NotEqual(t, PursuitChasing, ps.State())

	// Reset sends the agent home but keeps the cooldown
	ps.HandleEvent(event.GameEvent{Type: event.EventGameReset})
	assert.Equal(t, PursuitIdle, ps.State())
	assert.Equal(t, 1, ps.Room())
	assert.Positive(t, ps.CatchCooldown())
}

func TestPursuitHoldsWhenUnreachable(t *testing.T) {
	w := newWorld(t, pursuitConfig(1, 0), 1, roomDoc(1, "none",
		"#########",
		"#@.#...M#",
		"#########",
	))
	ps := NewPursuitSystem(w)
	require.True(t, runUntil(t, w, ps, 10, func() bool { return ps.State() == PursuitChasing }))

	start := cellOf(w, w.Monster)
	for i := 0; i < 200; i++ {
		tick(t, w, ps)
	}
	m, _ := w.Components.Motion.Get(w.Monster)
	assert.Equal(t, start, m.Cell)
	assert.False(t, m.Moving)
	assert.False(t, ps.Reachable())
	assert.Empty(t, ps.Path())
	assert.Equal(t, PursuitChasing, ps.State())
}

func TestPursuitReplansWhenPlayerMoves(t *testing.T) {
	w := newWorld(t, pursuitConfig(1, 0), 1, roomDoc(1, "none",
		"###############",
		"#@...........M#",
		"###############",
	))
	ps := NewPursuitSystem(w)
	in := NewInputSystem(w)
	mv := NewMovementSystem(w)
	require.True(t, runUntil(t, w, ps, 10, func() bool { return ps.State() == PursuitChasing }))
	tick(t, w, ps)
	path := ps.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, core.Pt(1, 1), path[len(path)-1])

	w.Input = input.Snapshot{Pressed: []input.Key{input.KeyRight}}
	tick(t, w, in, mv, ps)
	w.Input = input.Snapshot{}
	for i := 0; i < 20; i++ {
		tick(t, w, in, mv, ps)
	}
	require.Equal(t, core.Pt(2, 1), cellOf(w, w.Player))

	path = ps.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, core.Pt(2, 1), path[len(path)-1])
}

// crossEast walks the player through the east door, delivering events the way the game does
func crossEast(t *testing.T, w *engine.World, ps *PursuitSystem) {
	t.Helper()
	res := w.RequestMove(w.Player, core.DirRight)
	require.Equal(t, engine.MoveDoor, res.Outcome)
	for _, ev := range w.Events.Consume() {
		if ev.Type != event.EventRoomChangeRequest {
			continue
		}
		ps.HandleEvent(ev)
		p := ev.Payload.(*event.RoomChangePayload)
		require.NoError(t, w.EnterRoom(p.To, p.Exit.Opposite()))
	}
	for _, ev := range w.Events.Consume() {
		ps.HandleEvent(ev)
	}
}

func TestPursuitFollowsThroughDoor(t *testing.T) {
	w := newWorld(t, pursuitConfig(1, 50*time.Millisecond), 1,
		roomDoc(1, "none",
			"#######",
			"#..M.@D",
			"#######",
		),
		roomDoc(2, "none",
			"#######",
			"D.....#",
			"#######",
		),
	)
	ps := NewPursuitSystem(w)
	require.True(t, runUntil(t, w, ps, 20, func() bool { return ps.State() == PursuitChasing }))

	crossEast(t, w, ps)
	assert.Equal(t, 2, w.RoomID())
	assert.Equal(t, 2, ps.Room())
	assert.Equal(t, PursuitAligning, ps.State())

	require.True(t, runUntil(t, w, ps, 20, func() bool { return w.MonsterActive }))
	assert.Equal(t, core.Pt(0, 1), cellOf(w, w.Monster), "agent emerges from the player's entry door")
	assert.Equal(t, core.Pt(1, 1), cellOf(w, w.Player))
}

func TestPursuitStaysBehindWhenFar(t *testing.T) {
	w := newWorld(t, pursuitConfig(1, 50*time.Millisecond), 1,
		roomDoc(1, "none",
			"##########",
			"#M......@D",
			"##########",
		),
		roomDoc(2, "none",
			"#######",
			"D.....#",
			"#######",
		),
	)
	ps := NewPursuitSystem(w)
	require.True(t, runUntil(t, w, ps, 20, func() bool { return ps.State() == PursuitChasing }))

	crossEast(t, w, ps)
	assert.Equal(t, 2, w.RoomID())
	assert.Equal(t, 1, ps.Room())
	assert.Equal(t, PursuitIdle, ps.State())
	assert.False(t, w.MonsterActive)
}

func TestPursuitRelocationWalksTheBoard(t *testing.T) {
	cfg := pursuitConfig(9, time.Second)
	cfg.Pursuit.MoveInterval = config.Duration{Duration: time.Second}
	cfg.Pursuit.MoveChance = 1
	cfg.Dungeon.Seed = 7
	w := newWorld(t, cfg, 1, roomDoc(1, "none", "#####", "#@..#", "#####"))
	ps := NewPursuitSystem(w)

	visited := []int{ps.Room()}
	for i := 0; i < 5000 && ps.State() != PursuitAligning; i++ {
		tick(t, w, ps)
		if ps.Room() != visited[len(visited)-1] {
			visited = append(visited, ps.Room())
		}
	}

	require.Greater(t, len(visited), 1)
	for i := 1; i < len(visited); i++ {
		assert.Contains(t, adjacentRooms(visited[i-1]), visited[i], "step %d", i)
		if i >= 2 {
			assert.NotEqual(t, visited[i-2], visited[i], "no doubling back within the relocation cooldown")
		}
	}
	if ps.State() == PursuitAligning {
		assert.Equal(t, 1, ps.Room())
	}
}

func TestPursuitDisabled(t *testing.T) {
	cfg := pursuitConfig(1, 0)
	cfg.Pursuit.Enabled = false
	w := newWorld(t, cfg, 1, roomDoc(1, "none", "#####", "#@.M#", "#####"))
	ps := NewPursuitSystem(w)
	for i := 0; i < 50; i++ {
		tick(t, w, ps)
	}
	assert.Equal(t, PursuitIdle, ps.State())
	assert.False(t, w.MonsterActive)
}

func TestPursuitAvoidsRoomPlayerJustLeft(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := pursuitConfig(4, time.Second)
		cfg.Pursuit.MoveInterval = config.Duration{Duration: 100 * time.Millisecond}
		cfg.Pursuit.MoveChance = 1
		cfg.Pursuit.RelocateCooldown = config.Duration{Duration: 5 * time.Second}
		cfg.Dungeon.Seed = seed
		w := newWorld(t, cfg, 1,
			roomDoc(1, "none", "#####", "#..@D", "#####"),
			roomDoc(2, "none", "#####", "D...#", "#####"),
		)
		ps := NewPursuitSystem(w)

		crossEast(t, w, ps)
		require.Equal(t, 2, w.RoomID())

		require.True(t, runUntil(t, w, ps, 100, func() bool { return ps.Room() != 4 }), "seed %d", seed)
		assert.NotEqual(t, 1, ps.Room(), "seed %d: agent moved into the room the player just left", seed)
	}
}

func TestPursuitForgetsRefusedCrossing(t *testing.T) {
	w := newWorld(t, pursuitConfig(1, 50*time.Millisecond), 1,
		roomDoc(1, "none",
			"#######",
			"#..M.@D",
			"#######",
		),
		roomDoc(2, "none",
			"#######",
			"D.....#",
			"#######",
		),
	)
	ps := NewPursuitSystem(w)
	require.True(t, runUntil(t, w, ps, 20, func() bool { return ps.State() == PursuitChasing }))

	// The request goes out but the room never loads
	res := w.RequestMove(w.Player, core.DirRight)
	require.Equal(t, engine.MoveDoor, res.Outcome)
	for _, ev := range w.Events.Consume() {
		ps.HandleEvent(ev)
	}
	require.True(t, ps.follow)

	tick(t, w, ps)
	assert.False(t, ps.follow)
	assert.Equal(t, 1, w.RoomID())
	assert.Equal(t, PursuitChasing, ps.State())

	// A later entry into the same room is not mistaken for the old crossing
	ps.HandleEvent(event.GameEvent{Type: event.EventRoomEntered, Payload: &event.RoomEnteredPayload{Room: 2}})
	assert.Equal(t, PursuitIdle, ps.State())
	assert.Equal(t, 1, ps.Room())
}
