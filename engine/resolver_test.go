package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/physics"
)

func TestChainPushAtomicity(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"#######",
		"#@ooo##",
		"#######",
	))

	res := w.RequestMove(w.Player, core.DirRight)
	assert.Equal(t, MoveBlocked, res.Outcome)
	assert.Len(t, res.Chain, 4, "validation walked the whole chain")

	for _, e := range res.Chain {
		m, _ := w.Components.Motion.Get(e)
		assert.False(t, m.Moving)
		assert.True(t, m.Dir.IsZero())
		assert.Equal(t, m.Cell, m.Desired)
	}
	assert.False(t, w.GraphDirty)
	assert.Zero(t, w.Events.Len())
}

func TestChainPushSuccess(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"#######",
		"#@ooo.#",
		"#######",
	))
	blocks := []core.Entity{blockAt(w, core.Pt(2, 1)), blockAt(w, core.Pt(3, 1)), blockAt(w, core.Pt(4, 1))}

	res := w.RequestMove(w.Player, core.DirRight)
	require.Equal(t, MoveAccepted, res.Outcome)
	assert.Equal(t, append([]core.Entity{w.Player}, blocks...), res.Chain)
	for _, e := range res.Chain {
		m, _ := w.Components.Motion.Get(e)
		assert.Equal(t, m.Cell.Add(core.DirRight), m.Desired)
		assert.True(t, m.Moving)
	}
	assert.True(t, w.GraphDirty)

	events := w.Events.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventBlockPushed, events[0].Type)
	assert.Equal(t, blocks, events[0].Payload.(*event.BlockPushedPayload).Chain)

	settle(t, w, 40)
	assert.Equal(t, core.Pt(2, 1), cellOf(w, w.Player))
	for i, e := range blocks {
		assert.Equal(t, core.Pt(3+i, 1), cellOf(w, e))
	}

	// Idle advance is a no-op
	before := make([]component.MotionComponent, 0, len(res.Chain))
	for _, e := range res.Chain {
		m, _ := w.Components.Motion.Get(e)
		before = append(before, m)
	}
	settle(t, w, 10)
	for i, e := range res.Chain {
		m, _ := w.Components.Motion.Get(e)
		assert.Equal(t, before[i], m)
		assert.False(t, m.Moving)
	}
}

func TestMoveBusyWhileSliding(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"#####",
		"#@..#",
		"#####",
	))
	require.Equal(t, MoveAccepted, w.RequestMove(w.Player, core.DirRight).Outcome)
	assert.Equal(t, MoveBusy, w.RequestMove(w.Player, core.DirRight).Outcome)
	assert.Equal(t, MoveBlocked, w.RequestMove(w.Player, core.Direction{X: 1, Y: 1}).Outcome)
	settle(t, w, 20)
	assert.Equal(t, MoveAccepted, w.RequestMove(w.Player, core.DirRight).Outcome)
}

func TestBlockedByStaticsAndHoles(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		outcome MoveOutcome
	}{
		{"wall", "#@#..#", MoveBlocked},
		{"pillar", "#@I..#", MoveBlocked},
		{"torch", "#@T..#", MoveBlocked},
		{"player onto hole", "#@O..#", MoveBlocked},
		{"stone onto wall", "#@o#.#", MoveBlocked},
		{"magic block onto wrong hole", "#@aB.#", MoveBlocked},
		{"stone onto magic hole", "#@oA.#", MoveBlocked},
		{"magic block onto plain hole", "#@aO.#", MoveBlocked},
		{"foreground", "#@~..#", MoveAccepted},
		{"decoration", "#@,..#", MoveAccepted},
		{"stone onto hole", "#@oO.#", MoveAccepted},
		{"magic block onto its hole", "#@aA.#", MoveAccepted},
		{"interior door is a wall", "#@D..#", MoveBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 1, roomDoc(1, "none", "######", tt.row, "######"))
			assert.Equal(t, tt.outcome, w.RequestMove(w.Player, core.DirRight).Outcome)
		})
	}
}

func TestDoorUnlockScenario(t *testing.T) {
	w := newTestWorld(t, 5, roomDoc(5, "holes",
		"#####",
		"#..@D",
		"#####",
	))
	door, d, ok := w.DoorOnSide(core.SideEast)
	require.True(t, ok)
	require.True(t, d.Locked)

	assert.Equal(t, MoveBlocked, w.RequestMove(w.Player, core.DirRight).Outcome)
	assert.Zero(t, w.Events.Len())

	// External checker unlocks
	d.Locked = false
	w.Components.Door.Set(door, d)

	res := w.RequestMove(w.Player, core.DirRight)
	assert.Equal(t, MoveDoor, res.Outcome)
	assert.Equal(t, door, res.Door)
	assert.False(t, w.PlayerMotion().Moving, "the player does not step onto the door")

	events := w.Events.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventRoomChangeRequest, events[0].Type)
	p := events[0].Payload.(*event.RoomChangePayload)
	assert.Equal(t, 5, p.From)
	assert.Equal(t, 6, p.To)
	assert.Equal(t, core.SideEast, p.Exit)
	assert.Equal(t, core.SideWest, p.Exit.Opposite())
}

func TestStonesDoNotEnterDoors(t *testing.T) {
	w := newTestWorld(t, 5, roomDoc(5, "none",
		"#####",
		"#.@oD",
		"#####",
	))
	_, d, ok := w.DoorOnSide(core.SideEast)
	require.True(t, ok)
	require.False(t, d.Locked)
	assert.Equal(t, MoveBlocked, w.RequestMove(w.Player, core.DirRight).Outcome)
}

func TestHoleFillLifecycle(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "holes",
		"######",
		"#@oO.#",
		"######",
	))
	stone := blockAt(w, core.Pt(2, 1))
	require.NotZero(t, stone)
	var hole core.Entity
	for _, e := range w.Grid.At(core.Pt(3, 1)) {
		if w.Components.Hole.Has(e) {
			hole = e
		}
	}
	require.NotZero(t, hole)

	require.Equal(t, MoveAccepted, w.RequestMove(w.Player, core.DirRight).Outcome)
	w.Events.Consume()

	settle(t, w, 20)
	b, _ := w.Components.Block.Get(stone)
	assert.True(t, b.Falling)
	assert.Equal(t, hole, b.Hole)
	assert.True(t, w.CheckSolve)
	assert.Equal(t, MoveBusy, w.RequestMove(stone, core.DirRight).Outcome)
	assert.Equal(t, MoveBlocked, w.RequestMove(w.Player, core.DirRight).Outcome, "falling blocks reject pushes")

	settle(t, w, 30)
	h, _ := w.Components.Hole.Get(hole)
	assert.True(t, h.Filled)
	assert.False(t, w.Components.Kind.Has(stone), "dead block removed on the next pass")
	assert.NotContains(t, w.Room.Entities, stone)

	events := w.Events.Consume()
	require.Len(t, events, 1)
	assert.Equal(t, event.EventHoleFilled, events[0].Type)
	assert.Equal(t, &event.HoleFilledPayload{Hole: hole, Block: stone, Cell: core.Pt(3, 1)}, events[0].Payload)

	// Filled holes are floor
	assert.Equal(t, MoveAccepted, w.RequestMove(w.Player, core.DirRight).Outcome)
}

func TestTieBreakLowestIDWins(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"######",
		"#@o..#",
		"######",
	))
	first := blockAt(w, core.Pt(2, 1))

	// Force a violated invariant: a second stone in the same cell
	dup := w.CreateEntity()
	w.Components.Kind.Set(dup, component.KindComponent{Kind: component.KindStone, Glyph: 'o'})
	w.Components.Block.Set(dup, component.BlockComponent{})
	var m component.MotionComponent
	physics.Place(&m, core.Pt(2, 1))
	w.Components.Motion.Set(dup, m)
	w.Grid.Add(dup, core.Pt(2, 1))
	w.Room.Entities = append([]core.Entity{dup}, w.Room.Entities...)

	assert.Error(t, w.CheckInvariant())

	res := w.RequestMove(w.Player, core.DirRight)
	require.Equal(t, MoveAccepted, res.Outcome)
	assert.Equal(t, []core.Entity{w.Player, first}, res.Chain)
}

func TestPushableBlockedByPlayer(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"######",
		"#.o@.#",
		"######",
	))
	stone := blockAt(w, core.Pt(2, 1))
	assert.Equal(t, MoveBlocked, w.RequestMove(stone, core.DirRight).Outcome)
	assert.Equal(t, MoveAccepted, w.RequestMove(stone, core.DirLeft).Outcome)
}

func TestReservedCellBlocksSecondChain(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"#####",
		"#o.o#",
		"#@..#",
		"#####",
	))
	left, right := blockAt(w, core.Pt(1, 1)), blockAt(w, core.Pt(3, 1))

	// First requester claims the vacated cell
	require.Equal(t, MoveAccepted, w.RequestMove(left, core.DirRight).Outcome)
	assert.Equal(t, MoveBlocked, w.RequestMove(right, core.DirLeft).Outcome)
	settle(t, w, 20)
	assert.Equal(t, core.Pt(2, 1), cellOf(w, left))
	assert.Equal(t, core.Pt(3, 1), cellOf(w, right))
}

func TestRejectedMoveResetsDirection(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"####",
		"#@.D",
		"####",
	))

	stale := func() {
		m, _ := w.Components.Motion.Get(w.Player)
		m.Dir = core.DirLeft
		w.Components.Motion.Set(w.Player, m)
	}

	stale()
	res := w.RequestMove(w.Player, core.DirUp)
	require.Equal(t, MoveBlocked, res.Outcome)
	m, _ := w.Components.Motion.Get(w.Player)
	assert.True(t, m.Dir.IsZero())
	assert.Equal(t, m.Cell, m.Desired)
	assert.False(t, m.Moving)

	require.Equal(t, MoveAccepted, w.RequestMove(w.Player, core.DirRight).Outcome)
	settle(t, w, 40)
	w.Events.Consume()

	stale()
	res = w.RequestMove(w.Player, core.DirRight)
	require.Equal(t, MoveDoor, res.Outcome)
	m, _ = w.Components.Motion.Get(w.Player)
	assert.True(t, m.Dir.IsZero())
	assert.Equal(t, core.Pt(2, 1), m.Cell)
	assert.False(t, m.Moving)
}
