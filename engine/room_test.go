package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/level"
)

var cacheRooms = []string{
	roomDoc(1, "none",
		"#########",
		"#@o.....D",
		"#...o...#",
		"#.....o.#",
		"#########",
	),
	roomDoc(2, "none",
		"#####",
		"D...#",
		"#####",
	),
}

func TestRoomCacheRestore(t *testing.T) {
	w := newTestWorld(t, 1, cacheRooms...)
	assert.Equal(t, core.Pt(1, 1), cellOf(w, w.Player), "first entry uses the spawn tile")

	pushed := blockAt(w, core.Pt(2, 1))
	others := []core.Entity{blockAt(w, core.Pt(4, 2)), blockAt(w, core.Pt(6, 3))}
	require.Equal(t, MoveAccepted, w.RequestMove(w.Player, core.DirRight).Outcome)
	settle(t, w, 20)
	require.Equal(t, core.Pt(3, 1), cellOf(w, pushed))
	room1 := w.Room.Entities

	require.NoError(t, w.EnterRoom(2, core.SideWest))
	assert.Equal(t, core.Pt(1, 1), cellOf(w, w.Player), "aligned inside the west door")
	assert.Contains(t, w.Room.Entities, w.Player)

	require.NoError(t, w.EnterRoom(1, core.SideEast))
	assert.Equal(t, room1, w.Room.Entities, "same handles, same order")
	assert.Equal(t, core.Pt(3, 1), cellOf(w, pushed), "pushed block kept its new cell")
	assert.Equal(t, core.Pt(4, 2), cellOf(w, others[0]))
	assert.Equal(t, core.Pt(6, 3), cellOf(w, others[1]))
	assert.Equal(t, core.Pt(7, 1), cellOf(w, w.Player), "aligned inside the east door")
	require.NoError(t, w.CheckInvariant())

	var entered *event.RoomEnteredPayload
	for _, ev := range w.Events.Consume() {
		if ev.Type == event.EventRoomEntered {
			entered = ev.Payload.(*event.RoomEnteredPayload)
		}
	}
	require.NotNil(t, entered)
	assert.Equal(t, &event.RoomEnteredPayload{Room: 1, Entry: core.SideEast, Restored: true}, entered)

	// Cell index was rebuilt for the restored room
	assert.Contains(t, w.Grid.At(core.Pt(3, 1)), pushed)
	assert.NotContains(t, w.Grid.At(core.Pt(2, 1)), pushed)
}

func TestResetRoomsClearsCache(t *testing.T) {
	w := newTestWorld(t, 1, cacheRooms...)
	pushed := blockAt(w, core.Pt(2, 1))
	w.RequestMove(w.Player, core.DirRight)
	settle(t, w, 20)
	w.Solved[1] = true

	w.ResetRooms()
	assert.False(t, w.HasCachedRoom(1))
	assert.Empty(t, w.Solved)
	assert.Nil(t, w.Room)
	assert.False(t, w.Components.Kind.Has(pushed), "room entities destroyed")
	assert.True(t, w.Components.Kind.Has(w.Player), "player survives")
	assert.True(t, w.Components.Kind.Has(w.Monster), "agent survives")

	require.NoError(t, w.EnterRoom(1, core.SideNone))
	assert.NotZero(t, blockAt(w, core.Pt(2, 1)), "tile-defined layout reloaded")
	assert.Equal(t, core.Pt(1, 1), cellOf(w, w.Player))
}

func TestEnterMissingRoom(t *testing.T) {
	w := newTestWorld(t, 1, cacheRooms...)
	err := w.EnterRoom(7, core.SideNorth)
	require.Error(t, err)
	assert.ErrorIs(t, err, level.ErrRoomNotFound)
	assert.Equal(t, 1, w.RoomID(), "active room unchanged")
}

func TestEntryDoorUnlocked(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "holes",
		"###D###",
		"D..@..D",
		"###D###",
	))
	for _, side := range []core.DoorSide{core.SideNorth, core.SideEast, core.SideSouth, core.SideWest} {
		_, d, ok := w.DoorOnSide(side)
		require.True(t, ok, side.String())
		assert.True(t, d.Locked, side.String())
	}

	w.ResetRooms()
	require.NoError(t, w.EnterRoom(1, core.SideWest))
	_, west, _ := w.DoorOnSide(core.SideWest)
	_, east, _ := w.DoorOnSide(core.SideEast)
	assert.False(t, west.Locked)
	assert.True(t, east.Locked)
	assert.Equal(t, core.Pt(1, 1), cellOf(w, w.Player))
}

func TestArrivalAvoidsBlockedDoorway(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"#####",
		"Do..#",
		"#...#",
		"#####",
	))
	require.NoError(t, w.EnterRoom(1, core.SideWest))
	p := cellOf(w, w.Player)
	assert.NotEqual(t, core.Pt(1, 1), p)
	assert.Equal(t, 1, p.Manhattan(core.Pt(1, 1)))
	require.NoError(t, w.CheckInvariant())
}

func TestFinalDoorNeedsAllRooms(t *testing.T) {
	doc := roomDoc(8, "magic",
		"#####",
		"D.@.#",
		"##D##",
	) + "\n[[tiles]]\nx = 2\ny = 2\nfinal = true\n"
	w := newTestWorld(t, 8, doc)

	assert.Equal(t, 1, w.UnlockDoors())
	_, final, ok := w.DoorOnSide(core.SideSouth)
	require.True(t, ok)
	assert.True(t, final.Final)
	assert.True(t, final.Locked)

	for id := 1; id <= 9; id++ {
		w.Solved[id] = true
	}
	assert.Equal(t, 1, w.UnlockDoors())
	_, final, _ = w.DoorOnSide(core.SideSouth)
	assert.False(t, final.Locked)
}

func TestDrawPassesOrder(t *testing.T) {
	w := newTestWorld(t, 1, roomDoc(1, "none",
		"#######",
		"#~O@A.#",
		"#######",
	))
	passes := w.DrawPasses()
	assert.Equal(t, []core.Entity{w.Player}, passes.Player)
	require.Len(t, passes.Foreground, 1)
	assert.Equal(t, component.KindForeground, w.Components.KindOf(passes.Foreground[0]))

	require.True(t, len(passes.Background) > 2)
	assert.Equal(t, component.KindMagicHole, w.Components.KindOf(passes.Background[0]))
	assert.Equal(t, component.KindHole, w.Components.KindOf(passes.Background[1]))
	for _, e := range passes.Background[2:] {
		assert.Equal(t, component.KindWall, w.Components.KindOf(e))
	}
}

func TestFactoryDegradesToBackground(t *testing.T) {
	data := &level.RoomData{
		ID: 1, Width: 3, Height: 1,
		Layers: [][]level.Tile{{
			{Type: "magic-block", Glyph: 'x'}, // no symbol
			{Type: "carpet", Glyph: '%'},
			{Type: "player", Glyph: '@'},
		}},
	}
	w := NewWorld(nil, level.MapSource{1: data})
	require.NoError(t, w.EnterRoom(1, core.SideNone))

	assert.Equal(t, []core.Entity{w.Player}, w.Room.Entities)
	assert.Equal(t, 'x', w.Room.BackgroundAt(core.Pt(0, 0)))
	assert.Equal(t, '%', w.Room.BackgroundAt(core.Pt(1, 0)))
	assert.Equal(t, rune(0), w.Room.BackgroundAt(core.Pt(5, 0)))
	assert.Equal(t, core.Pt(2, 0), cellOf(w, w.Player))
}

func TestTorchToggle(t *testing.T) {
	w := newTestWorld(t, 2, roomDoc(2, "torches",
		"#####",
		"#T@T#",
		"#.T.#",
		"#####",
	))
	torches := w.Torches()
	require.Len(t, torches, 3)
	for i, e := range torches {
		tc, _ := w.Components.Torch.Get(e)
		assert.Equal(t, i, tc.Index)
	}

	assert.False(t, w.ToggleTorchAt(core.Pt(2, 2).Add(core.DirUp)), "player cell holds no torch")
	assert.True(t, w.ToggleTorchAt(core.Pt(1, 1)))
	assert.True(t, w.CheckSolve)
	first, _ := w.Components.Torch.Get(torches[0])
	assert.True(t, first.Lit)

	assert.Equal(t, 3, w.Interact())
	lit := 0
	for _, e := range torches {
		if tc, _ := w.Components.Torch.Get(e); tc.Lit {
			lit++
		}
	}
	assert.Equal(t, 2, lit, "first torch toggled back off, the others on")

	events := w.Events.Consume()
	assert.Len(t, events, 4)
	for _, ev := range events {
		assert.Equal(t, event.EventTorchToggled, ev.Type)
	}
}

func TestRoomCarriesRiddle(t *testing.T) {
	w := newTestWorld(t, 2, `riddle = "Light the way"`+"\n"+roomDoc(2, "torches",
		"#####",
		"#@T.#",
		"#####",
	))
	assert.Equal(t, "Light the way", w.Room.Riddle)
	assert.Equal(t, "torches", w.Room.Puzzle)
}
