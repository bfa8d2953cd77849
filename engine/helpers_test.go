package engine

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hollow/config"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/level"
)

const testDT = 16 * time.Millisecond

// roomDoc renders an ASCII room as a TOML room document
func roomDoc(id int, puzzle string, rows ...string) string {
	quoted := make([]string, len(rows))
	for i, r := range rows {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("id = %d\npuzzle = %q\nrows = [%s]\n", id, puzzle, strings.Join(quoted, ", "))
}

// newTestWorld parses the documents and enters the first given room without an entry side
func newTestWorld(t *testing.T, first int, docs ...string) *World {
	t.Helper()
	src := level.MapSource{}
	for _, doc := range docs {
		r, err := level.ParseRoom([]byte(doc))
		require.NoError(t, err)
		src[r.ID] = r
	}
	w := NewWorld(config.Default(), src)
	require.NoError(t, w.EnterRoom(first, core.SideNone))
	w.Events.Consume()
	w.GraphDirty = false
	w.CheckSolve = false
	return w
}

// settle advances the room n ticks, asserting the no-overlap invariant on every tick
func settle(t *testing.T, w *World, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		w.Clock.Advance(testDT)
		w.UpdateRoom(testDT)
		require.NoError(t, w.CheckInvariant(), "tick %d", i)
	}
}

// blockAt returns the live block resting at p, 0 when none
func blockAt(w *World, p core.Point) core.Entity {
	for _, e := range w.Room.Entities {
		if !w.Components.Block.Has(e) || w.IsDead(e) {
			continue
		}
		if m, _ := w.Components.Motion.Get(e); m.Cell == p {
			return e
		}
	}
	return 0
}

func cellOf(w *World, e core.Entity) core.Point {
	m, _ := w.Components.Motion.Get(e)
	return m.Cell
}
