package system

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hollow/config"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/event"
	"github.com/lixenwraith/hollow/level"
)

const testDT = 16 * time.Millisecond

func roomDoc(id int, puzzle string, rows ...string) string {
	quoted := make([]string, len(rows))
	for i, r := range rows {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("id = %d\npuzzle = %q\nrows = [%s]\n", id, puzzle, strings.Join(quoted, ", "))
}

// newWorld enters the first room of docs; cfg nil means defaults
func newWorld(t *testing.T, cfg *config.Config, first int, docs ...string) *engine.World {
	t.Helper()
	src := level.MapSource{}
	for _, doc := range docs {
		r, err := level.ParseRoom([]byte(doc))
		require.NoError(t, err)
		src[r.ID] = r
	}
	if cfg == nil {
		cfg = config.Default()
	}
	w := engine.NewWorld(cfg, src)
	require.NoError(t, w.EnterRoom(first, core.SideNone))
	w.Events.Consume()
	return w
}

// tick advances the clock and runs the systems in the given order
func tick(t *testing.T, w *engine.World, systems ...engine.System) {
	t.Helper()
	w.Clock.Advance(testDT)
	for _, s := range systems {
		s.Update(testDT)
	}
	require.NoError(t, w.CheckInvariant())
}

func hasEvent(events []event.GameEvent, typ event.EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func cellOf(w *engine.World, e core.Entity) core.Point {
	m, _ := w.Components.Motion.Get(e)
	return m.Cell
}

func pursuitConfig(startRoom int, alignDelay time.Duration) *config.Config {
	cfg := config.Default()
	cfg.Pursuit.StartRoom = startRoom
	cfg.Pursuit.AlignDelay = config.Duration{Duration: alignDelay}
	return cfg
}
