package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/engine"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/vmath"
)

// StatusLevel selects the status bar palette
type StatusLevel uint8

const (
	StatusNormal StatusLevel = iota
	StatusAlert
	StatusWin
)

// Status is the text content of the bottom bar
type Status struct {
	Room    int
	State   string
	Pursuit string
	Solved  int
	Rooms   int
	Muted   bool
	Message string
	Level   StatusLevel
}

// TerminalRenderer draws the active room and a status bar onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	// Board offset from the top-left screen corner
	OriginX, OriginY int
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, OriginX: 1, OriginY: 1}
}

// RenderFrame draws decoration, the background pass, the player pass, the agent,
// the foreground pass, the room's riddle and finally the status bar
func (r *TerminalRenderer) RenderFrame(w *engine.World, st Status) {
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	if w.Room != nil {
		r.drawDecoration(w.Room, base)
		passes := w.DrawPasses()
		for _, e := range passes.Background {
			r.drawEntity(w, e, base)
		}
		for _, e := range passes.Player {
			r.drawEntity(w, e, base)
		}
		if w.MonsterActive {
			r.drawEntity(w, w.Monster, base)
		}
		for _, e := range passes.Foreground {
			r.drawEntity(w, e, base)
		}
		r.drawRiddle(w.Room.Riddle, base)
	}

	r.drawStatusBar(st, base)
	r.screen.Show()
}

// CellAt maps a screen position to a cell of the active room
func (r *TerminalRenderer) CellAt(w *engine.World, x, y int) (core.Point, bool) {
	if w.Room == nil {
		return core.Point{}, false
	}
	p := core.Point{X: x - r.OriginX, Y: y - r.OriginY}
	return p, p.In(w.Room.Width, w.Room.Height)
}

func (r *TerminalRenderer) drawDecoration(room *engine.Room, base tcell.Style) {
	style := base.Foreground(RgbFloorDecor)
	for y := 0; y < room.Height; y++ {
		for x := 0; x < room.Width; x++ {
			ch := room.BackgroundAt(core.Point{X: x, Y: y})
			if ch == 0 {
				ch = '.'
			}
			r.screen.SetContent(r.OriginX+x, r.OriginY+y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawEntity(w *engine.World, e core.Entity, base tcell.Style) {
	kind, ok := w.Components.Kind.Get(e)
	if !ok {
		return
	}
	ch, color := kind.Glyph, kindColor(kind.Kind)

	switch kind.Kind {
	case component.KindDoor:
		if door, ok := w.Components.Door.Get(e); ok {
			switch {
			case !door.Locked:
				color = RgbDoorOpen
			case door.Final:
				color = RgbDoorFinal
			}
		}
	case component.KindTorch:
		if torch, ok := w.Components.Torch.Get(e); ok && torch.Lit {
			color = RgbTorchLit
		}
	case component.KindHole, component.KindMagicHole:
		if hole, ok := w.Components.Hole.Get(e); ok && hole.Filled {
			ch, color = '_', RgbHoleFilled
		}
	case component.KindStone, component.KindMagicBlock:
		if block, ok := w.Components.Block.Get(e); ok && block.Falling {
			color = fade(color, float64(block.Frame)/float64(parameter.FallFrames))
		}
	}

	p, ok := r.screenCell(w, e)
	if !ok {
		return
	}
	r.screen.SetContent(r.OriginX+p.X, r.OriginY+p.Y, ch, nil, base.Foreground(color))
}

// screenCell returns the displayed cell: movers show at the cell nearest their continuous position
func (r *TerminalRenderer) screenCell(w *engine.World, e core.Entity) (core.Point, bool) {
	m, ok := w.Components.Motion.Get(e)
	if !ok {
		return core.Point{}, false
	}
	if !m.Moving {
		return m.Cell, true
	}
	return core.Point{
		X: vmath.Round(m.X / parameter.TileSize),
		Y: vmath.Round(m.Y / parameter.TileSize),
	}, true
}

func (r *TerminalRenderer) drawStatusBar(st Status, base tcell.Style) {
	width, height := r.screen.Size()
	if height < 1 {
		return
	}
	y := height - 1

	bg := RgbStatusBg
	switch st.Level {
	case StatusAlert:
		bg = RgbStatusWarn
	case StatusWin:
		bg = RgbStatusWinBg
	}
	style := base.Foreground(RgbStatusText).Background(bg)

	text := fmt.Sprintf(" ROOM %d | %s | PURSUIT %s | SOLVED %d/%d ", st.Room, st.State, st.Pursuit, st.Solved, st.Rooms)
	if st.Muted {
		text += "| MUTED "
	}
	if st.Message != "" {
		text += "| " + st.Message + " "
	}

	x := 0
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
