package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hollow/core"
)

// DefaultHoldFrames is how many frames a direction counts as held after its last key event
// Terminals report no key-up; auto-repeat refreshes the hold
const DefaultHoldFrames = 8

// Collector accumulates terminal events between frames and produces one Snapshot per tick
type Collector struct {
	Table *KeyTable
	// CellAt converts screen coordinates to a room cell; nil disables clicks
	CellAt func(x, y int) (core.Point, bool)
	// HoldFrames overrides DefaultHoldFrames when positive
	HoldFrames int

	pressed  []Key
	clicks   []core.Point
	held     Key
	holdLeft int
	buttons  tcell.ButtonMask
}

func NewCollector(table *KeyTable) *Collector {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Collector{Table: table}
}

// Handle records one terminal event and returns the mapped key, KeyNone for non-key events
func (c *Collector) Handle(ev tcell.Event) Key {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := c.Table.Lookup(ev)
		if k == KeyNone {
			return KeyNone
		}
		c.pressed = append(c.pressed, k)
		if !k.Direction().IsZero() {
			c.held = k
			c.holdLeft = c.holdFrames()
		}
		return k
	case *tcell.EventMouse:
		btn := ev.Buttons()
		// Edge-triggered: only the press, not drag or release
		if btn&tcell.Button1 != 0 && c.buttons&tcell.Button1 == 0 && c.CellAt != nil {
			if p, ok := c.CellAt(ev.Position()); ok {
				c.clicks = append(c.clicks, p)
			}
		}
		c.buttons = btn
	}
	return KeyNone
}

// Snapshot drains the collected events into the input of the next tick
func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{Pressed: c.pressed, Clicks: c.clicks}
	if c.holdLeft > 0 {
		s.Held = []Key{c.held}
		c.holdLeft--
	}
	c.pressed = nil
	c.clicks = nil
	return s
}

// Release drops any held direction
func (c *Collector) Release() {
	c.holdLeft = 0
	c.held = KeyNone
}

func (c *Collector) holdFrames() int {
	if c.HoldFrames > 0 {
		return c.HoldFrames
	}
	return DefaultHoldFrames
}
