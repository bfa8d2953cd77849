package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to game keys
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Key
	// Rune bindings
	Runes map[rune]Key
}

// DefaultKeyTable returns the default key bindings: arrows, WASD and hjkl
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyUp:     KeyUp,
			tcell.KeyDown:   KeyDown,
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyEnter:  KeyInteract,
			tcell.KeyEscape: KeyQuit,
			tcell.KeyCtrlC:  KeyQuit,
		},
		Runes: map[rune]Key{
			'w': KeyUp, 'a': KeyLeft, 's': KeyDown, 'd': KeyRight,
			'k': KeyUp, 'h': KeyLeft, 'j': KeyDown, 'l': KeyRight,
			'e': KeyInteract, ' ': KeyInteract,
			'r': KeyRestart,
			'm': KeyMute,
			'q': KeyQuit,
		},
	}
}

// Lookup maps a key event, KeyNone when unbound
func (t *KeyTable) Lookup(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if k, ok := t.Runes[r]; ok {
			return k
		}
		// Shifted letters share the binding
		if r >= 'A' && r <= 'Z' {
			return t.Runes[r+('a'-'A')]
		}
		return KeyNone
	}
	return t.SpecialKeys[ev.Key()]
}
