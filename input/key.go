package input

import (
	"github.com/lixenwraith/hollow/core"
)

// Key is a semantic game key, decoupled from the terminal key codes
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInteract
	KeyRestart
	KeyMute
	KeyQuit
)

var keyNames = [...]string{"none", "up", "down", "left", "right", "interact", "restart", "mute", "quit"}

func (k Key) String() string {
	if int(k) >= len(keyNames) {
		return "invalid"
	}
	return keyNames[k]
}

// Direction returns the movement delta of a direction key, DirNone otherwise
func (k Key) Direction() core.Direction {
	switch k {
	case KeyUp:
		return core.DirUp
	case KeyDown:
		return core.DirDown
	case KeyLeft:
		return core.DirLeft
	case KeyRight:
		return core.DirRight
	}
	return core.DirNone
}
