package main

import (
	"github.com/lixenwraith/hollow/game"
	"github.com/lixenwraith/hollow/parameter"
	"github.com/lixenwraith/hollow/render"
)

// statusOf summarizes the game for the status bar
func statusOf(g *game.Game, muted bool) render.Status {
	st := render.Status{
		Room:    g.World.RoomID(),
		State:   g.State.String(),
		Pursuit: g.Pursuit.StateName(),
		Solved:  g.SolvedCount(),
		Rooms:   parameter.RoomCount,
		Muted:   muted,
	}

	switch g.State {
	case game.StateCaught:
		st.Level = render.StatusAlert
		st.Message = "CAUGHT: r to restart"
	case game.StateWon:
		st.Level = render.StatusWin
		st.Message = "ESCAPED: r to play again"
	default:
		if g.LastError != nil {
			st.Message = g.LastError.Error()
		}
	}
	return st
}
