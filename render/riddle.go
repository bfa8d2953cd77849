package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// riddleMinWidth keeps narrow terminals from wrapping a riddle one word per line
const riddleMinWidth = 24

// wrapWords breaks text at spaces into lines no wider than width cells
// A single word wider than width is split across lines
func wrapWords(text string, width int) []string {
	if width < 1 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+ww > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		for _, ch := range word {
			cw := runewidth.RuneWidth(ch)
			if lineWidth > 0 && lineWidth+cw > width {
				flush()
			}
			line.WriteRune(ch)
			lineWidth += cw
		}
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}

// drawRiddle centres the wrapped riddle in the rows right above the status bar
func (r *TerminalRenderer) drawRiddle(riddle string, base tcell.Style) {
	if riddle == "" {
		return
	}
	width, height := r.screen.Size()
	wrap := max(width/2, riddleMinWidth)
	wrap = min(wrap, width)
	lines := wrapWords(riddle, wrap)

	style := base.Foreground(RgbRiddle).Italic(true)
	top := height - 1 - len(lines)
	for i, text := range lines {
		y := top + i
		if y < 0 {
			continue
		}
		x := (width - runewidth.StringWidth(text)) / 2
		for _, ch := range text {
			r.screen.SetContent(x, y, ch, nil, style)
			x += runewidth.RuneWidth(ch)
		}
	}
}
