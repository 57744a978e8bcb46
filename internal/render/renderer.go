// Package render holds the frame snapshot shared by every transport and
// draws frames onto tcell screens.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints the frame's cells, overlays the message log on the top rows
// and puts the status line under the viewport.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	for y, row := range f.Cells {
		for x, c := range row {
			r.putCell(x, y, c)
		}
	}
	r.drawHUD(f)
	r.screen.Show()
}

// putCell draws a single cell. Wide characters also blank the next column
// to avoid rendering artifacts.
func (r *Renderer) putCell(x, y int, c Cell) {
	runes := []rune(c.Ch)
	if len(runes) == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(ParseHex(c.Fg)).Background(ParseHex(c.Bg))
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(c.Ch) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
