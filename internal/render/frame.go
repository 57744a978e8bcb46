package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one character position of a frame with hex colors.
type Cell struct {
	Ch string `json:"ch"`
	Fg string `json:"fg"`
	Bg string `json:"bg"`
}

// Frame is a transport-neutral snapshot of one player's screen: the map
// viewport (or a title screen) plus the message log and status line.
type Frame struct {
	Screen   string   `json:"screen"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Cells    [][]Cell `json:"cells"` // [row][column]
	Messages []string `json:"messages"`
	Status   string   `json:"status"`
}

// NewFrame returns a blank frame of the given size.
func NewFrame(screen string, w, h int) Frame {
	blank := Cell{Ch: " ", Fg: Hex(tcell.ColorWhite), Bg: Hex(tcell.ColorBlack)}
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
		for x := range cells[y] {
			cells[y][x] = blank
		}
	}
	return Frame{Screen: screen, Width: w, Height: h, Cells: cells}
}

// Set writes one character. Out of range positions are ignored.
func (f *Frame) Set(x, y int, ch rune, fg, bg tcell.Color) {
	if y < 0 || y >= len(f.Cells) || x < 0 || x >= len(f.Cells[y]) {
		return
	}
	f.Cells[y][x] = Cell{Ch: string(ch), Fg: Hex(fg), Bg: Hex(bg)}
}

// Text writes s starting at (x, y), advancing by each rune's display width.
func (f *Frame) Text(x, y int, s string, fg, bg tcell.Color) {
	for _, ch := range s {
		f.Set(x, y, ch, fg, bg)
		x += max(1, runewidth.RuneWidth(ch))
	}
}

// Row returns the characters of row y as a string; handy in tests and logs.
func (f *Frame) Row(y int) string {
	if y < 0 || y >= len(f.Cells) {
		return ""
	}
	b := make([]byte, 0, len(f.Cells[y]))
	for _, c := range f.Cells[y] {
		b = append(b, c.Ch...)
	}
	return string(b)
}
