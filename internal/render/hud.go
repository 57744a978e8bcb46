package render

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawHUD overlays wrapped messages from the top row down and writes the
// status line on the row below the viewport.
func (r *Renderer) drawHUD(f Frame) {
	width := f.Width
	if w, _ := r.screen.Size(); width == 0 || w < width {
		width = w
	}
	msgStyle := tcell.StyleDefault.Foreground(MessageColor).Background(tcell.ColorBlack)
	y := 0
	for _, msg := range f.Messages {
		for _, line := range Wrap(msg, width) {
			if y >= f.Height {
				break
			}
			r.drawText(0, y, line, msgStyle)
			y++
		}
	}
	if f.Status != "" {
		status := runewidth.Truncate(f.Status, width, "…")
		r.drawText(0, f.Height, status, tcell.StyleDefault.Foreground(StatusColor))
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}

// Wrap breaks text into lines no wider than width display columns, at word
// boundaries where possible.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineW := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		for ww > width {
			if lineW > 0 {
				lines = append(lines, line.String())
				line.Reset()
				lineW = 0
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		switch {
		case lineW == 0:
		case lineW+1+ww > width:
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		default:
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += ww
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
