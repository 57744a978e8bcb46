// Package glyph holds the renderable unit shared by tiles, entities and items.
package glyph

import (
	"strings"

	"cavecrawler/internal/mixin"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Paint produces a color each time it is read. Fixed colors ignore the call;
// procedural ones may vary between frames.
type Paint func() tcell.Color

// Fixed returns a Paint that always yields c.
func Fixed(c tcell.Color) Paint {
	return func() tcell.Color { return c }
}

// Glyph is one display character with a foreground and background color.
type Glyph struct {
	char rune
	fg   Paint
	bg   Paint
}

// New creates a glyph. A zero char becomes a space; nil paints become
// white-on-black.
func New(char rune, fg, bg Paint) Glyph {
	if char == 0 {
		char = ' '
	}
	if fg == nil {
		fg = Fixed(tcell.ColorWhite)
	}
	if bg == nil {
		bg = Fixed(tcell.ColorBlack)
	}
	return Glyph{char: char, fg: fg, bg: bg}
}

// FromProps reads "character", "foreground" and "background" from a template.
// Colors are tcell color names ("goldenrod") or hex ("#daa520").
func FromProps(p mixin.Props) Glyph {
	var char rune
	for _, r := range p.String("character", " ") {
		char = r
		break
	}
	return New(char, colorProp(p, "foreground", tcell.ColorWhite), colorProp(p, "background", tcell.ColorBlack))
}

func colorProp(p mixin.Props, key string, def tcell.Color) Paint {
	if fn, ok := p[key].(Paint); ok {
		return fn
	}
	if c, ok := p[key].(tcell.Color); ok {
		return Fixed(c)
	}
	name := p.String(key, "")
	if name == "" {
		return Fixed(def)
	}
	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault {
		c = def
	}
	return Fixed(c)
}

// Char returns the display character.
func (g Glyph) Char() rune { return g.char }

// Foreground returns the current foreground color.
func (g Glyph) Foreground() tcell.Color { return g.fg() }

// Background returns the current background color.
func (g Glyph) Background() tcell.Color { return g.bg() }

// ForegroundPaint exposes the paint procedure so derived objects (corpses)
// can inherit it.
func (g Glyph) ForegroundPaint() Paint { return g.fg }

// Width returns the number of terminal columns the character occupies.
func (g Glyph) Width() int { return runewidth.RuneWidth(g.char) }
