package game

import (
	"fmt"

	"cavecrawler/internal/component"
	"cavecrawler/internal/message"
	"cavecrawler/internal/render"
	"cavecrawler/internal/system"
	"cavecrawler/internal/world"

	"github.com/gdamore/tcell/v2"
)

// Viewport size of every frame. The status line sits on the row below.
const (
	ScreenWidth  = 80
	ScreenHeight = 24
)

// playFrame snapshots the player's view: visible cells in full color,
// explored ones dimmed, the rest blank.
func (s *Session) playFrame() render.Frame {
	f := render.NewFrame(string(ScreenPlay), ScreenWidth, ScreenHeight)
	p := s.player
	if p == nil || p.Map() == nil {
		return f
	}
	m := p.Map()
	z := p.Z()
	cam := render.NewCamera(ScreenWidth, ScreenHeight)
	cam.Follow(p.X(), p.Y(), m.Width(), m.Height())
	visible := system.VisibleCells(p)

	for sy := 0; sy < ScreenHeight; sy++ {
		for sx := 0; sx < ScreenWidth; sx++ {
			x, y := cam.ScreenToWorld(sx, sy)
			if !m.InBounds(x, y, z) {
				continue
			}
			tile := m.Tile(x, y, z)
			switch {
			case visible[world.Key{X: x, Y: y, Z: z}]:
				ch, fg, bg := tile.Char(), tile.Foreground(), tile.Background()
				if items := m.ItemsAt(x, y, z); len(items) > 0 {
					top := items[len(items)-1]
					ch, fg = top.Char(), top.Foreground()
				}
				if e := m.EntityAt(x, y, z); e != nil {
					ch, fg = e.Char(), e.Foreground()
				}
				f.Set(sx, sy, ch, fg, bg)
			case m.IsExplored(x, y, z):
				f.Set(sx, sy, tile.Char(), render.DimColor, tcell.ColorBlack)
			}
		}
	}
	f.Messages = append([]string(nil), message.Messages(p)...)
	f.Status = s.status()
	return f
}

func (s *Session) status() string {
	p := s.player
	hp, maxHP := 0, 0
	if d := component.Get[*component.Destructible](p, component.CDestructible); d != nil {
		hp, maxHP = d.HP, d.MaxHP
	}
	where := fmt.Sprintf("Depth %d", p.Z()+1)
	if s.run.ReachedCavern {
		where = "Cavern"
	}
	line := fmt.Sprintf("HP: %d/%d", hp, maxHP)
	if hunger := system.HungerState(p); hunger != "" {
		line += "  " + hunger
	}
	return line + "  " + where
}

// titleFrame draws the start, win and lose screens.
func (s *Session) titleFrame() render.Frame {
	screen := s.current()
	f := render.NewFrame(string(screen), ScreenWidth, ScreenHeight)
	switch screen {
	case ScreenStart:
		f.Text(1, 1, "Cave Crawler", render.TitleColor, tcell.ColorBlack)
		f.Text(1, 2, "Press [Enter] to start!", render.TextColor, tcell.ColorBlack)
	case ScreenWin:
		for y := 1; y <= 22; y++ {
			f.Text(2, y, "You win!", render.TextColor, render.RandomBackground(s.game.Rand.Float64))
		}
	case ScreenLose:
		f.Text(2, 1, "You lose! :(", render.LoseColor, tcell.ColorBlack)
	}
	if screen != ScreenStart {
		f.Text(2, ScreenHeight-1, "Press [Enter] to play again", render.DimColor, tcell.ColorBlack)
	}
	return f
}
