package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cavecrawler/internal/component"
	"cavecrawler/internal/config"
	"cavecrawler/internal/turn"
	"cavecrawler/internal/world"
)

var (
	enter   = Input{KeyCode: KeyEnter, Type: KeyDownEvent}
	eat     = Input{KeyCode: KeyE, Type: KeyDownEvent}
	descend = Input{KeyCode: CharGreater, Type: KeyPressEvent}
)

// testConfig is a small empty cave so nothing but the player takes turns.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.World.Width = 30
	cfg.World.Height = 20
	cfg.World.Depth = 2
	cfg.World.Seed = 42
	cfg.World.EntitiesPerLevel = 0
	cfg.World.ItemsPerLevel = 0
	return cfg
}

func newTestSession(t *testing.T, opts ...SessionOption) *Session {
	t.Helper()
	g, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(g.Close)
	return NewSession(g, "test", nil, opts...)
}

func startedSession(t *testing.T, opts ...SessionOption) *Session {
	t.Helper()
	s := newTestSession(t, opts...)
	if _, err := s.HandleInput(enter); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return s
}

func TestSessionStartScreen(t *testing.T) {
	s := newTestSession(t)
	if s.Screen() != ScreenStart {
		t.Fatalf("screen = %s", s.Screen())
	}
	f := s.Frame()
	if f.Screen != "start" || !strings.Contains(f.Row(1), "Cave Crawler") {
		t.Fatalf("start frame %q row1=%q", f.Screen, f.Row(1))
	}
	if _, err := s.HandleInput(eat); err != nil || s.Screen() != ScreenStart {
		t.Fatalf("non-confirm key left start: %v %s", err, s.Screen())
	}
}

func TestSessionBegin(t *testing.T) {
	s := startedSession(t)
	if s.Screen() != ScreenPlay {
		t.Fatalf("screen = %s", s.Screen())
	}
	p := s.Player()
	if p == nil || p.Map() == nil || p.Z() != 0 {
		t.Fatal("player should be on the top depth")
	}
	if st := p.Map().Engine().State(); st != turn.StateLocked {
		t.Fatalf("engine %s, want locked on the player's turn", st)
	}
	f := s.Frame()
	if f.Screen != "play" {
		t.Fatalf("frame screen %q", f.Screen)
	}
	if !strings.HasPrefix(f.Status, "HP: 40/40") || !strings.HasSuffix(f.Status, "Depth 1") {
		t.Errorf("status = %q", f.Status)
	}
	if len(f.Messages) != 1 {
		t.Errorf("want one arrival line, got %q", f.Messages)
	}
	found := false
	for y := range f.Cells {
		if strings.Contains(f.Row(y), "@") {
			found = true
		}
	}
	if !found {
		t.Error("player glyph missing from frame")
	}
	if s.run.Turns != 1 {
		t.Errorf("turns = %d", s.run.Turns)
	}
}

func TestSessionMoveTakesTurn(t *testing.T) {
	s := startedSession(t)
	p := s.Player()
	m := p.Map()

	moves := []struct {
		in     Input
		dx, dy int
	}{
		{Input{KeyCode: KeyUp, Type: KeyDownEvent}, 0, -1},
		{Input{KeyCode: KeyDown, Type: KeyDownEvent}, 0, 1},
		{Input{KeyCode: KeyLeft, Type: KeyDownEvent}, -1, 0},
		{Input{KeyCode: KeyRight, Type: KeyDownEvent}, 1, 0},
	}
	for _, mv := range moves {
		x, y := p.X()+mv.dx, p.Y()+mv.dy
		if !m.InBounds(x, y, 0) || !m.Tile(x, y, 0).Walkable() {
			continue
		}
		if _, err := s.HandleInput(mv.in); err != nil {
			t.Fatal(err)
		}
		if p.X() != x || p.Y() != y {
			t.Fatalf("player at %d,%d, want %d,%d", p.X(), p.Y(), x, y)
		}
		if s.run.Turns != 2 {
			t.Fatalf("turns = %d after one move", s.run.Turns)
		}
		if m.Engine().State() != turn.StateLocked {
			t.Fatal("engine should lock again on the next player turn")
		}
		return
	}
	t.Fatal("player has no walkable neighbour")
}

func TestSessionUnconsumedAction(t *testing.T) {
	s := startedSession(t)
	f, err := s.HandleInput(eat)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Messages) != 1 || f.Messages[0] != "You have nothing to eat." {
		t.Fatalf("messages = %q", f.Messages)
	}
	if s.run.Turns != 1 {
		t.Fatalf("turns = %d, eating nothing should not take a turn", s.run.Turns)
	}
}

func TestSessionLoseAndRestart(t *testing.T) {
	dir := t.TempDir()
	s := startedSession(t, WithRunLog(dir))
	p := s.Player()
	s.game.Rules.Kill(p, "")
	pt := turnState(p)
	if !pt.GameEnded || pt.Won {
		t.Fatalf("ended=%v won=%v", pt.GameEnded, pt.Won)
	}
	if _, err := s.HandleInput(eat); err != nil || s.Screen() != ScreenPlay {
		t.Fatalf("only Enter should leave a finished game: %v %s", err, s.Screen())
	}
	f, err := s.HandleInput(enter)
	if err != nil {
		t.Fatal(err)
	}
	if s.Screen() != ScreenLose || !strings.Contains(f.Row(1), "You lose! :(") {
		t.Fatalf("screen %s row1=%q", s.Screen(), f.Row(1))
	}
	data, err := os.ReadFile(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"outcome":"lose"`) {
		t.Errorf("run log = %s", data)
	}

	if _, err := s.HandleInput(enter); err != nil {
		t.Fatal(err)
	}
	if s.Screen() != ScreenStart || s.Player() != nil {
		t.Fatalf("restart left screen %s", s.Screen())
	}
}

func TestSessionChokeKeepsDeathFrame(t *testing.T) {
	s := startedSession(t)
	p := s.Player()
	h := component.Get[*component.Hunger](p, component.CHunger)
	h.Fullness = h.MaxFullness - 10
	inv := component.Get[*component.Inventory](p, component.CInventory)
	inv.Add(s.game.Factory.Items.MustCreate("melon", nil))

	f, err := s.HandleInput(eat)
	if err != nil {
		t.Fatal(err)
	}
	if !turnState(p).GameEnded {
		t.Fatal("overeating should end the game")
	}
	if !strings.Contains(strings.Join(f.Messages, "\n"), "You choke and die!") {
		t.Fatalf("messages = %q", f.Messages)
	}
	if s.run.Turns != 2 {
		t.Fatalf("turns = %d, the dead player should not act again", s.run.Turns)
	}
	if p.Map().Engine().State() != turn.StateLocked {
		t.Fatal("engine should stay locked after the player dies")
	}
	if s.Screen() != ScreenPlay {
		t.Fatalf("screen = %s before Enter", s.Screen())
	}
}

func TestSessionWin(t *testing.T) {
	s := startedSession(t)
	pt := turnState(s.Player())
	pt.Won, pt.GameEnded = true, true
	f, err := s.HandleInput(enter)
	if err != nil {
		t.Fatal(err)
	}
	if s.Screen() != ScreenWin {
		t.Fatalf("screen = %s", s.Screen())
	}
	for y := 1; y <= 22; y++ {
		if !strings.Contains(f.Row(y), "You win!") {
			t.Fatalf("row %d = %q", y, f.Row(y))
		}
	}
}

func TestSessionFallIntoCavern(t *testing.T) {
	s := startedSession(t)
	p := s.Player()
	cave := p.Map()
	bottom := cave.Depth() - 1

	hx, hy := -1, -1
	for x := 0; x < cave.Width() && hx < 0; x++ {
		for y := 0; y < cave.Height(); y++ {
			if cave.Tile(x, y, bottom).Kind() == world.TileHoleToCavern {
				hx, hy = x, y
				break
			}
		}
	}
	if hx < 0 {
		t.Fatal("no hole on the bottom depth")
	}
	if err := p.SetPosition(hx, hy, bottom); err != nil {
		t.Fatal(err)
	}

	f, err := s.HandleInput(descend)
	if err != nil {
		t.Fatal(err)
	}
	cavern := p.Map()
	if cavern == nil || cavern == cave {
		t.Fatal("player should be on the boss cavern")
	}
	if cavern.Engine().State() != turn.StateLocked {
		t.Fatalf("cavern engine %s", cavern.Engine().State())
	}
	if cave.Engine().State() != turn.StateLocked {
		t.Fatal("the abandoned cave should stay locked")
	}
	if !strings.HasSuffix(f.Status, "Cavern") {
		t.Errorf("status = %q", f.Status)
	}
	zombie := false
	for _, e := range cavern.Entities() {
		if e.Name() == "giant zombie" {
			zombie = true
		}
	}
	if !zombie && !turnState(p).Won {
		t.Error("cavern has no giant zombie")
	}
}
