package message

import (
	"math/rand"
	"testing"

	"cavecrawler/internal/mixin"
	"cavecrawler/internal/world"
)

func listener(name string, x, y int) *world.Entity {
	return world.NewEntity(mixin.Props{"name": name, "x": x, "y": y},
		[]*mixin.Mixin[*world.Entity]{Recipient})
}

func TestSendFormatsOnlyWithArgs(t *testing.T) {
	e := listener("hero", 0, 0)
	Send(e, "100%% sure")
	Send(e, "You hit the %s for %d damage!", "bat", 3)
	got := Messages(e)
	want := []string{"100%% sure", "You hit the bat for 3 damage!"}
	if len(got) != len(want) {
		t.Fatalf("Messages = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	Clear(e)
	if len(Messages(e)) != 0 {
		t.Fatal("Clear left lines behind")
	}
}

func TestSendTextKeepsPercentSigns(t *testing.T) {
	e := listener("hero", 0, 0)
	SendText(e, "The scroll reads: 100% %s %d")
	if got := Messages(e); len(got) != 1 || got[0] != "The scroll reads: 100% %s %d" {
		t.Fatalf("Messages = %q", got)
	}
	rock := world.NewEntity(mixin.Props{"name": "rock"}, nil)
	SendText(rock, "hello")
	SendText(nil, "nobody")
	if Messages(rock) != nil {
		t.Fatal("non-recipient received a message")
	}
}

func TestSendWithoutRecipientIsSilent(t *testing.T) {
	rock := world.NewEntity(mixin.Props{"name": "rock"}, nil)
	Send(rock, "hello %s", "rock")
	Send(nil, "nobody")
	if Messages(rock) != nil {
		t.Fatal("non-recipient received a message")
	}
}

func TestSendNearby(t *testing.T) {
	grid := make([][][]world.TileKind, 1)
	grid[0] = make([][]world.TileKind, 20)
	for x := range grid[0] {
		grid[0][x] = make([]world.TileKind, 20)
		for y := range grid[0][x] {
			grid[0][x][y] = world.TileFloor
		}
	}
	m, err := world.NewMap(grid, world.NewTileSet(nil), rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatal(err)
	}
	near := listener("near", 15, 10)
	far := listener("far", 16, 10)
	deaf := world.NewEntity(mixin.Props{"name": "deaf", "x": 11, "y": 10}, nil)
	for _, e := range []*world.Entity{near, far, deaf} {
		if err := m.AddEntity(e); err != nil {
			t.Fatal(err)
		}
	}
	SendNearby(m, 10, 10, 0, "The %s is spreading!", "fungus")
	if got := Messages(near); len(got) != 1 || got[0] != "The fungus is spreading!" {
		t.Errorf("near got %q", got)
	}
	if len(Messages(far)) != 0 {
		t.Error("entity at radius 6 received the broadcast")
	}
}
