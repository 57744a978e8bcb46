package system

import (
	"testing"

	"cavecrawler/internal/component"
	"cavecrawler/internal/message"
)

func TestPickUpAndDrop(t *testing.T) {
	m := floorMap(t, 10, 10, 1)
	var turns int
	hero := spawn(t, m, "hero", 2, 2, 0, playerActor(&turns), holder(2), equipper, message.Recipient)
	r := newRules(1)

	if r.PickUp(hero) != 0 || lastMessage(hero) != "There is nothing here to pick up." {
		t.Fatalf("empty cell: %q", lastMessage(hero))
	}

	m.AddItem(2, 2, 0, food("apple", 10, 1))
	if r.PickUp(hero) != 1 || lastMessage(hero) != "You pick up an apple." {
		t.Fatalf("single pickup: %q", lastMessage(hero))
	}
	if m.ItemsAt(2, 2, 0) != nil {
		t.Fatal("picked item left on the floor")
	}

	m.AddItem(2, 2, 0, food("melon", 10, 1))
	m.AddItem(2, 2, 0, gear("dagger", 5, 0, true))
	if r.PickUp(hero) != 1 {
		t.Fatal("only one slot was free")
	}
	if lastMessage(hero) != "Your inventory is full! Not all items were picked up." {
		t.Fatalf("partial pickup: %q", lastMessage(hero))
	}
	if left := m.ItemsAt(2, 2, 0); len(left) != 1 || left[0].Name() != "dagger" {
		t.Fatalf("floor = %v", left)
	}
	if r.PickUp(hero) != 0 || lastMessage(hero) != "Your inventory is full! Nothing was picked up." {
		t.Fatalf("full pickup: %q", lastMessage(hero))
	}

	if !r.Drop(hero, 0) {
		t.Fatal("drop failed")
	}
	if lastMessage(hero) != "You drop an apple." || len(m.ItemsAt(2, 2, 0)) != 2 {
		t.Fatalf("after drop: %q, %d on floor", lastMessage(hero), len(m.ItemsAt(2, 2, 0)))
	}
	if r.Drop(hero, 0) {
		t.Fatal("dropping an empty slot should fail")
	}
}

func TestDropUnequips(t *testing.T) {
	m := floorMap(t, 10, 10, 1)
	hero := spawn(t, m, "hero", 2, 2, 0, attacker(1), holder(2), equipper)
	inv := component.Get[*component.Inventory](hero, component.CInventory)
	sword := gear("sword", 8, 0, true)
	inv.Add(sword)
	r := newRules(1)
	r.Equip(hero, 0)
	if AttackValue(hero) != 9 {
		t.Fatalf("attack = %d", AttackValue(hero))
	}
	r.Drop(hero, 0)
	if AttackValue(hero) != 1 {
		t.Fatal("dropped weapon still counted")
	}
}

func TestBestEquippable(t *testing.T) {
	hero := spawn(t, nil, "hero", 0, 0, 0, holder(4), equipper)
	inv := component.Get[*component.Inventory](hero, component.CInventory)
	inv.Add(food("apple", 5, 1))
	inv.Add(gear("dagger", 5, 0, true))
	inv.Add(gear("platemail", 0, 15, false))
	if got := BestEquippable(hero); got != 2 {
		t.Fatalf("BestEquippable = %d, want platemail slot 2", got)
	}
	newRules(1).Equip(hero, 2)
	if got := BestEquippable(hero); got != 1 {
		t.Fatalf("after wearing platemail = %d, want 1", got)
	}
}

func TestEat(t *testing.T) {
	hero := spawn(t, nil, "hero", 0, 0, 0, holder(3), eater(500, 1000), message.Recipient)
	inv := component.Get[*component.Inventory](hero, component.CInventory)
	inv.Add(gear("rock", 0, 0, true))
	inv.Add(food("melon", 35, 4))
	r := newRules(1)

	if r.Eat(hero, 0) {
		t.Fatal("ate a rock")
	}
	if FirstEdible(hero) != 1 {
		t.Fatalf("FirstEdible = %d", FirstEdible(hero))
	}
	if !r.Eat(hero, 1) || lastMessage(hero) != "You eat the melon." {
		t.Fatalf("eat: %q", lastMessage(hero))
	}
	h := component.Get[*component.Hunger](hero, component.CHunger)
	if h.Fullness != 535 {
		t.Fatalf("fullness = %d", h.Fullness)
	}
	for i := 0; i < 3; i++ {
		r.Eat(hero, 1)
	}
	if inv.Item(1) != nil {
		t.Fatal("finished food should leave the inventory")
	}
}

func TestEatingLastPortionUnequips(t *testing.T) {
	hero := spawn(t, nil, "hero", 0, 0, 0, attacker(1), holder(2), equipper, eater(500, 1000))
	inv := component.Get[*component.Inventory](hero, component.CInventory)
	club := gear("bone club", 2, 0, true)
	club.Add(&component.Edible{FoodValue: 20, Remaining: 1, Max: 1})
	inv.Add(club)
	r := newRules(1)
	r.Equip(hero, 0)
	if AttackValue(hero) != 3 {
		t.Fatalf("attack = %d", AttackValue(hero))
	}
	if !r.Eat(hero, 0) {
		t.Fatal("eat failed")
	}
	eq := component.Get[*component.Equipment](hero, component.CEquipment)
	if eq.Weapon != nil {
		t.Fatal("eaten item still wielded")
	}
	if AttackValue(hero) != 1 {
		t.Fatalf("attack after eating = %d", AttackValue(hero))
	}
}

func TestHungerDeaths(t *testing.T) {
	cases := []struct {
		name     string
		fullness int
		delta    int
		msg      string
	}{
		{"starvation", 1, -1, "You have died of starvation!"},
		{"choking", 990, 20, "You choke and die!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hero := spawn(t, nil, "hero", 0, 0, 0, eater(tc.fullness, 1000), message.Recipient)
			newRules(1).ModifyFullness(hero, tc.delta)
			if hero.Alive() || lastMessage(hero) != tc.msg {
				t.Fatalf("alive=%v msg=%q", hero.Alive(), lastMessage(hero))
			}
		})
	}
}

func TestHungerState(t *testing.T) {
	cases := []struct {
		fullness int
		want     string
	}{
		{50, Starving},
		{250, Hungry},
		{500, NotHungry},
		{750, Full},
		{960, Oversatiated},
	}
	for _, tc := range cases {
		hero := spawn(t, nil, "hero", 0, 0, 0, eater(tc.fullness, 1000))
		if got := HungerState(hero); got != tc.want {
			t.Errorf("fullness %d: %q, want %q", tc.fullness, got, tc.want)
		}
	}
	if HungerState(spawn(t, nil, "rock", 0, 0, 0)) != "" {
		t.Error("non-eater should have no hunger state")
	}
}

func TestAddTurnHunger(t *testing.T) {
	hero := spawn(t, nil, "hero", 0, 0, 0, eater(10, 1000))
	r := newRules(1)
	r.AddTurnHunger(hero)
	if got := component.Get[*component.Hunger](hero, component.CHunger).Fullness; got != 9 {
		t.Fatalf("fullness = %d", got)
	}
}
