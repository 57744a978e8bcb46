package system

import (
	"math/rand"
	"testing"

	"cavecrawler/internal/component"
	"cavecrawler/internal/message"
	"cavecrawler/internal/mixin"
	"cavecrawler/internal/world"
)

type entityMixin = mixin.Mixin[*world.Entity]

// floorMap returns depth levels of w×h floor surrounded by wall.
func floorMap(t *testing.T, w, h, depth int) *world.Map {
	t.Helper()
	grid := make([][][]world.TileKind, depth)
	for z := range grid {
		grid[z] = make([][]world.TileKind, w)
		for x := range grid[z] {
			grid[z][x] = make([]world.TileKind, h)
			for y := range grid[z][x] {
				k := world.TileFloor
				if x == 0 || y == 0 || x == w-1 || y == h-1 {
					k = world.TileWall
				}
				grid[z][x][y] = k
			}
		}
	}
	m, err := world.NewMap(grid, world.NewTileSet(nil), rand.New(rand.NewSource(7)), nil)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func attacker(value int) *entityMixin {
	return &entityMixin{
		Name: Attacker,
		Init: func(e *world.Entity, _ mixin.Props) { e.Add(&component.Attacker{Value: value}) },
	}
}

func destructible(hp, defense int) *entityMixin {
	return &entityMixin{
		Name: Destructible,
		Init: func(e *world.Entity, _ mixin.Props) {
			e.Add(&component.Destructible{HP: hp, MaxHP: hp, Defense: defense})
		},
	}
}

// playerActor locks the map's engine on every turn and counts its turns.
func playerActor(turns *int) *entityMixin {
	return &entityMixin{
		Name:  world.PlayerActor,
		Group: world.GroupActor,
		Fields: map[string]any{world.FieldAct: world.ActFunc(func(e *world.Entity) {
			*turns++
			if m := e.Map(); m != nil {
				_ = m.Engine().Lock()
			}
		})},
	}
}

var monsterActor = &entityMixin{
	Name:   "MonsterActor",
	Group:  world.GroupActor,
	Fields: map[string]any{world.FieldAct: world.ActFunc(func(*world.Entity) {})},
}

func sight(radius int) *entityMixin {
	return &entityMixin{
		Name:  Sight,
		Group: Sight,
		Init:  func(e *world.Entity, _ mixin.Props) { e.Add(&component.Sight{Radius: radius}) },
	}
}

func holder(slots int) *entityMixin {
	return &entityMixin{
		Name: InventoryHolder,
		Init: func(e *world.Entity, _ mixin.Props) {
			e.Add(&component.Inventory{Slots: make([]*world.Item, slots)})
		},
	}
}

func eater(full, max int) *entityMixin {
	return &entityMixin{
		Name: FoodConsumer,
		Init: func(e *world.Entity, _ mixin.Props) {
			e.Add(&component.Hunger{Fullness: full, MaxFullness: max, DepletesTurn: 1})
		},
	}
}

var equipper = &entityMixin{
	Name: Equipper,
	Init: func(e *world.Entity, _ mixin.Props) { e.Add(&component.Equipment{}) },
}

func spawn(t *testing.T, m *world.Map, name string, x, y, z int, mixins ...*entityMixin) *world.Entity {
	t.Helper()
	e := world.NewEntity(mixin.Props{"name": name, "x": x, "y": y, "z": z}, mixins)
	if m != nil {
		if err := m.AddEntity(e); err != nil {
			t.Fatalf("AddEntity(%s): %v", name, err)
		}
	}
	return e
}

func food(name string, value, portions int) *world.Item {
	return world.NewItem(mixin.Props{"name": name}, []*mixin.Mixin[*world.Item]{{
		Name: Edible,
		Init: func(i *world.Item, _ mixin.Props) {
			i.Add(&component.Edible{FoodValue: value, Remaining: portions, Max: portions})
		},
	}})
}

func gear(name string, atk, def int, wield bool) *world.Item {
	return world.NewItem(mixin.Props{"name": name}, []*mixin.Mixin[*world.Item]{{
		Name: Equippable,
		Init: func(i *world.Item, _ mixin.Props) {
			i.Add(&component.Equippable{Attack: atk, Defense: def, Wieldable: wield, Wearable: !wield})
		},
	}})
}

func lastMessage(e *world.Entity) string {
	msgs := message.Messages(e)
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func newRules(seed int64) *Rules {
	return NewRules(rand.New(rand.NewSource(seed)), nil)
}
