package component

import (
	"cavecrawler/internal/mixin"
	"cavecrawler/internal/world"
)

const (
	CInventory mixin.ComponentType = 6
	CEquipment mixin.ComponentType = 7
)

// Inventory is a fixed number of slots. Empty slots are nil and keep their
// index so letters shown to the player stay stable.
type Inventory struct {
	Slots []*world.Item
}

func (*Inventory) Type() mixin.ComponentType { return CInventory }

// Add puts item in the first free slot.
func (inv *Inventory) Add(item *world.Item) bool {
	for i, s := range inv.Slots {
		if s == nil {
			inv.Slots[i] = item
			return true
		}
	}
	return false
}

// Item returns the item in slot i, or nil.
func (inv *Inventory) Item(i int) *world.Item {
	if i < 0 || i >= len(inv.Slots) {
		return nil
	}
	return inv.Slots[i]
}

// Take empties slot i and returns what was in it.
func (inv *Inventory) Take(i int) *world.Item {
	item := inv.Item(i)
	if item != nil {
		inv.Slots[i] = nil
	}
	return item
}

// CanAdd reports whether a free slot exists.
func (inv *Inventory) CanAdd() bool {
	for _, s := range inv.Slots {
		if s == nil {
			return true
		}
	}
	return false
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	n := 0
	for _, s := range inv.Slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Last returns the index of the highest occupied slot, or -1.
func (inv *Inventory) Last() int {
	for i := len(inv.Slots) - 1; i >= 0; i-- {
		if inv.Slots[i] != nil {
			return i
		}
	}
	return -1
}

// Equipment tracks what an Equipper holds and wears.
type Equipment struct {
	Weapon *world.Item
	Armor  *world.Item
}

func (*Equipment) Type() mixin.ComponentType { return CEquipment }

// Unequip clears item from whichever slot holds it.
func (eq *Equipment) Unequip(item *world.Item) {
	if eq.Weapon == item {
		eq.Weapon = nil
	}
	if eq.Armor == item {
		eq.Armor = nil
	}
}
