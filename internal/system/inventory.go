package system

import (
	"cavecrawler/internal/component"
	"cavecrawler/internal/message"
	"cavecrawler/internal/world"
)

func inventoryOf(e *world.Entity) *component.Inventory {
	return component.Get[*component.Inventory](e, component.CInventory)
}

// PickUp moves as many items as fit from e's cell into its inventory and
// reports how many were taken.
func (r *Rules) PickUp(e *world.Entity) int {
	inv := inventoryOf(e)
	m := e.Map()
	if inv == nil || m == nil {
		return 0
	}
	items := m.ItemsAt(e.X(), e.Y(), e.Z())
	if len(items) == 0 {
		message.Send(e, "There is nothing here to pick up.")
		return 0
	}
	var left []*world.Item
	var taken []*world.Item
	for _, it := range items {
		if inv.Add(it) {
			taken = append(taken, it)
		} else {
			left = append(left, it)
		}
	}
	m.SetItemsAt(e.X(), e.Y(), e.Z(), left)
	switch {
	case len(taken) == 0:
		message.Send(e, "Your inventory is full! Nothing was picked up.")
	case len(left) > 0:
		message.Send(e, "Your inventory is full! Not all items were picked up.")
	case len(taken) == 1:
		message.Send(e, "You pick up %s.", taken[0].DescribeA(false))
	default:
		message.Send(e, "You pick up %d items.", len(taken))
	}
	return len(taken)
}

// Drop puts the item in slot onto e's cell, unequipping it first.
func (r *Rules) Drop(e *world.Entity, slot int) bool {
	inv := inventoryOf(e)
	m := e.Map()
	if inv == nil || m == nil {
		return false
	}
	item := inv.Take(slot)
	if item == nil {
		message.Send(e, "You have nothing to drop.")
		return false
	}
	if eq := component.Get[*component.Equipment](e, component.CEquipment); eq != nil {
		eq.Unequip(item)
	}
	m.AddItem(e.X(), e.Y(), e.Z(), item)
	message.Send(e, "You drop %s.", item.DescribeA(false))
	return true
}

// Equip wields or wears the item in slot, replacing whatever held that place.
func (r *Rules) Equip(e *world.Entity, slot int) bool {
	inv := inventoryOf(e)
	eq := component.Get[*component.Equipment](e, component.CEquipment)
	if inv == nil || eq == nil {
		return false
	}
	item := inv.Item(slot)
	if item == nil {
		return false
	}
	spec := component.Get[*component.Equippable](item, component.CEquippable)
	switch {
	case spec == nil:
		message.Send(e, "You cannot equip %s.", item.DescribeA(false))
		return false
	case spec.Wieldable:
		eq.Unequip(item)
		eq.Weapon = item
		message.Send(e, "You are wielding %s.", item.DescribeA(false))
	case spec.Wearable:
		eq.Unequip(item)
		eq.Armor = item
		message.Send(e, "You are wearing %s.", item.DescribeA(false))
	default:
		return false
	}
	return true
}

// BestEquippable picks the inventory slot holding the strongest item not
// already equipped, or -1.
func BestEquippable(e *world.Entity) int {
	inv := inventoryOf(e)
	eq := component.Get[*component.Equipment](e, component.CEquipment)
	if inv == nil || eq == nil {
		return -1
	}
	best, bestScore := -1, -1
	for i, item := range inv.Slots {
		if item == nil || item == eq.Weapon || item == eq.Armor {
			continue
		}
		spec := component.Get[*component.Equippable](item, component.CEquippable)
		if spec == nil {
			continue
		}
		if score := spec.Attack + spec.Defense; score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
