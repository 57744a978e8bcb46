package system

import (
	"cavecrawler/internal/component"
	"cavecrawler/internal/message"
	"cavecrawler/internal/world"
)

// Hunger states, hungriest first.
const (
	Starving     = "Starving"
	Hungry       = "Hungry"
	NotHungry    = "Not Hungry"
	Full         = "Full"
	Oversatiated = "Oversatiated"
)

// AddTurnHunger depletes e's fullness by its per-turn rate.
func (r *Rules) AddTurnHunger(e *world.Entity) {
	if h := component.Get[*component.Hunger](e, component.CHunger); h != nil {
		r.ModifyFullness(e, -h.DepletesTurn)
	}
}

// ModifyFullness adds points to e's fullness. Running empty starves e and
// overfilling chokes it.
func (r *Rules) ModifyFullness(e *world.Entity, points int) {
	h := component.Get[*component.Hunger](e, component.CHunger)
	if h == nil {
		return
	}
	h.Fullness += points
	switch {
	case h.Fullness <= 0:
		r.Kill(e, "You have died of starvation!")
	case h.Fullness > h.MaxFullness:
		r.Kill(e, "You choke and die!")
	}
}

// HungerState describes e's fullness, or "" for entities that never eat.
func HungerState(e *world.Entity) string {
	h := component.Get[*component.Hunger](e, component.CHunger)
	if h == nil {
		return ""
	}
	pct := h.MaxFullness / 100
	switch {
	case h.Fullness <= pct*5:
		return Starving
	case h.Fullness <= pct*25:
		return Hungry
	case h.Fullness >= pct*95:
		return Oversatiated
	case h.Fullness >= pct*75:
		return Full
	}
	return NotHungry
}

// Eat consumes one portion of the edible item in slot.
func (r *Rules) Eat(e *world.Entity, slot int) bool {
	inv := inventoryOf(e)
	if inv == nil || !e.HasMixin(FoodConsumer) {
		return false
	}
	item := inv.Item(slot)
	if item == nil {
		return false
	}
	food := component.Get[*component.Edible](item, component.CEdible)
	if food == nil || food.Remaining <= 0 {
		message.Send(e, "You cannot eat %s.", item.DescribeA(false))
		return false
	}
	message.Send(e, "You eat %s.", item.DescribeThe(false))
	food.Remaining--
	if food.Remaining <= 0 {
		inv.Take(slot)
		if eq := component.Get[*component.Equipment](e, component.CEquipment); eq != nil {
			eq.Unequip(item)
		}
	}
	r.ModifyFullness(e, food.FoodValue)
	return true
}

// FirstEdible returns the first inventory slot holding food, or -1.
func FirstEdible(e *world.Entity) int {
	inv := inventoryOf(e)
	if inv == nil {
		return -1
	}
	for i, item := range inv.Slots {
		if item != nil && item.HasComponent(component.CEdible) {
			return i
		}
	}
	return -1
}
