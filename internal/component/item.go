package component

import "cavecrawler/internal/mixin"

const CEquippable mixin.ComponentType = 10

// Equippable is carried by weapons and armor.
type Equippable struct {
	Attack    int
	Defense   int
	Wieldable bool
	Wearable  bool
}

func (*Equippable) Type() mixin.ComponentType { return CEquippable }
