package component

import "cavecrawler/internal/mixin"

const (
	CHunger mixin.ComponentType = 8
	CEdible mixin.ComponentType = 9
)

type Hunger struct {
	Fullness     int
	MaxFullness  int
	DepletesTurn int
}

func (*Hunger) Type() mixin.ComponentType { return CHunger }

// Edible is carried by food items. Remaining counts down to zero, after
// which the item is used up.
type Edible struct {
	FoodValue int
	Remaining int
	Max       int
}

func (*Edible) Type() mixin.ComponentType { return CEdible }

// PartlyEaten reports whether some but not all portions were consumed.
func (e *Edible) PartlyEaten() bool {
	return e.Max > 1 && e.Remaining > 0 && e.Remaining < e.Max
}
