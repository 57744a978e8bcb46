// Package system resolves what entities do to the map and to each other:
// attacks, damage, movement, digging, stairs, inventory, food and sight.
package system

import (
	"math/rand"

	"cavecrawler/internal/world"

	"go.uber.org/zap"
)

// Mixin names the rules dispatch on.
const (
	Attacker        = "Attacker"
	Destructible    = "Destructible"
	InventoryHolder = "InventoryHolder"
	FoodConsumer    = "FoodConsumer"
	Equipper        = "Equipper"
	Sight           = "Sight"
	CorpseDropper   = "CorpseDropper"
	Edible          = "Edible"
	Equippable      = "Equippable"
)

// Events raised on entities.
const (
	EventAttack = "onAttack" // on the target, args: attacker
	EventDeath  = "onDeath"  // on the victim, args: attacker (may be nil)
	EventKill   = "onKill"   // on the attacker, args: victim
)

// DamageFunc computes the damage of one connecting attack. roll is in [0,1).
type DamageFunc func(attack, defense int, roll float64) int

// Rules carries the collaborators every interaction needs.
type Rules struct {
	Rand *rand.Rand
	Log  *zap.Logger
	// Damage overrides BaseDamage when set.
	Damage DamageFunc
	// Cavern builds the instanced area behind a hole tile. Holes are closed
	// when it is nil.
	Cavern func() (*world.Map, error)
}

// NewRules returns rules with the built-in damage formula.
func NewRules(rng *rand.Rand, log *zap.Logger) *Rules {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rules{Rand: rng, Log: log}
}

func (r *Rules) logger() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
