package system

import (
	"cavecrawler/internal/component"
	"cavecrawler/internal/message"
	"cavecrawler/internal/world"

	"go.uber.org/zap"
)

// BaseDamage is 1 plus a random share of how far attack exceeds defense.
func BaseDamage(attack, defense int, roll float64) int {
	spread := attack - defense
	if spread < 0 {
		spread = 0
	}
	return 1 + int(roll*float64(spread))
}

// AttackValue is the attacker's base value plus equipment bonuses.
func AttackValue(e *world.Entity) int {
	v := 0
	if a := component.Get[*component.Attacker](e, component.CAttacker); a != nil {
		v = a.Value
	}
	if eq := component.Get[*component.Equipment](e, component.CEquipment); eq != nil {
		v += equippable(eq.Weapon).Attack + equippable(eq.Armor).Attack
	}
	return v
}

// DefenseValue is the target's base defense plus equipment bonuses.
func DefenseValue(e *world.Entity) int {
	v := 0
	if d := component.Get[*component.Destructible](e, component.CDestructible); d != nil {
		v = d.Defense
	}
	if eq := component.Get[*component.Equipment](e, component.CEquipment); eq != nil {
		v += equippable(eq.Weapon).Defense + equippable(eq.Armor).Defense
	}
	return v
}

func equippable(item *world.Item) component.Equippable {
	if item == nil {
		return component.Equippable{}
	}
	if eq := component.Get[*component.Equippable](item, component.CEquippable); eq != nil {
		return *eq
	}
	return component.Equippable{}
}

// Attack resolves one hit of attacker on target. It returns the damage
// dealt, or false when either side lacks the capability.
func (r *Rules) Attack(attacker, target *world.Entity) (int, bool) {
	if !attacker.HasMixin(Attacker) || !target.HasMixin(Destructible) {
		return 0, false
	}
	dmgFn := r.Damage
	if dmgFn == nil {
		dmgFn = BaseDamage
	}
	dmg := dmgFn(AttackValue(attacker), DefenseValue(target), r.Rand.Float64())
	if dmg < 1 {
		dmg = 1
	}
	message.Send(attacker, "You strike the %s for %d damage!", target.Name(), dmg)
	message.Send(target, "The %s strikes you for %d damage!", attacker.Name(), dmg)
	target.RaiseEvent(target, EventAttack, attacker)
	r.TakeDamage(target, attacker, dmg)
	return dmg, true
}

// TakeDamage subtracts dmg from target's hit points and kills it at zero.
// attacker may be nil for environmental damage.
func (r *Rules) TakeDamage(target, attacker *world.Entity, dmg int) {
	d := component.Get[*component.Destructible](target, component.CDestructible)
	if d == nil || !target.Alive() {
		return
	}
	d.HP -= dmg
	if d.HP > 0 {
		return
	}
	r.logger().Debug("entity killed",
		zap.String("victim", target.Name()),
		zap.Stringer("pos", target.Key()))
	if attacker != nil {
		message.Send(attacker, "You kill the %s!", target.Name())
	}
	target.RaiseEvent(target, EventDeath, attacker)
	if attacker != nil {
		attacker.RaiseEvent(attacker, EventKill, target)
	}
	r.Kill(target, "")
}

// Kill marks e dead. The player is given its turn so it can notice and end
// the game; anyone else is taken off the map and out of the schedule.
func (r *Rules) Kill(e *world.Entity, msg string) {
	if !e.MarkDead() {
		return
	}
	if msg == "" {
		msg = "You have died!"
	}
	message.SendText(e, msg)
	if e.IsPlayer() {
		e.Act()
		return
	}
	if m := e.Map(); m != nil {
		m.RemoveEntity(e)
	}
}
