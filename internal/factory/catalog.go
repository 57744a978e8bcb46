package factory

import (
	"cavecrawler/internal/component"
	"cavecrawler/internal/message"
	"cavecrawler/internal/mixin"
	"cavecrawler/internal/system"
	"cavecrawler/internal/world"

	"go.uber.org/zap"
)

// Actor mixin names.
const (
	FungusActor      = "FungusActor"
	WanderActor      = "WanderActor"
	TaskActor        = "TaskActor"
	GiantZombieActor = "GiantZombieActor"
)

// Task names beyond the generic hunt and wander.
const (
	taskGrowArm    = "growArm"
	taskSpawnSlime = "spawnSlime"
)

type (
	entityMixin = mixin.Mixin[*world.Entity]
	itemMixin   = mixin.Mixin[*world.Item]
)

func act(fn func(*world.Entity)) map[string]any {
	return map[string]any{world.FieldAct: world.ActFunc(fn)}
}

func (f *Factory) entityCatalog() map[string]*entityMixin {
	mixins := []*entityMixin{
		{
			Name:   world.PlayerActor,
			Group:  world.GroupActor,
			Fields: act(f.playerAct),
			Init: func(e *world.Entity, _ mixin.Props) {
				e.Add(&component.PlayerTurn{})
			},
		},
		{
			Name:   FungusActor,
			Group:  world.GroupActor,
			Fields: act(f.fungusAct),
			Init: func(e *world.Entity, p mixin.Props) {
				e.Add(&component.Growth{Remaining: p.Int("growths", 5)})
			},
		},
		{
			Name:   WanderActor,
			Group:  world.GroupActor,
			Fields: act(f.rules.Wander),
		},
		{
			Name:   TaskActor,
			Group:  world.GroupActor,
			Fields: act(f.taskAct),
			Init:   initTasks,
		},
		{
			Name:   GiantZombieActor,
			Group:  world.GroupActor,
			Fields: act(f.taskAct),
			Init: func(e *world.Entity, p mixin.Props) {
				initTasks(e, p)
				e.Add(&component.Growth{Remaining: 1})
			},
			Listeners: map[string]mixin.Listener[*world.Entity]{
				system.EventDeath: zombieDeath,
			},
		},
		{
			Name: system.Attacker,
			Init: func(e *world.Entity, p mixin.Props) {
				e.Add(&component.Attacker{Value: p.Int("attackValue", 1)})
			},
		},
		{
			Name: system.Destructible,
			Init: func(e *world.Entity, p mixin.Props) {
				maxHP := p.Int("maxHp", 10)
				e.Add(&component.Destructible{
					HP:      p.Int("hp", maxHP),
					MaxHP:   maxHP,
					Defense: p.Int("defenseValue", 0),
				})
			},
		},
		message.Recipient,
		{
			Name:  system.Sight,
			Group: system.Sight,
			Init: func(e *world.Entity, p mixin.Props) {
				e.Add(&component.Sight{Radius: p.Int("sightRadius", f.sightRadius)})
			},
		},
		{
			Name: system.InventoryHolder,
			Init: func(e *world.Entity, p mixin.Props) {
				e.Add(&component.Inventory{Slots: make([]*world.Item, p.Int("inventorySlots", 10))})
			},
		},
		{
			Name: system.FoodConsumer,
			Init: func(e *world.Entity, p mixin.Props) {
				maxFull := p.Int("maxFullness", 1000)
				e.Add(&component.Hunger{
					Fullness:     p.Int("fullness", maxFull/2),
					MaxFullness:  maxFull,
					DepletesTurn: p.Int("fullnessDepletionRate", 1),
				})
			},
		},
		{
			Name: system.CorpseDropper,
			Init: func(e *world.Entity, p mixin.Props) {
				e.Add(&component.CorpseDropper{Rate: p.Int("corpseDropRate", 100)})
			},
			Listeners: map[string]mixin.Listener[*world.Entity]{
				system.EventDeath: f.dropCorpse,
			},
		},
		{
			Name: system.Equipper,
			Init: func(e *world.Entity, _ mixin.Props) {
				e.Add(&component.Equipment{})
			},
		},
	}
	out := make(map[string]*entityMixin, len(mixins))
	for _, m := range mixins {
		out[m.Name] = m
	}
	return out
}

func itemCatalog() map[string]*itemMixin {
	return map[string]*itemMixin{
		system.Edible: {
			Name: system.Edible,
			Fields: map[string]any{world.FieldDescribe: world.DescribeFunc(func(i *world.Item) string {
				if food := component.Get[*component.Edible](i, component.CEdible); food != nil && food.PartlyEaten() {
					return "partly eaten " + i.Name()
				}
				return i.Name()
			})},
			Init: func(i *world.Item, p mixin.Props) {
				n := p.Int("consumptions", 1)
				i.Add(&component.Edible{FoodValue: p.Int("foodValue", 5), Remaining: n, Max: n})
			},
		},
		system.Equippable: {
			Name: system.Equippable,
			Init: func(i *world.Item, p mixin.Props) {
				i.Add(&component.Equippable{
					Attack:    p.Int("attackValue", 0),
					Defense:   p.Int("defenseValue", 0),
					Wieldable: p.Bool("wieldable"),
					Wearable:  p.Bool("wearable"),
				})
			},
		},
	}
}

func initTasks(e *world.Entity, p mixin.Props) {
	e.Add(&component.Tasks{Names: p.Strings("tasks", []string{component.TaskWander})})
}

// playerAct runs once per player turn: it ages hunger, reports death, hands
// the screen to whoever renders it and locks the engine until input arrives.
func (f *Factory) playerAct(e *world.Entity) {
	pt := component.Get[*component.PlayerTurn](e, component.CPlayerTurn)
	if pt == nil || pt.Acting {
		return
	}
	pt.Acting = true
	f.rules.AddTurnHunger(e)
	if !e.Alive() {
		pt.GameEnded = true
		message.Send(e, "Press [Enter] to continue!")
	}
	if pt.Notify != nil {
		pt.Notify()
	}
	if m := e.Map(); m != nil {
		if err := m.Engine().Lock(); err != nil {
			f.log.Debug("player turn outside a running engine", zap.Error(err))
		}
	}
	message.Clear(e)
	pt.Acting = false
}

// fungusAct occasionally spreads the fungus into a free neighbouring cell.
func (f *Factory) fungusAct(e *world.Entity) {
	g := component.Get[*component.Growth](e, component.CGrowth)
	m := e.Map()
	if g == nil || m == nil || g.Remaining <= 0 || f.rules.Rand.Float64() > 0.02 {
		return
	}
	dx, dy := f.rules.Rand.Intn(3)-1, f.rules.Rand.Intn(3)-1
	if dx == 0 && dy == 0 {
		return
	}
	x, y := e.X()+dx, e.Y()+dy
	if !m.IsEmptyFloor(x, y, e.Z()) {
		return
	}
	child, err := f.Entities.Create("fungus", mixin.Props{"x": x, "y": y, "z": e.Z()})
	if err != nil {
		f.log.Error("spawn fungus", zap.Error(err))
		return
	}
	if err := m.AddEntity(child); err != nil {
		f.log.Error("place fungus", zap.Error(err))
		return
	}
	g.Remaining--
	message.SendNearby(m, e.X(), e.Y(), e.Z(), "The fungus is spreading!")
}

// taskAct runs the first task in priority order that can run this turn.
func (f *Factory) taskAct(e *world.Entity) {
	tasks := component.Get[*component.Tasks](e, component.CTasks)
	if tasks == nil {
		return
	}
	for _, task := range tasks.Names {
		if f.canDoTask(e, task) {
			f.doTask(e, task)
			return
		}
	}
}

func (f *Factory) canDoTask(e *world.Entity, task string) bool {
	switch task {
	case component.TaskHunt:
		return system.CanHunt(e)
	case component.TaskWander:
		return true
	case taskGrowArm:
		g := component.Get[*component.Growth](e, component.CGrowth)
		d := component.Get[*component.Destructible](e, component.CDestructible)
		return g != nil && d != nil && g.Remaining > 0 && d.HP <= d.MaxHP/2
	case taskSpawnSlime:
		return f.rules.Rand.Intn(100) < 10
	}
	f.log.Warn("unknown task", zap.String("entity", e.Name()), zap.String("task", task))
	return false
}

func (f *Factory) doTask(e *world.Entity, task string) {
	switch task {
	case component.TaskHunt:
		f.rules.Hunt(e)
	case component.TaskWander:
		f.rules.Wander(e)
	case taskGrowArm:
		f.growArm(e)
	case taskSpawnSlime:
		f.spawnSlime(e)
	}
}

func (f *Factory) growArm(e *world.Entity) {
	component.Get[*component.Growth](e, component.CGrowth).Remaining--
	if a := component.Get[*component.Attacker](e, component.CAttacker); a != nil {
		a.Value += 10
	}
	message.SendNearby(e.Map(), e.X(), e.Y(), e.Z(), "An extra arm appears on the %s!", e.Name())
}

func (f *Factory) spawnSlime(e *world.Entity) {
	m := e.Map()
	x := e.X() + f.rules.Rand.Intn(3) - 1
	y := e.Y() + f.rules.Rand.Intn(3) - 1
	if !m.IsEmptyFloor(x, y, e.Z()) {
		return
	}
	slime, err := f.Entities.Create("slime", mixin.Props{"x": x, "y": y, "z": e.Z()})
	if err != nil {
		f.log.Error("spawn slime", zap.Error(err))
		return
	}
	if err := m.AddEntity(slime); err != nil {
		f.log.Error("place slime", zap.Error(err))
		return
	}
	message.SendNearby(m, e.X(), e.Y(), e.Z(), "The %s spawns a slime!", e.Name())
}

// zombieDeath ends the game in the player's favour.
func zombieDeath(_ *world.Entity, args ...any) {
	if len(args) == 0 {
		return
	}
	killer, _ := args[0].(*world.Entity)
	if killer == nil {
		return
	}
	if pt := component.Get[*component.PlayerTurn](killer, component.CPlayerTurn); pt != nil {
		pt.Won = true
		pt.GameEnded = true
	}
}

// dropCorpse leaves a corpse named and colored after the dead entity.
func (f *Factory) dropCorpse(e *world.Entity, _ ...any) {
	cd := component.Get[*component.CorpseDropper](e, component.CCorpseDropper)
	m := e.Map()
	if cd == nil || m == nil || f.rules.Rand.Intn(100) >= cd.Rate {
		return
	}
	corpse, err := f.Items.Create("corpse", mixin.Props{
		"name":       e.Name() + " corpse",
		"foreground": e.ForegroundPaint(),
	})
	if err != nil {
		f.log.Error("drop corpse", zap.Error(err))
		return
	}
	m.AddItem(e.X(), e.Y(), e.Z(), corpse)
}
