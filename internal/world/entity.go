package world

import (
	"cavecrawler/internal/glyph"
	"cavecrawler/internal/mixin"
	"cavecrawler/internal/turn"
)

// Field keys that the map and turn engine look up on composed hosts.
const (
	FieldAct      = "act"
	FieldDescribe = "describe"
)

// Mixin group and names the spatial index itself cares about.
const (
	GroupActor  = "Actor"
	PlayerActor = "PlayerActor"
)

// ActFunc is the behaviour an Actor-group mixin merges under FieldAct.
type ActFunc func(e *Entity)

// Entity is a positioned, capability-composed inhabitant of a map.
type Entity struct {
	glyph.Dynamic[*Entity]
	x, y, z int
	gmap    *Map
	alive   bool
	speed   int
}

// NewEntity builds an entity from a template and attaches mixins in order.
func NewEntity(props mixin.Props, mixins []*mixin.Mixin[*Entity]) *Entity {
	e := &Entity{
		Dynamic: glyph.NewDynamic[*Entity](props),
		x:       props.Int("x", 0),
		y:       props.Int("y", 0),
		z:       props.Int("z", 0),
		alive:   true,
		speed:   props.Int("speed", turn.DefaultSpeed),
	}
	e.Compose(e, props, mixins)
	return e
}

func (e *Entity) X() int { return e.x }
func (e *Entity) Y() int { return e.y }
func (e *Entity) Z() int { return e.z }

// SetX, SetY and SetZ move the cached coordinates only. Use them before the
// entity is added to a map; afterwards use SetPosition.
func (e *Entity) SetX(x int) { e.x = x }
func (e *Entity) SetY(y int) { e.y = y }
func (e *Entity) SetZ(z int) { e.z = z }

// Key returns the entity's position key.
func (e *Entity) Key() Key { return Key{e.x, e.y, e.z} }

// Map returns the map hosting the entity, or nil.
func (e *Entity) Map() *Map { return e.gmap }

// Alive reports whether the entity has not been killed.
func (e *Entity) Alive() bool { return e.alive }

// MarkDead flips the entity to dead. Returns false if it already was.
func (e *Entity) MarkDead() bool {
	if !e.alive {
		return false
	}
	e.alive = false
	return true
}

// Speed returns the delay between the entity's turns.
func (e *Entity) Speed() int { return e.speed }

// SetSpeed changes the delay between turns from the next turn on.
func (e *Entity) SetSpeed(speed int) { e.speed = speed }

// SetPosition moves the entity and, when it is on a map, updates the map's
// position index. On failure the cached coordinates are restored.
func (e *Entity) SetPosition(x, y, z int) error {
	ox, oy, oz := e.x, e.y, e.z
	e.x, e.y, e.z = x, y, z
	if e.gmap == nil {
		return nil
	}
	if err := e.gmap.UpdateEntityPosition(e, ox, oy, oz); err != nil {
		e.x, e.y, e.z = ox, oy, oz
		return err
	}
	return nil
}

// Act runs the turn behaviour merged by the first Actor mixin, if any.
func (e *Entity) Act() {
	if fn, ok := mixin.FieldAs[ActFunc](&e.Composite, FieldAct); ok {
		fn(e)
	}
}

// IsPlayer reports whether the entity carries the player actor mixin.
func (e *Entity) IsPlayer() bool { return e.HasMixin(PlayerActor) }

// Describe returns the narration name of the entity.
func (e *Entity) Describe() string { return e.Name() }

// DescribeA returns "a bat" / "an apple" style narration.
func (e *Entity) DescribeA(capitalize bool) string {
	return glyph.DescribeA(e.Describe(), capitalize)
}

// DescribeThe returns "the bat" style narration.
func (e *Entity) DescribeThe(capitalize bool) string {
	return glyph.DescribeThe(e.Describe(), capitalize)
}
