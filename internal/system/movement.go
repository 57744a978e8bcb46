package system

import (
	"fmt"

	"cavecrawler/internal/message"
	"cavecrawler/internal/turn"
	"cavecrawler/internal/world"

	"go.uber.org/zap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveBlocked   MoveResult = iota // nothing happened
	MoveOK                          // position updated on the same depth
	MoveAttack                      // bumped an entity and attacked it
	MoveDig                         // dug through a wall
	MoveAscend                      // climbed stairs up
	MoveDescend                     // climbed stairs down
	MoveSwitchMap                   // fell through a hole into another map
)

var moveNames = [...]string{"blocked", "ok", "attack", "dig", "ascend", "descend", "switch map"}

func (r MoveResult) String() string {
	if int(r) < len(moveNames) {
		return moveNames[r]
	}
	return fmt.Sprintf("MoveResult(%d)", r)
}

// Consumed reports whether the move used up the mover's turn.
func (r MoveResult) Consumed() bool { return r != MoveBlocked }

// TryMove attempts to take e to (x, y, z). A z different from e's depth is a
// stairs move checked against the tile under e's target on its current depth.
// Rule rejections return MoveBlocked with a nil error; a non-nil error means
// the map's position index refused the move.
func (r *Rules) TryMove(e *world.Entity, x, y, z int) (MoveResult, error) {
	m := e.Map()
	if m == nil {
		return MoveBlocked, nil
	}
	tile := m.Tile(x, y, e.Z())
	target := m.EntityAt(x, y, e.Z())

	switch {
	case z < e.Z():
		if tile.Kind() != world.TileStairsUp {
			message.Send(e, "You can't go up here!")
			return MoveBlocked, nil
		}
		if !r.landingFree(e, x, y, z) {
			return MoveBlocked, nil
		}
		if err := e.SetPosition(x, y, z); err != nil {
			return MoveBlocked, err
		}
		message.Send(e, "You ascend to level %d!", z+1)
		return MoveAscend, nil

	case z > e.Z():
		if tile.Kind() == world.TileHoleToCavern && e.IsPlayer() {
			return r.enterCavern(e)
		}
		if tile.Kind() != world.TileStairsDown {
			message.Send(e, "You can't go down here!")
			return MoveBlocked, nil
		}
		if !r.landingFree(e, x, y, z) {
			return MoveBlocked, nil
		}
		if err := e.SetPosition(x, y, z); err != nil {
			return MoveBlocked, err
		}
		message.Send(e, "You descend to level %d!", z+1)
		return MoveDescend, nil

	case target != nil:
		if target == e {
			return MoveBlocked, nil
		}
		if e.HasMixin(Attacker) && (e.IsPlayer() || target.IsPlayer()) {
			if _, ok := r.Attack(e, target); ok {
				return MoveAttack, nil
			}
		}
		return MoveBlocked, nil

	case tile.Walkable():
		if err := e.SetPosition(x, y, z); err != nil {
			return MoveBlocked, err
		}
		if items := m.ItemsAt(x, y, z); len(items) == 1 {
			message.Send(e, "You see %s.", items[0].DescribeA(false))
		} else if len(items) > 1 {
			message.Send(e, "There are several objects here.")
		}
		return MoveOK, nil

	case tile.Diggable():
		if !e.IsPlayer() {
			return MoveBlocked, nil
		}
		m.Dig(x, y, z)
		return MoveDig, nil
	}
	return MoveBlocked, nil
}

// landingFree checks the far end of a staircase. Another entity standing
// there blocks the climb rather than corrupting the position index.
func (r *Rules) landingFree(e *world.Entity, x, y, z int) bool {
	if other := e.Map().EntityAt(x, y, z); other != nil && other != e {
		message.Send(e, "Something blocks the stairs.")
		return false
	}
	return true
}

func (r *Rules) enterCavern(e *world.Entity) (MoveResult, error) {
	if r.Cavern == nil {
		message.Send(e, "You can't go down here!")
		return MoveBlocked, nil
	}
	cavern, err := r.Cavern()
	if err != nil {
		return MoveBlocked, fmt.Errorf("build cavern: %w", err)
	}
	if err := r.SwitchMap(e, cavern); err != nil {
		return MoveBlocked, err
	}
	return MoveSwitchMap, nil
}

// SwitchMap moves e from its map onto a random floor cell of depth 0 of
// dst. When e is the player and dst's engine has not run yet, it is started.
func (r *Rules) SwitchMap(e *world.Entity, dst *world.Map) error {
	src := e.Map()
	if src == dst {
		return nil
	}
	if src != nil {
		src.RemoveEntity(e)
	}
	e.SetX(0)
	e.SetY(0)
	e.SetZ(0)
	if err := dst.AddEntityAtRandomPosition(e, 0); err != nil {
		return fmt.Errorf("switch map: %w", err)
	}
	r.logger().Info("entity switched map",
		zap.String("entity", e.Name()),
		zap.Stringer("pos", e.Key()))
	if e.IsPlayer() && dst.Engine().State() == turn.StateStopped {
		if err := dst.Engine().Start(); err != nil {
			return fmt.Errorf("switch map: %w", err)
		}
	}
	return nil
}
