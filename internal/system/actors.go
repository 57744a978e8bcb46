package system

import (
	"cavecrawler/internal/world"

	"go.uber.org/zap"
)

// huntSearchLimit bounds the path search of a hunting monster.
const huntSearchLimit = 400

// Wander takes one random orthogonal step.
func (r *Rules) Wander(e *world.Entity) {
	offset := 1
	if r.Rand.Intn(2) == 0 {
		offset = -1
	}
	x, y := e.X(), e.Y()
	if r.Rand.Intn(2) == 0 {
		x += offset
	} else {
		y += offset
	}
	r.move(e, x, y, e.Z())
}

// CanHunt reports whether e has sight and sees the player on its map.
func CanHunt(e *world.Entity) bool {
	m := e.Map()
	if m == nil || !e.HasMixin(Sight) {
		return false
	}
	p := m.Player()
	return p != nil && p.Alive() && CanSee(e, p)
}

// Hunt attacks the player when orthogonally adjacent and otherwise steps
// along the shortest path toward it.
func (r *Rules) Hunt(e *world.Entity) {
	p := e.Map().Player()
	if p == nil {
		return
	}
	dx, dy := abs(p.X()-e.X()), abs(p.Y()-e.Y())
	if dx+dy == 1 && e.HasMixin(Attacker) {
		r.Attack(e, p)
		return
	}
	x, y, ok := NextStep(e.Map(), e.X(), e.Y(), p.X(), p.Y(), e.Z(), huntSearchLimit)
	if ok {
		r.move(e, x, y, e.Z())
	}
}

// move is TryMove for monster turns, where a refused index update can only
// mean a bug and is logged instead of surfaced to a player.
func (r *Rules) move(e *world.Entity, x, y, z int) MoveResult {
	res, err := r.TryMove(e, x, y, z)
	if err != nil {
		r.logger().Error("monster move failed", zap.String("entity", e.Name()), zap.Error(err))
	}
	return res
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
