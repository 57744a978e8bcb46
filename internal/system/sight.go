package system

import (
	"cavecrawler/internal/component"
	"cavecrawler/internal/world"
)

// SightRadius returns how far e can see, or 0 without the Sight mixin.
func SightRadius(e *world.Entity) int {
	if s := component.Get[*component.Sight](e, component.CSight); s != nil {
		return s.Radius
	}
	return 0
}

// CanSee reports whether target is within e's sight circle on the same
// depth and not hidden behind light-blocking tiles.
func CanSee(e, target *world.Entity) bool {
	m := e.Map()
	if m == nil || target == nil || target.Map() != m || target.Z() != e.Z() {
		return false
	}
	radius := SightRadius(e)
	if radius <= 0 {
		return false
	}
	dx, dy := target.X()-e.X(), target.Y()-e.Y()
	if dx*dx+dy*dy > radius*radius {
		return false
	}
	found := false
	m.ComputeFOV(e.X(), e.Y(), e.Z(), radius, func(x, y int) {
		if x == target.X() && y == target.Y() {
			found = true
		}
	})
	return found
}

// VisibleCells returns the cells e sees this turn and marks them explored.
func VisibleCells(e *world.Entity) map[world.Key]bool {
	m := e.Map()
	visible := make(map[world.Key]bool)
	if m == nil {
		return visible
	}
	z := e.Z()
	m.ComputeFOV(e.X(), e.Y(), z, SightRadius(e), func(x, y int) {
		visible[world.Key{X: x, Y: y, Z: z}] = true
		m.SetExplored(x, y, z, true)
	})
	return visible
}
