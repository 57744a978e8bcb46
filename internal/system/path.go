package system

import "cavecrawler/internal/world"

type point struct{ x, y int }

var steps = [4]point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// NextStep finds the first orthogonal step of a shortest path from (fx, fy)
// to (tx, ty) on depth z. Cells are passable when walkable and free, except
// the two endpoints. ok is false when no path exists within limit cells.
func NextStep(m *world.Map, fx, fy, tx, ty, z, limit int) (x, y int, ok bool) {
	start, end := point{fx, fy}, point{tx, ty}
	if start == end {
		return 0, 0, false
	}
	passable := func(p point) bool {
		if p == end {
			return true
		}
		return m.Tile(p.x, p.y, z).Walkable() && m.EntityAt(p.x, p.y, z) == nil
	}
	cameFrom := map[point]point{}
	visited := map[point]bool{start: true}
	queue := []point{start}
	for len(queue) > 0 && len(visited) <= limit {
		curr := queue[0]
		queue = queue[1:]
		if curr == end {
			for cameFrom[curr] != start {
				curr = cameFrom[curr]
			}
			return curr.x, curr.y, true
		}
		for _, d := range steps {
			next := point{curr.x + d.x, curr.y + d.y}
			if visited[next] || !passable(next) {
				continue
			}
			visited[next] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return 0, 0, false
}
