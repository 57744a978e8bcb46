// Package generate produces tile grids for the cave levels and the boss
// cavern and stocks finished maps with monsters and loot.
package generate

import (
	"errors"
	"math/rand"
	"sort"

	"cavecrawler/internal/world"
)

// ErrBadSize is returned for non-positive dimensions.
var ErrBadSize = errors.New("generate: bad map size")

// CaveConfig drives cave generation.
type CaveConfig struct {
	Width, Height, Depth int
	// Passes of the cellular automaton after the random fill.
	Iterations int
	// FillRatio is the chance a cell starts as floor.
	FillRatio float64
	// Floor regions smaller than MinRegion cells are filled back in.
	MinRegion int
	Rand      *rand.Rand
}

// DefaultCaveConfig returns the standard 100×48, six-depth cave.
func DefaultCaveConfig(rng *rand.Rand) CaveConfig {
	return CaveConfig{
		Width:      100,
		Height:     48,
		Depth:      6,
		Iterations: 3,
		FillRatio:  0.5,
		MinRegion:  20,
		Rand:       rng,
	}
}

type point struct{ x, y int }

// Cave builds a multi-depth cave grid indexed [z][x][y]. Every depth is one
// orthogonally connected floor region, and each pair of consecutive depths
// shares exactly one staircase: down on the upper depth, up directly below.
func Cave(cfg CaveConfig) ([][][]world.TileKind, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Depth <= 0 {
		return nil, ErrBadSize
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	levels := make([]level, cfg.Depth)
	for z := range levels {
		levels[z] = cellular(cfg)
		prune(levels[z], cfg)
		connect(levels[z], cfg.Rand)
	}
	for z := 0; z < cfg.Depth-1; z++ {
		linkStairs(levels[z], levels[z+1], cfg.Rand)
	}
	out := make([][][]world.TileKind, cfg.Depth)
	for z, l := range levels {
		out[z] = l
	}
	return out, nil
}

// cellular fills a level at random and smooths it: a wall becomes floor
// with 5-8 floor neighbours, a floor stays floor with 4-8.
func cellular(cfg CaveConfig) level {
	l := newLevel(cfg.Width, cfg.Height, world.TileWall)
	for x := range l {
		for y := range l[x] {
			if cfg.Rand.Float64() < cfg.FillRatio {
				l[x][y] = world.TileFloor
			}
		}
	}
	for i := 0; i < cfg.Iterations; i++ {
		next := newLevel(cfg.Width, cfg.Height, world.TileWall)
		for x := range l {
			for y := range l[x] {
				n := floorNeighbours(l, x, y)
				if n >= 5 || (n == 4 && l[x][y] == world.TileFloor) {
					next[x][y] = world.TileFloor
				}
			}
		}
		l = next
	}
	return l
}

func floorNeighbours(l level, x, y int) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if l.inBounds(x+dx, y+dy) && l[x+dx][y+dy] == world.TileFloor {
				n++
			}
		}
	}
	return n
}

// regions labels orthogonally connected floor areas, largest first.
func regions(l level) [][]point {
	seen := make([][]bool, l.width())
	for x := range seen {
		seen[x] = make([]bool, l.height())
	}
	var out [][]point
	for x := range l {
		for y := range l[x] {
			if seen[x][y] || l[x][y] != world.TileFloor {
				continue
			}
			seen[x][y] = true
			region := []point{{x, y}}
			for i := 0; i < len(region); i++ {
				p := region[i]
				for _, d := range [4]point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
					nx, ny := p.x+d.x, p.y+d.y
					if !l.inBounds(nx, ny) || seen[nx][ny] || l[nx][ny] != world.TileFloor {
						continue
					}
					seen[nx][ny] = true
					region = append(region, point{nx, ny})
				}
			}
			out = append(out, region)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// prune walls over small regions. A level left without floor gets a small
// chamber in the middle.
func prune(l level, cfg CaveConfig) {
	kept := 0
	for _, r := range regions(l) {
		if len(r) >= cfg.MinRegion {
			kept++
			continue
		}
		for _, p := range r {
			l[p.x][p.y] = world.TileWall
		}
	}
	if kept > 0 {
		return
	}
	cx, cy := l.width()/2, l.height()/2
	for x := cx - 1; x <= cx+1; x++ {
		for y := cy - 1; y <= cy+1; y++ {
			l.set(x, y, world.TileFloor)
		}
	}
}

// connect tunnels every region to the largest one.
func connect(l level, rng *rand.Rand) {
	rs := regions(l)
	if len(rs) < 2 {
		return
	}
	largest := rs[0]
	for _, r := range rs[1:] {
		from := r[rng.Intn(len(r))]
		to := largest[rng.Intn(len(largest))]
		carveCorridor(l, from.x, from.y, to.x, to.y, rng)
	}
}

func floors(l level) []point {
	var out []point
	for x := range l {
		for y := range l[x] {
			if l[x][y] == world.TileFloor {
				out = append(out, point{x, y})
			}
		}
	}
	return out
}

// linkStairs places a staircase pair on a cell that is floor on both depths.
// Without overlap, a floor cell of the upper depth is opened below and
// tunnelled into the lower depth's cave.
func linkStairs(upper, lower level, rng *rand.Rand) {
	var shared []point
	for _, p := range floors(upper) {
		if lower[p.x][p.y] == world.TileFloor {
			shared = append(shared, p)
		}
	}
	var at point
	if len(shared) > 0 {
		at = shared[rng.Intn(len(shared))]
	} else {
		ups := floors(upper)
		downs := floors(lower)
		at = ups[rng.Intn(len(ups))]
		to := downs[rng.Intn(len(downs))]
		carveCorridor(lower, at.x, at.y, to.x, to.y, rng)
	}
	upper[at.x][at.y] = world.TileStairsDown
	lower[at.x][at.y] = world.TileStairsUp
}
