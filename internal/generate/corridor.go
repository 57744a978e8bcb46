package generate

import (
	"math/rand"

	"cavecrawler/internal/world"
)

// level is one depth of tiles indexed [x][y].
type level [][]world.TileKind

func newLevel(w, h int, fill world.TileKind) level {
	l := make(level, w)
	for x := range l {
		l[x] = make([]world.TileKind, h)
		for y := range l[x] {
			l[x][y] = fill
		}
	}
	return l
}

func (l level) width() int  { return len(l) }
func (l level) height() int { return len(l[0]) }

func (l level) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width() && y < l.height()
}

func (l level) set(x, y int, k world.TileKind) {
	if l.inBounds(x, y) {
		l[x][y] = k
	}
}

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2),
// choosing at random whether the horizontal leg comes first.
func carveCorridor(l level, x1, y1, x2, y2 int, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		carveH(l, x1, x2, y1)
		carveV(l, y1, y2, x2)
	} else {
		carveV(l, y1, y2, x1)
		carveH(l, x1, x2, y2)
	}
}

func carveH(l level, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		l.set(x, y, world.TileFloor)
	}
}

func carveV(l level, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		l.set(x, y, world.TileFloor)
	}
}
