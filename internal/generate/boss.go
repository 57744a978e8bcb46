package generate

import (
	"math/rand"

	"cavecrawler/internal/world"
)

// Lake sizing for the boss cavern.
const (
	minLakes      = 3
	maxLakes      = 6
	maxLakeRadius = 2
)

// BossCavern builds the single-depth final cavern: one round cave with a
// few small lakes of water scattered over it.
func BossCavern(width, height int, rng *rand.Rand) ([][][]world.TileKind, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadSize
	}
	l := newLevel(width, height, world.TileWall)
	radius := (min(width, height) - 2) / 2
	fillCircle(l, width/2, height/2, radius, world.TileFloor)

	lakes := minLakes + rng.Intn(maxLakes-minLakes+1)
	for i := 0; i < lakes; i++ {
		cx := maxLakeRadius + rng.Intn(max(1, width-2*maxLakeRadius))
		cy := maxLakeRadius + rng.Intn(max(1, height-2*maxLakeRadius))
		fillCircle(l, cx, cy, 1+rng.Intn(maxLakeRadius), world.TileWater)
	}
	return [][][]world.TileKind{l}, nil
}

// fillCircle paints a filled midpoint circle. Cells outside the level are
// skipped.
func fillCircle(l level, cx, cy, radius int, k world.TileKind) {
	x, y := radius, 0
	xChange, yChange := 1-2*radius, 0
	radiusError := 0
	for x >= y {
		carveSpan(l, cx-x, cx+x, cy+y, k)
		carveSpan(l, cx-x, cx+x, cy-y, k)
		carveSpan(l, cx-y, cx+y, cy+x, k)
		carveSpan(l, cx-y, cx+y, cy-x, k)
		y++
		radiusError += yChange
		yChange += 2
		if 2*radiusError+xChange > 0 {
			x--
			radiusError += xChange
			xChange += 2
		}
	}
}

func carveSpan(l level, x1, x2, y int, k world.TileKind) {
	for x := x1; x <= x2; x++ {
		l.set(x, y, k)
	}
}
