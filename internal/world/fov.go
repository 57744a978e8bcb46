package world

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a map offset via:
//
//	x = cx + dx*xx + dy*xy
//	y = cy + dx*yx + dy*yy
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// FOV is a recursive shadowcasting evaluator for one depth level.
type FOV struct {
	width, height int
	lightPasses   func(x, y int) bool
	seen          []bool
}

// NewFOV creates an evaluator for a width×height level. lightPasses is
// consulted on every compute so dug walls are seen through immediately.
func NewFOV(width, height int, lightPasses func(x, y int) bool) *FOV {
	return &FOV{
		width:       width,
		height:      height,
		lightPasses: lightPasses,
		seen:        make([]bool, width*height),
	}
}

func (f *FOV) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Compute calls visit exactly once for every cell visible from (cx, cy)
// within radius, the origin included.
func (f *FOV) Compute(cx, cy, radius int, visit func(x, y int)) {
	if !f.inBounds(cx, cy) {
		return
	}
	for i := range f.seen {
		f.seen[i] = false
	}
	f.mark(cx, cy, visit)
	for _, m := range octants {
		f.castLight(cx, cy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3], visit)
	}
}

func (f *FOV) mark(x, y int, visit func(x, y int)) {
	i := y*f.width + x
	if f.seen[i] {
		return
	}
	f.seen[i] = true
	visit(x, y)
}

func (f *FOV) opaque(x, y int) bool {
	return !f.inBounds(x, y) || !f.lightPasses(x, y)
}

// castLight lights one octant. j is the row distance from the origin, dx
// sweeps the row from -j to 0, and the slopes bound the unshadowed beam.
func (f *FOV) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visit func(x, y int)) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && f.inBounds(wx, wy) {
				f.mark(wx, wy, visit)
			}

			opaque := f.opaque(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				f.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visit)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
