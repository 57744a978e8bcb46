package world

import (
	"math/rand"

	"cavecrawler/internal/glyph"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileNull TileKind = iota
	TileFloor
	TileWall
	TileStairsUp
	TileStairsDown
	TileHoleToCavern
	TileWater
)

// Tile describes one static map cell. Tiles are shared: every cell of a kind
// points at the same instance, so a Tile is never mutated after creation.
type Tile struct {
	glyph.Glyph
	kind        TileKind
	walkable    bool
	diggable    bool
	blocksLight bool
	description string
}

// Kind returns the tile kind.
func (t *Tile) Kind() TileKind { return t.kind }

// Walkable reports whether entities may stand on the tile.
func (t *Tile) Walkable() bool { return t.walkable }

// Diggable reports whether the tile can be dug into floor.
func (t *Tile) Diggable() bool { return t.diggable }

// BlocksLight reports whether the tile stops field of view.
func (t *Tile) BlocksLight() bool { return t.blocksLight }

// Description returns the flavor text for the tile.
func (t *Tile) Description() string { return t.description }

// TileSet owns one instance of every tile kind. A session creates one set and
// threads it through every map it builds.
type TileSet struct {
	Null       *Tile
	Floor      *Tile
	Wall       *Tile
	StairsUp   *Tile
	StairsDown *Tile
	Hole       *Tile
	Water      *Tile
}

// NewTileSet builds the tile vocabulary. rng drives the per-read wall color
// variation; pass nil for a fixed goldenrod wall.
func NewTileSet(rng *rand.Rand) *TileSet {
	wallPaint := glyph.Fixed(tcell.ColorGoldenrod)
	if rng != nil {
		wallPaint = variedPaint(rng, colorful.Hsv(43, 0.85, 0.85))
	}
	return &TileSet{
		Null: &Tile{
			Glyph:       glyph.New(' ', nil, nil),
			kind:        TileNull,
			blocksLight: true,
		},
		Floor: &Tile{
			Glyph:       glyph.New('.', nil, nil),
			kind:        TileFloor,
			walkable:    true,
			description: "A cave floor",
		},
		Wall: &Tile{
			Glyph:       glyph.New('#', wallPaint, nil),
			kind:        TileWall,
			diggable:    true,
			blocksLight: true,
			description: "A cave wall",
		},
		StairsUp: &Tile{
			Glyph:       glyph.New('<', glyph.Fixed(tcell.ColorWhite), nil),
			kind:        TileStairsUp,
			walkable:    true,
			description: "A rock staircase leading upwards",
		},
		StairsDown: &Tile{
			Glyph:       glyph.New('>', glyph.Fixed(tcell.ColorWhite), nil),
			kind:        TileStairsDown,
			walkable:    true,
			description: "A rock staircase leading downwards",
		},
		Hole: &Tile{
			Glyph:       glyph.New('O', glyph.Fixed(tcell.ColorWhite), nil),
			kind:        TileHoleToCavern,
			walkable:    true,
			description: "A great dark hole in the ground",
		},
		Water: &Tile{
			Glyph:       glyph.New('~', glyph.Fixed(tcell.ColorBlue), nil),
			kind:        TileWater,
			description: "Murky blue water",
		},
	}
}

// ByKind returns the shared tile for k; unknown kinds map to the null tile.
func (ts *TileSet) ByKind(k TileKind) *Tile {
	switch k {
	case TileFloor:
		return ts.Floor
	case TileWall:
		return ts.Wall
	case TileStairsUp:
		return ts.StairsUp
	case TileStairsDown:
		return ts.StairsDown
	case TileHoleToCavern:
		return ts.Hole
	case TileWater:
		return ts.Water
	}
	return ts.Null
}

// variedPaint jitters base in HCL space on every read.
func variedPaint(rng *rand.Rand, base colorful.Color) glyph.Paint {
	return func() tcell.Color {
		h, c, l := base.Hcl()
		h += (rng.Float64() - 0.5) * 12
		l += (rng.Float64() - 0.5) * 0.1
		r, g, b := colorful.Hcl(h, c, l).Clamped().RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
}
