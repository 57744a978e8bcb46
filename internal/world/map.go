package world

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"cavecrawler/internal/turn"

	"go.uber.org/zap"
)

var (
	// ErrOutOfBounds is returned when an entity is placed outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrOccupied is returned when an entity is placed onto another entity.
	ErrOccupied = errors.New("position occupied")
	// ErrNoFloor is returned when a depth has no free floor cell left.
	ErrNoFloor = errors.New("no free floor position")
)

// Key is a packed map coordinate.
type Key struct {
	X, Y, Z int
}

func (k Key) String() string { return fmt.Sprintf("%d,%d,%d", k.X, k.Y, k.Z) }

// Map is a multi-depth tile grid plus the authoritative position indexes of
// the entities and items on it. Each map owns its own turn engine.
type Map struct {
	width, height, depth int

	tiles    *TileSet
	grid     [][][]*Tile // [z][x][y]
	explored [][][]bool
	fov      []*FOV

	entities map[Key]*Entity
	items    map[Key][]*Item
	player   *Entity

	scheduler *turn.Scheduler
	engine    *turn.Engine
	rng       *rand.Rand
	log       *zap.Logger
}

// NewMap builds a map from a [z][x][y] grid of tile kinds. Every depth must
// share the dimensions of grid[0].
func NewMap(grid [][][]TileKind, ts *TileSet, rng *rand.Rand, log *zap.Logger) (*Map, error) {
	if len(grid) == 0 || len(grid[0]) == 0 || len(grid[0][0]) == 0 {
		return nil, errors.New("new map: empty grid")
	}
	if log == nil {
		log = zap.NewNop()
	}
	m := &Map{
		depth:    len(grid),
		width:    len(grid[0]),
		height:   len(grid[0][0]),
		tiles:    ts,
		entities: make(map[Key]*Entity),
		items:    make(map[Key][]*Item),
		rng:      rng,
		log:      log,
	}
	m.grid = make([][][]*Tile, m.depth)
	m.explored = make([][][]bool, m.depth)
	m.fov = make([]*FOV, m.depth)
	for z := range grid {
		if len(grid[z]) != m.width {
			return nil, fmt.Errorf("new map: depth %d has width %d, want %d", z, len(grid[z]), m.width)
		}
		m.grid[z] = make([][]*Tile, m.width)
		m.explored[z] = make([][]bool, m.width)
		for x := range grid[z] {
			if len(grid[z][x]) != m.height {
				return nil, fmt.Errorf("new map: column %d,%d has height %d, want %d", x, z, len(grid[z][x]), m.height)
			}
			m.grid[z][x] = make([]*Tile, m.height)
			m.explored[z][x] = make([]bool, m.height)
			for y, k := range grid[z][x] {
				m.grid[z][x][y] = ts.ByKind(k)
			}
		}
		depth := z
		m.fov[z] = NewFOV(m.width, m.height, func(x, y int) bool {
			return !m.Tile(x, y, depth).BlocksLight()
		})
	}
	m.scheduler = turn.NewScheduler()
	m.engine = turn.NewEngine(m.scheduler, log)
	return m, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }
func (m *Map) Depth() int  { return m.depth }

// TileSet returns the tile vocabulary the map was built from.
func (m *Map) TileSet() *TileSet { return m.tiles }

// Engine returns the map's turn engine.
func (m *Map) Engine() *turn.Engine { return m.engine }

// Scheduler returns the queue feeding the map's engine.
func (m *Map) Scheduler() *turn.Scheduler { return m.scheduler }

// Player returns the player entity on this map, or nil.
func (m *Map) Player() *Entity { return m.player }

// Rand returns the map's random source.
func (m *Map) Rand() *rand.Rand { return m.rng }

// InBounds reports whether the coordinate lies inside the grid.
func (m *Map) InBounds(x, y, z int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height && z >= 0 && z < m.depth
}

// Tile returns the tile at the coordinate, or the null tile out of bounds.
func (m *Map) Tile(x, y, z int) *Tile {
	if !m.InBounds(x, y, z) {
		return m.tiles.Null
	}
	return m.grid[z][x][y]
}

// SetTile replaces the tile at the coordinate. Out-of-bounds is ignored.
func (m *Map) SetTile(x, y, z int, k TileKind) {
	if m.InBounds(x, y, z) {
		m.grid[z][x][y] = m.tiles.ByKind(k)
	}
}

// Dig turns a diggable tile into floor.
func (m *Map) Dig(x, y, z int) {
	if m.Tile(x, y, z).Diggable() {
		m.grid[z][x][y] = m.tiles.Floor
	}
}

// IsEmptyFloor reports whether the cell is floor with no entity on it.
func (m *Map) IsEmptyFloor(x, y, z int) bool {
	return m.Tile(x, y, z).Kind() == TileFloor && m.EntityAt(x, y, z) == nil
}

// RandomFloorPosition samples for a free floor cell on depth z. After
// width*height*4 misses it scans the level, returning ErrNoFloor if the
// level is full.
func (m *Map) RandomFloorPosition(z int) (x, y int, err error) {
	if z < 0 || z >= m.depth {
		return 0, 0, fmt.Errorf("random floor at depth %d: %w", z, ErrOutOfBounds)
	}
	for i := 0; i < m.width*m.height*4; i++ {
		x, y = m.rng.Intn(m.width), m.rng.Intn(m.height)
		if m.IsEmptyFloor(x, y, z) {
			return x, y, nil
		}
	}
	var free []Key
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if m.IsEmptyFloor(x, y, z) {
				free = append(free, Key{x, y, z})
			}
		}
	}
	if len(free) == 0 {
		return 0, 0, fmt.Errorf("random floor at depth %d: %w", z, ErrNoFloor)
	}
	k := free[m.rng.Intn(len(free))]
	return k.X, k.Y, nil
}

// EntityAt returns the entity at the coordinate, or nil.
func (m *Map) EntityAt(x, y, z int) *Entity {
	return m.entities[Key{x, y, z}]
}

// Entities returns every entity on the map ordered by depth, row, column.
func (m *Map) Entities() []*Entity {
	out := make([]*Entity, 0, len(m.entities))
	for _, e := range m.entities {
		out = append(out, e)
	}
	sortEntities(out)
	return out
}

func sortEntities(es []*Entity) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i], es[j]
		if a.z != b.z {
			return a.z < b.z
		}
		if a.y != b.y {
			return a.y < b.y
		}
		return a.x < b.x
	})
}

// AddEntity places e at its cached coordinates and enrolls Actors in the
// scheduler.
func (m *Map) AddEntity(e *Entity) error {
	k := e.Key()
	if !m.InBounds(k.X, k.Y, k.Z) {
		m.log.Error("add entity out of bounds", zap.String("entity", e.Name()), zap.Stringer("pos", k))
		return fmt.Errorf("add %s at %s: %w", e.Name(), k, ErrOutOfBounds)
	}
	if other, ok := m.entities[k]; ok && other != e {
		m.log.Error("add entity onto occupied cell", zap.String("entity", e.Name()),
			zap.String("occupant", other.Name()), zap.Stringer("pos", k))
		return fmt.Errorf("add %s at %s: %w", e.Name(), k, ErrOccupied)
	}
	e.gmap = m
	m.entities[k] = e
	if e.HasMixin(GroupActor) {
		m.scheduler.Add(e, true)
	}
	if e.IsPlayer() {
		m.player = e
	}
	return nil
}

// AddEntityAtRandomPosition places e on a random free floor cell of depth z.
func (m *Map) AddEntityAtRandomPosition(e *Entity, z int) error {
	x, y, err := m.RandomFloorPosition(z)
	if err != nil {
		return err
	}
	e.x, e.y, e.z = x, y, z
	return m.AddEntity(e)
}

// RemoveEntity drops e from the index and evicts it from the scheduler.
func (m *Map) RemoveEntity(e *Entity) {
	k := e.Key()
	if m.entities[k] == e {
		delete(m.entities, k)
	}
	if e.HasMixin(GroupActor) {
		m.scheduler.Remove(e)
	}
	if m.player == e {
		m.player = nil
	}
	if e.gmap == m {
		e.gmap = nil
	}
}

// UpdateEntityPosition moves e's index entry from the old coordinate to its
// current cached coordinate. The destination is validated before anything
// changes; moving onto the key e already holds is allowed.
func (m *Map) UpdateEntityPosition(e *Entity, oldX, oldY, oldZ int) error {
	k := e.Key()
	if !m.InBounds(k.X, k.Y, k.Z) {
		m.log.Error("entity moved out of bounds", zap.String("entity", e.Name()), zap.Stringer("pos", k))
		return fmt.Errorf("move %s to %s: %w", e.Name(), k, ErrOutOfBounds)
	}
	if other, ok := m.entities[k]; ok && other != e {
		m.log.Error("entity moved onto occupied cell", zap.String("entity", e.Name()),
			zap.String("occupant", other.Name()), zap.Stringer("pos", k))
		return fmt.Errorf("move %s to %s: %w", e.Name(), k, ErrOccupied)
	}
	old := Key{oldX, oldY, oldZ}
	if m.entities[old] == e {
		delete(m.entities, old)
	}
	m.entities[k] = e
	return nil
}

// EntitiesWithinRadius returns the entities on depth z inside the square
// |dx|,|dy| <= radius around (cx, cy).
func (m *Map) EntitiesWithinRadius(cx, cy, z, radius int) []*Entity {
	var out []*Entity
	for k, e := range m.entities {
		if k.Z != z {
			continue
		}
		if k.X >= cx-radius && k.X <= cx+radius && k.Y >= cy-radius && k.Y <= cy+radius {
			out = append(out, e)
		}
	}
	sortEntities(out)
	return out
}

// ItemsAt returns the item stack at the coordinate, or nil when empty.
func (m *Map) ItemsAt(x, y, z int) []*Item {
	return m.items[Key{x, y, z}]
}

// SetItemsAt replaces the stack at the coordinate. An empty list removes it.
func (m *Map) SetItemsAt(x, y, z int, items []*Item) {
	k := Key{x, y, z}
	if len(items) == 0 {
		delete(m.items, k)
		return
	}
	m.items[k] = items
}

// AddItem pushes item on top of the stack at the coordinate.
func (m *Map) AddItem(x, y, z int, item *Item) {
	k := Key{x, y, z}
	m.items[k] = append(m.items[k], item)
}

// AddItemAtRandomPosition drops item on a random free floor cell of depth z.
func (m *Map) AddItemAtRandomPosition(item *Item, z int) error {
	x, y, err := m.RandomFloorPosition(z)
	if err != nil {
		return err
	}
	m.AddItem(x, y, z, item)
	return nil
}

// ComputeFOV runs the depth's evaluator from (cx, cy).
func (m *Map) ComputeFOV(cx, cy, z, radius int, visit func(x, y int)) {
	if z < 0 || z >= m.depth {
		return
	}
	m.fov[z].Compute(cx, cy, radius, visit)
}

// SetExplored records whether a cell has been seen. Cells outside the grid
// or on the null tile are never marked.
func (m *Map) SetExplored(x, y, z int, state bool) {
	if m.Tile(x, y, z).Kind() != TileNull {
		m.explored[z][x][y] = state
	}
}

// IsExplored reports whether the cell has been seen.
func (m *Map) IsExplored(x, y, z int) bool {
	if m.Tile(x, y, z).Kind() == TileNull {
		return false
	}
	return m.explored[z][x][y]
}
