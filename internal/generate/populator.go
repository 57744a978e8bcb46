package generate

import (
	"fmt"
	"math/rand"

	"cavecrawler/internal/factory"
	"cavecrawler/internal/world"
)

// Stocking lists what Populate scatters over a cave.
type Stocking struct {
	EntitiesPerLevel int
	ItemsPerLevel    int
	// Equipment templates placed once each on a random depth.
	Equipment []string
}

// DefaultStocking returns fifteen monsters and fifteen items per depth plus
// one of every weapon and armor.
func DefaultStocking() Stocking {
	return Stocking{
		EntitiesPerLevel: 15,
		ItemsPerLevel:    15,
		Equipment:        []string{"dagger", "sword", "staff", "tunic", "chainmail", "platemail"},
	}
}

// Populate fills every depth of m with randomly created entities and items,
// then drops the equipment on random depths.
func Populate(m *world.Map, f *factory.Factory, s Stocking, rng *rand.Rand) error {
	for z := 0; z < m.Depth(); z++ {
		for i := 0; i < s.EntitiesPerLevel; i++ {
			e, err := f.Entities.CreateRandom(rng)
			if err != nil {
				return err
			}
			if err := m.AddEntityAtRandomPosition(e, z); err != nil {
				return fmt.Errorf("populate depth %d: %w", z, err)
			}
		}
		for i := 0; i < s.ItemsPerLevel; i++ {
			it, err := f.Items.CreateRandom(rng)
			if err != nil {
				return err
			}
			if err := m.AddItemAtRandomPosition(it, z); err != nil {
				return fmt.Errorf("populate depth %d: %w", z, err)
			}
		}
	}
	for _, key := range s.Equipment {
		it, err := f.Items.Create(key, nil)
		if err != nil {
			return err
		}
		if err := m.AddItemAtRandomPosition(it, rng.Intn(m.Depth())); err != nil {
			return fmt.Errorf("place %s: %w", key, err)
		}
	}
	return nil
}

// PlaceHole turns a random free floor cell of depth z into the hole down to
// the boss cavern.
func PlaceHole(m *world.Map, z int) (x, y int, err error) {
	x, y, err = m.RandomFloorPosition(z)
	if err != nil {
		return 0, 0, fmt.Errorf("place hole: %w", err)
	}
	m.SetTile(x, y, z, world.TileHoleToCavern)
	return x, y, nil
}
