// Package game wires the world together for one player: the Game context
// owns the shared vocabulary (tiles, templates, rules, randomness) and a
// Session drives the screens a player moves through.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"cavecrawler/internal/config"
	"cavecrawler/internal/factory"
	"cavecrawler/internal/generate"
	"cavecrawler/internal/scripting"
	"cavecrawler/internal/system"
	"cavecrawler/internal/world"

	"go.uber.org/zap"
)

// Boss cavern dimensions.
const (
	CavernWidth  = 80
	CavernHeight = 24
)

// Game is the context every map, rule and template of one session hangs
// off. It is not safe for concurrent use; give each session its own.
type Game struct {
	Tiles   *world.TileSet
	Factory *factory.Factory
	Rules   *system.Rules
	Rand    *rand.Rand
	Seed    int64

	cfg    *config.Config
	log    *zap.Logger
	script *scripting.Engine
}

// New builds a game context from cfg. A zero seed picks one from the clock.
func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		Seed: seed,
		Rand: rand.New(rand.NewSource(seed)),
		cfg:  cfg,
		log:  log,
	}
	g.Tiles = world.NewTileSet(g.Rand)
	g.Rules = system.NewRules(g.Rand, log)
	g.Rules.Cavern = g.NewBossCavern

	if path := cfg.Combat.DamageScript; path != "" {
		eng, err := scripting.NewEngine(path, log)
		if err != nil {
			return nil, fmt.Errorf("damage script: %w", err)
		}
		if !eng.HasDamage() {
			eng.Close()
			return nil, fmt.Errorf("damage script %s defines no calc_damage", path)
		}
		g.script = eng
		g.Rules.Damage = eng.DamageFunc(system.BaseDamage)
	}

	f, err := factory.New(g.Rules, log, factory.WithSightRadius(cfg.World.FOVRadius))
	if err != nil {
		g.Close()
		return nil, err
	}
	if !f.Entities.Has(cfg.Player.Template) {
		g.Close()
		return nil, fmt.Errorf("player template %q: %w", cfg.Player.Template, factory.ErrUnknownTemplate)
	}
	g.Factory = f
	log.Debug("game context ready", zap.Int64("seed", seed))
	return g, nil
}

// Close releases the scripting VM, if any.
func (g *Game) Close() {
	if g.script != nil {
		g.script.Close()
		g.script = nil
	}
}

// Config returns the settings the game was built from.
func (g *Game) Config() *config.Config { return g.cfg }

// NewPlayer creates the player from the configured template.
func (g *Game) NewPlayer() (*world.Entity, error) {
	return g.Factory.Entities.Create(g.cfg.Player.Template, nil)
}

// NewCave generates the multi-depth cave, drops player on a random floor
// cell of the top depth, stocks every depth and opens the hole to the boss
// cavern on the bottom one.
func (g *Game) NewCave(player *world.Entity) (*world.Map, error) {
	wc := g.cfg.World
	cc := generate.DefaultCaveConfig(g.Rand)
	cc.Width, cc.Height, cc.Depth = wc.Width, wc.Height, wc.Depth
	grid, err := generate.Cave(cc)
	if err != nil {
		return nil, fmt.Errorf("generate cave: %w", err)
	}
	m, err := world.NewMap(grid, g.Tiles, g.Rand, g.log)
	if err != nil {
		return nil, err
	}
	if player != nil {
		if err := m.AddEntityAtRandomPosition(player, 0); err != nil {
			return nil, fmt.Errorf("place player: %w", err)
		}
	}
	stock := generate.DefaultStocking()
	stock.EntitiesPerLevel = wc.EntitiesPerLevel
	stock.ItemsPerLevel = wc.ItemsPerLevel
	if err := generate.Populate(m, g.Factory, stock, g.Rand); err != nil {
		return nil, err
	}
	x, y, err := generate.PlaceHole(m, m.Depth()-1)
	if err != nil {
		return nil, err
	}
	g.log.Info("cave generated",
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Int("depth", m.Depth()),
		zap.Int("entities", len(m.Entities())),
		zap.Stringer("hole", world.Key{X: x, Y: y, Z: m.Depth() - 1}))
	return m, nil
}

// NewBossCavern builds the final cavern with its giant zombie. The player
// arrives later through SwitchMap, which also starts the engine.
func (g *Game) NewBossCavern() (*world.Map, error) {
	grid, err := generate.BossCavern(CavernWidth, CavernHeight, g.Rand)
	if err != nil {
		return nil, err
	}
	m, err := world.NewMap(grid, g.Tiles, g.Rand, g.log)
	if err != nil {
		return nil, err
	}
	zombie, err := g.Factory.Entities.Create("giant zombie", nil)
	if err != nil {
		return nil, err
	}
	if err := m.AddEntityAtRandomPosition(zombie, 0); err != nil {
		return nil, fmt.Errorf("place giant zombie: %w", err)
	}
	g.log.Info("boss cavern generated", zap.Stringer("zombie", zombie.Key()))
	return m, nil
}
