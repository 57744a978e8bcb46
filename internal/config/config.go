// Package config loads the TOML game and server settings.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "CAVECRAWLER_CONFIG"

type Config struct {
	World   WorldConfig   `toml:"world"`
	Player  PlayerConfig  `toml:"player"`
	Combat  CombatConfig  `toml:"combat"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	Width            int   `toml:"width"`
	Height           int   `toml:"height"`
	Depth            int   `toml:"depth"`
	Seed             int64 `toml:"seed"` // 0 = time based
	EntitiesPerLevel int   `toml:"entities_per_level"`
	ItemsPerLevel    int   `toml:"items_per_level"`
	FOVRadius        int   `toml:"fov_radius"` // default Sight radius
}

type PlayerConfig struct {
	Template string `toml:"template"`
}

type CombatConfig struct {
	DamageScript string `toml:"damage_script"` // empty = built-in formula
}

type ServerConfig struct {
	HTTPAddr string `toml:"http_addr"`
	SSHAddr  string `toml:"ssh_addr"`
	HostKey  string `toml:"host_key"` // PEM path; empty = ephemeral key
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads the file named by CAVECRAWLER_CONFIG, or fallback when the
// variable is unset. An empty path yields the defaults.
func LoadEnv(fallback string) (*Config, error) {
	path := fallback
	if p := os.Getenv(EnvPath); p != "" {
		path = p
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:            100,
			Height:           48,
			Depth:            6,
			EntitiesPerLevel: 15,
			ItemsPerLevel:    15,
			FOVRadius:        5,
		},
		Player: PlayerConfig{
			Template: "player",
		},
		Server: ServerConfig{
			HTTPAddr: ":8080",
			SSHAddr:  ":2222",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings no map can be built from.
func (c *Config) Validate() error {
	w := c.World
	switch {
	case w.Width < 3 || w.Height < 3:
		return fmt.Errorf("world size %dx%d too small", w.Width, w.Height)
	case w.Depth < 1:
		return fmt.Errorf("world depth %d must be at least 1", w.Depth)
	case w.EntitiesPerLevel < 0 || w.ItemsPerLevel < 0:
		return fmt.Errorf("negative per-level counts")
	case c.Player.Template == "":
		return fmt.Errorf("player template is empty")
	}
	return nil
}
