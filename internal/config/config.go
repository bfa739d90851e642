// Package config loads settings from an optional JSON file, SETTLERS_
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "settlers.cfg.json"

// Config is the resolved configuration.
type Config struct {
	LogLevel string     `json:"logLevel" mapstructure:"logLevel"`
	DB       DBConfig   `json:"db" mapstructure:"db"`
	Game     GameConfig `json:"game" mapstructure:"game"`
}

// DBConfig holds SQLite settings.
type DBConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// GameConfig holds the rules a new game starts with.
type GameConfig struct {
	Map           string `json:"map" mapstructure:"map"`
	Players       int    `json:"players" mapstructure:"players"`
	LongestRoad   string `json:"longestRoad" mapstructure:"longestRoad"`
	VictoryPoints int    `json:"victoryPoints" mapstructure:"victoryPoints"`
	Seed          int64  `json:"seed" mapstructure:"seed"`
}

// SetDefaults registers default values.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("db.path", "./data/settlers.db")

	viper.SetDefault("game.map", "standard")
	viper.SetDefault("game.players", 4)
	viper.SetDefault("game.longestRoad", "exhaustive")
	viper.SetDefault("game.victoryPoints", 10)
	viper.SetDefault("game.seed", 0)
}

// Load reads configuration from configDir. A missing file is not an error;
// defaults and environment variables still apply.
func Load(configDir string) (*Config, error) {
	SetDefaults()

	viper.SetEnvPrefix("SETTLERS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Game.Players < 2 || c.Game.Players > 4 {
		return fmt.Errorf("game.players must be between 2 and 4, got %d", c.Game.Players)
	}
	if c.Game.VictoryPoints <= 0 {
		return fmt.Errorf("game.victoryPoints must be positive, got %d", c.Game.VictoryPoints)
	}
	switch c.Game.LongestRoad {
	case "greedy", "exhaustive":
	default:
		return fmt.Errorf("game.longestRoad must be greedy or exhaustive, got %q", c.Game.LongestRoad)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}
