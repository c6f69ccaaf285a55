package realonline

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/wowcore/realonline/realonline/commands"
	"github.com/wowcore/realonline/realonline/database"
	"github.com/wowcore/realonline/realonline/rewards"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig               `toml:"log"`
	DB     database.DBConfig       `toml:"db"`
	Online commands.OnlineConfig   `toml:"online"`
	Reward rewards.TickerConfig    `toml:"reward"`
	Level  rewards.MilestoneConfig `toml:"level"`
	Streak rewards.StreakConfig    `toml:"streak"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

// RosterConfig derives the filter settings the ticker shares with the
// online listing.
func (c *Config) RosterConfig() rewards.RosterConfig {
	return rewards.RosterConfig{
		HideGMs:             c.Online.HideGMs,
		MinLevel:            c.Online.MinLevel,
		IgnoreAccountRanges: c.Online.IgnoreAccountRanges,
	}
}
