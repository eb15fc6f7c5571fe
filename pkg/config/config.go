// Package config loads daemon configuration from a YAML file with
// environment-variable override (INVENTORY_ prefix).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full daemon configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	// RateLimit is the sustained requests-per-second budget per client.
	RateLimit float64 `mapstructure:"rate_limit"`
}

// DatabaseConfig configures the inventory store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`

	// GuardSupplierDeletes refuses deleting suppliers that books still
	// reference. Off by default to match the loose schema policy.
	GuardSupplierDeletes bool `mapstructure:"guard_supplier_deletes"`

	// DestructiveMigration permits drop-and-recreate recovery of a
	// database with an unknown schema version. Never on by default.
	DestructiveMigration bool `mapstructure:"destructive_migration"`
}

// LogConfig configures logging.
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Load reads the configuration file at path. A missing path loads
// defaults and environment overrides only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("database.path", "inventory.db")
	v.SetDefault("database.guard_supplier_deletes", false)
	v.SetDefault("database.destructive_migration", false)
	v.SetDefault("log.debug", false)

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database.path must not be empty")
	}
	if cfg.Server.Addr == "" {
		return nil, fmt.Errorf("server.addr must not be empty")
	}

	return &cfg, nil
}
