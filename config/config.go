// Package config holds the settings shared by every objmesh command.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is decoded from viper, which merges defaults, the config file,
// OBJMESH_* environment variables and command line flags.
type Config struct {
	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
	Profile  string `mapstructure:"profile"`
}

const (
	ProfileCPU = "cpu"
	ProfileMem = "mem"
)

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "warn")
	v.SetDefault("log-file", "")
	v.SetDefault("profile", "")
}

// FromViper decodes and validates the settings held by v
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	switch cfg.Profile {
	case "", ProfileCPU, ProfileMem:
	default:
		return nil, fmt.Errorf("unknown profile mode %q, want %q or %q",
			cfg.Profile, ProfileCPU, ProfileMem)
	}
	return cfg, nil
}
