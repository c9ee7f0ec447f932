// Copyright 2026 YY-Nexus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the navsearch TOML configuration, falling back to
// built-in defaults when no file is present.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

// Config is the full navsearch configuration tree.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Limits LimitsConfig `toml:"limits"`
	Log    LogConfig    `toml:"log"`
}

// StoreConfig locates the persisted state store.
type StoreConfig struct {
	Path     string `toml:"path"`
	InMemory bool   `toml:"in_memory"`
}

// LimitsConfig mirrors core.Limits with TOML tags.
type LimitsConfig struct {
	Recents     int `toml:"recents"`
	Favorites   int `toml:"favorites"`
	History     int `toml:"history"`
	Suggestions int `toml:"suggestions"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	limits := core.DefaultLimits()
	return &Config{
		Store: StoreConfig{
			Path: defaultStorePath(),
		},
		Limits: LimitsConfig{
			Recents:     limits.Recents,
			Favorites:   limits.Favorites,
			History:     limits.History,
			Suggestions: limits.Suggestions,
		},
		Log: LogConfig{Level: "info"},
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "navsearch-state")
	}
	return filepath.Join(home, ".config", "navsearch", "state")
}

// Load reads the configuration at path. An empty path or a missing file
// yields the defaults; a file that exists but fails to parse or validate is
// an error, so a broken config never silently degrades to defaults.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("config file not found, using defaults", "path", path)
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// Validate checks the parsed tree for values the engine cannot work with.
func (c *Config) Validate() error {
	if err := core.ValidateLimits(c.CoreLimits()); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrConfigInvalid, c.Log.Level)
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("%w: store path required for on-disk store", ErrConfigInvalid)
	}
	return nil
}

// CoreLimits converts the TOML limits into the core type.
func (c *Config) CoreLimits() core.Limits {
	return core.Limits{
		Recents:     c.Limits.Recents,
		Favorites:   c.Limits.Favorites,
		History:     c.Limits.History,
		Suggestions: c.Limits.Suggestions,
	}
}

// SlogLevel maps the configured level name onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
