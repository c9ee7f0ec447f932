package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, core.DefaultLimits(), cfg.CoreLimits())
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Store.InMemory)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("partial file overlays defaults", func(t *testing.T) {
		path := writeConfig(t, `
[limits]
recents = 8
favorites = 5
history = 10
suggestions = 5

[log]
level = "debug"
`)
		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Limits.Recents)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, Default().Store.Path, cfg.Store.Path, "unset sections keep defaults")
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := writeConfig(t, "[[[not toml")
		_, err := Load(path, nil)
		assert.ErrorIs(t, err, ErrConfigInvalid)
	})

	t.Run("zero limit is rejected", func(t *testing.T) {
		path := writeConfig(t, `
[limits]
recents = 0
favorites = 5
history = 10
suggestions = 5
`)
		_, err := Load(path, nil)
		assert.ErrorIs(t, err, ErrConfigInvalid)
	})

	t.Run("unknown log level is rejected", func(t *testing.T) {
		path := writeConfig(t, `
[log]
level = "verbose"
`)
		_, err := Load(path, nil)
		assert.ErrorIs(t, err, ErrConfigInvalid)
	})
}

func TestValidate(t *testing.T) {
	t.Run("on-disk store requires a path", func(t *testing.T) {
		cfg := Default()
		cfg.Store.Path = ""
		assert.ErrorIs(t, cfg.Validate(), ErrConfigInvalid)

		cfg.Store.InMemory = true
		assert.NoError(t, cfg.Validate(), "in-memory store needs no path")
	})
}

func TestSlogLevel(t *testing.T) {
	cfg := Default()
	for name, want := range map[string]string{
		"debug": "DEBUG", "info": "INFO", "warn": "WARN", "error": "ERROR",
	} {
		cfg.Log.Level = name
		assert.Equal(t, want, cfg.SlogLevel().String())
	}
}
