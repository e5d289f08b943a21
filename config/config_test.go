package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/marium/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()

	assert.Equal(t, "Marium Aquarium", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 25, cfg.Simulation.Population)
	assert.Equal(t, 100*time.Millisecond, cfg.Simulation.TickInterval)
	assert.Equal(t, "images/background.gif", cfg.Assets.Background)
	assert.Equal(t, "images/fish", cfg.Assets.Sprites)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "marium.toml", `
[window]
title = "Reef"
width = 1024

[window.insets]
top = 20

[simulation]
population = 40
tick_interval = "50ms"
seed = 7

[logging]
level = "debug"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Reef", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, 20, cfg.Window.Insets.Top)
	assert.Equal(t, 40, cfg.Simulation.Population)
	assert.Equal(t, 50*time.Millisecond, cfg.Simulation.TickInterval)
	assert.Equal(t, uint64(7), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "marium.yaml", `
simulation:
  population: 3
  tick_interval: 250ms
  max_speed: 2
assets:
  dir: /srv/marium
debug:
  enabled: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Simulation.Population)
	assert.Equal(t, 250*time.Millisecond, cfg.Simulation.TickInterval)
	assert.Equal(t, 2, cfg.Simulation.MaxSpeed)
	assert.Equal(t, "/srv/marium", cfg.Assets.Dir)
	assert.True(t, cfg.Debug.Enabled)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "marium.ini", "x=1"))
		assert.ErrorContains(t, err, "unsupported format")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "marium.toml", "[window\n"))
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := config.Load(writeFile(t, "marium.toml", "[window]\nwidth = 0\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestLoadOrDefault(t *testing.T) {
	cfg, found, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "marium.toml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, config.Defaults(), cfg)

	path := writeFile(t, "marium.toml", "[simulation]\npopulation = 9\n")
	cfg, found, err = config.LoadOrDefault(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 9, cfg.Simulation.Population)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero height", func(c *config.Config) { c.Window.Height = 0 }},
		{"negative inset", func(c *config.Config) { c.Window.Insets.Left = -1 }},
		{"insets swallow window", func(c *config.Config) { c.Window.Insets.Left, c.Window.Insets.Right = 400, 400 }},
		{"negative population", func(c *config.Config) { c.Simulation.Population = -1 }},
		{"zero interval", func(c *config.Config) { c.Simulation.TickInterval = 0 }},
		{"negative speed", func(c *config.Config) { c.Simulation.MaxSpeed = -3 }},
		{"no sprites dir", func(c *config.Config) { c.Assets.Sprites = "" }},
		{"no workers", func(c *config.Config) { c.Assets.DecodeWorkers = 0 }},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Defaults()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}

	t.Run("zero population is allowed", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Simulation.Population = 0
		assert.NoError(t, cfg.Validate())
	})
}

func TestParsePopulation(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{nil, 25, false},
		{[]string{"12"}, 12, false},
		{[]string{"12", "extra"}, 12, false},
		{[]string{"0"}, 25, true},
		{[]string{"-4"}, 25, true},
		{[]string{"lots"}, 25, true},
		{[]string{""}, 25, true},
	}

	for _, tt := range tests {
		got, err := config.ParsePopulation(tt.args, 25)
		assert.Equal(t, tt.want, got, "args %q", tt.args)
		if tt.wantErr {
			assert.ErrorIs(t, err, config.ErrInvalidPopulation, "args %q", tt.args)
		} else {
			assert.NoError(t, err, "args %q", tt.args)
		}
	}
}

func TestNewLogger(t *testing.T) {
	log, err := config.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = config.NewLogger(config.LoggingConfig{Level: "loud", Format: "console"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
