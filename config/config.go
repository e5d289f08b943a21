// Package config holds the aquarium's runtime settings and the logger they
// describe.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window     WindowConfig     `toml:"window" yaml:"window"`
	Simulation SimulationConfig `toml:"simulation" yaml:"simulation"`
	Assets     AssetsConfig     `toml:"assets" yaml:"assets"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`
	Debug      DebugConfig      `toml:"debug" yaml:"debug"`
}

type WindowConfig struct {
	Title  string       `toml:"title" yaml:"title"`
	Width  int          `toml:"width" yaml:"width"`
	Height int          `toml:"height" yaml:"height"`
	Insets InsetsConfig `toml:"insets" yaml:"insets"`
}

// InsetsConfig is the margin, in pixels, fish keep from each window edge.
type InsetsConfig struct {
	Top    int `toml:"top" yaml:"top"`
	Left   int `toml:"left" yaml:"left"`
	Bottom int `toml:"bottom" yaml:"bottom"`
	Right  int `toml:"right" yaml:"right"`
}

type SimulationConfig struct {
	Population   int           `toml:"population" yaml:"population"`
	TickInterval time.Duration `toml:"tick_interval" yaml:"tick_interval"`
	MaxSpeed     int           `toml:"max_speed" yaml:"max_speed"` // pixels per tick, per axis
	Seed         uint64        `toml:"seed" yaml:"seed"`           // 0 picks a random seed
}

type AssetsConfig struct {
	Dir           string `toml:"dir" yaml:"dir"`
	Background    string `toml:"background" yaml:"background"` // relative to Dir
	Sprites       string `toml:"sprites" yaml:"sprites"`       // directory relative to Dir
	DecodeWorkers int    `toml:"decode_workers" yaml:"decode_workers"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

type DebugConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Load reads the config file at path on top of the defaults. The decoder is
// chosen by extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load, except that a missing file yields the
// defaults. The returned bool reports whether the file was read.
func LoadOrDefault(path string) (*Config, bool, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Marium Aquarium",
			Width:  800,
			Height: 600,
		},
		Simulation: SimulationConfig{
			Population:   25,
			TickInterval: 100 * time.Millisecond,
			MaxSpeed:     5,
		},
		Assets: AssetsConfig{
			Dir:           ".",
			Background:    "images/background.gif",
			Sprites:       "images/fish",
			DecodeWorkers: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects settings the aquarium cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	w := c.Window
	check(w.Width > 0 && w.Height > 0, "window size %dx%d", w.Width, w.Height)
	in := w.Insets
	check(in.Top >= 0 && in.Left >= 0 && in.Bottom >= 0 && in.Right >= 0, "negative window insets")
	check(in.Left+in.Right < w.Width && in.Top+in.Bottom < w.Height, "insets leave no room inside %dx%d", w.Width, w.Height)

	s := c.Simulation
	check(s.Population >= 0, "population %d", s.Population)
	check(s.TickInterval > 0, "tick_interval %s", s.TickInterval)
	check(s.MaxSpeed >= 0, "max_speed %d", s.MaxSpeed)

	check(c.Assets.Background != "", "assets.background is empty")
	check(c.Assets.Sprites != "", "assets.sprites is empty")
	check(c.Assets.DecodeWorkers > 0, "decode_workers %d", c.Assets.DecodeWorkers)

	switch c.Logging.Format {
	case "json", "console":
	default:
		check(false, "logging.format %q", c.Logging.Format)
	}

	return errors.Join(errs...)
}
