// Command marium shows an aquarium of fish swimming over a background image.
//
// Usage:
//
//	marium [-config marium.toml] [-seed n] [-debug] [population]
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/marium/aquarium"
	"github.com/plus3/marium/assets"
	"github.com/plus3/marium/config"
	"github.com/plus3/marium/render"
	"go.uber.org/zap"
)

const defaultConfigPath = "marium.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath, "Config file (.toml, .yaml or .yml).")
	seed := flag.Uint64("seed", 0, "Random seed for the initial population; 0 picks one.")
	debug := flag.Bool("debug", false, "Enable the debug overlay (toggle with F1).")
	flag.Parse()

	cfg, fromFile, err := loadConfig(*configPath, flagWasSet("config"))
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *debug {
		cfg.Debug.Enabled = true
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	if fromFile {
		log.Info("config loaded", zap.String("path", *configPath))
	} else {
		log.Info("no config file, using defaults", zap.String("path", *configPath))
	}

	population, err := config.ParsePopulation(flag.Args(), cfg.Simulation.Population)
	if err != nil {
		log.Warn("ignoring population argument", zap.Error(err), zap.Int("population", population))
	}

	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = rand.Uint64()
	}

	pack, err := assets.Load(context.Background(), os.DirFS(cfg.Assets.Dir), assets.Source{
		Background: cfg.Assets.Background,
		Sprites:    cfg.Assets.Sprites,
		Workers:    cfg.Assets.DecodeWorkers,
	})
	if err != nil {
		return fmt.Errorf("load assets from %s: %w", cfg.Assets.Dir, err)
	}
	log.Info("assets loaded",
		zap.String("background", cfg.Assets.Background),
		zap.Int("sprites", len(pack.Sprites)),
	)

	in := cfg.Window.Insets
	sim, err := aquarium.New(aquarium.Options{
		Population: population,
		Interval:   cfg.Simulation.TickInterval,
		MaxSpeed:   cfg.Simulation.MaxSpeed,
		Seed:       cfg.Simulation.Seed,
		Bounds: aquarium.NewBoundary(cfg.Window.Width, cfg.Window.Height, aquarium.Insets{
			Top: in.Top, Left: in.Left, Bottom: in.Bottom, Right: in.Right,
		}),
		Sprites: pack.Sizes(),
		Logger:  log.Named("simulation"),
	})
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}
	log.Info("aquarium ready",
		zap.Int("population", population),
		zap.Uint64("seed", cfg.Simulation.Seed),
		zap.Duration("tick_interval", cfg.Simulation.TickInterval),
	)

	compositor := render.NewCompositor(
		ebiten.NewImageFromImage(pack.Background),
		render.NewImages(pack.Sprites),
	)

	g := newGame(sim, compositor, cfg.Window)
	if cfg.Debug.Enabled {
		g.overlay = newOverlay(sim, cfg.Window)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetScreenClearedEveryFrame(false)
	if g.overlay == nil {
		ebiten.SetTPS(tpsFor(cfg.Simulation.TickInterval))
	}

	// The simulation lives as long as the process.
	go sim.Run(context.Background())

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("window closed")
	return nil
}

// loadConfig reads path. A missing file is only an error when the path was
// given explicitly.
func loadConfig(path string, explicit bool) (*config.Config, bool, error) {
	if explicit {
		cfg, err := config.Load(path)
		return cfg, err == nil, err
	}
	return config.LoadOrDefault(path)
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
