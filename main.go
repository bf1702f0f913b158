package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"skylander/game"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML file overriding the built-in constants")
	flag.Parse()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		cfg, err = game.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("load config", zap.String("path", *configPath), zap.Error(err))
		}
		logger.Info("config loaded", zap.String("path", *configPath))
	}

	g := game.NewGame(cfg, logger.Named("game"))

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Lander")
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("starting simulation",
		zap.Int("tick_rate", cfg.TickRate),
		zap.Float64("gravity", cfg.Gravity),
		zap.Float64("fuel_kg", cfg.FuelMass))

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}

// newLogger builds a JSON logger on stderr so log lines never interleave
// with anything the toolchain prints on stdout.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	return cfg.Build()
}
