package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/farrowlabs/jumpbox/internal/config"
	"github.com/farrowlabs/jumpbox/internal/game"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a YAML config file (stock settings when empty)")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("loading %s: %v", configPath, err)
		}
		cfg = loaded
	}

	logger, err := buildLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	if configPath != "" {
		logger.Info("config loaded", zap.String("path", configPath))
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatal("setup failed", zap.Error(err))
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
