package main

import (
	"context"
	"flag"
	"fmt"

	"voxelspace/internal/app"
	"voxelspace/internal/config"
	"voxelspace/internal/input"
	"voxelspace/internal/logger"

	"go.uber.org/zap"
)

// setup parses flags, loads configuration, starts logging and builds the
// frame loop. The terrain is fully loaded when it returns.
func setup(ctx context.Context, console bool) (*config.Config, *app.Loop, *input.Gesture, error) {
	var flags config.Flags
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, path, err := config.Load(&flags)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, console); err != nil {
		return nil, nil, nil, fmt.Errorf("init logger: %w", err)
	}
	if path != "" {
		logger.Info("config loaded", zap.String("path", path))
	}
	if saved, err := flags.Export(cfg); err != nil {
		logger.Warn("config not saved", zap.Error(err))
	} else if saved != "" {
		logger.Info("config saved", zap.String("path", saved))
	}

	loop, gesture, err := app.Build(ctx, cfg)
	if err != nil {
		logger.Error("terrain load failed", zap.Error(err))
		return nil, nil, nil, err
	}
	return cfg, loop, gesture, nil
}
