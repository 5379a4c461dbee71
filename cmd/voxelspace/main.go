//go:build ebiten

package main

import (
	"context"
	"errors"
	"log"

	"voxelspace/internal/app"
	"voxelspace/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	cfg, loop, gesture, err := setup(context.Background(), true)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	game := app.New(loop, gesture, cfg.Graphics.MaxWidth, cfg.Graphics.ShowFPS)

	ebiten.SetWindowTitle(cfg.Graphics.Title)
	ebiten.SetWindowSize(cfg.Graphics.Width, cfg.Graphics.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run failed", zap.Error(err))
		log.Fatal(err)
	}
	logger.Info("shutdown")
}
