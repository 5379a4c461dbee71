//go:build !ebiten

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"voxelspace/internal/logger"
	"voxelspace/internal/term"
)

// Without the ebiten build tag the renderer draws into the terminal.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, loop, gesture, err := setup(ctx, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	p, err := term.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init failed: %v\n", err)
		fmt.Fprintln(os.Stderr, "For a window, build with `-tags ebiten`.")
		os.Exit(1)
	}

	err = term.Run(ctx, p, loop, gesture, cfg.Graphics.FPSLimit)
	p.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}
