package terrain

import (
	"context"
	"fmt"
	"time"

	"voxelspace/internal/logger"

	"go.uber.org/zap"
)

// Options selects the map size and its sources. Empty paths select the
// procedural generator.
type Options struct {
	Width     int
	Height    int
	HeightMap string
	ColorMap  string
	Seed      int64
}

// Open builds a fully populated Store. It returns only after both sources
// are complete, so a returned Store is never partially loaded.
func Open(ctx context.Context, opts Options) (*Store, error) {
	store, err := NewStore(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var height, color []byte
	source := "generated"
	if opts.HeightMap == "" && opts.ColorMap == "" {
		height, color = Generate(opts.Width, opts.Height, opts.Seed)
	} else {
		source = opts.ColorMap + "+" + opts.HeightMap
		logger.Info("loading terrain images",
			zap.String("color", opts.ColorMap),
			zap.String("height", opts.HeightMap))
		height, color, err = LoadFiles(ctx, opts.HeightMap, opts.ColorMap, opts.Width, opts.Height)
		if err != nil {
			return nil, fmt.Errorf("loading terrain: %w", err)
		}
	}

	if err := store.Load(height, color); err != nil {
		return nil, fmt.Errorf("loading terrain: %w", err)
	}
	logger.Info("terrain ready",
		zap.String("source", source),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Duration("took", time.Since(start)))
	return store, nil
}
