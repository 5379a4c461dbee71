package app

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"voxelspace/internal/render"
)

// ScreenshotDir is where the window presenter writes captured frames.
const ScreenshotDir = "screenshots"

// SaveScreenshot encodes the current framebuffer as a timestamped PNG in dir
// and returns the file name.
func SaveScreenshot(fb *render.FrameBuffer, dir string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := fmt.Sprintf("voxelspace_%s.png", time.Now().Format("2006-01-02_15-04-05.000"))
	if dir != "" {
		name = filepath.Join(dir, name)
	}

	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return name, nil
}
