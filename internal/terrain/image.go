package terrain

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Decode reads an image and returns its pixels as a raw RGBA source of
// exactly w*h texels, resampling when the image has a different size.
func Decode(r io.Reader, w, h int) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return dst.Pix, nil
}

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(path string, w, h int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pix, err := Decode(f, w, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pix, nil
}

// LoadFiles decodes the height and color images concurrently and returns
// only after both have finished. Either failure fails the whole load.
func LoadFiles(ctx context.Context, heightPath, colorPath string, w, h int) (height, color []byte, err error) {
	if heightPath == "" || colorPath == "" {
		return nil, nil, ErrMissingSource
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pix, err := DecodeFile(heightPath, w, h)
		if err != nil {
			return fmt.Errorf("height map: %w", err)
		}
		height = pix
		return ctx.Err()
	})
	g.Go(func() error {
		pix, err := DecodeFile(colorPath, w, h)
		if err != nil {
			return fmt.Errorf("color map: %w", err)
		}
		color = pix
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return height, color, nil
}
