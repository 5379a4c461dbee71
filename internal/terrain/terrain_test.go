package terrain

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// rawSources builds RGBA sources where texel i has height i and color
// channels (i, i+1, i+2).
func rawSources(w, h int) (height, col []byte) {
	height = make([]byte, w*h*BytesPerTexel)
	col = make([]byte, w*h*BytesPerTexel)
	for i := 0; i < w*h; i++ {
		base := i * BytesPerTexel
		height[base] = uint8(i)
		col[base+0] = uint8(i)
		col[base+1] = uint8(i + 1)
		col[base+2] = uint8(i + 2)
		col[base+3] = 0x7F
	}
	return height, col
}

func loadedStore(t *testing.T, w, h int) *Store {
	t.Helper()
	s, err := NewStore(w, h)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	hs, cs := rawSources(w, h)
	if err := s.Load(hs, cs); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestLoadPacksColor(t *testing.T) {
	s := loadedStore(t, 4, 3)
	// texel (1,2) is index 9: R=9, G=10, B=11, alpha forced opaque
	if got, want := s.SampleColor(1, 2), uint32(0xFF0B0A09); got != want {
		t.Fatalf("SampleColor(1,2) = %#08x, want %#08x", got, want)
	}
	if got := s.SampleHeight(1, 2); got != 9 {
		t.Fatalf("SampleHeight(1,2) = %d, want 9", got)
	}
}

func TestSampleWraparound(t *testing.T) {
	const w, h = 5, 3
	s := loadedStore(t, w, h)
	for y := -h; y < 2*h; y++ {
		for x := -w; x < 2*w; x++ {
			for k := -3; k <= 3; k++ {
				if s.SampleHeight(x, y) != s.SampleHeight(x+k*w, y) {
					t.Fatalf("height not periodic in x at (%d,%d) k=%d", x, y, k)
				}
				if s.SampleHeight(x, y) != s.SampleHeight(x, y+k*h) {
					t.Fatalf("height not periodic in y at (%d,%d) k=%d", x, y, k)
				}
				if s.SampleColor(x, y) != s.SampleColor(x+k*w, y+k*h) {
					t.Fatalf("color not periodic at (%d,%d) k=%d", x, y, k)
				}
			}
		}
	}
}

func TestSampleNegative(t *testing.T) {
	const w, h = 5, 3
	s := loadedStore(t, w, h)
	if s.SampleHeight(-1, -1) != s.SampleHeight(w-1, h-1) {
		t.Fatal("(-1,-1) must sample the last texel")
	}
	if s.SampleColor(-1, -1) != s.SampleColor(w-1, h-1) {
		t.Fatal("(-1,-1) must sample the last color")
	}
}

func TestLoadErrors(t *testing.T) {
	s, err := NewStore(2, 2)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	hs, cs := rawSources(2, 2)

	tests := []struct {
		name   string
		height []byte
		color  []byte
		want   error
	}{
		{"missing height", nil, cs, ErrMissingSource},
		{"missing color", hs, nil, ErrMissingSource},
		{"length mismatch", hs, cs[:8], ErrSourceMismatch},
		{"wrong size", hs[:8], cs[:8], ErrDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Load(tt.height, tt.color); !errors.Is(err, tt.want) {
				t.Fatalf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFailedLoadKeepsContents(t *testing.T) {
	s := loadedStore(t, 2, 2)
	before := s.SampleColor(1, 1)
	if err := s.Load(make([]byte, 4), make([]byte, 4)); err == nil {
		t.Fatal("expected error")
	}
	if s.SampleColor(1, 1) != before {
		t.Fatal("failed load modified the store")
	}
}

func TestNewStoreRejectsEmpty(t *testing.T) {
	if _, err := NewStore(0, 4); !errors.Is(err, ErrDimensions) {
		t.Fatalf("expected ErrDimensions, got %v", err)
	}
}

func writePNG(t *testing.T, path string, w, h int, fill color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDecodeResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.png")
	writePNG(t, path, 2, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	pix, err := DecodeFile(path, 8, 4)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if len(pix) != 8*4*BytesPerTexel {
		t.Fatalf("got %d bytes, want %d", len(pix), 8*4*BytesPerTexel)
	}
	for i, want := range []byte{10, 20, 30} {
		if d := int(pix[i]) - int(want); d < -1 || d > 1 {
			t.Fatalf("channel %d = %d, want %d", i, pix[i], want)
		}
	}
}

func TestOpenFromFiles(t *testing.T) {
	dir := t.TempDir()
	hp := filepath.Join(dir, "d.png")
	cp := filepath.Join(dir, "c.png")
	writePNG(t, hp, 4, 4, color.RGBA{R: 42, G: 0, B: 0, A: 255})
	writePNG(t, cp, 4, 4, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	s, err := Open(context.Background(), Options{Width: 4, Height: 4, HeightMap: hp, ColorMap: cp})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := s.SampleHeight(3, 3); got != 42 {
		t.Fatalf("height = %d, want 42", got)
	}
	if got := s.SampleColor(0, 0); got != 0xFF030201 {
		t.Fatalf("color = %#08x, want 0xff030201", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	cp := filepath.Join(t.TempDir(), "c.png")
	writePNG(t, cp, 4, 4, color.RGBA{A: 255})
	_, err := Open(context.Background(), Options{Width: 4, Height: 4, HeightMap: "/nonexistent/d.png", ColorMap: cp})
	if err == nil {
		t.Fatal("expected load error")
	}
}

func TestLoadFilesRequiresBoth(t *testing.T) {
	if _, _, err := LoadFiles(context.Background(), "", "c.png", 4, 4); !errors.Is(err, ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	h1, c1 := Generate(32, 16, 5)
	h2, c2 := Generate(32, 16, 5)
	if !bytes.Equal(h1, h2) || !bytes.Equal(c1, c2) {
		t.Fatal("Generate is not deterministic for a fixed seed")
	}
	if len(h1) != 32*16*BytesPerTexel || len(c1) != len(h1) {
		t.Fatalf("unexpected source lengths %d, %d", len(h1), len(c1))
	}

	s, err := Open(context.Background(), Options{Width: 32, Height: 16, Seed: 5})
	if err != nil {
		t.Fatalf("Open generated: %v", err)
	}
	if s.Size().W != 32 || s.Size().H != 16 {
		t.Fatalf("unexpected size %+v", s.Size())
	}
}

func TestFractalNoiseTiles(t *testing.T) {
	sizes := []struct{ w, h int }{{64, 64}, {100, 100}, {96, 72}}
	for _, sz := range sizes {
		w, h := sz.w, sz.h
		v := fractalNoise(w, h, 7)

		var inner, seam float64
		for y := 0; y < h; y++ {
			for x := 0; x+1 < w; x++ {
				inner = math.Max(inner, math.Abs(v[y*w+x+1]-v[y*w+x]))
			}
			seam = math.Max(seam, math.Abs(v[y*w]-v[y*w+w-1]))
		}
		for x := 0; x < w; x++ {
			for y := 0; y+1 < h; y++ {
				inner = math.Max(inner, math.Abs(v[(y+1)*w+x]-v[y*w+x]))
			}
			seam = math.Max(seam, math.Abs(v[x]-v[(h-1)*w+x]))
		}

		if seam > inner*1.25 {
			t.Errorf("%dx%d: seam step %.4f exceeds interior step %.4f", w, h, seam, inner)
		}
	}
}
