// Package terrain holds the heightmap and colormap the renderer samples.
package terrain

import (
	"errors"
	"fmt"

	"voxelspace/internal/core"
)

var (
	// ErrMissingSource is returned when a height or color source is absent.
	ErrMissingSource = errors.New("terrain: missing source")
	// ErrSourceMismatch is returned when the two sources differ in length.
	ErrSourceMismatch = errors.New("terrain: height and color sources differ in length")
	// ErrDimensions is returned when a source does not match the map size.
	ErrDimensions = errors.New("terrain: source does not match map dimensions")
)

// BytesPerTexel is the stride of a raw RGBA source.
const BytesPerTexel = 4

// Store owns the heightmap and the packed colormap. Both grids share the
// same dimensions and wrap toroidally on every read.
type Store struct {
	size    core.Size
	heights *core.Grid[uint8]
	colors  *core.Grid[uint32]
}

// NewStore allocates an empty (flat, black) map of the given size.
func NewStore(w, h int) (*Store, error) {
	size := core.Size{W: w, H: h}
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, w, h)
	}
	return &Store{
		size:    size,
		heights: core.NewGrid[uint8](w, h),
		colors:  core.NewGrid[uint32](w, h),
	}, nil
}

// Size returns the map dimensions.
func (s *Store) Size() core.Size { return s.size }

// SampleHeight returns the elevation at (x, y), wrapping both axes.
func (s *Store) SampleHeight(x, y int) uint8 { return s.heights.At(x, y) }

// SampleColor returns the packed color at (x, y), wrapping both axes.
func (s *Store) SampleColor(x, y int) uint32 { return s.colors.At(x, y) }

// Load replaces the map contents from two raw RGBA sources of w*h texels.
// The height is taken from the first channel of each height texel; the
// color texel is packed as 0xFF<<24 | B<<16 | G<<8 | R. Nothing is modified
// unless both sources validate.
func (s *Store) Load(height, color []byte) error {
	if height == nil || color == nil {
		return ErrMissingSource
	}
	if len(height) != len(color) {
		return fmt.Errorf("%w: %d vs %d bytes", ErrSourceMismatch, len(height), len(color))
	}
	if want := s.size.Area() * BytesPerTexel; len(height) != want {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrDimensions, len(height), s.size.W, s.size.H)
	}

	heights := core.NewGrid[uint8](s.size.W, s.size.H)
	colors := core.NewGrid[uint32](s.size.W, s.size.H)
	hc, cc := heights.Cells(), colors.Cells()
	for i := range hc {
		base := i * BytesPerTexel
		hc[i] = height[base]
		cc[i] = 0xFF000000 |
			uint32(color[base+2])<<16 |
			uint32(color[base+1])<<8 |
			uint32(color[base+0])
	}
	s.heights, s.colors = heights, colors
	return nil
}
