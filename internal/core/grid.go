package core

// Grid stores a 2D grid of cell values in row-major order. Reads through At
// wrap toroidally, so every integer coordinate maps to a cell.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	return Wrap(x, g.W), Wrap(y, g.H)
}

// At returns the cell at (x, y) after wrapping both axes.
func (g *Grid[T]) At(x, y int) T {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Wrap is a floored modulo: the result lies in [0, m) for negative n too.
func Wrap(n, m int) int {
	return (n%m + m) % m
}
