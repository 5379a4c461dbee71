package core

// Size describes the dimensions of a map or pixel surface.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }
