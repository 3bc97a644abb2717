package pixels

// Or sets the given bits at (x, y) in a mask plane.
// Panics if (x, y) is outside the plane.
func Or[M Bits](m *Image[M], x, y int, bits M) {
	m.pix[m.index(x, y)] |= bits
}

// AndNot clears the given bits at (x, y) in a mask plane.
// Panics if (x, y) is outside the plane.
func AndNot[M Bits](m *Image[M], x, y int, bits M) {
	m.pix[m.index(x, y)] &^= bits
}

// Any reports whether any of the given bits is set at (x, y).
// Panics if (x, y) is outside the plane.
func Any[M Bits](m *Image[M], x, y int, bits M) bool {
	return m.pix[m.index(x, y)]&bits != 0
}
