package geometry

// Pixel is an integer device coordinate with the origin at the top-left corner
type Pixel struct {
	X, Y int
}

// NewPixel creates a new device coordinate
func NewPixel(x, y int) Pixel {
	return Pixel{X: x, Y: y}
}

// Sub returns the per-axis offset from other to p
func (p Pixel) Sub(other Pixel) Pixel {
	return Pixel{X: p.X - other.X, Y: p.Y - other.Y}
}

// Within reports whether other lies strictly inside the square of half-size
// tolerance centred on p. Each axis is tested on its own, so the region is a
// box rather than a disc.
func (p Pixel) Within(other Pixel, tolerance int) bool {
	d := p.Sub(other)
	return abs(d.X) < tolerance && abs(d.Y) < tolerance
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
