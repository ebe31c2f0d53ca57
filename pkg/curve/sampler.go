package curve

import (
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

// Sample evaluates the curve once per pixel column across [0, Width) and
// returns the device points in left-to-right order. Index i always holds
// column i, so two samplings of the same viewport line up positionally.
func Sample(c Curve, vp viewport.Viewport) []geometry.Pixel {
	points := make([]geometry.Pixel, vp.Width)
	for i := range points {
		y := c.Eval(vp.ScreenXToWorldX(i))
		points[i] = geometry.Pixel{X: i, Y: vp.WorldToScreenY(y)}
	}
	return points
}

// Connected applies the pen-up rule: two consecutive samples are joined only
// when their vertical distance is less than the panel height.
func Connected(prev, cur geometry.Pixel, height int) bool {
	dy := cur.Y - prev.Y
	if dy < 0 {
		dy = -dy
	}
	return dy < height
}

// Segments calls emit for every pair of consecutive samples that passes the
// pen-up rule
func Segments(points []geometry.Pixel, height int, emit func(from, to geometry.Pixel)) {
	for i := 1; i < len(points); i++ {
		if Connected(points[i-1], points[i], height) {
			emit(points[i-1], points[i])
		}
	}
}
