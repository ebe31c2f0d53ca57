package analysis

import "github.com/philipparndt/gofnplot/pkg/geometry"

// HoverTolerance is the per-axis pixel distance within which a pointer
// selects an intersection
const HoverTolerance = 10

// HitTest returns the first point, in insertion order, lying within
// HoverTolerance of pos on both axes. The earliest match wins even when a
// later point is closer. Points without a finite world value have no
// readout and are never selected.
func HitTest(points []IntersectionPoint, pos geometry.Pixel) (IntersectionPoint, bool) {
	for _, p := range points {
		if p.World.IsFinite() && p.Pixel.Within(pos, HoverTolerance) {
			return p, true
		}
	}
	return IntersectionPoint{}, false
}
