package analysis

import (
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

// IntersectionPoint is an approximate crossing of two sampled curves
type IntersectionPoint struct {
	Pixel geometry.Pixel   // Display position
	World geometry.Vector2 // World x and the averaged y of both curves
}

// Trace is a curve together with its samples for one render pass
type Trace struct {
	Curve  curve.Curve
	Points []geometry.Pixel
}

// NewTrace samples a curve into a trace
func NewTrace(c curve.Curve, vp viewport.Viewport) Trace {
	return Trace{Curve: c, Points: curve.Sample(c, vp)}
}

// FindIntersections scans two traces column by column and reports every
// index where the vertical pixel difference changes sign or touches zero.
// Both traces must come from the same viewport so their indices line up.
//
// A zero difference counts as a crossing on both of its neighbouring
// intervals, so a touch can be reported twice in adjacent columns.
func FindIntersections(first, second Trace, vp viewport.Viewport) []IntersectionPoint {
	var result []IntersectionPoint

	n := min(len(first.Points), len(second.Points))
	for i := 1; i < n; i++ {
		prev := first.Points[i-1].Y - second.Points[i-1].Y
		cur := first.Points[i].Y - second.Points[i].Y
		if sign(prev)*sign(cur) > 0 {
			continue
		}

		midX := floorDiv(first.Points[i].X+first.Points[i-1].X, 2)
		x := vp.ScreenXToWorldX(midX)
		y := (first.Curve.Eval(x) + second.Curve.Eval(x)) / 2

		result = append(result, IntersectionPoint{
			Pixel: geometry.Pixel{X: midX, Y: vp.WorldToScreenY(y)},
			World: geometry.Vector2{X: x, Y: y},
		})
	}

	return result
}

// FindAll runs FindIntersections over every unordered pair of traces in
// order (0,1), (0,2), ..., (1,2), ... Conic traces are skipped.
func FindAll(traces []Trace, vp viewport.Viewport) []IntersectionPoint {
	result := make([]IntersectionPoint, 0)
	for i := 0; i < len(traces); i++ {
		if traces[i].Curve.Family.IsConic() {
			continue
		}
		for j := i + 1; j < len(traces); j++ {
			if traces[j].Curve.Family.IsConic() {
				continue
			}
			result = append(result, FindIntersections(traces[i], traces[j], vp)...)
		}
	}
	return result
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
