package scene

import (
	"github.com/philipparndt/gofnplot/pkg/analysis"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

// Frame is everything one render pass needs. It is computed from the scene
// and owns its slices; nothing in it is shared with the next frame.
type Frame struct {
	Viewport      viewport.Viewport
	Traces        []analysis.Trace // Visible curve families in catalogue order
	Shapes        []curve.Shape    // Visible conic families in catalogue order
	Intersections []analysis.IntersectionPoint
	Hovered       *Hover
}

// Frame samples every visible curve, lays out the visible conics and
// rebuilds the intersection buffer. The new intersections replace the ones
// the hit-test works on.
func (s *Scene) Frame() Frame {
	frame := Frame{Viewport: s.vp}

	for _, f := range s.VisibleFamilies() {
		c := s.Curve(f)
		if f.IsConic() {
			shape, err := curve.ShapeOf(c, s.vp)
			if err == nil {
				frame.Shapes = append(frame.Shapes, shape)
			}
			continue
		}
		frame.Traces = append(frame.Traces, analysis.NewTrace(c, s.vp))
	}

	frame.Intersections = analysis.FindAll(frame.Traces, s.vp)
	if s.hovered != nil {
		h := *s.hovered
		frame.Hovered = &h
	}

	s.points = make([]analysis.IntersectionPoint, len(frame.Intersections))
	copy(s.points, frame.Intersections)
	s.frameStale = false

	return frame
}

// Anchors returns the representative point of every conic in the frame
func (f Frame) Anchors() []geometry.Pixel {
	result := make([]geometry.Pixel, len(f.Shapes))
	for i, shape := range f.Shapes {
		result[i] = shape.Anchor
	}
	return result
}
