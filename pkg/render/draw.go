package render

import (
	"fmt"

	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/scene"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

const (
	// TickUnits is the world distance between two ticks
	TickUnits = 50

	tickArm = 5
)

// Scene computes a fresh frame from the scene and draws it
func Scene(s Surface, sc *scene.Scene) scene.Frame {
	frame := sc.Frame()
	Draw(s, frame)
	return frame
}

// Draw paints a frame: axes, ticks, curves, conics and the hover readout, in
// that order
func Draw(s Surface, frame scene.Frame) {
	vp := frame.Viewport
	if r, ok := s.(Resetter); ok {
		r.Reset(vp)
	}

	drawAxes(s, vp)
	drawTicks(s, vp)

	for _, trace := range frame.Traces {
		c := Color(trace.Curve.Family)
		curve.Segments(trace.Points, vp.Height, func(from, to geometry.Pixel) {
			s.Line(from, to, c, CurveWidth)
		})
	}

	for _, shape := range frame.Shapes {
		s.Oval(shape.Box, Color(shape.Family))
	}

	if frame.Hovered != nil {
		drawHover(s, frame.Hovered.Point.Pixel, frame.Hovered.Point.World)
	}
}

func drawAxes(s Surface, vp viewport.Viewport) {
	c := vp.Center()
	s.Line(geometry.NewPixel(0, c.Y), geometry.NewPixel(vp.Width, c.Y), AxisColor, AxisWidth)
	s.Line(geometry.NewPixel(c.X, 0), geometry.NewPixel(c.X, vp.Height), AxisColor, AxisWidth)
}

// PixelsPerTick returns the pixel distance between ticks, truncated
func PixelsPerTick(vp viewport.Viewport) int {
	return viewport.ToPixel(TickUnits * vp.Scale)
}

// drawTicks starts at centre mod spacing so a tick always lands on the origin
func drawTicks(s Surface, vp viewport.Viewport) {
	step := PixelsPerTick(vp)
	if step < 1 {
		return
	}
	c := vp.Center()

	for x := c.X % step; x < vp.Width; x += step {
		s.Line(geometry.NewPixel(x, c.Y-tickArm), geometry.NewPixel(x, c.Y+tickArm), AxisColor, AxisWidth)
		label := (x - c.X) / step * TickUnits
		s.Text(geometry.NewPixel(x-10, c.Y+20), fmt.Sprint(label), TextColor)
	}

	for y := c.Y % step; y < vp.Height; y += step {
		s.Line(geometry.NewPixel(c.X-tickArm, y), geometry.NewPixel(c.X+tickArm, y), AxisColor, AxisWidth)
		label := (c.Y - y) / step * TickUnits
		s.Text(geometry.NewPixel(c.X+10, y+5), fmt.Sprint(label), TextColor)
	}
}

func drawHover(s Surface, p geometry.Pixel, world geometry.Vector2) {
	s.FillOval(geometry.OvalAround(p, MarkerSize, MarkerSize), HoverColor)
	s.Text(geometry.NewPixel(p.X+10, p.Y-10), Readout(world), TextColor)
}

// Readout formats a world point for the hover label
func Readout(p geometry.Vector2) string {
	return fmt.Sprintf("X: %.2f, Y: %.2f", p.X, p.Y)
}
