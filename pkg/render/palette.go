package render

import (
	"image/color"

	"github.com/philipparndt/gofnplot/pkg/curve"
)

var (
	Background = color.RGBA{255, 255, 255, 255}
	AxisColor  = color.RGBA{0, 0, 0, 255}
	TextColor  = color.RGBA{0, 0, 0, 255}
	HoverColor = color.RGBA{128, 128, 128, 255}
)

const (
	// CurveWidth is the stroke width of sampled curves
	CurveWidth float32 = 2

	// AxisWidth is the stroke width of axes and ticks
	AxisWidth float32 = 1

	// MarkerSize is the diameter of the hover marker
	MarkerSize = 10
)

var familyColors = map[curve.Family]color.RGBA{
	curve.Sin:       {255, 0, 0, 255},
	curve.Cos:       {0, 0, 255, 255},
	curve.Tan:       {0, 255, 0, 255},
	curve.Ctan:      {255, 200, 0, 255},
	curve.Parabola:  {255, 0, 255, 255},
	curve.Hyperbola: {0, 255, 255, 255},
	curve.Ellipse:   {255, 175, 175, 255},
	curve.Circle:    {0, 0, 0, 255},
	curve.Exp:       {255, 255, 0, 255},
	curve.Log:       {100, 50, 200, 255},
}

// Color returns the fixed stroke color of a family
func Color(f curve.Family) color.RGBA {
	if c, ok := familyColors[f]; ok {
		return c
	}
	return AxisColor
}
