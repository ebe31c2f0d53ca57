package curve

import (
	"fmt"

	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

// Shape is the outline of a conic family together with the single anchor
// point it contributes instead of a sample sequence
type Shape struct {
	Family Family
	Box    geometry.Oval
	Anchor geometry.Pixel
}

// ShapeOf lays out a conic curve in the viewport.
//
// Ellipse: centred on the origin with half-axes A and B; the anchor is the
// top-left corner of its box. Circle: radius Radius, its centre offset from
// the panel centre by A and B in screen directions (positive B moves it
// down); the anchor is its centre.
func ShapeOf(c Curve, vp viewport.Viewport) (Shape, error) {
	center := vp.Center()
	p := c.Params

	switch c.Family {
	case Ellipse:
		rx := vp.Length(p.A)
		ry := vp.Length(p.B)
		x := center.X - rx
		y := center.Y - ry
		return Shape{
			Family: Ellipse,
			Box:    geometry.NewOval(x, y, 2*rx, 2*ry),
			Anchor: geometry.Pixel{X: x, Y: y},
		}, nil

	case Circle:
		r := vp.Length(p.Radius)
		x := center.X - r + vp.Length(p.A)
		y := center.Y - r + vp.Length(p.B)
		return Shape{
			Family: Circle,
			Box:    geometry.NewOval(x, y, 2*r, 2*r),
			Anchor: geometry.Pixel{X: x + r, Y: y + r},
		}, nil
	}

	return Shape{}, fmt.Errorf("%s is not a conic family", c.Family)
}
