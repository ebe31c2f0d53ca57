package geometry

import "math"

// Oval is an axis-aligned ellipse described by its bounding box in device
// coordinates. Width and Height are never negative.
type Oval struct {
	X, Y          int
	Width, Height int
}

// NewOval creates an oval from a bounding box. A negative width or height
// flips the box around its origin so the same area is covered.
func NewOval(x, y, width, height int) Oval {
	if width < 0 {
		x += width
		width = -width
	}
	if height < 0 {
		y += height
		height = -height
	}
	return Oval{X: x, Y: y, Width: width, Height: height}
}

// OvalAround creates an oval of the given size centred on c
func OvalAround(c Pixel, width, height int) Oval {
	return NewOval(c.X-width/2, c.Y-height/2, width, height)
}

// Center returns the centre of the bounding box
func (o Oval) Center() Vector2 {
	return Vector2{
		X: float64(o.X) + float64(o.Width)/2,
		Y: float64(o.Y) + float64(o.Height)/2,
	}
}

// Empty reports whether the oval has no area
func (o Oval) Empty() bool {
	return o.Width == 0 || o.Height == 0
}

// Outline approximates the oval by a closed polygon with the given number of
// vertices. The first vertex is not repeated at the end.
func (o Oval) Outline(segments int) []Vector2 {
	if segments < 3 {
		segments = 3
	}

	c := o.Center()
	rx := float64(o.Width) / 2
	ry := float64(o.Height) / 2

	points := make([]Vector2, segments)
	for i := range points {
		t := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = Vector2{X: c.X + rx*math.Cos(t), Y: c.Y + ry*math.Sin(t)}
	}
	return points
}
