// Package render turns a scene frame into drawing calls on a Surface.
//
// Surfaces are the only toolkit specific part; the draw pass itself knows
// nothing about fyne, raylib or ebiten.
package render

import (
	"image/color"

	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

// Surface receives the primitives of one frame in device pixels
type Surface interface {
	// Line strokes a straight segment
	Line(from, to geometry.Pixel, c color.Color, width float32)

	// Oval strokes the outline of an oval
	Oval(box geometry.Oval, c color.Color)

	// FillOval paints a filled oval
	FillOval(box geometry.Oval, c color.Color)

	// Text draws a label with its baseline starting at the given pixel
	Text(at geometry.Pixel, text string, c color.Color)
}

// Resetter is implemented by surfaces that keep state between frames. Reset
// is called before a frame is drawn.
type Resetter interface {
	Reset(vp viewport.Viewport)
}
