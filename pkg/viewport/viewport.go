// Package viewport maps between world coordinates and device pixels.
//
// The world origin sits at the panel centre, world y grows upwards and device
// y grows downwards. Scale is the number of pixels per world unit.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gofnplot/pkg/geometry"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultScale  = 2.0

	// ZoomStep is the factor applied per mouse wheel notch
	ZoomStep = 1.1

	// pixelLimit bounds converted coordinates so that poles and undefined
	// values stay far outside any real screen without overflowing int math.
	pixelLimit = 1 << 24
)

var (
	// ErrInvalidScale is returned when a scale is not a finite number greater than zero
	ErrInvalidScale = errors.New("scale must be a finite number greater than zero")

	// ErrInvalidSize is returned when a width or height is smaller than one pixel
	ErrInvalidSize = errors.New("viewport width and height must be at least 1 pixel")
)

// Viewport describes the visible panel
type Viewport struct {
	Width  int     // Panel width in pixels
	Height int     // Panel height in pixels
	Scale  float64 // Pixels per world unit
}

// New creates a validated viewport
func New(width, height int, scale float64) (Viewport, error) {
	v := Viewport{Width: width, Height: height, Scale: scale}
	if err := v.Validate(); err != nil {
		return Viewport{}, err
	}
	return v, nil
}

// Default returns the 800x600 viewport at 2 pixels per unit
func Default() Viewport {
	return Viewport{Width: DefaultWidth, Height: DefaultHeight, Scale: DefaultScale}
}

// Validate checks the viewport invariants
func (v Viewport) Validate() error {
	if v.Width < 1 || v.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, v.Width, v.Height)
	}
	if !validScale(v.Scale) {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, v.Scale)
	}
	return nil
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// CenterX returns the pixel column of the world origin
func (v Viewport) CenterX() int {
	return v.Width / 2
}

// CenterY returns the pixel row of the world origin
func (v Viewport) CenterY() int {
	return v.Height / 2
}

// Center returns the pixel of the world origin
func (v Viewport) Center() geometry.Pixel {
	return geometry.Pixel{X: v.CenterX(), Y: v.CenterY()}
}

// ScreenXToWorldX converts a pixel column to a world x value
func (v Viewport) ScreenXToWorldX(xPixel int) float64 {
	return ScreenXToWorldX(xPixel, v.Width, v.Scale)
}

// ScreenYToWorldY converts a pixel row to a world y value
func (v Viewport) ScreenYToWorldY(yPixel int) float64 {
	return float64(v.CenterY()-yPixel) / v.Scale
}

// WorldToScreenX converts a world x value to a pixel column
func (v Viewport) WorldToScreenX(x float64) int {
	return ToPixel(float64(v.CenterX()) + v.Scale*x)
}

// WorldToScreenY converts a world y value to a pixel row
func (v Viewport) WorldToScreenY(y float64) int {
	return WorldToScreenY(y, v.Height, v.Scale)
}

// Project converts a world point to device pixels
func (v Viewport) Project(p geometry.Vector2) geometry.Pixel {
	return geometry.Pixel{X: v.WorldToScreenX(p.X), Y: v.WorldToScreenY(p.Y)}
}

// Unproject converts device pixels to a world point
func (v Viewport) Unproject(p geometry.Pixel) geometry.Vector2 {
	return geometry.Vector2{X: v.ScreenXToWorldX(p.X), Y: v.ScreenYToWorldY(p.Y)}
}

// Length converts a world length to whole pixels, truncating toward zero
func (v Viewport) Length(units float64) int {
	return ToPixel(units * v.Scale)
}

// WithScale returns a copy using the given scale. The receiver is returned
// unchanged together with ErrInvalidScale when the scale is rejected.
func (v Viewport) WithScale(scale float64) (Viewport, error) {
	if !validScale(scale) {
		return v, fmt.Errorf("%w: got %v", ErrInvalidScale, scale)
	}
	v.Scale = scale
	return v, nil
}

// Zoom applies wheel notches. Negative notches zoom in by ZoomStep each,
// positive notches zoom out. Zero notches leave the viewport unchanged.
func (v Viewport) Zoom(notches int) (Viewport, error) {
	scale := v.Scale
	for ; notches < 0; notches++ {
		scale *= ZoomStep
	}
	for ; notches > 0; notches-- {
		scale /= ZoomStep
	}
	return v.WithScale(scale)
}

// Resize returns a copy with a new panel size
func (v Viewport) Resize(width, height int) (Viewport, error) {
	if width < 1 || height < 1 {
		return v, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	v.Width = width
	v.Height = height
	return v, nil
}

// WorldToScreenY maps a world y value to a pixel row:
// heightPx/2 - scale*y, truncated toward zero.
func WorldToScreenY(y float64, heightPx int, scale float64) int {
	return ToPixel(float64(heightPx/2) - scale*y)
}

// ScreenXToWorldX maps a pixel column to a world x value:
// (xPixel - widthPx/2) / scale.
func ScreenXToWorldX(xPixel, widthPx int, scale float64) float64 {
	return float64(xPixel-widthPx/2) / scale
}

// ToPixel truncates a device coordinate toward zero. Values beyond the pixel
// limit, infinities and NaN saturate; NaN lands below the panel.
func ToPixel(v float64) int {
	switch {
	case math.IsNaN(v):
		return pixelLimit
	case v >= pixelLimit:
		return pixelLimit
	case v <= -pixelLimit:
		return -pixelLimit
	}
	return int(v)
}
