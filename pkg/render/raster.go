package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ovalSegments is the polygon resolution used for oval outlines
const ovalSegments = 90

// Raster is a software Surface drawing into an RGBA image
type Raster struct {
	img  *image.RGBA
	face font.Face
	fill *vector.Rasterizer
}

// NewRaster creates a raster surface of the given size with the Go Regular
// font for labels
func NewRaster(width, height int) (*Raster, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", viewport.ErrInvalidSize, width, height)
	}

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	r := &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: face,
		fill: vector.NewRasterizer(width, height),
	}
	r.clear()
	return r, nil
}

// Image returns the backing image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Reset resizes the image to the viewport if needed and clears it
func (r *Raster) Reset(vp viewport.Viewport) {
	b := r.img.Bounds()
	if b.Dx() != vp.Width || b.Dy() != vp.Height {
		r.img = image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	}
	r.clear()
}

func (r *Raster) clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
}

// Line draws a segment with a square brush of the given width
func (r *Raster) Line(from, to geometry.Pixel, c color.Color, width float32) {
	brush := max(1, int(width+0.5))
	from, to, ok := clipSegment(r.img.Bounds().Inset(-brush), from, to)
	if !ok {
		return
	}
	drawLine(r.img, from.X, from.Y, to.X, to.Y, brush, color.RGBAModel.Convert(c).(color.RGBA))
}

// Oval strokes the oval as a closed polygon
func (r *Raster) Oval(box geometry.Oval, c color.Color) {
	if box.Empty() {
		return
	}
	rect := image.Rect(box.X, box.Y, box.X+box.Width+1, box.Y+box.Height+1)
	if !rect.Overlaps(r.img.Bounds()) {
		return
	}
	points := box.Outline(ovalSegments)
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		r.Line(
			geometry.NewPixel(int(a.X), int(a.Y)),
			geometry.NewPixel(int(b.X), int(b.Y)),
			c, 1,
		)
	}
}

// FillOval paints the oval with an anti-aliased edge
func (r *Raster) FillOval(box geometry.Oval, c color.Color) {
	if box.Empty() {
		return
	}
	b := r.img.Bounds()
	r.fill.Reset(b.Dx(), b.Dy())

	center := box.Center()
	addEllipse(r.fill, float32(center.X), float32(center.Y), float32(box.Width)/2, float32(box.Height)/2)
	r.fill.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// Text draws a label with its baseline at the given pixel
func (r *Raster) Text(at geometry.Pixel, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(at.X), Y: fixed.I(at.Y)},
	}
	d.DrawString(text)
}

// Outside reports whether a segment lies completely on one side of bounds
// and can be skipped without changing the picture
func Outside(bounds image.Rectangle, a, b geometry.Pixel) bool {
	switch {
	case a.X < bounds.Min.X && b.X < bounds.Min.X:
		return true
	case a.Y < bounds.Min.Y && b.Y < bounds.Min.Y:
		return true
	case a.X >= bounds.Max.X && b.X >= bounds.Max.X:
		return true
	case a.Y >= bounds.Max.Y && b.Y >= bounds.Max.Y:
		return true
	}
	return false
}

// clipSegment cuts the segment a-b down to the part inside bounds
// (Liang-Barsky). It reports false when nothing of the segment is inside.
func clipSegment(bounds image.Rectangle, a, b geometry.Pixel) (geometry.Pixel, geometry.Pixel, bool) {
	if bounds.Empty() {
		return a, b, false
	}
	x0, y0 := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{
		x0 - float64(bounds.Min.X),
		float64(bounds.Max.X-1) - x0,
		y0 - float64(bounds.Min.Y),
		float64(bounds.Max.Y-1) - y0,
	}

	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return a, b, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}

	from := geometry.NewPixel(int(math.Round(x0+t0*dx)), int(math.Round(y0+t0*dy)))
	to := geometry.NewPixel(int(math.Round(x0+t1*dx)), int(math.Round(y0+t1*dy)))
	return from, to, true
}

// addEllipse adds an ellipse to the rasterizer using four cubic Bézier arcs
func addEllipse(r *vector.Rasterizer, cx, cy, rx, ry float32) {
	const k = float32(0.5522847498)
	kx, ky := k*rx, k*ry

	r.MoveTo(cx, cy-ry)
	r.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	r.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	r.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	r.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	r.ClosePath()
}

// drawLine draws a line on an image using Bresenham's algorithm, stamping a
// brush x brush square at every step
func drawLine(img *image.RGBA, x1, y1, x2, y2, brush int, col color.RGBA) {
	bounds := img.Bounds()
	offset := (brush - 1) / 2

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		for by := 0; by < brush; by++ {
			for bx := 0; bx < brush; bx++ {
				x := x1 + bx - offset
				y := y1 + by - offset
				if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
					img.SetRGBA(x, y, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
