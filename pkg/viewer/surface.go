package viewer

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/render"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

const labelTextSize = 10

// canvasSurface turns render primitives into fyne canvas objects
type canvasSurface struct {
	bounds  image.Rectangle
	objects []fyne.CanvasObject
}

func (s *canvasSurface) Reset(vp viewport.Viewport) {
	s.bounds = image.Rect(0, 0, vp.Width, vp.Height)

	background := canvas.NewRectangle(render.Background)
	background.Resize(fyne.NewSize(float32(vp.Width), float32(vp.Height)))
	s.objects = []fyne.CanvasObject{background}
}

func (s *canvasSurface) Line(from, to geometry.Pixel, c color.Color, width float32) {
	if render.Outside(s.bounds, from, to) {
		return
	}
	line := canvas.NewLine(c)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(from.X), float32(from.Y))
	line.Position2 = fyne.NewPos(float32(to.X), float32(to.Y))
	s.objects = append(s.objects, line)
}

func (s *canvasSurface) Oval(box geometry.Oval, c color.Color) {
	oval := canvas.NewCircle(color.Transparent)
	oval.StrokeColor = c
	oval.StrokeWidth = 1
	place(oval, box)
	s.objects = append(s.objects, oval)
}

func (s *canvasSurface) FillOval(box geometry.Oval, c color.Color) {
	marker := canvas.NewCircle(c)
	place(marker, box)
	s.objects = append(s.objects, marker)
}

// Text takes a baseline origin; fyne positions text by its top-left corner
func (s *canvasSurface) Text(at geometry.Pixel, text string, c color.Color) {
	label := canvas.NewText(text, c)
	label.TextSize = labelTextSize
	label.Move(fyne.NewPos(float32(at.X), float32(at.Y)-labelTextSize))
	s.objects = append(s.objects, label)
}

func place(o fyne.CanvasObject, box geometry.Oval) {
	o.Resize(fyne.NewSize(float32(box.Width), float32(box.Height)))
	o.Move(fyne.NewPos(float32(box.X), float32(box.Y)))
}
