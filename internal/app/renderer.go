package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/render"
)

const labelFontSize = 10

// surface draws render primitives with raylib shapes
type surface struct{}

func toColor(c color.Color) rl.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}

func toVector(p geometry.Pixel) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func (surface) Line(from, to geometry.Pixel, c color.Color, width float32) {
	rl.DrawLineEx(toVector(from), toVector(to), width, toColor(c))
}

func (surface) Oval(box geometry.Oval, c color.Color) {
	center := box.Center()
	rl.DrawEllipseLines(int32(center.X), int32(center.Y), float32(box.Width)/2, float32(box.Height)/2, toColor(c))
}

func (surface) FillOval(box geometry.Oval, c color.Color) {
	center := box.Center()
	rl.DrawEllipse(int32(center.X), int32(center.Y), float32(box.Width)/2, float32(box.Height)/2, toColor(c))
}

// Text takes a baseline origin; raylib positions text by its top-left corner
func (surface) Text(at geometry.Pixel, text string, c color.Color) {
	rl.DrawText(text, int32(at.X), int32(at.Y-labelFontSize), labelFontSize, toColor(c))
}

// drawPlot draws the cached frame
func (app *App) drawPlot() {
	render.Draw(surface{}, app.Frame.current)
}
