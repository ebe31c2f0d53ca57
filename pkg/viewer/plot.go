// Package viewer provides a fyne widget that plots a scene.
package viewer

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gofnplot/pkg/render"
	"github.com/philipparndt/gofnplot/pkg/scene"
)

// PlotWidget renders a scene and feeds wheel and pointer input back into it
type PlotWidget struct {
	widget.BaseWidget
	scene   *scene.Scene
	surface *canvasSurface
	frame   scene.Frame
	onFrame func(scene.Frame)
}

var _ desktop.Hoverable = (*PlotWidget)(nil)

// NewPlotWidget creates a widget for the scene. The widget refreshes itself
// whenever the scene changes.
func NewPlotWidget(s *scene.Scene) *PlotWidget {
	p := &PlotWidget{
		scene:   s,
		surface: &canvasSurface{},
	}
	p.ExtendBaseWidget(p)
	s.OnChange(p.Refresh)
	return p
}

// SetOnFrame sets a callback run after every computed frame
func (p *PlotWidget) SetOnFrame(callback func(frame scene.Frame)) {
	p.onFrame = callback
}

// Frame returns the frame drawn last
func (p *PlotWidget) Frame() scene.Frame {
	return p.frame
}

// CreateRenderer creates the renderer for the widget
func (p *PlotWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &plotRenderer{plot: p}
	r.Refresh()
	return r
}

// render draws a fresh frame into the canvas surface
func (p *PlotWidget) render() []fyne.CanvasObject {
	p.frame = render.Scene(p.surface, p.scene)
	if p.onFrame != nil {
		p.onFrame(p.frame)
	}
	return p.surface.objects
}

// Scrolled handles scroll events for zooming. Scrolling up zooms in.
func (p *PlotWidget) Scrolled(event *fyne.ScrollEvent) {
	notches := 0
	switch {
	case event.Scrolled.DY > 0:
		notches = -1
	case event.Scrolled.DY < 0:
		notches = 1
	default:
		return
	}
	if err := p.scene.Zoom(notches); err != nil {
		slog.Warn("zoom rejected", "error", err)
	}
}

// MouseIn handles the pointer entering the plot
func (p *PlotWidget) MouseIn(event *desktop.MouseEvent) {
	p.MouseMoved(event)
}

// MouseMoved runs the hover hit-test
func (p *PlotWidget) MouseMoved(event *desktop.MouseEvent) {
	p.scene.PointerMove(int(event.Position.X), int(event.Position.Y))
}

// MouseOut clears the hover
func (p *PlotWidget) MouseOut() {
	p.scene.PointerLeave()
}

// plotRenderer implements fyne.WidgetRenderer
type plotRenderer struct {
	plot    *PlotWidget
	objects []fyne.CanvasObject
}

func (r *plotRenderer) Layout(size fyne.Size) {
	w, h := int(size.Width), int(size.Height)
	if w < 1 || h < 1 {
		return
	}
	// A new size notifies the scene listeners, which refresh the widget
	if err := r.plot.scene.Resize(w, h); err != nil {
		slog.Warn("resize rejected", "error", err)
	}
}

func (r *plotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *plotRenderer) Refresh() {
	r.objects = r.plot.render()
	canvas.Refresh(r.plot)
}

func (r *plotRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *plotRenderer) Destroy() {}
