// Package window presents the software raster surface in an ebiten window.
package window

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/philipparndt/gofnplot/internal/controls"
	"github.com/philipparndt/gofnplot/pkg/preset"
	"github.com/philipparndt/gofnplot/pkg/render"
	"github.com/philipparndt/gofnplot/pkg/scene"
	"github.com/philipparndt/gofnplot/version"
)

// Options configures the window
type Options struct {
	Title   string
	Presets <-chan *preset.Preset // Reloaded presets, nil when not watching
}

// Run opens the window and blocks until it closes
func Run(s *scene.Scene, opts Options) error {
	if opts.Title == "" {
		opts.Title = "fnplot"
	}

	g, err := newGame(s, opts.Presets)
	if err != nil {
		return err
	}

	vp := s.Viewport()
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%s)", opts.Title, version.GetVersion()))
	ebiten.SetWindowSize(vp.Width, vp.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	scene    *scene.Scene
	controls *controls.Controller
	raster   *render.Raster
	presets  <-chan *preset.Preset

	frame    scene.Frame
	dirty    bool // Scene changed since the raster was drawn
	uploaded bool // Raster copied into img
	img      *ebiten.Image

	layoutW, layoutH int
	cursorX, cursorY int
	message          string
}

func newGame(s *scene.Scene, presets <-chan *preset.Preset) (*game, error) {
	vp := s.Viewport()
	raster, err := render.NewRaster(vp.Width, vp.Height)
	if err != nil {
		return nil, err
	}

	g := &game{
		scene:    s,
		controls: controls.New(s),
		raster:   raster,
		presets:  presets,
		dirty:    true,
		cursorX:  -1,
		cursorY:  -1,
	}
	s.OnChange(func() { g.dirty = true })
	return g, nil
}

func (g *game) Update() error {
	g.applyPresetUpdates()

	if g.layoutW > 0 && g.layoutH > 0 {
		g.report(g.scene.Resize(g.layoutW, g.layoutH))
	}

	g.handleInput()

	if g.dirty {
		g.frame = render.Scene(g.raster, g.scene)
		g.dirty = false
		g.uploaded = false
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.raster.Image()
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.uploaded = false
	}
	if !g.uploaded {
		g.img.WritePixels(img.Pix)
		g.uploaded = true
	}
	screen.DrawImage(g.img, nil)

	status := g.controls.Status()
	if g.message != "" {
		status += "\n" + g.message
	}
	ebitenutil.DebugPrintAt(screen, status, 10, h-40)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *game) applyPresetUpdates() {
	if g.presets == nil {
		return
	}
	for {
		select {
		case p, ok := <-g.presets:
			if !ok {
				g.presets = nil
				return
			}
			g.report(p.Apply(g.scene))
		default:
			return
		}
	}
}

// report logs a rejected update and keeps it for the status line
func (g *game) report(err error) {
	if err == nil {
		return
	}
	slog.Warn("update rejected", "error", err)
	g.message = err.Error()
}
