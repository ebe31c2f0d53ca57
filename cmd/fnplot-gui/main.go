package main

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	rootcmd "github.com/philipparndt/gofnplot/cmd"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/preset"
	"github.com/philipparndt/gofnplot/pkg/render"
	"github.com/philipparndt/gofnplot/pkg/scene"
	"github.com/philipparndt/gofnplot/pkg/viewer"
	"github.com/spf13/cobra"
)

type App struct {
	window   fyne.Window
	scene    *scene.Scene
	plot     *viewer.PlotWidget
	families map[curve.Family]*FamilyControls
	readout  *ReadoutInfo
	syncing  bool // Widgets are being updated from the scene
}

type ReadoutInfo struct {
	scaleLabel         *widget.Label
	intersectionsLabel *widget.Label
	hoverLabel         *widget.Label
}

var rootCmd, options = rootcmd.NewRootCommand(
	"fnplot-gui",
	"Interactive function plotter",
	`Plot the supported function families and read off their intersections by
hovering over them. Families are enabled with the check boxes on the right.`,
)

func init() {
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = run
}

func main() {
	rootcmd.Execute(rootCmd)
}

func run(cmd *cobra.Command, args []string) error {
	s, err := options.BuildScene()
	if err != nil {
		return err
	}

	updates, closer, err := options.FollowPreset()
	if err != nil {
		return err
	}
	defer closer.Close()

	a := app.New()
	w := a.NewWindow("fnplot")

	appInstance := &App{
		window: w,
		scene:  s,
	}
	appInstance.setupMainUI()
	appInstance.followPresets(updates)

	vp := s.Viewport()
	w.Resize(fyne.NewSize(float32(vp.Width)+320, float32(vp.Height)))
	w.ShowAndRun()
	return nil
}

func (a *App) setupMainUI() {
	a.readout = &ReadoutInfo{
		scaleLabel:         widget.NewLabel(""),
		intersectionsLabel: widget.NewLabel(""),
		hoverLabel:         widget.NewLabel("Hover: -"),
	}
	a.readout.hoverLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.plot = viewer.NewPlotWidget(a.scene)
	a.plot.SetOnFrame(a.updateReadout)

	zoomIn := widget.NewButton("Zoom In", func() { a.zoom(-1) })
	zoomOut := widget.NewButton("Zoom Out", func() { a.zoom(1) })

	familyPanel := container.NewVBox()
	a.families = make(map[curve.Family]*FamilyControls, len(curve.Families))
	for _, f := range curve.Families {
		fc := a.newFamilyControls(f)
		a.families[f] = fc
		familyPanel.Add(fc.card)
	}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Check a family to plot it\n" +
			"• Hover an intersection to read it\n" +
			"• Scroll to zoom in/out",
	)
	instructions.Wrapping = fyne.TextWrapWord

	// Create info panel
	infoPanel := container.NewVBox(
		widget.NewLabel("Readout:"),
		widget.NewSeparator(),
		a.readout.scaleLabel,
		a.readout.intersectionsLabel,
		a.readout.hoverLabel,
		container.NewGridWithColumns(2, zoomIn, zoomOut),
		widget.NewSeparator(),
		widget.NewLabel("Functions:"),
		familyPanel,
		widget.NewSeparator(),
		instructions,
	)

	// Create scroll container for info panel
	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	// Create main layout
	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.plot,     // center
	)

	a.window.SetContent(content)

	a.scene.OnChange(a.syncControls)
	a.syncControls()
}

func (a *App) zoom(notches int) {
	if err := a.scene.Zoom(notches); err != nil {
		slog.Warn("zoom rejected", "error", err)
	}
}

func (a *App) updateReadout(frame scene.Frame) {
	a.readout.scaleLabel.SetText(fmt.Sprintf("Scale: %.3f px/unit", frame.Viewport.Scale))
	a.readout.intersectionsLabel.SetText(fmt.Sprintf("Intersections: %d", len(frame.Intersections)))

	if frame.Hovered == nil {
		a.readout.hoverLabel.SetText("Hover: -")
		return
	}
	a.readout.hoverLabel.SetText(render.Readout(frame.Hovered.Point.World))
}

// followPresets applies reloaded presets on the UI thread
func (a *App) followPresets(updates <-chan *preset.Preset) {
	if updates == nil {
		return
	}
	go func() {
		for p := range updates {
			fyne.Do(func() {
				if err := p.Apply(a.scene); err != nil {
					slog.Warn("preset rejected", "error", err)
				}
			})
		}
	}()
}
