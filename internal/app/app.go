package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofnplot/internal/controls"
	"github.com/philipparndt/gofnplot/pkg/preset"
	"github.com/philipparndt/gofnplot/pkg/scene"
)

// Options configures the raylib window
type Options struct {
	Title   string
	Presets <-chan *preset.Preset // Reloaded presets, nil when not watching
}

type App struct {
	Scene       *scene.Scene
	Controls    *controls.Controller
	Frame       FrameState
	Interaction InteractionState
	Presets     PresetState
	UI          UIState
}

// Run opens the window and blocks until it is closed
func Run(s *scene.Scene, opts Options) error {
	if s == nil {
		return fmt.Errorf("no scene")
	}
	if opts.Title == "" {
		opts.Title = "fnplot"
	}

	vp := s.Viewport()
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(vp.Width), int32(vp.Height), opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		Scene:    s,
		Controls: controls.New(s),
		Frame:    FrameState{dirty: true},
		Presets:  PresetState{updates: opts.Presets},
		UI:       UIState{showHelp: true},
	}
	s.OnChange(func() { app.Frame.dirty = true })

	slog.Debug("window opened", "width", vp.Width, "height", vp.Height)

	// Main loop
	for !rl.WindowShouldClose() {
		// Apply reloaded presets (must be on main thread)
		app.applyPresetUpdates()

		app.handleInput()

		// Recompute only after a state change; raylib redraws every tick
		if app.Frame.dirty {
			app.Frame.current = s.Frame()
			app.Frame.dirty = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.White)
		app.drawPlot()
		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}
