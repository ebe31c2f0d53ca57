package app

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofnplot/internal/controls"
)

var keyBindings = []struct {
	key   int32
	input controls.Key
}{
	{rl.KeyOne, controls.Key1},
	{rl.KeyTwo, controls.Key2},
	{rl.KeyThree, controls.Key3},
	{rl.KeyFour, controls.Key4},
	{rl.KeyFive, controls.Key5},
	{rl.KeySix, controls.Key6},
	{rl.KeySeven, controls.Key7},
	{rl.KeyEight, controls.Key8},
	{rl.KeyNine, controls.Key9},
	{rl.KeyZero, controls.Key0},
	{rl.KeyS, controls.KeyS},
	{rl.KeyUp, controls.KeyUp},
	{rl.KeyDown, controls.KeyDown},
	{rl.KeyPageUp, controls.KeyPageUp},
	{rl.KeyPageDown, controls.KeyPageDown},
	{rl.KeyEqual, controls.KeyPlus},
	{rl.KeyKpAdd, controls.KeyPlus},
	{rl.KeyMinus, controls.KeyMinus},
	{rl.KeyKpSubtract, controls.KeyMinus},
	{rl.KeyR, controls.KeyR},
	{rl.KeyV, controls.KeyV},
}

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsWindowResized() {
		app.report(app.Scene.Resize(rl.GetScreenWidth(), rl.GetScreenHeight()))
	}

	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	if rl.IsKeyPressed(rl.KeyTab) {
		if shiftPressed {
			app.report(app.Controls.Press(controls.KeyShiftTab))
		} else {
			app.report(app.Controls.Press(controls.KeyTab))
		}
	}

	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) || (isRepeatable(b.input) && rl.IsKeyPressedRepeat(b.key)) {
			app.report(app.Controls.Press(b.input))
		}
	}

	// Wheel up zooms in, matching a negative notch
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		notches := -1
		if wheel < 0 {
			notches = 1
		}
		app.report(app.Scene.Zoom(notches))
	}

	mouse := rl.GetMousePosition()
	if !app.Interaction.hasMouse || mouse != app.Interaction.lastMousePos {
		app.Interaction.lastMousePos = mouse
		app.Interaction.hasMouse = true
		app.Scene.PointerMove(int(mouse.X), int(mouse.Y))
	}
}

func isRepeatable(k controls.Key) bool {
	switch k {
	case controls.KeyUp, controls.KeyDown, controls.KeyPageUp, controls.KeyPageDown:
		return true
	}
	return false
}

// report logs a rejected update and shows it in the overlay
func (app *App) report(err error) {
	if err == nil {
		return
	}
	slog.Warn("update rejected", "error", err)
	app.UI.message = err.Error()
	app.UI.messageAt = time.Now()
}
