package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofnplot/internal/controls"
	"github.com/philipparndt/gofnplot/pkg/render"
	"github.com/philipparndt/gofnplot/version"
)

const messageTimeout = 4 * time.Second

// drawUI draws the overlay in the top-left corner
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(18)
	fontSize14 := int32(14)
	fontSize12 := int32(12)

	rl.DrawText(app.Controls.Status(), 10, y, fontSize14, toColor(render.Color(app.Controls.Selected())))
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Scale: %.3f px/unit | Intersections: %d", app.Scene.Viewport().Scale, len(app.Frame.current.Intersections)), 10, y, fontSize12, rl.DarkGray)
	y += lineHeight

	if app.UI.showHelp {
		for _, line := range controls.Help() {
			rl.DrawText("  "+line, 10, y, fontSize12, rl.Gray)
			y += lineHeight
		}
		rl.DrawText("  H: hide help", 10, y, fontSize12, rl.Gray)
		y += lineHeight
	}

	if app.UI.message != "" && time.Since(app.UI.messageAt) < messageTimeout {
		rl.DrawText(app.UI.message, 10, y, fontSize12, rl.Red)
	}

	if !app.Presets.lastReload.IsZero() && time.Since(app.Presets.lastReload) < messageTimeout {
		text := "Preset reloaded"
		if app.Presets.lastError != "" {
			text = "Preset rejected: " + app.Presets.lastError
		}
		width := rl.MeasureText(text, fontSize14)
		rl.DrawText(text, int32(rl.GetScreenWidth())-width-20, 20, fontSize14, rl.DarkGreen)
	}

	// Version and FPS in bottom-left corner
	bottomY := int32(rl.GetScreenHeight()) - 20
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawText(versionText, 10, bottomY, fontSize12, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureText(versionText, fontSize12)
	rl.DrawText(fpsText, 10+versionWidth+15, bottomY, fontSize12, rl.Lime)
}
