package app

import (
	"log/slog"
	"time"
)

// applyPresetUpdates applies presets reloaded in the background (must be
// called on main thread)
func (app *App) applyPresetUpdates() {
	if app.Presets.updates == nil {
		return
	}

	for {
		select {
		case p, ok := <-app.Presets.updates:
			if !ok {
				app.Presets.updates = nil
				return
			}
			app.Presets.lastReload = time.Now()
			app.Presets.lastError = ""
			if err := p.Apply(app.Scene); err != nil {
				slog.Warn("preset rejected", "error", err)
				app.Presets.lastError = err.Error()
			}
		default:
			return
		}
	}
}
