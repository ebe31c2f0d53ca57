package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gofnplot/pkg/preset"
	"github.com/philipparndt/gofnplot/pkg/scene"
)

// FrameState caches the last computed frame
type FrameState struct {
	current scene.Frame
	dirty   bool // Scene changed since the frame was computed
}

// InteractionState holds mouse state
type InteractionState struct {
	lastMousePos rl.Vector2
	hasMouse     bool
}

// PresetState holds preset reload state
type PresetState struct {
	updates    <-chan *preset.Preset
	lastReload time.Time
	lastError  string
}

// UIState holds overlay state
type UIState struct {
	showHelp  bool
	message   string    // Last warning shown in the overlay
	messageAt time.Time // When the message was set
}
