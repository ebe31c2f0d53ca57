package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/philipparndt/gofnplot/internal/controls"
)

var keyBindings = map[ebiten.Key]controls.Key{
	ebiten.KeyDigit1:         controls.Key1,
	ebiten.KeyDigit2:         controls.Key2,
	ebiten.KeyDigit3:         controls.Key3,
	ebiten.KeyDigit4:         controls.Key4,
	ebiten.KeyDigit5:         controls.Key5,
	ebiten.KeyDigit6:         controls.Key6,
	ebiten.KeyDigit7:         controls.Key7,
	ebiten.KeyDigit8:         controls.Key8,
	ebiten.KeyDigit9:         controls.Key9,
	ebiten.KeyDigit0:         controls.Key0,
	ebiten.KeyS:              controls.KeyS,
	ebiten.KeyArrowUp:        controls.KeyUp,
	ebiten.KeyArrowDown:      controls.KeyDown,
	ebiten.KeyPageUp:         controls.KeyPageUp,
	ebiten.KeyPageDown:       controls.KeyPageDown,
	ebiten.KeyEqual:          controls.KeyPlus,
	ebiten.KeyNumpadAdd:      controls.KeyPlus,
	ebiten.KeyMinus:          controls.KeyMinus,
	ebiten.KeyNumpadSubtract: controls.KeyMinus,
	ebiten.KeyR:              controls.KeyR,
	ebiten.KeyV:              controls.KeyV,
}

func (g *game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.report(g.controls.Press(controls.KeyShiftTab))
		} else {
			g.report(g.controls.Press(controls.KeyTab))
		}
	}

	for key, input := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.report(g.controls.Press(input))
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.report(g.scene.Zoom(wheelNotches(dy)))
	}

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.scene.PointerMove(x, y)
	}
}

// wheelNotches converts an ebiten wheel offset to zoom notches. Scrolling up
// reports a positive offset and zooms in.
func wheelNotches(dy float64) int {
	switch {
	case dy > 0:
		return -1
	case dy < 0:
		return 1
	}
	return 0
}
