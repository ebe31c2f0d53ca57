// Package controls maps keyboard input onto scene updates for the front-ends
// that have no widget toolkit of their own.
package controls

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/scene"
)

// Key is a toolkit neutral key
type Key int

const (
	KeyNone Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyTab       // next family
	KeyShiftTab  // previous family
	KeyS         // next slot
	KeyUp        // increase value
	KeyDown      // decrease value
	KeyPageUp    // increase value by a large step
	KeyPageDown  // decrease value by a large step
	KeyPlus      // zoom in
	KeyMinus     // zoom out
	KeyR         // reset the selected family
	KeyV         // toggle the selected family
)

const (
	// Step is the value change per arrow key press
	Step = 0.1

	// LargeStep is the value change per page key press
	LargeStep = 1.0
)

// Controller holds the selection state of the keyboard controls
type Controller struct {
	scene    *scene.Scene
	selected int // index into curve.Families
	slot     int // index into the selected family's slots
}

// New creates a controller with the first family selected
func New(s *scene.Scene) *Controller {
	return &Controller{scene: s}
}

// Selected returns the family the value keys act on
func (c *Controller) Selected() curve.Family {
	return curve.Families[c.selected]
}

// Slot returns the parameter slot the value keys act on
func (c *Controller) Slot() curve.Slot {
	slots := c.Selected().Slots()
	return slots[c.slot%len(slots)]
}

// Press handles one key press
func (c *Controller) Press(k Key) error {
	switch {
	case k >= Key1 && k <= Key0:
		return c.ToggleIndex(int(k - Key1))
	}

	switch k {
	case KeyTab:
		c.SelectNext(1)
	case KeyShiftTab:
		c.SelectNext(-1)
	case KeyS:
		c.NextSlot()
	case KeyUp:
		return c.Nudge(Step)
	case KeyDown:
		return c.Nudge(-Step)
	case KeyPageUp:
		return c.Nudge(LargeStep)
	case KeyPageDown:
		return c.Nudge(-LargeStep)
	case KeyPlus:
		return c.scene.Zoom(-1)
	case KeyMinus:
		return c.scene.Zoom(1)
	case KeyR:
		return c.scene.SetParams(c.Selected(), curve.DefaultParams())
	case KeyV:
		_, err := c.scene.Toggle(c.Selected())
		return err
	}
	return nil
}

// ToggleIndex flips the visibility of the family at catalogue index i and
// selects it. Keys 1 to 9 and 0 address the ten families in order.
func (c *Controller) ToggleIndex(i int) error {
	if i < 0 || i >= len(curve.Families) {
		return fmt.Errorf("%w: index %d", curve.ErrUnknownFamily, i)
	}
	c.selected = i
	c.slot = 0
	_, err := c.scene.Toggle(curve.Families[i])
	return err
}

// SelectNext moves the selection by delta families, wrapping around
func (c *Controller) SelectNext(delta int) {
	n := len(curve.Families)
	c.selected = ((c.selected+delta)%n + n) % n
	c.slot = 0
}

// NextSlot cycles through the slots the selected family uses
func (c *Controller) NextSlot() {
	c.slot = (c.slot + 1) % len(c.Selected().Slots())
}

// Nudge changes the selected slot by delta, clamped to the slot range
func (c *Controller) Nudge(delta float64) error {
	f := c.Selected()
	slot := c.Slot()

	v, err := c.scene.Params(f).Get(slot)
	if err != nil {
		return err
	}
	// Round to the step grid so repeated presses do not accumulate drift.
	next := math.Round((v+delta)/Step) * Step
	return c.scene.SetParameter(f, slot, slot.Clamp(next))
}

// Status describes the selection, e.g. "sin [A]=1.00 B=10.00 C=0.10"
func (c *Controller) Status() string {
	f := c.Selected()
	p := c.scene.Params(f)

	var b strings.Builder
	b.WriteString(f.String())
	if !c.scene.Visible(f) {
		b.WriteString(" (hidden)")
	}
	for _, slot := range f.Slots() {
		v, _ := p.Get(slot)
		if slot == c.Slot() {
			fmt.Fprintf(&b, " [%s]=%.2f", slot, v)
		} else {
			fmt.Fprintf(&b, " %s=%.2f", slot, v)
		}
	}
	return b.String()
}

// Help lists the key bindings
func Help() []string {
	return []string{
		"1-9, 0: toggle family",
		"Tab: next family | V: toggle selected",
		"S: next parameter | R: reset family",
		"Up/Down: +/-0.1 | PgUp/PgDn: +/-1",
		"+/- or wheel: zoom",
	}
}
