package main

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/render"
)

const sliderStep = 0.1

// FamilyControls is the check box and the parameter sliders of one family
type FamilyControls struct {
	family  curve.Family
	check   *widget.Check
	sliders map[curve.Slot]*widget.Slider
	values  map[curve.Slot]*widget.Label
	params  *fyne.Container // Shown while the family is checked
	card    *fyne.Container
}

func (a *App) newFamilyControls(f curve.Family) *FamilyControls {
	fc := &FamilyControls{
		family:  f,
		sliders: make(map[curve.Slot]*widget.Slider),
		values:  make(map[curve.Slot]*widget.Label),
	}

	fc.check = widget.NewCheck(f.String(), func(checked bool) {
		if a.syncing {
			return
		}
		if err := a.scene.SetVisible(f, checked); err != nil {
			slog.Warn("visibility rejected", "family", f, "error", err)
		}
	})

	rows := container.NewVBox(widget.NewLabel(f.Formula()))
	for _, slot := range f.Slots() {
		lo, hi := slot.Range()
		slider := widget.NewSlider(lo, hi)
		slider.Step = sliderStep
		value := widget.NewLabel("")

		slider.OnChanged = func(v float64) {
			if a.syncing {
				return
			}
			if err := a.scene.SetParameter(f, slot, v); err != nil {
				slog.Warn("parameter rejected", "family", f, "slot", slot, "error", err)
			}
		}

		fc.sliders[slot] = slider
		fc.values[slot] = value
		rows.Add(container.NewBorder(nil, nil, widget.NewLabel(slot.String()), value, slider))
	}
	fc.params = rows
	fc.params.Hide()

	swatch := canvas.NewRectangle(render.Color(f))
	swatch.SetMinSize(fyne.NewSize(12, 12))

	fc.card = container.NewVBox(
		container.NewHBox(container.NewCenter(swatch), fc.check),
		fc.params,
	)
	return fc
}

// syncControls copies the scene state into the widgets
func (a *App) syncControls() {
	a.syncing = true
	defer func() { a.syncing = false }()

	for f, fc := range a.families {
		visible := a.scene.Visible(f)
		fc.check.SetChecked(visible)
		if visible {
			fc.params.Show()
		} else {
			fc.params.Hide()
		}

		p := a.scene.Params(f)
		for slot, slider := range fc.sliders {
			v, _ := p.Get(slot)
			if slider.Value != v {
				slider.SetValue(v)
			}
			fc.values[slot].SetText(fmt.Sprintf("%6.2f", v))
		}
	}
}
