// Package preset loads scene presets from TOML files.
//
// A preset sets the scale and, per family, visibility and parameters:
//
//	scale = 2.5
//
//	[family.sin]
//	visible = true
//	a = 0
//	b = 10
//	c = 0.1
//
//	[family.circle]
//	visible = true
//	radius = 4
//
// Keys that are missing leave the current value unchanged.
package preset

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/scene"
)

// FamilyPreset holds the optional settings of one family
type FamilyPreset struct {
	Visible *bool    `toml:"visible"`
	A       *float64 `toml:"a"`
	B       *float64 `toml:"b"`
	C       *float64 `toml:"c"`
	Radius  *float64 `toml:"radius"`
}

// Preset is a decoded preset file
type Preset struct {
	Scale    *float64                `toml:"scale"`
	Families map[string]FamilyPreset `toml:"family"`
}

// Parse reads a preset file
func Parse(filename string) (*Preset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset: %w", err)
	}
	defer file.Close()

	p, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// Decode reads a preset from r. Unknown keys and family names are rejected.
func Decode(r io.Reader) (*Preset, error) {
	var p Preset
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("failed to decode preset: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown preset keys: %s", strings.Join(keys, ", "))
	}

	for name := range p.Families {
		if _, err := curve.ParseFamily(name); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// Apply writes the preset into the scene as one batch. The scene is left
// untouched if any value is rejected.
func (p *Preset) Apply(s *scene.Scene) error {
	if p.Scale != nil {
		if _, err := s.Viewport().WithScale(*p.Scale); err != nil {
			return err
		}
	}

	type update struct {
		family  curve.Family
		params  curve.Params
		visible *bool
	}
	var updates []update

	for _, name := range p.familyNames() {
		fp := p.Families[name]
		f, err := curve.ParseFamily(name)
		if err != nil {
			return err
		}

		params := s.Params(f)
		values := []struct {
			slot  curve.Slot
			value *float64
		}{
			{curve.SlotA, fp.A},
			{curve.SlotB, fp.B},
			{curve.SlotC, fp.C},
			{curve.SlotRadius, fp.Radius},
		}
		for _, v := range values {
			if v.value == nil {
				continue
			}
			if params, err = params.With(v.slot, *v.value); err != nil {
				return fmt.Errorf("family %s: %w", name, err)
			}
		}

		updates = append(updates, update{family: f, params: params, visible: fp.Visible})
	}

	return s.Batch(func(s *scene.Scene) error {
		if p.Scale != nil {
			if err := s.SetScale(*p.Scale); err != nil {
				return err
			}
		}
		for _, u := range updates {
			if err := s.SetParams(u.family, u.params); err != nil {
				return err
			}
			if u.visible != nil {
				if err := s.SetVisible(u.family, *u.visible); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// familyNames returns the family keys sorted for a stable apply order
func (p *Preset) familyNames() []string {
	names := make([]string, 0, len(p.Families))
	for name := range p.Families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
