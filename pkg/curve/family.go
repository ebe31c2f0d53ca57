// Package curve defines the plottable function families and samples them
// into device pixels.
package curve

import (
	"errors"
	"fmt"
	"strings"
)

// Family identifies one of the supported curve or shape kinds
type Family int

const (
	Sin Family = iota
	Cos
	Tan
	Ctan
	Parabola
	Hyperbola
	Exp
	Log
	Ellipse
	Circle
)

var (
	// ErrUnknownFamily is returned for names or values outside the catalogue
	ErrUnknownFamily = errors.New("unknown function family")

	// ErrUnknownSlot is returned for parameter slots outside A, B, C and Radius
	ErrUnknownSlot = errors.New("unknown parameter slot")
)

// Families lists every family in catalogue order. Intersections are searched
// pairwise in this order.
var Families = []Family{Sin, Cos, Tan, Ctan, Parabola, Hyperbola, Exp, Log, Ellipse, Circle}

type familyInfo struct {
	name    string
	formula string
	slots   []Slot
}

var catalogue = map[Family]familyInfo{
	Sin:       {"sin", "y = A + B*sin(C*x)", []Slot{SlotA, SlotB, SlotC}},
	Cos:       {"cos", "y = A + B*cos(C*x)", []Slot{SlotA, SlotB, SlotC}},
	Tan:       {"tan", "y = A + B*tan(C*x)", []Slot{SlotA, SlotB, SlotC}},
	Ctan:      {"ctan", "y = A + B/tan(C*x)", []Slot{SlotA, SlotB, SlotC}},
	Parabola:  {"parabola", "y = A*x^2 + B*x + C", []Slot{SlotA, SlotB, SlotC}},
	Hyperbola: {"hyperbola", "y = B/(C*x)", []Slot{SlotB, SlotC}},
	Exp:       {"exp", "y = A*exp(B*x)", []Slot{SlotA, SlotB}},
	Log:       {"log", "y = A*ln(B*x)", []Slot{SlotA, SlotB}},
	Ellipse:   {"ellipse", "x^2/A^2 + y^2/B^2 = 1", []Slot{SlotA, SlotB}},
	Circle:    {"circle", "(x-A)^2 + (y+B)^2 = R^2", []Slot{SlotRadius, SlotA, SlotB}},
}

// String returns the lowercase family name
func (f Family) String() string {
	if info, ok := catalogue[f]; ok {
		return info.name
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// Valid reports whether f is part of the catalogue
func (f Family) Valid() bool {
	_, ok := catalogue[f]
	return ok
}

// IsConic reports whether the family is drawn as an oval instead of being
// sampled per pixel column. Conics take no part in intersection detection.
func (f Family) IsConic() bool {
	return f == Ellipse || f == Circle
}

// Formula returns a human readable closed form
func (f Family) Formula() string {
	return catalogue[f].formula
}

// Slots returns the parameter slots the family reads
func (f Family) Slots() []Slot {
	return catalogue[f].slots
}

// ParseFamily looks a family up by name, ignoring case
func ParseFamily(name string) (Family, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Families {
		if catalogue[f].name == n {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}
