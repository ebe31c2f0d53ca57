package curve

import (
	"fmt"
	"strings"
)

// Slot names one tunable parameter
type Slot int

const (
	SlotA Slot = iota
	SlotB
	SlotC
	SlotRadius
)

// Slots lists every parameter slot
var Slots = []Slot{SlotA, SlotB, SlotC, SlotRadius}

// String returns the slot label
func (s Slot) String() string {
	switch s {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	case SlotC:
		return "C"
	case SlotRadius:
		return "Radius"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// Range returns the bounds the controls offer for the slot
func (s Slot) Range() (min, max float64) {
	if s == SlotRadius {
		return 0, 10
	}
	return -10, 10
}

// Clamp limits v to the slot's control range
func (s Slot) Clamp(v float64) float64 {
	lo, hi := s.Range()
	return max(lo, min(hi, v))
}

// ParseSlot looks a slot up by name ("a", "b", "c", "r" or "radius")
func ParseSlot(name string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a":
		return SlotA, nil
	case "b":
		return SlotB, nil
	case "c":
		return SlotC, nil
	case "r", "radius":
		return SlotRadius, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, name)
}

// Params holds the tunable values of one family
type Params struct {
	A, B, C float64
	Radius  float64
}

// DefaultParams returns the startup values A=1, B=10, C=0.1, Radius=5
func DefaultParams() Params {
	return Params{A: 1, B: 10, C: 0.1, Radius: 5}
}

// Get returns the value stored in a slot
func (p Params) Get(s Slot) (float64, error) {
	switch s {
	case SlotA:
		return p.A, nil
	case SlotB:
		return p.B, nil
	case SlotC:
		return p.C, nil
	case SlotRadius:
		return p.Radius, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownSlot, int(s))
}

// With returns a copy with one slot replaced
func (p Params) With(s Slot, v float64) (Params, error) {
	switch s {
	case SlotA:
		p.A = v
	case SlotB:
		p.B = v
	case SlotC:
		p.C = v
	case SlotRadius:
		p.Radius = v
	default:
		return p, fmt.Errorf("%w: %d", ErrUnknownSlot, int(s))
	}
	return p, nil
}
