package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gofnplot/pkg/curve"
)

// Assignment sets one parameter slot of one family
type Assignment struct {
	Family curve.Family
	Slot   curve.Slot
	Value  float64
}

// ParseAssignment parses "family.slot=value", e.g. "sin.a=0" or
// "circle.radius=2.5"
func ParseAssignment(text string) (Assignment, error) {
	key, value, ok := strings.Cut(text, "=")
	if !ok {
		return Assignment{}, fmt.Errorf("invalid assignment %q: expected family.slot=value", text)
	}

	name, slotName, ok := strings.Cut(strings.TrimSpace(key), ".")
	if !ok {
		return Assignment{}, fmt.Errorf("invalid assignment %q: expected family.slot=value", text)
	}

	family, err := curve.ParseFamily(name)
	if err != nil {
		return Assignment{}, err
	}
	slot, err := curve.ParseSlot(slotName)
	if err != nil {
		return Assignment{}, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return Assignment{}, fmt.Errorf("invalid value in %q: %w", text, err)
	}

	return Assignment{Family: family, Slot: slot, Value: v}, nil
}

// Apply stores the assignment in the scene
func (a Assignment) Apply(s *Scene) error {
	return s.SetParameter(a.Family, a.Slot, a.Value)
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s.%s=%g", a.Family, strings.ToLower(a.Slot.String()), a.Value)
}
