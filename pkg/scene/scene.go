// Package scene holds the plotter state shared by the renderer and the
// controls: per family parameters and visibility, the viewport, the hovered
// intersection and the intersections found by the last frame.
//
// A Scene is not safe for concurrent use. Every mutation and every Frame call
// must happen on the thread that owns the UI.
package scene

import (
	"fmt"

	"github.com/philipparndt/gofnplot/pkg/analysis"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

// Hover describes the intersection under the pointer
type Hover struct {
	Point   analysis.IntersectionPoint
	Pointer geometry.Pixel // Pointer position that selected the point
}

// Scene is the single source of truth for one plot panel
type Scene struct {
	vp      viewport.Viewport
	params  map[curve.Family]curve.Params
	visible map[curve.Family]bool

	hovered    *Hover
	points     []analysis.IntersectionPoint // From the last frame
	frameStale bool

	listeners []func()
	batching  int
	changed   bool
}

// New creates a scene with every family at its default parameters and
// hidden
func New(vp viewport.Viewport) (*Scene, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		vp:         vp,
		params:     make(map[curve.Family]curve.Params, len(curve.Families)),
		visible:    make(map[curve.Family]bool, len(curve.Families)),
		frameStale: true,
	}
	for _, f := range curve.Families {
		s.params[f] = curve.DefaultParams()
		s.visible[f] = false
	}
	return s, nil
}

// Default creates a scene on the default viewport
func Default() *Scene {
	s, _ := New(viewport.Default())
	return s
}

// Viewport returns the current viewport
func (s *Scene) Viewport() viewport.Viewport {
	return s.vp
}

// Params returns the parameters of a family
func (s *Scene) Params(f curve.Family) curve.Params {
	return s.params[f]
}

// Curve returns the family with its current parameters
func (s *Scene) Curve(f curve.Family) curve.Curve {
	return curve.New(f, s.params[f])
}

// Visible reports whether a family is drawn
func (s *Scene) Visible(f curve.Family) bool {
	return s.visible[f]
}

// VisibleFamilies returns the visible families in catalogue order
func (s *Scene) VisibleFamilies() []curve.Family {
	var result []curve.Family
	for _, f := range curve.Families {
		if s.visible[f] {
			result = append(result, f)
		}
	}
	return result
}

// SetParameter stores one parameter value. Values are taken as given; range
// limits are up to the controls.
func (s *Scene) SetParameter(f curve.Family, slot curve.Slot, value float64) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %d", curve.ErrUnknownFamily, int(f))
	}
	p, err := s.params[f].With(slot, value)
	if err != nil {
		return err
	}
	if p == s.params[f] {
		return nil
	}
	s.params[f] = p
	s.touch()
	return nil
}

// SetParams replaces all parameters of a family
func (s *Scene) SetParams(f curve.Family, p curve.Params) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %d", curve.ErrUnknownFamily, int(f))
	}
	if p == s.params[f] {
		return nil
	}
	s.params[f] = p
	s.touch()
	return nil
}

// SetVisible shows or hides a family
func (s *Scene) SetVisible(f curve.Family, visible bool) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %d", curve.ErrUnknownFamily, int(f))
	}
	if s.visible[f] == visible {
		return nil
	}
	s.visible[f] = visible
	s.touch()
	return nil
}

// Toggle flips the visibility of a family and returns the new state
func (s *Scene) Toggle(f curve.Family) (bool, error) {
	visible := !s.visible[f]
	if err := s.SetVisible(f, visible); err != nil {
		return false, err
	}
	return visible, nil
}

// SetScale validates and applies a new scale. A rejected scale keeps the
// previous one.
func (s *Scene) SetScale(scale float64) error {
	vp, err := s.vp.WithScale(scale)
	if err != nil {
		return err
	}
	s.setViewport(vp)
	return nil
}

// Zoom applies mouse wheel notches, see viewport.Viewport.Zoom
func (s *Scene) Zoom(notches int) error {
	vp, err := s.vp.Zoom(notches)
	if err != nil {
		return err
	}
	s.setViewport(vp)
	return nil
}

// Resize updates the panel size
func (s *Scene) Resize(width, height int) error {
	vp, err := s.vp.Resize(width, height)
	if err != nil {
		return err
	}
	s.setViewport(vp)
	return nil
}

func (s *Scene) setViewport(vp viewport.Viewport) {
	if vp == s.vp {
		return
	}
	s.vp = vp
	s.touch()
}

// PointerMove hit-tests the intersections of the current state against a
// pointer position. The first point within analysis.HoverTolerance is
// hovered; no match clears the hover.
func (s *Scene) PointerMove(x, y int) {
	if s.frameStale {
		s.Frame()
	}

	pos := geometry.NewPixel(x, y)
	point, ok := analysis.HitTest(s.points, pos)

	switch {
	case ok:
		if s.hovered != nil && s.hovered.Point == point && s.hovered.Pointer == pos {
			return
		}
		s.hovered = &Hover{Point: point, Pointer: pos}
	case s.hovered == nil:
		return
	default:
		s.hovered = nil
	}
	s.notify()
}

// PointerLeave clears the hover
func (s *Scene) PointerLeave() {
	if s.hovered == nil {
		return
	}
	s.hovered = nil
	s.notify()
}

// Hovered returns the hovered intersection, if any
func (s *Scene) Hovered() (Hover, bool) {
	if s.hovered == nil {
		return Hover{}, false
	}
	return *s.hovered, true
}

// Intersections returns a copy of the intersections found by the last frame
func (s *Scene) Intersections() []analysis.IntersectionPoint {
	result := make([]analysis.IntersectionPoint, len(s.points))
	copy(result, s.points)
	return result
}

// OnChange registers a listener called after every state change. Listeners
// run synchronously on the mutating thread.
func (s *Scene) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// Batch runs fn with notifications held back and notifies once afterwards if
// anything changed. Changes made before an error are kept.
func (s *Scene) Batch(fn func(*Scene) error) error {
	s.batching++
	err := fn(s)
	s.batching--

	if s.batching == 0 && s.changed {
		s.changed = false
		s.notify()
	}
	return err
}

func (s *Scene) touch() {
	s.frameStale = true
	s.notify()
}

func (s *Scene) notify() {
	if s.batching > 0 {
		s.changed = true
		return
	}
	for _, fn := range s.listeners {
		fn()
	}
}
