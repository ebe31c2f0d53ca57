package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gofnplot/pkg/analysis"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

func countChanges(s *Scene) *int {
	n := 0
	s.OnChange(func() { n++ })
	return &n
}

func TestNewSceneDefaults(t *testing.T) {
	s := Default()

	if len(s.VisibleFamilies()) != 0 {
		t.Errorf("New failed: expected no visible families, got %v", s.VisibleFamilies())
	}
	for _, f := range curve.Families {
		if s.Params(f) != curve.DefaultParams() {
			t.Errorf("New failed: %s expected %v, got %v", f, curve.DefaultParams(), s.Params(f))
		}
	}
	if s.Viewport() != viewport.Default() {
		t.Errorf("New failed: expected default viewport, got %v", s.Viewport())
	}
}

func TestNewRejectsInvalidViewport(t *testing.T) {
	_, err := New(viewport.Viewport{Width: 800, Height: 600, Scale: 0})
	if !errors.Is(err, viewport.ErrInvalidScale) {
		t.Errorf("New failed: expected ErrInvalidScale, got %v", err)
	}
}

func TestSetParameterNotifies(t *testing.T) {
	s := Default()
	changes := countChanges(s)

	if err := s.SetParameter(curve.Sin, curve.SlotA, 3); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}
	if s.Params(curve.Sin).A != 3 {
		t.Errorf("SetParameter failed: expected A=3, got %v", s.Params(curve.Sin).A)
	}
	if *changes != 1 {
		t.Errorf("SetParameter failed: expected 1 notification, got %d", *changes)
	}

	// Same value again is not a change.
	_ = s.SetParameter(curve.Sin, curve.SlotA, 3)
	if *changes != 1 {
		t.Errorf("SetParameter failed: expected no notification for equal value, got %d", *changes)
	}
}

func TestSetParameterRejectsUnknownFamily(t *testing.T) {
	s := Default()
	changes := countChanges(s)

	err := s.SetParameter(curve.Family(99), curve.SlotA, 1)
	if !errors.Is(err, curve.ErrUnknownFamily) {
		t.Errorf("SetParameter failed: expected ErrUnknownFamily, got %v", err)
	}
	err = s.SetParameter(curve.Sin, curve.Slot(42), 1)
	if !errors.Is(err, curve.ErrUnknownSlot) {
		t.Errorf("SetParameter failed: expected ErrUnknownSlot, got %v", err)
	}
	if *changes != 0 {
		t.Errorf("SetParameter failed: rejected update notified %d times", *changes)
	}
}

func TestInvalidScaleKeepsPreviousScale(t *testing.T) {
	s := Default()
	changes := countChanges(s)

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := s.SetScale(scale); !errors.Is(err, viewport.ErrInvalidScale) {
			t.Errorf("SetScale(%v) failed: expected ErrInvalidScale, got %v", scale, err)
		}
	}
	if s.Viewport().Scale != viewport.DefaultScale {
		t.Errorf("SetScale failed: expected scale %v retained, got %v", viewport.DefaultScale, s.Viewport().Scale)
	}
	if *changes != 0 {
		t.Errorf("SetScale failed: rejected updates notified %d times", *changes)
	}

	if err := s.SetScale(4); err != nil {
		t.Fatalf("SetScale failed: %v", err)
	}
	if *changes != 1 {
		t.Errorf("SetScale failed: expected 1 notification, got %d", *changes)
	}
}

func TestZoomNotches(t *testing.T) {
	s := Default()

	if err := s.Zoom(-1); err != nil {
		t.Fatalf("Zoom failed: %v", err)
	}
	if math.Abs(s.Viewport().Scale-2.2) > 1e-10 {
		t.Errorf("Zoom failed: expected 2.2, got %v", s.Viewport().Scale)
	}
	if err := s.Zoom(1); err != nil {
		t.Fatalf("Zoom failed: %v", err)
	}
	if math.Abs(s.Viewport().Scale-2) > 1e-10 {
		t.Errorf("Zoom failed: expected 2, got %v", s.Viewport().Scale)
	}
}

func TestResizeOnlyNotifiesOnChange(t *testing.T) {
	s := Default()
	changes := countChanges(s)

	_ = s.Resize(800, 600)
	if *changes != 0 {
		t.Errorf("Resize failed: same size notified %d times", *changes)
	}
	_ = s.Resize(1024, 768)
	if *changes != 1 {
		t.Errorf("Resize failed: expected 1 notification, got %d", *changes)
	}
	if err := s.Resize(0, 10); !errors.Is(err, viewport.ErrInvalidSize) {
		t.Errorf("Resize failed: expected ErrInvalidSize, got %v", err)
	}
}

func TestBatchNotifiesOnce(t *testing.T) {
	s := Default()
	changes := countChanges(s)

	err := s.Batch(func(s *Scene) error {
		_ = s.SetVisible(curve.Sin, true)
		_ = s.SetVisible(curve.Cos, true)
		return s.SetParameter(curve.Cos, curve.SlotB, 5)
	})
	if err != nil {
		t.Fatalf("Batch failed: %v", err)
	}
	if *changes != 1 {
		t.Errorf("Batch failed: expected 1 notification, got %d", *changes)
	}

	_ = s.Batch(func(s *Scene) error { return nil })
	if *changes != 1 {
		t.Errorf("Batch failed: empty batch notified")
	}
}

func TestToggle(t *testing.T) {
	s := Default()

	visible, err := s.Toggle(curve.Tan)
	if err != nil || !visible || !s.Visible(curve.Tan) {
		t.Errorf("Toggle failed: expected visible, got %v (%v)", visible, err)
	}
	visible, _ = s.Toggle(curve.Tan)
	if visible || s.Visible(curve.Tan) {
		t.Error("Toggle failed: expected hidden after second toggle")
	}
}

func sineAndZeroScene(t *testing.T) *Scene {
	t.Helper()
	s := Default()
	err := s.Batch(func(s *Scene) error {
		if err := s.SetParams(curve.Sin, curve.Params{A: 0, B: 10, C: 0.1, Radius: 5}); err != nil {
			return err
		}
		if err := s.SetParams(curve.Parabola, curve.Params{Radius: 5}); err != nil {
			return err
		}
		if err := s.SetVisible(curve.Sin, true); err != nil {
			return err
		}
		return s.SetVisible(curve.Parabola, true)
	})
	if err != nil {
		t.Fatalf("scene setup failed: %v", err)
	}
	return s
}

func TestFrameIsIdempotent(t *testing.T) {
	s := sineAndZeroScene(t)
	_ = s.SetVisible(curve.Cos, true)

	first := s.Frame()
	second := s.Frame()

	if len(first.Intersections) == 0 {
		t.Fatal("Frame failed: expected intersections")
	}
	if len(first.Intersections) != len(second.Intersections) {
		t.Fatalf("Frame failed: expected %d intersections, got %d", len(first.Intersections), len(second.Intersections))
	}
	for i := range first.Intersections {
		if first.Intersections[i] != second.Intersections[i] {
			t.Errorf("Frame failed at %d: %v != %v", i, first.Intersections[i], second.Intersections[i])
		}
	}
}

func TestFrameBuffersAreNotShared(t *testing.T) {
	s := sineAndZeroScene(t)

	frame := s.Frame()
	frame.Intersections[0] = analysis.IntersectionPoint{}

	if s.Intersections()[0] == (analysis.IntersectionPoint{}) {
		t.Error("Frame failed: scene intersections alias the frame")
	}
}

func TestVisibilityGating(t *testing.T) {
	s := sineAndZeroScene(t)
	_ = s.SetVisible(curve.Ellipse, true)

	frame := s.Frame()
	if len(frame.Traces) != 2 {
		t.Fatalf("Frame failed: expected 2 traces, got %d", len(frame.Traces))
	}
	if len(frame.Shapes) != 1 || frame.Shapes[0].Family != curve.Ellipse {
		t.Fatalf("Frame failed: expected the ellipse shape, got %v", frame.Shapes)
	}
	if len(frame.Intersections) == 0 {
		t.Fatal("Frame failed: expected sin/parabola intersections")
	}

	_ = s.SetVisible(curve.Parabola, false)
	frame = s.Frame()
	if len(frame.Traces) != 1 || frame.Traces[0].Curve.Family != curve.Sin {
		t.Errorf("Frame failed: expected only the sin trace, got %d traces", len(frame.Traces))
	}
	if len(frame.Intersections) != 0 {
		t.Errorf("Frame failed: hidden family still intersects, got %d points", len(frame.Intersections))
	}
	if len(s.Intersections()) != 0 {
		t.Errorf("Frame failed: stale intersections kept, got %d", len(s.Intersections()))
	}
}

func TestFrameAnchors(t *testing.T) {
	s := Default()
	_ = s.SetParams(curve.Circle, curve.Params{A: 10, B: 5, Radius: 5})
	_ = s.SetVisible(curve.Circle, true)

	anchors := s.Frame().Anchors()
	if len(anchors) != 1 || anchors[0] != geometry.NewPixel(420, 310) {
		t.Errorf("Anchors failed: expected [(420,310)], got %v", anchors)
	}
}

func TestPointerMoveHover(t *testing.T) {
	s := sineAndZeroScene(t)
	changes := countChanges(s)

	points := s.Frame().Intersections
	target := points[0].Pixel

	s.PointerMove(target.X+3, target.Y-3)
	hover, ok := s.Hovered()
	if !ok {
		t.Fatal("PointerMove failed: expected a hovered point")
	}
	if hover.Point != points[0] {
		t.Errorf("PointerMove failed: expected first match %v, got %v", points[0], hover.Point)
	}
	if *changes != 1 {
		t.Errorf("PointerMove failed: expected 1 notification, got %d", *changes)
	}

	s.PointerMove(-1000, -1000)
	if _, ok := s.Hovered(); ok {
		t.Error("PointerMove failed: hover not cleared")
	}
	if *changes != 2 {
		t.Errorf("PointerMove failed: expected 2 notifications, got %d", *changes)
	}

	// Moving around empty space is not a change.
	s.PointerMove(-900, -900)
	if *changes != 2 {
		t.Errorf("PointerMove failed: expected no notification, got %d", *changes)
	}
}

func TestPointerMoveUsesCurrentState(t *testing.T) {
	s := sineAndZeroScene(t)

	// No frame computed yet; the hit-test must still see the crossings.
	center := s.Viewport().Center()
	s.PointerMove(center.X, center.Y)
	if _, ok := s.Hovered(); !ok {
		t.Error("PointerMove failed: expected the crossing at the origin")
	}

	s.PointerLeave()
	if _, ok := s.Hovered(); ok {
		t.Error("PointerLeave failed: hover not cleared")
	}
}
