package render

import (
	"fmt"
	"testing"

	"github.com/philipparndt/gofnplot/pkg/analysis"
	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/scene"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

func TestDrawAxesAndTicks(t *testing.T) {
	rec := NewRecorder()
	Draw(rec, scene.Frame{Viewport: viewport.Default()})

	lines := rec.Filter(OpLine)
	// Two axes, 8 ticks on x (0..700) and 6 on y (0..500) at 100px spacing.
	if len(lines) != 2+8+6 {
		t.Fatalf("Draw failed: expected 16 lines, got %d", len(lines))
	}

	xAxis := lines[0]
	if xAxis.From != geometry.NewPixel(0, 300) || xAxis.To != geometry.NewPixel(800, 300) {
		t.Errorf("x axis failed: got %v -> %v", xAxis.From, xAxis.To)
	}
	yAxis := lines[1]
	if yAxis.From != geometry.NewPixel(400, 0) || yAxis.To != geometry.NewPixel(400, 600) {
		t.Errorf("y axis failed: got %v -> %v", yAxis.From, yAxis.To)
	}

	firstTick := lines[2]
	if firstTick.From != geometry.NewPixel(0, 295) || firstTick.To != geometry.NewPixel(0, 305) {
		t.Errorf("tick failed: got %v -> %v", firstTick.From, firstTick.To)
	}

	labels := map[geometry.Pixel]string{}
	for _, text := range rec.Filter(OpText) {
		labels[text.At] = text.Text
	}

	expected := map[geometry.Pixel]string{
		geometry.NewPixel(-10, 320): "-200",
		geometry.NewPixel(390, 320): "0",
		geometry.NewPixel(690, 320): "150",
		geometry.NewPixel(410, 5):   "150",
		geometry.NewPixel(410, 305): "0",
		geometry.NewPixel(410, 505): "-100",
	}
	for at, text := range expected {
		if labels[at] != text {
			t.Errorf("tick label at %v failed: expected %q, got %q", at, text, labels[at])
		}
	}
}

func TestTicksFollowScale(t *testing.T) {
	vp := viewport.Viewport{Width: 800, Height: 600, Scale: 1.1}
	if PixelsPerTick(vp) != 55 {
		t.Fatalf("PixelsPerTick failed: expected 55, got %d", PixelsPerTick(vp))
	}

	rec := NewRecorder()
	Draw(rec, scene.Frame{Viewport: vp})

	// 400 % 55 = 15, so the first x tick sits at column 15 and one lands on 400.
	found := false
	for _, text := range rec.Filter(OpText) {
		if text.At == geometry.NewPixel(390, 320) && text.Text == "0" {
			found = true
		}
		if text.At == geometry.NewPixel(5, 320) && text.Text != "-350" {
			t.Errorf("first label failed: expected -350, got %s", text.Text)
		}
	}
	if !found {
		t.Error("expected a tick at the origin")
	}
}

func TestNoTicksBelowOnePixel(t *testing.T) {
	rec := NewRecorder()
	Draw(rec, scene.Frame{Viewport: viewport.Viewport{Width: 800, Height: 600, Scale: 0.01}})

	if n := len(rec.Filter(OpLine)); n != 2 {
		t.Errorf("Draw failed: expected only the axes, got %d lines", n)
	}
	if n := len(rec.Filter(OpText)); n != 0 {
		t.Errorf("Draw failed: expected no labels, got %d", n)
	}
}

func TestPenUpRule(t *testing.T) {
	vp := viewport.Viewport{Width: 4, Height: 100, Scale: 1}
	trace := analysis.Trace{
		Curve: curve.New(curve.Tan, curve.DefaultParams()),
		Points: []geometry.Pixel{
			{X: 0, Y: 10},
			{X: 1, Y: 109}, // |dy| = 99, drawn
			{X: 2, Y: 9},   // |dy| = 100, skipped
			{X: 3, Y: 20},
		},
	}

	rec := NewRecorder()
	Draw(rec, scene.Frame{Viewport: vp, Traces: []analysis.Trace{trace}})

	lines := rec.LinesColored(Color(curve.Tan))
	if len(lines) != 2 {
		t.Fatalf("pen-up failed: expected 2 segments, got %d", len(lines))
	}
	if lines[0].From.X != 0 || lines[1].From.X != 2 {
		t.Errorf("pen-up failed: unexpected segments %v", lines)
	}
	for _, l := range lines {
		if l.Width != CurveWidth {
			t.Errorf("curve width failed: expected %v, got %v", CurveWidth, l.Width)
		}
	}
}

func TestDrawSceneUsesFamilyColors(t *testing.T) {
	sc := scene.Default()
	_ = sc.SetVisible(curve.Sin, true)
	_ = sc.SetVisible(curve.Circle, true)

	rec := NewRecorder()
	frame := Scene(rec, sc)

	if len(rec.LinesColored(Color(curve.Sin))) == 0 {
		t.Error("Scene failed: no red sin segments")
	}

	ovals := rec.Filter(OpOval)
	if len(ovals) != 1 {
		t.Fatalf("Scene failed: expected 1 oval, got %d", len(ovals))
	}
	if ovals[0].Box != frame.Shapes[0].Box || !sameColor(ovals[0].Color, Color(curve.Circle)) {
		t.Errorf("Scene failed: unexpected oval %v", ovals[0])
	}
}

func TestHoverReadout(t *testing.T) {
	point := analysis.IntersectionPoint{
		Pixel: geometry.NewPixel(462, 300),
		World: geometry.NewVector2(31.0, -0.004),
	}
	frame := scene.Frame{
		Viewport: viewport.Default(),
		Hovered:  &scene.Hover{Point: point, Pointer: point.Pixel},
	}

	rec := NewRecorder()
	Draw(rec, frame)

	fills := rec.Filter(OpFillOval)
	if len(fills) != 1 {
		t.Fatalf("hover failed: expected 1 marker, got %d", len(fills))
	}
	if fills[0].Box != geometry.NewOval(457, 295, 10, 10) {
		t.Errorf("hover marker failed: got %v", fills[0].Box)
	}

	texts := rec.Filter(OpText)
	last := texts[len(texts)-1]
	if last.Text != "X: 31.00, Y: -0.00" {
		t.Errorf("hover text failed: got %q", last.Text)
	}
	if last.At != geometry.NewPixel(472, 290) {
		t.Errorf("hover text position failed: got %v", last.At)
	}
}

func TestRecorderResetsBetweenFrames(t *testing.T) {
	rec := NewRecorder()
	Draw(rec, scene.Frame{Viewport: viewport.Default()})
	first := len(rec.Commands)
	Draw(rec, scene.Frame{Viewport: viewport.Default()})

	if len(rec.Commands) != first {
		t.Errorf("Reset failed: expected %d commands, got %d", first, len(rec.Commands))
	}
}

func TestReadout(t *testing.T) {
	tests := []struct {
		point    geometry.Vector2
		expected string
	}{
		{geometry.NewVector2(0, 0), "X: 0.00, Y: 0.00"},
		{geometry.NewVector2(-62.8318, 1.005), "X: -62.83, Y: 1.00"},
		{geometry.NewVector2(10, -2.5), "X: 10.00, Y: -2.50"},
	}

	for _, tt := range tests {
		if got := Readout(tt.point); got != tt.expected {
			t.Errorf("Readout(%v) failed: expected %q, got %q", tt.point, tt.expected, got)
		}
	}
}

func ExampleReadout() {
	fmt.Println(Readout(geometry.NewVector2(31.4159, 0)))
	// Output: X: 31.42, Y: 0.00
}
