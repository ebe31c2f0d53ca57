package geometry

import (
	"math"
	"testing"
)

func TestNewOvalNormalizesNegativeSize(t *testing.T) {
	o := NewOval(420, 320, -40, -40)

	expected := Oval{X: 380, Y: 280, Width: 40, Height: 40}
	if o != expected {
		t.Errorf("NewOval failed: expected %v, got %v", expected, o)
	}
}

func TestOvalCenter(t *testing.T) {
	o := OvalAround(NewPixel(50, 60), 10, 10)

	if c := o.Center(); c != NewVector2(50, 60) {
		t.Errorf("Center failed: expected (50, 60), got %v", c)
	}
}

func TestOvalOutlineStaysOnEllipse(t *testing.T) {
	o := NewOval(0, 0, 200, 100)

	points := o.Outline(64)
	if len(points) != 64 {
		t.Fatalf("Outline failed: expected 64 points, got %d", len(points))
	}

	for _, p := range points {
		dx := (p.X - 100) / 100
		dy := (p.Y - 50) / 50
		if math.Abs(dx*dx+dy*dy-1) > 1e-10 {
			t.Errorf("Outline point %v is not on the ellipse", p)
		}
	}
}

func TestOvalEmpty(t *testing.T) {
	if !NewOval(10, 10, 0, 20).Empty() {
		t.Error("Empty failed: zero width oval reported non-empty")
	}
	if NewOval(10, 10, 5, 5).Empty() {
		t.Error("Empty failed: 5x5 oval reported empty")
	}
}
