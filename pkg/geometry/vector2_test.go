package geometry

import (
	"math"
	"testing"
)

func TestVector2IsFinite(t *testing.T) {
	if !NewVector2(1, -2).IsFinite() {
		t.Error("IsFinite failed: expected finite vector")
	}
	if NewVector2(math.NaN(), 0).IsFinite() {
		t.Error("IsFinite failed: NaN component reported finite")
	}
	if NewVector2(0, math.Inf(-1)).IsFinite() {
		t.Error("IsFinite failed: infinite component reported finite")
	}
}

func TestPixelWithin(t *testing.T) {
	p := NewPixel(100, 100)

	cases := []struct {
		other Pixel
		want  bool
	}{
		{NewPixel(100, 100), true},
		{NewPixel(109, 91), true},
		{NewPixel(110, 100), false},
		{NewPixel(100, 90), false},
		// Both axes at 9 would be 12.7px away as a distance, still inside the box.
		{NewPixel(91, 109), true},
	}

	for _, tc := range cases {
		if got := p.Within(tc.other, 10); got != tc.want {
			t.Errorf("Within(%v) failed: expected %v, got %v", tc.other, tc.want, got)
		}
	}
}
