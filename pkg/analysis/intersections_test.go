package analysis

import (
	"math"
	"sort"
	"testing"

	"github.com/philipparndt/gofnplot/pkg/curve"
	"github.com/philipparndt/gofnplot/pkg/geometry"
	"github.com/philipparndt/gofnplot/pkg/viewport"
)

func sineAndZero(vp viewport.Viewport) (Trace, Trace) {
	sin := NewTrace(curve.New(curve.Sin, curve.Params{A: 0, B: 10, C: 0.1}), vp)
	zero := NewTrace(curve.New(curve.Parabola, curve.Params{}), vp)
	return sin, zero
}

func TestKnownCrossings(t *testing.T) {
	vp := viewport.Default()
	sin, zero := sineAndZero(vp)

	found := FindIntersections(sin, zero, vp)
	if len(found) == 0 {
		t.Fatal("no crossings found")
	}

	left := vp.ScreenXToWorldX(0)
	right := vp.ScreenXToWorldX(vp.Width - 1)
	resolution := 1 / vp.Scale

	for k := -10; k <= 10; k++ {
		root := float64(k) * 10 * math.Pi
		if root < left || root > right {
			continue
		}

		ok := false
		for _, p := range found {
			if math.Abs(p.World.X-root) <= resolution {
				ok = true
				break
			}
		}
		if !ok {
			t.Errorf("no crossing reported within %v of x=%v", resolution, root)
		}
	}

	// Every report must belong to some root; touches may add a neighbour.
	for _, p := range found {
		k := math.Round(p.World.X / (10 * math.Pi))
		if d := math.Abs(p.World.X - k*10*math.Pi); d > 3*resolution {
			t.Errorf("spurious crossing at x=%v", p.World.X)
		}
	}
}

func TestIntersectionYAveragesBothCurves(t *testing.T) {
	vp := viewport.Default()

	// y = x and y = 10 - x cross at (5, 5).
	rising := NewTrace(curve.New(curve.Parabola, curve.Params{A: 0, B: 1, C: 0}), vp)
	falling := NewTrace(curve.New(curve.Parabola, curve.Params{A: 0, B: -1, C: 10}), vp)

	found := FindIntersections(rising, falling, vp)
	if len(found) == 0 {
		t.Fatal("no crossing found")
	}

	p := found[0]
	if math.Abs(p.World.X-5) > 1/vp.Scale {
		t.Errorf("crossing x failed: expected ~5, got %v", p.World.X)
	}
	// The average of x and 10-x is exactly 5 wherever it is evaluated.
	if math.Abs(p.World.Y-5) > 1e-10 {
		t.Errorf("crossing y failed: expected 5, got %v", p.World.Y)
	}
	if p.Pixel != vp.Project(p.World) {
		t.Errorf("crossing pixel failed: expected %v, got %v", vp.Project(p.World), p.Pixel)
	}
}

func TestIntersectionSymmetry(t *testing.T) {
	vp := viewport.Default()

	pairs := [][2]curve.Curve{
		{curve.New(curve.Sin, curve.DefaultParams()), curve.New(curve.Cos, curve.DefaultParams())},
		{curve.New(curve.Parabola, curve.Params{A: 0.01, B: 0, C: -20}), curve.New(curve.Sin, curve.DefaultParams())},
		{curve.New(curve.Tan, curve.DefaultParams()), curve.New(curve.Exp, curve.Params{A: 1, B: 0.05})},
	}

	for _, pair := range pairs {
		f := NewTrace(pair[0], vp)
		g := NewTrace(pair[1], vp)

		fg := worldPoints(FindIntersections(f, g, vp))
		gf := worldPoints(FindIntersections(g, f, vp))

		if len(fg) != len(gf) {
			t.Errorf("%s/%s: expected the same number of crossings, got %d and %d", pair[0].Family, pair[1].Family, len(fg), len(gf))
			continue
		}
		for i := range fg {
			if math.Abs(fg[i].X-gf[i].X) > 1e-10 || math.Abs(fg[i].Y-gf[i].Y) > 1e-9 {
				t.Errorf("%s/%s: crossing %d differs: %v vs %v", pair[0].Family, pair[1].Family, i, fg[i], gf[i])
			}
		}
	}
}

func worldPoints(points []IntersectionPoint) []geometry.Vector2 {
	out := make([]geometry.Vector2, len(points))
	for i, p := range points {
		out[i] = p.World
	}
	sort.Slice(out, func(i, j int) bool { return out[i].X < out[j].X })
	return out
}

// Three equal readings in a row register two adjacent crossings. This is the
// literal product <= 0 behaviour and is kept as is.
func TestFlatTouchIsReportedTwice(t *testing.T) {
	vp := viewport.Viewport{Width: 5, Height: 100, Scale: 1}

	first := Trace{
		Curve:  curve.New(curve.Parabola, curve.Params{}),
		Points: []geometry.Pixel{{X: 0, Y: 10}, {X: 1, Y: 50}, {X: 2, Y: 50}, {X: 3, Y: 50}, {X: 4, Y: 10}},
	}
	second := Trace{
		Curve:  curve.New(curve.Parabola, curve.Params{}),
		Points: []geometry.Pixel{{X: 0, Y: 50}, {X: 1, Y: 50}, {X: 2, Y: 50}, {X: 3, Y: 50}, {X: 4, Y: 50}},
	}

	found := FindIntersections(first, second, vp)
	if len(found) != 4 {
		t.Fatalf("expected 4 crossings for a flat touch, got %d", len(found))
	}

	wantX := []int{0, 1, 2, 3}
	for i, p := range found {
		if p.Pixel.X != wantX[i] {
			t.Errorf("crossing %d: expected column %d, got %d", i, wantX[i], p.Pixel.X)
		}
	}
}

func TestFindAllSkipsConicsAndKeepsPairOrder(t *testing.T) {
	vp := viewport.Default()
	sin, zero := sineAndZero(vp)
	circle := Trace{
		Curve:  curve.New(curve.Circle, curve.DefaultParams()),
		Points: []geometry.Pixel{{X: 400, Y: 300}},
	}
	line := NewTrace(curve.New(curve.Parabola, curve.Params{A: 0, B: 0, C: 5}), vp)

	all := FindAll([]Trace{sin, circle, zero, line}, vp)

	var expected []IntersectionPoint
	expected = append(expected, FindIntersections(sin, zero, vp)...)
	expected = append(expected, FindIntersections(sin, line, vp)...)
	expected = append(expected, FindIntersections(zero, line, vp)...)

	if len(all) != len(expected) {
		t.Fatalf("FindAll failed: expected %d points, got %d", len(expected), len(all))
	}
	for i := range all {
		if all[i] != expected[i] {
			t.Fatalf("FindAll failed at %d: expected %v, got %v", i, expected[i], all[i])
		}
	}
}

func TestFindAllWithSingleTrace(t *testing.T) {
	vp := viewport.Default()
	sin, _ := sineAndZero(vp)

	if got := FindAll([]Trace{sin}, vp); len(got) != 0 {
		t.Errorf("expected no intersections for one trace, got %d", len(got))
	}
}
