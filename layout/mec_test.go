package layout_test

import (
	"math"
	"testing"

	"github.com/cyberfrontiers/jump/layout"
)

const tolerance = 1e-9

// almostEqualPoint compares points within floating-point tolerance.
func almostEqualPoint(a, b layout.Point) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

// almostEqualCircle compares circles within floating-point tolerance.
func almostEqualCircle(a, b layout.Circle) bool {
	return almostEqualPoint(a.Center, b.Center) && math.Abs(a.Radius-b.Radius) < tolerance
}

//----------------------------------------------------------------------------//
// Point and Circle Tests
//----------------------------------------------------------------------------//

// TestPoint_Arithmetic checks the vector operations.
func TestPoint_Arithmetic(t *testing.T) {
	x := layout.Point{X: 1, Y: 0.5}
	y := layout.Point{X: 2, Y: 1}
	z := layout.Point{X: 3, Y: 1.5}

	if got := x.Add(y); !almostEqualPoint(got, z) {
		t.Errorf("Add = %v; want %v", got, z)
	}
	if got := z.Sub(x); !almostEqualPoint(got, y) {
		t.Errorf("Sub = %v; want %v", got, y)
	}
	if got := x.Scale(2); !almostEqualPoint(got, y) {
		t.Errorf("Scale = %v; want %v", got, y)
	}
	if got := z.Div(3); !almostEqualPoint(got, x) {
		t.Errorf("Div = %v; want %v", got, x)
	}

	if got := layout.Dot(x, y); got != 2.5 {
		t.Errorf("Dot = %v; want 2.5", got)
	}
	if got := layout.Det(x, y); got != 0 {
		t.Errorf("Det = %v; want 0", got)
	}
	if got := layout.Dist(x, y); got != x.Mag() {
		t.Errorf("Dist = %v; want %v", got, x.Mag())
	}
	if got := layout.MidPoint(x, z); !almostEqualPoint(got, y) {
		t.Errorf("MidPoint = %v; want %v", got, y)
	}
}

// TestCircle_Measures checks the derived circle quantities.
func TestCircle_Measures(t *testing.T) {
	c := layout.Circle{Center: layout.Point{X: 1, Y: 2}, Radius: 2}

	if !c.Contains(layout.Point{X: 0.5, Y: 0.5}) {
		t.Error("Contains(interior point) = false")
	}
	if c.Contains(layout.Point{X: 4, Y: 2}) {
		t.Error("Contains(exterior point) = true")
	}
	if !c.Contains(layout.Point{X: 3, Y: 2}) {
		t.Error("Contains(boundary point) = false")
	}

	if c.Diameter() != 4 {
		t.Errorf("Diameter = %v; want 4", c.Diameter())
	}
	if c.RadiusSquared() != 4 {
		t.Errorf("RadiusSquared = %v; want 4", c.RadiusSquared())
	}
	if c.Circumference() != 4*math.Pi {
		t.Errorf("Circumference = %v; want 4π", c.Circumference())
	}
	if c.Area() != 4*math.Pi {
		t.Errorf("Area = %v; want 4π", c.Area())
	}
}

//----------------------------------------------------------------------------//
// Minimum Enclosing Circle Tests
//----------------------------------------------------------------------------//

// TestMinEnclosingCircle_Small covers the degenerate and trivial inputs.
func TestMinEnclosingCircle_Small(t *testing.T) {
	if got := layout.MinEnclosingCircle(nil); !almostEqualCircle(got, layout.Circle{}) {
		t.Errorf("MEC(nil) = %v; want zero circle", got)
	}

	p := layout.Point{X: 3, Y: -4}
	if got := layout.MinEnclosingCircle([]layout.Point{p}); !almostEqualCircle(got, layout.Circle{Center: p}) {
		t.Errorf("MEC(single) = %v; want point circle", got)
	}

	// two points: the segment is the diameter
	got := layout.MinEnclosingCircle([]layout.Point{{X: -1, Y: 0}, {X: 1, Y: 0}})
	want := layout.Circle{Radius: 1}
	if !almostEqualCircle(got, want) {
		t.Errorf("MEC(pair) = %v; want unit circle", got)
	}
}

// TestMinEnclosingCircle_Unit: classic configurations whose MEC is the unit
// circle, regardless of the randomized processing order.
func TestMinEnclosingCircle_Unit(t *testing.T) {
	w := layout.Point{X: -1, Y: 0}
	x := layout.Point{X: 1, Y: 0}
	y := layout.Point{X: 0, Y: 1}
	z := layout.Point{X: 0, Y: 0}
	unit := layout.Circle{Radius: 1}

	cases := [][]layout.Point{
		{w, x, y},
		{y, x, w},
		{w, x, y, z},
		{z, y, x, w},
	}
	for _, pts := range cases {
		for run := 0; run < 10; run++ { // algorithm shuffles internally
			if got := layout.MinEnclosingCircle(pts); !almostEqualCircle(got, unit) {
				t.Fatalf("MEC(%v) = %v; want unit circle", pts, got)
			}
		}
	}
}

// TestMinEnclosingCircle_ThreeBoundary: a right triangle whose MEC is the
// circumscribed circle.
func TestMinEnclosingCircle_ThreeBoundary(t *testing.T) {
	pts := []layout.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	want := layout.Circle{Center: layout.Point{X: 0.5, Y: 0.5}, Radius: math.Sqrt2 / 2}

	if got := layout.MinEnclosingCircle(pts); !almostEqualCircle(got, want) {
		t.Errorf("MEC = %v; want %v", got, want)
	}
}

// TestMinEnclosingCircle_Cloud: a known five-point cloud with MEC centered
// at (1,1) radius 5, and the containment invariant on every input point.
func TestMinEnclosingCircle_Cloud(t *testing.T) {
	pts := []layout.Point{
		{X: 5, Y: -2},
		{X: -3, Y: -2},
		{X: -2, Y: 5},
		{X: 1, Y: 6},
		{X: 0, Y: 2},
	}
	want := layout.Circle{Center: layout.Point{X: 1, Y: 1}, Radius: 5}

	got := layout.MinEnclosingCircle(pts)
	if !almostEqualCircle(got, want) {
		t.Errorf("MEC = %v; want %v", got, want)
	}
	for _, p := range pts {
		if !got.Contains(p) {
			t.Errorf("MEC does not contain input point %v", p)
		}
	}
}

// TestMinEnclosingCircle_InputUntouched: the input slice order is preserved.
func TestMinEnclosingCircle_InputUntouched(t *testing.T) {
	pts := []layout.Point{{X: 5, Y: -2}, {X: -3, Y: -2}, {X: -2, Y: 5}}
	snapshot := append([]layout.Point(nil), pts...)

	_ = layout.MinEnclosingCircle(pts)

	for i := range pts {
		if pts[i] != snapshot[i] {
			t.Fatalf("input mutated at %d: %v; want %v", i, pts[i], snapshot[i])
		}
	}
}
