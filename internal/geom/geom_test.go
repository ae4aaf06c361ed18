package geom

import "testing"

func TestToCellFloors(t *testing.T) {
	tests := []struct {
		in   Point
		want Point
	}{
		{Point{0, 0}, Point{0, 0}},
		{Point{31, 31}, Point{0, 0}},
		{Point{32, 64}, Point{1, 2}},
		{Point{-1, -33}, Point{-1, -2}},
	}

	for _, tt := range tests {
		if got := tt.in.ToCell(); got != tt.want {
			t.Errorf("%v.ToCell() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 4, H: 4}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 2, Y: 2, W: 4, H: 4}, true},
		{"touching edge", Rect{X: 4, Y: 0, W: 4, H: 4}, false},
		{"apart", Rect{X: 10, Y: 10, W: 2, H: 2}, false},
		{"inside", Rect{X: 1, Y: 1, W: 1, H: 1}, true},
	}

	for _, tt := range tests {
		if got := a.Intersects(tt.other); got != tt.want {
			t.Errorf("%s: Intersects() = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Intersects(a); got != tt.want {
			t.Errorf("%s: Intersects() not symmetric", tt.name)
		}
	}
}

func TestRectExpandAndCenter(t *testing.T) {
	r := Rect{X: 5, Y: 6, W: 4, H: 5}
	e := r.Expand(1)
	if e != (Rect{X: 4, Y: 5, W: 6, H: 7}) {
		t.Errorf("Expand(1) = %+v", e)
	}
	if c := r.Center(); c != (Point{7, 8}) {
		t.Errorf("Center() = %v, want (7,8)", c)
	}
	if !r.Contains(Point{8, 10}) || r.Contains(Point{9, 10}) {
		t.Error("Contains() should be half-open")
	}
}

func TestCirclesOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 32, H: 32}
	b := Rect{X: 100, Y: 0, W: 32, H: 32}

	if !CirclesOverlap(a, 60, b, 40) {
		t.Error("circles at distance 100 with radii 60+40 should touch")
	}
	if CirclesOverlap(a, 59, b, 40) {
		t.Error("circles at distance 100 with radii 59+40 should not touch")
	}
	// Diagonal distance uses Euclidean metric, not Chebyshev.
	c := Rect{X: 60, Y: 60, W: 32, H: 32}
	if CirclesOverlap(a, 40, c, 40) {
		t.Error("diagonal distance ~84.8 should exceed radii 80")
	}
}
