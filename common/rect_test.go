package common

import "testing"

func TestRectIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"touching_edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, true},
		{"apart", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"empty", Rect{0, 0, 0, 10}, Rect{0, 0, 10, 10}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Intersects(c.b); got != c.want {
				t.Fatalf("Intersects = %v, want %v", got, c.want)
			}
			if got := c.b.Intersects(c.a); got != c.want {
				t.Fatalf("Intersects not symmetric")
			}
		})
	}
}

func TestRectContainsIsStrict(t *testing.T) {
	r := Rect{X: 150, Y: 100, W: 333, H: 119}
	if r.Contains(150, 150) {
		t.Fatalf("left border must not be inside")
	}
	if !r.Contains(151, 101) {
		t.Fatalf("interior point should be inside")
	}
	if r.Contains(483, 150) {
		t.Fatalf("right border must not be inside")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("got %d", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Fatalf("got %d", got)
	}
	if got := Clamp(5, 0, -3); got != 0 {
		t.Fatalf("lower bound should win, got %d", got)
	}
}
