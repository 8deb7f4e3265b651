package game

import "testing"

func TestRandReproducible(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)
	for i := 0; i < 1000; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 10000; i++ {
		if v := r.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) = %d", v)
		}
		if v := r.Range(3, 9); v < 3 || v > 9 {
			t.Fatalf("Range(3,9) = %d", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v", v)
		}
		if v := r.RangeF(-2.5, 4.5); v < -2.5 || v >= 4.5 {
			t.Fatalf("RangeF(-2.5,4.5) = %v", v)
		}
	}
}

func TestClamps(t *testing.T) {
	if clamp(5, 0, 3) != 3 || clamp(-1, 0, 3) != 0 || clamp(2, 0, 3) != 2 {
		t.Error("clamp")
	}
	if clampF(1.5, 0, 1) != 1 || clampF(-0.5, 0, 1) != 0 || clampF(0.3, 0, 1) != 0.3 {
		t.Error("clampF")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		b    Rect
		want bool
	}{
		{Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{Rect{X: 10, Y: 0, W: 10, H: 10}, false}, // touching edges don't overlap
		{Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{Rect{X: -5, Y: -5, W: 6, H: 6}, true},
		{Rect{X: 20, Y: 20, W: 1, H: 1}, false},
	}
	for _, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Errorf("Intersects(%+v) = %v, want %v", c.b, got, c.want)
		}
		if got := c.b.Intersects(a); got != c.want {
			t.Errorf("symmetry broken for %+v", c.b)
		}
	}
}

func TestRectCentered(t *testing.T) {
	r := RectCentered(10, 20, 4, 6)
	if r.CenterX() != 10 || r.CenterY() != 20 || r.W != 4 || r.H != 6 {
		t.Errorf("RectCentered: %+v", r)
	}
}
