package game

import "testing"

func TestBossCrossesAndExpires(t *testing.T) {
	b := NewBoss()
	if b.Rect.X >= 0 {
		t.Fatalf("boss should spawn off the left edge, X=%v", b.Rect.X)
	}
	if b.Rect.Y != BossAltitude {
		t.Fatalf("boss altitude: got %v, want %v", b.Rect.Y, float64(BossAltitude))
	}
	if !b.Alive {
		t.Fatal("fresh boss should be alive")
	}

	x0 := b.Rect.X
	b.Update(1.0 / 60)
	if b.Rect.X <= x0 {
		t.Fatal("boss should fly right")
	}

	for i := 0; i < 60*10 && b.Alive; i++ {
		b.Update(1.0 / 60)
	}
	if b.Alive {
		t.Fatal("boss never left the canvas")
	}
	if b.Rect.X <= CanvasWidth {
		t.Fatalf("boss expired while still on canvas, X=%v", b.Rect.X)
	}
}
