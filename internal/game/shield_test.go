package game

import "testing"

func TestShieldLayout(t *testing.T) {
	s := NewShields()
	perCluster := ShieldSegRows*ShieldSegCols - 2 // arch cutout
	if got, want := len(s.Pieces), ShieldCount*perCluster; got != want {
		t.Fatalf("piece count: got %d, want %d", got, want)
	}
	for i := range s.Pieces {
		p := s.Pieces[i]
		if p.HP != ShieldSegHP {
			t.Fatalf("piece %d HP = %d, want %d", i, p.HP, ShieldSegHP)
		}
		if p.Rect.Y < ShieldBaseY || p.Rect.Bottom() > ShieldBaseY+ShieldSegRows*ShieldSegSize {
			t.Fatalf("piece %d outside vertical band: %+v", i, p.Rect)
		}
	}
}

func TestShieldAbsorbsAndCrumbles(t *testing.T) {
	s := NewShields()
	target := s.Pieces[0].Rect
	total := len(s.Pieces)

	hit := func() bool {
		b := NewBullet(target.CenterX(), target.CenterY(), EnemyBulletSpeed, 1, false)
		return s.CollideBullet(&b)
	}

	for i := 0; i < ShieldSegHP; i++ {
		if !hit() {
			t.Fatalf("hit %d not absorbed", i)
		}
	}
	if len(s.Pieces) != total-1 {
		t.Fatalf("piece not removed after %d hits: %d pieces left", ShieldSegHP, len(s.Pieces))
	}
}

func TestShieldMissesBulletOutside(t *testing.T) {
	s := NewShields()
	b := NewBullet(CanvasWidth/2, 10, EnemyBulletSpeed, 1, false)
	if s.CollideBullet(&b) {
		t.Fatal("bullet far above the shields was absorbed")
	}
}

func TestShieldBlocksBothSides(t *testing.T) {
	s := NewShields()
	target := s.Pieces[0].Rect

	up := NewBullet(target.CenterX(), target.CenterY(), PlayerBulletSpeed, 1, true)
	if !s.CollideBullet(&up) {
		t.Fatal("player bullet should be blocked")
	}
	down := NewBullet(target.CenterX(), target.CenterY(), EnemyBulletSpeed, 1, false)
	if !s.CollideBullet(&down) {
		t.Fatal("enemy bullet should be blocked")
	}
}
