package game

import "testing"

func TestPlayerClampedToMargins(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 600; i++ {
		p.Update(1.0/60, FrameInput{Left: true})
	}
	if p.Rect.X != PlayerEdgeMargin {
		t.Fatalf("left clamp: got X=%v, want %v", p.Rect.X, float64(PlayerEdgeMargin))
	}
	for i := 0; i < 600; i++ {
		p.Update(1.0/60, FrameInput{Right: true})
	}
	if got, want := p.Rect.Right(), float64(CanvasWidth-PlayerEdgeMargin); got != want {
		t.Fatalf("right clamp: got Right=%v, want %v", got, want)
	}
	// A huge dt must still land inside the margins.
	p.Update(10, FrameInput{Left: true})
	if p.Rect.X < PlayerEdgeMargin {
		t.Fatalf("large dt escaped left margin: X=%v", p.Rect.X)
	}
}

func TestPlayerShootCooldownAndCap(t *testing.T) {
	p := NewPlayer()
	if !p.CanShoot(0) {
		t.Fatal("fresh player should be able to shoot")
	}
	b := p.Shoot()
	if !b.FromPlayer || b.VY >= 0 {
		t.Fatalf("player bullet should travel upward: %+v", b)
	}
	if p.CanShoot(0) {
		t.Fatal("cooldown should block an immediate second shot")
	}
	p.Update(PlayerShootCooldown+0.01, FrameInput{})
	if !p.CanShoot(0) {
		t.Fatal("cooldown elapsed, shot should be allowed")
	}
	if p.CanShoot(PlayerMaxBullets) {
		t.Fatalf("bullet cap %d should block the shot", PlayerMaxBullets)
	}
	if !p.CanShoot(PlayerMaxBullets - 1) {
		t.Fatal("one below the cap should be allowed")
	}
}

func TestPlayerHitAndInvulnerability(t *testing.T) {
	p := NewPlayer()
	if !p.Hit(false) {
		t.Fatal("first hit should land")
	}
	if p.Lives != PlayerLives-1 {
		t.Fatalf("lives: got %d, want %d", p.Lives, PlayerLives-1)
	}
	if p.Hit(false) {
		t.Fatal("hit during invulnerability should be ignored")
	}
	if p.Lives != PlayerLives-1 {
		t.Fatalf("lives changed during invulnerability: %d", p.Lives)
	}
	p.Update(PlayerInvulnTime+0.01, FrameInput{})
	if p.InvulnTimer != 0 {
		t.Fatalf("invuln timer should floor at 0, got %v", p.InvulnTimer)
	}
	if !p.Hit(false) {
		t.Fatal("hit after invulnerability expired should land")
	}
}

func TestPlayerGodModeBlocksDamage(t *testing.T) {
	p := NewPlayer()
	if p.Hit(true) {
		t.Fatal("god-mode hit should be ignored")
	}
	if p.Lives != PlayerLives || p.InvulnTimer != 0 {
		t.Fatalf("god-mode hit mutated state: lives=%d invuln=%v", p.Lives, p.InvulnTimer)
	}
}
