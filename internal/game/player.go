package game

// Player is the defending ship. One instance per run.
type Player struct {
	Rect        Rect
	Speed       float64
	Lives       int
	InvulnTimer float64

	shootTimer float64
}

func NewPlayer() *Player {
	p := &Player{
		Speed: PlayerSpeed,
		Lives: PlayerLives,
	}
	p.Rect = Rect{W: PlayerWidth, H: PlayerHeight}
	p.ResetPosition()
	return p
}

// ResetPosition recenters the ship at its starting spot.
func (p *Player) ResetPosition() {
	p.Rect.X = CanvasWidth/2 - p.Rect.W/2
	p.Rect.Y = CanvasHeight - PlayerBottomPad - p.Rect.H
}

// Update applies horizontal movement and decays the shoot/invulnerability
// timers. Position is clamped to the canvas margins for any dt >= 0.
func (p *Player) Update(dt float64, in FrameInput) {
	move := 0.0
	if in.Left {
		move -= 1.0
	}
	if in.Right {
		move += 1.0
	}
	p.Rect.X += move * p.Speed * dt
	if p.Rect.X < PlayerEdgeMargin {
		p.Rect.X = PlayerEdgeMargin
	}
	if p.Rect.Right() > CanvasWidth-PlayerEdgeMargin {
		p.Rect.X = CanvasWidth - PlayerEdgeMargin - p.Rect.W
	}
	if p.shootTimer > 0 {
		p.shootTimer -= dt
		if p.shootTimer < 0 {
			p.shootTimer = 0
		}
	}
	if p.InvulnTimer > 0 {
		p.InvulnTimer -= dt
		if p.InvulnTimer < 0 {
			p.InvulnTimer = 0
		}
	}
}

// CanShoot reports whether the cooldown has elapsed and the active
// player bullet count is below the cap.
func (p *Player) CanShoot(activePlayerBullets int) bool {
	return p.shootTimer <= 0 && activePlayerBullets < PlayerMaxBullets
}

// Shoot resets the cooldown and returns a new upward bullet at the ship's nose.
func (p *Player) Shoot() Bullet {
	p.shootTimer = PlayerShootCooldown
	return NewBullet(p.Rect.CenterX(), p.Rect.Y-6, PlayerBulletSpeed, 1, true)
}

// Hit applies one hit to the ship. Returns false (no damage) while
// invulnerable or in god-mode; otherwise decrements lives, starts the
// invulnerability window and returns true.
func (p *Player) Hit(godMode bool) bool {
	if p.InvulnTimer > 0 || godMode {
		return false
	}
	p.Lives--
	p.InvulnTimer = PlayerInvulnTime
	return true
}
