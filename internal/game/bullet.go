package game

// Bullet is a vertically moving projectile owned by either side.
type Bullet struct {
	Rect       Rect
	VY         float64
	Damage     int
	FromPlayer bool
	Alive      bool
}

// NewBullet spawns a bullet whose top-center sits at (x, y).
func NewBullet(x, y, vy float64, damage int, fromPlayer bool) Bullet {
	return Bullet{
		Rect:       Rect{X: x - BulletWidth/2, Y: y - BulletHeight/2, W: BulletWidth, H: BulletHeight},
		VY:         vy,
		Damage:     damage,
		FromPlayer: fromPlayer,
		Alive:      true,
	}
}

// Update advances the bullet and kills it once fully off-canvas.
func (b *Bullet) Update(dt float64) {
	b.Rect.Y += b.VY * dt
	if b.Rect.Bottom() < 0 || b.Rect.Y > CanvasHeight {
		b.Alive = false
	}
}

func countBullets(bullets []Bullet, fromPlayer bool) int {
	n := 0
	for i := range bullets {
		if bullets[i].FromPlayer == fromPlayer {
			n++
		}
	}
	return n
}
