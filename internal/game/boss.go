package game

// Boss is the periodic fly-by saucer. At most one is alive at a time.
type Boss struct {
	Rect  Rect
	Speed float64
	Alive bool
}

// NewBoss spawns the saucer off-screen left at its fixed altitude.
func NewBoss() *Boss {
	return &Boss{
		Rect:  Rect{X: -80, Y: BossAltitude, W: BossWidth, H: BossHeight},
		Speed: BossSpeed,
		Alive: true,
	}
}

// Update moves the saucer right; it dies once fully past the right edge.
func (b *Boss) Update(dt float64) {
	b.Rect.X += b.Speed * dt
	if b.Rect.X > CanvasWidth+40 {
		b.Alive = false
	}
}
