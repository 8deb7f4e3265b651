package game

import "sort"

// EnemyType determines hp, point value and colour.
type EnemyType uint8

const (
	EnemyCommon EnemyType = iota
	EnemyTough
	EnemyShooter
)

// enemyTypeFor maps a uniform [0,1) roll to a type using cumulative
// thresholds: 5% shooter, next 25% tough, remainder common.
func enemyTypeFor(roll float64) EnemyType {
	switch {
	case roll < 0.05:
		return EnemyShooter
	case roll < 0.30:
		return EnemyTough
	default:
		return EnemyCommon
	}
}

// Enemy is one invader in the grid. HP > 0 while present.
type Enemy struct {
	Rect     Rect
	Type     EnemyType
	HP       int
	Points   int
	Color    RGB
	HitFlash float64
}

func NewEnemy(x, y float64, t EnemyType) Enemy {
	e := Enemy{
		Rect: Rect{X: x, Y: y, W: EnemyWidth, H: EnemyHeight},
		Type: t,
	}
	switch t {
	case EnemyTough:
		e.HP = 2
		e.Points = 20
		e.Color = Palette.EnemyTough
	case EnemyShooter:
		e.HP = 1
		e.Points = 30
		e.Color = Palette.EnemyShooter
	default:
		e.HP = 1
		e.Points = 10
		e.Color = Palette.EnemyCommon
	}
	return e
}

// TakeDamage applies dmg and briefly flashes the sprite.
// Returns true when the enemy is dead.
func (e *Enemy) TakeDamage(dmg int) bool {
	e.HP -= dmg
	e.HitFlash = 0.1
	return e.HP <= 0
}

// EnemyGrid owns the marching invader formation for one wave.
type EnemyGrid struct {
	Enemies  []Enemy
	Dir      float64 // -1 or +1
	Speed    float64
	FireRate float64

	rng *Rand
}

// NewEnemyGrid lays out rows x cols of enemies for the given wave.
// Speed and fire rate compound geometrically per wave.
func NewEnemyGrid(wave int, rng *Rand) *EnemyGrid {
	g := &EnemyGrid{
		Enemies:  make([]Enemy, 0, EnemyRows*EnemyCols),
		Dir:      1,
		Speed:    EnemyStartSpeed * powN(WaveSpeedMult, wave-1),
		FireRate: EnemyFireRate * powN(WaveFireMult, wave-1),
		rng:      rng,
	}
	for row := 0; row < EnemyRows; row++ {
		for col := 0; col < EnemyCols; col++ {
			t := enemyTypeFor(rng.Float64())
			x := float64(EnemyStartX + col*EnemySpacingX)
			y := float64(EnemyStartY + row*EnemySpacingY)
			g.Enemies = append(g.Enemies, NewEnemy(x, y, t))
		}
	}
	return g
}

// powN computes base^n for small non-negative n without math.Pow drift.
func powN(base float64, n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= base
	}
	return v
}

func (g *EnemyGrid) Alive() int { return len(g.Enemies) }

// Bounds returns the union box of all enemies; ok is false when empty.
func (g *EnemyGrid) Bounds() (Rect, bool) {
	if len(g.Enemies) == 0 {
		return Rect{}, false
	}
	left := g.Enemies[0].Rect.X
	right := g.Enemies[0].Rect.Right()
	top := g.Enemies[0].Rect.Y
	bottom := g.Enemies[0].Rect.Bottom()
	for i := 1; i < len(g.Enemies); i++ {
		r := g.Enemies[i].Rect
		if r.X < left {
			left = r.X
		}
		if r.Right() > right {
			right = r.Right()
		}
		if r.Y < top {
			top = r.Y
		}
		if r.Bottom() > bottom {
			bottom = r.Bottom()
		}
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}, true
}

// Update marches the formation horizontally, speeding up as enemies are
// depleted, and on hitting a horizontal bound reverses direction and
// steps every enemy down by a fixed amount.
func (g *EnemyGrid) Update(dt float64) {
	aliveFrac := float64(g.Alive()) / float64(EnemyRows*EnemyCols)
	accel := 1.0 + 0.6*(1.0-aliveFrac)
	dx := g.Dir * g.Speed * accel * dt
	for i := range g.Enemies {
		g.Enemies[i].Rect.X += dx
		if g.Enemies[i].HitFlash > 0 {
			g.Enemies[i].HitFlash -= dt
		}
	}
	b, ok := g.Bounds()
	if !ok {
		return
	}
	hitEdge := (b.X <= EnemyEdgeMargin && g.Dir < 0) || (b.Right() >= CanvasWidth-EnemyEdgeMargin && g.Dir > 0)
	if hitEdge {
		g.Dir *= -1
		for i := range g.Enemies {
			g.Enemies[i].Rect.Y += EnemyStepDown
		}
	}
}

// Remove drops the enemy at index i, compacting the collection.
func (g *EnemyGrid) Remove(i int) {
	g.Enemies = append(g.Enemies[:i], g.Enemies[i+1:]...)
}

// eligibleShooters picks the bottom-most enemy per column bucket
// (derived from x-position over the column spacing).
func (g *EnemyGrid) eligibleShooters() []*Enemy {
	byCol := make(map[int]*Enemy)
	for i := range g.Enemies {
		e := &g.Enemies[i]
		col := int(e.Rect.CenterX()) / EnemySpacingX
		if cur, ok := byCol[col]; !ok || e.Rect.Bottom() > cur.Rect.Bottom() {
			byCol[col] = e
		}
	}
	// Stable column order keeps shooter selection reproducible per seed.
	cols := make([]int, 0, len(byCol))
	for c := range byCol {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	out := make([]*Enemy, 0, len(cols))
	for _, c := range cols {
		out = append(out, byCol[c])
	}
	return out
}

// TryShot may spawn one downward bullet from a random eligible shooter.
// No-op when the enemy bullet cap is reached or the grid is empty.
// The draw probability is fireRate/TargetFPS per call, which ties
// enemy aggressiveness to the 60 Hz tick rate.
func (g *EnemyGrid) TryShot(activeEnemyBullets int) (Bullet, bool) {
	if activeEnemyBullets >= EnemyMaxBullets || g.Alive() == 0 {
		return Bullet{}, false
	}
	shooters := g.eligibleShooters()
	if len(shooters) == 0 {
		return Bullet{}, false
	}
	if g.rng.Float64() >= g.FireRate/TargetFPS {
		return Bullet{}, false
	}
	s := shooters[g.rng.Intn(len(shooters))]
	return NewBullet(s.Rect.CenterX(), s.Rect.Bottom()+6, EnemyBulletSpeed, 1, false), true
}
