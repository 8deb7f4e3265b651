package game

// Logical canvas (all positions are in these units).
const (
	CanvasWidth  = 800
	CanvasHeight = 600
	TargetFPS    = 60
)

// HardMode stiffens a handful of tuning values across the board.
const HardMode = false

func hardF(base, hard float64) float64 {
	if HardMode {
		return hard
	}
	return base
}

func hardI(base, hard int) int {
	if HardMode {
		return hard
	}
	return base
}

// Player tuning.
var (
	PlayerSpeed         = hardF(300.0, 360.0) // px/sec
	PlayerShootCooldown = hardF(0.25, 0.20)   // seconds
	PlayerMaxBullets    = hardI(3, 4)
)

const (
	PlayerWidth      = 50
	PlayerHeight     = 30
	PlayerLives      = 3
	PlayerEdgeMargin = 10  // min distance to canvas sides
	PlayerInvulnTime = 1.5 // seconds after taking a hit
	PlayerBottomPad  = 30  // ship bottom sits this far above the canvas floor
)

// Enemy grid tuning.
var (
	EnemyStartSpeed = hardF(72.0, 86.4)  // px/sec at wave 1
	EnemyFireRate   = hardF(0.28, 0.336) // shots/sec baseline at wave 1
	EnemyMaxBullets = hardI(6, 7)
)

const (
	EnemyRows       = 6
	EnemyCols       = 8
	EnemyWidth      = 44
	EnemyHeight     = 28
	EnemyStartX     = 60
	EnemyStartY     = 70
	EnemySpacingX   = 70
	EnemySpacingY   = 50
	EnemyStepDown   = 20 // vertical drop on edge reversal
	EnemyEdgeMargin = 20 // horizontal bound margin
	EnemyBreachY    = CanvasHeight - 50
)

// Boss fly-by.
const (
	BossCooldownMin = 20.0 // seconds, uniform draw lower bound
	BossCooldownMax = 30.0 // exclusive upper bound
	BossSpeed       = 200.0
	BossWidth       = 60
	BossHeight      = 24
	BossAltitude    = 50
	BossPoints      = 100
)

// Bullets.
const (
	PlayerBulletSpeed = -500.0
	EnemyBulletSpeed  = 300.0
	BulletWidth       = 4
	BulletHeight      = 12
)

// Shields: 4 clusters of a 3x6 piece pattern with an arch cutout.
const (
	ShieldCount   = 4
	ShieldSegRows = 3
	ShieldSegCols = 6
	ShieldSegSize = 12
	ShieldSegHP   = 3
	ShieldMarginX = 80
	ShieldBaseY   = CanvasHeight - 180
)

// Wave difficulty scaling, compounding per wave.
const (
	WaveSpeedMult = 1.10
	WaveFireMult  = 1.05
)

// Combo scoring.
const (
	ComboWindow = 1.0 // seconds between kills to sustain the combo
	ComboStep   = 0.1
)

// Screen shake.
const (
	ShakeDuration = 0.28
	ShakeDecay    = 60.0 // magnitude units/sec
)

// Particles.
const MaxParticles = 2000
