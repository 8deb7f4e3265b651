package game

import (
	"fmt"
	"os"
)

// Scene is the top-level game state.
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
	ScenePaused
	SceneGameOver
)

// FrameInput is the per-frame snapshot of player controls. Left/Right/
// Fire reflect held keys; the rest are edge-triggered (true only on the
// frame the key went down).
type FrameInput struct {
	Left, Right, Fire bool

	Confirm     bool // Enter
	Pause       bool // P
	Back        bool // Escape
	ToggleSound bool // S (menu only)

	DebugDump      bool // F1: wave diagnostics
	DebugGod       bool // F2: toggle invulnerability
	DebugClearWave bool // F3: force-clear the current wave
}

// Session owns all entity collections and drives the scene machine.
// Everything mutates on the single simulation goroutine, in the fixed
// per-frame order of updatePlaying.
type Session struct {
	Scene Scene
	Wave  int
	Score int

	ComboMult    float64
	lastKillTime float64
	now          float64 // accumulated PLAYING time, drives the combo window

	Player    *Player
	Bullets   []Bullet
	Particles *ParticleSystem
	Grid      *EnemyGrid
	Shields   *Shields
	Boss      *Boss

	nextBossIn float64 // counts down only while no boss is alive

	ShakeTimer     float64
	ShakeMag       float64
	shakeX, shakeY float64

	GodMode           bool
	QuitRequested     bool
	JustMadeHighscore bool

	Highscores HighscoreTable
	store      *HighscoreStore
	settings   *SettingsManager

	rng *Rand

	particleBuf []float32 // reused each frame
}

// NewSession loads the highscore table and prepares a run behind the
// menu. store and settings may be nil (degraded, memory-only).
func NewSession(seed uint64, store *HighscoreStore, settings *SettingsManager) *Session {
	s := &Session{
		Scene:     SceneMenu,
		store:     store,
		settings:  settings,
		rng:       NewRand(seed),
		Particles: NewParticleSystem(MaxParticles, splitmix64(seed^0xBEAD)),
	}
	s.Highscores = store.Load()
	s.StartNewGame()
	s.Scene = SceneMenu
	return s
}

// StartNewGame resets every collection for a fresh run at wave 1.
func (s *Session) StartNewGame() {
	s.Player = NewPlayer()
	s.Bullets = s.Bullets[:0]
	s.Particles.Clear()
	s.Shields = NewShields()
	s.Wave = 1
	s.Score = 0
	s.ComboMult = 0
	s.lastKillTime = -999
	s.now = 0
	s.Grid = NewEnemyGrid(s.Wave, s.rng)
	s.Boss = nil
	s.nextBossIn = s.rng.RangeF(BossCooldownMin, BossCooldownMax)
	s.ShakeTimer = 0
	s.ShakeMag = 0
	s.shakeX = 0
	s.shakeY = 0
	s.JustMadeHighscore = false
}

// nextWave replaces the grid wholesale. Shields persist across waves.
func (s *Session) nextWave() {
	s.Wave++
	s.Grid = NewEnemyGrid(s.Wave, s.rng)
	s.Bullets = s.Bullets[:0]
}

// Step advances the session by one frame. Only PLAYING runs simulation;
// the other scenes are static until a transition input arrives.
func (s *Session) Step(dt float64, in FrameInput) {
	if in.DebugGod {
		s.GodMode = !s.GodMode
		fmt.Fprintf(os.Stderr, "god-mode: %v\n", s.GodMode)
	}
	if in.DebugDump && s.Grid != nil {
		b, _ := s.Grid.Bounds()
		fmt.Fprintf(os.Stderr, "wave %d | enemies %d | speed %.1f | fire %.2f | bounds %+v\n",
			s.Wave, s.Grid.Alive(), s.Grid.Speed, s.Grid.FireRate, b)
	}

	switch s.Scene {
	case SceneMenu:
		if in.Back {
			s.QuitRequested = true
			return
		}
		if in.ToggleSound && s.settings != nil {
			s.settings.ToggleSound()
			PlaySound(SoundMenuSelect)
		}
		if in.Confirm {
			PlaySound(SoundMenuSelect)
			s.StartNewGame()
			s.Scene = ScenePlaying
		}

	case ScenePlaying:
		if in.Back || in.Pause {
			s.Scene = ScenePaused
			return
		}
		if in.DebugClearWave {
			s.Grid.Enemies = s.Grid.Enemies[:0]
		}
		s.updatePlaying(dt, in)

	case ScenePaused:
		if in.Back {
			s.QuitRequested = true
			return
		}
		if in.Confirm || in.Pause {
			s.Scene = ScenePlaying
		}

	case SceneGameOver:
		if in.Confirm || in.Back {
			s.Scene = SceneMenu
		}
	}
}

// updatePlaying is the fixed per-frame pipeline: input, entity updates,
// collisions, effects, wave progression, in that order.
func (s *Session) updatePlaying(dt float64, in FrameInput) {
	s.now += dt

	// Input -> player, then a possible shot.
	s.Player.Update(dt, in)
	if in.Fire && s.Player.CanShoot(countBullets(s.Bullets, true)) {
		s.Bullets = append(s.Bullets, s.Player.Shoot())
		PlaySound(SoundShoot)
	}

	// Enemy march and shot attempts.
	s.Grid.Update(dt)
	if b, ok := s.Grid.TryShot(countBullets(s.Bullets, false)); ok {
		s.Bullets = append(s.Bullets, b)
		PlaySound(SoundEnemyShoot)
	}

	// Boss: the spawn countdown ticks only while no boss is alive.
	if s.Boss == nil {
		s.nextBossIn -= dt
		if s.nextBossIn <= 0 {
			s.Boss = NewBoss()
		}
	} else {
		s.Boss.Update(dt)
		if !s.Boss.Alive {
			s.despawnBoss()
		}
	}

	// Advance and prune bullets.
	live := s.Bullets[:0]
	for i := range s.Bullets {
		b := s.Bullets[i]
		b.Update(dt)
		if b.Alive {
			live = append(live, b)
		}
	}
	s.Bullets = live

	s.resolveCollisions()

	// Render-only effects.
	s.updateShake(dt)
	s.Particles.Update(dt)

	// Wave clear.
	if s.Scene == ScenePlaying && s.Grid.Alive() == 0 {
		s.nextWave()
		PlaySound(SoundWaveClear)
	}
}

// despawnBoss clears the boss and restarts the spawn countdown.
func (s *Session) despawnBoss() {
	s.Boss = nil
	s.nextBossIn = s.rng.RangeF(BossCooldownMin, BossCooldownMax)
}

// addShake triggers screen shake; a stronger request extends the magnitude.
func (s *Session) addShake(amount float64) {
	s.ShakeTimer = ShakeDuration
	if amount > s.ShakeMag {
		s.ShakeMag = amount
	}
}

func (s *Session) updateShake(dt float64) {
	if s.ShakeTimer <= 0 {
		s.shakeX = 0
		s.shakeY = 0
		s.ShakeMag = 0
		return
	}
	s.ShakeTimer -= dt
	s.ShakeMag -= ShakeDecay * dt
	if s.ShakeTimer <= 0 || s.ShakeMag <= 0 {
		s.ShakeTimer = 0
		s.ShakeMag = 0
		s.shakeX = 0
		s.shakeY = 0
		return
	}
	s.shakeX = s.rng.RangeF(-s.ShakeMag, s.ShakeMag)
	s.shakeY = s.rng.RangeF(-s.ShakeMag, s.ShakeMag)
}

// ShakeOffset is the current render-only positional offset. It never
// affects collision geometry.
func (s *Session) ShakeOffset() (float64, float64) {
	return s.shakeX, s.shakeY
}
