package game

import (
	"math"
	"time"
)

// resolveCollisions cross-checks all entity collections once per frame,
// after movement. First match wins per bullet, in this order: shields,
// boss, enemies for player bullets; shields, player for enemy bullets;
// then enemy/player overlap and the breach line.
func (s *Session) resolveCollisions() {
	// Player bullets.
	for bi := range s.Bullets {
		b := &s.Bullets[bi]
		if !b.FromPlayer || !b.Alive {
			continue
		}
		if s.Shields.CollideBullet(b) {
			b.Alive = false
			continue
		}
		if s.Boss != nil && b.Rect.Intersects(s.Boss.Rect) {
			s.ScoreAdd(BossPoints)
			s.Particles.SpawnBurst(s.Boss.Rect.CenterX(), s.Boss.Rect.CenterY(), Palette.Boss)
			s.despawnBoss()
			b.Alive = false
			PlaySound(SoundExplosion)
			continue
		}
		for ei := range s.Grid.Enemies {
			e := &s.Grid.Enemies[ei]
			if e.Rect.Intersects(b.Rect) {
				dead := e.TakeDamage(b.Damage)
				s.Particles.SpawnBurst(b.Rect.CenterX(), b.Rect.CenterY(), e.Color)
				b.Alive = false
				if dead {
					points := e.Points
					s.Grid.Remove(ei)
					s.ScoreAdd(points)
					PlaySound(SoundExplosion)
				}
				break
			}
		}
	}

	// Enemy bullets.
	for bi := range s.Bullets {
		b := &s.Bullets[bi]
		if b.FromPlayer || !b.Alive {
			continue
		}
		if s.Shields.CollideBullet(b) {
			b.Alive = false
			continue
		}
		if b.Rect.Intersects(s.Player.Rect) {
			if s.Player.Hit(s.GodMode) {
				s.addShake(10)
				PlaySound(SoundHurt)
			}
			b.Alive = false
			if s.Player.Lives <= 0 && !s.GodMode {
				s.gameOver()
			}
		}
	}

	// Drop consumed bullets.
	live := s.Bullets[:0]
	for i := range s.Bullets {
		if s.Bullets[i].Alive {
			live = append(live, s.Bullets[i])
		}
	}
	s.Bullets = live

	// Enemy overlapping the ship, or crossing the breach line: the whole
	// wave regenerates at the same wave number.
	for i := range s.Grid.Enemies {
		e := &s.Grid.Enemies[i]
		if e.Rect.Intersects(s.Player.Rect) || e.Rect.Bottom() >= EnemyBreachY {
			if s.Player.Hit(s.GodMode) {
				s.addShake(12)
				PlaySound(SoundHurt)
			}
			s.Grid = NewEnemyGrid(s.Wave, s.rng)
			s.Bullets = s.Bullets[:0]
			s.Player.ResetPosition()
			if s.Player.Lives <= 0 && !s.GodMode {
				s.gameOver()
			}
			break
		}
	}
}

// ScoreAdd awards base points through the combo multiplier: a kill
// within ComboWindow of the previous one grows the multiplier by
// ComboStep (uncapped); a gap resets it before the award.
func (s *Session) ScoreAdd(base int) {
	if s.now-s.lastKillTime <= ComboWindow {
		s.ComboMult += ComboStep
	} else {
		s.ComboMult = 0
	}
	s.lastKillTime = s.now
	s.Score += int(math.Round(float64(base) * (1.0 + s.ComboMult)))
}

// gameOver merges the run's score into the top-5 table, persists it and
// transitions to GAME_OVER.
func (s *Session) gameOver() {
	old := s.Highscores
	merged := mergeScore(old.Top, s.Score)
	s.JustMadeHighscore = false
	for _, v := range merged {
		if v == s.Score {
			s.JustMadeHighscore = !old.Contains(s.Score)
			break
		}
	}
	s.Highscores = HighscoreTable{Top: merged, LastUpdated: time.Now().UTC()}
	s.store.Save(s.Highscores)
	if s.JustMadeHighscore {
		PlaySound(SoundHighscore)
	}
	PlaySound(SoundGameOver)
	s.Scene = SceneGameOver
}
