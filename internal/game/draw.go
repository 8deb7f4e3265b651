package game

// DrawScene renders the current scene. fbW/fbH is the framebuffer size in
// device pixels, used for point sprite scaling on hidpi displays.
func (s *Session) DrawScene(r *Renderer, fbW, fbH int) {
	r.BeginFrame(fbW, fbH)

	ox, oy := 0.0, 0.0
	if s.Scene == ScenePlaying || s.Scene == ScenePaused {
		ox, oy = s.ShakeOffset()
	}

	switch s.Scene {
	case SceneMenu:
		s.drawMenu(r)
	case ScenePlaying:
		s.drawGame(r, ox, oy, fbW)
		s.drawHUD(r)
	case ScenePaused:
		s.drawGame(r, ox, oy, fbW)
		s.drawHUD(r)
		s.drawPauseOverlay(r)
	case SceneGameOver:
		s.drawGame(r, ox, oy, fbW)
		s.drawGameOverOverlay(r)
	}

	r.FlushRects()
	r.FlushText()
}

func (s *Session) drawGame(r *Renderer, ox, oy float64, fbW int) {
	for _, p := range s.Shields.Pieces {
		col := Palette.Shield
		if p.HP < 2 {
			col = Palette.ShieldDamaged
		}
		r.Rect(p.Rect, ox, oy, col, 1)
	}

	for i := range s.Grid.Enemies {
		e := &s.Grid.Enemies[i]
		col := e.Color
		if e.HitFlash > 0 {
			col = Palette.White
		}
		r.Rect(e.Rect, ox, oy, col, 1)
		// Eyes.
		eyeY := e.Rect.CenterY() - 4
		r.Rect(Rect{X: e.Rect.X + 8, Y: eyeY, W: 6, H: 6}, ox, oy, Palette.Background, 1)
		r.Rect(Rect{X: e.Rect.Right() - 14, Y: eyeY, W: 6, H: 6}, ox, oy, Palette.Background, 1)
	}

	if s.Boss != nil {
		r.Rect(s.Boss.Rect, ox, oy, Palette.Boss, 1)
		inset := s.Boss.Rect
		inset.X += 15
		inset.Y += 6
		inset.W -= 30
		inset.H -= 12
		r.Rect(inset, ox, oy, Palette.Background, 1)
	}

	for i := range s.Bullets {
		b := &s.Bullets[i]
		col := Palette.BulletEnemy
		if b.FromPlayer {
			col = Palette.BulletPlayer
		}
		r.Rect(b.Rect, ox, oy, col, 1)
	}

	s.drawPlayer(r, ox, oy)

	r.FlushRects()
	s.particleBuf = s.Particles.RenderData(s.particleBuf[:0], ox, oy)
	r.DrawSprites(s.particleBuf, fbW)
}

func (s *Session) drawPlayer(r *Renderer, ox, oy float64) {
	// Blink while invulnerable.
	if s.Player.InvulnTimer > 0 && int(s.Player.InvulnTimer*10)%2 == 0 {
		r.RectOutline(s.Player.Rect, ox, oy, Palette.Player, 0.6)
		return
	}
	body := s.Player.Rect
	body.X += 5
	body.W -= 10
	body.Y += 4
	body.H -= 8
	r.Rect(body, ox, oy, Palette.Player, 1)
	r.Tri(
		s.Player.Rect.CenterX()+ox, s.Player.Rect.Y-8+oy,
		s.Player.Rect.X+8+ox, s.Player.Rect.Y+8+oy,
		s.Player.Rect.Right()-8+ox, s.Player.Rect.Y+8+oy,
		Palette.Player, 1,
	)
}
