package game

import "fmt"

const hudPad = 10

func (s *Session) drawHUD(r *Renderer) {
	r.DrawString(fmt.Sprintf("SCORE %d", s.Score), hudPad, hudPad, 2, Palette.UI)
	best := s.Highscores.Best()
	if s.Score > best {
		best = s.Score
	}
	r.DrawString(fmt.Sprintf("HIGH %d", best), hudPad, hudPad+20, 1.5, Palette.Dim)
	r.DrawString(fmt.Sprintf("WAVE %d", s.Wave), CanvasWidth/2-30, hudPad, 2, Palette.UI)

	if s.ComboMult > 0 {
		r.DrawString(fmt.Sprintf("COMBO X%.1f", 1+s.ComboMult), CanvasWidth/2-50, hudPad+20, 1.5, Palette.Highlight)
	}

	for i := 0; i < s.Player.Lives; i++ {
		cx := float64(CanvasWidth - 20 - i*24)
		cy := float64(hudPad + 12)
		r.Tri(cx, cy-8, cx-8, cy+8, cx+8, cy+8, Palette.Heart, 1)
	}

	if s.GodMode {
		r.DrawString("GOD", CanvasWidth-60, 40, 1.5, Palette.Highlight)
	}
}

func (s *Session) drawMenu(r *Renderer) {
	title := "SPACE INVADER"
	r.DrawString(title, (CanvasWidth-TextWidth(title, 4))/2, 100, 4, Palette.Highlight)

	start := "PRESS ENTER TO START"
	r.DrawString(start, (CanvasWidth-TextWidth(start, 2))/2, 200, 2, Palette.UI)

	controls := []string{
		"ARROWS/AD - MOVE",
		"SPACE - FIRE",
		"P - PAUSE",
		"S - SOUND ON/OFF",
		"ESC - QUIT",
	}
	for i, line := range controls {
		r.DrawString(line, (CanvasWidth-TextWidth(line, 1.5))/2, 260+i*18, 1.5, Palette.Dim)
	}

	soundLine := "SOUND: ON"
	if !SoundIsEnabled() {
		soundLine = "SOUND: OFF"
	}
	r.DrawString(soundLine, (CanvasWidth-TextWidth(soundLine, 1.5))/2, 360, 1.5, Palette.Dim)

	r.DrawString("TOP SCORES", (CanvasWidth-TextWidth("TOP SCORES", 2))/2, 410, 2, Palette.UI)
	if len(s.Highscores.Top) == 0 {
		line := "NO SCORES YET"
		r.DrawString(line, (CanvasWidth-TextWidth(line, 1.5))/2, 440, 1.5, Palette.Dim)
	}
	for i, sc := range s.Highscores.Top {
		line := fmt.Sprintf("%d. %d", i+1, sc)
		r.DrawString(line, (CanvasWidth-TextWidth(line, 1.5))/2, 440+i*18, 1.5, Palette.UI)
	}
}

func (s *Session) drawPauseOverlay(r *Renderer) {
	r.Rect(Rect{W: CanvasWidth, H: CanvasHeight}, 0, 0, Palette.Background, 0.47)
	msg := "PAUSED"
	r.DrawString(msg, (CanvasWidth-TextWidth(msg, 4))/2, 250, 4, Palette.UI)
	hint := "ENTER OR P TO RESUME"
	r.DrawString(hint, (CanvasWidth-TextWidth(hint, 1.5))/2, 310, 1.5, Palette.Dim)
}

func (s *Session) drawGameOverOverlay(r *Renderer) {
	r.Rect(Rect{W: CanvasWidth, H: CanvasHeight}, 0, 0, Palette.Background, 0.55)
	msg := "GAME OVER"
	r.DrawString(msg, (CanvasWidth-TextWidth(msg, 4))/2, 200, 4, Palette.Heart)
	score := fmt.Sprintf("SCORE %d", s.Score)
	r.DrawString(score, (CanvasWidth-TextWidth(score, 2))/2, 260, 2, Palette.UI)
	if s.JustMadeHighscore {
		hs := "NEW HIGHSCORE!"
		r.DrawString(hs, (CanvasWidth-TextWidth(hs, 2))/2, 300, 2, Palette.Highlight)
	}
	hint := "ENTER TO RETURN TO MENU"
	r.DrawString(hint, (CanvasWidth-TextWidth(hint, 1.5))/2, 350, 1.5, Palette.Dim)
}
