package game

// ShieldPiece is one destructible block of a shield cluster.
type ShieldPiece struct {
	Rect Rect
	HP   int
}

// Hit absorbs one hit point. Returns true when the piece is destroyed.
func (p *ShieldPiece) Hit() bool {
	p.HP--
	return p.HP <= 0
}

// Shields is the fixed arrangement of pieces: 4 evenly spaced clusters,
// each 3x6 with the bottom-row corners omitted to form an arch.
// Built once per run; persists across waves.
type Shields struct {
	Pieces []ShieldPiece
}

func NewShields() *Shields {
	s := &Shields{}
	spacing := (CanvasWidth - 2*ShieldMarginX) / (ShieldCount - 1)
	for i := 0; i < ShieldCount; i++ {
		left := ShieldMarginX + i*spacing - (ShieldSegCols*ShieldSegSize)/2
		for r := 0; r < ShieldSegRows; r++ {
			for c := 0; c < ShieldSegCols; c++ {
				if r == ShieldSegRows-1 && (c == 0 || c == ShieldSegCols-1) {
					continue
				}
				s.Pieces = append(s.Pieces, ShieldPiece{
					Rect: Rect{
						X: float64(left + c*ShieldSegSize),
						Y: float64(ShieldBaseY + r*ShieldSegSize),
						W: ShieldSegSize,
						H: ShieldSegSize,
					},
					HP: ShieldSegHP,
				})
			}
		}
	}
	return s
}

// CollideBullet lets the first intersecting piece absorb one hit point.
// The bullet is consumed on any intersection regardless of whether the
// piece survives. Blocks bullets from both sides.
func (s *Shields) CollideBullet(b *Bullet) bool {
	for i := range s.Pieces {
		if s.Pieces[i].Rect.Intersects(b.Rect) {
			if s.Pieces[i].Hit() {
				s.Pieces = append(s.Pieces[:i], s.Pieces[i+1:]...)
			}
			return true
		}
	}
	return false
}
