package game

// Rect is an axis-aligned box in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W*0.5 }
func (r Rect) CenterY() float64 { return r.Y + r.H*0.5 }

// Intersects reports whether the two boxes overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// RectCentered builds a rect from its centre point.
func RectCentered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w*0.5, Y: cy - h*0.5, W: w, H: h}
}
