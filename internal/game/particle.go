package game

import "math"

// Particle is purely cosmetic debris from an impact. No gameplay effect.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Col     RGB
}

func (p *Particle) Update(dt float64) {
	p.Life -= dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY += 180 * dt // small gravity
}

// ParticleSystem owns a dense slice of live particles.
type ParticleSystem struct {
	Max  int
	P    []Particle
	seed *Rand
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

// SpawnBurst emits a radial burst of 6..12 particles at (x, y).
func (ps *ParticleSystem) SpawnBurst(x, y float64, col RGB) {
	n := ps.seed.Range(6, 12)
	for i := 0; i < n; i++ {
		if len(ps.P) >= ps.Max {
			return
		}
		angle := ps.seed.RangeF(0, 2*math.Pi)
		speed := ps.seed.RangeF(80, 220)
		life := ps.seed.RangeF(0.08, 0.22)
		ps.P = append(ps.P, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Size:    float64(ps.seed.Range(1, 3)),
			Col:     col,
		})
	}
}

// Update advances all particles and compacts expired ones in place.
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.P[:0]
	for i := range ps.P {
		p := ps.P[i]
		p.Update(dt)
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	ps.P = live
}

// RenderData appends point sprites for all live particles.
// Format: [x, y, size, r, g, b, a, rotation] * N.
func (ps *ParticleSystem) RenderData(buf []float32, ox, oy float64) []float32 {
	for i := range ps.P {
		p := &ps.P[i]
		alpha := clampF(p.Life/p.MaxLife, 0, 1)
		size := p.Size * alpha * 2
		if size < 1 {
			size = 1
		}
		buf = append(buf,
			float32(p.X+ox), float32(p.Y+oy), float32(size),
			float32(p.Col.R)/255.0, float32(p.Col.G)/255.0, float32(p.Col.B)/255.0,
			float32(alpha), 0,
		)
	}
	return buf
}
