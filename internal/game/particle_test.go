package game

import "testing"

func TestParticleBurstAndExpiry(t *testing.T) {
	ps := NewParticleSystem(100, 1)
	ps.SpawnBurst(100, 100, Palette.EnemyCommon)
	if n := len(ps.P); n < 6 || n > 12 {
		t.Fatalf("burst size: %d", n)
	}
	for i := 0; i < 60; i++ {
		ps.Update(1.0 / 60)
	}
	if len(ps.P) != 0 {
		t.Fatalf("%d particles outlived their lifetime", len(ps.P))
	}
}

func TestParticleCap(t *testing.T) {
	ps := NewParticleSystem(10, 1)
	for i := 0; i < 20; i++ {
		ps.SpawnBurst(0, 0, Palette.White)
	}
	if len(ps.P) > 10 {
		t.Fatalf("cap exceeded: %d", len(ps.P))
	}
}

func TestParticleRenderData(t *testing.T) {
	ps := NewParticleSystem(100, 1)
	ps.SpawnBurst(50, 60, Palette.Boss)
	buf := ps.RenderData(nil, 3, -2)
	if len(buf) != len(ps.P)*8 {
		t.Fatalf("render data: %d floats for %d particles", len(buf), len(ps.P))
	}
	// The shake offset shifts positions but touches nothing else.
	plain := ps.RenderData(nil, 0, 0)
	if buf[0]-plain[0] != 3 || buf[1]-plain[1] != -2 {
		t.Fatalf("offset not applied: %v vs %v", buf[:2], plain[:2])
	}
}
