package weatheroverlay

import (
	"math"
	"testing"
)

func TestNewSnowPopulation(t *testing.T) {
	s := NewSnow(800, 600, NewRand(1))
	if s.Len() != SnowParticles {
		t.Fatalf("Len() = %d, want %d", s.Len(), SnowParticles)
	}
	for i, p := range s.flakes {
		if p.x < 0 || p.x >= 800 || p.y < 0 || p.y >= 600 {
			t.Errorf("flake %d at (%v, %v), outside the surface", i, p.x, p.y)
		}
		if !snowRadius.Contains(p.r) {
			t.Errorf("flake %d radius %v outside [1, 9)", i, p.r)
		}
		if !snowDensity.Contains(p.d) {
			t.Errorf("flake %d density %v outside [0, 100)", i, p.d)
		}
	}
}

func TestSnowUpdateMotion(t *testing.T) {
	s := NewSnow(800, 600, NewRand(1))
	p := &s.flakes[0]
	p.x, p.y, p.r, p.d = 400, 100, 4, 0.3

	s.update()

	angle := snowAngleStep
	assertNear(t, "angle", s.angle, angle)
	assertNear(t, "y", p.y, 100+math.Cos(angle+0.3)+1+2)
	assertNear(t, "x", p.x, 400+math.Sin(angle)*2)
}

func TestSnowKeepsFallingAndSize(t *testing.T) {
	s := NewSnow(640, 480, NewRand(3))
	radii := make([]float64, s.Len())
	phases := make([]float64, s.Len())
	for i, p := range s.flakes {
		radii[i] = p.r
		phases[i] = p.d
	}
	for frame := 0; frame < 2000; frame++ {
		s.update()
		for i, p := range s.flakes {
			if p.r != radii[i] {
				t.Fatalf("frame %d: flake %d radius changed from %v to %v", frame, i, radii[i], p.r)
			}
			if p.d != phases[i] {
				t.Fatalf("frame %d: flake %d phase changed from %v to %v", frame, i, phases[i], p.d)
			}
			if p.y > 480 {
				t.Fatalf("frame %d: flake %d left through the bottom at y=%v", frame, i, p.y)
			}
			if p.x > 640+snowMargin || p.x < -snowMargin {
				t.Fatalf("frame %d: flake %d outside side margins at x=%v", frame, i, p.x)
			}
		}
	}
	if s.Len() != SnowParticles {
		t.Errorf("Len() = %d after updates, want %d", s.Len(), SnowParticles)
	}
}

func TestSnowRecycle(t *testing.T) {
	s := NewSnow(800, 600, NewRand(1))

	tests := []struct {
		name   string
		index  int
		sway   float64
		checkX func(x float64) bool
		checkY func(y float64) bool
	}{
		{"top entry", 1, 0.5,
			func(x float64) bool { return x >= 0 && x < 800 },
			func(y float64) bool { return y == snowSpawnY }},
		{"top entry regardless of sway", 2, -0.5,
			func(x float64) bool { return x >= 0 && x < 800 },
			func(y float64) bool { return y == snowSpawnY }},
		{"left entry with wind to the right", 3, 0.5,
			func(x float64) bool { return x == -snowMargin },
			func(y float64) bool { return y >= 0 && y < 600 }},
		{"right entry with wind to the left", 0, -0.5,
			func(x float64) bool { return x == 800+snowMargin },
			func(y float64) bool { return y >= 0 && y < 600 }},
		{"right entry with no wind", 6, 0,
			func(x float64) bool { return x == 800+snowMargin },
			func(y float64) bool { return y >= 0 && y < 600 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s.flakes[tt.index]
			s.recycle(tt.index, tt.sway)
			p := s.flakes[tt.index]
			if !tt.checkX(p.x) || !tt.checkY(p.y) {
				t.Errorf("flake %d recycled to (%v, %v)", tt.index, p.x, p.y)
			}
			if p.r != before.r || p.d != before.d {
				t.Errorf("flake %d r, d = %v, %v after recycle, want %v, %v", tt.index, p.r, p.d, before.r, before.d)
			}
		})
	}
}

func TestSnowRecyclesPastBottom(t *testing.T) {
	s := NewSnow(800, 600, NewRand(1))
	p := &s.flakes[4] // 4%3 > 0: re-enters from the top
	p.x, p.y = 400, 600
	r, d := p.r, p.d

	s.update()

	if p.y != snowSpawnY {
		t.Errorf("y = %v after crossing the bottom, want %v", p.y, snowSpawnY)
	}
	if p.r != r || p.d != d {
		t.Errorf("r, d = %v, %v after crossing the bottom, want %v, %v", p.r, p.d, r, d)
	}
}

func TestSnowDrawAdvances(t *testing.T) {
	s := NewSnow(100, 100, NewRand(1))
	dst := NewRasterSurface(100, 100)
	s.Draw(dst)
	s.Draw(dst)
	assertNear(t, "angle", s.angle, 2*snowAngleStep)
}
