package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func point(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

func TestMoonTransform(t *testing.T) {
	m := MoonTransform(0)
	if got := point(m, mgl32.Vec3{0, 0, 0}); !vecNear(got, mgl32.Vec3{0, -6, 0}, 1e-5) {
		t.Errorf("moon center = %v, want (0,-6,0)", got)
	}
	if got := point(m, mgl32.Vec3{0, 1, 0}); !vecNear(got, mgl32.Vec3{0, 0, 0}, 1e-5) {
		t.Errorf("moon north pole = %v, want origin", got)
	}

	// Spin about Y keeps the pole fixed and moves the equator.
	elapsed := float32(math.Pi / 2 / MoonSpin)
	spun := MoonTransform(elapsed)
	if got := point(spun, mgl32.Vec3{0, 1, 0}); !vecNear(got, mgl32.Vec3{0, 0, 0}, 1e-4) {
		t.Errorf("spun pole = %v", got)
	}
	if got := point(spun, mgl32.Vec3{1, 0, 0}); !vecNear(got, mgl32.Vec3{0, -6, -6}, 1e-4) {
		t.Errorf("spun equator = %v, want (0,-6,-6)", got)
	}
}

func TestOrbTransform(t *testing.T) {
	m := OrbTransform(mgl32.Vec3{1, 1.3, -2})
	if got := point(m, mgl32.Vec3{1, 0, 0}); !vecNear(got, mgl32.Vec3{1.15, 1.3, -2}, 1e-5) {
		t.Errorf("orb surface point = %v", got)
	}
}

func TestMeteorTransform(t *testing.T) {
	pos := mgl32.Vec3{0, 15, 0}
	m := MeteorTransform(pos, 0, mgl32.Vec3{1, 0.5, 0})
	if got := point(m, mgl32.Vec3{0, 0, 0}); !vecNear(got, pos, 1e-5) {
		t.Errorf("meteor origin = %v, want %v", got, pos)
	}
	if got := point(m, mgl32.Vec3{100, 0, 0}); !vecNear(got, mgl32.Vec3{3, 15, 0}, 1e-4) {
		t.Errorf("meteor scaled point = %v", got)
	}

	// Points on the spin axis are unaffected by rotation.
	axis := mgl32.Vec3{1, 0.5, 0}
	spun := MeteorTransform(pos, 1.7, axis)
	onAxis := axis.Mul(10)
	want := pos.Add(onAxis.Mul(MeteorScale))
	if got := point(spun, onAxis); !vecNear(got, want, 1e-4) {
		t.Errorf("axis point = %v, want %v", got, want)
	}

	noAxis := MeteorTransform(pos, 1.7, mgl32.Vec3{})
	if got := point(noAxis, mgl32.Vec3{100, 0, 0}); !vecNear(got, mgl32.Vec3{3, 15, 0}, 1e-4) {
		t.Errorf("zero axis rotated the meteor: %v", got)
	}
}

func TestLevitation(t *testing.T) {
	if h := LevitationHeight(0); math.Abs(float64(h-0.5)) > 1e-6 {
		t.Errorf("height at t=0 = %v, want 0.5", h)
	}
	peak := float32(math.Pi / 2 / LevitateRate)
	if h := LevitationHeight(peak); math.Abs(float64(h-0.7)) > 1e-5 {
		t.Errorf("peak height = %v, want 0.7", h)
	}
	for i := 0; i < 100; i++ {
		h := LevitationHeight(float32(i) * 0.173)
		if h < 0.3-1e-5 || h > 0.7+1e-5 {
			t.Fatalf("height %v out of [0.3, 0.7]", h)
		}
	}
}

func TestOutlineTransform(t *testing.T) {
	char := CharacterTransform(0)
	out := OutlineTransform(char)
	if got := point(out, mgl32.Vec3{0, 1, 0}); !vecNear(got, mgl32.Vec3{0, 1.52, 0}, 1e-5) {
		t.Errorf("outline point = %v, want (0,1.52,0)", got)
	}
	if got := point(out, mgl32.Vec3{}); !vecNear(got, point(char, mgl32.Vec3{}), 1e-6) {
		t.Errorf("outline origin moved: %v", got)
	}
}

func TestSkyViewDropsTranslation(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{3, 2, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	sky := SkyView(view)

	if got := point(sky, mgl32.Vec3{}); !vecNear(got, mgl32.Vec3{}, 1e-6) {
		t.Errorf("sky view translates the origin to %v", got)
	}
	if sky.At(3, 3) != 1 {
		t.Errorf("sky view w = %v", sky.At(3, 3))
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if sky.At(r, c) != view.At(r, c) {
				t.Fatalf("rotation differs at %d,%d", r, c)
			}
		}
	}
}

func TestShininess(t *testing.T) {
	tests := []struct {
		material float32
		want     float32
	}{
		{0, MaterialShininess},
		{-1, MaterialShininess},
		{64, 64},
	}
	for _, tt := range tests {
		if got := Shininess(tt.material); got != tt.want {
			t.Errorf("Shininess(%v) = %v, want %v", tt.material, got, tt.want)
		}
	}
}
