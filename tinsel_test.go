package tinsel

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec3Near(t *testing.T, name string, got, want Vec3) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon ||
		math.Abs(got.Y-want.Y) > epsilon ||
		math.Abs(got.Z-want.Z) > epsilon {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

// testRand returns a deterministic randomness source for reproducible
// populations.
func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(17, 42))
}

func TestVec3Ops(t *testing.T) {
	v := Vec3{1, 2, 3}
	assertVec3Near(t, "add", v.Add(Vec3{4, 5, 6}), Vec3{5, 7, 9})
	assertVec3Near(t, "scale", v.Scale(2), Vec3{2, 4, 6})
	assertNear(t, "len", Vec3{3, 4, 0}.Len(), 5)
	assertNear(t, "len zero", Vec3{}.Len(), 0)
}

func TestLerp(t *testing.T) {
	assertNear(t, "lerp(0,10,0)", lerp(0, 10, 0), 0)
	assertNear(t, "lerp(0,10,0.5)", lerp(0, 10, 0.5), 5)
	assertNear(t, "lerp(0,10,1)", lerp(0, 10, 1), 10)
	assertVec3Near(t, "lerpVec3 mid",
		lerpVec3(Vec3{0, 0, 0}, Vec3{2, 4, 6}, 0.5), Vec3{1, 2, 3})
}

func TestRangeRandom(t *testing.T) {
	rng := testRand()
	r := Range{10, 20}
	for i := 0; i < 100; i++ {
		v := r.Random(rng)
		if v < 10 || v > 20 {
			t.Fatalf("Random() = %f, outside [10, 20]", v)
		}
	}

	// Equal min/max.
	r2 := Range{5, 5}
	for i := 0; i < 10; i++ {
		if r2.Random(rng) != 5 {
			t.Fatal("Random() with Min==Max should return Min")
		}
	}
}

func TestClampDelta(t *testing.T) {
	assertNear(t, "normal dt", clampDelta(1.0/60.0), 1.0/60.0)
	assertNear(t, "stalled frame", clampDelta(10), maxFrameDelta)
	assertNear(t, "negative dt", clampDelta(-1), 0)
}

func TestModeString(t *testing.T) {
	if ModeScattered.String() != "scattered" {
		t.Errorf("ModeScattered.String() = %q", ModeScattered.String())
	}
	if ModeFormation.String() != "formation" {
		t.Errorf("ModeFormation.String() = %q", ModeFormation.String())
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
	}{
		{"", ModeScattered},
		{"scattered", ModeScattered},
		{"formation", ModeFormation},
	}
	for _, c := range cases {
		got, err := ParseMode(c.in)
		if err != nil {
			t.Errorf("ParseMode(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseMode(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseMode("sideways"); err == nil {
		t.Error("ParseMode with unknown mode should fail")
	}
}

func TestDefaultRand(t *testing.T) {
	rng := testRand()
	if defaultRand(rng) != rng {
		t.Error("defaultRand should return the given source")
	}
	if defaultRand(nil) == nil {
		t.Error("defaultRand(nil) should create a source")
	}
}
