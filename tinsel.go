package tinsel

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Mode is the process-wide arrangement toggle. Every Update call receives the
// current mode explicitly; nothing in the package reads shared global state.
type Mode uint8

const (
	// ModeScattered targets the dispersed cloud arrangement.
	ModeScattered Mode = iota
	// ModeFormation targets the assembled spiral arrangement.
	ModeFormation
)

// String returns "scattered" or "formation".
func (m Mode) String() string {
	if m == ModeFormation {
		return "formation"
	}
	return "scattered"
}

// ParseMode parses "scattered" or "formation". The empty string parses as
// ModeScattered so scene files may omit it.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "scattered":
		return ModeScattered, nil
	case "formation":
		return ModeFormation, nil
	}
	return ModeScattered, fmt.Errorf("unknown mode %q", s)
}

// Color represents an RGBA color with components in [0, 1]. Tinsel never
// interprets it; it is carried per cluster for the host renderer.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec3 is a 3D vector used for positions, offsets, and angular velocities
// throughout the API.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// lerpVec3 linearly interpolates between a and b by t, componentwise.
func lerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
	}
}

// Transform is the per-entity output handed to the host renderer each frame:
// a world position, per-axis Euler rotation in radians, and a uniform scale.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    float64
}

// Range is a general-purpose min/max range.
// Used by cluster configuration for the normalized height span.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// maxFrameDelta caps dt before any smoothing math so a stalled frame (tab in
// background, debugger pause) nudges state by at most a quarter second.
const maxFrameDelta = 0.25

// clampDelta returns dt clamped to [0, maxFrameDelta].
func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// defaultRand returns rng, or a freshly seeded source when rng is nil.
func defaultRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
