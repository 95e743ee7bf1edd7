package tinsel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrDegenerateRange is returned by Normalize when max == min.
var ErrDegenerateRange = errors.New("degenerate range: max == min")

// SampleSphereVolume returns a point uniformly distributed within a solid
// sphere of the given radius, centered on the origin.
//
// The radius of each sample is radius·∛u for uniform u, which is what makes
// the distribution uniform over the volume. Scaling by a plain uniform value
// instead would pile samples up near the center.
func SampleSphereVolume(rng *rand.Rand, radius float64) Vec3 {
	theta := 2 * math.Pi * rng.Float64()
	phi := math.Acos(2*rng.Float64() - 1)
	r := radius * math.Cbrt(rng.Float64())

	sinPhi := math.Sin(phi)
	return Vec3{
		X: r * sinPhi * math.Cos(theta),
		Y: r * sinPhi * math.Sin(theta),
		Z: r * math.Cos(phi),
	}
}

// SampleFormationCurve returns a point on a downward-tapering helix for a
// normalized height t in [0, 1]. The vertical coordinate runs linearly from
// -height/2 at t=0 to +height/2 at t=1; the radius runs linearly from
// maxRadius at t=0 to zero at t=1; the angle winds 2π·turns over the full
// span. Each axis is then perturbed by an independent uniform offset in
// [-jitter, +jitter] so points sit near, not exactly on, the ideal curve.
//
// With jitter == 0 the result is exact and rng is not consumed.
func SampleFormationCurve(rng *rand.Rand, t, maxRadius, height, turns, jitter float64) Vec3 {
	angle := 2 * math.Pi * turns * t
	radius := maxRadius * (1 - t)

	p := Vec3{
		X: radius * math.Cos(angle),
		Y: (t - 0.5) * height,
		Z: radius * math.Sin(angle),
	}
	if jitter != 0 {
		p.X += (rng.Float64()*2 - 1) * jitter
		p.Y += (rng.Float64()*2 - 1) * jitter
		p.Z += (rng.Float64()*2 - 1) * jitter
	}
	return p
}

// Normalize maps value into [0, 1] relative to the span [min, max], returning
// (value - min) / (max - min). A span with max == min has no defined
// normalization and returns ErrDegenerateRange rather than dividing by zero.
func Normalize(value, max, min float64) (float64, error) {
	if max == min {
		return 0, fmt.Errorf("normalize %v over [%v, %v]: %w", value, min, max, ErrDegenerateRange)
	}
	return (value - min) / (max - min), nil
}
