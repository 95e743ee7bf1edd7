package tinsel

import (
	"math"
	"math/rand/v2"
)

// entity holds the static per-entity data fixed at population time.
// Unexported; managed by Cluster. Only rotation accumulates after creation —
// both target positions, the scale, the phase, and the spin never change for
// the lifetime of the entity.
type entity struct {
	scatter   Vec3
	formation Vec3
	baseScale float64
	phase     float64 // oscillation offset in [0, 2π)
	spin      Vec3    // per-axis angular velocity, radians per second
	rotation  Vec3    // accumulated rotation, radians, unbounded
}

// spawnEntity samples one entity from the cluster's configuration:
// a scattered position from the sphere volume, a formation position on the
// helix at a height drawn from the cluster's span, and the cosmetic scale,
// phase, and spin parameters.
func spawnEntity(rng *rand.Rand, cfg *ClusterConfig) entity {
	t := cfg.Span.Random(rng)

	scale := cfg.ScaleFactor
	if cfg.LargeChance > 0 && rng.Float64() < cfg.LargeChance {
		scale *= cfg.LargeScale
	}
	// Entities sitting higher on the spiral are scaled down with it.
	scale *= lerp(1, cfg.TaperScale, t)

	return entity{
		scatter: SampleSphereVolume(rng, cfg.ScatterRadius),
		formation: SampleFormationCurve(rng, t,
			cfg.Spiral.MaxRadius, cfg.Spiral.Height, cfg.Spiral.Turns, cfg.Spiral.Jitter),
		baseScale: scale,
		phase:     rng.Float64() * 2 * math.Pi,
		spin: Vec3{
			X: (rng.Float64()*2 - 1) * cfg.SpinSpeed,
			Y: (rng.Float64()*2 - 1) * cfg.SpinSpeed,
			Z: (rng.Float64()*2 - 1) * cfg.SpinSpeed,
		},
	}
}
