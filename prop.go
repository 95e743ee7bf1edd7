package tinsel

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// PropConfig describes a singleton entity — the spire topper, the hidden
// figure — that transitions on its own but follows the same dual-position
// contract as cluster entities.
type PropConfig struct {
	// Scatter and Formation are the two target positions.
	Scatter   Vec3
	Formation Vec3
	// Scale is the base scale. Defaults to 1.
	Scale float64
	// SpinSpeed bounds the per-axis angular velocity in radians per second.
	SpinSpeed float64
	// Sway tunes the oscillatory embellishment. Zero-valued fields default.
	Sway Sway
	// FormRate and ScatterRate are the transition convergence rates.
	FormRate    float64
	ScatterRate float64
	// Rand seeds the phase and spin. Nil means a freshly seeded source.
	Rand *rand.Rand
}

// Prop is a singleton dual-position entity with its own transition.
type Prop struct {
	config     PropConfig
	phase      float64
	spin       Vec3
	rotation   Vec3
	transition Transition
}

// NewProp validates cfg, fills defaults, and samples the prop's phase and
// spin from the configured randomness source.
func NewProp(cfg PropConfig) (*Prop, error) {
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	if cfg.FormRate == 0 {
		cfg.FormRate = defaultFormRate
	}
	if cfg.ScatterRate == 0 {
		cfg.ScatterRate = defaultScatterRate
	}
	cfg.Sway = cfg.Sway.withDefaults()

	if cfg.Scale < 0 {
		return nil, fmt.Errorf("prop: scale must be positive, got %v", cfg.Scale)
	}
	if cfg.SpinSpeed < 0 {
		return nil, fmt.Errorf("prop: spin speed must not be negative, got %v", cfg.SpinSpeed)
	}
	if cfg.FormRate <= 0 || cfg.ScatterRate <= 0 {
		return nil, fmt.Errorf("prop: rates must be positive, got form=%v scatter=%v",
			cfg.FormRate, cfg.ScatterRate)
	}
	if err := cfg.Sway.validate(); err != nil {
		return nil, err
	}

	rng := defaultRand(cfg.Rand)
	return &Prop{
		config: cfg,
		phase:  rng.Float64() * 2 * math.Pi,
		spin: Vec3{
			X: (rng.Float64()*2 - 1) * cfg.SpinSpeed,
			Y: (rng.Float64()*2 - 1) * cfg.SpinSpeed,
			Z: (rng.Float64()*2 - 1) * cfg.SpinSpeed,
		},
		transition: Transition{FormRate: cfg.FormRate, ScatterRate: cfg.ScatterRate},
	}, nil
}

// Update advances the prop by one frame and returns its transform. Follows
// the same ordering as Cluster.Update: the transition steps exactly once,
// then the blended position, sway, and spin are computed against it.
func (p *Prop) Update(elapsed, dt float64, mode Mode, burst float64) Transform {
	progress := p.transition.Advance(mode, dt)
	p.rotation = p.rotation.Add(p.spin.Scale(burst * clampDelta(dt)))

	pos := lerpVec3(p.config.Scatter, p.config.Formation, progress)
	pos = pos.Add(p.config.Sway.Offset(elapsed, p.phase, progress))

	return Transform{
		Position: pos,
		Rotation: p.rotation,
		Scale:    p.config.Scale * p.config.Sway.ScaleFactor(elapsed, p.phase, progress),
	}
}

// Progress returns the prop's current transition progress in [0, 1].
func (p *Prop) Progress() float64 {
	return p.transition.Progress
}

// SetProgress initializes the transition. Intended for setup, not per-frame use.
func (p *Prop) SetProgress(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	p.transition.Progress = v
}
