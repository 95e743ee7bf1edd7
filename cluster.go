package tinsel

import (
	"fmt"
	"math/rand/v2"
)

// Spiral describes the assembled arrangement: a helix that winds Turns times
// around the vertical axis over Height, tapering linearly from MaxRadius at
// the bottom to a point at the top. Jitter is the per-axis uniform offset
// applied to sampled points.
type Spiral struct {
	MaxRadius float64
	Height    float64
	Turns     float64
	Jitter    float64
}

func (s Spiral) validate() error {
	if s.MaxRadius <= 0 || s.Height <= 0 {
		return fmt.Errorf("spiral: max radius and height must be positive, got radius=%v height=%v",
			s.MaxRadius, s.Height)
	}
	if s.Turns <= 0 {
		return fmt.Errorf("spiral: turns must be positive, got %v", s.Turns)
	}
	if s.Jitter < 0 {
		return fmt.Errorf("spiral: jitter must not be negative, got %v", s.Jitter)
	}
	return nil
}

// Default cluster tuning. Zero-valued config fields fall back to these;
// explicitly negative or out-of-range values are rejected.
const (
	defaultFormRate    = 1.2 // assembly, slow
	defaultScatterRate = 2.4 // dispersal, fast
	defaultLargeScale  = 1.8
	defaultTaperScale  = 0.65
	defaultSpinSpeed   = 0.8
)

// ClusterConfig controls how a cluster's population is generated and how it
// transitions. All fields are read at construction time only; changing the
// population afterwards means building a new cluster.
type ClusterConfig struct {
	// Count is the number of entities in the cluster.
	Count int
	// ScatterRadius is the radius of the sphere volume entities disperse into.
	ScatterRadius float64
	// Spiral is the assembled arrangement entities form into.
	Spiral Spiral
	// Span is the normalized height range [min, max] ⊆ [0, 1] this cluster
	// occupies on the spiral. The zero value means the full span.
	Span Range
	// ScaleFactor is the base scale applied to every entity. Defaults to 1.
	ScaleFactor float64
	// LargeChance is the probability in [0, 1] that an entity gets the large
	// variant scale. Zero disables the variant.
	LargeChance float64
	// LargeScale is the multiplier for large-variant entities.
	LargeScale float64
	// TaperScale is the scale multiplier at the top of the spiral; entity
	// scale interpolates from 1 at the bottom down to this at the top.
	TaperScale float64
	// SpinSpeed bounds the per-axis angular velocity in radians per second.
	SpinSpeed float64
	// Sway tunes the oscillatory embellishment. Zero-valued fields default.
	Sway Sway
	// FormRate and ScatterRate are the transition convergence rates.
	FormRate    float64
	ScatterRate float64
	// Color is the tint carried through to the host renderer.
	Color Color
	// Rand is the randomness source used to generate the population.
	// Nil means a freshly seeded source; inject one for reproducibility.
	Rand *rand.Rand
}

// withDefaults returns cfg with zero-valued knobs filled in.
func (cfg ClusterConfig) withDefaults() ClusterConfig {
	if cfg.Span.Min == 0 && cfg.Span.Max == 0 {
		cfg.Span = Range{0, 1}
	}
	if cfg.ScaleFactor == 0 {
		cfg.ScaleFactor = 1
	}
	if cfg.LargeScale == 0 {
		cfg.LargeScale = defaultLargeScale
	}
	if cfg.TaperScale == 0 {
		cfg.TaperScale = defaultTaperScale
	}
	if cfg.SpinSpeed == 0 {
		cfg.SpinSpeed = defaultSpinSpeed
	}
	if cfg.FormRate == 0 {
		cfg.FormRate = defaultFormRate
	}
	if cfg.ScatterRate == 0 {
		cfg.ScatterRate = defaultScatterRate
	}
	if cfg.Color == (Color{}) {
		cfg.Color = ColorWhite
	}
	cfg.Sway = cfg.Sway.withDefaults()
	return cfg
}

func (cfg *ClusterConfig) validate() error {
	if cfg.Count <= 0 {
		return fmt.Errorf("cluster: count must be positive, got %d", cfg.Count)
	}
	if cfg.ScatterRadius <= 0 {
		return fmt.Errorf("cluster: scatter radius must be positive, got %v", cfg.ScatterRadius)
	}
	if err := cfg.Spiral.validate(); err != nil {
		return err
	}
	if cfg.Span.Min < 0 || cfg.Span.Max > 1 || cfg.Span.Min > cfg.Span.Max {
		return fmt.Errorf("cluster: span must satisfy 0 <= min <= max <= 1, got [%v, %v]",
			cfg.Span.Min, cfg.Span.Max)
	}
	if cfg.ScaleFactor <= 0 {
		return fmt.Errorf("cluster: scale factor must be positive, got %v", cfg.ScaleFactor)
	}
	if cfg.LargeChance < 0 || cfg.LargeChance > 1 {
		return fmt.Errorf("cluster: large chance must be in [0, 1], got %v", cfg.LargeChance)
	}
	if cfg.LargeScale <= 0 {
		return fmt.Errorf("cluster: large scale must be positive, got %v", cfg.LargeScale)
	}
	if cfg.TaperScale <= 0 {
		return fmt.Errorf("cluster: taper scale must be positive, got %v", cfg.TaperScale)
	}
	if cfg.SpinSpeed < 0 {
		return fmt.Errorf("cluster: spin speed must not be negative, got %v", cfg.SpinSpeed)
	}
	if err := cfg.Sway.validate(); err != nil {
		return err
	}
	if cfg.FormRate <= 0 || cfg.ScatterRate <= 0 {
		return fmt.Errorf("cluster: rates must be positive, got form=%v scatter=%v",
			cfg.FormRate, cfg.ScatterRate)
	}
	return nil
}

// Cluster owns a batched population of entities that share one transition.
// Every frame, Update blends each entity between its scattered and formation
// positions by the cluster's progress, layers sway on top, and writes the
// result into a preallocated transform slice. Update allocates nothing.
type Cluster struct {
	config     ClusterConfig
	entities   []entity
	transforms []Transform
	transition Transition
}

// NewCluster validates cfg, fills defaults, and generates the population.
// The population is generated exactly once; entities are never added or
// removed afterwards.
func NewCluster(cfg ClusterConfig) (*Cluster, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Cluster{
		config:     cfg,
		entities:   make([]entity, cfg.Count),
		transforms: make([]Transform, cfg.Count),
		transition: Transition{FormRate: cfg.FormRate, ScatterRate: cfg.ScatterRate},
	}
	rng := defaultRand(cfg.Rand)
	for i := range c.entities {
		c.entities[i] = spawnEntity(rng, &c.config)
	}
	return c, nil
}

// Update advances the cluster by one frame: the transition is stepped exactly
// once, then every entity's transform is recomputed against that same
// progress value. burst is the motion factor from the scene's Burst (1 when
// idle) and scales spin accumulation only.
func (c *Cluster) Update(elapsed, dt float64, mode Mode, burst float64) {
	progress := c.transition.Advance(mode, dt)
	spinDt := burst * clampDelta(dt)

	for i := range c.entities {
		e := &c.entities[i]
		e.rotation = e.rotation.Add(e.spin.Scale(spinDt))

		pos := lerpVec3(e.scatter, e.formation, progress)
		pos = pos.Add(c.config.Sway.Offset(elapsed, e.phase, progress))

		c.transforms[i] = Transform{
			Position: pos,
			Rotation: e.rotation,
			Scale:    e.baseScale * c.config.Sway.ScaleFactor(elapsed, e.phase, progress),
		}
	}
}

// Transforms returns the per-entity output of the most recent Update. The
// slice is reused across frames; the host renderer should consume it before
// the next Update.
func (c *Cluster) Transforms() []Transform {
	return c.transforms
}

// Progress returns the cluster's current transition progress in [0, 1].
func (c *Cluster) Progress() float64 {
	return c.transition.Progress
}

// SetProgress initializes the transition, e.g. to 1 for a scene that starts
// already formed. Intended for setup, not per-frame use.
func (c *Cluster) SetProgress(p float64) {
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	c.transition.Progress = p
}

// Count returns the number of entities in the cluster.
func (c *Cluster) Count() int {
	return len(c.entities)
}

// Color returns the tint configured for this cluster.
func (c *Cluster) Color() Color {
	return c.config.Color
}
