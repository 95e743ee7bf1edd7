package tinsel

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// SceneFile is the YAML description of a whole scene: the shared formation
// spiral, any number of clusters, the optional singleton props, and the
// burst and camera tuning. Parse one with ParseSceneFile or LoadSceneFile,
// then Build it into a live Scene.
type SceneFile struct {
	// InitialMode is "scattered" (default) or "formation".
	InitialMode string        `yaml:"initial_mode"`
	Spiral      SpiralFile    `yaml:"spiral"`
	Clusters    []ClusterFile `yaml:"clusters"`
	Topper      *PropFile     `yaml:"topper"`
	Figure      *PropFile     `yaml:"figure"`
	Burst       *BurstFile    `yaml:"burst"`
	Camera      *CameraFile   `yaml:"camera"`
}

// SpiralFile describes the shared formation spiral.
type SpiralFile struct {
	MaxRadius float64 `yaml:"max_radius"`
	Height    float64 `yaml:"height"`
	Turns     float64 `yaml:"turns"`
	Jitter    float64 `yaml:"jitter"`
}

func (s SpiralFile) toSpiral() Spiral {
	return Spiral{MaxRadius: s.MaxRadius, Height: s.Height, Turns: s.Turns, Jitter: s.Jitter}
}

// ClusterFile describes one batched population.
type ClusterFile struct {
	Name          string    `yaml:"name"`
	Count         int       `yaml:"count"`
	ScatterRadius float64   `yaml:"scatter_radius"`
	SpanMin       float64   `yaml:"span_min"`
	SpanMax       float64   `yaml:"span_max"`
	Scale         float64   `yaml:"scale"`
	LargeChance   float64   `yaml:"large_chance"`
	SpinSpeed     float64   `yaml:"spin_speed"`
	FormRate      float64   `yaml:"form_rate"`
	ScatterRate   float64   `yaml:"scatter_rate"`
	Color         ColorFile `yaml:"color"`
}

// ColorFile is an RGBA tint; a fully zero value means white.
type ColorFile struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

func (c ColorFile) toColor() Color {
	if c == (ColorFile{}) {
		return ColorWhite
	}
	if c.A == 0 {
		c.A = 1
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// PropFile describes a singleton prop. Its formation position sits on the
// shared spiral at the given normalized height, or on the central axis at
// that height when Centered is set.
type PropFile struct {
	Height        float64 `yaml:"height"`
	Centered      bool    `yaml:"centered"`
	ScatterRadius float64 `yaml:"scatter_radius"`
	Scale         float64 `yaml:"scale"`
	SpinSpeed     float64 `yaml:"spin_speed"`
	FormRate      float64 `yaml:"form_rate"`
	ScatterRate   float64 `yaml:"scatter_rate"`
}

// BurstFile tunes the post-dispersal motion burst.
type BurstFile struct {
	Duration   float64 `yaml:"duration"`
	Multiplier float64 `yaml:"multiplier"`
}

// CameraFile tunes the orbit distance controller.
type CameraFile struct {
	ScatterDistance float64 `yaml:"scatter_distance"`
	FormDistance    float64 `yaml:"form_distance"`
	Speed           float64 `yaml:"speed"`
	Threshold       float64 `yaml:"threshold"`
}

// ParseSceneFile parses a YAML scene description. Structural problems are
// reported here; value problems are reported by Build, which runs every
// constructor's validation.
func ParseSceneFile(data []byte) (*SceneFile, error) {
	var f SceneFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scene file: %w", err)
	}
	if len(f.Clusters) == 0 {
		return nil, fmt.Errorf("parse scene file: no clusters")
	}
	return &f, nil
}

// LoadSceneFile reads and parses a YAML scene description from disk.
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene file: %w", err)
	}
	return ParseSceneFile(data)
}

// Build constructs a live Scene from the description, generating every
// population from rng (nil means a freshly seeded source). All construction
// validation runs here; a bad value rejects the whole file rather than
// producing a scene that corrupts itself at animation time.
func (f *SceneFile) Build(rng *rand.Rand) (*Scene, error) {
	mode, err := ParseMode(f.InitialMode)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	rng = defaultRand(rng)
	spiral := f.Spiral.toSpiral()

	scene := NewScene(mode)

	for i, cf := range f.Clusters {
		cluster, err := NewCluster(ClusterConfig{
			Count:         cf.Count,
			ScatterRadius: cf.ScatterRadius,
			Spiral:        spiral,
			Span:          Range{Min: cf.SpanMin, Max: cf.SpanMax},
			ScaleFactor:   cf.Scale,
			LargeChance:   cf.LargeChance,
			SpinSpeed:     cf.SpinSpeed,
			FormRate:      cf.FormRate,
			ScatterRate:   cf.ScatterRate,
			Color:         cf.Color.toColor(),
			Rand:          rng,
		})
		if err != nil {
			name := cf.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("build cluster %s: %w", name, err)
		}
		scene.AddCluster(cluster)
	}

	if f.Topper != nil {
		p, err := f.Topper.buildProp(rng, spiral)
		if err != nil {
			return nil, fmt.Errorf("build topper: %w", err)
		}
		scene.SetTopper(p)
	}
	if f.Figure != nil {
		p, err := f.Figure.buildProp(rng, spiral)
		if err != nil {
			return nil, fmt.Errorf("build figure: %w", err)
		}
		scene.SetFigure(p)
	}

	if f.Burst != nil {
		b, err := NewBurst(f.Burst.Duration, f.Burst.Multiplier)
		if err != nil {
			return nil, fmt.Errorf("build scene: %w", err)
		}
		scene.SetBurst(b)
	}
	if f.Camera != nil {
		o, err := NewOrbitController(f.Camera.ScatterDistance, f.Camera.FormDistance,
			f.Camera.Speed, f.Camera.Threshold)
		if err != nil {
			return nil, fmt.Errorf("build scene: %w", err)
		}
		scene.SetOrbit(o)
	}

	return scene, nil
}

func (pf *PropFile) buildProp(rng *rand.Rand, spiral Spiral) (*Prop, error) {
	if pf.Height < 0 || pf.Height > 1 {
		return nil, fmt.Errorf("prop: height must be in [0, 1], got %v", pf.Height)
	}
	if pf.ScatterRadius <= 0 {
		return nil, fmt.Errorf("prop: scatter radius must be positive, got %v", pf.ScatterRadius)
	}

	var formation Vec3
	if pf.Centered {
		formation = Vec3{Y: (pf.Height - 0.5) * spiral.Height}
	} else {
		formation = SampleFormationCurve(rng, pf.Height,
			spiral.MaxRadius, spiral.Height, spiral.Turns, 0)
	}

	return NewProp(PropConfig{
		Scatter:     SampleSphereVolume(rng, pf.ScatterRadius),
		Formation:   formation,
		Scale:       pf.Scale,
		SpinSpeed:   pf.SpinSpeed,
		FormRate:    pf.FormRate,
		ScatterRate: pf.ScatterRate,
		Rand:        rng,
	})
}

// DefaultSceneFile returns the stock decorative scene: a dense needle cloud,
// a sparser layer of large baubles, a string of lights, a spire topper, and
// a hidden figure tucked low inside the spiral.
func DefaultSceneFile() *SceneFile {
	return &SceneFile{
		Spiral: SpiralFile{MaxRadius: 6, Height: 14, Turns: 4.5, Jitter: 0.35},
		Clusters: []ClusterFile{
			{
				Name: "needles", Count: 900, ScatterRadius: 18,
				SpanMin: 0, SpanMax: 1, Scale: 0.5,
				Color: ColorFile{R: 0.12, G: 0.55, B: 0.25, A: 1},
			},
			{
				Name: "baubles", Count: 120, ScatterRadius: 16,
				SpanMin: 0.05, SpanMax: 0.9, Scale: 0.9, LargeChance: 0.25,
				Color: ColorFile{R: 0.85, G: 0.18, B: 0.2, A: 1},
			},
			{
				Name: "lights", Count: 260, ScatterRadius: 20,
				SpanMin: 0, SpanMax: 0.95, Scale: 0.35,
				Color: ColorFile{R: 1, G: 0.9, B: 0.55, A: 1},
			},
		},
		Topper: &PropFile{Height: 1, Centered: true, ScatterRadius: 10, Scale: 1.6},
		Figure: &PropFile{Height: 0.25, Centered: true, ScatterRadius: 12, Scale: 1.2},
		Burst:  &BurstFile{Duration: 3.0, Multiplier: 2.0},
		Camera: &CameraFile{ScatterDistance: 34, FormDistance: 24, Speed: 2.0, Threshold: 0.05},
	}
}
