package tinsel

import (
	"fmt"
	"math"
)

// Sway describes the oscillatory embellishment layered on top of an entity's
// blended base position and scale: a vertical bob, a smaller horizontal
// drift, and a multiplicative scale pulse. All three are driven by elapsed
// scene time plus the entity's phase, so entities with different phases move
// out of step.
//
// The bob amplitude interpolates between BobLoose (scattered) and BobTight
// (formed) as progress moves, and the whole scale collapses toward
// ScatterScale while dispersed.
type Sway struct {
	// BobLoose is the vertical bob amplitude while fully scattered.
	BobLoose float64
	// BobTight is the vertical bob amplitude while fully formed.
	BobTight float64
	// BobFreq is the bob angular frequency in radians per second.
	BobFreq float64
	// PulseAmp is the relative amplitude of the scale pulse.
	PulseAmp float64
	// PulseFreq is the pulse angular frequency in radians per second.
	PulseFreq float64
	// ScatterScale is the scale factor applied while fully scattered;
	// it interpolates up to 1 as the formation assembles.
	ScatterScale float64
}

// DefaultSway returns the stock embellishment tuning.
func DefaultSway() Sway {
	return Sway{
		BobLoose:     0.6,
		BobTight:     0.12,
		BobFreq:      1.1,
		PulseAmp:     0.08,
		PulseFreq:    2.3,
		ScatterScale: 0.55,
	}
}

// withDefaults fills zero-valued fields from DefaultSway.
func (s Sway) withDefaults() Sway {
	d := DefaultSway()
	if s.BobLoose == 0 {
		s.BobLoose = d.BobLoose
	}
	if s.BobTight == 0 {
		s.BobTight = d.BobTight
	}
	if s.BobFreq == 0 {
		s.BobFreq = d.BobFreq
	}
	if s.PulseAmp == 0 {
		s.PulseAmp = d.PulseAmp
	}
	if s.PulseFreq == 0 {
		s.PulseFreq = d.PulseFreq
	}
	if s.ScatterScale == 0 {
		s.ScatterScale = d.ScatterScale
	}
	return s
}

func (s Sway) validate() error {
	if s.BobLoose < 0 || s.BobTight < 0 {
		return fmt.Errorf("sway: bob amplitudes must not be negative, got loose=%v tight=%v",
			s.BobLoose, s.BobTight)
	}
	if s.BobFreq <= 0 || s.PulseFreq <= 0 {
		return fmt.Errorf("sway: frequencies must be positive, got bob=%v pulse=%v",
			s.BobFreq, s.PulseFreq)
	}
	if s.PulseAmp < 0 {
		return fmt.Errorf("sway: pulse amplitude must not be negative, got %v", s.PulseAmp)
	}
	if s.ScatterScale <= 0 {
		return fmt.Errorf("sway: scattered scale must be positive, got %v", s.ScatterScale)
	}
	return nil
}

// driftRatio is the horizontal drift amplitude relative to the vertical bob.
const driftRatio = 0.5

// Offset returns the positional perturbation for one entity at the given
// elapsed time, phase, and transition progress. The vertical axis bobs on a
// sine; the X axis drifts on a half-amplitude cosine.
func (s Sway) Offset(elapsed, phase, progress float64) Vec3 {
	amp := lerp(s.BobLoose, s.BobTight, progress)
	return Vec3{
		X: amp * driftRatio * math.Cos(elapsed*s.BobFreq+phase),
		Y: amp * math.Sin(elapsed*s.BobFreq+phase),
	}
}

// ScaleFactor returns the multiplicative scale for one entity: the pulse
// around 1 combined with the transition-dependent collapse toward
// ScatterScale while dispersed.
func (s Sway) ScaleFactor(elapsed, phase, progress float64) float64 {
	pulse := 1 + s.PulseAmp*math.Sin(elapsed*s.PulseFreq+phase)
	return pulse * lerp(s.ScatterScale, 1, progress)
}
