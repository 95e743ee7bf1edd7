package tinsel

import (
	"math"
	"testing"
)

func TestSwayAmplitudeFollowsProgress(t *testing.T) {
	s := DefaultSway()

	// Peak vertical offset over one full oscillation, scattered vs formed.
	peak := func(progress float64) float64 {
		max := 0.0
		for i := 0; i < 1000; i++ {
			elapsed := float64(i) * 0.01
			if y := math.Abs(s.Offset(elapsed, 0, progress).Y); y > max {
				max = y
			}
		}
		return max
	}

	loose := peak(0)
	tight := peak(1)
	if loose <= tight {
		t.Errorf("scattered bob %v not larger than formed bob %v", loose, tight)
	}
	if math.Abs(loose-s.BobLoose) > 0.01 {
		t.Errorf("scattered peak = %v, want ~%v", loose, s.BobLoose)
	}
	if math.Abs(tight-s.BobTight) > 0.01 {
		t.Errorf("formed peak = %v, want ~%v", tight, s.BobTight)
	}
}

func TestSwayDriftIsHalfBob(t *testing.T) {
	s := DefaultSway()

	// At elapsed·freq + phase = 0 the cosine drift peaks while the sine bob
	// is zero.
	off := s.Offset(0, 0, 0)
	assertNear(t, "bob at phase 0", off.Y, 0)
	assertNear(t, "drift at phase 0", off.X, s.BobLoose*driftRatio)
	assertNear(t, "no depth perturbation", off.Z, 0)
}

func TestSwayPhaseDesynchronizes(t *testing.T) {
	s := DefaultSway()
	a := s.Offset(3.7, 0, 1)
	b := s.Offset(3.7, math.Pi/2, 1)
	if a == b {
		t.Error("different phases should produce different offsets")
	}
}

func TestSwayScalePulse(t *testing.T) {
	s := DefaultSway()

	// Formed: the pulse oscillates around 1 within ±PulseAmp.
	min, max := math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		f := s.ScaleFactor(float64(i)*0.01, 0, 1)
		min = math.Min(min, f)
		max = math.Max(max, f)
	}
	if min < 1-s.PulseAmp-epsilon || max > 1+s.PulseAmp+epsilon {
		t.Errorf("formed pulse range [%v, %v] outside 1±%v", min, max, s.PulseAmp)
	}

	// Scattered: the whole pulse collapses by ScatterScale.
	formed := s.ScaleFactor(2.5, 1, 1)
	scattered := s.ScaleFactor(2.5, 1, 0)
	assertNear(t, "scattered collapse", scattered, formed*s.ScatterScale)
}

func TestSwayDefaults(t *testing.T) {
	s := Sway{}.withDefaults()
	if s != DefaultSway() {
		t.Errorf("zero Sway should fill to defaults, got %+v", s)
	}

	// Explicit values survive.
	s = Sway{BobLoose: 2.5}.withDefaults()
	assertNear(t, "explicit loose", s.BobLoose, 2.5)
	assertNear(t, "defaulted tight", s.BobTight, DefaultSway().BobTight)
}

func TestSwayValidation(t *testing.T) {
	bad := []Sway{
		{BobLoose: -1, BobTight: 0.1, BobFreq: 1, PulseAmp: 0.1, PulseFreq: 1, ScatterScale: 0.5},
		{BobLoose: 1, BobTight: 0.1, BobFreq: -1, PulseAmp: 0.1, PulseFreq: 1, ScatterScale: 0.5},
		{BobLoose: 1, BobTight: 0.1, BobFreq: 1, PulseAmp: -0.1, PulseFreq: 1, ScatterScale: 0.5},
		{BobLoose: 1, BobTight: 0.1, BobFreq: 1, PulseAmp: 0.1, PulseFreq: -2, ScatterScale: 0.5},
		{BobLoose: 1, BobTight: 0.1, BobFreq: 1, PulseAmp: 0.1, PulseFreq: 1, ScatterScale: -0.5},
	}
	for i, s := range bad {
		if err := s.validate(); err == nil {
			t.Errorf("case %d: %+v should fail validation", i, s)
		}
	}

	if err := DefaultSway().validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}
