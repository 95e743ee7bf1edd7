package tinsel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Reveal drives the hidden figure's entrance. The figure rides the normal
// scattered/formation transition like any prop, but stays invisible (scale
// factor 0) until its transition settles near formed; it then springs from 0
// to full size on an eased tween. Flipping back to scattered hides it
// immediately and re-arms the tween for the next assembly.
//
// There is no global animation manager — the owning Scene calls Update each
// frame.
type Reveal struct {
	// Threshold is the transition progress at which the entrance starts.
	Threshold float64
	// Duration is the entrance length in seconds.
	Duration float32
	// Easing shapes the entrance. The default overshoots for a springy pop.
	Easing ease.TweenFunc
	// Done reports that the entrance has finished and the figure is at full
	// size.
	Done bool

	tween *gween.Tween
	value float64
}

// NewReveal returns a Reveal with the stock entrance: start at progress
// 0.95, spring out over 1.2 seconds.
func NewReveal() *Reveal {
	return &Reveal{
		Threshold: 0.95,
		Duration:  1.2,
		Easing:    ease.OutElastic,
	}
}

// Update advances the entrance by dt seconds given the figure's transition
// progress and the current mode, and returns the scale factor to apply on
// top of the figure's transform. Scattered mode resets everything: the
// figure vanishes the instant a dispersal begins.
func (r *Reveal) Update(dt, progress float64, mode Mode) float64 {
	if mode == ModeScattered {
		r.tween = nil
		r.value = 0
		r.Done = false
		return 0
	}

	if r.tween == nil && !r.Done && progress >= r.Threshold {
		r.tween = gween.New(0, 1, r.Duration, r.Easing)
	}
	if r.tween != nil {
		v, finished := r.tween.Update(float32(dt))
		r.value = float64(v)
		if finished {
			r.tween = nil
			r.value = 1
			r.Done = true
		}
	}
	return r.value
}

// Value returns the scale factor from the most recent Update.
func (r *Reveal) Value() float64 {
	return r.value
}
