package tinsel

import (
	"fmt"
	"math"
)

// progressSnap is the residual below which progress snaps to its target.
// Exponential smoothing only ever approaches the target; the snap is what
// lets a transition actually finish.
const progressSnap = 0.01

// Transition converts the binary mode signal into a smoothly varying
// progress scalar in [0, 1]: 0 is fully scattered, 1 is fully formed.
//
// Each Advance performs frame-rate-independent exponential smoothing,
//
//	progress += (target - progress) · (1 - e^(-rate·dt))
//
// with a rate that depends on direction: FormRate while assembling toward 1,
// ScatterRate while dispersing toward 0. Assembly is typically configured
// slower than dispersal.
type Transition struct {
	// Progress is the current blend value. Read freely; write only to
	// initialize (e.g. to 1 when a scene starts already formed).
	Progress float64
	// FormRate is the convergence rate toward 1, per second.
	FormRate float64
	// ScatterRate is the convergence rate toward 0, per second.
	ScatterRate float64
}

// NewTransition returns a Transition starting at progress 0.
// Both rates must be positive.
func NewTransition(formRate, scatterRate float64) (*Transition, error) {
	t := &Transition{FormRate: formRate, ScatterRate: scatterRate}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transition) validate() error {
	if t.FormRate <= 0 {
		return fmt.Errorf("transition: form rate must be positive, got %v", t.FormRate)
	}
	if t.ScatterRate <= 0 {
		return fmt.Errorf("transition: scatter rate must be positive, got %v", t.ScatterRate)
	}
	return nil
}

// Target returns the progress value the given mode drives toward.
func (t *Transition) Target(mode Mode) float64 {
	if mode == ModeFormation {
		return 1
	}
	return 0
}

// Advance moves Progress toward the mode's target by dt seconds and returns
// the updated value. dt is clamped to maxFrameDelta so a stalled frame cannot
// overshoot, and Progress is clamped to [0, 1] after the update. Within
// progressSnap of the target, Progress snaps to the target exactly.
func (t *Transition) Advance(mode Mode, dt float64) float64 {
	target := t.Target(mode)
	rate := t.ScatterRate
	if mode == ModeFormation {
		rate = t.FormRate
	}

	dt = clampDelta(dt)
	t.Progress += (target - t.Progress) * (1 - math.Exp(-rate*dt))

	if t.Progress < 0 {
		t.Progress = 0
	} else if t.Progress > 1 {
		t.Progress = 1
	}
	if math.Abs(target-t.Progress) < progressSnap {
		t.Progress = target
	}
	return t.Progress
}

// Settled reports whether Progress sits exactly on the given mode's target.
func (t *Transition) Settled(mode Mode) bool {
	return t.Progress == t.Target(mode)
}
