package tinsel

import "fmt"

// Burst is a two-state scheduler that temporarily elevates secondary motion
// after a dispersal. Triggering it arms an expiry measured in scene time;
// Update reverts the state once that time passes. There is no real timer and
// therefore no callback that could fire against a torn-down subsystem —
// a Burst that is never updated again simply stops mattering.
//
// Re-triggering while already bursting restarts the window from the new
// trigger time. Windows never stack.
type Burst struct {
	// Duration is how long a burst lasts, in seconds of scene time.
	Duration float64
	// Multiplier is the motion factor exposed while bursting.
	Multiplier float64

	active bool
	expiry float64
}

// NewBurst returns an idle Burst. Duration must be positive and the
// multiplier must be at least 1.
func NewBurst(duration, multiplier float64) (*Burst, error) {
	b := &Burst{Duration: duration, Multiplier: multiplier}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Burst) validate() error {
	if b.Duration <= 0 {
		return fmt.Errorf("burst: duration must be positive, got %v", b.Duration)
	}
	if b.Multiplier < 1 {
		return fmt.Errorf("burst: multiplier must be >= 1, got %v", b.Multiplier)
	}
	return nil
}

// Trigger starts (or restarts) a burst at the given scene time.
func (b *Burst) Trigger(now float64) {
	b.active = true
	b.expiry = now + b.Duration
}

// Update reverts an expired burst. Call once per frame before reading Factor.
func (b *Burst) Update(now float64) {
	if b.active && now >= b.expiry {
		b.active = false
		b.expiry = 0
	}
}

// Cancel reverts immediately. Call when tearing down the owning subsystem.
func (b *Burst) Cancel() {
	b.active = false
	b.expiry = 0
}

// Active reports whether a burst is in progress.
func (b *Burst) Active() bool {
	return b.active
}

// Factor returns Multiplier while bursting and 1 otherwise.
func (b *Burst) Factor() float64 {
	if b.active {
		return b.Multiplier
	}
	return 1
}
