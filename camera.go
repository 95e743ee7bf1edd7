package tinsel

import (
	"fmt"
	"math"
)

// OrbitController smooths the camera's distance from its focal point when the
// mode flips, without touching the viewing direction. The host camera (which
// owns angles, input, and the focal point) hands in its current offset vector
// from the focus each frame and receives it back rescaled; the direction the
// user set is preserved exactly.
type OrbitController struct {
	// ScatterDistance is the target viewing distance while scattered.
	ScatterDistance float64
	// FormDistance is the target viewing distance while formed.
	FormDistance float64
	// Speed scales how quickly the distance closes on its target, per second.
	Speed float64
	// Threshold is the dead zone: distance deltas at or below it are left
	// alone, so a settled camera stops receiving micro-updates.
	Threshold float64
}

// NewOrbitController validates the distances and speed. Both distances and
// the speed must be positive; the threshold must not be negative.
func NewOrbitController(scatterDist, formDist, speed, threshold float64) (*OrbitController, error) {
	o := &OrbitController{
		ScatterDistance: scatterDist,
		FormDistance:    formDist,
		Speed:           speed,
		Threshold:       threshold,
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *OrbitController) validate() error {
	if o.ScatterDistance <= 0 || o.FormDistance <= 0 {
		return fmt.Errorf("orbit: distances must be positive, got scatter=%v form=%v",
			o.ScatterDistance, o.FormDistance)
	}
	if o.Speed <= 0 {
		return fmt.Errorf("orbit: speed must be positive, got %v", o.Speed)
	}
	if o.Threshold < 0 {
		return fmt.Errorf("orbit: threshold must not be negative, got %v", o.Threshold)
	}
	return nil
}

// Target returns the viewing distance the given mode drives toward.
func (o *OrbitController) Target(mode Mode) float64 {
	if mode == ModeFormation {
		return o.FormDistance
	}
	return o.ScatterDistance
}

// Adjust nudges the length of offset (the camera's position relative to its
// focal point) toward the mode's target distance and returns the rescaled
// vector. Only the length changes. A zero offset has no direction to
// preserve and is returned unchanged.
func (o *OrbitController) Adjust(offset Vec3, mode Mode, dt float64) Vec3 {
	d := offset.Len()
	if d == 0 {
		return offset
	}

	target := o.Target(mode)
	if math.Abs(target-d) <= o.Threshold {
		return offset
	}

	nd := d + (target-d)*o.Speed*clampDelta(dt)
	return offset.Scale(nd / d)
}
