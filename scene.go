package tinsel

// Scene aggregates the morphing subsystems: any number of clusters, the two
// optional singleton props (spire topper and hidden figure), the burst
// scheduler, and the camera's orbit controller. It owns per-frame ordering —
// the burst is updated before its factor is read, and every subsystem's
// transition advances exactly once per Update — and it detects mode flips so
// a dispersal triggers the burst.
//
// The scene does not own the mode. The host passes the current mode into
// every Update call and is free to store it wherever its UI lives.
type Scene struct {
	clusters []*Cluster
	topper   *Prop
	figure   *Prop
	reveal   *Reveal
	burst    *Burst
	orbit    *OrbitController

	prevMode  Mode
	topperOut Transform
	figureOut Transform
}

// NewScene returns an empty scene whose subsystems start settled at the
// given initial mode (the only moment a transition may snap). The burst
// scheduler starts with the stock 3-second, 2x window; replace it with
// SetBurst if needed.
func NewScene(initial Mode) *Scene {
	burst, _ := NewBurst(3.0, 2.0) // stock values, always valid
	return &Scene{
		burst:    burst,
		reveal:   NewReveal(),
		prevMode: initial,
	}
}

// AddCluster adds a cluster to the scene, settled at the scene's current mode.
func (s *Scene) AddCluster(c *Cluster) {
	c.SetProgress(c.transition.Target(s.prevMode))
	s.clusters = append(s.clusters, c)
}

// SetTopper installs the spire topper prop, settled at the current mode.
func (s *Scene) SetTopper(p *Prop) {
	p.SetProgress(p.transition.Target(s.prevMode))
	s.topper = p
}

// SetFigure installs the hidden figure prop, settled at the current mode.
// Its visibility is governed by the scene's Reveal.
func (s *Scene) SetFigure(p *Prop) {
	p.SetProgress(p.transition.Target(s.prevMode))
	s.figure = p
}

// SetBurst replaces the burst scheduler.
func (s *Scene) SetBurst(b *Burst) {
	s.burst = b
}

// SetOrbit installs the camera orbit controller.
func (s *Scene) SetOrbit(o *OrbitController) {
	s.orbit = o
}

// Update advances every subsystem by one frame. elapsed is total scene time
// in seconds, dt the frame delta, mode the current global mode. A flip from
// formation to scattered triggers the burst; the burst factor observed by
// all subsystems this frame is the post-update one.
func (s *Scene) Update(elapsed, dt float64, mode Mode) {
	if mode == ModeScattered && s.prevMode == ModeFormation {
		s.burst.Trigger(elapsed)
	}
	s.prevMode = mode

	s.burst.Update(elapsed)
	factor := s.burst.Factor()

	for _, c := range s.clusters {
		c.Update(elapsed, dt, mode, factor)
	}
	if s.topper != nil {
		s.topperOut = s.topper.Update(elapsed, dt, mode, factor)
	}
	if s.figure != nil {
		tr := s.figure.Update(elapsed, dt, mode, factor)
		tr.Scale *= s.reveal.Update(dt, s.figure.Progress(), mode)
		s.figureOut = tr
	}
}

// Dispose cancels the pending burst window. The scene holds no timers or
// goroutines, so this is all teardown there is; a disposed scene simply must
// not be updated again.
func (s *Scene) Dispose() {
	s.burst.Cancel()
}

// Clusters returns the scene's clusters in the order they were added.
func (s *Scene) Clusters() []*Cluster {
	return s.clusters
}

// Topper returns the topper's transform from the most recent Update.
// ok is false when no topper is installed.
func (s *Scene) Topper() (tr Transform, ok bool) {
	return s.topperOut, s.topper != nil
}

// Figure returns the figure's transform from the most recent Update, with
// the reveal factor already folded into its scale. ok is false when no
// figure is installed.
func (s *Scene) Figure() (tr Transform, ok bool) {
	return s.figureOut, s.figure != nil
}

// Burst returns the scene's burst scheduler.
func (s *Scene) Burst() *Burst {
	return s.burst
}

// Orbit returns the camera orbit controller, or nil if none is installed.
// The host camera calls Adjust on it directly, since the view vector lives
// with the host.
func (s *Scene) Orbit() *OrbitController {
	return s.orbit
}

// Reveal returns the scheduler controlling the hidden figure's entrance.
func (s *Scene) Reveal() *Reveal {
	return s.reveal
}
