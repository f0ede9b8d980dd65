package nav

import (
	"walkthrough/internal/collision"
	"walkthrough/internal/config"
	"walkthrough/internal/logger"
)

// ModeKind says which controller owns the camera pose this frame.
type ModeKind int

const (
	ModeTransitioning ModeKind = iota
	ModeFreeRoam
	ModeOrbit
	ModeTouring
)

// String returns a short name for logging and the debug overlay.
func (k ModeKind) String() string {
	switch k {
	case ModeTransitioning:
		return "transitioning"
	case ModeFreeRoam:
		return "free-roam"
	case ModeOrbit:
		return "orbit"
	case ModeTouring:
		return "touring"
	default:
		return "unknown"
	}
}

// Mode is the active navigation mode plus the view it concerns: the target view while
// transitioning, the landed view in free-roam.
type Mode struct {
	Kind ModeKind
	View ViewKey
}

// Coordinator is the single source of truth for camera ownership. Exactly one mode is
// active at a time; Update lets only the matching controller produce the pose, and
// every mode change tears down the previous controller's state first. All methods are
// called from the frame loop's goroutine; there is no locking.
type Coordinator struct {
	reg   *Registry
	trans *Transition
	free  *FreeRoam
	orbit *Orbit
	tour  *Tour

	mode        Mode
	pendingView ViewKey // view the active transition lands on
	pose        Pose

	log *logger.Logger
}

// New builds the full navigation stack from the configuration. The camera starts in
// free-roam at the default view, outside the front door.
func New(cfg config.Config, probe *collision.Probe, log *logger.Logger) *Coordinator {
	reg := NewRegistry(cfg)
	trans := NewTransition(cfg.Transition.Duration)
	c := &Coordinator{
		reg:   reg,
		trans: trans,
		free:  NewFreeRoam(cfg.Movement.Speed, cfg.Movement.EyeHeight, cfg.Movement.LookSensitivity, probe),
		orbit: NewOrbit(),
		tour:  NewTour(reg, trans, cfg.Tour),
		log:   log,
	}
	c.pose = reg.PoseFor(ViewDefault)
	c.mode = Mode{Kind: ModeFreeRoam, View: ViewDefault}
	c.free.Enable(c.pose, false)
	return c
}

// Mode returns the active navigation mode.
func (c *Coordinator) Mode() Mode {
	return c.mode
}

// Pose returns the live camera pose, as written by the last Update.
func (c *Coordinator) Pose() Pose {
	return c.pose
}

// TourActive reports whether the guided tour owns the camera.
func (c *Coordinator) TourActive() bool {
	return c.mode.Kind == ModeTouring
}

// NavigateTo flies the camera to the named view. Manual navigation always wins: an
// active tour is cancelled on the spot, and a transition already in flight is restarted
// from the live pose so the motion stays continuous.
func (c *Coordinator) NavigateTo(key ViewKey) {
	if c.tour.Active() {
		c.tour.Cancel()
		c.logf("tour cancelled by navigation to " + key.String())
	}
	c.teardown()
	c.pendingView = key
	c.mode = Mode{Kind: ModeTransitioning, View: key}
	c.trans.Start(c.pose, c.reg.PoseFor(key))
	c.logf("navigating to " + key.String())
}

// StartTour begins the guided tour from the live pose. No-op when already touring.
func (c *Coordinator) StartTour() {
	if c.tour.Active() {
		return
	}
	c.teardown()
	c.tour.Start(c.pose)
	c.mode = Mode{Kind: ModeTouring, View: c.tour.Waypoint()}
	c.logf("tour started")
}

// StopTour cancels a running tour and leaves the camera where it is, in free-roam.
func (c *Coordinator) StopTour() {
	if !c.tour.Active() {
		return
	}
	c.tour.Cancel()
	c.free.Enable(c.pose, false)
	c.mode = Mode{Kind: ModeFreeRoam, View: c.tour.Waypoint()}
	c.logf("tour stopped")
}

// SetMovement passes the per-frame input snapshot to the free-roam controller. Ignored
// unless free-roam owns the camera, so no other mode can be steered from the keyboard.
func (c *Coordinator) SetMovement(in Movement) {
	if c.mode.Kind != ModeFreeRoam {
		return
	}
	c.free.SetInput(in)
}

// OrbitRotate applies a drag delta in orbit-inspect mode. Ignored in any other mode.
func (c *Coordinator) OrbitRotate(dx, dy float32) {
	if c.mode.Kind != ModeOrbit {
		return
	}
	c.orbit.Rotate(dx, dy)
}

// OrbitZoom applies a zoom delta in orbit-inspect mode. Ignored in any other mode.
func (c *Coordinator) OrbitZoom(delta float32) {
	if c.mode.Kind != ModeOrbit {
		return
	}
	c.orbit.Zoom(delta)
}

// WalkActive reports whether walk-mode free-roam currently owns the camera. The input
// adapter uses it to decide whether the primary button means "advance".
func (c *Coordinator) WalkActive() bool {
	return c.mode.Kind == ModeFreeRoam && c.free.WalkMode()
}

// WantsCapture reports whether the active mode uses pointer capture for mouse look.
func (c *Coordinator) WantsCapture() bool {
	return c.mode.Kind == ModeFreeRoam
}

// Update advances the active controller by dt seconds and returns the camera pose for
// this frame. The mode switch is the write barrier: whatever mode is active, exactly
// one controller computes the pose.
func (c *Coordinator) Update(dt float32) Pose {
	switch c.mode.Kind {
	case ModeTransitioning:
		pose, done := c.trans.Update(dt)
		c.pose = pose
		if done {
			c.land()
		}
	case ModeFreeRoam:
		c.pose = c.free.Update(dt)
	case ModeOrbit:
		c.pose = c.orbit.Pose()
	case ModeTouring:
		pose, finished := c.tour.Update(dt)
		c.pose = pose
		if finished {
			// Tour ran to completion: hand the camera back to manual control at the
			// last waypoint.
			c.free.Enable(c.pose, false)
			c.mode = Mode{Kind: ModeFreeRoam, View: c.tour.Waypoint()}
			c.logf("tour finished")
		}
	}
	return c.pose
}

// land finishes a manual transition: the top view becomes orbit-inspect, every other
// view becomes free-roam seeded with the landed pose.
func (c *Coordinator) land() {
	if c.pendingView == ViewTop {
		c.orbit.Enter(c.pose)
		c.mode = Mode{Kind: ModeOrbit, View: ViewTop}
	} else {
		c.free.Enable(c.pose, c.pendingView == ViewWalk)
		c.mode = Mode{Kind: ModeFreeRoam, View: c.pendingView}
	}
	c.logf("arrived at " + c.pendingView.String())
}

// teardown clears the state of whichever controller is being left.
func (c *Coordinator) teardown() {
	if c.mode.Kind == ModeFreeRoam {
		c.free.Disable()
	}
}

func (c *Coordinator) logf(line string) {
	if c.log != nil {
		c.log.Log(line)
	}
}
