package nav

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"walkthrough/internal/config"
)

// TourPhase is the guided tour's state. Idle doubles as the terminal state.
type TourPhase int

const (
	TourIdle TourPhase = iota
	TourTravelling
	TourRotating
	TourPausing
)

// tourWaypoints is the fixed visiting order of the guided tour.
var tourWaypoints = []ViewKey{ViewHall, ViewBedroom, ViewKitchen}

// Tour drives the scripted walkthrough: fly to each waypoint in order, sweep a full
// turn around the house look target, dwell briefly, then move on. After the last
// waypoint it returns to Idle and reports completion once.
//
// Rotation and pause are time-stepped from Update's dt, so cancelling the tour cannot
// leave a stray timer firing into whatever mode comes next.
type Tour struct {
	reg   *Registry
	trans *Transition

	rotationDuration float32
	pauseDuration    float32
	lookTarget       rl.Vector3

	phase TourPhase
	index int

	sweep     *gween.Tween // 0..2π over the rotation duration
	baseAngle float32      // waypoint azimuth around the look target at sweep start
	radius    float32
	height    float32
	fovy      float32

	pauseLeft float32
	pose      Pose
}

// NewTour returns an idle tour over the fixed waypoints.
func NewTour(reg *Registry, trans *Transition, cfg config.Tour) *Tour {
	return &Tour{
		reg:              reg,
		trans:            trans,
		rotationDuration: cfg.RotationDuration,
		pauseDuration:    cfg.PauseDuration,
		lookTarget:       vec3(cfg.LookTarget[0], cfg.LookTarget[1], cfg.LookTarget[2]),
	}
}

// Start begins the tour at the first waypoint, transitioning from the given live pose.
func (t *Tour) Start(from Pose) {
	t.index = 0
	t.phase = TourTravelling
	t.pose = from
	t.trans.Start(from, t.waypointPose(0))
}

// Cancel aborts the tour immediately: back to Idle, sweep discarded. Safe to call in
// any phase; a cancelled tour never reports completion.
func (t *Tour) Cancel() {
	t.phase = TourIdle
	t.sweep = nil
}

// Active reports whether the tour currently owns the camera.
func (t *Tour) Active() bool {
	return t.phase != TourIdle
}

// Phase returns the current phase. Used by tests and the debug overlay.
func (t *Tour) Phase() TourPhase {
	return t.phase
}

// Waypoint returns the view key of the waypoint currently being visited.
func (t *Tour) Waypoint() ViewKey {
	if t.index < len(tourWaypoints) {
		return tourWaypoints[t.index]
	}
	return tourWaypoints[len(tourWaypoints)-1]
}

// Update advances the tour by dt seconds and returns the camera pose. The second
// return is true exactly once, on the frame the whole tour completes.
func (t *Tour) Update(dt float32) (Pose, bool) {
	switch t.phase {
	case TourTravelling:
		pose, done := t.trans.Update(dt)
		t.pose = pose
		if done {
			t.beginRotation()
		}
	case TourRotating:
		a, done := t.sweep.Update(dt)
		angle := t.baseAngle + a
		t.pose = Pose{
			Position: vec3(
				t.lookTarget.X+t.radius*math32.Sin(angle),
				t.height,
				t.lookTarget.Z+t.radius*math32.Cos(angle),
			),
			Target: t.lookTarget,
			Fovy:   t.fovy,
		}
		if done {
			t.phase = TourPausing
			t.pauseLeft = t.pauseDuration
		}
	case TourPausing:
		t.pauseLeft -= dt
		if t.pauseLeft <= 0 {
			t.index++
			if t.index < len(tourWaypoints) {
				t.phase = TourTravelling
				t.trans.Start(t.pose, t.waypointPose(t.index))
			} else {
				t.phase = TourIdle
				return t.pose, true
			}
		}
	}
	return t.pose, false
}

// waypointPose is the pose the travel phase flies to: the waypoint's position and field
// of view, already facing the shared look target so the sweep starts without a cut.
func (t *Tour) waypointPose(i int) Pose {
	wp := t.reg.PoseFor(tourWaypoints[i])
	wp.Target = t.lookTarget
	return wp
}

// beginRotation switches to the sweep around the look target. The orbit radius is the
// horizontal distance from the waypoint pose to the look target, so the sweep passes
// through the point the travel phase just arrived at.
func (t *Tour) beginRotation() {
	wp := t.reg.PoseFor(tourWaypoints[t.index])
	dx := wp.Position.X - t.lookTarget.X
	dz := wp.Position.Z - t.lookTarget.Z
	t.radius = math32.Sqrt(dx*dx + dz*dz)
	t.baseAngle = math32.Atan2(dx, dz)
	t.height = wp.Position.Y
	t.fovy = wp.Fovy
	t.sweep = gween.New(0, 2*math32.Pi, t.rotationDuration, ease.InOutSine)
	t.phase = TourRotating
}
