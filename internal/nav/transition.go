package nav

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition animates the camera from one pose to another over a fixed duration with a
// gentle ease. All seven components (position, target, field of view) share the same
// easing curve so the motion reads as a single move.
//
// Restarting a transition mid-flight re-anchors the tweens at the pose passed to Start,
// which callers take from the live camera. The camera therefore never snaps, no matter
// how quickly views are clicked in succession.
type Transition struct {
	tweens   [7]*gween.Tween
	duration float32
	easing   ease.TweenFunc
	active   bool
	pose     Pose
}

// NewTransition returns an animator with the given duration in seconds.
func NewTransition(duration float32) *Transition {
	return &Transition{duration: duration, easing: ease.InOutCubic}
}

// Start begins animating from the given live pose to the target pose. Any transition
// already in flight is discarded.
func (t *Transition) Start(from, to Pose) {
	t.pose = from
	t.tweens[0] = gween.New(from.Position.X, to.Position.X, t.duration, t.easing)
	t.tweens[1] = gween.New(from.Position.Y, to.Position.Y, t.duration, t.easing)
	t.tweens[2] = gween.New(from.Position.Z, to.Position.Z, t.duration, t.easing)
	t.tweens[3] = gween.New(from.Target.X, to.Target.X, t.duration, t.easing)
	t.tweens[4] = gween.New(from.Target.Y, to.Target.Y, t.duration, t.easing)
	t.tweens[5] = gween.New(from.Target.Z, to.Target.Z, t.duration, t.easing)
	t.tweens[6] = gween.New(from.Fovy, to.Fovy, t.duration, t.easing)
	t.active = true
}

// Active reports whether a transition is in flight.
func (t *Transition) Active() bool {
	return t.active
}

// Update advances the animation by dt seconds and returns the interpolated pose.
// The second return is true exactly once, on the frame the transition completes; after
// that Update keeps returning the final pose without mutating it until restarted.
func (t *Transition) Update(dt float32) (Pose, bool) {
	if !t.active {
		return t.pose, false
	}

	vals := [7]float32{}
	allDone := true
	for i, tw := range t.tweens {
		v, done := tw.Update(dt)
		vals[i] = v
		if !done {
			allDone = false
		}
	}
	t.pose = Pose{
		Position: vec3(vals[0], vals[1], vals[2]),
		Target:   vec3(vals[3], vals[4], vals[5]),
		Fovy:     vals[6],
	}
	if allDone {
		t.active = false
		return t.pose, true
	}
	return t.pose, false
}
