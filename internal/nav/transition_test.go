package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poseDistance(a, b Pose) float32 {
	dx := a.Position.X - b.Position.X
	dy := a.Position.Y - b.Position.Y
	dz := a.Position.Z - b.Position.Z
	return dx*dx + dy*dy + dz*dz
}

func TestTransitionReachesTarget(t *testing.T) {
	from := Pose{Position: vec3(0, 1, 0), Target: vec3(0, 1, -1), Fovy: 60}
	to := Pose{Position: vec3(5, 2, 3), Target: vec3(0, 1, 0), Fovy: 50}

	tr := NewTransition(1.0)
	tr.Start(from, to)
	require.True(t, tr.Active())

	var pose Pose
	var done bool
	for i := 0; i < 200 && !done; i++ {
		pose, done = tr.Update(0.02)
	}
	require.True(t, done, "transition never completed")
	assert.False(t, tr.Active())
	assert.InDelta(t, to.Position.X, pose.Position.X, 1e-3)
	assert.InDelta(t, to.Position.Y, pose.Position.Y, 1e-3)
	assert.InDelta(t, to.Position.Z, pose.Position.Z, 1e-3)
	assert.InDelta(t, to.Fovy, pose.Fovy, 1e-3)
}

func TestTransitionCompletesExactlyOnce(t *testing.T) {
	tr := NewTransition(0.5)
	tr.Start(Pose{Fovy: 60}, Pose{Position: vec3(1, 0, 0), Fovy: 60})

	completions := 0
	for i := 0; i < 100; i++ {
		if _, done := tr.Update(0.05); done {
			completions++
		}
	}
	assert.Equal(t, 1, completions)
}

func TestTransitionInertAfterCompletion(t *testing.T) {
	tr := NewTransition(0.2)
	tr.Start(Pose{Fovy: 60}, Pose{Position: vec3(1, 2, 3), Fovy: 55})

	var final Pose
	for i := 0; i < 50; i++ {
		final, _ = tr.Update(0.05)
	}
	again, done := tr.Update(1)
	assert.False(t, done)
	assert.Equal(t, final, again)
}

func TestTransitionRetriggerIsContinuous(t *testing.T) {
	from := Pose{Position: vec3(0, 1.6, 0), Target: vec3(0, 1.6, -1), Fovy: 60}
	first := Pose{Position: vec3(10, 1.6, 0), Target: vec3(10, 1.6, -1), Fovy: 50}
	second := Pose{Position: vec3(-4, 1.6, 6), Target: vec3(0, 1, 0), Fovy: 60}

	tr := NewTransition(1.5)
	tr.Start(from, first)

	// Run roughly half way, then redirect from the live mid-flight pose.
	var live Pose
	for i := 0; i < 25; i++ {
		live, _ = tr.Update(0.03)
	}
	tr.Start(live, second)

	after, _ := tr.Update(0.001)
	assert.Less(t, poseDistance(live, after), float32(1e-3),
		"pose jumped at retrigger: %v -> %v", live, after)
}
