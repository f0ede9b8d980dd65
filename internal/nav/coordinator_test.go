package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walkthrough/internal/collision"
	"walkthrough/internal/config"
)

func newCoordinator() *Coordinator {
	return New(config.Default(), collision.NewProbe(openGeom, 0.6), nil)
}

// stepUntil advances the coordinator until cond holds, failing the test if it never does.
func stepUntil(t *testing.T, c *Coordinator, cond func() bool) {
	t.Helper()
	for i := 0; i < 5000; i++ {
		c.Update(0.05)
		if cond() {
			return
		}
	}
	t.Fatalf("condition never reached; mode %v", c.Mode())
}

func TestCoordinatorStartsInFreeRoam(t *testing.T) {
	c := newCoordinator()
	assert.Equal(t, ModeFreeRoam, c.Mode().Kind)
	assert.Equal(t, ViewDefault, c.Mode().View)
	assert.True(t, c.Pose().Finite())
}

func TestNavigateLandsInFreeRoam(t *testing.T) {
	c := newCoordinator()
	c.NavigateTo(ViewKitchen)
	require.Equal(t, ModeTransitioning, c.Mode().Kind)

	stepUntil(t, c, func() bool { return c.Mode().Kind != ModeTransitioning })
	assert.Equal(t, Mode{Kind: ModeFreeRoam, View: ViewKitchen}, c.Mode())

	want := c.reg.PoseFor(ViewKitchen)
	assert.InDelta(t, want.Position.X, c.Pose().Position.X, 1e-2)
	assert.InDelta(t, want.Position.Z, c.Pose().Position.Z, 1e-2)
}

func TestTopViewLandsInOrbit(t *testing.T) {
	c := newCoordinator()
	c.NavigateTo(ViewTop)
	stepUntil(t, c, func() bool { return c.Mode().Kind != ModeTransitioning })
	assert.Equal(t, ModeOrbit, c.Mode().Kind)

	// And leaving the top view goes back to free-roam.
	c.NavigateTo(ViewHall)
	stepUntil(t, c, func() bool { return c.Mode().Kind != ModeTransitioning })
	assert.Equal(t, ModeFreeRoam, c.Mode().Kind)
}

func TestWalkViewEnablesWalkMode(t *testing.T) {
	c := newCoordinator()
	c.NavigateTo(ViewWalk)
	assert.False(t, c.WalkActive())
	stepUntil(t, c, func() bool { return c.Mode().Kind != ModeTransitioning })
	assert.True(t, c.WalkActive())
}

func TestRedirectMidTransitionIsContinuous(t *testing.T) {
	c := newCoordinator()
	c.NavigateTo(ViewBedroom)
	for i := 0; i < 12; i++ {
		c.Update(0.05)
	}
	before := c.Pose()
	c.NavigateTo(ViewTop)
	after := c.Update(0.001)

	assert.Less(t, poseDistance(before, after), float32(1e-3),
		"camera jumped when redirected mid-transition")
}

func TestTourRunsToCompletion(t *testing.T) {
	c := newCoordinator()
	c.StartTour()
	require.Equal(t, ModeTouring, c.Mode().Kind)

	stepUntil(t, c, func() bool { return c.Mode().Kind != ModeTouring })
	assert.Equal(t, ModeFreeRoam, c.Mode().Kind)
	assert.Equal(t, ViewKitchen, c.Mode().View, "tour should end at the last waypoint")

	// Manual navigation works normally afterwards.
	c.NavigateTo(ViewHall)
	assert.Equal(t, ModeTransitioning, c.Mode().Kind)
}

func TestManualNavigationCancelsTour(t *testing.T) {
	c := newCoordinator()
	c.StartTour()
	stepUntil(t, c, func() bool { return c.tour.Phase() == TourRotating })
	require.Equal(t, ViewHall, c.tour.Waypoint())

	c.NavigateTo(ViewKitchen)
	assert.Equal(t, Mode{Kind: ModeTransitioning, View: ViewKitchen}, c.Mode())
	assert.False(t, c.tour.Active())

	// The abandoned rotation must not keep feeding poses.
	stepUntil(t, c, func() bool { return c.Mode().Kind == ModeFreeRoam })
	assert.Equal(t, ViewKitchen, c.Mode().View)
}

func TestStartTourWhileTouringIsNoOp(t *testing.T) {
	c := newCoordinator()
	c.StartTour()
	for i := 0; i < 5; i++ {
		c.Update(0.05)
	}
	phase := c.tour.Phase()
	c.StartTour()
	assert.Equal(t, phase, c.tour.Phase(), "restart must not rewind a running tour")
}

func TestStopTourReturnsToFreeRoam(t *testing.T) {
	c := newCoordinator()
	c.StartTour()
	for i := 0; i < 10; i++ {
		c.Update(0.05)
	}
	pose := c.Pose()
	c.StopTour()

	assert.Equal(t, ModeFreeRoam, c.Mode().Kind)
	after := c.Update(0.05)
	assert.InDelta(t, pose.Position.X, after.Position.X, 1e-3)
	assert.InDelta(t, pose.Position.Z, after.Position.Z, 1e-3)
}

func TestInputRoutedOnlyToActiveMode(t *testing.T) {
	c := newCoordinator()
	c.NavigateTo(ViewHall)
	require.Equal(t, ModeTransitioning, c.Mode().Kind)

	// Movement and orbit input must not disturb an in-flight transition.
	c.SetMovement(Movement{Forward: true, Captured: true})
	c.OrbitRotate(500, 500)
	c.OrbitZoom(10)

	p1 := c.Update(0.05)
	p2, _ := c.trans.Update(0)
	assert.Equal(t, p1, p2, "transition no longer owns the pose")
}
