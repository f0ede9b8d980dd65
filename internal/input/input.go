package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkthrough/internal/nav"
	"walkthrough/internal/ui"
)

// Adapter polls raylib device state once per frame and hands the navigation coordinator
// a consistent input snapshot. It also owns pointer capture: clicking the scene in
// free-roam captures the cursor for mouse look, ESC releases it, and any mode that does
// not use capture gets the cursor back automatically.
type Adapter struct {
	nav      *nav.Coordinator
	bar      *ui.Bar
	captured bool
}

// New returns an adapter for the coordinator and navigation bar.
func New(c *nav.Coordinator, bar *ui.Bar) *Adapter {
	return &Adapter{nav: c, bar: bar}
}

// Update polls input. Call once per frame, after the bar's click handling and before
// the coordinator's Update so flags set here apply on this frame's tick.
func (a *Adapter) Update() {
	a.updateCapture()

	mouse := rl.GetMousePosition()
	overBar := a.bar.Contains(mouse)
	delta := rl.GetMouseDelta()

	mv := nav.Movement{
		Forward:  rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Backward: rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:     rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:    rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		Captured: a.captured,
	}
	if a.captured {
		mv.LookX, mv.LookY = delta.X, delta.Y
	}
	// Walk mode: press-and-hold advances, but never from a click on the bar.
	if a.nav.WalkActive() && rl.IsMouseButtonDown(rl.MouseButtonLeft) && !overBar {
		mv.MouseForward = true
	}
	a.nav.SetMovement(mv)

	// Orbit inspection: drag rotates, wheel zooms. The coordinator ignores both unless
	// orbit mode owns the camera.
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && !overBar {
		a.nav.OrbitRotate(delta.X, delta.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.nav.OrbitZoom(wheel)
	}
}

// updateCapture acquires or releases the cursor to match the active mode. If the
// platform refuses capture nothing breaks: look and movement simply stay inactive
// until the user clicks again.
func (a *Adapter) updateCapture() {
	if !a.nav.WantsCapture() {
		if a.captured {
			rl.EnableCursor()
			a.captured = false
		}
		return
	}

	if a.captured && rl.IsKeyPressed(rl.KeyEscape) {
		rl.EnableCursor()
		a.captured = false
		return
	}
	if !a.captured && rl.IsMouseButtonPressed(rl.MouseButtonLeft) &&
		!a.bar.Contains(rl.GetMousePosition()) {
		rl.DisableCursor()
		a.captured = rl.IsCursorHidden()
	}
}
