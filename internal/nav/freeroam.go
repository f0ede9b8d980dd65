package nav

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkthrough/internal/collision"
)

// pitchLimit keeps the look direction away from straight up/down, where the horizontal
// forward vector would degenerate.
const pitchLimit = 1.45

// Movement is the per-frame input snapshot for first-person navigation. The input
// adapter writes it from device state; FreeRoam reads it exactly once per Update. The
// split keeps event-driven writes and the frame tick from interleaving mid-frame.
type Movement struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	// MouseForward is the walk-mode press-and-hold-to-advance button.
	MouseForward bool

	// LookX and LookY are this frame's pointer deltas in pixels.
	LookX float32
	LookY float32

	// Captured reports whether the pointer is currently captured for mouse look.
	Captured bool
}

// FreeRoam is the first-person controller: collision-aware keyboard movement, mouse
// look, and a fixed eye height. In walk mode holding the primary button also advances,
// and movement works even without pointer capture.
type FreeRoam struct {
	active   bool
	walkMode bool

	pos   rl.Vector3
	yaw   float32
	pitch float32
	fovy  float32

	speed     float32
	eyeHeight float32
	lookSens  float32

	probe *collision.Probe
	input Movement
}

// NewFreeRoam returns a disabled controller using the given collision probe.
func NewFreeRoam(speed, eyeHeight, lookSens float32, probe *collision.Probe) *FreeRoam {
	return &FreeRoam{
		speed:     speed,
		eyeHeight: eyeHeight,
		lookSens:  lookSens,
		probe:     probe,
	}
}

// Enable activates the controller at the given pose. The position snaps to the pose
// with the Y coordinate pinned to eye height, and yaw/pitch are recovered from the
// pose's look direction so the view does not jump.
func (f *FreeRoam) Enable(p Pose, walkMode bool) {
	f.active = true
	f.walkMode = walkMode
	f.pos = p.Position
	f.pos.Y = f.eyeHeight
	f.fovy = p.Fovy

	d := rl.Vector3Subtract(p.Target, p.Position)
	if l := rl.Vector3Length(d); l > 1e-6 {
		f.yaw = math32.Atan2(d.X, d.Z)
		f.pitch = clamp(math32.Asin(d.Y/l), -pitchLimit, pitchLimit)
	}
	f.input = Movement{}
}

// Disable deactivates the controller and clears every movement flag, so no keyed-down
// state leaks into the next activation.
func (f *FreeRoam) Disable() {
	f.active = false
	f.input = Movement{}
}

// Active reports whether the controller currently owns the camera.
func (f *FreeRoam) Active() bool {
	return f.active
}

// WalkMode reports whether the walk variant is active.
func (f *FreeRoam) WalkMode() bool {
	return f.walkMode
}

// SetInput stores the input snapshot for the next Update. Ignored while disabled.
func (f *FreeRoam) SetInput(in Movement) {
	if !f.active {
		return
	}
	f.input = in
}

// lookDir returns the full look direction from yaw and pitch.
func (f *FreeRoam) lookDir() rl.Vector3 {
	cosP := math32.Cos(f.pitch)
	return vec3(cosP*math32.Sin(f.yaw), math32.Sin(f.pitch), cosP*math32.Cos(f.yaw))
}

// Update advances one frame. Mouse look turns the camera while the pointer is captured.
// Each pressed direction is collision-probed independently; blocked directions
// contribute nothing. The combined displacement is renormalized to a single step so
// diagonal movement is no faster than axis-aligned movement, and the camera height is
// re-pinned at the end of every frame.
func (f *FreeRoam) Update(dt float32) Pose {
	if !f.active {
		return f.pose()
	}
	in := f.input

	if in.Captured {
		f.yaw -= in.LookX * f.lookSens
		f.pitch = clamp(f.pitch-in.LookY*f.lookSens, -pitchLimit, pitchLimit)
	}

	// Without pointer capture only walk mode keeps moving (click-to-advance works with
	// a free cursor); the plain first-person variant stands still.
	if !f.walkMode && !in.Captured {
		return f.pose()
	}

	look := f.lookDir()
	forward := rl.Vector3Normalize(vec3(look.X, 0, look.Z))
	right := rl.Vector3CrossProduct(vec3(0, 1, 0), forward)

	var move rl.Vector3
	moved := false
	step := func(dir rl.Vector3) {
		if f.probe.Blocked(f.pos, dir) {
			return
		}
		move = rl.Vector3Add(move, dir)
		moved = true
	}

	if in.Forward {
		step(forward)
	}
	if in.Backward {
		step(rl.Vector3Scale(forward, -1))
	}
	if in.Left {
		step(rl.Vector3Scale(right, -1))
	}
	if in.Right {
		step(right)
	}
	// Walk-mode mouse advance counts as a forward press; when the forward key is down
	// it contributes nothing, otherwise holding both would be probed twice.
	if f.walkMode && in.MouseForward && !in.Forward {
		step(forward)
	}

	if moved {
		if l := rl.Vector3Length(move); l > 1e-6 {
			move = rl.Vector3Scale(move, f.speed*dt/l)
			f.pos = rl.Vector3Add(f.pos, move)
		}
	}
	f.pos.Y = f.eyeHeight

	return f.pose()
}

func (f *FreeRoam) pose() Pose {
	return Pose{
		Position: f.pos,
		Target:   rl.Vector3Add(f.pos, f.lookDir()),
		Fovy:     f.fovy,
	}
}
