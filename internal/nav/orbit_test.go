package nav

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestOrbitEnterKeepsDistanceAndTarget(t *testing.T) {
	o := NewOrbit()
	in := Pose{Position: vec3(0, 14, 0.01), Target: vec3(0, 0, 0), Fovy: 60}
	o.Enter(in)

	out := o.Pose()
	assert.Equal(t, in.Target, out.Target)
	assert.Equal(t, in.Fovy, out.Fovy)

	wantR := rl.Vector3Length(rl.Vector3Subtract(in.Position, in.Target))
	gotR := rl.Vector3Length(rl.Vector3Subtract(out.Position, out.Target))
	assert.InDelta(t, wantR, gotR, 1e-3)
}

func TestOrbitRotateFullCircleReturns(t *testing.T) {
	o := NewOrbit()
	o.Enter(Pose{Position: vec3(5, 6, 5), Target: vec3(0, 1, 0), Fovy: 60})
	start := o.Pose()

	// 2π of azimuth at the configured radians-per-pixel rate.
	pixels := 2 * 3.14159265 / 0.005
	o.Rotate(float32(pixels), 0)

	end := o.Pose()
	assert.InDelta(t, start.Position.X, end.Position.X, 1e-2)
	assert.InDelta(t, start.Position.Y, end.Position.Y, 1e-2)
	assert.InDelta(t, start.Position.Z, end.Position.Z, 1e-2)
}

func TestOrbitZoomClamped(t *testing.T) {
	o := NewOrbit()
	o.Enter(Pose{Position: vec3(0, 10, 5), Target: vec3(0, 0, 0), Fovy: 60})

	o.Zoom(1e6) // zoom all the way in
	near := rl.Vector3Length(rl.Vector3Subtract(o.Pose().Position, o.Pose().Target))
	assert.InDelta(t, o.minRadius, near, 1e-3)

	o.Zoom(-1e6) // and all the way out
	far := rl.Vector3Length(rl.Vector3Subtract(o.Pose().Position, o.Pose().Target))
	assert.InDelta(t, o.maxRadius, far, 1e-3)
}

func TestOrbitElevationClamped(t *testing.T) {
	o := NewOrbit()
	o.Enter(Pose{Position: vec3(4, 3, 4), Target: vec3(0, 0, 0), Fovy: 60})

	o.Rotate(0, 1e6)
	assert.InDelta(t, o.maxElevation, o.elevation, 1e-4)
	o.Rotate(0, -1e6)
	assert.InDelta(t, o.minElevation, o.elevation, 1e-4)
}
