package nav

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit rotates, zooms, and tilts the camera around a fixed target. It owns the camera
// only in the top ("inspect the whole property") view. Position is derived from
// spherical coordinates around the target, so the camera can never drift off its orbit.
type Orbit struct {
	target rl.Vector3
	fovy   float32

	radius    float32
	azimuth   float32 // horizontal angle around world up
	elevation float32 // angle above the horizontal plane

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	rotateSpeed float32 // radians per pixel of drag
	zoomSpeed   float32 // world units per wheel notch
}

// NewOrbit returns an orbit controller with clamps sized for a single house.
func NewOrbit() *Orbit {
	return &Orbit{
		minRadius:    3,
		maxRadius:    40,
		minElevation: 0.15,
		maxElevation: math32.Pi/2 - 0.05,
		rotateSpeed:  0.005,
		zoomSpeed:    1.5,
	}
}

// Enter seeds the orbit from the pose the transition landed on: the look target becomes
// the orbit center and the spherical coordinates are recovered from the camera offset.
func (o *Orbit) Enter(p Pose) {
	o.target = p.Target
	o.fovy = p.Fovy

	off := rl.Vector3Subtract(p.Position, p.Target)
	o.radius = clamp(rl.Vector3Length(off), o.minRadius, o.maxRadius)
	if o.radius < 1e-6 {
		o.radius = o.minRadius
	}
	o.azimuth = math32.Atan2(off.X, off.Z)
	o.elevation = clamp(math32.Asin(off.Y/o.radius), o.minElevation, o.maxElevation)
}

// Rotate applies a drag delta in pixels: horizontal drag orbits around the target,
// vertical drag tilts between the elevation clamps.
func (o *Orbit) Rotate(dx, dy float32) {
	o.azimuth -= dx * o.rotateSpeed
	o.elevation = clamp(o.elevation+dy*o.rotateSpeed, o.minElevation, o.maxElevation)
}

// Zoom moves the camera along its orbit radius. Positive delta zooms in.
func (o *Orbit) Zoom(delta float32) {
	o.radius = clamp(o.radius-delta*o.zoomSpeed, o.minRadius, o.maxRadius)
}

// Pose returns the camera pose for the current spherical coordinates.
func (o *Orbit) Pose() Pose {
	cosE := math32.Cos(o.elevation)
	pos := vec3(
		o.target.X+o.radius*cosE*math32.Sin(o.azimuth),
		o.target.Y+o.radius*math32.Sin(o.elevation),
		o.target.Z+o.radius*cosE*math32.Cos(o.azimuth),
	)
	return Pose{Position: pos, Target: o.target, Fovy: o.fovy}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
