package nav

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkthrough/internal/config"
)

// Pose is a camera placement: position, look-at target, and vertical field of view in
// degrees. Poses are plain values; controllers compute a fresh one each frame and the
// renderer copies it onto its camera.
type Pose struct {
	Position rl.Vector3
	Target   rl.Vector3
	Fovy     float32
}

func vec3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

// poseFrom converts a configured view into a Pose.
func poseFrom(v config.ViewPose) Pose {
	return Pose{
		Position: rl.NewVector3(v.Position[0], v.Position[1], v.Position[2]),
		Target:   rl.NewVector3(v.Target[0], v.Target[1], v.Target[2]),
		Fovy:     v.Fovy,
	}
}

// Apply copies the pose onto a raylib camera. Up is always world up; the walkthrough
// never rolls the camera.
func (p Pose) Apply(cam *rl.Camera3D) {
	cam.Position = p.Position
	cam.Target = p.Target
	cam.Up = rl.NewVector3(0, 1, 0)
	cam.Fovy = p.Fovy
	cam.Projection = rl.CameraPerspective
}

// Finite reports whether every component of the pose is a finite number.
func (p Pose) Finite() bool {
	for _, v := range []float32{
		p.Position.X, p.Position.Y, p.Position.Z,
		p.Target.X, p.Target.Y, p.Target.Z,
		p.Fovy,
	} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}
