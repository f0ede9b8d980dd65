package house

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkthrough/internal/config"
)

const (
	floorThickness = 0.1
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// Wall and floor colors are reused every frame to avoid per-frame allocations.
var (
	wallColor     = rl.NewColor(214, 208, 196, 255)
	wallEdgeColor = rl.NewColor(150, 144, 132, 255)
	floorColor    = rl.NewColor(120, 100, 82, 255)
)

// House is the walkable model: the floor slab plus one axis-aligned box per wall run.
// It implements collision.Geometry so movement code can probe it, and draws itself each
// frame. Boxes are computed once in Build and never change.
type House struct {
	walls       []rl.BoundingBox
	floor       rl.BoundingBox
	GridVisible bool
}

// Build constructs the house from wall runs. Runs are axis-aligned; each becomes a box
// expanded by half the wall thickness on either side, from the floor to the wall height.
func Build(cfg config.House) *House {
	h := &House{GridVisible: true}
	half := cfg.WallThickness / 2
	for _, run := range cfg.Walls {
		minX, maxX := run.From[0], run.To[0]
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		minZ, maxZ := run.From[1], run.To[1]
		if minZ > maxZ {
			minZ, maxZ = maxZ, minZ
		}
		h.walls = append(h.walls, rl.NewBoundingBox(
			rl.NewVector3(minX-half, 0, minZ-half),
			rl.NewVector3(maxX+half, cfg.WallHeight, maxZ+half),
		))
	}
	h.floor = rl.NewBoundingBox(
		rl.NewVector3(cfg.Floor[0], -floorThickness, cfg.Floor[1]),
		rl.NewVector3(cfg.Floor[2], 0, cfg.Floor[3]),
	)
	return h
}

// Walls returns the wall boxes. Used by tests and the debug overlay.
func (h *House) Walls() []rl.BoundingBox {
	return h.walls
}

// Raycast returns the distance to the nearest wall hit along dir within maxDist.
// The floor is excluded: probes run horizontally at eye height and pinning the camera
// height is the walking code's job, not the collider's.
func (h *House) Raycast(origin, dir rl.Vector3, maxDist float32) (float32, bool) {
	nearest := maxDist
	found := false
	for _, box := range h.walls {
		if d, ok := rayBoxDistance(origin, dir, box); ok && d <= nearest {
			nearest = d
			found = true
		}
	}
	return nearest, found
}

// Draw renders the house between BeginMode3D and EndMode3D: floor slab, wall boxes with
// edge wires, and (when GridVisible) a floor grid in the editor style.
func (h *House) Draw() {
	center := boxCenter(h.floor)
	size := boxSize(h.floor)
	rl.DrawCubeV(center, size, floorColor)

	for _, box := range h.walls {
		c := boxCenter(box)
		s := boxSize(box)
		rl.DrawCubeV(c, s, wallColor)
		rl.DrawCubeWiresV(c, s, wallEdgeColor)
	}

	if h.GridVisible {
		h.drawFloorGrid()
	}
}

func boxCenter(b rl.BoundingBox) rl.Vector3 {
	return rl.NewVector3((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2, (b.Min.Z+b.Max.Z)/2)
}

func boxSize(b rl.BoundingBox) rl.Vector3 {
	return rl.NewVector3(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y, b.Max.Z-b.Min.Z)
}

// drawFloorGrid draws minor/major grid lines on the floor rectangle, just above the slab
// so the lines are not z-fighting with it.
func (h *House) drawFloorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	minX, minZ := int(h.floor.Min.X), int(h.floor.Min.Z)
	maxX, maxZ := int(h.floor.Max.X), int(h.floor.Max.Z)
	const y = 0.01

	var start, end rl.Vector3
	for x := minX; x <= maxX; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), y, float32(minZ)
		end.X, end.Y, end.Z = float32(x), y, float32(maxZ)
		rl.DrawLine3D(start, end, c)
	}
	for z := minZ; z <= maxZ; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(minX), y, float32(z)
		end.X, end.Y, end.Z = float32(maxX), y, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
