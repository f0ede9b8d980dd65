package collision

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Geometry answers nearest-hit ray queries against the loaded scene. Implemented by the
// house package; the navigation code never sees the boxes behind it.
type Geometry interface {
	// Raycast returns the distance to the nearest intersection along dir, or ok=false
	// when nothing is hit within maxDist. dir must be normalized.
	Raycast(origin, dir rl.Vector3, maxDist float32) (dist float32, ok bool)
}

// Probe answers "may the camera move this way" questions: any geometry hit within the
// clearance radius blocks movement in that direction. One Probe is shared by all
// movement code; it is queried once per candidate direction per frame.
type Probe struct {
	geom      Geometry
	clearance float32
}

// NewProbe returns a probe with the given clearance radius (the player radius, in world
// units). geom may be nil until the model is ready; see Blocked.
func NewProbe(geom Geometry, clearance float32) *Probe {
	return &Probe{geom: geom, clearance: clearance}
}

// SetGeometry swaps in the scene geometry, e.g. once the model has finished building.
func (p *Probe) SetGeometry(geom Geometry) {
	p.geom = geom
}

// Clearance returns the probe distance.
func (p *Probe) Clearance() float32 {
	return p.clearance
}

// Blocked reports whether moving from origin along dir would come within the clearance
// radius of scene geometry. With no geometry loaded every direction is blocked, so the
// camera cannot wander through a house that is not there yet.
func (p *Probe) Blocked(origin, dir rl.Vector3) bool {
	if p.geom == nil {
		return true
	}
	_, hit := p.geom.Raycast(origin, dir, p.clearance)
	return hit
}
