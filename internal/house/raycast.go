package house

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// rayBoxDistance returns the distance from origin along dir to the entry point of box,
// using the slab method. dir must be normalized. Returns ok=false when the ray misses.
// An origin already inside the box reports distance 0; movement out of a wall you are
// somehow inside stays blocked rather than tunnelling through.
func rayBoxDistance(origin, dir rl.Vector3, box rl.BoundingBox) (float32, bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	check := func(o, d, lo, hi float32) bool {
		if d == 0 {
			// Parallel to this slab: hit only possible when origin lies inside it.
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !check(origin.X, dir.X, box.Min.X, box.Max.X) {
		return 0, false
	}
	if !check(origin.Y, dir.Y, box.Min.Y, box.Max.Y) {
		return 0, false
	}
	if !check(origin.Z, dir.Z, box.Min.Z, box.Max.Z) {
		return 0, false
	}
	if tmax < 0 {
		return 0, false // box is behind the ray
	}
	if tmin < 0 {
		return 0, true // origin inside the box
	}
	return tmin, true
}
