package house

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) rl.BoundingBox {
	return rl.NewBoundingBox(rl.NewVector3(minX, minY, minZ), rl.NewVector3(maxX, maxY, maxZ))
}

func TestRayBoxHitStraightOn(t *testing.T) {
	b := box(2, 0, -1, 3, 2, 1)
	d, ok := rayBoxDistance(rl.NewVector3(0, 1, 0), rl.NewVector3(1, 0, 0), b)
	require.True(t, ok)
	assert.InDelta(t, 2.0, d, 1e-5)
}

func TestRayBoxMissToSide(t *testing.T) {
	b := box(2, 0, -1, 3, 2, 1)
	_, ok := rayBoxDistance(rl.NewVector3(0, 1, 5), rl.NewVector3(1, 0, 0), b)
	assert.False(t, ok, "ray passes beside the box")
}

func TestRayBoxBehindRay(t *testing.T) {
	b := box(2, 0, -1, 3, 2, 1)
	_, ok := rayBoxDistance(rl.NewVector3(5, 1, 0), rl.NewVector3(1, 0, 0), b)
	assert.False(t, ok, "box behind the origin must not hit")
}

func TestRayBoxOriginInside(t *testing.T) {
	b := box(-1, -1, -1, 1, 1, 1)
	d, ok := rayBoxDistance(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, 1), b)
	require.True(t, ok)
	assert.Equal(t, float32(0), d, "inside a box reports contact at distance zero")
}

func TestRayBoxParallelSlab(t *testing.T) {
	b := box(2, 0, -1, 3, 2, 1)

	// Parallel to the Z slabs, origin aligned with the box: hit.
	d, ok := rayBoxDistance(rl.NewVector3(0, 1, 0), rl.NewVector3(1, 0, 0), b)
	require.True(t, ok)
	assert.InDelta(t, 2.0, d, 1e-5)

	// Parallel to the Z slabs but outside them: miss.
	_, ok = rayBoxDistance(rl.NewVector3(0, 1, 3), rl.NewVector3(1, 0, 0), b)
	assert.False(t, ok)
}

func TestRayBoxDiagonal(t *testing.T) {
	b := box(1, 0, 1, 3, 2, 3)
	dir := rl.Vector3Normalize(rl.NewVector3(1, 0, 1))
	d, ok := rayBoxDistance(rl.NewVector3(0, 1, 0), dir, b)
	require.True(t, ok)
	// Entry at (1,1,1), diagonal distance √2.
	assert.InDelta(t, 1.4142, d, 1e-3)
}
