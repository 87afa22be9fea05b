package engine

import (
	"math"
	"testing"

	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffset_ZeroAngle(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	got := CalculateOffset(spec, 0, false)
	assert.Equal(t, 46.5, got.Offset)
	assert.Equal(t, 0.0, got.ProfileOffset)
}

func TestCalculateOffset_ZeroAngleIgnoresWallFlag(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	withWall := CalculateOffset(spec, 0, true)
	withoutWall := CalculateOffset(spec, 0, false)
	assert.Equal(t, withoutWall, withWall)
}

func TestCalculateOffset_SquareWallJunction(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	for _, angle := range []float64{88, 90, 95, 99, -90} {
		got := CalculateOffset(spec, angle, true)
		assert.Equal(t, 56.5, got.Offset, "angle %v", angle)
		assert.Equal(t, -14.0, got.ProfileOffset, "angle %v", angle)
	}
}

func TestCalculateOffset_ObliqueWallJunction(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// At 120 degrees the glazing table gives 10.
	got := CalculateOffset(spec, 120, true)
	assert.InDelta(t, 50.5+10-10-4, got.Offset, 1e-9)
	assert.InDelta(t, -10+10-4, got.ProfileOffset, 1e-9)

	// At the 99-degree boundary the glazing column is 0, which must line up
	// with the square junction constants so the model is continuous.
	boundary := CalculateOffset(spec, 99.0000001, true)
	assert.InDelta(t, 56.5, boundary.Offset, 1e-4)
	assert.InDelta(t, -14.0, boundary.ProfileOffset, 1e-4)
}

func TestCalculateOffset_ObliqueWallJunctionNegativeAngle(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	pos := CalculateOffset(spec, 120, true)
	neg := CalculateOffset(spec, -120, true)
	assert.Equal(t, pos, neg, "wall junction uses the angle magnitude")
}

func TestCalculateOffset_ConvexNinetyMatchesZeroAngle(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// tan(45 deg) = 1, so a free convex 90 corner is factor + addend = 46.5.
	got := CalculateOffset(spec, 90, false)
	assert.InDelta(t, 46.5, got.Offset, 1e-9)
	assert.Equal(t, 0.0, got.ProfileOffset)
}

func TestCalculateOffset_ConvexCorner(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	got := CalculateOffset(spec, 135, false)
	want := math.Tan((180-135)/2*math.Pi/180)*25.5 + 21.0
	assert.InDelta(t, want, got.Offset, 1e-9)
}

func TestCalculateOffset_ConcaveCornerUsesConcaveFactor(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	got := CalculateOffset(spec, -135, false)
	want := math.Tan((180-(-135.0))/2*math.Pi/180)*18.5 + 21.0
	assert.InDelta(t, want, got.Offset, 1e-9)
	assert.Equal(t, 0.0, got.ProfileOffset)
}

func TestCalculateOffset_SteepWallAngleFallsThroughToMiter(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// Beyond the oblique band the wall flag no longer applies.
	wall := CalculateOffset(spec, 170, true)
	free := CalculateOffset(spec, 170, false)
	assert.Equal(t, free, wall)
}

func TestWallJunctionWallOffset(t *testing.T) {
	assert.InDelta(t, 20.0, WallJunctionWallOffset(157), 1e-9)
	assert.InDelta(t, 0.0, WallJunctionWallOffset(99), 1e-9)
	assert.InDelta(t, 9.75, WallJunctionWallOffset(125), 1e-9)
	assert.InDelta(t, 8.0, WallJunctionWallOffset(-120), 1e-9, "uses the magnitude")
}
