package engine

import (
	"testing"

	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panelLengths(panels []model.Panel) []float64 {
	out := make([]float64, len(panels))
	for i, p := range panels {
		out[i] = p.Length
	}
	return out
}

func totalFootprint(panels []model.Panel) float64 {
	var total float64
	for _, p := range panels {
		total += p.Length + p.OffsetLeft + p.OffsetRight
	}
	return total
}

func TestAutoGeneratePanels_StraightThreeMeterRun(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// A 3000 mm run between two open ends: offsets 46.5 each side leave
	// 2907 mm, which the search fills with five 580 mm catalog panels.
	panels := AutoGeneratePanels(spec, 3000, 0, 0, false, false)

	require.Len(t, panels, 5)
	assert.Equal(t, []float64{580, 580, 580, 580, 580}, panelLengths(panels))

	assert.Equal(t, 46.5, panels[0].OffsetLeft)
	assert.Equal(t, 46.5, panels[4].OffsetRight)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 2.0, panels[i].OffsetRight, "interior boundary %d", i)
		assert.Equal(t, 2.0, panels[i+1].OffsetLeft, "interior boundary %d", i)
	}

	// The catalog overshoot leaves a small negative residual.
	assert.InDelta(t, 3009.0, totalFootprint(panels), 1e-9)
}

func TestAutoGeneratePanels_ShortRunSinglePanel(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// 500 mm leaves 407 mm, below the catalog minimum: one panel at the raw
	// rounded width, so the footprint closes exactly.
	panels := AutoGeneratePanels(spec, 500, 0, 0, false, false)

	require.Len(t, panels, 1)
	assert.Equal(t, 407.0, panels[0].Length)
	assert.Equal(t, 46.5, panels[0].OffsetLeft)
	assert.Equal(t, 46.5, panels[0].OffsetRight)
	assert.InDelta(t, 500.0, totalFootprint(panels), 1e-9)
}

func TestAutoGeneratePanels_DegenerateEdge(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// 130 mm leaves only 37 mm of glass, under the short-edge threshold:
	// a single clamped panel with no lock.
	panels := AutoGeneratePanels(spec, 130, 0, 0, false, false)

	require.Len(t, panels, 1)
	assert.Equal(t, spec.MinPanelLength, panels[0].Length)
	assert.Equal(t, model.LockNone, panels[0].Lock)
	assert.Equal(t, model.OpeningRight, panels[0].Opening)
}

func TestAutoGeneratePanels_MinimumLengthInvariant(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	for _, edgeLength := range []float64{10, 100, 145, 200, 500, 1234, 3000, 6500} {
		panels := AutoGeneratePanels(spec, edgeLength, 0, 0, false, false)
		require.NotEmpty(t, panels, "edge %v", edgeLength)
		for _, p := range panels {
			assert.GreaterOrEqual(t, p.Length, spec.MinPanelLength, "edge %v", edgeLength)
		}
	}
}

func TestAutoGeneratePanels_PanelCountFollowsMaxWidth(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// 6000 mm leaves 5907 mm: ceil(5907/700) = 9 panels.
	panels := AutoGeneratePanels(spec, 6000, 0, 0, false, false)
	assert.Len(t, panels, 9)
}

func TestAutoGeneratePanels_FreeWidthBelowThreshold(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// 843 mm leaves 750, split over 2 panels: avg under 400 triggers the
	// exact free-width split instead of the catalog search.
	panels := AutoGeneratePanels(spec, 843, 0, 0, false, false)

	require.Len(t, panels, 2)
	for _, p := range panels {
		assert.Equal(t, panels[0].Length, p.Length, "free-width split is equal")
		assert.Less(t, p.Length, spec.FreeWidthThreshold)
	}
}

func TestAutoGeneratePanels_DefaultOpeningAndEndLock(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	panels := AutoGeneratePanels(spec, 3000, 0, 0, false, false)

	require.Len(t, panels, 5)
	for _, p := range panels {
		assert.Equal(t, model.OpeningRight, p.Opening)
	}
	// The last right-opening panel carries the single end lock.
	for i := 0; i < 4; i++ {
		assert.Equal(t, model.LockNone, panels[i].Lock)
	}
	assert.Equal(t, model.LockSingle, panels[4].Lock)
}

func TestAutoGeneratePanels_WallConnectionChangesAvailable(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	free := AutoGeneratePanels(spec, 3000, 90, 0, false, false)
	wall := AutoGeneratePanels(spec, 3000, 90, 0, true, false)

	// A wall-connected square junction pulls back 56.5 instead of 46.5.
	assert.Equal(t, 46.5, free[0].OffsetLeft)
	assert.Equal(t, 56.5, wall[0].OffsetLeft)
}

func TestEvenDistributePanels_EqualShares(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	panels := EvenDistributePanels(spec, 3000, 0, 0, false, false)

	require.Len(t, panels, 5)
	for _, p := range panels {
		assert.Equal(t, 578.0, p.Length)
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	a := AutoGeneratePanels(spec, 4321, 135, -120, true, false)
	b := AutoGeneratePanels(spec, 4321, 135, -120, true, false)

	assert.Equal(t, panelLengths(a), panelLengths(b))
	assert.InDelta(t, totalFootprint(a), totalFootprint(b), 1e-9)
}

func TestSnapToStandard(t *testing.T) {
	assert.Equal(t, 407.0, snapToStandard(407.2), "below catalog keeps raw rounded value")
	assert.Equal(t, 430.0, snapToStandard(440))
	assert.Equal(t, 460.0, snapToStandard(450))
	assert.Equal(t, 700.0, snapToStandard(695))
	assert.Equal(t, 700.0, snapToStandard(900), "above catalog snaps to the top")
}

func TestSearchSplit_PrefersSmallestQualifyingScore(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// 2891 over 5 panels, avg 578.2: the only split not undershooting by
	// more than the tolerance is five large panels (score +9).
	lengths := searchSplit(spec, 5, 578.2, 2891)
	assert.Equal(t, []float64{580, 580, 580, 580, 580}, lengths)
}

func TestSearchSplit_MixedSizesSmallerFirst(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	// 1695 over 3 panels, avg 565: splits score 1650-1695=-45 (0 large),
	// -15 (1), +15 (2), +45 (3). Best qualifying is two large panels, and
	// the smaller panel is emitted first.
	lengths := searchSplit(spec, 3, 565, 1695)
	assert.Equal(t, []float64{550, 580, 580}, lengths)
}

func TestRecalcPanelOffsets_PassrutaBoundary(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	panels := []model.Panel{
		model.NewPanel("Panel 1", 500),
		model.NewPanel("Panel 2", 500),
		model.NewPanel("Panel 3", 500),
	}
	panels[1].Opening = model.OpeningFixed

	out := RecalcPanelOffsets(spec, panels, 0, 0, false, false)

	require.Len(t, out, 3)
	assert.Equal(t, 46.5, out[0].OffsetLeft)
	assert.Equal(t, 46.5, out[2].OffsetRight)

	// Both boundaries touch the fixed pane, so they get the passruta offset.
	assert.Equal(t, spec.PassrutaOffset, out[0].OffsetRight)
	assert.Equal(t, spec.PassrutaOffset, out[1].OffsetLeft)
	assert.Equal(t, spec.PassrutaOffset, out[1].OffsetRight)
	assert.Equal(t, spec.PassrutaOffset, out[2].OffsetLeft)
}

func TestRecalcPanelOffsets_DoesNotResize(t *testing.T) {
	spec := model.DefaultGlazingSpec()

	panels := AutoGeneratePanels(spec, 3000, 0, 0, false, false)
	before := panelLengths(panels)

	out := RecalcPanelOffsets(spec, panels, 0, 0, false, false)
	assert.Equal(t, before, panelLengths(out))

	// Recalculating an untouched generator output is a no-op.
	assert.Equal(t, panels, out)
}

func TestRecalcPanelOffsets_Empty(t *testing.T) {
	spec := model.DefaultGlazingSpec()
	assert.Empty(t, RecalcPanelOffsets(spec, nil, 0, 0, false, false))
}
