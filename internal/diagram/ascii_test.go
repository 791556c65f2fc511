package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlotSeries(t *testing.T) {
	values := []float64{0, 1, 2, 3, 2, 1, 0, -1, -2, -1, 0}
	out := PlotSeries(values, "Shear", 40, 8)

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "Shear")
}

func TestDrawShearMoment(t *testing.T) {
	shear := []float64{5, 5, 5, -5, -5, -5}
	moment := []float64{0, 5, 10, 10, 5, 0}

	out := DrawShearMoment(shear, moment, 40, 6)
	assert.Contains(t, out, "Shear")
	assert.Contains(t, out, "Moment")
}

func TestDrawBeamElevation(t *testing.T) {
	out := DrawBeamElevation(BeamData{
		Length:       10,
		LeftSupport:  0,
		RightSupport: 10,
		PointLoads: []PointMarker{
			{Position: 5, Magnitude: -100},
			{Position: 8, Magnitude: 50},
			{Position: 2, Moment: true},
		},
		DistLoads: []SpanMarker{{Start: 0, End: 4, StartMagnitude: -10, EndMagnitude: -10}},
	})

	assert.Equal(t, 2, strings.Count(out, "▲"), "one marker per support")
	assert.Contains(t, out, "↓")
	assert.Contains(t, out, "↑")
	assert.Contains(t, out, "↻")
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "10")
}

func TestDrawBeamElevationUplift(t *testing.T) {
	out := DrawBeamElevation(BeamData{
		Length:       4,
		RightSupport: 4,
		DistLoads:    []SpanMarker{{Start: 1, End: 3, StartMagnitude: 5, EndMagnitude: 5}},
	})

	assert.Contains(t, out, "▲▲", "uplift hatching points up")
	assert.NotContains(t, out, "▼")
}

func TestDrawBeamElevationCantilever(t *testing.T) {
	out := DrawBeamElevation(BeamData{
		Length:     6,
		Cantilever: true,
		PointLoads: []PointMarker{{Position: 6, Magnitude: -20}},
	})

	assert.Contains(t, out, "▐")
	assert.NotContains(t, out, "▲")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("ANALYSIS RESULTS", []string{
		"Max Shear:  500.00",
		"Max Moment: 2495.00",
	})

	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╚")
	assert.Contains(t, out, "ANALYSIS RESULTS")
	assert.Contains(t, out, "Max Shear:  500.00")
	assert.Contains(t, out, "Max Moment: 2495.00")
}
