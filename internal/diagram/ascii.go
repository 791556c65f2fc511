// Package diagram renders beam analysis results as terminal plots and
// as image files.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Point represents a 2D coordinate for section vertices.
type Point struct {
	X float64
	Y float64
}

// PointMarker places a concentrated load on the elevation sketch.
type PointMarker struct {
	Position  float64
	Magnitude float64
	Moment    bool
}

// SpanMarker places a distributed load on the elevation sketch.
type SpanMarker struct {
	Start, End                   float64
	StartMagnitude, EndMagnitude float64
}

// BeamData holds what the elevation sketch needs about a beam.
type BeamData struct {
	Length       float64
	LeftSupport  float64
	RightSupport float64
	Cantilever   bool

	PointLoads []PointMarker
	DistLoads  []SpanMarker
}

// PlotSeries renders one result array as a terminal plot.
func PlotSeries(values []float64, caption string, width, height int) string {
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// DrawShearMoment renders the shear and moment arrays as two stacked
// terminal plots.
func DrawShearMoment(shear, moment []float64, width, height int) string {
	var sb strings.Builder
	sb.WriteString(PlotSeries(shear, "Shear", width, height))
	sb.WriteString("\n\n")
	sb.WriteString(PlotSeries(moment, "Moment", width, height))
	sb.WriteString("\n")
	return sb.String()
}

// DrawDeflection renders the deflected shape as a terminal plot.
func DrawDeflection(deflection []float64, width, height int) string {
	return PlotSeries(deflection, "Deflection", width, height) + "\n"
}

// DrawBeamElevation sketches the beam, its supports and its loads.
func DrawBeamElevation(data BeamData) string {
	const width = 61
	col := func(x float64) int {
		c := int(x / data.Length * float64(width-1))
		if c < 0 {
			c = 0
		}
		if c > width-1 {
			c = width - 1
		}
		return c
	}

	arrows := []rune(strings.Repeat(" ", width))
	spans := []rune(strings.Repeat(" ", width))
	for _, p := range data.PointLoads {
		if p.Moment {
			arrows[col(p.Position)] = '↻'
		} else if p.Magnitude > 0 {
			arrows[col(p.Position)] = '↑'
		} else {
			arrows[col(p.Position)] = '↓'
		}
	}
	for _, d := range data.DistLoads {
		glyph := '▼'
		if d.StartMagnitude+d.EndMagnitude > 0 {
			glyph = '▲'
		}
		for c := col(d.Start); c <= col(d.End); c++ {
			spans[c] = glyph
		}
	}

	beamLine := []rune(strings.Repeat("━", width))
	supports := []rune(strings.Repeat(" ", width))
	if data.Cantilever {
		beamLine[0] = '▐'
		supports[0] = '█'
	} else {
		supports[col(data.LeftSupport)] = '▲'
		supports[col(data.RightSupport)] = '▲'
	}

	var sb strings.Builder
	sb.WriteString("\n")
	if strings.TrimSpace(string(spans)) != "" {
		sb.WriteString("  " + string(spans) + "\n")
	}
	if strings.TrimSpace(string(arrows)) != "" {
		sb.WriteString("  " + string(arrows) + "\n")
	}
	sb.WriteString("  " + string(beamLine) + "\n")
	sb.WriteString("  " + string(supports) + "\n")

	// Position scale
	left := "0"
	right := fmt.Sprintf("%g", data.Length)
	sb.WriteString("  " + left + strings.Repeat(" ", width-len(left)-len(right)) + right + "\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
