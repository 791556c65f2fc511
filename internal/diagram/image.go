package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportShearMomentDiagram exports the shear and moment curves to an
// image file.
func ExportShearMomentDiagram(xs, shear, moment []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Shear and Moment Diagram"
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Shear / Moment"
	p.Legend.Top = true

	if err := addZeroLine(p, xs); err != nil {
		return err
	}

	shearLine, err := newCurve(xs, shear, color.RGBA{R: 0, G: 90, B: 200, A: 255})
	if err != nil {
		return err
	}
	p.Add(shearLine)
	p.Legend.Add("shear", shearLine)

	momentLine, err := newCurve(xs, moment, color.RGBA{R: 200, G: 30, B: 0, A: 255})
	if err != nil {
		return err
	}
	p.Add(momentLine)
	p.Legend.Add("moment", momentLine)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportDeflectionDiagram exports the deflected shape to an image
// file.
func ExportDeflectionDiagram(xs, deflection []float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Deflection Diagram"
	p.X.Label.Text = "Position"
	p.Y.Label.Text = "Deflection"

	if err := addZeroLine(p, xs); err != nil {
		return err
	}

	line, err := newCurve(xs, deflection, color.RGBA{R: 0, G: 130, B: 60, A: 255})
	if err != nil {
		return err
	}
	p.Add(line)

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportSectionDiagram exports the cross-section outline with its
// centroid and horizontal centroidal axis marked.
func ExportSectionDiagram(vertices []Point, cx, cy float64, filename string) error {
	if len(vertices) < 3 {
		return fmt.Errorf("section needs at least 3 vertices, got %d", len(vertices))
	}

	p := plot.New()
	p.Title.Text = "Cross Section"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	outline := make(plotter.XYs, len(vertices)+1)
	minX, maxX := vertices[0].X, vertices[0].X
	for i, v := range vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
	}
	outline[len(vertices)] = outline[0]

	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// Centroidal axis
	axis, err := plotter.NewLine(plotter.XYs{
		{X: minX - 0.05*(maxX-minX), Y: cy},
		{X: maxX + 0.05*(maxX-minX), Y: cy},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(axis)

	centroid, err := plotter.NewScatter(plotter.XYs{{X: cx, Y: cy}})
	if err != nil {
		return err
	}
	centroid.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

func newCurve(xs, ys []float64, c color.Color) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	return line, nil
}

func addZeroLine(p *plot.Plot, xs []float64) error {
	if len(xs) == 0 {
		return nil
	}
	zero, err := plotter.NewLine(plotter.XYs{
		{X: xs[0], Y: 0},
		{X: xs[len(xs)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)
	return nil
}

// save writes the plot in the format the file extension names,
// defaulting to PNG, creating the directory if needed.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
