// Package report renders analysis results into a PDF calculation
// sheet.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/nateranda/beampy/internal/beam"
)

// Report collects everything the calculation sheet can show. Result
// sections are skipped when their field is nil.
type Report struct {
	Title   string
	Project string
	Author  string
	Notes   string

	Beam        *beam.Beam
	ShearMoment *beam.ShearMomentResult
	Deflection  *beam.DeflectionResult
	Envelope    *beam.Envelope

	// DiagramPNG embeds a pre-rendered diagram image when set.
	DiagramPNG string
}

// Write renders the report to a PDF file.
func Write(path string, rep Report) error {
	pdf, err := render(rep)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// Render renders the report as PDF to a writer.
func Render(w io.Writer, rep Report) error {
	pdf, err := render(rep)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func render(rep Report) (*gofpdf.Fpdf, error) {
	if rep.Title == "" {
		rep.Title = "Beam Analysis Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, rep.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if rep.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", rep.Project))
		pdf.Ln(6)
	}
	if rep.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", rep.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if rep.Beam != nil {
		writeBeam(pdf, rep.Beam)
	}
	if rep.ShearMoment != nil {
		writeShearMoment(pdf, rep.ShearMoment, rep.Beam)
	}
	if rep.Deflection != nil {
		writeDeflection(pdf, rep.Deflection)
	}
	if rep.Envelope != nil {
		writeEnvelope(pdf, rep.Envelope)
	}
	if rep.DiagramPNG != "" {
		pdf.Ln(4)
		// flow=true keeps the cursor below the image so the notes
		// never overlap it.
		pdf.ImageOptions(rep.DiagramPNG, 20, pdf.GetY(), 170, 0, true,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}
	if rep.Notes != "" {
		pdf.Ln(8)
		heading(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, rep.Notes, "", "L", false)
	}

	if pdf.Err() {
		return nil, pdf.Error()
	}
	return pdf, nil
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(55, 5.5, label)
	pdf.Cell(0, 5.5, value)
	pdf.Ln(5.5)
}

func writeBeam(pdf *gofpdf.Fpdf, b *beam.Beam) {
	heading(pdf, "Beam")
	row(pdf, "Length", fmt.Sprintf("%g", b.Length))
	if b.Cantilever {
		row(pdf, "Support", "fixed at x = 0")
	} else {
		row(pdf, "Supports", fmt.Sprintf("%g, %g", b.LeftSupport, b.RightSupport))
	}
	row(pdf, "Flexural rigidity EI", fmt.Sprintf("%g", b.EI))
	row(pdf, "Method", string(b.Method))
	row(pdf, "Sections", fmt.Sprintf("%d", b.Sections))

	loads := b.Loads()
	if len(loads) > 0 {
		pdf.Ln(3)
		heading(pdf, "Loads")
		for _, l := range loads {
			pdf.SetFont("Helvetica", "", 10)
			pdf.Cell(0, 5.5, fmt.Sprintf("%v", l))
			pdf.Ln(5.5)
		}
	}
	pdf.Ln(3)
}

func writeShearMoment(pdf *gofpdf.Fpdf, res *beam.ShearMomentResult, b *beam.Beam) {
	heading(pdf, "Shear and Moment")
	if b != nil && b.Cantilever {
		row(pdf, "Fixed-end reaction", fmt.Sprintf("%.4f", res.Reactions.Left))
		row(pdf, "Fixed-end moment", fmt.Sprintf("%.4f", res.Reactions.FixedMoment))
	} else {
		row(pdf, "Left reaction", fmt.Sprintf("%.4f", res.Reactions.Left))
		row(pdf, "Right reaction", fmt.Sprintf("%.4f", res.Reactions.Right))
	}
	row(pdf, "Max shear", fmt.Sprintf("%.4f", res.MaxShear))
	row(pdf, "Min shear", fmt.Sprintf("%.4f", res.MinShear))
	row(pdf, "Max moment", fmt.Sprintf("%.4f", res.MaxMoment))
	row(pdf, "Min moment", fmt.Sprintf("%.4f", res.MinMoment))
	pdf.Ln(3)
}

func writeDeflection(pdf *gofpdf.Fpdf, res *beam.DeflectionResult) {
	heading(pdf, "Deflection")
	row(pdf, "Max deflection", fmt.Sprintf("%.6g", res.MaxDeflection))
	row(pdf, "Min deflection", fmt.Sprintf("%.6g", res.MinDeflection))
	row(pdf, "Initial rotation", fmt.Sprintf("%.6g", res.InitialRotation))
	pdf.Ln(3)
}

func writeEnvelope(pdf *gofpdf.Fpdf, env *beam.Envelope) {
	heading(pdf, fmt.Sprintf("Load Combinations (%s)", env.Method))

	widths := []float64{10, 70, 27, 27, 27, 27}
	headers := []string{"ID", "Combination", "Max V", "Min V", "Max M", "Min M"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	for i, c := range env.Cases {
		governs := i == env.MaxShear.Index || i == env.MinShear.Index ||
			i == env.MaxMoment.Index || i == env.MinMoment.Index
		if governs {
			pdf.SetFont("Helvetica", "B", 9)
		} else {
			pdf.SetFont("Helvetica", "", 9)
		}
		cells := []string{
			c.Combination.ID,
			c.Combination.Description,
			fmt.Sprintf("%.3f", c.MaxShear),
			fmt.Sprintf("%.3f", c.MinShear),
			fmt.Sprintf("%.3f", c.MaxMoment),
			fmt.Sprintf("%.3f", c.MinMoment),
		}
		for j, cell := range cells {
			align := "R"
			if j < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[j], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Governing max moment: %.3f  (%s)",
		env.MaxMoment.Value, env.MaxMoment.Combination.Description))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Governing max shear: %.3f  (%s)",
		env.MaxShear.Value, env.MaxShear.Combination.Description))
	pdf.Ln(8)
}
