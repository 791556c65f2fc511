package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nateranda/beampy/internal/beam"
	"github.com/nateranda/beampy/internal/diagram"
	"github.com/nateranda/beampy/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportOutput  string
	reportTitle   string
	reportProject string
	reportAuthor  string
	reportNotes   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a PDF calculation sheet",
	Long: `Run the full analysis (shear, moment, deflection and, when loads
carry categories, the combination envelope) and render the results
into a PDF calculation sheet with an embedded diagram.

Examples:
  beampy report --length 10 --point 5,-50,D --point 5,-30,L -o beam.pdf

  beampy report -f beam.yaml --title "Roof Beam B-2" --project "Warehouse" \
    --author "J. Doe" -o roof-beam.pdf`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	addBeamFlags(reportCmd)
	addLoadFlags(reportCmd)

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "beam-report.pdf", "Output PDF file")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Author name")
	reportCmd.Flags().StringVar(&reportNotes, "notes", "", "Notes appended to the report")
}

func runReport(cmd *cobra.Command, args []string) {
	b, err := buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sm, err := b.CalculateShearMoment()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defl, err := b.CalculateDeflection()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// The envelope needs categorized loads; without them the report
	// simply omits the combination section.
	env, err := b.CalculateEnvelope()
	if err != nil && !errors.Is(err, beam.ErrPreconditionNotMet) {
		fmt.Printf("Error: %v\n", err)
		return
	}

	png, err := renderDiagramPNG(sm)
	if err != nil {
		fmt.Printf("Error rendering diagram: %v\n", err)
		return
	}
	defer os.RemoveAll(filepath.Dir(png))

	rep := report.Report{
		Title:       reportTitle,
		Project:     reportProject,
		Author:      reportAuthor,
		Notes:       reportNotes,
		Beam:        b,
		ShearMoment: sm,
		Deflection:  defl,
		Envelope:    env,
		DiagramPNG:  png,
	}
	if err := report.Write(reportOutput, rep); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	fmt.Printf("Report written to: %s\n", reportOutput)
}

// renderDiagramPNG plots the shear/moment diagram into a temporary PNG
// for embedding. The caller removes the file.
func renderDiagramPNG(res *beam.ShearMomentResult) (string, error) {
	tmp, err := os.MkdirTemp("", "beampy")
	if err != nil {
		return "", err
	}
	path := filepath.Join(tmp, "diagram.png")
	if err := diagram.ExportShearMomentDiagram(res.X, res.Shear, res.Moment, path); err != nil {
		os.RemoveAll(tmp)
		return "", err
	}
	return path, nil
}
