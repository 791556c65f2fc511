package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nateranda/beampy/internal/diagram"
	"github.com/nateranda/beampy/internal/export"
	"github.com/spf13/cobra"
)

var (
	analyzeDiagram bool
	analyzeOutput  string
	analyzeCSV     string
	analyzeJSON    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate shear and moment diagrams for a beam",
	Long: `Calculate the shear and bending moment diagrams of a beam under
service (unfactored) loads.

Point loads and moments take a position, a magnitude and an optional
load category (D, L, Lr, W, E, R); distributed loads vary linearly
between a start and an end magnitude. Downward loads are negative.

Examples:
  # Simply supported beam with a midspan point load
  beampy analyze --length 10 --ei 1e6 --point 5,-10

  # Overhanging beam with a uniform load, ASCII diagrams
  beampy analyze -L 12 --left 1 --right 11 --dist 0,12,-2,-2 --diagram

  # From a YAML definition, exporting the diagram and the data
  beampy analyze -f beam.yaml -o diagram.png --csv results.csv`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	addBeamFlags(analyzeCmd)
	addLoadFlags(analyzeCmd)

	// Output options
	analyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Show ASCII shear and moment diagrams")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export diagram image (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeCSV, "csv", "", "Write per-section results to a CSV file")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "Write results to a JSON file")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	b, err := buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := b.CalculateShearMoment()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BEAM SHEAR AND MOMENT ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printInput(b)
	fmt.Println(diagram.DrawBeamElevation(elevationData(b)))

	fmt.Println("REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if b.Cantilever {
		fmt.Fprintf(w, "  Vertical (fixed end):\t%.4f\n", res.Reactions.Left)
		fmt.Fprintf(w, "  Fixed-End Moment:\t%.4f\n", res.Reactions.FixedMoment)
	} else {
		fmt.Fprintf(w, "  Left Support:\t%.4f\n", res.Reactions.Left)
		fmt.Fprintf(w, "  Right Support:\t%.4f\n", res.Reactions.Right)
	}
	w.Flush()
	fmt.Println()

	if analyzeDiagram {
		fmt.Println(diagram.DrawShearMoment(res.Shear, res.Moment, 61, 10))
	}

	fmt.Print(diagram.DrawSummaryBox("ANALYSIS RESULTS", []string{
		fmt.Sprintf("Max Shear:  %12.4f  at x=%.3f", res.MaxShear, locate(res.X, res.Shear, res.MaxShear)),
		fmt.Sprintf("Min Shear:  %12.4f  at x=%.3f", res.MinShear, locate(res.X, res.Shear, res.MinShear)),
		fmt.Sprintf("Max Moment: %12.4f  at x=%.3f", res.MaxMoment, locate(res.X, res.Moment, res.MaxMoment)),
		fmt.Sprintf("Min Moment: %12.4f  at x=%.3f", res.MinMoment, locate(res.X, res.Moment, res.MinMoment)),
	}))
	fmt.Println()

	if analyzeOutput != "" {
		if err := diagram.ExportShearMomentDiagram(res.X, res.Shear, res.Moment, analyzeOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram exported to: %s\n", analyzeOutput)
	}
	if analyzeCSV != "" {
		if err := export.WriteShearMomentCSV(analyzeCSV, res); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("  Results written to: %s\n", analyzeCSV)
	}
	if analyzeJSON != "" {
		if err := export.WriteJSON(analyzeJSON, export.FromShearMoment(b, res)); err != nil {
			fmt.Printf("Error writing JSON: %v\n", err)
			return
		}
		fmt.Printf("  Results written to: %s\n", analyzeJSON)
	}
	if analyzeOutput != "" || analyzeCSV != "" || analyzeJSON != "" {
		fmt.Println()
	}
}
