package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nateranda/beampy/internal/beam"
	"github.com/nateranda/beampy/internal/diagram"
	"github.com/nateranda/beampy/internal/export"
	"github.com/spf13/cobra"
)

var (
	deflectionSolver  string
	deflectionDiagram bool
	deflectionOutput  string
	deflectionCSV     string
	deflectionJSON    string
)

var deflectionCmd = &cobra.Command{
	Use:   "deflection",
	Short: "Calculate the deflected shape of a beam",
	Long: `Calculate the rotation and deflection of a beam by double
integration of the service-load moment diagram.

The direct solver computes the initial rotation in closed form; the
shooting solver walks it in rot-step increments until the deflection
at the right support stops improving.

Examples:
  # Midspan point load on a simply supported beam
  beampy deflection --length 10 --ei 1e6 --point 5,-10 --diagram

  # Cantilever tip load with the shooting solver
  beampy deflection -L 2 --cantilever --ei 1000 --point 2,-1 --solver shooting`,
	Run: runDeflection,
}

func init() {
	rootCmd.AddCommand(deflectionCmd)

	addBeamFlags(deflectionCmd)
	addLoadFlags(deflectionCmd)

	deflectionCmd.Flags().StringVar(&deflectionSolver, "solver", "", "Deflection solver: direct or shooting")

	// Output options
	deflectionCmd.Flags().BoolVar(&deflectionDiagram, "diagram", false, "Show ASCII deflection diagram")
	deflectionCmd.Flags().StringVarP(&deflectionOutput, "output", "o", "", "Export diagram image (png, svg, pdf)")
	deflectionCmd.Flags().StringVar(&deflectionCSV, "csv", "", "Write per-section results to a CSV file")
	deflectionCmd.Flags().StringVar(&deflectionJSON, "json", "", "Write results to a JSON file")
}

func runDeflection(cmd *cobra.Command, args []string) {
	b, err := buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if deflectionSolver != "" {
		solver, err := beam.ParseSolver(deflectionSolver)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		b.Solver = solver
	}

	res, err := b.CalculateDeflection()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BEAM DEFLECTION ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printInput(b)
	fmt.Println(diagram.DrawBeamElevation(elevationData(b)))

	fmt.Println("DEFLECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Solver:\t%s\n", b.Solver)
	fmt.Fprintf(w, "  Initial Rotation:\t%.6g\n", res.InitialRotation)
	fmt.Fprintf(w, "  Max Deflection:\t%.6g\tat x=%.3f\n",
		res.MaxDeflection, locate(res.X, res.Deflection, res.MaxDeflection))
	fmt.Fprintf(w, "  Min Deflection:\t%.6g\tat x=%.3f\n",
		res.MinDeflection, locate(res.X, res.Deflection, res.MinDeflection))
	w.Flush()
	fmt.Println()

	if deflectionDiagram {
		fmt.Println(diagram.DrawDeflection(res.Deflection, 61, 10))
	}

	fmt.Print(diagram.DrawSummaryBox("DEFLECTION RESULTS", []string{
		fmt.Sprintf("Max Deflection: %12.6g  at x=%.3f",
			res.MaxDeflection, locate(res.X, res.Deflection, res.MaxDeflection)),
		fmt.Sprintf("Min Deflection: %12.6g  at x=%.3f",
			res.MinDeflection, locate(res.X, res.Deflection, res.MinDeflection)),
	}))
	fmt.Println()

	if deflectionOutput != "" {
		if err := diagram.ExportDeflectionDiagram(res.X, res.Deflection, deflectionOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram exported to: %s\n", deflectionOutput)
	}
	if deflectionCSV != "" {
		if err := export.WriteDeflectionCSV(deflectionCSV, res); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("  Results written to: %s\n", deflectionCSV)
	}
	if deflectionJSON != "" {
		if err := export.WriteJSON(deflectionJSON, export.FromDeflection(b, res)); err != nil {
			fmt.Printf("Error writing JSON: %v\n", err)
			return
		}
		fmt.Printf("  Results written to: %s\n", deflectionJSON)
	}
	if deflectionOutput != "" || deflectionCSV != "" || deflectionJSON != "" {
		fmt.Println()
	}
}
