package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/nateranda/beampy/internal/asce"
	"github.com/nateranda/beampy/internal/beam"
	"github.com/nateranda/beampy/internal/export"
	"github.com/spf13/cobra"
)

var (
	combosShowAll    bool
	combosSimplified bool
	combosCSV        string
	combosJSON       string
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Calculate the factored envelope across ASCE 7 load combinations",
	Long: `Evaluate every load combination of the chosen method (LRFD or ASD)
and report the governing shear and moment extremes.

Loads must carry a category so the combinations can factor them:

  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads (dead + live)
  beampy combos --length 10 --point 5,-50,D --point 5,-30,L

  # With wind, showing every combination
  beampy combos -L 10 -P 5,-50,D -P 5,-30,L -P 5,-20,W --all

  # Allowable stress design
  beampy combos --method ASD -f beam.yaml --all`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	addBeamFlags(combosCmd)
	addLoadFlags(combosCmd)

	combosCmd.Flags().BoolVarP(&combosShowAll, "all", "a", false, "Show every load combination result")
	combosCmd.Flags().BoolVarP(&combosSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	combosCmd.Flags().StringVar(&combosCSV, "csv", "", "Write per-combination extremes to a CSV file")
	combosCmd.Flags().StringVar(&combosJSON, "json", "", "Write the envelope to a JSON file")
}

func runCombos(cmd *cobra.Command, args []string) {
	b, err := buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var env *beam.Envelope
	if combosSimplified {
		env, err = b.CalculateEnvelopeOver(asce.SimplifiedCombinations)
	} else {
		env, err = b.CalculateEnvelope()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		if len(b.Loads()) > 0 {
			fmt.Println("Tag loads with a category, e.g. --point 5,-50,D")
		}
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("          ASCE 7 LOAD COMBINATION ENVELOPE (%s)\n", env.Method)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printInput(b)

	if combosShowAll {
		fmt.Println("LOAD COMBINATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tVmax\tVmin\tMmax\tMmin\n")
		fmt.Fprintf(w, "  ─\t───────────\t────\t────\t────\t────\n")
		for i, c := range env.Cases {
			marker := ""
			if governs(env, i) {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.3f\t%.3f\t%.3f\t%.3f%s\n",
				c.Combination.ID, c.Combination.Description,
				c.MaxShear, c.MinShear, c.MaxMoment, c.MinMoment, marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("GOVERNING COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max Shear:\t%.4f\t%s\n", env.MaxShear.Value, env.MaxShear.Combination.Description)
	fmt.Fprintf(w, "  Min Shear:\t%.4f\t%s\n", env.MinShear.Value, env.MinShear.Combination.Description)
	fmt.Fprintf(w, "  Max Moment:\t%.4f\t%s\n", env.MaxMoment.Value, env.MaxMoment.Combination.Description)
	fmt.Fprintf(w, "  Min Moment:\t%.4f\t%s\n", env.MinMoment.Value, env.MinMoment.Combination.Description)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN SHEAR  (Vu) = %.4f\n", absMax(env.MaxShear.Value, env.MinShear.Value))
	fmt.Printf("  ║  DESIGN MOMENT (Mu) = %.4f\n", absMax(env.MaxMoment.Value, env.MinMoment.Value))
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()

	if combosCSV != "" {
		if err := export.WriteEnvelopeCSV(combosCSV, env); err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("  Results written to: %s\n", combosCSV)
		fmt.Println()
	}
	if combosJSON != "" {
		if err := export.WriteJSON(combosJSON, export.FromEnvelope(b, env)); err != nil {
			fmt.Printf("Error writing JSON: %v\n", err)
			return
		}
		fmt.Printf("  Results written to: %s\n", combosJSON)
		fmt.Println()
	}
}

// governs reports whether the case at index i produced any of the four
// envelope extremes.
func governs(env *beam.Envelope, i int) bool {
	return env.MaxShear.Index == i || env.MinShear.Index == i ||
		env.MaxMoment.Index == i || env.MinMoment.Index == i
}

func absMax(a, b float64) float64 {
	if math.Abs(b) > math.Abs(a) {
		return math.Abs(b)
	}
	return math.Abs(a)
}
