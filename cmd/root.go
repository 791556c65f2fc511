package cmd

import (
	"fmt"
	"os"

	"github.com/nateranda/beampy/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beampy",
	Short: "Beam analysis tool",
	Long: `beampy - Beam Shear, Moment and Deflection Analysis

A CLI tool for the elastic analysis of single-span beams:
simply supported (with optional overhangs) or cantilevered.

This tool helps structural engineers perform:
  - Shear and bending moment analysis
  - Deflection analysis by double integration
  - Factored load envelopes per ASCE 7 (LRFD and ASD)
  - Cross-section property calculation
  - Diagram export and PDF reporting`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   beampy v%-48s║\n", version.Version)
		fmt.Println("  ║   Beam Shear, Moment and Deflection Analysis              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the elastic analysis of single-span beams,")
		fmt.Println("  simply supported or cantilevered, under categorized loads.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Shear and moment diagrams for point, moment and distributed loads")
		fmt.Println("    • Deflection by double integration (direct or shooting solver)")
		fmt.Println("    • ASCE 7 load combination envelopes (LRFD and ASD)")
		fmt.Println("    • Cross-section properties and flexural rigidity")
		fmt.Println("    • CSV/JSON export, PNG/SVG diagrams and PDF reports")
		fmt.Println("    • Interactive terminal viewer")
		fmt.Println()
		fmt.Println("  Use 'beampy --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
