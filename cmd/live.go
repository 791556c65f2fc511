package cmd

import (
	"fmt"

	"github.com/nateranda/beampy/internal/tui"
	"github.com/spf13/cobra"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Browse analysis results interactively",
	Long: `Open an interactive terminal viewer for the beam. Switch between
the shear, moment and deflection curves and step through the load
combinations of the chosen method.

Keys:
  s / m / d   shear, moment or deflection view
  tab         cycle views
  ← / →       previous / next load combination
  q           quit

Examples:
  beampy live --length 10 --point 5,-50,D --point 5,-30,L
  beampy live -f beam.yaml`,
	Run: runLive,
}

func init() {
	rootCmd.AddCommand(liveCmd)

	addBeamFlags(liveCmd)
	addLoadFlags(liveCmd)
}

func runLive(cmd *cobra.Command, args []string) {
	b, err := buildBeam()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := tui.Run(b); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
