package cmd

import (
	"fmt"

	"github.com/nateranda/beampy/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of beampy",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beampy v%s\n", version.Version)
		fmt.Println("Beam Shear, Moment and Deflection Analysis")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
