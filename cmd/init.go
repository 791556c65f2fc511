package cmd

import (
	"fmt"

	"github.com/nateranda/beampy/internal/config"
	"github.com/spf13/cobra"
)

var initOutput string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter beam definition YAML",
	Long: `Write a starter beam definition to a YAML file. Edit it and pass
it to the analysis commands with --config.

Example:
  beampy init -o beam.yaml
  beampy analyze -f beam.yaml`,
	Run: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOutput, "output", "o", "beam.yaml", "Output YAML file")
}

func runInit(cmd *cobra.Command, args []string) {
	if err := config.Save(initOutput, config.DefaultConfig()); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Beam definition written to: %s\n", initOutput)
}
