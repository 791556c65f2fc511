package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nateranda/beampy/internal/diagram"
	"github.com/nateranda/beampy/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile   string
	sectionInit   string
	sectionOutput string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Calculate geometric properties of a cross section",
	Long: `Calculate the geometric properties of an arbitrary polygonal cross
section defined in a JSON file: area, centroid, moments of inertia,
section moduli and radii of gyration.

When the section names a material (steel, aluminum, timber, concrete)
or an explicit elastic modulus, the flexural rigidity EI is reported
for use with the analysis commands.

Example JSON file structure:
{
  "name": "T-Section",
  "description": "300x400 web, 500x100 flange",
  "material": "steel",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 400, "y": 400},
    {"x": 400, "y": 500},
    {"x": -100, "y": 500},
    {"x": -100, "y": 400},
    {"x": 0, "y": 400}
  ]
}

Examples:
  beampy section --file t-section.json
  beampy section -f my-section.json -o section.png
  beampy section --init starter.json`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section JSON file")
	sectionCmd.Flags().StringVar(&sectionInit, "init", "", "Write a starter section JSON and exit")
	sectionCmd.Flags().StringVarP(&sectionOutput, "output", "o", "", "Export section diagram (png, svg, pdf)")
}

func runSection(cmd *cobra.Command, args []string) {
	if sectionInit != "" {
		if err := writeSectionTemplate(sectionInit); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Starter section written to: %s\n", sectionInit)
		return
	}
	if sectionFile == "" {
		fmt.Println("Error: provide a section JSON file with --file.")
		fmt.Println("Use 'beampy section --help' for the file structure.")
		return
	}

	sec, err := section.LoadFromFile(sectionFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}
	props := sec.CalculateProperties()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CROSS SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Vertices:\t%d\n", len(sec.Vertices))
	fmt.Fprintf(w, "  Width:\t%.2f\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.2f\n", props.Height)
	fmt.Fprintf(w, "  Bounds X:\t[%.2f, %.2f]\n", props.MinX, props.MaxX)
	fmt.Fprintf(w, "  Bounds Y:\t[%.2f, %.2f]\n", props.MinY, props.MaxY)
	w.Flush()
	fmt.Println()

	fmt.Println("PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.2f\n", props.Area)
	fmt.Fprintf(w, "  Centroid (x̄, ȳ):\t(%.2f, %.2f)\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Moment of Inertia (Ix):\t%.4e\n", props.MomentOfInertiaX)
	fmt.Fprintf(w, "  Moment of Inertia (Iy):\t%.4e\n", props.MomentOfInertiaY)
	fmt.Fprintf(w, "  Section Modulus (Sx,top):\t%.4e\n", props.SectionModulusTop)
	fmt.Fprintf(w, "  Section Modulus (Sx,bot):\t%.4e\n", props.SectionModulusBottom)
	fmt.Fprintf(w, "  Radius of Gyration (rx):\t%.4f\n", props.RadiusOfGyrationX)
	fmt.Fprintf(w, "  Radius of Gyration (ry):\t%.4f\n", props.RadiusOfGyrationY)
	w.Flush()
	fmt.Println()

	if sec.Material != "" || sec.Modulus > 0 {
		e, err := sec.E()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		ei, err := sec.EI()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("MATERIAL:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if sec.Material != "" {
			fmt.Fprintf(w, "  Material:\t%s\n", sec.Material)
		}
		fmt.Fprintf(w, "  Elastic Modulus (E):\t%.4e\n", e)
		fmt.Fprintf(w, "  Flexural Rigidity (EI):\t%.4e\n", ei)
		w.Flush()
		fmt.Println()

		fmt.Print(diagram.DrawSummaryBox("FLEXURAL RIGIDITY", []string{
			fmt.Sprintf("EI = %.4e  (use with --ei)", ei),
		}))
		fmt.Println()
	}

	if sectionOutput != "" {
		verts := make([]diagram.Point, len(sec.Vertices))
		for i, v := range sec.Vertices {
			verts[i] = diagram.Point{X: v.X, Y: v.Y}
		}
		err := diagram.ExportSectionDiagram(verts, props.CentroidX, props.CentroidY, sectionOutput)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Diagram exported to: %s\n", sectionOutput)
		fmt.Println()
	}
}

func writeSectionTemplate(path string) error {
	sec := &section.Section{
		Name:        "Rectangle",
		Description: "300x500 rectangular section",
		Material:    "concrete",
		Vertices: []section.Point{
			{X: 0, Y: 0},
			{X: 300, Y: 0},
			{X: 300, Y: 500},
			{X: 0, Y: 500},
		},
	}
	return sec.SaveToFile(path)
}
