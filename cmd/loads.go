package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nateranda/beampy/internal/asce"
	"github.com/nateranda/beampy/internal/beam"
	"github.com/nateranda/beampy/internal/config"
	"github.com/nateranda/beampy/internal/diagram"
)

// Beam definition flags shared by the analysis commands. Only one
// command runs per invocation so the commands can bind the same vars.
var (
	flagLength     float64
	flagLeft       float64
	flagRight      float64
	flagCantilever bool
	flagEI         float64
	flagMethod     string
	flagSections   int

	flagPoints  []string
	flagMoments []string
	flagDists   []string

	flagConfig string
)

// addBeamFlags registers the geometry and discretization flags.
func addBeamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&flagLength, "length", "L", config.DefaultLength, "Beam length")
	cmd.Flags().Float64Var(&flagLeft, "left", 0, "Left support location")
	cmd.Flags().Float64Var(&flagRight, "right", 0, "Right support location (0 means the beam end)")
	cmd.Flags().BoolVar(&flagCantilever, "cantilever", false, "Cantilever fixed at x=0, free at x=length")
	cmd.Flags().Float64Var(&flagEI, "ei", config.DefaultEI, "Flexural rigidity EI")
	cmd.Flags().StringVar(&flagMethod, "method", string(asce.LRFD), "Combination method: LRFD or ASD")
	cmd.Flags().IntVar(&flagSections, "sections", beam.DefaultSections, "Number of integration sections")
	cmd.Flags().StringVarP(&flagConfig, "config", "f", "", "Beam definition YAML (flag loads are added on top)")
}

// addLoadFlags registers the repeatable load spec flags.
func addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&flagPoints, "point", "P", nil, "Point load: pos,mag[,type] (repeatable)")
	cmd.Flags().StringArrayVarP(&flagMoments, "moment", "M", nil, "Point moment: pos,mag[,type] (repeatable)")
	cmd.Flags().StringArrayVarP(&flagDists, "dist", "D", nil, "Distributed load: start,end,startMag,endMag[,type] (repeatable)")
}

// buildBeam assembles the beam from the config file when one is given,
// from the geometry flags otherwise, and appends the flag loads.
func buildBeam() (*beam.Beam, error) {
	b, err := flagBeam()
	if err != nil {
		return nil, err
	}
	if err := addFlagLoads(b); err != nil {
		return nil, err
	}
	return b, nil
}

func flagBeam() (*beam.Beam, error) {
	if flagConfig != "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		return cfg.Build()
	}

	method, err := asce.ParseMethod(flagMethod)
	if err != nil {
		return nil, err
	}
	right := flagRight
	if right == 0 && !flagCantilever {
		right = flagLength
	}
	return beam.NewBeam(flagLength, flagLeft, right, flagCantilever, flagEI, method, flagSections, beam.DefaultRotStep)
}

func addFlagLoads(b *beam.Beam) error {
	for _, spec := range flagPoints {
		l, err := parsePointSpec(spec, false)
		if err != nil {
			return err
		}
		if err := b.AddLoad(l); err != nil {
			return fmt.Errorf("point load %q: %w", spec, err)
		}
	}
	for _, spec := range flagMoments {
		l, err := parsePointSpec(spec, true)
		if err != nil {
			return err
		}
		if err := b.AddLoad(l); err != nil {
			return fmt.Errorf("moment %q: %w", spec, err)
		}
	}
	for _, spec := range flagDists {
		l, err := parseDistSpec(spec)
		if err != nil {
			return err
		}
		if err := b.AddLoad(l); err != nil {
			return fmt.Errorf("distributed load %q: %w", spec, err)
		}
	}
	return nil
}

func parsePointSpec(spec string, moment bool) (beam.Load, error) {
	fields := splitSpec(spec)
	if len(fields) < 2 || len(fields) > 3 {
		return nil, fmt.Errorf("load %q: want pos,mag[,type]", spec)
	}
	vals, err := specFloats(spec, fields[:2])
	if err != nil {
		return nil, err
	}
	t, err := specType(spec, fields, 2)
	if err != nil {
		return nil, err
	}
	if moment {
		return beam.NewPointMoment(vals[0], vals[1], t), nil
	}
	return beam.NewPointLoad(vals[0], vals[1], t), nil
}

func parseDistSpec(spec string) (beam.Load, error) {
	fields := splitSpec(spec)
	if len(fields) < 4 || len(fields) > 5 {
		return nil, fmt.Errorf("load %q: want start,end,startMag,endMag[,type]", spec)
	}
	vals, err := specFloats(spec, fields[:4])
	if err != nil {
		return nil, err
	}
	t, err := specType(spec, fields, 4)
	if err != nil {
		return nil, err
	}
	return beam.NewDistLoad(vals[0], vals[1], vals[2], vals[3], t), nil
}

func splitSpec(spec string) []string {
	fields := strings.Split(spec, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func specFloats(spec string, fields []string) ([]float64, error) {
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("load %q: bad number %q", spec, f)
		}
		vals[i] = v
	}
	return vals, nil
}

func specType(spec string, fields []string, idx int) (asce.LoadType, error) {
	if len(fields) <= idx {
		return asce.None, nil
	}
	t, err := asce.ParseLoadType(fields[idx])
	if err != nil {
		return asce.None, fmt.Errorf("load %q: %w", spec, err)
	}
	return t, nil
}

// printInput writes the INPUT DATA section shared by the analysis
// commands.
func printInput(b *beam.Beam) {
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Length:\t%g\n", b.Length)
	if b.Cantilever {
		fmt.Fprintf(w, "  Support:\tfixed at x=0, free at x=%g\n", b.Length)
	} else {
		fmt.Fprintf(w, "  Supports:\tx=%g and x=%g\n", b.LeftSupport, b.RightSupport)
	}
	fmt.Fprintf(w, "  Flexural Rigidity (EI):\t%g\n", b.EI)
	fmt.Fprintf(w, "  Method:\t%s\n", b.Method)
	fmt.Fprintf(w, "  Sections:\t%d\n", b.Sections)
	w.Flush()

	loads := b.Loads()
	if len(loads) == 0 {
		fmt.Println("  Loads: none")
	} else {
		fmt.Println("  Loads:")
		for _, l := range loads {
			fmt.Printf("    %v\n", l)
		}
	}
	fmt.Println()
}

// elevationData converts the beam into the marker form the elevation
// sketch needs.
func elevationData(b *beam.Beam) diagram.BeamData {
	data := diagram.BeamData{
		Length:       b.Length,
		LeftSupport:  b.LeftSupport,
		RightSupport: b.RightSupport,
		Cantilever:   b.Cantilever,
	}
	for _, l := range b.Loads() {
		switch v := l.(type) {
		case beam.PointLoad:
			data.PointLoads = append(data.PointLoads, diagram.PointMarker{
				Position:  v.Dist,
				Magnitude: v.Mag,
				Moment:    v.IsMoment,
			})
		case beam.DistLoad:
			data.DistLoads = append(data.DistLoads, diagram.SpanMarker{
				Start: v.Start, End: v.End,
				StartMagnitude: v.StartMag, EndMagnitude: v.EndMag,
			})
		}
	}
	return data
}

// locate returns the x of the first section where the series takes the
// given extreme value. Extremes come from the same slice, so exact
// comparison is safe.
func locate(xs, vals []float64, target float64) float64 {
	for i, v := range vals {
		if v == target {
			return xs[i]
		}
	}
	return 0
}
