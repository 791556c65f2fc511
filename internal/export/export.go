// Package export writes analysis results to CSV and JSON files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/nateranda/beampy/internal/beam"
)

// Data is the JSON export shape: the beam definition, whichever result
// arrays the run produced and the headline values.
type Data struct {
	Beam BeamData `json:"beam"`

	Reactions *ReactionData `json:"reactions,omitempty"`
	Extremes  *ExtremeData  `json:"extremes,omitempty"`

	X          []float64 `json:"x,omitempty"`
	Shear      []float64 `json:"shear,omitempty"`
	Moment     []float64 `json:"moment,omitempty"`
	Rotation   []float64 `json:"rotation,omitempty"`
	Deflection []float64 `json:"deflection,omitempty"`

	Cases     []CaseData     `json:"cases,omitempty"`
	Governing *GoverningData `json:"governing,omitempty"`
}

type BeamData struct {
	Length       float64 `json:"length"`
	LeftSupport  float64 `json:"left_support"`
	RightSupport float64 `json:"right_support"`
	Cantilever   bool    `json:"cantilever"`
	EI           float64 `json:"ei"`
	Method       string  `json:"method"`
	Sections     int     `json:"sections"`
}

type ReactionData struct {
	Left        float64 `json:"left"`
	Right       float64 `json:"right"`
	FixedMoment float64 `json:"fixed_moment,omitempty"`
}

type ExtremeData struct {
	MaxShear      float64 `json:"max_shear"`
	MinShear      float64 `json:"min_shear"`
	MaxMoment     float64 `json:"max_moment"`
	MinMoment     float64 `json:"min_moment"`
	MaxDeflection float64 `json:"max_deflection,omitempty"`
	MinDeflection float64 `json:"min_deflection,omitempty"`
}

type CaseData struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	MaxShear    float64 `json:"max_shear"`
	MinShear    float64 `json:"min_shear"`
	MaxMoment   float64 `json:"max_moment"`
	MinMoment   float64 `json:"min_moment"`
}

type GoverningData struct {
	MaxShear  GoverningValue `json:"max_shear"`
	MinShear  GoverningValue `json:"min_shear"`
	MaxMoment GoverningValue `json:"max_moment"`
	MinMoment GoverningValue `json:"min_moment"`
}

type GoverningValue struct {
	Value       float64 `json:"value"`
	Combination string  `json:"combination"`
}

func describeBeam(b *beam.Beam) BeamData {
	return BeamData{
		Length:       b.Length,
		LeftSupport:  b.LeftSupport,
		RightSupport: b.RightSupport,
		Cantilever:   b.Cantilever,
		EI:           b.EI,
		Method:       string(b.Method),
		Sections:     b.Sections,
	}
}

// FromShearMoment assembles the export data for a shear/moment run.
func FromShearMoment(b *beam.Beam, res *beam.ShearMomentResult) Data {
	return Data{
		Beam: describeBeam(b),
		Reactions: &ReactionData{
			Left:        res.Reactions.Left,
			Right:       res.Reactions.Right,
			FixedMoment: res.Reactions.FixedMoment,
		},
		Extremes: &ExtremeData{
			MaxShear:  res.MaxShear,
			MinShear:  res.MinShear,
			MaxMoment: res.MaxMoment,
			MinMoment: res.MinMoment,
		},
		X:      res.X,
		Shear:  res.Shear,
		Moment: res.Moment,
	}
}

// FromDeflection assembles the export data for a deflection run.
func FromDeflection(b *beam.Beam, res *beam.DeflectionResult) Data {
	return Data{
		Beam: describeBeam(b),
		Extremes: &ExtremeData{
			MaxDeflection: res.MaxDeflection,
			MinDeflection: res.MinDeflection,
		},
		X:          res.X,
		Rotation:   res.Rotation,
		Deflection: res.Deflection,
	}
}

// FromEnvelope assembles the export data for a combination envelope.
func FromEnvelope(b *beam.Beam, env *beam.Envelope) Data {
	data := Data{
		Beam:  describeBeam(b),
		Cases: make([]CaseData, len(env.Cases)),
		Governing: &GoverningData{
			MaxShear:  governing(env.MaxShear),
			MinShear:  governing(env.MinShear),
			MaxMoment: governing(env.MaxMoment),
			MinMoment: governing(env.MinMoment),
		},
	}
	for i, c := range env.Cases {
		data.Cases[i] = CaseData{
			ID:          c.Combination.ID,
			Description: c.Combination.Description,
			MaxShear:    c.MaxShear,
			MinShear:    c.MinShear,
			MaxMoment:   c.MaxMoment,
			MinMoment:   c.MinMoment,
		}
	}
	return data
}

func governing(e beam.Extreme) GoverningValue {
	return GoverningValue{Value: e.Value, Combination: e.Combination.Description}
}

// WriteJSON writes the data as indented JSON to a file.
func WriteJSON(path string, data Data) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeJSON(file, data)
}

// EncodeJSON writes the data as indented JSON to a writer.
func EncodeJSON(w io.Writer, data Data) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteShearMomentCSV writes x, shear and moment columns to a file.
func WriteShearMomentCSV(path string, res *beam.ShearMomentResult) error {
	return writeCSV(path, []string{"x", "shear", "moment"}, res.X, res.Shear, res.Moment)
}

// WriteDeflectionCSV writes x, rotation and deflection columns to a
// file.
func WriteDeflectionCSV(path string, res *beam.DeflectionResult) error {
	return writeCSV(path, []string{"x", "rotation", "deflection"}, res.X, res.Rotation, res.Deflection)
}

// WriteEnvelopeCSV writes one row per combination case to a file.
func WriteEnvelopeCSV(path string, env *beam.Envelope) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"id", "combination", "max_shear", "min_shear", "max_moment", "min_moment"}); err != nil {
		return err
	}
	for _, c := range env.Cases {
		row := []string{
			c.Combination.ID,
			c.Combination.Description,
			strconv.FormatFloat(c.MaxShear, 'f', 6, 64),
			strconv.FormatFloat(c.MinShear, 'f', 6, 64),
			strconv.FormatFloat(c.MaxMoment, 'f', 6, 64),
			strconv.FormatFloat(c.MinMoment, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func writeCSV(path string, header []string, columns ...[]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for i := range columns[0] {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = strconv.FormatFloat(col[i], 'f', 6, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
