// Package section computes geometric properties of polygonal cross
// sections: area, centroid, second moments of area and the flexural
// rigidity EI a beam analysis needs.
package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// Section is a cross section defined by its boundary vertices in a
// local coordinate system with the Y axis pointing up. The polygon is
// assumed simple (no holes, no self-intersection); vertex order may be
// clockwise or counter-clockwise.
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Material names a known material whose elastic modulus is looked
	// up; Modulus overrides it when positive. Units are the caller's,
	// MPa and mm give EI in N·mm².
	Material string  `json:"material,omitempty"`
	Modulus  float64 `json:"modulus,omitempty"`

	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LoadFromFile loads and validates a section definition from a JSON
// file.
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var sec Section
	if err := json.Unmarshal(data, &sec); err != nil {
		return nil, err
	}

	if err := sec.Validate(); err != nil {
		return nil, err
	}

	return &sec, nil
}

// SaveToFile writes the section definition as indented JSON.
func (s *Section) SaveToFile(filepath string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, append(data, '\n'), 0644)
}

// Validate checks if the section definition is usable.
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if s.Modulus < 0 {
		return &ValidationError{"elastic modulus must not be negative"}
	}
	if s.Modulus == 0 && s.Material != "" {
		if _, err := ModulusOf(s.Material); err != nil {
			return &ValidationError{err.Error()}
		}
	}
	return nil
}

// E resolves the elastic modulus: the explicit override wins,
// otherwise the named material is looked up.
func (s *Section) E() (float64, error) {
	if s.Modulus > 0 {
		return s.Modulus, nil
	}
	if s.Material == "" {
		return 0, fmt.Errorf("section %q has no material or modulus", s.Name)
	}
	return ModulusOf(s.Material)
}

// EI returns the flexural rigidity about the horizontal centroidal
// axis.
func (s *Section) EI() (float64, error) {
	e, err := s.E()
	if err != nil {
		return 0, err
	}
	return e * s.CalculateProperties().MomentOfInertiaX, nil
}

// ValidationError represents a section validation error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
