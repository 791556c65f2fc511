package section

import (
	"fmt"
	"math"
	"strings"
)

// Elastic moduli for common materials, in MPa.
const (
	// Structural steel
	ModulusSteel = 200000.0

	// Aluminum alloys
	ModulusAluminum = 70000.0

	// Sawn softwood timber, a mid-grade reference value
	ModulusTimber = 11000.0
)

// ModulusConcrete estimates the elastic modulus of normal weight
// concrete from its compressive strength, Ec = 4700√f'c (MPa).
func ModulusConcrete(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// ModulusOf maps a material name to its elastic modulus in MPa.
// Concrete uses a default f'c of 28 MPa; define Modulus explicitly for
// other strengths.
func ModulusOf(name string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "steel":
		return ModulusSteel, nil
	case "aluminum", "aluminium":
		return ModulusAluminum, nil
	case "timber", "wood":
		return ModulusTimber, nil
	case "concrete":
		return ModulusConcrete(28), nil
	}
	return 0, fmt.Errorf("unknown material %q (want steel, aluminum, timber or concrete)", name)
}
