// Package asce provides ASCE 7 style factored load combinations for
// strength design (LRFD) and allowable stress design (ASD).
package asce

import (
	"fmt"
	"strings"
)

// Method selects which load combination table governs an analysis.
type Method string

const (
	LRFD Method = "LRFD" // strength design
	ASD  Method = "ASD"  // allowable stress design
)

// Valid reports whether the method names a known combination table.
func (m Method) Valid() bool {
	return m == LRFD || m == ASD
}

// ParseMethod converts a user-supplied string into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LRFD", "STRENGTH":
		return LRFD, nil
	case "ASD", "ALLOWABLE":
		return ASD, nil
	}
	return "", fmt.Errorf("unknown analysis method %q (want LRFD or ASD)", s)
}

// LoadType categorizes a load for factored combinations.
// The zero value None marks an untagged load; it carries a zero factor
// in every combination.
type LoadType string

const (
	None       LoadType = ""
	Dead       LoadType = "D"
	Live       LoadType = "L"
	Roof       LoadType = "Lr" // roof live load
	Wind       LoadType = "W"
	Earthquake LoadType = "E"
	Rain       LoadType = "R"
)

// ParseLoadType converts a user-supplied string into a LoadType.
// Both the short code ("Lr") and the long name ("roof") are accepted.
func ParseLoadType(s string) (LoadType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return None, nil
	case "d", "dead":
		return Dead, nil
	case "l", "live":
		return Live, nil
	case "lr", "roof":
		return Roof, nil
	case "w", "wind":
		return Wind, nil
	case "e", "earthquake", "seismic":
		return Earthquake, nil
	case "r", "rain":
		return Rain, nil
	}
	return None, fmt.Errorf("unknown load type %q (want D, L, Lr, W, E or R)", s)
}

// Combination represents one factored load combination
// with a factor per load category.
type Combination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// Factor returns the combination's factor for a load type.
// Untagged (None) loads always factor to zero.
func (c Combination) Factor(t LoadType) float64 {
	switch t {
	case Dead:
		return c.Dead
	case Live:
		return c.Live
	case Roof:
		return c.Roof
	case Wind:
		return c.Wind
	case Earthquake:
		return c.Earthquake
	case Rain:
		return c.Rain
	}
	return 0
}

// StrengthCombinations - basic strength design (LRFD) combinations
var StrengthCombinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// AllowableCombinations - basic allowable stress design (ASD) combinations
var AllowableCombinations = []Combination{
	{
		ID:          "1",
		Description: "D",
		Dead:        1.0,
	},
	{
		ID:          "2",
		Description: "D + L",
		Dead:        1.0,
		Live:        1.0,
	},
	{
		ID:          "3",
		Description: "D + (Lr or R)",
		Dead:        1.0,
		Roof:        1.0,
		Rain:        1.0,
	},
	{
		ID:          "4",
		Description: "D + 0.75L + 0.75(Lr or R)",
		Dead:        1.0,
		Live:        0.75,
		Roof:        0.75,
		Rain:        0.75,
	},
	{
		ID:          "5",
		Description: "D + 0.6W",
		Dead:        1.0,
		Wind:        0.6,
	},
	{
		ID:          "6",
		Description: "D + 0.7E",
		Dead:        1.0,
		Earthquake:  0.7,
	},
	{
		ID:          "7",
		Description: "D + 0.75L + 0.45W + 0.75(Lr or R)",
		Dead:        1.0,
		Live:        0.75,
		Wind:        0.45,
		Roof:        0.75,
		Rain:        0.75,
	},
	{
		ID:          "8",
		Description: "D + 0.75L + 0.525E",
		Dead:        1.0,
		Live:        0.75,
		Earthquake:  0.525,
	},
	{
		ID:          "9",
		Description: "0.6D + 0.6W",
		Dead:        0.6,
		Wind:        0.6,
	},
	{
		ID:          "10",
		Description: "0.6D + 0.7E",
		Dead:        0.6,
		Earthquake:  0.7,
	},
}

// SimplifiedCombinations for common gravity-only strength checks
var SimplifiedCombinations = []Combination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Combinations returns the full combination table for a method,
// in code order. Unknown methods yield nil.
func Combinations(m Method) []Combination {
	switch m {
	case LRFD:
		return StrengthCombinations
	case ASD:
		return AllowableCombinations
	}
	return nil
}
