// Package beam computes internal shear, bending moment and deflection
// along a straight prismatic beam under point and distributed loads,
// and evaluates factored load combination envelopes.
package beam

import (
	"fmt"
	"math"
	"strings"

	"github.com/nateranda/beampy/internal/asce"
)

// Default discretization and solver parameters.
const (
	DefaultSections = 1000
	DefaultRotStep  = 1e-4
)

// Solver selects how the deflection boundary condition is satisfied.
type Solver int

const (
	// SolverDirect solves the initial rotation in closed form;
	// deflection is linear in it, so one corrected pass suffices.
	SolverDirect Solver = iota
	// SolverShooting walks the initial rotation in RotStep/EI
	// increments until the right-support deflection stops improving.
	SolverShooting
)

func (s Solver) String() string {
	if s == SolverShooting {
		return "shooting"
	}
	return "direct"
}

// ParseSolver converts a user-supplied string into a Solver. The empty
// string means the default direct solver.
func ParseSolver(s string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return SolverDirect, nil
	case "shooting":
		return SolverShooting, nil
	}
	return SolverDirect, fmt.Errorf("%w: unknown solver %q (want direct or shooting)", ErrInvalidParameter, s)
}

// Beam models a straight prismatic beam, simply supported or a
// cantilever fixed at x=0. Parameters are fixed at construction; only
// the load list grows, through AddLoad. Units are the caller's:
// length, magnitudes and EI just have to be consistent (the usual
// convention is ft, lb and lb-ft²).
type Beam struct {
	Length       float64     // overall length
	LeftSupport  float64     // left support location (the fixed end for a cantilever)
	RightSupport float64     // right support location (the free end for a cantilever)
	Cantilever   bool        // fixed at x=0, free at x=Length
	EI           float64     // flexural rigidity
	Method       asce.Method // combination table used by CalculateEnvelope
	Sections     int         // number of integration sections
	RotStep      float64     // rotation increment multiplier for the shooting solver
	Solver       Solver      // deflection solver, SolverDirect unless set

	loads []Load
}

// NewBeam builds a beam from the full parameter set. A cantilever is
// fixed at x=0 and free at x=length regardless of left and right;
// simply supported beams may carry overhangs (0 <= left < right <=
// length). Invalid parameters are rejected, never clamped.
func NewBeam(length, left, right float64, cantilever bool, ei float64, method asce.Method, sections int, rotStep float64) (*Beam, error) {
	b := &Beam{
		Length:       length,
		LeftSupport:  left,
		RightSupport: right,
		Cantilever:   cantilever,
		EI:           ei,
		Method:       method,
		Sections:     sections,
		RotStep:      rotStep,
	}
	if cantilever {
		b.LeftSupport = 0
		b.RightSupport = length
	}
	if err := b.check(); err != nil {
		return nil, err
	}
	return b, nil
}

// New builds a simply supported beam with supports at both ends,
// default discretization and LRFD combinations.
func New(length, ei float64) (*Beam, error) {
	return NewBeam(length, 0, length, false, ei, asce.LRFD, DefaultSections, DefaultRotStep)
}

// NewCantilever builds a cantilever fixed at x=0 with defaults.
func NewCantilever(length, ei float64) (*Beam, error) {
	return NewBeam(length, 0, length, true, ei, asce.LRFD, DefaultSections, DefaultRotStep)
}

// check validates the beam parameters. The calculate methods run it
// again so a zero-value Beam fails loudly instead of dividing by zero.
func (b *Beam) check() error {
	switch {
	case b.Length <= 0:
		return fmt.Errorf("%w: length %g, must be positive", ErrInvalidParameter, b.Length)
	case b.EI <= 0:
		return fmt.Errorf("%w: EI %g, must be positive", ErrInvalidParameter, b.EI)
	case b.Sections < 2:
		return fmt.Errorf("%w: %d sections, need at least 2", ErrInvalidParameter, b.Sections)
	case b.RotStep <= 0:
		return fmt.Errorf("%w: rotation step %g, must be positive", ErrInvalidParameter, b.RotStep)
	case !b.Method.Valid():
		return fmt.Errorf("%w: unknown analysis method %q", ErrInvalidParameter, b.Method)
	}
	if !b.Cantilever {
		if b.LeftSupport < 0 || b.RightSupport > b.Length {
			return fmt.Errorf("%w: supports [%g, %g] outside beam [0, %g]",
				ErrInvalidParameter, b.LeftSupport, b.RightSupport, b.Length)
		}
		if b.LeftSupport >= b.RightSupport {
			return fmt.Errorf("%w: left support %g not left of right support %g",
				ErrInvalidParameter, b.LeftSupport, b.RightSupport)
		}
	}
	return nil
}

// AddLoad appends a load after bounds-checking it against the beam
// length. A rejected load leaves the beam unchanged.
func (b *Beam) AddLoad(l Load) error {
	if l == nil {
		return fmt.Errorf("%w: nil load", ErrInvalidParameter)
	}
	if err := l.validate(b.Length); err != nil {
		return err
	}
	b.loads = append(b.loads, l)
	return nil
}

// Loads returns a copy of the load list in insertion order.
func (b *Beam) Loads() []Load {
	out := make([]Load, len(b.loads))
	copy(out, b.loads)
	return out
}

// Grid returns the Sections+1 sample locations x_i = L*i/N.
// Both endpoints are exact.
func (b *Beam) Grid() []float64 {
	xs := make([]float64, b.Sections+1)
	for i := range xs {
		xs[i] = b.Length * float64(i) / float64(b.Sections)
	}
	// L*N/N can round an ulp away from L; a load at the very end must
	// still land on the last sample.
	xs[b.Sections] = b.Length
	return xs
}

// step is the grid spacing h = L/N.
func (b *Beam) step() float64 {
	return b.Length / float64(b.Sections)
}

// nearestIndex returns the grid index closest to x, the first one on
// ties.
func nearestIndex(xs []float64, x float64) int {
	best := 0
	for i, v := range xs {
		if math.Abs(v-x) < math.Abs(xs[best]-x) {
			best = i
		}
	}
	return best
}
