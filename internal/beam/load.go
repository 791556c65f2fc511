package beam

import (
	"fmt"

	"github.com/nateranda/beampy/internal/asce"
)

// Load is the closed set of loads a beam accepts: PointLoad and
// DistLoad. A load adds its raw, unreacted effect to the shear and
// moment arrays; support reactions are resolved afterwards from the
// load resultants.
type Load interface {
	// Category returns the load's combination category,
	// asce.None for untagged loads.
	Category() asce.LoadType

	validate(length float64) error
	scaled(factor float64) Load
	contribute(xs, shear, moment []float64)
	resultant() (force, location, couple float64)
}

// PointLoad is a concentrated transverse force at a single location,
// or a concentrated moment when IsMoment is set.
type PointLoad struct {
	Dist     float64       // location along the beam
	Mag      float64       // signed magnitude
	IsMoment bool          // concentrated moment instead of transverse force
	Type     asce.LoadType // combination category
}

// NewPointLoad creates a concentrated transverse force at dist.
func NewPointLoad(dist, mag float64, t asce.LoadType) PointLoad {
	return PointLoad{Dist: dist, Mag: mag, Type: t}
}

// NewPointMoment creates a concentrated moment at dist.
func NewPointMoment(dist, mag float64, t asce.LoadType) PointLoad {
	return PointLoad{Dist: dist, Mag: mag, IsMoment: true, Type: t}
}

func (p PointLoad) Category() asce.LoadType { return p.Type }

func (p PointLoad) validate(length float64) error {
	if p.Dist < 0 || p.Dist > length {
		return fmt.Errorf("%w: point load at %g outside beam [0, %g]", ErrLoadOutOfBounds, p.Dist, length)
	}
	return nil
}

func (p PointLoad) scaled(factor float64) Load {
	p.Mag *= factor
	return p
}

// contribute adds the raw step: a force steps shear by Mag at
// x >= Dist, a moment steps moment by -Mag there. The jump lands
// exactly at a coincident sample, keeping the arrays right-continuous
// at load points.
func (p PointLoad) contribute(xs, shear, moment []float64) {
	for i, x := range xs {
		if x < p.Dist {
			continue
		}
		if p.IsMoment {
			moment[i] -= p.Mag
		} else {
			shear[i] += p.Mag
		}
	}
}

func (p PointLoad) resultant() (force, location, couple float64) {
	if p.IsMoment {
		return 0, p.Dist, p.Mag
	}
	return p.Mag, p.Dist, 0
}

func (p PointLoad) String() string {
	kind := "point load"
	if p.IsMoment {
		kind = "moment"
	}
	s := fmt.Sprintf("%s %g at %g", kind, p.Mag, p.Dist)
	if p.Type != asce.None {
		s += fmt.Sprintf(" (%s)", p.Type)
	}
	return s
}

// DistLoad is a distributed load ramping linearly from StartMag at
// Start to EndMag at End. Equal magnitudes give a uniform load, a zero
// endpoint a triangular one.
type DistLoad struct {
	Start    float64
	End      float64
	StartMag float64
	EndMag   float64
	Type     asce.LoadType // combination category
}

// NewDistLoad creates a linearly varying distributed load over
// [start, end].
func NewDistLoad(start, end, startMag, endMag float64, t asce.LoadType) DistLoad {
	return DistLoad{Start: start, End: end, StartMag: startMag, EndMag: endMag, Type: t}
}

func (d DistLoad) Category() asce.LoadType { return d.Type }

func (d DistLoad) validate(length float64) error {
	if d.Start > d.End {
		return fmt.Errorf("%w: distributed load start %g past end %g", ErrLoadOutOfBounds, d.Start, d.End)
	}
	if d.Start < 0 || d.End > length {
		return fmt.Errorf("%w: distributed load [%g, %g] outside beam [0, %g]", ErrLoadOutOfBounds, d.Start, d.End, length)
	}
	return nil
}

func (d DistLoad) scaled(factor float64) Load {
	d.StartMag *= factor
	d.EndMag *= factor
	return d
}

func (d DistLoad) span() float64 { return d.End - d.Start }

// magnitude is the resultant force of the load block.
func (d DistLoad) magnitude() float64 {
	return (d.StartMag + d.EndMag) / 2 * d.span()
}

// centroid is the resultant's position. A zero-sum ramp has no
// resultant; the midpoint is returned so reaction terms stay finite.
func (d DistLoad) centroid() float64 {
	sum := d.StartMag + d.EndMag
	if sum == 0 {
		return d.Start + d.span()/2
	}
	return d.Start + (d.StartMag+2*d.EndMag)/(3*sum)*d.span()
}

// contribute adds the running integral of the ramp at samples inside
// [Start, End] and the full resultant past End. A zero-span load has
// no resultant and contributes nothing.
func (d DistLoad) contribute(xs, shear, moment []float64) {
	span := d.span()
	if span == 0 {
		return
	}
	mag := d.magnitude()
	for i, x := range xs {
		switch {
		case x >= d.Start && x <= d.End:
			r := x - d.Start
			shear[i] += d.StartMag*r + r*r*(d.EndMag-d.StartMag)/(2*span)
		case x > d.End:
			shear[i] += mag
		}
	}
}

func (d DistLoad) resultant() (force, location, couple float64) {
	return d.magnitude(), d.centroid(), 0
}

func (d DistLoad) String() string {
	s := fmt.Sprintf("distributed load %g to %g over [%g, %g]", d.StartMag, d.EndMag, d.Start, d.End)
	if d.Type != asce.None {
		s += fmt.Sprintf(" (%s)", d.Type)
	}
	return s
}
