package beam

import "math"

// DeflectionResult holds per-section rotation and deflection aligned
// with X, the deflection extremes, and the initial rotation the solver
// settled on.
type DeflectionResult struct {
	X          []float64
	Rotation   []float64
	Deflection []float64

	MaxDeflection float64
	MinDeflection float64

	InitialRotation float64
}

// CalculateDeflection integrates moment/EI into rotation and rotation
// into deflection, choosing the initial rotation so deflection
// vanishes at both supports (simply supported) or rotation and
// deflection vanish at the fixed end (cantilever). The shear/moment
// pass runs implicitly on the current load list.
func (b *Beam) CalculateDeflection() (*DeflectionResult, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	xs := b.Grid()
	_, moment, _ := b.compute(xs, b.loads)

	var theta float64
	switch {
	case b.Cantilever:
		// Integration starts at the fixed end, where rotation is zero.
		theta = 0
	case b.Solver == SolverShooting:
		theta = b.shootRotation(xs, moment)
	default:
		theta = b.directRotation(xs, moment)
	}

	rotation, deflection := b.integrate(xs, moment, theta)
	res := &DeflectionResult{
		X:               xs,
		Rotation:        rotation,
		Deflection:      deflection,
		InitialRotation: theta,
	}
	res.MaxDeflection, res.MinDeflection = extremes(deflection)
	return res, nil
}

// integrate runs the double trapezoidal integration from an initial
// rotation, then shifts deflection so it vanishes at the grid sample
// nearest the left support.
func (b *Beam) integrate(xs, moment []float64, theta float64) (rotation, deflection []float64) {
	h := b.step()
	rotation = make([]float64, len(xs))
	deflection = make([]float64, len(xs))

	rotation[0] = theta
	for i := 1; i < len(xs); i++ {
		rotation[i] = rotation[i-1] + h/b.EI*(moment[i-1]+moment[i])/2
	}
	for i := 1; i < len(xs); i++ {
		deflection[i] = deflection[i-1] + h*(rotation[i-1]+rotation[i])/2
	}

	shift := deflection[nearestIndex(xs, b.LeftSupport)]
	for i := range deflection {
		deflection[i] -= shift
	}
	return rotation, deflection
}

// directRotation solves the initial rotation in closed form.
// Deflection is linear in it, d(x; theta) = d0(x) + theta*x, and d0
// is already zeroed at the left support, so zeroing the right-support
// sample fixes theta outright.
func (b *Beam) directRotation(xs, moment []float64) float64 {
	_, d0 := b.integrate(xs, moment, 0)
	li := nearestIndex(xs, b.LeftSupport)
	ri := nearestIndex(xs, b.RightSupport)
	span := xs[ri] - xs[li]
	if span == 0 {
		// Supports collapse onto one grid sample; the boundary
		// condition is already met.
		return 0
	}
	return -d0[ri] / span
}

// shootRotation walks the initial rotation in RotStep/EI increments in
// whichever direction shrinks the right-support deflection, and keeps
// the last value that improved it. The error is linear in the
// rotation, so the walk is bounded.
func (b *Beam) shootRotation(xs, moment []float64) float64 {
	ri := nearestIndex(xs, b.RightSupport)
	delta := b.RotStep / b.EI

	var probes [3]float64
	for i, rot := range [3]float64{-delta, 0, delta} {
		_, d := b.integrate(xs, moment, rot)
		probes[i] = d[ri]
	}
	if probes[1] == 0 {
		return 0
	}

	dir := 1
	if math.Abs(probes[0]) < math.Abs(probes[2]) {
		dir = -1
	}

	last := probes[1]
	test := probes[1+dir]
	rot := delta * float64(dir)
	for math.Abs(test) < math.Abs(last) {
		last = test
		rot += delta * float64(dir)
		_, d := b.integrate(xs, moment, rot)
		test = d[ri]
	}
	return rot - delta*float64(dir)
}
