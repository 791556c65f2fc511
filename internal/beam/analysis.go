package beam

// Reactions are the support forces resolved from static equilibrium,
// in the applied-load sign convention: Left+Right equals the total
// applied transverse force. FixedMoment is the fixed-end moment and is
// nonzero only for cantilevers.
type Reactions struct {
	Left        float64
	Right       float64
	FixedMoment float64
}

// ShearMomentResult holds per-section shear and moment aligned with X,
// their extremes, and the resolved support reactions.
type ShearMomentResult struct {
	X      []float64
	Shear  []float64
	Moment []float64

	MaxShear  float64
	MinShear  float64
	MaxMoment float64
	MinMoment float64

	Reactions Reactions
}

// CalculateShearMoment computes shear(x) and moment(x) for the current
// load list: raw load contributions, support reactions, then the
// trapezoidal integration of shear into moment. Repeated calls with an
// unchanged load list reproduce identical arrays.
func (b *Beam) CalculateShearMoment() (*ShearMomentResult, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	xs := b.Grid()
	shear, moment, reactions := b.compute(xs, b.loads)

	res := &ShearMomentResult{
		X:         xs,
		Shear:     shear,
		Moment:    moment,
		Reactions: reactions,
	}
	res.MaxShear, res.MinShear = extremes(shear)
	res.MaxMoment, res.MinMoment = extremes(moment)
	return res, nil
}

// compute runs the integrator over an explicit load list so envelope
// evaluation can reuse it with factored loads. It never mutates the
// beam.
func (b *Beam) compute(xs []float64, loads []Load) (shear, moment []float64, r Reactions) {
	shear = make([]float64, len(xs))
	moment = make([]float64, len(xs))

	// Raw superposed contributions, in insertion order.
	for _, l := range loads {
		l.contribute(xs, shear, moment)
	}

	r = b.reactions(loads)
	if b.Cantilever {
		// The fixed end absorbs the whole resultant, so shear and
		// moment vanish identically past the last load.
		for i := range xs {
			shear[i] -= r.Left
			moment[i] += r.FixedMoment
		}
	} else {
		for i, x := range xs {
			if x >= b.LeftSupport {
				shear[i] -= r.Left
			}
			if x >= b.RightSupport {
				shear[i] -= r.Right
			}
		}
	}

	// Integrate the reacted shear into moment.
	h := b.step()
	sum := 0.0
	for i := 1; i < len(xs); i++ {
		sum += (shear[i-1] + shear[i]) / 2 * h
		moment[i] += sum
	}
	return shear, moment, r
}

// reactions resolves the support forces from the load resultants.
// Moments about the left support give the right reaction; the force
// balance gives the left. A cantilever takes the whole resultant and
// the fixed-end moment at x=0.
func (b *Beam) reactions(loads []Load) Reactions {
	var totalForce, aboutLeft, fixed float64
	for _, l := range loads {
		f, c, m := l.resultant()
		totalForce += f
		aboutLeft += f*(c-b.LeftSupport) + m
		fixed += f*c + m
	}

	if b.Cantilever {
		return Reactions{Left: totalForce, FixedMoment: fixed}
	}
	right := aboutLeft / (b.RightSupport - b.LeftSupport)
	return Reactions{Left: totalForce - right, Right: right}
}

func extremes(vals []float64) (max, min float64) {
	max, min = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max, min
}
