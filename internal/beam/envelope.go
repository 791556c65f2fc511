package beam

import (
	"fmt"
	"sync"

	"github.com/nateranda/beampy/internal/asce"
)

// CaseResult is one factored combination's shear/moment extremes.
type CaseResult struct {
	Combination asce.Combination
	MaxShear    float64
	MinShear    float64
	MaxMoment   float64
	MinMoment   float64
}

// Extreme pairs a governing value with the combination that produced
// it and that combination's table index.
type Extreme struct {
	Value       float64
	Combination asce.Combination
	Index       int
}

// Envelope is the governing shear/moment envelope across a method's
// combination table, plus the per-combination cases behind it.
type Envelope struct {
	Method asce.Method
	Cases  []CaseResult

	MaxShear  Extreme
	MinShear  Extreme
	MaxMoment Extreme
	MinMoment Extreme
}

// CalculateEnvelope evaluates every combination in the beam's method
// table. Each case scales the loads by their category factors and
// reruns the integrator; untagged loads and categories a combination
// does not reference contribute nothing. Cases run concurrently, and
// the reduction walks table order so ties go to the earliest
// combination. At least one load must carry a category.
func (b *Beam) CalculateEnvelope() (*Envelope, error) {
	return b.CalculateEnvelopeOver(asce.Combinations(b.Method))
}

// CalculateEnvelopeOver evaluates the envelope over an explicit
// combination table, for restricted tables like
// asce.SimplifiedCombinations.
func (b *Beam) CalculateEnvelopeOver(combos []asce.Combination) (*Envelope, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if len(combos) == 0 {
		return nil, fmt.Errorf("%w: empty combination table", ErrInvalidParameter)
	}

	categorized := false
	for _, l := range b.loads {
		if l.Category() != asce.None {
			categorized = true
			break
		}
	}
	if !categorized {
		return nil, fmt.Errorf("%w: no load carries a combination category", ErrPreconditionNotMet)
	}

	xs := b.Grid()
	cases := make([]CaseResult, len(combos))

	var wg sync.WaitGroup
	for i, combo := range combos {
		wg.Add(1)
		go func(i int, combo asce.Combination) {
			defer wg.Done()
			shear, moment, _ := b.compute(xs, b.factored(combo))
			c := CaseResult{Combination: combo}
			c.MaxShear, c.MinShear = extremes(shear)
			c.MaxMoment, c.MinMoment = extremes(moment)
			cases[i] = c
		}(i, combo)
	}
	wg.Wait()

	env := &Envelope{Method: b.Method, Cases: cases}
	env.MaxShear = Extreme{Value: cases[0].MaxShear, Combination: cases[0].Combination}
	env.MinShear = Extreme{Value: cases[0].MinShear, Combination: cases[0].Combination}
	env.MaxMoment = Extreme{Value: cases[0].MaxMoment, Combination: cases[0].Combination}
	env.MinMoment = Extreme{Value: cases[0].MinMoment, Combination: cases[0].Combination}
	for i := 1; i < len(cases); i++ {
		c := cases[i]
		if c.MaxShear > env.MaxShear.Value {
			env.MaxShear = Extreme{Value: c.MaxShear, Combination: c.Combination, Index: i}
		}
		if c.MinShear < env.MinShear.Value {
			env.MinShear = Extreme{Value: c.MinShear, Combination: c.Combination, Index: i}
		}
		if c.MaxMoment > env.MaxMoment.Value {
			env.MaxMoment = Extreme{Value: c.MaxMoment, Combination: c.Combination, Index: i}
		}
		if c.MinMoment < env.MinMoment.Value {
			env.MinMoment = Extreme{Value: c.MinMoment, Combination: c.Combination, Index: i}
		}
	}
	return env, nil
}

// CalculateCombination runs the shear/moment calculation with the
// load list factored by a single combination, for inspecting one case
// of the envelope in isolation.
func (b *Beam) CalculateCombination(c asce.Combination) (*ShearMomentResult, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	xs := b.Grid()
	shear, moment, reactions := b.compute(xs, b.factored(c))
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

// factored returns the loads scaled by the combination's category
// factors, dropping those that factor to zero.
func (b *Beam) factored(c asce.Combination) []Load {
	out := make([]Load, 0, len(b.loads))
	for _, l := range b.loads {
		f := c.Factor(l.Category())
		if f == 0 {
			continue
		}
		out = append(out, l.scaled(f))
	}
	return out
}
