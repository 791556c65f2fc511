package beam

import (
	"math"
	"testing"

	"github.com/nateranda/beampy/internal/asce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simplySupported(t *testing.T, length, ei float64, sections int) *Beam {
	t.Helper()
	b, err := NewBeam(length, 0, length, false, ei, asce.LRFD, sections, DefaultRotStep)
	require.NoError(t, err)
	return b
}

func TestMidspanPointLoad(t *testing.T) {
	b := simplySupported(t, 1, 2.9e7, 1000)
	require.NoError(t, b.AddLoad(NewPointLoad(0.5, -1, asce.None)))

	res, err := b.CalculateShearMoment()
	require.NoError(t, err)

	h := 1.0 / 1000

	// Reactions split the load evenly, in the applied-load convention.
	assert.InDelta(t, -0.5, res.Reactions.Left, 1e-12)
	assert.InDelta(t, -0.5, res.Reactions.Right, 1e-12)

	assert.InDelta(t, 0.5, res.MaxShear, 1e-12)
	assert.InDelta(t, -0.5, res.MinShear, 1e-12)

	// Peak sagging moment PL/4; the trapezoidal pass smears the jump by
	// a step-width term.
	assert.InDelta(t, 0.25, res.MaxMoment, h)
	assert.InDelta(t, 0.0, res.MinMoment, h)

	// The jump is realized at the coincident sample.
	mid := 500
	assert.InDelta(t, 0.5, res.Shear[mid-1], 1e-12)
	assert.InDelta(t, -0.5, res.Shear[mid], 1e-12)
}

func TestShearStepProperty(t *testing.T) {
	// Two concentrated loads on exact grid samples: shear must be
	// constant between loads and jump by exactly the load magnitude at
	// each.
	b := simplySupported(t, 10, 1e6, 100)
	require.NoError(t, b.AddLoad(NewPointLoad(2, -100, asce.None)))
	require.NoError(t, b.AddLoad(NewPointLoad(7, -300, asce.None)))

	res, err := b.CalculateShearMoment()
	require.NoError(t, err)

	for i := 1; i < 100; i++ {
		jump := res.Shear[i] - res.Shear[i-1]
		switch i {
		case 20:
			assert.InDelta(t, -100, jump, 1e-9, "jump at first load")
		case 70:
			assert.InDelta(t, -300, jump, 1e-9, "jump at second load")
		default:
			assert.Zero(t, jump, "shear must be constant at sample %d", i)
		}
	}

	// Hand-resolved reactions: Vr = (-100*2 - 300*7)/10, Vl the rest.
	assert.InDelta(t, -170, res.Reactions.Left, 1e-9)
	assert.InDelta(t, -230, res.Reactions.Right, 1e-9)
}

func TestEquilibrium(t *testing.T) {
	b := simplySupported(t, 10, 1e6, 1000)
	require.NoError(t, b.AddLoad(NewPointLoad(2, -100, asce.None)))
	require.NoError(t, b.AddLoad(NewPointLoad(7, -300, asce.None)))
	require.NoError(t, b.AddLoad(NewDistLoad(3, 8, -50, -50, asce.None)))

	res, err := b.CalculateShearMoment()
	require.NoError(t, err)

	n := len(res.Shear) - 1
	assert.InDelta(t, 0, res.Shear[n], 1e-9, "net shear past the right support")
	assert.Zero(t, res.Moment[0], "moment at the left end")

	// The right-reaction jump lands inside the last slice, so the end
	// moment carries a step-width error bounded by |shear|*h/2.
	h := 10.0 / 1000
	maxAbsShear := math.Max(math.Abs(res.MaxShear), math.Abs(res.MinShear))
	assert.InDelta(t, 0, res.Moment[n], maxAbsShear*h)
}

func TestSuperposition(t *testing.T) {
	loads := []Load{
		NewPointLoad(2, -150, asce.None),
		NewDistLoad(1, 9, -20, -60, asce.None),
		NewPointMoment(6, 400, asce.None),
	}

	combined := simplySupported(t, 10, 1e6, 500)
	for _, l := range loads {
		require.NoError(t, combined.AddLoad(l))
	}
	resAll, err := combined.CalculateShearMoment()
	require.NoError(t, err)

	sumShear := make([]float64, 501)
	sumMoment := make([]float64, 501)
	for _, l := range loads {
		single := simplySupported(t, 10, 1e6, 500)
		require.NoError(t, single.AddLoad(l))
		res, err := single.CalculateShearMoment()
		require.NoError(t, err)
		for i := range sumShear {
			sumShear[i] += res.Shear[i]
			sumMoment[i] += res.Moment[i]
		}
	}

	assert.InDeltaSlice(t, sumShear, resAll.Shear, 1e-9)
	assert.InDeltaSlice(t, sumMoment, resAll.Moment, 1e-9)
}

func TestIdempotence(t *testing.T) {
	b := simplySupported(t, 10, 1e6, 200)
	require.NoError(t, b.AddLoad(NewPointLoad(3, -100, asce.None)))
	require.NoError(t, b.AddLoad(NewDistLoad(0, 10, -25, -25, asce.None)))

	first, err := b.CalculateShearMoment()
	require.NoError(t, err)
	second, err := b.CalculateShearMoment()
	require.NoError(t, err)

	// Bit-identical, not merely close: nothing about the beam changed.
	require.Equal(t, first.Shear, second.Shear)
	require.Equal(t, first.Moment, second.Moment)
	require.Equal(t, first.Reactions, second.Reactions)
}

func TestZeroLoads(t *testing.T) {
	b := simplySupported(t, 10, 1e6, 100)

	res, err := b.CalculateShearMoment()
	require.NoError(t, err)

	assert.Equal(t, make([]float64, 101), res.Shear)
	assert.Equal(t, make([]float64, 101), res.Moment)
	assert.Equal(t, Reactions{}, res.Reactions)
	assert.Zero(t, res.MaxShear)
	assert.Zero(t, res.MinShear)
}

func TestCantileverTipLoad(t *testing.T) {
	b, err := NewCantilever(10, 1e6)
	require.NoError(t, err)
	require.NoError(t, b.AddLoad(NewPointLoad(10, -1000, asce.None)))

	res, err := b.CalculateShearMoment()
	require.NoError(t, err)

	// The fixed end takes the whole resultant and the full moment arm.
	assert.InDelta(t, -1000, res.Reactions.Left, 1e-9)
	assert.Zero(t, res.Reactions.Right)
	assert.InDelta(t, -10000, res.Reactions.FixedMoment, 1e-9)

	// Hogging moment at the wall, tapering toward the tip.
	assert.InDelta(t, -10000, res.Moment[0], 1e-9)
	h := 10.0 / float64(DefaultSections)
	assert.InDelta(t, 0, res.Moment[len(res.Moment)-1], 1000*h)

	// Shear is the constant reaction until the tip sample.
	assert.InDelta(t, 1000, res.Shear[0], 1e-9)
	assert.InDelta(t, 1000, res.Shear[500], 1e-9)
	assert.InDelta(t, 0, res.Shear[len(res.Shear)-1], 1e-9)
}

func TestPointMomentReactionCouple(t *testing.T) {
	b := simplySupported(t, 10, 1e6, 100)
	require.NoError(t, b.AddLoad(NewPointMoment(4, 500, asce.None)))

	res, err := b.CalculateShearMoment()
	require.NoError(t, err)

	// A concentrated moment is balanced by an equal and opposite
	// reaction couple.
	assert.InDelta(t, -50, res.Reactions.Left, 1e-9)
	assert.InDelta(t, 50, res.Reactions.Right, 1e-9)

	// Moment steps by -m at the load and returns to zero at the ends.
	assert.Zero(t, res.Moment[0])
	i := 40
	assert.InDelta(t, -500, res.Moment[i]-res.Moment[i-1], 50*0.2)
}

func TestOverhangingSupports(t *testing.T) {
	// Supports pulled in from the ends; the overhangs carry no load, so
	// shear vanishes outside the span.
	b, err := NewBeam(10, 1, 9, false, 1e6, asce.LRFD, 1000, DefaultRotStep)
	require.NoError(t, err)
	require.NoError(t, b.AddLoad(NewPointLoad(5, -800, asce.None)))

	res, err := b.CalculateShearMoment()
	require.NoError(t, err)

	assert.InDelta(t, -400, res.Reactions.Left, 1e-9)
	assert.InDelta(t, -400, res.Reactions.Right, 1e-9)

	// Before the left support nothing has been applied yet.
	assert.Zero(t, res.Shear[50])
	// Between supports the usual halves.
	assert.InDelta(t, 400, res.Shear[300], 1e-9)
	assert.InDelta(t, -400, res.Shear[700], 1e-9)
	// Past the right support everything cancels.
	assert.InDelta(t, 0, res.Shear[950], 1e-9)
}
