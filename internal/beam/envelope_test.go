package beam

import (
	"testing"

	"github.com/nateranda/beampy/internal/asce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gravityBeam carries a dead, a live and an earthquake point load at
// midspan, so the factored midspan force per LRFD combination is
// 140, 200, 170, 170, 200, 90, 120.
func gravityBeam(t *testing.T) *Beam {
	t.Helper()
	b, err := NewBeam(10, 0, 10, false, 1e6, asce.LRFD, 200, DefaultRotStep)
	require.NoError(t, err)
	require.NoError(t, b.AddLoad(NewPointLoad(5, -100, asce.Dead)))
	require.NoError(t, b.AddLoad(NewPointLoad(5, -50, asce.Live)))
	require.NoError(t, b.AddLoad(NewPointLoad(5, -30, asce.Earthquake)))
	return b
}

func TestEnvelopeLRFD(t *testing.T) {
	env, err := gravityBeam(t).CalculateEnvelope()
	require.NoError(t, err)

	assert.Equal(t, asce.LRFD, env.Method)
	require.Len(t, env.Cases, len(asce.StrengthCombinations))

	// Each case is a midspan point load of half the factored force on
	// either side, peaking at P(L/4 - h/2) with h the grid step.
	factored := []float64{140, 200, 170, 170, 200, 90, 120}
	for i, c := range env.Cases {
		assert.Equal(t, asce.StrengthCombinations[i].ID, c.Combination.ID)
		assert.InDelta(t, factored[i]/2, c.MaxShear, 1e-9, "case %d", i)
		assert.InDelta(t, -factored[i]/2, c.MinShear, 1e-9, "case %d", i)
		assert.InDelta(t, factored[i]*2.475, c.MaxMoment, 1e-9, "case %d", i)
	}

	// 1.2D + 1.6L and 1.2D + 1.0E + 1.0L factor to the same 200; the
	// earlier table entry keeps the tie.
	assert.InDelta(t, 100, env.MaxShear.Value, 1e-9)
	assert.Equal(t, 1, env.MaxShear.Index)
	assert.Equal(t, "2", env.MaxShear.Combination.ID)

	assert.InDelta(t, -100, env.MinShear.Value, 1e-9)
	assert.Equal(t, 1, env.MinShear.Index)

	assert.InDelta(t, 495, env.MaxMoment.Value, 1e-9)
	assert.Equal(t, 1, env.MaxMoment.Index)

	// The trapezoid tail past the right support dips to -P*h/4.
	assert.InDelta(t, -2.5, env.MinMoment.Value, 1e-9)
	assert.Equal(t, 1, env.MinMoment.Index)
}

func TestEnvelopeDeadOnlyGovernedByFirstCombination(t *testing.T) {
	b, err := NewBeam(10, 0, 10, false, 1e6, asce.LRFD, 200, DefaultRotStep)
	require.NoError(t, err)
	require.NoError(t, b.AddLoad(NewPointLoad(5, -100, asce.Dead)))

	env, err := b.CalculateEnvelope()
	require.NoError(t, err)

	// 1.4D beats every other dead factor, and the governing index
	// stays at the zero value.
	assert.InDelta(t, 70, env.MaxShear.Value, 1e-9)
	assert.Equal(t, 0, env.MaxShear.Index)
	assert.Equal(t, "1.4D", env.MaxShear.Combination.Description)
	assert.InDelta(t, 346.5, env.MaxMoment.Value, 1e-9)
	assert.Equal(t, 0, env.MaxMoment.Index)
}

func TestEnvelopeWindOnly(t *testing.T) {
	b, err := NewBeam(10, 0, 10, false, 1e6, asce.LRFD, 200, DefaultRotStep)
	require.NoError(t, err)
	require.NoError(t, b.AddLoad(NewPointLoad(5, -100, asce.Wind)))

	env, err := b.CalculateEnvelope()
	require.NoError(t, err)

	// Combinations without a wind term factor every load to zero.
	for _, i := range []int{0, 1, 4, 6} {
		assert.Zero(t, env.Cases[i].MaxShear, "case %d", i)
		assert.Zero(t, env.Cases[i].MaxMoment, "case %d", i)
	}

	// 1.0W appears in combinations 4 and 6; the earlier one governs.
	assert.InDelta(t, 50, env.MaxShear.Value, 1e-9)
	assert.Equal(t, 3, env.MaxShear.Index)
	assert.Equal(t, "4", env.MaxShear.Combination.ID)
	assert.InDelta(t, 247.5, env.MaxMoment.Value, 1e-9)
	assert.Equal(t, 3, env.MaxMoment.Index)
}

func TestEnvelopeASD(t *testing.T) {
	b, err := NewBeam(10, 0, 10, false, 1e6, asce.ASD, 200, DefaultRotStep)
	require.NoError(t, err)
	require.NoError(t, b.AddLoad(NewPointLoad(5, -100, asce.Dead)))
	require.NoError(t, b.AddLoad(NewPointLoad(5, -50, asce.Live)))

	env, err := b.CalculateEnvelope()
	require.NoError(t, err)

	assert.Equal(t, asce.ASD, env.Method)
	require.Len(t, env.Cases, len(asce.AllowableCombinations))

	// D + L carries the full live load and governs.
	assert.InDelta(t, 75, env.MaxShear.Value, 1e-9)
	assert.Equal(t, 1, env.MaxShear.Index)
	assert.Equal(t, "D + L", env.MaxShear.Combination.Description)
	assert.InDelta(t, 150*2.475, env.MaxMoment.Value, 1e-9)
}

func TestEnvelopeOverSimplified(t *testing.T) {
	b, err := NewBeam(10, 0, 10, false, 1e6, asce.LRFD, 200, DefaultRotStep)
	require.NoError(t, err)
	require.NoError(t, b.AddLoad(NewPointLoad(5, -100, asce.Dead)))
	require.NoError(t, b.AddLoad(NewPointLoad(5, -50, asce.Live)))

	env, err := b.CalculateEnvelopeOver(asce.SimplifiedCombinations)
	require.NoError(t, err)

	require.Len(t, env.Cases, 2)
	// 1.4D = 140 against 1.2D + 1.6L = 200.
	assert.InDelta(t, 100, env.MaxShear.Value, 1e-9)
	assert.Equal(t, 1, env.MaxShear.Index)
	assert.Equal(t, "1.2D + 1.6L", env.MaxShear.Combination.Description)
	assert.InDelta(t, 495, env.MaxMoment.Value, 1e-9)
}

func TestEnvelopeOverEmptyTable(t *testing.T) {
	env, err := gravityBeam(t).CalculateEnvelopeOver(nil)
	assert.Nil(t, env)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestEnvelopeRequiresCategorizedLoad(t *testing.T) {
	b := simplySupported(t, 10, 1e6, 100)
	require.NoError(t, b.AddLoad(NewPointLoad(5, -100, asce.None)))

	env, err := b.CalculateEnvelope()
	assert.Nil(t, env)
	assert.ErrorIs(t, err, ErrPreconditionNotMet)
}

func TestEnvelopeIgnoresUntaggedLoads(t *testing.T) {
	with := gravityBeam(t)
	require.NoError(t, with.AddLoad(NewPointLoad(3, -999, asce.None)))
	without := gravityBeam(t)

	a, err := with.CalculateEnvelope()
	require.NoError(t, err)
	b, err := without.CalculateEnvelope()
	require.NoError(t, err)

	require.Equal(t, b, a)
}

func TestEnvelopeDeterminism(t *testing.T) {
	b := gravityBeam(t)

	first, err := b.CalculateEnvelope()
	require.NoError(t, err)
	second, err := b.CalculateEnvelope()
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestCalculateCombinationMatchesEnvelopeCases(t *testing.T) {
	b := gravityBeam(t)
	env, err := b.CalculateEnvelope()
	require.NoError(t, err)

	// Serial per-combination runs land on the same extremes as the
	// concurrent envelope cases.
	for i, combo := range asce.Combinations(b.Method) {
		res, err := b.CalculateCombination(combo)
		require.NoError(t, err)
		assert.Equal(t, env.Cases[i].MaxShear, res.MaxShear, "case %d", i)
		assert.Equal(t, env.Cases[i].MinShear, res.MinShear, "case %d", i)
		assert.Equal(t, env.Cases[i].MaxMoment, res.MaxMoment, "case %d", i)
		assert.Equal(t, env.Cases[i].MinMoment, res.MinMoment, "case %d", i)
	}
}

func TestCalculateCombinationMatchesPrescaledLoads(t *testing.T) {
	tagged, err := NewBeam(12, 0, 12, false, 1e6, asce.LRFD, 300, DefaultRotStep)
	require.NoError(t, err)
	require.NoError(t, tagged.AddLoad(NewPointLoad(4, -100, asce.Dead)))
	require.NoError(t, tagged.AddLoad(NewDistLoad(2, 10, -20, -60, asce.Live)))

	scaled, err := NewBeam(12, 0, 12, false, 1e6, asce.LRFD, 300, DefaultRotStep)
	require.NoError(t, err)
	require.NoError(t, scaled.AddLoad(NewPointLoad(4, -120, asce.None)))
	require.NoError(t, scaled.AddLoad(NewDistLoad(2, 10, -32, -96, asce.None)))

	combo := asce.StrengthCombinations[1] // 1.2D + 1.6L
	got, err := tagged.CalculateCombination(combo)
	require.NoError(t, err)
	want, err := scaled.CalculateShearMoment()
	require.NoError(t, err)

	assert.InDeltaSlice(t, want.Shear, got.Shear, 1e-9)
	assert.InDeltaSlice(t, want.Moment, got.Moment, 1e-9)
	assert.InDelta(t, want.Reactions.Left, got.Reactions.Left, 1e-9)
	assert.InDelta(t, want.Reactions.Right, got.Reactions.Right, 1e-9)
}
