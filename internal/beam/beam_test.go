package beam

import (
	"testing"

	"github.com/nateranda/beampy/internal/asce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	b, err := New(12, 2.9e7)
	require.NoError(t, err)

	assert.Equal(t, 12.0, b.Length)
	assert.Equal(t, 0.0, b.LeftSupport)
	assert.Equal(t, 12.0, b.RightSupport)
	assert.False(t, b.Cantilever)
	assert.Equal(t, asce.LRFD, b.Method)
	assert.Equal(t, DefaultSections, b.Sections)
	assert.Equal(t, DefaultRotStep, b.RotStep)
	assert.Equal(t, SolverDirect, b.Solver)
}

func TestNewCantileverForcesSupports(t *testing.T) {
	// Whatever supports a cantilever is given, it is fixed at x=0 and
	// free at x=length.
	b, err := NewBeam(8, 3, 5, true, 1e6, asce.LRFD, 100, 1e-4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.LeftSupport)
	assert.Equal(t, 8.0, b.RightSupport)
}

func TestNewBeamValidation(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (*Beam, error)
	}{
		{"zero length", func() (*Beam, error) { return New(0, 1e6) }},
		{"negative length", func() (*Beam, error) { return New(-3, 1e6) }},
		{"zero EI", func() (*Beam, error) { return New(10, 0) }},
		{"negative EI", func() (*Beam, error) { return New(10, -1) }},
		{"too few sections", func() (*Beam, error) {
			return NewBeam(10, 0, 10, false, 1e6, asce.LRFD, 1, 1e-4)
		}},
		{"zero rotation step", func() (*Beam, error) {
			return NewBeam(10, 0, 10, false, 1e6, asce.LRFD, 100, 0)
		}},
		{"unknown method", func() (*Beam, error) {
			return NewBeam(10, 0, 10, false, 1e6, asce.Method("LSD"), 100, 1e-4)
		}},
		{"left support negative", func() (*Beam, error) {
			return NewBeam(10, -1, 10, false, 1e6, asce.LRFD, 100, 1e-4)
		}},
		{"right support past end", func() (*Beam, error) {
			return NewBeam(10, 0, 11, false, 1e6, asce.LRFD, 100, 1e-4)
		}},
		{"supports reversed", func() (*Beam, error) {
			return NewBeam(10, 7, 3, false, 1e6, asce.LRFD, 100, 1e-4)
		}},
		{"supports coincide", func() (*Beam, error) {
			return NewBeam(10, 5, 5, false, 1e6, asce.LRFD, 100, 1e-4)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.fn()
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestAddLoadBounds(t *testing.T) {
	b, err := New(10, 1e6)
	require.NoError(t, err)

	tests := []struct {
		name string
		load Load
	}{
		{"point before start", NewPointLoad(-0.5, -100, asce.None)},
		{"point past end", NewPointLoad(10.5, -100, asce.None)},
		{"moment past end", NewPointMoment(11, 50, asce.None)},
		{"dist before start", NewDistLoad(-1, 4, -10, -10, asce.None)},
		{"dist past end", NewDistLoad(6, 12, -10, -10, asce.None)},
		{"dist reversed", NewDistLoad(7, 3, -10, -10, asce.None)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.AddLoad(tt.load)
			assert.ErrorIs(t, err, ErrLoadOutOfBounds)
			assert.Empty(t, b.Loads(), "rejected load must not change the beam")
		})
	}

	require.NoError(t, b.AddLoad(NewPointLoad(0, -100, asce.None)))
	require.NoError(t, b.AddLoad(NewPointLoad(10, -100, asce.None)))
	require.NoError(t, b.AddLoad(NewDistLoad(0, 10, -10, -10, asce.None)))
	assert.Len(t, b.Loads(), 3)
}

func TestAddLoadNil(t *testing.T) {
	b, err := New(10, 1e6)
	require.NoError(t, err)
	assert.ErrorIs(t, b.AddLoad(nil), ErrInvalidParameter)
}

func TestGrid(t *testing.T) {
	b, err := NewBeam(7, 0, 7, false, 1e6, asce.LRFD, 14, 1e-4)
	require.NoError(t, err)

	xs := b.Grid()
	require.Len(t, xs, 15)
	assert.Equal(t, 0.0, xs[0], "left endpoint must be exact")
	assert.Equal(t, 7.0, xs[14], "right endpoint must be exact")

	h := 7.0 / 14.0
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, h, xs[i]-xs[i-1], 1e-12)
	}

	// A length with no exact binary form must still sample the beam end.
	b, err = NewBeam(3.7, 0, 3.7, false, 1e6, asce.LRFD, 7, 1e-4)
	require.NoError(t, err)
	xs = b.Grid()
	assert.Equal(t, 3.7, xs[len(xs)-1])
}

func TestNearestIndex(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}

	assert.Equal(t, 0, nearestIndex(xs, -2))
	assert.Equal(t, 0, nearestIndex(xs, 0.4))
	assert.Equal(t, 2, nearestIndex(xs, 2.1))
	assert.Equal(t, 4, nearestIndex(xs, 9))
	// Equidistant between samples: the first wins.
	assert.Equal(t, 1, nearestIndex(xs, 1.5))
}

func TestZeroValueBeamFails(t *testing.T) {
	var b Beam
	_, err := b.CalculateShearMoment()
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = b.CalculateDeflection()
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = b.CalculateEnvelope()
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
