// Package lattice_test exercises fractal lattice construction via the
// public API: analytic spin counts, coordinate ordering, duplicate
// retention, and parameter rejection.
package lattice_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lankagege/HausdorffIsingModel/lattice"
)

// TestBuild_SpinCountMatchesPrediction checks that the built spin
// count equals the closed form 2^p · s^(p·d) for a spread of valid
// (dimension, slices, depth) triples.
func TestBuild_SpinCountMatchesPrediction(t *testing.T) {
	cases := []struct {
		name   string
		params lattice.Params
		want   int
	}{
		{
			name:   "1D_two_slices_depth1",
			params: lattice.Params{HausdorffDim: 1, Slices: 2, Depth: 1, Method: lattice.MethodScaling},
			want:   4,
		},
		{
			name:   "1D_two_slices_depth3",
			params: lattice.Params{HausdorffDim: 1, Slices: 2, Depth: 3, Method: lattice.MethodScaling},
			want:   16,
		},
		{
			name:   "2D_two_slices_depth1",
			params: lattice.Params{HausdorffDim: 2, Slices: 2, Depth: 1, Method: lattice.MethodScaling},
			want:   16,
		},
		{
			name:   "fractal_1.58D_depth2",
			params: lattice.Params{HausdorffDim: 1.58, Slices: 2, Depth: 2, Method: lattice.MethodScaling},
			want:   64,
		},
		{
			name:   "2D_three_slices_depth1",
			params: lattice.Params{HausdorffDim: 2, Slices: 3, Depth: 1, Method: lattice.MethodScaling},
			want:   36,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			predicted, err := lattice.PredictSpinCount(tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.want, predicted, "analytic count")

			lat, err := lattice.Build(tc.params)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lat.NumSpins(), "built count")

			axes := int(math.Ceil(tc.params.HausdorffDim))
			assert.Len(t, lat.Dims, axes)
			for _, s := range lat.Spins {
				assert.Len(t, s.Coords, axes)
				assert.True(t, s.Active, "all built spins active")
				assert.Equal(t, 1, s.S, "all built spins up")
			}
		})
	}
}

// TestBuild_SortedLexicographic checks the non-decreasing coordinate
// order required by stride-based neighbor addressing.
func TestBuild_SortedLexicographic(t *testing.T) {
	lat, err := lattice.Build(lattice.Params{
		HausdorffDim: 2, Slices: 2, Depth: 2, Method: lattice.MethodScaling,
	})
	require.NoError(t, err)

	for i := 1; i < len(lat.Spins); i++ {
		if slices.Compare(lat.Spins[i-1].Coords, lat.Spins[i].Coords) > 0 {
			t.Fatalf("spins %d,%d out of order: %v > %v",
				i-1, i, lat.Spins[i-1].Coords, lat.Spins[i].Coords)
		}
	}
}

// TestBuild_DuplicateCornersRetained pins the reference geometry of
// the depth-1 binary interval: two copies [0,1/2] and [1/2,1] whose
// shared corner yields two coincident spins.
func TestBuild_DuplicateCornersRetained(t *testing.T) {
	lat, err := lattice.Build(lattice.Params{
		HausdorffDim: 1, Slices: 2, Depth: 1, Method: lattice.MethodScaling,
	})
	require.NoError(t, err)
	require.Equal(t, 4, lat.NumSpins())

	want := []float64{0, 0.5, 0.5, 1}
	for i, s := range lat.Spins {
		assert.InDelta(t, want[i], s.Coords[0], 1e-12, "spin %d", i)
	}
	assert.Equal(t, []int{4}, lat.Dims)
	assert.Equal(t, 2, lat.Slices)
	assert.InDelta(t, 0.5, lat.Scale, 1e-12)
}

// TestBuild_SplittingDerivesSlices checks the inverse closure of the
// self-similarity relation: a fixed shrink ratio determines the copy
// count.
func TestBuild_SplittingDerivesSlices(t *testing.T) {
	lat, err := lattice.Build(lattice.Params{
		HausdorffDim: 1, Scale: 0.5, Depth: 1, Method: lattice.MethodSplitting,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, lat.Slices)
	assert.InDelta(t, 0.5, lat.Scale, 1e-12)
	assert.Equal(t, 4, lat.NumSpins())
}

// TestBuild_InvalidScale checks rejection of overlapping copies:
// scale 0.35 rounds to 3 slices, and 3 copies of width 0.35 cannot
// tile the unit interval.
func TestBuild_InvalidScale(t *testing.T) {
	_, err := lattice.Build(lattice.Params{
		HausdorffDim: 1, Scale: 0.35, Depth: 1, Method: lattice.MethodSplitting,
	})
	assert.ErrorIs(t, err, lattice.ErrInvalidScale)

	_, err = lattice.PredictSpinCount(lattice.Params{
		HausdorffDim: 1, Scale: 0.35, Depth: 1, Method: lattice.MethodSplitting,
	})
	assert.ErrorIs(t, err, lattice.ErrInvalidScale)
}

// TestParams_Validate walks each out-of-domain field to its sentinel.
func TestParams_Validate(t *testing.T) {
	valid := lattice.Params{HausdorffDim: 1, Slices: 2, Depth: 1, Method: lattice.MethodScaling}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mut    func(p lattice.Params) lattice.Params
		sentry error
	}{
		{"zero_dimension", func(p lattice.Params) lattice.Params { p.HausdorffDim = 0; return p }, lattice.ErrDimension},
		{"negative_dimension", func(p lattice.Params) lattice.Params { p.HausdorffDim = -1; return p }, lattice.ErrDimension},
		{"zero_depth", func(p lattice.Params) lattice.Params { p.Depth = 0; return p }, lattice.ErrDepth},
		{"one_slice", func(p lattice.Params) lattice.Params { p.Slices = 1; return p }, lattice.ErrSlices},
		{"bad_method", func(p lattice.Params) lattice.Params { p.Method = lattice.Method(99); return p }, lattice.ErrMethod},
		{
			"scale_too_big",
			func(p lattice.Params) lattice.Params { p.Method = lattice.MethodSplitting; p.Scale = 1.2; return p },
			lattice.ErrScale,
		},
		{
			"scale_zero",
			func(p lattice.Params) lattice.Params { p.Method = lattice.MethodSplitting; p.Scale = 0; return p },
			lattice.ErrScale,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.mut(valid).Validate(), tc.sentry)
		})
	}
}

// TestMethod_String pins the configuration-file spellings.
func TestMethod_String(t *testing.T) {
	assert.Equal(t, "SCALING", lattice.MethodScaling.String())
	assert.Equal(t, "SPLITTING", lattice.MethodSplitting.String())
	assert.Equal(t, "UNKNOWN", lattice.Method(42).String())
}
