package conv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-seq/internal/testutil"
)

func TestLinConv(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "single sample",
			a:        []float64{1},
			b:        []float64{2},
			expected: []float64{2},
		},
		{
			name:     "three samples",
			a:        []float64{1, 2, 3},
			b:        []float64{4, 5, 6},
			expected: []float64{4, 13, 28, 27, 18},
		},
		{
			name:     "four samples",
			a:        []float64{1, 2, 3, 4},
			b:        []float64{5, 6, 7, 8},
			expected: []float64{5, 16, 34, 60, 61, 52, 32},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "impulse",
			a:        []float64{1, 0, 0, 0},
			b:        []float64{3, -1, 2, 5},
			expected: []float64{3, -1, 2, 5, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := LinConv(tt.a, tt.b)
			require.NoError(t, err)
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestLinConvEmpty(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
	}{
		{"both empty", []float64{}, []float64{}},
		{"both nil", nil, nil},
		{"empty b", []float64{1, 2, 3}, []float64{}},
		{"empty a", []float64{}, []float64{4, 5, 6}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := LinConv(tc.a, tc.b)
			require.NoError(t, err)
			assert.NotNil(t, result)
			assert.Empty(t, result)
		})
	}
}

func TestLinConvLengthMismatch(t *testing.T) {
	result, err := LinConv([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "3 vs 2")
}

func TestLinConvCommutative(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16, 33} {
		a := testutil.DeterministicNoise(int64(n), 1, n)
		b := testutil.DeterministicNoise(int64(n)+100, 1, n)

		ab, err := LinConv(a, b)
		require.NoError(t, err)
		ba, err := LinConv(b, a)
		require.NoError(t, err)

		require.Len(t, ab, 2*n-1)
		testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
	}
}

func TestLinConvMatchesReference(t *testing.T) {
	for _, n := range []int{1, 5, 12, 31} {
		a := testutil.DeterministicNoise(int64(3*n), 2, n)
		b := testutil.DeterministicNoise(int64(5*n), 2, n)

		got, err := LinConv(a, b)
		require.NoError(t, err)
		testutil.RequireSliceNearlyEqual(t, got, referenceConv(a, b), 1e-12)
	}
}

func TestLinConvDoesNotModifyInputs(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	_, err := LinConv(a, b)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, a)
	assert.Equal(t, []float64{4, 5, 6}, b)
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 16: 16, 17: 32, 1023: 1024}
	for in, want := range cases {
		assert.Equal(t, want, nextPowerOf2(in), "nextPowerOf2(%d)", in)
	}
}

// referenceConv is the textbook scatter form of linear convolution.
func referenceConv(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}
	return out
}
