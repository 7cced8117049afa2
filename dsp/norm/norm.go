package norm

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned when normalizing an empty sequence.
var ErrEmptyInput = errors.New("norm: empty input")

// RMS returns the root-mean-square of x.
// Returns 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	var sumSq float64
	for _, v := range sq {
		sumSq += v
	}

	return math.Sqrt(sumSq / float64(len(x)))
}

// RMSNorm returns a new slice holding x divided by RMS(x).
// Empty input returns ErrEmptyInput. x is not modified.
func RMSNorm(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	rms := RMS(x)

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / rms
	}
	return out, nil
}
