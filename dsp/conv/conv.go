package conv

import (
	"errors"
	"fmt"
)

// Errors returned by convolution functions.
var (
	ErrLengthMismatch  = errors.New("conv: input length mismatch")
	ErrInvalidStrategy = errors.New("conv: invalid strategy")
)

// LinConv performs time-domain linear convolution of a and b.
// Both inputs must have the same length n; the result has length 2n-1.
// If either input is empty the result is empty and err is nil.
//
// The overlap region between a and b grows from one sample to n samples
// and shrinks back to one, so this is an O(n^2) algorithm.
func LinConv(a, b []float64) ([]float64, error) {
	if err := validate(a, b); err != nil {
		return nil, err
	}
	if len(a) == 0 || len(b) == 0 {
		return []float64{}, nil
	}

	result := make([]float64, outputLen(len(a)))
	linConvTo(result, a, b)
	return result, nil
}

// linConvTo writes the convolution of equal-length a and b to dst.
// dst must have length 2*len(a)-1.
func linConvTo(dst, a, b []float64) {
	n := len(a)

	// Overlap between a (ascending) and b (descending)
	start, stop := 0, 0

	for i := range dst {
		var sum float64
		for ai, bi := start, stop; ai <= stop && bi >= start; ai, bi = ai+1, bi-1 {
			sum += a[ai] * b[bi]
		}

		if i < n-1 {
			stop++
		} else {
			start++
		}

		dst[i] = sum
	}
}

// validate checks the equal-length precondition.
func validate(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}

// outputLen returns the full linear convolution length for n-sample inputs.
func outputLen(n int) int {
	return 2*n - 1
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
