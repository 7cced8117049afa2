package smooth

import (
	"errors"
	"fmt"
)

// Errors returned by MeanSmooth.
var (
	ErrInvalidWindow = errors.New("smooth: window must be odd and >= 1")
	ErrShortInput    = errors.New("smooth: input shorter than window")
)

// MeanSmooth returns the edge-truncated moving average of x over an odd
// window of win samples. The result has the same length as x.
//
// Interior outputs average exactly win samples. Outputs within (win-1)/2 of
// either end average only the samples that exist.
//
// Validation runs in order: win must be odd and positive
// (ErrInvalidWindow), then len(x) must be at least win (ErrShortInput).
// A window of 1 returns a copy of x.
func MeanSmooth(x []float64, win int) ([]float64, error) {
	if win < 1 || win%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, win)
	}

	n := len(x)
	if n < win {
		return nil, fmt.Errorf("%w: length %d, window %d", ErrShortInput, n, win)
	}

	out := make([]float64, n)
	if win == 1 {
		copy(out, x)
		return out, nil
	}

	// Window extent, inclusive
	start, stop := 0, Radius(win)

	var sum float64
	for i := start; i <= stop; i++ {
		sum += x[i]
	}

	for i := range out {
		out[i] = sum / float64(stop-start+1)

		if stop < n-1 {
			stop++
			sum += x[stop]
			if stop-start+1 > win {
				sum -= x[start]
				start++
			}
		} else {
			sum -= x[start]
			start++
		}
	}

	return out, nil
}

// Radius returns the half width r of a window of win = 2r+1 samples.
func Radius(win int) int {
	return (win - 1) / 2
}

// WindowForRadius returns the window width 2r+1 for half width r.
func WindowForRadius(r int) int {
	return 2*r + 1
}
