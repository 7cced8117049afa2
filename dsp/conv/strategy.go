package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Strategy computes the linear convolution of two equal-length sequences.
// Implementations must not modify their inputs.
type Strategy interface {
	Convolve(a, b []float64) ([]float64, error)
	Name() string
}

// TimeDomain convolves by sliding overlap (see [LinConv]).
type TimeDomain struct{}

// Convolve implements Strategy.
func (TimeDomain) Convolve(a, b []float64) ([]float64, error) {
	return LinConv(a, b)
}

// Name implements Strategy.
func (TimeDomain) Name() string { return "time" }

// FrequencyDomain convolves by multiplication in the frequency domain.
//
// The algorithm:
// 1. Zero-pad both inputs to the next power of 2 >= 2n-1
// 2. Forward FFT of each
// 3. Multiply pointwise
// 4. Inverse FFT and keep the first 2n-1 real samples
//
// Results match TimeDomain up to floating-point rounding.
type FrequencyDomain struct{}

// minFFTSize keeps tiny inputs away from degenerate plan sizes.
const minFFTSize = 16

// Convolve implements Strategy.
func (FrequencyDomain) Convolve(a, b []float64) ([]float64, error) {
	if err := validate(a, b); err != nil {
		return nil, err
	}
	if len(a) == 0 || len(b) == 0 {
		return []float64{}, nil
	}

	resultLen := outputLen(len(a))
	fftSize := nextPowerOf2(resultLen)
	if fftSize < minFFTSize {
		fftSize = minFFTSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aSpec := make([]complex128, fftSize)
	bSpec := make([]complex128, fftSize)
	for i := range a {
		aSpec[i] = complex(a[i], 0)
		bSpec[i] = complex(b[i], 0)
	}

	if err := plan.Forward(aSpec, aSpec); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bSpec, bSpec); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aSpec {
		aSpec[i] *= bSpec[i]
	}

	if err := plan.Inverse(aSpec, aSpec); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, resultLen)
	for i := range result {
		result[i] = real(aSpec[i])
	}
	return result, nil
}

// Name implements Strategy.
func (FrequencyDomain) Name() string { return "fft" }

// SelectStrategy returns the strategy cfg picks for n-sample inputs.
// It returns nil only if cfg forces a nil strategy.
func SelectStrategy(n int, cfg Config) Strategy {
	if cfg.forced || cfg.Strategy != nil {
		return cfg.Strategy
	}
	if cfg.FFTThreshold > 0 && n >= cfg.FFTThreshold {
		return FrequencyDomain{}
	}
	return TimeDomain{}
}

// Convolve performs linear convolution of equal-length a and b.
// Without options it is equivalent to [LinConv]; see [WithFFTThreshold]
// and [WithStrategy] for the FFT path.
func Convolve(a, b []float64, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)

	s := SelectStrategy(len(a), cfg)
	if s == nil {
		return nil, ErrInvalidStrategy
	}

	return s.Convolve(a, b)
}
