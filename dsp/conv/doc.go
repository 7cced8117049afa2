// Package conv provides linear convolution of equal-length sequences.
//
// Two strategies compute the same result:
//
//   - TimeDomain: O(n^2) sliding overlap, exact for integer-valued inputs
//   - FrequencyDomain: O(n log n) FFT multiplication, for long inputs
//
// # Usage
//
// The one-shot functions cover most callers:
//
//	result, err := conv.LinConv(a, b)   // Always time domain
//	result, err := conv.Convolve(a, b)  // Dispatcher, time domain by default
//
// For long inputs enable size-based selection:
//
//	result, err := conv.Convolve(a, b, conv.WithFFTThreshold(256))
//
// or force a strategy:
//
//	result, err := conv.Convolve(a, b, conv.WithStrategy(conv.FrequencyDomain{}))
//
// # Empty and mismatched inputs
//
// Convolving with an empty sequence is not an error: the result is an empty
// slice and a nil error. Inputs of different lengths are rejected with
// [ErrLengthMismatch]; the output is always 2n-1 samples for n-sample inputs.
package conv
