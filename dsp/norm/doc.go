// Package norm provides RMS measurement and normalization of sequences.
//
// [RMSNorm] scales a sequence so its root-mean-square value becomes 1:
//
//	out, err := norm.RMSNorm([]float64{1, 2, 3, 4})
//	// out ≈ [0.365148 0.730297 1.095445 1.460593]
//
// An all-zero sequence has an RMS of zero. RMSNorm does not special-case it:
// every output element is NaN (0/0). Callers that may see silent input
// should check [RMS] first.
package norm
