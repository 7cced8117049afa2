// Package smooth provides an edge-truncated moving average.
//
// [MeanSmooth] averages each sample with its neighbours inside an odd-width
// window centred on it. Near either end the window is cut off at the
// sequence boundary instead of padding, so edge outputs average fewer
// samples:
//
//	out, _ := smooth.MeanSmooth([]float64{1, 2, 3, 4, 5}, 3)
//	// out = [1.5 2 3 4 4.5]
//
// The window width w is written 2r+1 elsewhere in the literature; [Radius]
// and [WindowForRadius] convert between the two forms.
package smooth
