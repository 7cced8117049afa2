package conv_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-seq/dsp/conv"
)

func ExampleLinConv() {
	result, _ := conv.LinConv([]float64{1, 2, 3}, []float64{4, 5, 6})

	fmt.Println(result)

	// Output:
	// [4 13 28 27 18]
}

func ExampleConvolve() {
	a := make([]float64, 512)
	b := make([]float64, 512)
	for i := range a {
		a[i] = math.Sin(2 * math.Pi * float64(i) / 64)
		b[i] = math.Exp(-float64(i) / 32)
	}

	// Short inputs stay in the time domain, long ones go through the FFT.
	cfg := conv.ApplyOptions(conv.WithFFTThreshold(256))
	fmt.Println(conv.SelectStrategy(8, cfg).Name())
	fmt.Println(conv.SelectStrategy(len(a), cfg).Name())

	result, _ := conv.Convolve(a, b, conv.WithFFTThreshold(256))
	fmt.Printf("Result length: %d\n", len(result))

	// Output:
	// time
	// fft
	// Result length: 1023
}

func ExampleConvolve_empty() {
	result, err := conv.Convolve([]float64{1, 2, 3}, nil)

	fmt.Println(len(result), err)

	// Output:
	// 0 <nil>
}
