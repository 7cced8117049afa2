// Command seqdemo runs the sequence routines on a fixed set of inputs and
// prints the results.
//
// Usage:
//
//	seqdemo [flags]
//
// Examples:
//
//	seqdemo
//	seqdemo -only smooth
//	seqdemo -only conv -fft-threshold 2
//	seqdemo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-seq/dsp/conv"
	"github.com/cwbudde/algo-seq/dsp/norm"
	"github.com/cwbudde/algo-seq/dsp/search"
	"github.com/cwbudde/algo-seq/dsp/smooth"
)

// demoCase is one printed row: a label, the rendered input and a function
// producing the rendered result.
type demoCase struct {
	call  string
	input string
	run   func(cfg demoConfig) string
}

type demoConfig struct {
	fftThreshold int
}

type group struct {
	name  string
	cases []demoCase
}

var (
	ramp4 = []float64{1, 2, 3, 4}
	ramp5 = []float64{1, 2, 3, 4, 5}
	seqA  = []float64{1, 2, 3}
	seqB  = []float64{4, 5, 6}
)

var groups = []group{
	{"search", []demoCase{
		searchCase([]int{2, 1, 1, 3}, 1),
		searchCase([]int{2, 1, 1, 3}, 99),
		searchCase(nil, 3),
	}},
	{"rms", []demoCase{
		rmsCase(nil),
		rmsCase(ramp4),
	}},
	{"conv", []demoCase{
		convCase(nil, nil),
		convCase(seqA, nil),
		convCase(nil, seqB),
		convCase(seqA, seqB),
		convCase(seqB, seqA),
		convCase([]float64{1}, []float64{2}),
		convCase(ramp4, []float64{5, 6, 7, 8}),
	}},
	{"smooth", []demoCase{
		smoothCase(ramp5, 3),
		smoothCase([]float64{1}, 3),
		smoothCase([]float64{1}, 1),
		smoothCase(ramp5, -1),
		smoothCase(ramp5, 2),
		smoothCase(ramp5, 1),
		smoothCase(ramp5, 5),
		smoothCase([]float64{2, 2, 2, 2, 2, 2, 2, 2}, 3),
	}},
}

func searchCase(s []int, x int) demoCase {
	return demoCase{
		call:  "FindIndex",
		input: fmt.Sprintf("%v, %d", s, x),
		run: func(demoConfig) string {
			return fmt.Sprint(search.FindIndex(s, x))
		},
	}
}

func rmsCase(x []float64) demoCase {
	return demoCase{
		call:  "RMSNorm",
		input: fmt.Sprint(x),
		run: func(demoConfig) string {
			return formatResult(norm.RMSNorm(x))
		},
	}
}

func convCase(a, b []float64) demoCase {
	return demoCase{
		call:  "Convolve",
		input: fmt.Sprintf("%v, %v", a, b),
		run: func(cfg demoConfig) string {
			return formatResult(conv.Convolve(a, b, conv.WithFFTThreshold(cfg.fftThreshold)))
		},
	}
}

func smoothCase(x []float64, win int) demoCase {
	return demoCase{
		call:  "MeanSmooth",
		input: fmt.Sprintf("%v, %d", x, win),
		run: func(demoConfig) string {
			return formatResult(smooth.MeanSmooth(x, win))
		},
	}
}

// formatResult renders a result slice, or the error in its place.
// Values are rounded so FFT output prints like the time-domain result.
func formatResult(values []float64, err error) string {
	if err != nil {
		return "error: " + err.Error()
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.8g", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func main() {
	only := flag.String("only", "", "run a single group (search, rms, conv, smooth)")
	fftThreshold := flag.Int("fft-threshold", 0, "use FFT convolution for inputs of at least this length (0 disables)")
	list := flag.Bool("list", false, "list available groups")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: seqdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the sequence routines on fixed inputs and prints the results.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  seqdemo -only smooth\n")
		fmt.Fprintf(os.Stderr, "  seqdemo -only conv -fft-threshold 2\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	selected, err := selectGroups(*only)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, selected, demoConfig{fftThreshold: *fftThreshold}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func selectGroups(only string) ([]group, error) {
	only = strings.ToLower(strings.TrimSpace(only))
	if only == "" {
		return groups, nil
	}
	for _, g := range groups {
		if g.name == only {
			return []group{g}, nil
		}
	}
	return nil, fmt.Errorf("unknown group %q (use -list to see available)", only)
}

func run(w io.Writer, selected []group, cfg demoConfig) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Group\tCall\tInput\tResult\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t-----\t------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, g := range selected {
		for _, c := range g.cases {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.name, c.call, c.input, c.run(cfg)); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
