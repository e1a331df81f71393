// Command smoothinfo prints the normalized kernel weights the windowed
// moving-average filters apply, including the partial-window
// renormalization used while the window is still filling.
//
// Usage:
//
//	smoothinfo [flags] [kernel-name ...]
//
// Without arguments it prints all kernels.
//
// Examples:
//
//	smoothinfo gaussian
//	smoothinfo -window 16 -std 4 gaussian weighted
//	smoothinfo -window 8 -count 3 simple
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/smooth/filter"
)

type kernelEntry struct {
	name string
	kind filter.MovingAverageKind
}

var registry = []kernelEntry{
	{"simple", filter.MovingAverageSimple},
	{"weighted", filter.MovingAverageWeighted},
	{"gaussian", filter.MovingAverageGaussian},
}

func main() {
	window := flag.Int("window", 8, "configured window size")
	count := flag.Int("count", 0, "buffered sample count to show (0 = full window)")
	stdDev := flag.Float64("std", 0, "gaussian std dev in samples (0 = window/3)")
	list := flag.Bool("list", false, "list kernel names and exit")
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	if *window < 1 {
		fmt.Fprintf(os.Stderr, "smoothinfo: window must be >= 1: %d\n", *window)
		os.Exit(2)
	}
	if *count == 0 {
		*count = *window
	}
	if *count < 1 || *count > *window {
		fmt.Fprintf(os.Stderr, "smoothinfo: count must be in 1..window: %d\n", *count)
		os.Exit(2)
	}
	if *stdDev == 0 {
		*stdDev = float64(*window) / 3
	}

	selected, err := selectKernels(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "smoothinfo:", err)
		os.Exit(2)
	}

	err = printWeights(os.Stdout, selected, *count, *stdDev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "smoothinfo:", err)
		os.Exit(1)
	}
}

func selectKernels(names []string) ([]kernelEntry, error) {
	if len(names) == 0 {
		return registry, nil
	}

	var out []kernelEntry
	for _, name := range names {
		entry, ok := lookup(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown kernel %q (use -list)", name)
		}
		out = append(out, entry)
	}

	return out, nil
}

func lookup(name string) (kernelEntry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return kernelEntry{}, false
}

func printWeights(w *os.File, selected []kernelEntry, count int, stdDev float64) error {
	weights := make([][]float64, len(selected))
	for i, e := range selected {
		ws, err := filter.Weights(e.kind, count, stdDev)
		if err != nil {
			return err
		}
		weights[i] = ws
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprint(tw, "pos")
	for _, e := range selected {
		fmt.Fprintf(tw, "\t%s", e.name)
	}
	fmt.Fprintln(tw)

	for pos := 0; pos < count; pos++ {
		label := fmt.Sprintf("%d", pos)
		switch pos {
		case 0:
			label += " (oldest)"
		case count - 1:
			label += " (newest)"
		}
		fmt.Fprint(tw, label)
		for i := range selected {
			fmt.Fprintf(tw, "\t%.6f", weights[i][pos])
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
