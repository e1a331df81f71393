package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/smooth/filter"
)

func ExampleNewSimpleMovingAverage1D() {
	f, err := filter.NewSimpleMovingAverage1D(3)
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{1, 2, 3, 4} {
		fmt.Println(f.Update(x))
	}
	// Output:
	// 1
	// 1.5
	// 2
	// 3
}

func ExampleNewFixationSmooth1D() {
	f, err := filter.NewFixationSmooth1D(1)
	if err != nil {
		panic(err)
	}

	// Small fluctuations around the first sample are suppressed.
	for _, x := range []float64{10, 10.4, 9.8, 11.5} {
		fmt.Println(f.Update(x))
	}
	// Output:
	// 10
	// 10
	// 10
	// 11.5
}
