package smoother_test

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/smooth/filter"
	"github.com/cwbudde/algo-smooth/smooth/smoother"
)

func ExampleBuilder() {
	avg, err := filter.NewSimpleMovingAverage1D(2)
	if err != nil {
		panic(err)
	}

	s, err := smoother.NewBuilder().
		OneDimensional().
		Attach(avg).
		Build()
	if err != nil {
		panic(err)
	}

	fmt.Println(s.AddAndGet(40))
	fmt.Println(s.AddAndGet(60))
	fmt.Println(s.AddAndGet(100))
	// Output:
	// 40
	// 50
	// 80
}

func ExampleNew2D() {
	fix, err := filter.NewFixationSmooth2D(5)
	if err != nil {
		panic(err)
	}

	s, err := smoother.New2D(fix)
	if err != nil {
		panic(err)
	}

	x, y := s.AddAndGet(100, 200)
	fmt.Println(x, y)

	// Jitter inside the threshold circle holds the fixation point.
	x, y = s.AddAndGet(102, 201)
	fmt.Println(x, y)
	// Output:
	// 100 200
	// 100 200
}
