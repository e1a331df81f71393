package rolling

import (
	"math"
	"slices"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
// Uses Kahan summation for numerical stability.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range xs {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(xs))
}

// Moments returns the mean and population variance of xs using Welford's
// online algorithm.
func Moments(xs []float64) (mean, variance float64) {
	n := len(xs)
	if n == 0 {
		return 0, 0
	}

	var m2 float64
	for i, x := range xs {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return mean, m2 / float64(n)
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	_, variance := Moments(xs)
	return math.Sqrt(variance)
}

// MedianInPlace sorts xs and returns its median. For an even number of
// samples the two middle values are averaged. Returns 0 for an empty slice.
func MedianInPlace(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	slices.Sort(xs)
	mid := n / 2
	if n%2 == 1 {
		return xs[mid]
	}

	return (xs[mid-1] + xs[mid]) / 2
}

// Accumulator tracks count, mean, and variance of a stream incrementally
// using Welford's algorithm. The zero value is ready to use.
type Accumulator struct {
	n    int
	mean float64
	m2   float64
}

// Add folds x into the running statistics.
func (a *Accumulator) Add(x float64) {
	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)
}

// Count returns the number of samples seen.
func (a *Accumulator) Count() int {
	return a.n
}

// Mean returns the running mean, or 0 before any sample.
func (a *Accumulator) Mean() float64 {
	return a.mean
}

// Variance returns the running population variance.
func (a *Accumulator) Variance() float64 {
	if a.n == 0 {
		return 0
	}
	return a.m2 / float64(a.n)
}

// StdDev returns the running population standard deviation.
func (a *Accumulator) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// Reset clears all accumulated state, allowing the Accumulator to be reused.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
