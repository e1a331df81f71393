package filter

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-smooth/smooth/buffer"
)

// shapeFunc fills dst with unnormalized kernel weights for len(dst) buffered
// samples, oldest-first. Shapes must produce strictly positive weights so the
// normalizing weight sum can never be zero.
type shapeFunc func(dst []float64)

// kernel is the shared core of the windowed moving-average filters: a sample
// window plus a weight shape. Each Update recomputes the weights for the
// samples actually present and returns the normalized weighted average, so
// partial windows yield exact statistics over the available count.
type kernel struct {
	win     *buffer.Window
	shape   shapeFunc
	weights []float64
	scratch []float64
}

func newKernel(window int, shape shapeFunc) (kernel, error) {
	if err := validateWindow(window); err != nil {
		return kernel{}, err
	}

	win, err := buffer.New(window)
	if err != nil {
		return kernel{}, err
	}

	return kernel{
		win:     win,
		shape:   shape,
		weights: make([]float64, window),
		scratch: make([]float64, window),
	}, nil
}

// Update pushes x into the window and returns the weighted average over the
// buffered samples. Allocation-free: weights and products go through
// preallocated scratch sized to the window.
func (k *kernel) Update(x float64) float64 {
	k.win.Push(x)
	values := k.win.Values()
	n := len(values)

	w := k.weights[:n]
	k.shape(w)

	products := k.scratch[:n]
	vecmath.MulBlock(products, values, w)

	return kahanSum(products) / kahanSum(w)
}

// Reset empties the sample window.
func (k *kernel) Reset() {
	k.win.Reset()
}

// kahanSum sums xs with compensated summation.
func kahanSum(xs []float64) float64 {
	var sum, c float64
	for _, x := range xs {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// uniformShape weights every sample equally.
func uniformShape(dst []float64) {
	for i := range dst {
		dst[i] = 1
	}
}

// linearShape weights samples linearly decreasing from newest to oldest:
// the newest sample gets weight n, the oldest weight 1.
func linearShape(dst []float64) {
	for i := range dst {
		dst[i] = float64(i + 1)
	}
}

// gaussianShape weights samples by a Gaussian of the given standard
// deviation centered on the newest sample, in sample-distance units.
func gaussianShape(stdDev float64) shapeFunc {
	inv := 1 / (2 * stdDev * stdDev)
	return func(dst []float64) {
		n := len(dst)
		for i := range dst {
			d := float64(n - 1 - i)
			dst[i] = math.Exp(-d * d * inv)
		}
	}
}
