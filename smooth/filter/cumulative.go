package filter

import "github.com/cwbudde/algo-smooth/stats/rolling"

// CumulativeMovingAverage1D returns the running mean of every sample seen so
// far. It needs no window; the count is unbounded.
type CumulativeMovingAverage1D struct {
	acc rolling.Accumulator
}

// NewCumulativeMovingAverage1D creates a cumulative moving average.
func NewCumulativeMovingAverage1D() *CumulativeMovingAverage1D {
	return &CumulativeMovingAverage1D{}
}

// Update folds x into the running mean and returns it.
func (f *CumulativeMovingAverage1D) Update(x float64) float64 {
	f.acc.Add(x)
	return f.acc.Mean()
}

// Reset clears the running mean and count.
func (f *CumulativeMovingAverage1D) Reset() {
	f.acc.Reset()
}
