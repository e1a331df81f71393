package filter

import (
	"github.com/cwbudde/algo-smooth/smooth/buffer"
	"github.com/cwbudde/algo-smooth/stats/rolling"
)

// MedianAverage1D returns the median of the buffered samples; with an even
// count the two middle values are averaged. Until the window fills, the
// median is taken over the samples present.
type MedianAverage1D struct {
	win     *buffer.Window
	scratch []float64
}

// NewMedianAverage1D creates a moving median over the given window size.
func NewMedianAverage1D(window int) (*MedianAverage1D, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}

	win, err := buffer.New(window)
	if err != nil {
		return nil, err
	}

	return &MedianAverage1D{
		win:     win,
		scratch: make([]float64, window),
	}, nil
}

// Update pushes x into the window and returns the median of the buffered
// samples. Sorting happens on a preallocated scratch copy so the window's
// arrival order is preserved.
func (f *MedianAverage1D) Update(x float64) float64 {
	f.win.Push(x)
	values := f.win.Values()

	scratch := f.scratch[:len(values)]
	copy(scratch, values)

	return rolling.MedianInPlace(scratch)
}

// Reset empties the sample window.
func (f *MedianAverage1D) Reset() {
	f.win.Reset()
}
