package filter

import "fmt"

// Paired2D applies two independently owned 1D filters component-wise, one
// per axis. It covers every axis-independent 2D filter; distance-based
// filters like FixationSmooth2D carry native 2D logic instead.
type Paired2D struct {
	x, y Filter1D
}

// Pair2D combines two 1D filters into a component-wise 2D filter. The
// filters are owned by the pair and must not be shared.
func Pair2D(x, y Filter1D) (*Paired2D, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("%w: paired 2D filter requires both axis filters", ErrInvalidConfig)
	}
	return &Paired2D{x: x, y: y}, nil
}

// Update applies the axis filters component-wise.
func (f *Paired2D) Update(x, y float64) (float64, float64) {
	return f.x.Update(x), f.y.Update(y)
}

// Reset resets both axis filters.
func (f *Paired2D) Reset() {
	f.x.Reset()
	f.y.Reset()
}

// NewOffset2D creates a 2D offset filter with per-axis constants.
func NewOffset2D(offsetX, offsetY float64) (*Paired2D, error) {
	fx, err := NewOffset1D(offsetX)
	if err != nil {
		return nil, err
	}
	fy, err := NewOffset1D(offsetY)
	if err != nil {
		return nil, err
	}
	return Pair2D(fx, fy)
}

// NewSimpleMovingAverage2D creates a component-wise simple moving average
// with per-axis window sizes.
func NewSimpleMovingAverage2D(windowX, windowY int) (*Paired2D, error) {
	fx, err := NewSimpleMovingAverage1D(windowX)
	if err != nil {
		return nil, err
	}
	fy, err := NewSimpleMovingAverage1D(windowY)
	if err != nil {
		return nil, err
	}
	return Pair2D(fx, fy)
}

// NewWeightedMovingAverage2D creates a component-wise weighted moving
// average with per-axis window sizes.
func NewWeightedMovingAverage2D(windowX, windowY int) (*Paired2D, error) {
	fx, err := NewWeightedMovingAverage1D(windowX)
	if err != nil {
		return nil, err
	}
	fy, err := NewWeightedMovingAverage1D(windowY)
	if err != nil {
		return nil, err
	}
	return Pair2D(fx, fy)
}

// NewGaussianAverage2D creates a component-wise Gaussian average with
// per-axis window sizes and standard deviations.
func NewGaussianAverage2D(windowX, windowY int, stdDevX, stdDevY float64) (*Paired2D, error) {
	fx, err := NewGaussianAverage1D(windowX, stdDevX)
	if err != nil {
		return nil, err
	}
	fy, err := NewGaussianAverage1D(windowY, stdDevY)
	if err != nil {
		return nil, err
	}
	return Pair2D(fx, fy)
}

// NewMedianAverage2D creates a component-wise moving median with per-axis
// window sizes.
func NewMedianAverage2D(windowX, windowY int) (*Paired2D, error) {
	fx, err := NewMedianAverage1D(windowX)
	if err != nil {
		return nil, err
	}
	fy, err := NewMedianAverage1D(windowY)
	if err != nil {
		return nil, err
	}
	return Pair2D(fx, fy)
}

// NewExponentialMovingAverage2D creates a component-wise exponential moving
// average with per-axis smoothing factors.
func NewExponentialMovingAverage2D(alphaX, alphaY float64) (*Paired2D, error) {
	fx, err := NewExponentialMovingAverage1D(alphaX)
	if err != nil {
		return nil, err
	}
	fy, err := NewExponentialMovingAverage1D(alphaY)
	if err != nil {
		return nil, err
	}
	return Pair2D(fx, fy)
}

// NewCumulativeMovingAverage2D creates a component-wise cumulative moving
// average.
func NewCumulativeMovingAverage2D() *Paired2D {
	p, _ := Pair2D(NewCumulativeMovingAverage1D(), NewCumulativeMovingAverage1D())
	return p
}

// NewMultiPassMovingAverage2D creates a component-wise multi-pass moving
// average with per-axis window sizes. Kind and pass options apply to both
// axes; use Pair2D directly for asymmetric configurations.
func NewMultiPassMovingAverage2D(windowX, windowY, passes int, opts ...MultiPassOption) (*Paired2D, error) {
	fx, err := NewMultiPassMovingAverage1D(windowX, passes, opts...)
	if err != nil {
		return nil, err
	}
	fy, err := NewMultiPassMovingAverage1D(windowY, passes, opts...)
	if err != nil {
		return nil, err
	}
	return Pair2D(fx, fy)
}
