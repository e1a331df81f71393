package filter

// SimpleMovingAverage1D returns the arithmetic mean of the buffered samples.
// Until the window fills, the mean is taken over the samples present.
type SimpleMovingAverage1D struct {
	kernel
}

// NewSimpleMovingAverage1D creates a simple moving average over the given
// window size.
func NewSimpleMovingAverage1D(window int) (*SimpleMovingAverage1D, error) {
	k, err := newKernel(window, uniformShape)
	if err != nil {
		return nil, err
	}
	return &SimpleMovingAverage1D{kernel: k}, nil
}

// WeightedMovingAverage1D averages the buffered samples with weights
// decreasing linearly from the newest sample to the oldest, renormalized
// over the samples present on every call.
type WeightedMovingAverage1D struct {
	kernel
}

// NewWeightedMovingAverage1D creates a linearly weighted moving average over
// the given window size.
func NewWeightedMovingAverage1D(window int) (*WeightedMovingAverage1D, error) {
	k, err := newKernel(window, linearShape)
	if err != nil {
		return nil, err
	}
	return &WeightedMovingAverage1D{kernel: k}, nil
}

// GaussianAverage1D averages the buffered samples with Gaussian weights
// centered on the newest sample. The weight of a sample i positions back is
// proportional to exp(-i^2 / (2 stdDev^2)); normalization runs over the
// samples present, so warm-up output is finite from the first sample.
type GaussianAverage1D struct {
	kernel
	stdDev float64
}

// NewGaussianAverage1D creates a Gaussian-weighted moving average over the
// given window size. stdDev controls the kernel spread in sample units and
// must be > 0.
func NewGaussianAverage1D(window int, stdDev float64) (*GaussianAverage1D, error) {
	if err := validateStdDev(stdDev); err != nil {
		return nil, err
	}

	k, err := newKernel(window, gaussianShape(stdDev))
	if err != nil {
		return nil, err
	}

	return &GaussianAverage1D{kernel: k, stdDev: stdDev}, nil
}

// StdDev returns the configured kernel standard deviation.
func (f *GaussianAverage1D) StdDev() float64 {
	return f.stdDev
}
