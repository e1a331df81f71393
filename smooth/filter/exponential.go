package filter

// ExponentialMovingAverage1D applies recursive exponential smoothing:
// state = alpha*x + (1-alpha)*state. The first sample seeds the state and is
// returned unchanged, so a legitimate zero sample seeds correctly too.
type ExponentialMovingAverage1D struct {
	alpha  float64
	state  float64
	seeded bool
}

// NewExponentialMovingAverage1D creates an exponential moving average with
// smoothing factor alpha in (0, 1]. alpha = 1 tracks the input exactly.
func NewExponentialMovingAverage1D(alpha float64) (*ExponentialMovingAverage1D, error) {
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	return &ExponentialMovingAverage1D{alpha: alpha}, nil
}

// Update folds x into the recursive estimate and returns it.
func (f *ExponentialMovingAverage1D) Update(x float64) float64 {
	if !f.seeded {
		f.state = x
		f.seeded = true
		return x
	}

	f.state = f.alpha*x + (1-f.alpha)*f.state

	return f.state
}

// Reset clears the estimate; the next sample seeds it again.
func (f *ExponentialMovingAverage1D) Reset() {
	f.state = 0
	f.seeded = false
}
