package filter

import "fmt"

// MovingAverageKind selects the inner filter type of a multi-pass moving
// average.
type MovingAverageKind int

const (
	MovingAverageSimple MovingAverageKind = iota
	MovingAverageWeighted
	MovingAverageGaussian
	MovingAverageMedian
)

// String returns the kind's lower-case name.
func (k MovingAverageKind) String() string {
	switch k {
	case MovingAverageSimple:
		return "simple"
	case MovingAverageWeighted:
		return "weighted"
	case MovingAverageGaussian:
		return "gaussian"
	case MovingAverageMedian:
		return "median"
	default:
		return fmt.Sprintf("MovingAverageKind(%d)", int(k))
	}
}

// MultiPassOption mutates multi-pass construction parameters.
type MultiPassOption func(*multiPassConfig) error

type multiPassConfig struct {
	kind   MovingAverageKind
	stdDev float64 // 0 selects the window/3 default for Gaussian passes
}

// WithAverageKind selects the inner moving-average type. Default is
// MovingAverageSimple.
func WithAverageKind(kind MovingAverageKind) MultiPassOption {
	return func(cfg *multiPassConfig) error {
		switch kind {
		case MovingAverageSimple, MovingAverageWeighted, MovingAverageGaussian, MovingAverageMedian:
			cfg.kind = kind
			return nil
		default:
			return fmt.Errorf("%w: unknown moving average kind: %d", ErrInvalidConfig, int(kind))
		}
	}
}

// WithPassStdDev overrides the Gaussian standard deviation of the inner
// passes. Only meaningful with MovingAverageGaussian; the default is
// window/3.
func WithPassStdDev(stdDev float64) MultiPassOption {
	return func(cfg *multiPassConfig) error {
		if err := validateStdDev(stdDev); err != nil {
			return err
		}
		cfg.stdDev = stdDev
		return nil
	}
}

// newMovingAverage1D constructs one inner pass of the given kind.
func newMovingAverage1D(kind MovingAverageKind, window int, stdDev float64) (Filter1D, error) {
	switch kind {
	case MovingAverageSimple:
		return NewSimpleMovingAverage1D(window)
	case MovingAverageWeighted:
		return NewWeightedMovingAverage1D(window)
	case MovingAverageGaussian:
		if stdDev == 0 {
			stdDev = float64(window) / 3
		}
		return NewGaussianAverage1D(window, stdDev)
	case MovingAverageMedian:
		return NewMedianAverage1D(window)
	default:
		return nil, fmt.Errorf("%w: unknown moving average kind: %d", ErrInvalidConfig, int(kind))
	}
}

// MultiPassMovingAverage1D chains several independent instances of one
// moving-average type, feeding the output of pass k into pass k+1. Each
// inner pass keeps its own window and its own partial-window behavior.
type MultiPassMovingAverage1D struct {
	passes []Filter1D
}

// NewMultiPassMovingAverage1D creates a multi-pass moving average with the
// given window size and number of passes.
func NewMultiPassMovingAverage1D(window, passes int, opts ...MultiPassOption) (*MultiPassMovingAverage1D, error) {
	if err := validateWindow(window); err != nil {
		return nil, err
	}
	if err := validatePasses(passes); err != nil {
		return nil, err
	}

	var cfg multiPassConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	inner := make([]Filter1D, passes)
	for i := range inner {
		f, err := newMovingAverage1D(cfg.kind, window, cfg.stdDev)
		if err != nil {
			return nil, err
		}
		inner[i] = f
	}

	return &MultiPassMovingAverage1D{passes: inner}, nil
}

// Update feeds x through every pass in order and returns the final output.
func (f *MultiPassMovingAverage1D) Update(x float64) float64 {
	for _, pass := range f.passes {
		x = pass.Update(x)
	}
	return x
}

// Reset resets every pass in order.
func (f *MultiPassMovingAverage1D) Reset() {
	for _, pass := range f.passes {
		pass.Reset()
	}
}
