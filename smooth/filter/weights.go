package filter

import "fmt"

// Weights returns the normalized kernel weights a moving-average kind
// applies over count buffered samples, oldest-first. It exposes the same
// weights the filters use internally, including the partial-window
// renormalization for count below the configured window size.
//
// stdDev is only consulted for MovingAverageGaussian. MovingAverageMedian
// has no kernel weights and is rejected.
func Weights(kind MovingAverageKind, count int, stdDev float64) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: sample count must be >= 1: %d", ErrInvalidConfig, count)
	}

	var shape shapeFunc
	switch kind {
	case MovingAverageSimple:
		shape = uniformShape
	case MovingAverageWeighted:
		shape = linearShape
	case MovingAverageGaussian:
		if err := validateStdDev(stdDev); err != nil {
			return nil, err
		}
		shape = gaussianShape(stdDev)
	case MovingAverageMedian:
		return nil, fmt.Errorf("%w: median filter has no kernel weights", ErrInvalidConfig)
	default:
		return nil, fmt.Errorf("%w: unknown moving average kind: %d", ErrInvalidConfig, int(kind))
	}

	w := make([]float64, count)
	shape(w)

	sum := kahanSum(w)
	for i := range w {
		w[i] /= sum
	}

	return w, nil
}
