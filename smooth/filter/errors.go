package filter

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by all construction-time validation failures.
// Use errors.Is to classify them.
var ErrInvalidConfig = errors.New("invalid filter configuration")

func validateWindow(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: window size must be >= 1: %d", ErrInvalidConfig, size)
	}
	return nil
}

func validateAlpha(alpha float64) error {
	if alpha <= 0 || alpha > 1 || math.IsNaN(alpha) {
		return fmt.Errorf("%w: alpha must be in (0, 1]: %f", ErrInvalidConfig, alpha)
	}
	return nil
}

func validateStdDev(stdDev float64) error {
	if stdDev <= 0 || math.IsNaN(stdDev) || math.IsInf(stdDev, 0) {
		return fmt.Errorf("%w: std dev must be > 0 and finite: %f", ErrInvalidConfig, stdDev)
	}
	return nil
}

func validateThreshold(threshold float64) error {
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return fmt.Errorf("%w: threshold must be >= 0 and finite: %f", ErrInvalidConfig, threshold)
	}
	return nil
}

func validatePasses(passes int) error {
	if passes < 1 {
		return fmt.Errorf("%w: pass count must be >= 1: %d", ErrInvalidConfig, passes)
	}
	return nil
}

func validateOffset(offset float64) error {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return fmt.Errorf("%w: offset must be finite: %f", ErrInvalidConfig, offset)
	}
	return nil
}
