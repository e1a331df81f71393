package filter

import "math"

// FixationSmooth1D is a deadband filter: it holds a reference value and
// suppresses samples that stay within the threshold distance of it. The
// first sample seeds the reference. When a sample deviates by at least the
// threshold, the reference jumps to it and the sample passes through.
//
// With threshold 0 every sample moves the reference, making the filter
// transparent.
type FixationSmooth1D struct {
	threshold float64
	reference float64
	seeded    bool
}

// NewFixationSmooth1D creates a deadband filter with the given non-negative
// threshold.
func NewFixationSmooth1D(threshold float64) (*FixationSmooth1D, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	return &FixationSmooth1D{threshold: threshold}, nil
}

// Update returns the held reference while x stays within the threshold, and
// jumps to x the instant it deviates by threshold or more.
func (f *FixationSmooth1D) Update(x float64) float64 {
	if !f.seeded {
		f.reference = x
		f.seeded = true
		return x
	}

	if math.Abs(x-f.reference) < f.threshold {
		return f.reference
	}

	f.reference = x

	return x
}

// Reset clears the reference; the next sample seeds it again.
func (f *FixationSmooth1D) Reset() {
	f.reference = 0
	f.seeded = false
}

// FixationSmooth2D is the two-dimensional deadband filter. Unlike the other
// 2D filters it is not a pair of per-axis filters: the hold/jump decision
// uses the true Euclidean distance between the sample and the reference
// point, so diagonal jitter inside the threshold circle is suppressed even
// when each axis alone would exceed a per-axis threshold.
type FixationSmooth2D struct {
	threshold  float64
	refX, refY float64
	seeded     bool
}

// NewFixationSmooth2D creates a 2D deadband filter with the given
// non-negative Euclidean threshold.
func NewFixationSmooth2D(threshold float64) (*FixationSmooth2D, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	return &FixationSmooth2D{threshold: threshold}, nil
}

// Update returns the held reference point while (x, y) stays within the
// threshold circle, and jumps to it otherwise.
func (f *FixationSmooth2D) Update(x, y float64) (float64, float64) {
	if !f.seeded {
		f.refX, f.refY = x, y
		f.seeded = true
		return x, y
	}

	if math.Hypot(x-f.refX, y-f.refY) < f.threshold {
		return f.refX, f.refY
	}

	f.refX, f.refY = x, y

	return x, y
}

// Reset clears the reference point; the next sample seeds it again.
func (f *FixationSmooth2D) Reset() {
	f.refX, f.refY = 0, 0
	f.seeded = false
}
