package filter

// Filter1D consumes one scalar sample per call and produces one smoothed
// output, maintaining internal state across calls. Update is a pure function
// of the sample and the filter's own state; it never fails on valid numeric
// input. Filters are single-writer by contract and perform no locking.
type Filter1D interface {
	// Update feeds the next sample and returns the smoothed value.
	Update(x float64) float64
	// Reset clears all internal state as if newly constructed.
	Reset()
}

// Filter2D is the two-dimensional counterpart of Filter1D, consuming an
// ordered pair of scalars per call.
type Filter2D interface {
	Update(x, y float64) (float64, float64)
	Reset()
}
