package filter

// Offset1D adds a constant to every sample. It carries no state.
type Offset1D struct {
	offset float64
}

// NewOffset1D creates an offset filter with the given constant.
func NewOffset1D(offset float64) (*Offset1D, error) {
	if err := validateOffset(offset); err != nil {
		return nil, err
	}
	return &Offset1D{offset: offset}, nil
}

// Update returns x plus the configured offset.
func (f *Offset1D) Update(x float64) float64 {
	return x + f.offset
}

// Reset is a no-op; the filter is stateless.
func (f *Offset1D) Reset() {}

// Identity1D passes samples through unchanged. Useful as a neutral chain
// element and in tests.
type Identity1D struct{}

// NewIdentity1D creates an identity filter.
func NewIdentity1D() *Identity1D {
	return &Identity1D{}
}

// Update returns x unchanged.
func (f *Identity1D) Update(x float64) float64 {
	return x
}

// Reset is a no-op; the filter is stateless.
func (f *Identity1D) Reset() {}
