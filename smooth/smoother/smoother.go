package smoother

import "github.com/cwbudde/algo-smooth/smooth/filter"

// Smoother1D feeds scalar samples through an ordered filter chain.
type Smoother1D struct {
	filters []filter.Filter1D
	value   float64
	primed  bool
}

// New1D creates a smoother from the given filters, applied in argument
// order. At least one non-nil filter is required.
func New1D(filters ...filter.Filter1D) (*Smoother1D, error) {
	if len(filters) == 0 {
		return nil, ErrNoFilters
	}
	for _, f := range filters {
		if f == nil {
			return nil, ErrNilFilter
		}
	}

	owned := make([]filter.Filter1D, len(filters))
	copy(owned, filters)

	return &Smoother1D{filters: owned}, nil
}

// Add feeds x through the filter chain and caches the final output.
func (s *Smoother1D) Add(x float64) {
	for _, f := range s.filters {
		x = f.Update(x)
	}
	s.value = x
	s.primed = true
}

// Get returns the cached output of the last Add. It has no side effects and
// returns ErrNoValue before the first sample.
func (s *Smoother1D) Get() (float64, error) {
	if !s.primed {
		return 0, ErrNoValue
	}
	return s.value, nil
}

// AddAndGet feeds x through the chain and returns the resulting output.
func (s *Smoother1D) AddAndGet(x float64) float64 {
	s.Add(x)
	return s.value
}

// Reset resets every filter in attachment order and clears the cached value,
// as if the smoother were newly constructed.
func (s *Smoother1D) Reset() {
	for _, f := range s.filters {
		f.Reset()
	}
	s.value = 0
	s.primed = false
}

// Len returns the number of attached filters.
func (s *Smoother1D) Len() int {
	return len(s.filters)
}

// Smoother2D feeds paired samples through an ordered 2D filter chain.
type Smoother2D struct {
	filters []filter.Filter2D
	x, y    float64
	primed  bool
}

// New2D creates a 2D smoother from the given filters, applied in argument
// order. At least one non-nil filter is required.
func New2D(filters ...filter.Filter2D) (*Smoother2D, error) {
	if len(filters) == 0 {
		return nil, ErrNoFilters
	}
	for _, f := range filters {
		if f == nil {
			return nil, ErrNilFilter
		}
	}

	owned := make([]filter.Filter2D, len(filters))
	copy(owned, filters)

	return &Smoother2D{filters: owned}, nil
}

// Add feeds the sample pair through the filter chain and caches the final
// output pair.
func (s *Smoother2D) Add(x, y float64) {
	for _, f := range s.filters {
		x, y = f.Update(x, y)
	}
	s.x, s.y = x, y
	s.primed = true
}

// Get returns the cached output pair of the last Add, or ErrNoValue before
// the first sample.
func (s *Smoother2D) Get() (float64, float64, error) {
	if !s.primed {
		return 0, 0, ErrNoValue
	}
	return s.x, s.y, nil
}

// AddAndGet feeds the sample pair through the chain and returns the
// resulting output pair.
func (s *Smoother2D) AddAndGet(x, y float64) (float64, float64) {
	s.Add(x, y)
	return s.x, s.y
}

// Reset resets every filter in attachment order and clears the cached value.
func (s *Smoother2D) Reset() {
	for _, f := range s.filters {
		f.Reset()
	}
	s.x, s.y = 0, 0
	s.primed = false
}

// Len returns the number of attached filters.
func (s *Smoother2D) Len() int {
	return len(s.filters)
}
