package smoother

import "github.com/cwbudde/algo-smooth/smooth/filter"

// Builder is the entry point of the fluent construction API. Pick a
// dimensionality, attach filters in processing order, then Build.
//
//	s, err := smoother.NewBuilder().
//		OneDimensional().
//		Attach(f1).
//		Attach(f2).
//		Build()
type Builder struct{}

// NewBuilder returns a fresh Builder.
func NewBuilder() Builder {
	return Builder{}
}

// OneDimensional starts a 1D smoother configuration.
func (Builder) OneDimensional() *Builder1D {
	return &Builder1D{}
}

// TwoDimensional starts a 2D smoother configuration.
func (Builder) TwoDimensional() *Builder2D {
	return &Builder2D{}
}

// Builder1D accumulates 1D filters in attachment order.
type Builder1D struct {
	filters []filter.Filter1D
	err     error
}

// Attach appends f to the chain. A nil filter is recorded as a configuration
// error surfaced by Build.
func (b *Builder1D) Attach(f filter.Filter1D) *Builder1D {
	if f == nil {
		if b.err == nil {
			b.err = ErrNilFilter
		}
		return b
	}
	b.filters = append(b.filters, f)
	return b
}

// Build constructs the smoother, surfacing any attach-time error.
func (b *Builder1D) Build() (*Smoother1D, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New1D(b.filters...)
}

// Builder2D accumulates 2D filters in attachment order.
type Builder2D struct {
	filters []filter.Filter2D
	err     error
}

// Attach appends f to the chain. A nil filter is recorded as a configuration
// error surfaced by Build.
func (b *Builder2D) Attach(f filter.Filter2D) *Builder2D {
	if f == nil {
		if b.err == nil {
			b.err = ErrNilFilter
		}
		return b
	}
	b.filters = append(b.filters, f)
	return b
}

// Build constructs the smoother, surfacing any attach-time error.
func (b *Builder2D) Build() (*Smoother2D, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New2D(b.filters...)
}
