package smoother

import "errors"

var (
	// ErrNoValue is returned by Get before the first sample has been added.
	ErrNoValue = errors.New("no sample added yet")

	// ErrNoFilters is returned when a smoother is built without any filter.
	ErrNoFilters = errors.New("smoother requires at least one filter")

	// ErrNilFilter is returned when a nil filter is attached.
	ErrNilFilter = errors.New("attached filter must not be nil")
)
