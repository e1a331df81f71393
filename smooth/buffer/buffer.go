package buffer

import "fmt"

// Window is a bounded FIFO of the most recent samples. It starts empty and
// grows up to its capacity; once full, each Push evicts the oldest sample.
// Partial fill states (Len < Cap) are first-class: filters compute their
// statistic over exactly the samples present.
//
// A Window is single-writer, single-reader by contract and performs no
// locking.
type Window struct {
	values   []float64 // oldest-first, len == current count
	capacity int
}

// New returns an empty Window with the given fixed capacity.
func New(capacity int) (*Window, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("window capacity must be >= 1: %d", capacity)
	}
	return &Window{
		values:   make([]float64, 0, capacity),
		capacity: capacity,
	}, nil
}

// Push appends x as the newest sample. If the window was already full, the
// oldest sample is evicted and returned with evicted=true.
func (w *Window) Push(x float64) (old float64, evicted bool) {
	if len(w.values) < w.capacity {
		w.values = append(w.values, x)
		return 0, false
	}

	old = w.values[0]
	copy(w.values, w.values[1:])
	w.values[len(w.values)-1] = x

	return old, true
}

// Values returns the current contents, oldest first. The returned slice is a
// view into the window's backing storage; it is valid until the next Push or
// Reset and must not be mutated.
func (w *Window) Values() []float64 {
	return w.values
}

// Len returns the number of samples currently buffered.
func (w *Window) Len() int {
	return len(w.values)
}

// Cap returns the fixed capacity.
func (w *Window) Cap() int {
	return w.capacity
}

// Latest returns the newest buffered sample, or 0 if the window is empty.
func (w *Window) Latest() float64 {
	if len(w.values) == 0 {
		return 0
	}
	return w.values[len(w.values)-1]
}

// Reset empties the window, keeping its capacity.
func (w *Window) Reset() {
	w.values = w.values[:0]
}
