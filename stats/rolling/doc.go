// Package rolling provides small descriptive statistics over sample windows
// and an incremental accumulator for streaming data. The slice functions
// operate on whatever samples are present, so callers never divide by an
// assumed-full window.
package rolling
