// Package smoother chains filters into an incrementally updatable signal
// smoother. Each new sample is fed through the attached filters in order,
// every filter consuming the previous filter's output; the final output is
// cached and served by Get.
//
// A smoother owns its filters exclusively and is single-writer by contract:
// concurrent calls to one instance require external serialization, or one
// instance per goroutine.
package smoother
