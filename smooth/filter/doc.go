// Package filter provides the stateful smoothing filters that make up a
// smoother chain: offset, simple/weighted/Gaussian/median moving averages,
// exponential and cumulative averages, fixation deadband, and multi-pass
// composites, in one- and two-dimensional variants.
//
// Every filter validates its parameters at construction and never fails
// during streaming: windowed statistics are always computed over exactly the
// samples buffered so far, with weights renormalized for the present count,
// so partially filled windows produce finite output from the first sample on.
//
// Two-dimensional filters whose statistic is independent per axis are built
// as a pair of owned one-dimensional filters. The fixation filter is the
// exception: its deadband is defined by Euclidean distance and carries
// native 2D logic.
package filter
