package testutil

import (
	"math"
	"math/rand"
)

// NoisySine generates a deterministic sine wave with seeded additive noise,
// the canonical input for smoothing tests.
func NoisySine(freqHz, sampleRate, amplitude, noiseAmplitude float64, seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude*math.Sin(step*float64(i)) + (rng.Float64()*2-1)*noiseAmplitude
	}
	return out
}

// Step generates a signal that holds low until pos, then holds high. Useful
// for checking lag and deadband behavior.
func Step(low, high float64, pos, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < pos {
			out[i] = low
		} else {
			out[i] = high
		}
	}
	return out
}

// Ramp generates a linearly increasing signal from start with the given
// per-sample increment.
func Ramp(start, increment float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + increment*float64(i)
	}
	return out
}

// Jitter generates a constant value perturbed by seeded noise, modeling a
// fixated gaze point with sensor jitter.
func Jitter(center, amplitude float64, seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = center + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
