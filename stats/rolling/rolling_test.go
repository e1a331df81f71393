package rolling

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3}, 3},
		{"uniform", []float64{2, 2, 2, 2}, 2},
		{"mixed", []float64{1, 2, 3, 4}, 2.5},
		{"negative", []float64{-1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.xs); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Mean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoments(t *testing.T) {
	mean, variance := Moments([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(mean-5) > 1e-12 {
		t.Fatalf("mean = %v, want 5", mean)
	}
	if math.Abs(variance-4) > 1e-12 {
		t.Fatalf("variance = %v, want 4", variance)
	}
}

func TestMomentsEmpty(t *testing.T) {
	mean, variance := Moments(nil)
	if mean != 0 || variance != 0 {
		t.Fatalf("Moments(nil) = (%v, %v), want (0, 0)", mean, variance)
	}
}

func TestStdDev(t *testing.T) {
	got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2) > 1e-12 {
		t.Fatalf("StdDev() = %v, want 2", got)
	}
}

func TestMedianInPlace(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"single", []float64{7}, 7},
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"duplicates", []float64{5, 5, 1}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MedianInPlace(tt.xs); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("MedianInPlace() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccumulatorMatchesMoments(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	var acc Accumulator
	for _, x := range xs {
		acc.Add(x)
	}

	mean, variance := Moments(xs)
	if math.Abs(acc.Mean()-mean) > 1e-12 {
		t.Fatalf("Accumulator mean = %v, Moments mean = %v", acc.Mean(), mean)
	}
	if math.Abs(acc.Variance()-variance) > 1e-12 {
		t.Fatalf("Accumulator variance = %v, Moments variance = %v", acc.Variance(), variance)
	}
	if acc.Count() != len(xs) {
		t.Fatalf("Count() = %d, want %d", acc.Count(), len(xs))
	}
}

func TestAccumulatorReset(t *testing.T) {
	var acc Accumulator
	acc.Add(10)
	acc.Add(20)
	acc.Reset()

	if acc.Count() != 0 || acc.Mean() != 0 || acc.Variance() != 0 {
		t.Fatalf("Reset() left state: count=%d mean=%v variance=%v",
			acc.Count(), acc.Mean(), acc.Variance())
	}
}
