package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestExponentialMovingAverageSeedLaw(t *testing.T) {
	f, err := NewExponentialMovingAverage1D(0.2)
	if err != nil {
		t.Fatalf("NewExponentialMovingAverage1D() error = %v", err)
	}

	if got := f.Update(42.5); got != 42.5 {
		t.Fatalf("first output = %v, want the seeding sample exactly", got)
	}
}

func TestExponentialMovingAverageZeroSeedsCorrectly(t *testing.T) {
	f, err := NewExponentialMovingAverage1D(0.2)
	if err != nil {
		t.Fatalf("NewExponentialMovingAverage1D() error = %v", err)
	}

	if got := f.Update(0); got != 0 {
		t.Fatalf("first output = %v, want 0", got)
	}

	// A zero first sample must seed the state: the second output blends with
	// the zero seed, it does not re-seed with the new sample.
	got := f.Update(10)
	testutil.RequireNearlyEqual(t, got, 0.2*10, 1e-12)
}

func TestExponentialMovingAverageRecursion(t *testing.T) {
	const alpha = 0.5
	f, err := NewExponentialMovingAverage1D(alpha)
	if err != nil {
		t.Fatalf("NewExponentialMovingAverage1D() error = %v", err)
	}

	inputs := []float64{4, 8, 2}
	state := inputs[0]
	if got := f.Update(inputs[0]); got != state {
		t.Fatalf("seed output = %v, want %v", got, state)
	}
	for _, x := range inputs[1:] {
		state = alpha*x + (1-alpha)*state
		testutil.RequireNearlyEqual(t, f.Update(x), state, 1e-12)
	}
}

func TestExponentialMovingAverageAlphaOneTracksInput(t *testing.T) {
	f, err := NewExponentialMovingAverage1D(1)
	if err != nil {
		t.Fatalf("NewExponentialMovingAverage1D(1) error = %v", err)
	}

	for _, x := range []float64{3, -1, 7.5, 0} {
		if got := f.Update(x); got != x {
			t.Fatalf("Update(%v) = %v, want input with alpha=1", x, got)
		}
	}
}

func TestExponentialMovingAverageReset(t *testing.T) {
	f, err := NewExponentialMovingAverage1D(0.3)
	if err != nil {
		t.Fatalf("NewExponentialMovingAverage1D() error = %v", err)
	}

	f.Update(5)
	f.Update(9)
	f.Reset()

	if got := f.Update(-2); got != -2 {
		t.Fatalf("first output after Reset = %v, want seeding sample", got)
	}
}

func TestExponentialMovingAverageValidation(t *testing.T) {
	for _, alpha := range []float64{0, -0.1, 1.5, 2} {
		if _, err := NewExponentialMovingAverage1D(alpha); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("NewExponentialMovingAverage1D(%v) error = %v, want ErrInvalidConfig", alpha, err)
		}
	}
}
