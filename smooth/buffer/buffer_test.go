package buffer

import "testing"

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1, -10} {
		if _, err := New(capacity); err == nil {
			t.Fatalf("New(%d) expected error", capacity)
		}
	}
}

func TestPushPartialFill(t *testing.T) {
	w, err := New(3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for i, x := range []float64{1, 2} {
		old, evicted := w.Push(x)
		if evicted {
			t.Fatalf("push %d: unexpected eviction of %v", i, old)
		}
	}

	if got := w.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := w.Cap(); got != 3 {
		t.Fatalf("Cap() = %d, want 3", got)
	}

	want := []float64{1, 2}
	got := w.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPushEvictsOldestFIFO(t *testing.T) {
	w, err := New(3)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, x := range []float64{1, 2, 3} {
		w.Push(x)
	}

	old, evicted := w.Push(4)
	if !evicted {
		t.Fatal("Push() expected eviction on full window")
	}
	if old != 1 {
		t.Fatalf("evicted = %v, want 1", old)
	}

	want := []float64{2, 3, 4}
	got := w.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := w.Latest(); got != 4 {
		t.Fatalf("Latest() = %v, want 4", got)
	}
}

func TestValuesIsViewNotCopy(t *testing.T) {
	w, err := New(4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w.Push(1)
	w.Push(2)

	a := w.Values()
	b := w.Values()
	if &a[0] != &b[0] {
		t.Fatal("Values() should return a view into the same backing storage")
	}
}

func TestLatestEmptyWindow(t *testing.T) {
	w, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := w.Latest(); got != 0 {
		t.Fatalf("Latest() on empty window = %v, want 0", got)
	}
}

func TestReset(t *testing.T) {
	w, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w.Push(5)
	w.Push(6)
	w.Reset()

	if got := w.Len(); got != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", got)
	}
	if got := w.Cap(); got != 2 {
		t.Fatalf("Cap() after Reset = %d, want 2", got)
	}

	old, evicted := w.Push(7)
	if evicted {
		t.Fatalf("Push() after Reset evicted %v from empty window", old)
	}
}

func BenchmarkPushFullWindow(b *testing.B) {
	w, err := New(64)
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	for i := 0; i < 64; i++ {
		w.Push(float64(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Push(float64(i))
	}
}
