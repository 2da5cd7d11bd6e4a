package phase

import (
	"math/rand"
	"testing"
)

var lengths = []int{1, 2, 8, 64, 1024, 1 << 16}

func TestSplitBits(t *testing.T) {
	for _, n := range lengths {
		ib, fb := IndexBits(n), FractionBits(n)
		if 1<<ib != n {
			t.Errorf("IndexBits(%d) = %d, want log2", n, ib)
		}
		if ib+fb != Width {
			t.Errorf("IndexBits(%d)+FractionBits(%d) = %d, want %d", n, n, ib+fb, Width)
		}
	}
}

func TestIndexBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range lengths {
		for i := 0; i < 1000; i++ {
			p := Phase(rng.Uint64())
			if got := Index(n, p); got < 0 || got >= n {
				t.Fatalf("Index(%d, %#x) = %d, out of range", n, p, got)
			}
		}
	}
}

func TestEndpoints(t *testing.T) {
	for _, n := range lengths {
		if got := Index(n, 0); got != 0 {
			t.Errorf("Index(%d, 0) = %d, want 0", n, got)
		}
		if got := Fraction[float64](n, 0); got != 0 {
			t.Errorf("Fraction(%d, 0) = %v, want 0", n, got)
		}
		if got := Index(n, Max); got != n-1 {
			t.Errorf("Index(%d, Max) = %d, want %d", n, got, n-1)
		}
		if got := Fraction[float64](n, Max); got != 1 {
			t.Errorf("Fraction(%d, Max) = %v, want 1", n, got)
		}
	}
}

// TestSlotBoundaries checks that a phase with all fraction bits clear sits
// exactly on its slot.
func TestSlotBoundaries(t *testing.T) {
	const n = 64
	fb := FractionBits(n)
	for i := 0; i < n; i++ {
		p := Phase(i) << fb
		if got := Index(n, p); got != i {
			t.Errorf("Index(%d, slot %d) = %d", n, i, got)
		}
		if got := Fraction[float32](n, p); got != 0 {
			t.Errorf("Fraction(%d, slot %d) = %v, want 0", n, i, got)
		}
	}
}

func TestFractionMonotonic(t *testing.T) {
	const n = 8
	fb := FractionBits(n)
	prev := Fraction[float64](n, 0)
	// Step through one slot coarsely; the fraction must never decrease and
	// must end at 1.
	step := Phase(1) << (fb - 16)
	for p := step; p>>fb == 0; p += step {
		f := Fraction[float64](n, p)
		if f < prev {
			t.Fatalf("Fraction(%d, %#x) = %v < %v", n, p, f, prev)
		}
		prev = f
	}
}

func TestIndexBitsPanics(t *testing.T) {
	for _, n := range []int{-4, 0, 3, 48, 1000} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("IndexBits(%d) did not panic", n)
				}
			}()
			IndexBits(n)
		}()
	}
}
