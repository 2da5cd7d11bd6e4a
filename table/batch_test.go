package table

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/pfcm/phasor/phase"
)

var sizes = []int{1, 8, 16, 53, 256, 1009, 100000}

var hermBatches = []struct {
	name string
	f    func(*Table, []float32, []phase.Phase)
}{
	{"simple", hermSimple},
	{"_lanes", hermLanes},
	{"chunks", hermChunks},
}

func TestHermBatch(t *testing.T) {
	tab := NewSine(256)
	approx := cmpopts.EquateApprox(0, 1e-6)
	for _, size := range sizes {
		phases := randPhases(size)
		want := make([]float32, size)
		hermSimple(tab, want, phases)
		for _, f := range hermBatches {
			if f.name == "simple" {
				continue
			}
			t.Run(fmt.Sprintf("%s/%d", f.name, size), func(t *testing.T) {
				got := make([]float32, size)
				f.f(tab, got, phases)
				if diff := cmp.Diff(got, want, approx); diff != "" {
					t.Errorf("unexpected diff (-got,+want):\n%v", diff)
				}
			})
		}
	}
}

// TestHermBatchIdentical feeds one repeated phase through the batch path: all
// the outputs have to match the scalar kernel for that phase.
func TestHermBatchIdentical(t *testing.T) {
	tab := NewSine(64)
	for _, p := range []phase.Phase{0, phase.Max / 3, phase.Max} {
		phases := make([]phase.Phase, 48)
		for i := range phases {
			phases[i] = p
		}
		out := make([]float32, len(phases))
		tab.HermBatch(out, phases)
		want := tab.Herm(p)
		for i, got := range out {
			if d := got - want; d > 1e-6 || d < -1e-6 {
				t.Fatalf("HermBatch[%d](%#x) = %v, want %v", i, p, got, want)
			}
		}
	}
}

// TestHermBatchBoundaries drives the batch path at the table seams, where the
// masked wrap has to agree with the scalar kernel.
func TestHermBatchBoundaries(t *testing.T) {
	tab := NewSine(64)
	fb := phase.FractionBits(tab.Len())
	var phases []phase.Phase
	for i := 0; i < 16; i++ {
		phases = append(phases, phase.Phase(i)<<fb)
		phases = append(phases, phase.Max-phase.Phase(i))
	}
	got := make([]float32, len(phases))
	tab.HermBatch(got, phases)
	for i, p := range phases {
		want := tab.Herm(p)
		if d := got[i] - want; d > 1e-6 || d < -1e-6 {
			t.Errorf("HermBatch(%#x) = %v, scalar = %v", p, got[i], want)
		}
	}
}

func TestHermBatchLengthMismatch(t *testing.T) {
	tab := NewSine(64)
	defer func() {
		if recover() == nil {
			t.Error("HermBatch with mismatched lengths did not panic")
		}
	}()
	tab.HermBatch(make([]float32, 3), make([]phase.Phase, 4))
}

func BenchmarkHermBatch(b *testing.B) {
	tab := NewSine(2048)
	for _, size := range sizes {
		phases := randPhases(size)
		out := make([]float32, size)
		b.Run(fmt.Sprintf("%6d", size), func(b *testing.B) {
			for _, f := range hermBatches {
				b.Run(f.name, func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						f.f(tab, out, phases)
					}
				})
			}
		})
	}
}

func randPhases(n int) []phase.Phase {
	rng := rand.New(rand.NewSource(int64(n)))
	out := make([]phase.Phase, n)
	for i := range out {
		out[i] = phase.Phase(rng.Uint64())
	}
	return out
}
