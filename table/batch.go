package table

import (
	"fmt"
	"sync"

	"github.com/pfcm/phasor/phase"
)

// batchWidth is how many phases the unrolled path consumes per aligned group:
// two 8-wide lanes.
const batchWidth = 16

// HermBatch computes Herm for every phase in phases, writing the results to
// dst. It panics if dst and phases differ in length. Aligned groups of 16
// phases go through the unrolled lane path; the tail beyond the last full
// group always falls back to the scalar kernel, so any batch length is
// accepted. The wrap policy is the same index masking the scalar kernel uses,
// so the two paths agree at the table boundaries.
func (t *Table) HermBatch(dst []float32, phases []phase.Phase) {
	if len(dst) != len(phases) {
		panic(fmt.Errorf("output length %d does not match input length %d", len(dst), len(phases)))
	}
	hermLanes(t, dst, phases)
}

// hermSimple is the scalar reference: one Herm call per phase. Everything
// else is checked against it.
func hermSimple(t *Table, dst []float32, phases []phase.Phase) {
	for i, p := range phases {
		dst[i] = t.Herm(p)
	}
}

// hermLanes runs the aligned groups through herm8 and hands the tail to the
// scalar kernel.
func hermLanes(t *Table, dst []float32, phases []phase.Phase) {
	n := len(phases) &^ (batchWidth - 1)
	for i := 0; i < n; i += batchWidth {
		herm8(t, dst[i:i+8:i+8], phases[i:i+8:i+8])
		herm8(t, dst[i+8:i+16:i+16], phases[i+8:i+16:i+16])
	}
	hermSimple(t, dst[n:], phases[n:])
}

// herm8 is one lane: split all eight phases, gather the 32 neighbours, then
// run the polynomial in lockstep. The stages are kept separate so each one
// works on whole registers' worth of independent values.
func herm8(t *Table, dst []float32, phases []phase.Phase) {
	_ = dst[7]
	_ = phases[7]
	var (
		idx  [8]int
		frac [8]float32
	)
	for l := 0; l < 8; l++ {
		p := phases[l]
		idx[l] = int(p >> t.shift)
		frac[l] = float32(p&t.fmask) * t.fscale
	}
	var xm1, x0, x1, x2 [8]float32
	for l := 0; l < 8; l++ {
		i := idx[l]
		xm1[l] = t.data[(i-1)&t.mask]
		x0[l] = t.data[i]
		x1[l] = t.data[(i+1)&t.mask]
		x2[l] = t.data[(i+2)&t.mask]
	}
	for l := 0; l < 8; l++ {
		c := (x1[l] - xm1[l]) * 0.5
		v := x0[l] - x1[l]
		w := c + v
		a := w + v + (x2[l]-x0[l])*0.5
		b := w + a
		f := frac[l]
		dst[l] = ((a*f-b)*f+c)*f + x0[l]
	}
}

// hermChunks fans a large batch out over goroutines. Chunks write to disjoint
// output slots and share only the immutable table, so they can run in any
// order.
func hermChunks(t *Table, dst []float32, phases []phase.Phase) {
	const chunk = 4096
	if len(phases) <= chunk {
		hermLanes(t, dst, phases)
		return
	}
	var wg sync.WaitGroup
	for i := 0; i < len(phases); i += chunk {
		n := min(len(phases)-i, chunk)
		wg.Add(1)
		go func(dst []float32, phases []phase.Phase) {
			defer wg.Done()
			hermLanes(t, dst, phases)
		}(dst[i:i+n], phases[i:i+n])
	}
	wg.Wait()
}
