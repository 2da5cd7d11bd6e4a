// package table provides wavetables and lookup kernels over them.
package table

import (
	"fmt"
	"math"

	"github.com/pfcm/phasor/interp"
	"github.com/pfcm/phasor/phase"
)

// Table holds one cycle of a waveform, sampled at a power-of-two number of
// slots. The samples are fixed after construction, so any number of
// goroutines may run the lookup kernels concurrently with no synchronisation;
// the only obligation is that the Table outlives them.
//
// The bit split of incoming phases is derived once here, so the kernels never
// recompute it.
type Table struct {
	data   []float32
	mask   int
	shift  int         // phase.FractionBits(len(data))
	fmask  phase.Phase // low bits of a phase holding the fraction
	fscale float32     // 1/fmask
}

// New allocates an all-zero Table with n slots. It panics unless n is a
// positive power of two.
func New(n int) *Table {
	return FromSlice(make([]float32, n))
}

// FromSlice makes a Table that borrows data. The caller must not write to
// data again while anything can still sample the Table. Panics unless the
// length is a positive power of two.
func FromSlice(data []float32) *Table {
	n := len(data)
	fmask := phase.Max >> phase.IndexBits(n)
	return &Table{
		data:   data,
		mask:   n - 1,
		shift:  phase.FractionBits(n),
		fmask:  fmask,
		fscale: 1 / float32(fmask),
	}
}

// Len returns the number of slots.
func (t *Table) Len() int { return len(t.data) }

// FillSine writes one cycle of a sine wave into dst: sample i is
// sin(2π·i/len).
func FillSine(dst []float32) {
	step := 2 * math.Pi / float64(len(dst))
	for i := range dst {
		dst[i] = float32(math.Sin(step * float64(i)))
	}
}

// NewSine returns an n-slot Table holding one sine cycle. It is a fixture for
// tests and quick patches; band-limited fills belong to the caller.
func NewSine(n int) *Table {
	t := New(n)
	FillSine(t.data)
	return t
}

// Near returns the slot under p, with no interpolation. Exact, and cheap, but
// discontinuous between slots.
func (t *Table) Near(p phase.Phase) float32 {
	return t.data[int(p>>t.shift)]
}

// Lin linearly interpolates between the slot under p and its successor. The
// &mask brings the successor back to slot 0 at the end of the table.
func (t *Table) Lin(p phase.Phase) float32 {
	i := int(p >> t.shift)
	f := float32(p&t.fmask) * t.fscale
	return interp.L(t.data[i], t.data[(i+1)&t.mask], f)
}

// Herm runs 4-point Hermite interpolation around p. All four neighbours are
// masked: i-1 underflows to all-ones at slot 0 and the mask turns that into
// the top slot, so the wrap costs the same as any other read.
func (t *Table) Herm(p phase.Phase) float32 {
	i := int(p >> t.shift)
	f := float32(p&t.fmask) * t.fscale
	return interp.Hermite(
		t.data[(i-1)&t.mask],
		t.data[i],
		t.data[(i+1)&t.mask],
		t.data[(i+2)&t.mask],
		f,
	)
}

func (t *Table) String() string {
	return fmt.Sprintf("table.Table(%d)", len(t.data))
}
