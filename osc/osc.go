// package osc provides oscillators: closed-form generators computed straight
// from a phase accumulator, and block voices that drive them.
package osc

import (
	"math"
	"math/bits"

	"github.com/pfcm/phasor/phase"
)

// twoOverRange maps the full phase range onto a span of 2. It is an untyped
// constant so (1 << phase.Width) doesn't overflow anything.
const twoOverRange = 2.0 / (1 << phase.Width)

// Saw maps p linearly onto [-1, 1]: one rising ramp per cycle with an instant
// wrap at phase overflow. Saw(0) is exactly -1 and Saw(phase.Max) exactly 1.
func Saw(p phase.Phase) float32 {
	return float32(float64(p)*twoOverRange - 1)
}

// SawDown is Saw reversed in time; Saw and SawDown sum to (approximately)
// zero everywhere.
func SawDown(p phase.Phase) float32 {
	return float32(1 - float64(p)*twoOverRange)
}

// Pulse is a square wave with duty cycle width in [0, 1]: -1 while the
// normalised phase is below width, +1 at and above. Out-of-range widths are
// clamped rather than rejected. The threshold is computed once per call, and
// the common widths 0.5 and 0.25 skip the float conversion entirely.
func Pulse(p phase.Phase, width float64) float32 {
	var pivot phase.Phase
	switch {
	case width == 0.5:
		pivot = 1 << (phase.Width - 1)
	case width == 0.25:
		pivot = 1 << (phase.Width - 2)
	case width <= 0:
		pivot = 0
	case width >= 1:
		pivot = phase.Max
	default:
		pivot = phase.Phase(width * (1 << phase.Width))
	}
	return below(p, pivot)
}

// Square is Pulse at a 50% duty cycle.
func Square(p phase.Phase) float32 {
	return below(p, 1<<(phase.Width-1))
}

// below is -1 when p < pivot and +1 otherwise. The borrow out of the
// subtraction stands in for the comparison, so there is no branch on p.
func below(p, pivot phase.Phase) float32 {
	_, borrow := bits.Sub(uint(p), uint(pivot), 0)
	return float32(1 - 2*int(borrow))
}

// Triangle folds the phase at the midpoint of the cycle: a ramp up over the
// first half and back down over the second. The fold comes from XORing with
// an arithmetic-shift mask of the top bit (all ones in the second half, all
// zeros in the first), so there is no branch. The value at phase.Max lands
// next to the value at 0, keeping the wrap continuous.
func Triangle(p phase.Phase) float32 {
	m := phase.Phase(int(p) >> (phase.Width - 1))
	return float32(float64(p^m)*(2*twoOverRange) - 1)
}

// minSlope keeps both segments of TriangleSlope non-empty; slopes are clamped
// into [minSlope, 1-minSlope].
const minSlope = 1.0 / (1 << 16)

// TriangleSlope is an asymmetric Triangle: the rising segment occupies slope
// of the cycle and the fall the remainder. Both ramps are computed every
// call; a bitmask built from the p >= pivot borrow selects one, so the cost
// per sample is constant.
func TriangleSlope(p phase.Phase, slope float64) float32 {
	if slope < minSlope {
		slope = minSlope
	} else if slope > 1-minSlope {
		slope = 1 - minSlope
	}
	pivot := phase.Phase(slope * (1 << phase.Width))
	up := float32(float64(p)/float64(pivot)*2 - 1)
	down := float32(1 - float64(p-pivot)/(float64(phase.Max-pivot)+1)*2)
	_, borrow := bits.Sub(uint(p), uint(pivot), 0) // 1 when p < pivot
	m := uint32(borrow) - 1                        // all ones when p >= pivot
	sel := math.Float32bits(up)&^m | math.Float32bits(down)&m
	return math.Float32frombits(sel)
}
