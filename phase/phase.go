// package phase splits fixed-point phase accumulators into table indices and
// interpolation fractions.
package phase

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Phase is a position within one waveform cycle, represented as a fixed-point
// fraction of the full range of a native-width unsigned integer. Advancing a
// Phase past the end of the cycle wraps by natural unsigned overflow; nothing
// here ever guards against it, and nothing should.
type Phase uint

// Width is the number of bits in a Phase.
const Width = bits.UintSize

// Max is the largest Phase, one increment short of a whole cycle.
const Max = ^Phase(0)

// IndexBits returns how many of the most significant bits of a Phase form the
// index into a table of length n. It panics unless n is a positive power of
// two.
func IndexBits(n int) int {
	checkPow2(n)
	return bits.TrailingZeros(uint(n))
}

// FractionBits returns how many of the least significant bits of a Phase form
// the interpolation fraction for a table of length n. Using the entire
// remaining width is far more precision than any interpolator needs, but it
// means phase drift stays negligible over days of accumulation and it costs
// nothing.
func FractionBits(n int) int {
	return Width - IndexBits(n)
}

// Index returns the table index selected by p for a table of length n. The
// index is the top IndexBits(n) bits read directly, so it is always in [0, n)
// with no modulo.
func Index(n int, p Phase) int {
	return int(p >> FractionBits(n))
}

// Fraction returns how far p sits between Index(n, p) and the next slot, as a
// float in [0, 1].
func Fraction[T constraints.Float](n int, p Phase) T {
	mask := Max >> IndexBits(n)
	return T(p&mask) * (1 / T(mask))
}

func checkPow2(n int) {
	if n <= 0 || n&(n-1) != 0 {
		panic(fmt.Errorf("table length %d is not a power of two", n))
	}
}
