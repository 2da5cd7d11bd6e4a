package osc

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pfcm/phasor/phase"
)

func TestSawEndpoints(t *testing.T) {
	for _, c := range []struct {
		p    phase.Phase
		want float32
	}{
		{0, -1},
		{phase.Max, 1},
		{phase.Max >> 2, -0.5},
		{phase.Max - phase.Max>>2, 0.5},
		{1 << (phase.Width - 1), 0},
	} {
		if got := Saw(c.p); got != c.want {
			t.Errorf("Saw(%#x) = %v, want: %v", c.p, got, c.want)
		}
	}
}

func TestSawMonotonic(t *testing.T) {
	// Step coarsely through the whole domain; the ramp must never dip.
	step := phase.Max / 4096
	prev := Saw(0)
	for k := phase.Phase(1); k < 4096; k++ {
		p := k * step
		got := Saw(p)
		if got <= prev {
			t.Fatalf("Saw(%#x) = %v, not above %v", p, got, prev)
		}
		prev = got
	}
}

func TestSawDownMirrors(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		p := phase.Phase(rng.Uint64())
		if s := Saw(p) + SawDown(p); s > 1e-5 || s < -1e-5 {
			t.Fatalf("Saw(%#x)+SawDown(%#x) = %v, want 0", p, p, s)
		}
	}
}

func TestPulseMidpoint(t *testing.T) {
	mid := phase.Phase(1) << (phase.Width - 1)
	for _, c := range []struct {
		p    phase.Phase
		want float32
	}{
		{0, -1},
		{mid - 1, -1},
		{mid, 1}, // the boundary itself is high
		{mid + 1, 1},
		{phase.Max, 1},
	} {
		if got := Pulse(c.p, 0.5); got != c.want {
			t.Errorf("Pulse(%#x, 0.5) = %v, want: %v", c.p, got, c.want)
		}
		if got := Square(c.p); got != c.want {
			t.Errorf("Square(%#x) = %v, want: %v", c.p, got, c.want)
		}
	}
}

func TestPulseWidths(t *testing.T) {
	quarter := phase.Phase(1) << (phase.Width - 2)
	for _, c := range []struct {
		p     phase.Phase
		width float64
		want  float32
	}{
		{quarter - 1, 0.25, -1},
		{quarter, 0.25, 1},
		{quarter, 0.75, -1},
		{3 * quarter, 0.75, 1},
		// Zero width is always high; width 1 clamps to the very top
		// phase, which still reads high.
		{0, 0, 1},
		{phase.Max, 1, 1},
		{phase.Max - 1, 1, -1},
	} {
		if got := Pulse(c.p, c.width); got != c.want {
			t.Errorf("Pulse(%#x, %v) = %v, want: %v", c.p, c.width, got, c.want)
		}
	}
}

func TestTriangleShape(t *testing.T) {
	mid := phase.Phase(1) << (phase.Width - 1)
	for _, c := range []struct {
		p    phase.Phase
		want float64
	}{
		{0, -1},
		{mid / 2, 0},
		{mid, 1},
		{mid + mid/2, 0},
		{phase.Max, -1},
	} {
		if got := float64(Triangle(c.p)); math.Abs(got-c.want) > 1e-6 {
			t.Errorf("Triangle(%#x) = %v, want about %v", c.p, got, c.want)
		}
	}
}

// TestTriangleWraps checks continuity where the phase overflows: the last
// value of one cycle has to sit next to the first value of the next.
func TestTriangleWraps(t *testing.T) {
	// One step moves the value by at most 4/4096: the triangle covers 4
	// units of output per cycle.
	step := phase.Max / 4096
	a := Triangle(phase.Max - step)
	b := Triangle(0)
	if d := math.Abs(float64(a - b)); d > 4.5/4096 {
		t.Errorf("Triangle jumps across the wrap: %v -> %v", a, b)
	}
	// And at the peak.
	mid := phase.Phase(1) << (phase.Width - 1)
	a = Triangle(mid - step)
	b = Triangle(mid + step)
	if d := math.Abs(float64(a - b)); d > 4.5/4096 {
		t.Errorf("Triangle jumps across the peak: %v -> %v", a, b)
	}
}

// TestTriangleSlopeMirror checks that slopes s and 1-s are mirror images of
// each other across the middle of the cycle.
func TestTriangleSlopeMirror(t *testing.T) {
	for _, s := range []float64{0.25, 0.1, 0.5} {
		for i := 0; i < 1000; i++ {
			p := phase.Max / 1000 * phase.Phase(i)
			a := float64(TriangleSlope(p, s))
			b := float64(TriangleSlope(phase.Max-p, 1-s))
			if math.Abs(a-b) > 1e-4 {
				t.Fatalf("TriangleSlope(%#x, %v) = %v but mirror is %v", p, s, a, b)
			}
		}
	}
}

func TestTriangleSlopeShape(t *testing.T) {
	pivot := phase.Phase(0.25 * (1 << 16) * (1 << (phase.Width - 16)))
	for _, c := range []struct {
		p    phase.Phase
		want float64
	}{
		{0, -1},
		{pivot / 2, 0},
		{pivot, 1},
		{phase.Max, -1},
	} {
		if got := float64(TriangleSlope(c.p, 0.25)); math.Abs(got-c.want) > 1e-4 {
			t.Errorf("TriangleSlope(%#x, 0.25) = %v, want about %v", c.p, got, c.want)
		}
	}
}

func TestGenTicks(t *testing.T) {
	// A delta of a quarter cycle hits the exact quarter phases.
	g := NewSaw(1 << (phase.Width - 2))
	out := [][]float32{make([]float32, 8)}
	g.Tick(nil, out)
	want := []float32{-1, -0.5, 0, 0.5, -1, -0.5, 0, 0.5}
	for i, w := range want {
		if out[0][i] != w {
			t.Errorf("saw tick %d = %v, want %v", i, out[0][i], w)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	l := Noise()
	out := [][]float32{make([]float32, 4096)}
	l.Tick(nil, out)
	var nonzero bool
	for i, s := range out[0] {
		if s < -1 || s >= 1 {
			t.Fatalf("noise sample %d = %v, out of range", i, s)
		}
		if s != 0 {
			nonzero = true
		}
	}
	if !nonzero {
		t.Error("noise was silent")
	}
}
