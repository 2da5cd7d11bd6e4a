package osc

import (
	"fmt"

	"github.com/pfcm/phasor"
	"github.com/pfcm/phasor/phase"
	"github.com/pfcm/phasor/table"
)

// Quality picks the lookup kernel a Wavetable voice reads with.
type Quality int

const (
	// Nearest reads the slot under the phase directly.
	Nearest Quality = iota
	// Linear interpolates between two slots.
	Linear
	// Hermite interpolates between four slots, through the batch kernel.
	Hermite
)

// Wavetable is a Ticker that reads a shared table through a phase
// accumulator. It owns nothing but the phase: the table may be shared with
// any number of other voices, and the caller owns the frequency maths — Delta
// is the phase increment per sample, already converted from frequency and
// sample rate.
type Wavetable struct {
	tab     *table.Table
	p       phase.Phase
	Delta   phase.Phase
	Q       Quality
	scratch []phase.Phase
}

var _ phasor.Ticker = (*Wavetable)(nil)

// NewWavetable makes a voice reading tab, advancing by delta every sample.
func NewWavetable(tab *table.Table, delta phase.Phase, q Quality) *Wavetable {
	return &Wavetable{tab: tab, Delta: delta, Q: q}
}

func (w *Wavetable) Inputs() int  { return 0 }
func (w *Wavetable) Outputs() int { return 1 }
func (w *Wavetable) String() string {
	return fmt.Sprintf("osc.Wavetable(%d,%d)", w.tab.Len(), w.Q)
}

func (w *Wavetable) Tick(_, out [][]float32) {
	o := out[0]
	switch w.Q {
	case Nearest:
		for i := range o {
			o[i] = w.tab.Near(w.p)
			w.p += w.Delta
		}
	case Linear:
		for i := range o {
			o[i] = w.tab.Lin(w.p)
			w.p += w.Delta
		}
	case Hermite:
		if cap(w.scratch) < len(o) {
			w.scratch = make([]phase.Phase, len(o))
		}
		ps := w.scratch[:len(o)]
		for i := range ps {
			ps[i] = w.p
			w.p += w.Delta
		}
		w.tab.HermBatch(o, ps)
	}
}

// Gen is a Ticker that drives a closed-form generator with a phase
// accumulator.
type Gen struct {
	f     func(phase.Phase) float32
	p     phase.Phase
	Delta phase.Phase
	name  string
}

var _ phasor.Ticker = (*Gen)(nil)

// NewSaw makes a rising sawtooth voice.
func NewSaw(delta phase.Phase) *Gen {
	return &Gen{f: Saw, Delta: delta, name: "Saw"}
}

// NewSawDown makes a falling sawtooth voice.
func NewSawDown(delta phase.Phase) *Gen {
	return &Gen{f: SawDown, Delta: delta, name: "SawDown"}
}

// NewTriangle makes a symmetric triangle voice.
func NewTriangle(delta phase.Phase) *Gen {
	return &Gen{f: Triangle, Delta: delta, name: "Triangle"}
}

// NewPulse makes a pulse voice with a fixed duty cycle.
func NewPulse(delta phase.Phase, width float64) *Gen {
	return &Gen{
		f:     func(p phase.Phase) float32 { return Pulse(p, width) },
		Delta: delta,
		name:  fmt.Sprintf("Pulse(%.2f)", width),
	}
}

func (g *Gen) Inputs() int    { return 0 }
func (g *Gen) Outputs() int   { return 1 }
func (g *Gen) String() string { return fmt.Sprintf("osc.%s", g.name) }

func (g *Gen) Tick(_, out [][]float32) {
	for i := range out[0] {
		out[0][i] = g.f(g.p)
		g.p += g.Delta
	}
}

// LFSR is a ticker that uses a 16 bit linear-feedback shift register to make
// noise.
type LFSR struct {
	state uint16
	taps  uint16
}

const defaultTaps uint16 = 0xd008

// Noise returns an LFSR with taps that give a maximal-length sequence.
func Noise() *LFSR {
	return &LFSR{
		state: 0xffff,
		taps:  defaultTaps,
	}
}

func (*LFSR) Inputs() int      { return 0 }
func (*LFSR) Outputs() int     { return 1 }
func (l *LFSR) String() string { return fmt.Sprintf("LFSR(%2x)", l.taps) }

func (l *LFSR) Tick(_, out [][]float32) {
	for i := range out[0] {
		fb := l.state & 1
		l.state >>= 1
		if fb == 1 {
			l.state ^= l.taps
		}
		out[0][i] = float32(int16(l.state)) * (1.0 / (1 << 15))
	}
}
