// play renders a small demo patch to the default audio device.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pfcm/phasor"
	"github.com/pfcm/phasor/env"
	"github.com/pfcm/phasor/io"
	"github.com/pfcm/phasor/osc"
	"github.com/pfcm/phasor/phase"
	"github.com/pfcm/phasor/table"
)

var (
	profileFlag = flag.Bool("profile", false, "whether to write pprof profiles to the current working directory")
	writeFlag   = flag.Bool("write", false, "if true, writes the output to a wav file in the current directory")
)

const samplerate = 44100

// delta converts a frequency to a per-sample phase increment. This belongs to
// us, not the library: oscillators only ever see increments.
func delta(freq float64) phase.Phase {
	return phase.Phase(freq / samplerate * (1 << phase.Width))
}

// voices builds the demo patch: three detuned saws an octave below a
// wavetable sine, with a long envelope over the top.
func voices() phasor.Ticker {
	sine := table.NewSine(2048)
	return phasor.Serially(
		phasor.Concurrently(
			phasor.Serially(
				phasor.Concurrently(
					osc.NewSaw(delta(110)),
					osc.NewSaw(delta(110*1.007)),
					osc.NewSaw(delta(110/1.007)),
					osc.NewWavetable(sine, delta(220), osc.Hermite),
				),
				phasor.Mix(0.25, 0.25, 0.25, 0.5),
			),
			phasor.Serially(
				phasor.Once(1),
				env.AttackDecay(2*time.Second, 4*time.Second, samplerate),
			),
		),
		phasor.Amp{},
	)
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *profileFlag {
		f, err := os.Create("cpu.prof")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	filename := ""
	if *writeFlag {
		filename = "phasor.wav"
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return io.PlayWithDefaults(ctx, voices(), samplerate, filename)
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	if *profileFlag {
		f, err := os.Create("mem.prof")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}
