// package io does audio output.
package io

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/gen2brain/malgo"

	"github.com/pfcm/phasor"
	"github.com/pfcm/phasor/internal/buffer"
)

// PlayWithDefaults renders t to the default output device until the provided
// context is cancelled. t must have no inputs. If filename is not "", the
// output is also written as a wav file with that name.
func PlayWithDefaults(ctx context.Context, t phasor.Ticker, samplerate int, filename string) error {
	if t.Inputs() != 0 {
		return fmt.Errorf("%v wants %d inputs, can only play generators", t, t.Inputs())
	}
	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(msg string) {
		fmt.Fprint(os.Stderr, msg)
	})
	if err != nil {
		return err
	}
	defer func() {
		mctx.Uninit()
		mctx.Free()
	}()
	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = uint32(t.Outputs())
	cfg.SampleRate = uint32(samplerate)

	outputs := buffer.Blocks(t.Outputs(), buffer.BlockSize)

	var w *wavWriter
	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		w, err = newWavWriter(f, t.Outputs(), samplerate)
		if err != nil {
			return err
		}
		defer w.close()
	}

	recv := func(out, _ []byte, framecount uint32) {
		n := int(framecount)
		if n == 0 {
			return
		}
		if n > buffer.BlockSize {
			n = buffer.BlockSize
		}
		outs := outputs
		for i := range outs {
			outs[i] = outs[i][:n]
		}
		t.Tick(nil, outs)
		// interleave the samples into the device buffer.
		chans := len(outs)
		for i := 0; i < n; i++ {
			for c := 0; c < chans; c++ {
				u := math.Float32bits(outs[c][i])
				binary.LittleEndian.PutUint32(out[4*(i*chans+c):], u)
			}
		}
		if w != nil {
			// Not much to do about the error mid-playback.
			w.write(outs)
		}
	}

	dev, err := malgo.InitDevice(mctx.Context, cfg, malgo.DeviceCallbacks{Data: recv})
	if err != nil {
		return err
	}
	defer dev.Uninit()
	if err := dev.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}
