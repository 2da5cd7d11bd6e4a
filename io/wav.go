package io

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// wavWriter writes interleaved 32 bit float wav files. The sizes in the
// header are patched in on close.
type wavWriter struct {
	f        *os.File
	channels int
	written  int // payload bytes so far
}

const wavHeaderSize = 44

func newWavWriter(f *os.File, channels, samplerate int) (*wavWriter, error) {
	var h [wavHeaderSize]byte
	copy(h[0:], "RIFF")
	// h[4:8]: RIFF chunk size, patched on close.
	copy(h[8:], "WAVE")
	copy(h[12:], "fmt ")
	le := binary.LittleEndian
	le.PutUint32(h[16:], 16)
	le.PutUint16(h[20:], 3) // IEEE float
	le.PutUint16(h[22:], uint16(channels))
	le.PutUint32(h[24:], uint32(samplerate))
	le.PutUint32(h[28:], uint32(samplerate*channels*4)) // bytes per second
	le.PutUint16(h[32:], uint16(channels*4))            // frame size
	le.PutUint16(h[34:], 32)                            // bit depth
	copy(h[36:], "data")
	// h[40:44]: data chunk size, patched on close.
	if _, err := f.Write(h[:]); err != nil {
		return nil, err
	}
	return &wavWriter{f: f, channels: channels}, nil
}

// write appends one block of channel buffers, interleaving as it goes.
func (w *wavWriter) write(blocks [][]float32) error {
	if len(blocks) != w.channels {
		return fmt.Errorf("got %d channels, want %d", len(blocks), w.channels)
	}
	n := len(blocks[0])
	buf := make([]byte, 4*n*w.channels)
	for i := 0; i < n; i++ {
		for c := range blocks {
			u := math.Float32bits(blocks[c][i])
			binary.LittleEndian.PutUint32(buf[4*(i*w.channels+c):], u)
		}
	}
	w.written += len(buf)
	_, err := w.f.Write(buf)
	return err
}

// close patches the chunk sizes into the header and closes the file.
func (w *wavWriter) close() error {
	var sz [4]byte
	binary.LittleEndian.PutUint32(sz[:], uint32(wavHeaderSize-8+w.written))
	if _, err := w.f.WriteAt(sz[:], 4); err != nil {
		w.f.Close()
		return err
	}
	binary.LittleEndian.PutUint32(sz[:], uint32(w.written))
	if _, err := w.f.WriteAt(sz[:], 40); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
