// Package wavwriter records the audio of the console to a WAV file. Samples
// are buffered in memory and written when the writer is closed, so it is
// meant for short recordings.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/golang/glog"
)

const bitDepth = 16

// WavWriter implements gb.AudioSink.
type WavWriter struct {
	filename   string
	sampleRate int
	// interleaved left and right samples
	buffer []int
}

// New creates a WavWriter writing stereo samples at sampleRate to filename.
func New(filename string, sampleRate int) *WavWriter {
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}
}

// AddSample adds a stereo sample in [-1, 1].
func (w *WavWriter) AddSample(left, right float32) {
	w.buffer = append(w.buffer, quantize(left), quantize(right))
}

// Len returns the number of stereo samples.
func (w *WavWriter) Len() int {
	return len(w.buffer) / 2
}

func quantize(v float32) int {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int(v * 32767)
}

// Close writes the file.
func (w *WavWriter) Close() (rerr error) {
	f, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	glog.Infof("Writing audio to %s: %d samples", w.filename, w.Len())
	enc := wav.NewEncoder(f, w.sampleRate, bitDepth, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: w.sampleRate},
		Data:           w.buffer,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	return nil
}
