package ui

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/jyane/jgb/gb"
)

const volume = 0.3

type audio struct {
	stream *portaudio.Stream
	// interleaved left and right samples
	channel chan float32
}

func newAudio() *audio {
	a := &audio{}
	a.channel = make(chan float32, gb.SampleRate)
	return a
}

func (a *audio) start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	cb := func(out []float32) {
		for i := range out {
			select {
			case x := <-a.channel:
				out[i] = x * volume
			default:
				out[i] = 0
			}
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, gb.SampleRate, 0, cb)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open the audio stream: %w", err)
	}
	a.stream = stream
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start the audio stream: %w", err)
	}
	return nil
}

func (a *audio) terminate() {
	a.stream.Stop()
	a.stream.Close()
	portaudio.Terminate()
}
