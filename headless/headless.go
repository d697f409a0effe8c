// Package headless runs a console without a window, for test ROMs and
// recordings.
package headless

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/jyane/jgb/gb"
	"github.com/jyane/jgb/screenshot"
	"github.com/jyane/jgb/wavwriter"
)

// Options of Run.
type Options struct {
	// Frames is the number of frames to run.
	Frames int
	// Screenshot is a PNG path for the last frame, empty for none.
	Screenshot string
	// Scale of the screenshot.
	Scale int
	// Wav is a WAV path recording the audio, empty for none.
	Wav string
}

// Run runs the console for opts.Frames frames.
func Run(console *gb.Console, opts Options) (rerr error) {
	if opts.Wav != "" {
		w := wavwriter.New(opts.Wav, gb.SampleRate)
		console.SetAudioSink(w)
		defer func() {
			console.SetAudioSink(nil)
			if err := w.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}
	cycles := 0
	for i := 0; i < opts.Frames; i++ {
		n, err := console.StepFrame()
		cycles += n
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	glog.Infof("Ran %d frames, %d cycles", opts.Frames, cycles)
	if opts.Screenshot != "" {
		img, _ := console.Frame()
		if err := screenshot.Save(opts.Screenshot, img, opts.Scale); err != nil {
			return err
		}
		glog.Infof("Saved %s", opts.Screenshot)
	}
	return nil
}
