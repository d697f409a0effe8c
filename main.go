package main

import (
	"flag"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/golang/glog"

	"github.com/jyane/jgb/diag"
	"github.com/jyane/jgb/gb"
	"github.com/jyane/jgb/headless"
	"github.com/jyane/jgb/statsview"
	"github.com/jyane/jgb/ui"
)

var (
	path       = flag.String("path", "./rom/sample.gb", "path to Game Boy ROM file")
	boot       = flag.String("boot", "", "path to the DMG boot ROM, skipped when empty")
	scale      = flag.Int("scale", 4, "window and screenshot scale")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	debug      = flag.Bool("debug", false, "run as debug mode")
	frames     = flag.Int("headless", 0, "run this many frames without a window")
	shot       = flag.String("screenshot", "", "headless: write the last frame to this PNG file")
	wav        = flag.String("wav", "", "headless: record the audio to this WAV file")
	stats      = flag.Bool("statsview", false, "serve runtime statistics at "+statsview.Address)
	withAudio  = flag.Bool("audio", true, "play audio")
	save       = flag.String("save", "", "battery save file, defaults to the ROM path with .sav")
)

// readFile reads file as bytes
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func savePath() string {
	if *save != "" {
		return *save
	}
	return strings.TrimSuffix(*path, filepath.Ext(*path)) + ".sav"
}

func init() {
	runtime.LockOSThread()
}

func run(console *gb.Console, log *diag.Log) error {
	switch {
	case *debug:
		return gb.NewDebugConsole(console, log).Run(os.Stdin, os.Stdout)
	case *frames > 0:
		return headless.Run(console, headless.Options{
			Frames:     *frames,
			Screenshot: *shot,
			Scale:      *scale,
			Wav:        *wav,
		})
	default:
		return ui.Start(console, *scale, *withAudio)
	}
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			glog.Warningln("statsview is not compiled in, build with -tags statsview")
		}
	}
	buf, err := readFile(*path)
	if err != nil {
		glog.Fatalln("Failed to read: " + *path)
	}
	cfg := gb.Config{Diagnostics: diag.Verbose(1)}
	if *boot != "" {
		if cfg.BootROM, err = readFile(*boot); err != nil {
			glog.Fatalln("Failed to read: " + *boot)
		}
	}
	// The debug console keeps the diagnostics for the log command.
	log := diag.NewLog(1000)
	if *debug {
		cfg.Diagnostics = diag.Multi(log, cfg.Diagnostics)
	}
	// Test ROMs report through the link port.
	if *frames > 0 {
		cfg.SerialOut = os.Stdout
	} else {
		cfg.SerialOut = io.Discard
	}
	console, err := gb.NewConsole(buf, cfg)
	if err != nil {
		glog.Fatalln("Failed to initiate Console: ", err)
	}
	cartridge := console.Cartridge()
	if err := cartridge.LoadRAMFile(savePath()); err != nil {
		glog.Fatalln("Failed to load the battery RAM: ", err)
	}
	runErr := run(console, log)
	if err := cartridge.SaveRAMFile(savePath()); err != nil {
		glog.Errorln("Failed to save the battery RAM: ", err)
	}
	if runErr != nil {
		glog.Fatalln(runErr)
	}
	glog.Flush()
}
