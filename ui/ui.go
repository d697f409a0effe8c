package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/jyane/jgb/gb"
)

// The DMG refreshes at about 59.7Hz.
const frameDuration = time.Second * gb.CyclesPerFrame / gb.CPUFrequency

func mainLoop(window *glfw.Window, console *gb.Console, s *screen) error {
	for range time.Tick(frameDuration) {
		glfw.PollEvents()
		if window.ShouldClose() {
			return nil
		}
		console.SetButtons(getKeys(window))
		if _, err := console.StepFrame(); err != nil {
			return err
		}
		// If the PPU prepared an image to render, OpenGL updates the texture.
		if img, ok := console.Frame(); ok {
			w, h := window.GetFramebufferSize()
			s.draw(img, w, h)
			window.SwapBuffers()
		}
	}
	return nil
}

// Start is the main entrypoint, it opens a window scale times the LCD size
// and runs the console until the window is closed.
func Start(console *gb.Console, scale int, withAudio bool) error {
	err := glfw.Init()
	if err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(gb.ScreenWidth*scale, gb.ScreenHeight*scale, "JGB", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	glog.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	s, err := newScreen()
	if err != nil {
		glog.Fatalln(err)
	}
	defer s.delete()
	if withAudio {
		a := newAudio()
		if err := a.start(); err != nil {
			glog.Warningf("Audio is disabled: %v", err)
		} else {
			defer a.terminate()
			console.SetAudioOut(a.channel)
		}
	}
	return mainLoop(window, console, s)
}
