package ui

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/jyane/jgb/gb"
)

// getKeys gets the state of keyboard, WASD or arrows for directions, J for A
// and H for B.
func getKeys(window *glfw.Window) [8]bool {
	pressed := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if window.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	var keys [8]bool
	keys[gb.ButtonRight] = pressed(glfw.KeyD, glfw.KeyRight)
	keys[gb.ButtonLeft] = pressed(glfw.KeyA, glfw.KeyLeft)
	keys[gb.ButtonDown] = pressed(glfw.KeyS, glfw.KeyDown)
	keys[gb.ButtonUp] = pressed(glfw.KeyW, glfw.KeyUp)
	keys[gb.ButtonStart] = pressed(glfw.KeyG, glfw.KeyEnter)
	keys[gb.ButtonSelect] = pressed(glfw.KeyF, glfw.KeyBackspace)
	keys[gb.ButtonB] = pressed(glfw.KeyH)
	keys[gb.ButtonA] = pressed(glfw.KeyJ)
	return keys
}
