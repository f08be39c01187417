package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	orbitSensitivity = 0.3
	zoomStep         = 0.9
)

func setupInputHandlers(window *glfw.Window, v *viewer) {
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		switch button {
		case glfw.MouseButtonLeft:
			v.dragging = action == glfw.Press
			v.lastX, v.lastY = w.GetCursorPos()
		case glfw.MouseButtonRight:
			if action == glfw.Press {
				v.pick(w, mods&glfw.ModShift != 0)
			}
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if v.dragging {
			dx := float32(xpos - v.lastX)
			dy := float32(ypos - v.lastY)
			v.camera.Orbit(dx*orbitSensitivity, dy*orbitSensitivity)
		}
		v.lastX, v.lastY = xpos, ypos
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if yoff > 0 {
			v.camera.Zoom(zoomStep)
		} else if yoff < 0 {
			v.camera.Zoom(1 / zoomStep)
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeySpace:
			v.dig()
		}
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		v.camera.SetViewport(fbWidth, fbHeight)
	})
}
