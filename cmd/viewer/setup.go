package main

import (
	"fmt"

	"voxel-mesher/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(width, height, "voxel-mesher", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}
	glfw.SwapInterval(1)

	return window, nil
}

func title(fps int, r *graphics.ChunkRenderer) string {
	return fmt.Sprintf("voxel-mesher | %d fps | %d/%d chunks drawn", fps, r.Drawn(), r.Uploaded())
}
