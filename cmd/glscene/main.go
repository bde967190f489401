package main

import (
	"log"
	"path/filepath"
	"runtime"

	"glscene/internal/config"
	"glscene/internal/graphics"
	"glscene/internal/meshes"
	"glscene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() { runtime.LockOSThread() }

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("failed to initialize glfw: %v", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}

	shader, err := graphics.NewShader(
		filepath.Join(config.ShadersDir, config.SceneVertShader),
		filepath.Join(config.ShadersDir, config.SceneFragShader),
	)
	if err != nil {
		log.Fatalf("failed to load scene shader: %v", err)
	}
	shader.Use()
	closer.Bind(shader.Delete)

	library := meshes.NewLibrary()
	closer.Bind(library.Destroy)

	width, height := config.GetWindowSize()
	camera := graphics.NewCamera(width, height, config.GetFOV())

	manager := scene.NewManager(shader, library)
	manager.PrepareScene()
	closer.Bind(manager.Destroy)

	gl.Enable(gl.DEPTH_TEST)

	for !window.ShouldClose() {
		gl.ClearColor(0.0, 0.0, 0.0, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		camera.Upload(shader)
		manager.RenderScene()

		window.SwapBuffers()
		glfw.PollEvents()
	}

	// Runs the bound cleanups in reverse order: scene textures, meshes,
	// shader program, then glfw itself.
	closer.Close()
}
