package config

import "sync"

// Asset locations, relative to the working directory.
const (
	ShadersDir  = "assets/shaders"
	TexturesDir = "assets/textures"

	SceneVertShader = "scene.vert"
	SceneFragShader = "scene.frag"

	WindowTitle = "glscene"
)

// DisplaySettings holds window and projection configuration
type DisplaySettings struct {
	mu     sync.RWMutex
	width  int
	height int
	fov    float32 // vertical field of view in degrees
}

var globalDisplaySettings = &DisplaySettings{
	width:  1000,
	height: 800,
	fov:    80.0,
}

// GetWindowSize returns the current window dimensions in pixels
func GetWindowSize() (int, int) {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.width, globalDisplaySettings.height
}

// SetWindowSize sets the window dimensions in pixels
func SetWindowSize(width, height int) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	// Clamp to reasonable values
	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	globalDisplaySettings.width = width
	globalDisplaySettings.height = height
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalDisplaySettings.mu.RLock()
	defer globalDisplaySettings.mu.RUnlock()
	return globalDisplaySettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalDisplaySettings.mu.Lock()
	defer globalDisplaySettings.mu.Unlock()

	// Clamp to reasonable values
	if fov < 30 {
		fov = 30
	}
	if fov > 120 {
		fov = 120
	}

	globalDisplaySettings.fov = fov
}
