package scene

import "github.com/go-gl/mathgl/mgl32"

// MaxLights is the lightSources array size in the scene shader.
const MaxLights = 4

// Light is a point light. Lights are pushed directly as shader uniforms
// during scene preparation and not retained afterwards.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// sceneLights: a blueish key light above the scene and three dim fill lights
// around it.
var sceneLights = [MaxLights]Light{
	{
		Position:          mgl32.Vec3{0.0, 8.0, 0.0},
		AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.4},
		DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.8},
		SpecularColor:     mgl32.Vec3{0.0, 0.0, 0.2},
		FocalStrength:     60.0,
		SpecularIntensity: 0.05,
	},
	{
		Position:          mgl32.Vec3{3.0, 2.0, -1.0},
		AmbientColor:      mgl32.Vec3{0.01, 0.01, 0.01},
		DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.4},
		SpecularColor:     mgl32.Vec3{0.0, 0.0, 0.0},
		FocalStrength:     60.0,
		SpecularIntensity: 0.05,
	},
	{
		Position:          mgl32.Vec3{-5.0, 5.0, -5.0},
		AmbientColor:      mgl32.Vec3{0.0, 0.0, 0.0},
		DiffuseColor:      mgl32.Vec3{0.1, 0.1, 0.1},
		SpecularColor:     mgl32.Vec3{0.0, 0.0, 0.0},
		FocalStrength:     60.0,
		SpecularIntensity: 0.5,
	},
	{
		Position:          mgl32.Vec3{5.0, 5.0, 5.0},
		AmbientColor:      mgl32.Vec3{0.0, 0.0, 0.0},
		DiffuseColor:      mgl32.Vec3{0.1, 0.1, 0.1},
		SpecularColor:     mgl32.Vec3{0.0, 0.0, 0.0},
		FocalStrength:     60.0,
		SpecularIntensity: 0.5,
	},
}
