package scene

import (
	"glscene/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

type shape int

const (
	shapePlane shape = iota
	shapeCylinder
	shapeCone
	shapeBox
	shapeSphere
)

// sceneObject describes one draw call of the fixed scene. When texture is
// empty the object is drawn in solid color. Shader state is sticky between
// objects: a nil uvScale or an empty material deliberately leaves the
// previous object's value in effect.
type sceneObject struct {
	name     string
	shape    shape
	scale    mgl32.Vec3
	rotation mgl32.Vec3 // degrees, applied X then Y then Z
	position mgl32.Vec3

	color    mgl32.Vec4 // solid color, used when texture is empty
	texture  string
	material string
	uvScale  *mgl32.Vec2
	capped   bool // cone only: draw the base cap
}

func uv(u, v float32) *mgl32.Vec2 {
	s := mgl32.Vec2{u, v}
	return &s
}

// sceneTextures are loaded in this order, so their registry slots are
// 0 (floor), 1 (mesh), 2 (golds).
var sceneTextures = []struct {
	file string
	tag  string
}{
	{"mattwhite.jpg", "floor"},
	{"blackMesh.jpg", "mesh"},
	{"gold-seamless-texture.jpg", "golds"},
}

var sceneMaterials = []graphics.Material{
	{
		Tag:             "gold",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
		AmbientStrength: 0.4,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.2},
		SpecularColor:   mgl32.Vec3{0.6, 0.5, 0.4},
		Shininess:       80.0,
	},
	{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.4, 0.3, 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.3, 0.2, 0.1},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       0.3,
	},
	{
		Tag:             "glass",
		AmbientColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.6},
		Shininess:       85.0,
	},
}

// sceneObjects is the scene itself, rendered in list order every frame: the
// water bottle on the left, the speaker on the right, the floor last.
var sceneObjects = []sceneObject{
	{
		name:     "bottle body",
		shape:    shapeCylinder,
		scale:    mgl32.Vec3{1.5, 6.0, 1.5},
		position: mgl32.Vec3{-3.0, 0.0, 0.0},
		color:    mgl32.Vec4{0.635, 0.635, 0.635, 1.0},
	},
	{
		name:     "bottle shoulder",
		shape:    shapeCone,
		capped:   true,
		scale:    mgl32.Vec3{1.5, 1.5, 1.5},
		position: mgl32.Vec3{-3.0, 6.0, 0.0},
		color:    mgl32.Vec4{0.635, 0.635, 0.635, 0.5},
	},
	{
		name:     "bottle tip",
		shape:    shapeCylinder,
		scale:    mgl32.Vec3{1.0, 0.3, 1.0},
		position: mgl32.Vec3{-3.0, 6.5, 0.0},
		color:    mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
	},
	{
		name:     "bottle cap",
		shape:    shapeCylinder,
		scale:    mgl32.Vec3{1.0, 0.7, 1.0},
		position: mgl32.Vec3{-3.0, 6.8, 0.0},
		color:    mgl32.Vec4{0.69, 0.69, 0.69, 1.0},
	},
	{
		name:     "speaker body",
		shape:    shapeBox,
		scale:    mgl32.Vec3{4.0, 4.0, 4.0},
		position: mgl32.Vec3{2.0, 2.0, -1.52},
		uvScale:  uv(1.0, 1.0),
		texture:  "golds",
		material: "gold",
	},
	{
		name:     "speaker mesh",
		shape:    shapeCone,
		capped:   true,
		scale:    mgl32.Vec3{1.5, 1.5, 1.5},
		rotation: mgl32.Vec3{-90.0, 50.0, 0.0},
		position: mgl32.Vec3{2.0, 2.0, 0.5},
		texture:  "mesh",
	},
	{
		name:     "speaker hole",
		shape:    shapeSphere,
		scale:    mgl32.Vec3{0.4, 0.15, 0.4},
		rotation: mgl32.Vec3{-90.0, 0.0, 0.0},
		position: mgl32.Vec3{2.0, 2.0, 0.5},
		color:    mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
	},
	{
		name:     "floor",
		shape:    shapePlane,
		scale:    mgl32.Vec3{20.0, 1.0, 10.0},
		position: mgl32.Vec3{0.0, 0.0, 0.0},
		texture:  "floor",
		material: "wood",
	},
}
