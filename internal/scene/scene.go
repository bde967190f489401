// Package scene prepares and renders the fixed 3D scene: a water bottle and a
// speaker standing on a wooden floor. It owns the texture and material
// registries and drives the shader-state protocol ahead of every draw call;
// the shader program and the mesh geometry are borrowed collaborators
// supplied at construction.
package scene

import (
	"log"
	"path/filepath"

	"glscene/internal/config"
	"glscene/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformSetter is the shader-side collaborator: it pushes named uniforms
// into the active shader program. Implemented by graphics.Shader.
type UniformSetter interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVector2(name string, x, y float32)
	SetVector3(name string, x, y, z float32)
	SetVector4(name string, x, y, z, w float32)
	SetMatrix4(name string, value mgl32.Mat4)
	SetSampler2D(name string, slot int32)
}

// MeshDrawer is the geometry-side collaborator: one-time mesh uploads and
// per-frame draw calls for the primitive shapes. Implemented by
// meshes.Library.
type MeshDrawer interface {
	LoadPlaneMesh()
	LoadCylinderMesh()
	LoadConeMesh()
	LoadBoxMesh()
	LoadSphereMesh()

	DrawPlaneMesh()
	DrawCylinderMesh()
	DrawConeMesh(capped bool)
	DrawBoxMesh()
	DrawSphereMesh()
}

// Manager owns the texture and material registries and renders the scene
// object list. It is single-threaded: registries are populated once in
// PrepareScene and only read afterwards.
type Manager struct {
	shader    UniformSetter
	meshes    MeshDrawer
	textures  *graphics.TextureRegistry
	materials *graphics.MaterialRegistry
}

func NewManager(shader UniformSetter, meshes MeshDrawer) *Manager {
	return &Manager{
		shader:    shader,
		meshes:    meshes,
		textures:  graphics.NewTextureRegistry(),
		materials: graphics.NewMaterialRegistry(),
	}
}

// SetShaderColor switches the shader to solid-color mode and uploads the
// color for the next draw call.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	if m.shader == nil {
		return
	}
	m.shader.SetBool(uniformUseTexture, false)
	m.shader.SetVector4(uniformObjectColor, r, g, b, a)
}

// SetShaderTexture switches the shader to textured mode and uploads the
// texture unit registered under tag. An unknown tag uploads the -1 sentinel;
// what that samples is up to the driver, the draw still happens.
func (m *Manager) SetShaderTexture(tag string) {
	if m.shader == nil {
		return
	}
	m.shader.SetBool(uniformUseTexture, true)
	m.shader.SetSampler2D(uniformObjectTexture, m.textures.FindSlot(tag))
}

// SetTextureUVScale uploads the texture coordinate scale for the next draw
// call. Independent of color/texture mode.
func (m *Manager) SetTextureUVScale(u, v float32) {
	if m.shader == nil {
		return
	}
	m.shader.SetVector2(uniformUVScale, u, v)
}

// SetShaderMaterial uploads the lighting coefficients of the material
// registered under tag. An unknown tag leaves the previous material uniforms
// in place.
func (m *Manager) SetShaderMaterial(tag string) {
	if m.shader == nil {
		return
	}
	material, found := m.materials.Find(tag)
	if !found {
		return
	}
	m.shader.SetVector3(uniformMaterialAmbientColor,
		material.AmbientColor.X(), material.AmbientColor.Y(), material.AmbientColor.Z())
	m.shader.SetFloat(uniformMaterialAmbientStrength, material.AmbientStrength)
	m.shader.SetVector3(uniformMaterialDiffuseColor,
		material.DiffuseColor.X(), material.DiffuseColor.Y(), material.DiffuseColor.Z())
	m.shader.SetVector3(uniformMaterialSpecularColor,
		material.SpecularColor.X(), material.SpecularColor.Y(), material.SpecularColor.Z())
	m.shader.SetFloat(uniformMaterialShininess, material.Shininess)
}

// PrepareScene populates the registries, configures the lights and uploads
// the primitive meshes. Call once before the render loop.
func (m *Manager) PrepareScene() {
	m.loadSceneTextures()
	m.defineObjectMaterials()
	m.setupSceneLights()

	// One instance of each mesh serves every draw of that shape.
	m.meshes.LoadPlaneMesh()
	m.meshes.LoadCylinderMesh()
	m.meshes.LoadConeMesh()
	m.meshes.LoadBoxMesh()
	m.meshes.LoadSphereMesh()
}

// RenderScene walks the scene object list: for each object, compose its
// transform, push its shader state and issue the draw call.
func (m *Manager) RenderScene() {
	for _, obj := range sceneObjects {
		m.SetTransformations(obj.scale, obj.rotation, obj.position)
		if obj.uvScale != nil {
			m.SetTextureUVScale(obj.uvScale.X(), obj.uvScale.Y())
		}
		if obj.texture != "" {
			m.SetShaderTexture(obj.texture)
		} else {
			m.SetShaderColor(obj.color.X(), obj.color.Y(), obj.color.Z(), obj.color.W())
		}
		if obj.material != "" {
			m.SetShaderMaterial(obj.material)
		}
		m.drawShape(obj.shape, obj.capped)
	}
}

// Destroy releases the GL textures owned by the manager.
func (m *Manager) Destroy() {
	m.textures.DestroyAll()
}

func (m *Manager) drawShape(s shape, capped bool) {
	switch s {
	case shapePlane:
		m.meshes.DrawPlaneMesh()
	case shapeCylinder:
		m.meshes.DrawCylinderMesh()
	case shapeCone:
		m.meshes.DrawConeMesh(capped)
	case shapeBox:
		m.meshes.DrawBoxMesh()
	case shapeSphere:
		m.meshes.DrawSphereMesh()
	}
}

func (m *Manager) loadSceneTextures() {
	for _, t := range sceneTextures {
		path := filepath.Join(config.TexturesDir, t.file)
		if err := m.textures.Load(path, t.tag); err != nil {
			log.Printf("failed to load texture %q: %v", t.tag, err)
		}
	}
	m.textures.BindAll()
}

func (m *Manager) defineObjectMaterials() {
	for _, material := range sceneMaterials {
		m.materials.Define(material)
	}
}

func (m *Manager) setupSceneLights() {
	if m.shader == nil {
		return
	}
	for i, l := range sceneLights {
		m.shader.SetVector3(lightUniform(i, "position"),
			l.Position.X(), l.Position.Y(), l.Position.Z())
		m.shader.SetVector3(lightUniform(i, "ambientColor"),
			l.AmbientColor.X(), l.AmbientColor.Y(), l.AmbientColor.Z())
		m.shader.SetVector3(lightUniform(i, "diffuseColor"),
			l.DiffuseColor.X(), l.DiffuseColor.Y(), l.DiffuseColor.Z())
		m.shader.SetVector3(lightUniform(i, "specularColor"),
			l.SpecularColor.X(), l.SpecularColor.Y(), l.SpecularColor.Z())
		m.shader.SetFloat(lightUniform(i, "focalStrength"), l.FocalStrength)
		m.shader.SetFloat(lightUniform(i, "specularIntensity"), l.SpecularIntensity)
	}
	m.shader.SetBool(uniformUseLighting, true)
}
