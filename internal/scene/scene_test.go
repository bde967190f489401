package scene

import (
	"strings"
	"testing"

	"glscene/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

type uniformCall struct {
	name  string
	value any
}

// fakeShader records every uniform push so tests can assert on the
// shader-state protocol without a GL context.
type fakeShader struct {
	calls []uniformCall
}

func (f *fakeShader) record(name string, value any) {
	f.calls = append(f.calls, uniformCall{name: name, value: value})
}

func (f *fakeShader) SetBool(name string, value bool)     { f.record(name, value) }
func (f *fakeShader) SetInt(name string, value int32)     { f.record(name, value) }
func (f *fakeShader) SetFloat(name string, value float32) { f.record(name, value) }
func (f *fakeShader) SetVector2(name string, x, y float32) {
	f.record(name, [2]float32{x, y})
}
func (f *fakeShader) SetVector3(name string, x, y, z float32) {
	f.record(name, [3]float32{x, y, z})
}
func (f *fakeShader) SetVector4(name string, x, y, z, w float32) {
	f.record(name, [4]float32{x, y, z, w})
}
func (f *fakeShader) SetMatrix4(name string, value mgl32.Mat4) { f.record(name, value) }
func (f *fakeShader) SetSampler2D(name string, slot int32)     { f.record(name, slot) }

// last returns the most recent value pushed under name.
func (f *fakeShader) last(name string) (any, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i].value, true
		}
	}
	return nil, false
}

func (f *fakeShader) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c.name, prefix) {
			n++
		}
	}
	return n
}

// fakeMeshes records load and draw calls in order.
type fakeMeshes struct {
	loaded []string
	drawn  []string
}

func (f *fakeMeshes) LoadPlaneMesh()    { f.loaded = append(f.loaded, "plane") }
func (f *fakeMeshes) LoadCylinderMesh() { f.loaded = append(f.loaded, "cylinder") }
func (f *fakeMeshes) LoadConeMesh()     { f.loaded = append(f.loaded, "cone") }
func (f *fakeMeshes) LoadBoxMesh()      { f.loaded = append(f.loaded, "box") }
func (f *fakeMeshes) LoadSphereMesh()   { f.loaded = append(f.loaded, "sphere") }

func (f *fakeMeshes) DrawPlaneMesh()    { f.drawn = append(f.drawn, "plane") }
func (f *fakeMeshes) DrawCylinderMesh() { f.drawn = append(f.drawn, "cylinder") }
func (f *fakeMeshes) DrawConeMesh(capped bool) {
	name := "cone"
	if capped {
		name = "cone+cap"
	}
	f.drawn = append(f.drawn, name)
}
func (f *fakeMeshes) DrawBoxMesh()    { f.drawn = append(f.drawn, "box") }
func (f *fakeMeshes) DrawSphereMesh() { f.drawn = append(f.drawn, "sphere") }

func TestSetShaderColorDisablesTexturing(t *testing.T) {
	shader := &fakeShader{}
	m := NewManager(shader, &fakeMeshes{})

	m.SetShaderColor(0.635, 0.635, 0.635, 1.0)

	useTexture, ok := shader.last(uniformUseTexture)
	if !ok {
		t.Fatalf("SetShaderColor did not touch %q", uniformUseTexture)
	}
	if useTexture != false {
		t.Errorf("%s = %v after SetShaderColor, want false", uniformUseTexture, useTexture)
	}

	color, ok := shader.last(uniformObjectColor)
	if !ok {
		t.Fatalf("SetShaderColor did not upload %q", uniformObjectColor)
	}
	if want := [4]float32{0.635, 0.635, 0.635, 1.0}; color != want {
		t.Errorf("%s = %v, want %v", uniformObjectColor, color, want)
	}
}

func TestSetShaderTextureResolvesRegisteredSlot(t *testing.T) {
	shader := &fakeShader{}
	m := NewManager(shader, &fakeMeshes{})
	if err := m.textures.Add("floor", 11); err != nil {
		t.Fatalf("Add(floor): %v", err)
	}
	if err := m.textures.Add("mesh", 22); err != nil {
		t.Fatalf("Add(mesh): %v", err)
	}

	m.SetShaderTexture("mesh")

	useTexture, _ := shader.last(uniformUseTexture)
	if useTexture != true {
		t.Errorf("%s = %v after SetShaderTexture, want true", uniformUseTexture, useTexture)
	}
	slot, ok := shader.last(uniformObjectTexture)
	if !ok {
		t.Fatalf("SetShaderTexture did not upload %q", uniformObjectTexture)
	}
	if slot != int32(1) {
		t.Errorf("%s = %v, want 1 (second registered texture)", uniformObjectTexture, slot)
	}
}

func TestSetShaderTextureUnknownTagUploadsSentinel(t *testing.T) {
	shader := &fakeShader{}
	m := NewManager(shader, &fakeMeshes{})

	m.SetShaderTexture("nonexistent")

	slot, ok := shader.last(uniformObjectTexture)
	if !ok {
		t.Fatalf("SetShaderTexture did not upload %q", uniformObjectTexture)
	}
	if slot != int32(-1) {
		t.Errorf("%s = %v for unknown tag, want -1", uniformObjectTexture, slot)
	}
}

func TestSetTextureUVScale(t *testing.T) {
	shader := &fakeShader{}
	m := NewManager(shader, &fakeMeshes{})

	m.SetTextureUVScale(2.0, 3.0)

	value, ok := shader.last(uniformUVScale)
	if !ok {
		t.Fatalf("SetTextureUVScale did not upload %q", uniformUVScale)
	}
	if want := [2]float32{2.0, 3.0}; value != want {
		t.Errorf("%s = %v, want %v", uniformUVScale, value, want)
	}
}

func TestSetShaderMaterialUploadsAllFields(t *testing.T) {
	shader := &fakeShader{}
	m := NewManager(shader, &fakeMeshes{})
	m.materials.Define(graphics.Material{
		Tag:             "gold",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
		AmbientStrength: 0.4,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.2},
		SpecularColor:   mgl32.Vec3{0.6, 0.5, 0.4},
		Shininess:       80.0,
	})

	m.SetShaderMaterial("gold")

	checks := []struct {
		name string
		want any
	}{
		{uniformMaterialAmbientColor, [3]float32{0.2, 0.2, 0.1}},
		{uniformMaterialAmbientStrength, float32(0.4)},
		{uniformMaterialDiffuseColor, [3]float32{0.3, 0.3, 0.2}},
		{uniformMaterialSpecularColor, [3]float32{0.6, 0.5, 0.4}},
		{uniformMaterialShininess, float32(80.0)},
	}
	for _, c := range checks {
		got, ok := shader.last(c.name)
		if !ok {
			t.Errorf("SetShaderMaterial did not upload %q", c.name)
			continue
		}
		if got != c.want {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestSetShaderMaterialUnknownTagLeavesUniforms(t *testing.T) {
	shader := &fakeShader{}
	m := NewManager(shader, &fakeMeshes{})

	m.SetShaderMaterial("nonexistent")

	if n := shader.count("material."); n != 0 {
		t.Errorf("SetShaderMaterial on unknown tag pushed %d material uniforms, want 0", n)
	}
}

func TestDispatcherIsNoOpWithoutShader(t *testing.T) {
	m := NewManager(nil, &fakeMeshes{})

	// None of these may panic with no shader bound.
	m.SetShaderColor(1, 0, 0, 1)
	m.SetShaderTexture("floor")
	m.SetTextureUVScale(1, 1)
	m.SetShaderMaterial("gold")
	m.SetTransformations(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0})
}

func TestPrepareSceneLoadsMeshesMaterialsAndLights(t *testing.T) {
	shader := &fakeShader{}
	meshes := &fakeMeshes{}
	m := NewManager(shader, meshes)

	// Texture files are not present in the test environment; loads fail
	// and are logged, which is the documented degradation.
	m.PrepareScene()

	wantLoaded := []string{"plane", "cylinder", "cone", "box", "sphere"}
	if len(meshes.loaded) != len(wantLoaded) {
		t.Fatalf("PrepareScene loaded %v, want %v", meshes.loaded, wantLoaded)
	}
	for i, name := range wantLoaded {
		if meshes.loaded[i] != name {
			t.Errorf("mesh load %d = %q, want %q", i, meshes.loaded[i], name)
		}
	}

	if m.materials.Len() != 3 {
		t.Errorf("PrepareScene defined %d materials, want 3", m.materials.Len())
	}
	for _, tag := range []string{"gold", "wood", "glass"} {
		if _, found := m.materials.Find(tag); !found {
			t.Errorf("material %q not defined by PrepareScene", tag)
		}
	}

	lighting, ok := shader.last(uniformUseLighting)
	if !ok || lighting != true {
		t.Errorf("%s = %v (%v) after PrepareScene, want true", uniformUseLighting, lighting, ok)
	}
	for i := range sceneLights {
		if _, ok := shader.last(lightUniform(i, "position")); !ok {
			t.Errorf("light %d position was not uploaded", i)
		}
		if _, ok := shader.last(lightUniform(i, "specularIntensity")); !ok {
			t.Errorf("light %d specularIntensity was not uploaded", i)
		}
	}
}

func TestRenderSceneDrawSequence(t *testing.T) {
	shader := &fakeShader{}
	meshes := &fakeMeshes{}
	m := NewManager(shader, meshes)

	m.RenderScene()

	want := []string{
		"cylinder", // bottle body
		"cone+cap", // bottle shoulder
		"cylinder", // bottle tip
		"cylinder", // bottle cap
		"box",      // speaker body
		"cone+cap", // speaker mesh
		"sphere",   // speaker hole
		"plane",    // floor
	}
	if len(meshes.drawn) != len(want) {
		t.Fatalf("RenderScene drew %v, want %v", meshes.drawn, want)
	}
	for i := range want {
		if meshes.drawn[i] != want[i] {
			t.Errorf("draw %d = %q, want %q", i, meshes.drawn[i], want[i])
		}
	}

	if n := shader.count(uniformModel); n != len(sceneObjects) {
		t.Errorf("RenderScene uploaded %d model matrices, want %d", n, len(sceneObjects))
	}
}

// TestSceneObjectTagsAreRegistered guards the scene definition itself: every
// material and texture tag an object references must exist in the setup lists.
func TestSceneObjectTagsAreRegistered(t *testing.T) {
	textureTags := make(map[string]bool)
	for _, tex := range sceneTextures {
		textureTags[tex.tag] = true
	}
	materialTags := make(map[string]bool)
	for _, mat := range sceneMaterials {
		materialTags[mat.Tag] = true
	}

	for _, obj := range sceneObjects {
		if obj.texture != "" && !textureTags[obj.texture] {
			t.Errorf("object %q references unknown texture %q", obj.name, obj.texture)
		}
		if obj.material != "" && !materialTags[obj.material] {
			t.Errorf("object %q references unknown material %q", obj.name, obj.material)
		}
	}
}
