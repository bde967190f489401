package graphics

import "github.com/go-gl/mathgl/mgl32"

// Material bundles the lighting coefficients the scene shader reads for a
// lit, textured object.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry is an append-only list of named materials, populated once
// at scene setup. Duplicate tags are allowed; Find returns the first match in
// registration order, so later duplicates are shadowed.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define appends a material. No uniqueness check is performed.
func (r *MaterialRegistry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material registered under tag. The boolean reports
// whether a match was found.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}
