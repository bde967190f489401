package scene

import "fmt"

// Uniform names shared with assets/shaders/scene.{vert,frag}. They are the
// wire contract with the shader program: renaming one here requires the same
// rename in the GLSL.
const (
	uniformModel         = "model"
	uniformObjectColor   = "objectColor"
	uniformObjectTexture = "objectTexture"
	uniformUseTexture    = "bUseTexture"
	uniformUseLighting   = "bUseLighting"
	uniformUVScale       = "UVscale"

	uniformMaterialAmbientColor    = "material.ambientColor"
	uniformMaterialAmbientStrength = "material.ambientStrength"
	uniformMaterialDiffuseColor    = "material.diffuseColor"
	uniformMaterialSpecularColor   = "material.specularColor"
	uniformMaterialShininess       = "material.shininess"
)

// lightUniform returns the uniform name for one field of lightSources[index].
func lightUniform(index int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", index, field)
}
