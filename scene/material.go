package scene

import "learn-opengl/core"

// Material describes the Phong surface of a mesh. Textures, when present,
// replace the flat colors in the model shader.
type Material struct {
	Name      string
	Diffuse   core.Color
	Specular  core.Color
	Shininess float32

	DiffuseTexture  *Texture
	SpecularTexture *Texture
}

// DefaultMaterial returns a plain white material with a faint highlight.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "Default",
		Diffuse:   core.ColorWhite,
		Specular:  core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1},
		Shininess: 32,
	}
}

// Textures lists the non-nil textures of the material.
func (m *Material) Textures() []*Texture {
	var out []*Texture
	if m.DiffuseTexture != nil {
		out = append(out, m.DiffuseTexture)
	}
	if m.SpecularTexture != nil {
		out = append(out, m.SpecularTexture)
	}
	return out
}
