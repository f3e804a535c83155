package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/core"
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by internal/opengl.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	// Material holds surface shading properties. If nil, DefaultMaterial() is used.
	Material *Material
}

// NewMesh builds a mesh, generating sequential indices when none are given.
func NewMesh(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	if len(indices) == 0 {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

func (m *Mesh) MaterialOrDefault() *Material {
	if m.Material == nil {
		return DefaultMaterial()
	}
	return m.Material
}

// Bounds returns the axis-aligned bounds of the vertex positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3, ok bool) {
	if len(m.Vertices) == 0 {
		return min, max, false
	}
	min = m.Vertices[0].Position
	max = min
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return min, max, true
}

// Model is a named collection of meshes loaded from one file.
type Model struct {
	Path   string
	Meshes []*Mesh
}

// Textures returns every distinct texture referenced by the model's
// materials, in first-use order.
func (m *Model) Textures() []*Texture {
	seen := map[*Texture]bool{}
	var out []*Texture
	for _, mesh := range m.Meshes {
		if mesh.Material == nil {
			continue
		}
		for _, t := range mesh.Material.Textures() {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// VertexCount is the total vertex count over all meshes.
func (m *Model) VertexCount() int {
	n := 0
	for _, mesh := range m.Meshes {
		n += len(mesh.Vertices)
	}
	return n
}
