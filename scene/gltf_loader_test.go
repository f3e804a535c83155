package scene

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGLTFBakesNodeTransforms(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	nrm := modeler.WriteNormal(doc, [][3]float32{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})

	doc.Materials = []*gltf.Material{{
		Name: "red",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 0, 0, 1},
		},
	}}
	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Material:   gltf.Index(0),
			Attributes: map[string]int{"POSITION": pos, "NORMAL": nrm},
		}},
	}}
	doc.Nodes = []*gltf.Node{
		{Name: "parent", Translation: [3]float64{0, 2, 0}, Children: []int{1}},
		{Name: "child", Mesh: gltf.Index(0), Scale: [3]float64{2, 2, 2}},
	}
	doc.Scenes[0].Nodes = []int{0}

	path := filepath.Join(t.TempDir(), "tri.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))

	model, err := LoadModel(path, quietLogger())
	require.NoError(t, err)
	require.Len(t, model.Meshes, 1)

	m := model.Meshes[0]
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	require.Len(t, m.Vertices, 3)
	assert.True(t, vecApprox(m.Vertices[0].Position, mgl32.Vec3{0, 2, 0}), "got %v", m.Vertices[0].Position)
	assert.True(t, vecApprox(m.Vertices[1].Position, mgl32.Vec3{2, 2, 0}), "got %v", m.Vertices[1].Position)
	assert.True(t, vecApprox(m.Vertices[2].Normal, mgl32.Vec3{0, 0, 1}), "normals stay unit length")

	require.NotNil(t, m.Material)
	assert.Equal(t, "red", m.Material.Name)
	assert.Equal(t, float32(1), m.Material.Diffuse.R)
	assert.Equal(t, float32(0), m.Material.Diffuse.G)
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF(filepath.Join(t.TempDir(), "none.gltf"), quietLogger())
	assert.Error(t, err)
}
