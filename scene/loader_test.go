package scene

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learn-opengl/core"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePNG(t *testing.T, path string, top, bottom color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetNRGBA(x, 0, top)
		img.SetNRGBA(x, 1, bottom)
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadTextureFlip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.png")
	red := color.NRGBA{255, 0, 0, 255}
	blue := color.NRGBA{0, 0, 255, 255}
	writePNG(t, path, red, blue)

	tex, err := LoadTexture(path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 2, tex.Height)
	assert.Len(t, tex.Pixels, 16)
	assert.Equal(t, []byte{255, 0, 0, 255}, tex.Pixels[0:4], "first row is the image top")
	assert.False(t, tex.HasAlpha)

	flipped, err := LoadTexture(path, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, flipped.Pixels[0:4], "first row is the image bottom")
}

func TestLoadTextureAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glass.png")
	writePNG(t, path, color.NRGBA{255, 255, 255, 255}, color.NRGBA{255, 255, 255, 128})

	tex, err := LoadTexture(path, false)
	require.NoError(t, err)
	assert.True(t, tex.HasAlpha)
}

func TestLoadTextureMissing(t *testing.T) {
	_, err := LoadTexture(filepath.Join(t.TempDir(), "nope.png"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
	_, err = LoadTexture(bad, true)
	assert.Error(t, err)
}

func TestSolidTextures(t *testing.T) {
	tex := NewSolidTexture("white", 255, 255, 255, 255)
	assert.Equal(t, 1, tex.Width)
	assert.False(t, tex.HasAlpha)

	m := MissingTexture("x")
	assert.Equal(t, []byte{255, 0, 255, 255}, m.Pixels)
}

const quadOBJ = `# two quads, second uses relative indices
mtllib box.mtl
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
o front
usemtl boxmat
f 1/1/1 2/2/1 3/3/1 4/4/1
o back
v 0 0 -1
v 1 0 -1
v 1 1 -1
f -3 -2 -1
`

const boxMTL = `newmtl boxmat
Kd 0.5 0.25 1
Ks 0.1 0.2 0.3
Ns 64
map_Kd diffuse.png
map_Ks missing.png
`

func TestLoadOBJ(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.obj"), []byte(quadOBJ), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "box.mtl"), []byte(boxMTL), 0o644))
	writePNG(t, filepath.Join(dir, "diffuse.png"), color.NRGBA{0, 255, 0, 255}, color.NRGBA{0, 0, 0, 255})

	model, err := LoadModel(filepath.Join(dir, "box.obj"), quietLogger())
	require.NoError(t, err)
	require.Len(t, model.Meshes, 2)

	front := model.Meshes[0]
	assert.Equal(t, "front", front.Name)
	assert.Len(t, front.Vertices, 4, "quad vertices are shared")
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, front.Indices, "fan triangulation")
	assert.Equal(t, mgl32.Vec2{1, 1}, front.Vertices[2].UV)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, front.Vertices[0].Normal)

	mat := front.Material
	require.NotNil(t, mat)
	assert.Equal(t, "boxmat", mat.Name)
	assert.Equal(t, float32(0.25), mat.Diffuse.G)
	assert.Equal(t, float32(0.3), mat.Specular.B)
	assert.Equal(t, float32(64), mat.Shininess)
	require.NotNil(t, mat.DiffuseTexture)
	assert.Equal(t, 2, mat.DiffuseTexture.Width)
	require.NotNil(t, mat.SpecularTexture, "missing textures get a placeholder")
	assert.Equal(t, []byte{255, 0, 255, 255}, mat.SpecularTexture.Pixels)
	assert.Len(t, model.Textures(), 2)

	back := model.Meshes[1]
	assert.Equal(t, "back", back.Name)
	require.Len(t, back.Vertices, 3)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, back.Vertices[0].Position, "-3 resolves to the fifth position")
	assert.Equal(t, mgl32.Vec3{1, 1, -1}, back.Vertices[2].Position)
	assert.Equal(t, "boxmat", back.Material.Name, "material carries over to the next object")

	assert.Equal(t, 7, model.VertexCount())
}

func TestParseOBJGeneratesNormals(t *testing.T) {
	data := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	meshes, err := ParseOBJ(strings.NewReader(data), ".", quietLogger())
	require.NoError(t, err)
	require.Len(t, meshes, 1)
	for _, v := range meshes[0].Vertices {
		assert.True(t, vecApprox(v.Normal, mgl32.Vec3{0, 0, 1}), "normal %v", v.Normal)
	}
	assert.Equal(t, "Default", meshes[0].Material.Name)
}

func TestParseOBJSplitsOnMaterialChange(t *testing.T) {
	data := `v 0 0 0
v 1 0 0
v 0 1 0
usemtl a
f 1 2 3
usemtl b
f 3 2 1
`
	meshes, err := ParseOBJ(strings.NewReader(data), ".", quietLogger())
	require.NoError(t, err)
	assert.Len(t, meshes, 2)
}

func TestParseOBJEmpty(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("# nothing\nv 0 0 0\n"), ".", quietLogger())
	assert.Error(t, err)
}

func TestLoadModelUnsupported(t *testing.T) {
	_, err := LoadModel("model.fbx", quietLogger())
	assert.ErrorContains(t, err, "unsupported")
}

func TestMeshDefaults(t *testing.T) {
	m := NewMesh("tri", []core.Vertex{
		{Position: mgl32.Vec3{-1, 0, 2}},
		{Position: mgl32.Vec3{3, -2, 0}},
		{Position: mgl32.Vec3{0, 5, 1}},
	}, nil)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	assert.Equal(t, "Default", m.MaterialOrDefault().Name)

	lo, hi, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{-1, -2, 0}, lo)
	assert.Equal(t, mgl32.Vec3{3, 5, 2}, hi)

	_, _, ok = (&Mesh{}).Bounds()
	assert.False(t, ok)
}
