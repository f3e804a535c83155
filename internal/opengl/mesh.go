package opengl

import (
	"fmt"
	"log/slog"
	"unsafe"

	gl "github.com/go-gl/gl/v3.3-core/gl"

	"learn-opengl/core"
	"learn-opengl/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32

	Material *scene.Material
	diffuse  *Texture
	specular *Texture
}

// UploadMesh uploads vertex/index data laid out as core.Vertex
// (0 = position, 1 = normal, 2 = uv).
func UploadMesh(mesh *scene.Mesh) (*GPUMesh, error) {
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("mesh %q has no geometry", mesh.Name)
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		Material:   mesh.MaterialOrDefault(),
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.GenBuffers(1, &gpu.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return gpu, nil
}

// Draw binds the material (diffuse map on unit 0, specular map on unit 1,
// shininess) and draws the mesh.
func (m *GPUMesh) Draw(p *Program) {
	m.diffuse.Bind(0)
	m.specular.Bind(1)
	p.SetInt("material.diffuse", 0)
	p.SetInt("material.specular", 1)
	p.SetFloat("material.shininess", m.Material.Shininess)

	gl.BindVertexArray(m.VAO)
	gl.DrawElements(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

func (m *GPUMesh) Delete() {
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	*m = GPUMesh{}
}

// GPUModel is an uploaded scene.Model. Textures shared between meshes are
// uploaded once.
type GPUModel struct {
	Meshes   []*GPUMesh
	textures []*Texture
}

// UploadModel uploads every mesh and material texture. Meshes without a
// diffuse map sample a 1x1 texture of their diffuse color, and meshes
// without a specular map one of their specular color, so a single shader
// serves both cases.
func UploadModel(model *scene.Model, log *slog.Logger) (*GPUModel, error) {
	out := &GPUModel{}
	cache := map[*scene.Texture]*Texture{}

	upload := func(tex *scene.Texture, fallback core.Color) (*Texture, error) {
		if tex == nil {
			tex = colorTexture(fallback)
		} else if t, ok := cache[tex]; ok {
			return t, nil
		}
		t, err := UploadTexture(tex, TextureOptions{})
		if err != nil {
			return nil, err
		}
		cache[tex] = t
		out.textures = append(out.textures, t)
		return t, nil
	}

	for _, mesh := range model.Meshes {
		gpu, err := UploadMesh(mesh)
		if err != nil {
			log.Warn("mesh skipped", "mesh", mesh.Name, "err", err)
			continue
		}
		mat := gpu.Material
		if gpu.diffuse, err = upload(mat.DiffuseTexture, mat.Diffuse); err != nil {
			gpu.Delete()
			out.Delete()
			return nil, fmt.Errorf("mesh %q diffuse: %w", mesh.Name, err)
		}
		if gpu.specular, err = upload(mat.SpecularTexture, mat.Specular); err != nil {
			gpu.Delete()
			out.Delete()
			return nil, fmt.Errorf("mesh %q specular: %w", mesh.Name, err)
		}
		out.Meshes = append(out.Meshes, gpu)
	}
	return out, nil
}

func colorTexture(c core.Color) *scene.Texture {
	to8 := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return scene.NewSolidTexture("color", to8(c.R), to8(c.G), to8(c.B), 255)
}

func (m *GPUModel) Draw(p *Program) {
	for _, mesh := range m.Meshes {
		mesh.Draw(p)
	}
}

func (m *GPUModel) Delete() {
	if m == nil {
		return
	}
	for _, mesh := range m.Meshes {
		mesh.Delete()
	}
	for _, t := range m.textures {
		t.Delete()
	}
	m.Meshes = nil
	m.textures = nil
}
