package opengl

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"

	"learn-opengl/scene"
)

// Buffer is a GL buffer object holding static data.
type Buffer struct {
	ID     uint32
	Target uint32
}

// NewVertexBuffer uploads float32 vertex data to an ARRAY_BUFFER.
func NewVertexBuffer(data []float32) *Buffer {
	b := &Buffer{Target: gl.ARRAY_BUFFER}
	gl.GenBuffers(1, &b.ID)
	gl.BindBuffer(b.Target, b.ID)
	if len(data) > 0 {
		gl.BufferData(b.Target, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	return b
}

// NewIndexBuffer uploads uint32 indices to an ELEMENT_ARRAY_BUFFER. Bind a
// vertex array first: the element binding is VAO state.
func NewIndexBuffer(indices []uint32) *Buffer {
	b := &Buffer{Target: gl.ELEMENT_ARRAY_BUFFER}
	gl.GenBuffers(1, &b.ID)
	gl.BindBuffer(b.Target, b.ID)
	if len(indices) > 0 {
		gl.BufferData(b.Target, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}
	return b
}

func (b *Buffer) Bind() {
	gl.BindBuffer(b.Target, b.ID)
}

func (b *Buffer) Delete() {
	if b != nil && b.ID != 0 {
		gl.DeleteBuffers(1, &b.ID)
		b.ID = 0
	}
}

// VertexArray records the attribute layout over a vertex buffer and an
// optional index buffer.
type VertexArray struct {
	ID      uint32
	Count   int32 // vertices or indices drawn
	indexed bool
	ebo     *Buffer
}

// NewVertexArray configures a VAO reading vbo with the given layout.
// The same vbo may back several vertex arrays with different layouts.
func NewVertexArray(vbo *Buffer, layout scene.VertexLayout, count int32) *VertexArray {
	va := &VertexArray{Count: count}
	gl.GenVertexArrays(1, &va.ID)
	gl.BindVertexArray(va.ID)

	vbo.Bind()
	stride := layout.StrideBytes()
	for _, a := range layout.Attribs {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(a.Offset*4))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindVertexArray(0)
	return va
}

// WithIndices attaches an index buffer; subsequent draws are indexed.
func (va *VertexArray) WithIndices(indices []uint32) *VertexArray {
	gl.BindVertexArray(va.ID)
	va.ebo = NewIndexBuffer(indices)
	gl.BindVertexArray(0)
	va.indexed = true
	va.Count = int32(len(indices))
	return va
}

// Geometry is a vertex buffer plus its vertex array, built from a static
// table.
type Geometry struct {
	VBO *Buffer
	VAO *VertexArray
}

// UploadGeometry uploads g with its full layout.
func UploadGeometry(g scene.Geometry) *Geometry {
	vbo := NewVertexBuffer(g.Vertices)
	va := NewVertexArray(vbo, g.Layout, int32(g.Layout.VertexCount(g.Vertices)))
	if len(g.Indices) > 0 {
		va.WithIndices(g.Indices)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return &Geometry{VBO: vbo, VAO: va}
}

func (g *Geometry) Draw() {
	g.VAO.Draw()
}

func (g *Geometry) Delete() {
	if g == nil {
		return
	}
	g.VAO.Delete()
	g.VBO.Delete()
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.ID)
}

// Draw issues a triangle draw call over the whole array.
func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.ID)
	if va.indexed {
		gl.DrawElements(gl.TRIANGLES, va.Count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, va.Count)
	}
}

func (va *VertexArray) Delete() {
	if va == nil {
		return
	}
	va.ebo.Delete()
	if va.ID != 0 {
		gl.DeleteVertexArrays(1, &va.ID)
		va.ID = 0
	}
}
