package lesson

import (
	"learn-opengl/internal/opengl"
	"learn-opengl/scene"
)

func init() {
	Register(Info{
		Order:   1,
		Name:    "triangle",
		Title:   "Hello Triangle",
		Summary: "a hexagon drawn as two indexed halves sharing one vertex buffer",
		New:     func() Lesson { return &triangleLesson{} },
	})
}

type triangleLesson struct {
	vbo          *opengl.Buffer
	upper, lower *opengl.VertexArray
	orange       *opengl.Program
	yellow       *opengl.Program
}

func (l *triangleLesson) Setup(env *Env) error {
	var err error
	if l.orange, err = loadProgram(env, "position.vert", "orange.frag"); err != nil {
		return err
	}
	if l.yellow, err = loadProgram(env, "position.vert", "yellow.frag"); err != nil {
		return err
	}

	hex, upper, lower := scene.Hexagon()
	l.vbo = opengl.NewVertexBuffer(hex.Vertices)
	count := int32(hex.Layout.VertexCount(hex.Vertices))
	l.upper = opengl.NewVertexArray(l.vbo, hex.Layout, count).WithIndices(upper)
	l.lower = opengl.NewVertexArray(l.vbo, hex.Layout, count).WithIndices(lower)
	return nil
}

func (l *triangleLesson) Update(*Env, Frame) {}

func (l *triangleLesson) Render(*Env, Frame) {
	opengl.Clear(0.2, 0.3, 0.3, opengl.ColorBuffer)

	l.orange.Use()
	l.upper.Draw()
	l.yellow.Use()
	l.lower.Draw()
}

func (l *triangleLesson) Teardown() {
	release(l.upper, l.lower, l.vbo, l.orange, l.yellow)
}
