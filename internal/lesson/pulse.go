package lesson

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/internal/opengl"
	"learn-opengl/scene"
)

func init() {
	Register(Info{
		Order:   2,
		Name:    "shaders",
		Title:   "Shaders",
		Summary: "a triangle whose color is driven by a uniform that pulses over time",
		New:     func() Lesson { return &pulseLesson{} },
	})
}

type pulseLesson struct {
	tri  *opengl.Geometry
	prog *opengl.Program
}

func (l *pulseLesson) Setup(env *Env) error {
	var err error
	if l.prog, err = loadProgram(env, "position.vert", "uniform_color.frag"); err != nil {
		return err
	}
	l.tri = opengl.UploadGeometry(scene.Triangle())
	return nil
}

func (l *pulseLesson) Update(*Env, Frame) {}

func (l *pulseLesson) Render(_ *Env, f Frame) {
	opengl.Clear(0.2, 0.3, 0.3, opengl.ColorBuffer)

	l.prog.Use()
	l.prog.SetVec4("ourColor", pulseColor(f.Time))
	l.tri.Draw()
}

// pulseColor is green with an intensity oscillating in [0, 1].
func pulseColor(t float32) mgl32.Vec4 {
	green := math32.Sin(t)/2 + 0.5
	return mgl32.Vec4{0, green, 0, 1}
}

func (l *pulseLesson) Teardown() {
	release(l.tri, l.prog)
}
