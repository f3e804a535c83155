package lesson

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"

	"learn-opengl/internal/opengl"
)

func init() {
	Register(Info{
		Order:   7,
		Name:    "model",
		Title:   "Model Loading",
		Summary: "an OBJ or glTF model under four point lights",
		New:     func() Lesson { return &modelLesson{} },
	})
}

// The nanosuit stands about 16 units tall at the origin.
const (
	modelY     = -1.75
	modelScale = 0.2
)

type modelLesson struct {
	scene *litScene
}

func (l *modelLesson) Setup(env *Env) error {
	var err error
	l.scene, err = newLitScene(env)
	if err != nil {
		return err
	}
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (l *modelLesson) Update(env *Env, f Frame) {
	l.scene.update(env, f)
}

func (l *modelLesson) Render(*Env, Frame) {
	l.scene.clearTo(opengl.ColorDepth)
	l.scene.use()
	l.scene.drawModel(modelTransform(modelY, modelScale))
	l.scene.drawLamps()
}

func (l *modelLesson) Teardown() {
	l.scene.Delete()
}
