package lesson

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/internal/opengl"
)

func init() {
	Register(Info{
		Order:   8,
		Name:    "stencil",
		Title:   "Stencil Testing",
		Summary: "the model outlined by a slightly larger copy masked with the stencil buffer",
		New:     func() Lesson { return &stencilLesson{} },
	})
}

const (
	outlineY     = -1.8
	outlineScale = 0.205
)

var outlineColor = mgl32.Vec3{0.04, 0.28, 0.26}

type stencilLesson struct {
	scene *litScene
}

func (l *stencilLesson) Setup(env *Env) error {
	var err error
	if l.scene, err = newLitScene(env); err != nil {
		return err
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	return nil
}

func (l *stencilLesson) Update(env *Env, f Frame) {
	l.scene.update(env, f)
}

func (l *stencilLesson) Render(*Env, Frame) {
	// The stencil mask must be writable for the clear to reach it.
	gl.StencilMask(0xFF)
	l.scene.clearTo(opengl.ColorDepth | opengl.StencilBuffer)

	gl.StencilMask(0x00)
	l.scene.drawLamps()

	// Pass 1: the model marks its pixels with 1.
	gl.StencilFunc(gl.ALWAYS, 1, 0xFF)
	gl.StencilMask(0xFF)
	l.scene.use()
	l.scene.drawModel(modelTransform(modelY, modelScale))

	// Pass 2: the enlarged copy only lands outside the marked pixels.
	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.StencilMask(0x00)
	gl.Disable(gl.DEPTH_TEST)
	l.scene.prog.SetBool("pure", true)
	l.scene.prog.SetVec3("outlineColor", outlineColor)
	l.scene.drawModel(modelTransform(outlineY, outlineScale))

	gl.StencilMask(0xFF)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
	gl.Enable(gl.DEPTH_TEST)
	l.scene.prog.SetBool("pure", false)
}

func (l *stencilLesson) Teardown() {
	l.scene.Delete()
}
