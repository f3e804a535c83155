package lesson

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"

	"learn-opengl/internal/opengl"
	"learn-opengl/internal/window"
	"learn-opengl/scene"
)

func init() {
	Register(Info{
		Order:   10,
		Name:    "framebuffer",
		Title:   "Framebuffers",
		Summary: "the blending scene rendered off-screen and post-processed; keys 0-5 pick the effect",
		New:     func() Lesson { return &framebufferLesson{} },
	})
}

var effectKeys = [...]int{
	window.Key0, window.Key1, window.Key2,
	window.Key3, window.Key4, window.Key5,
}

type framebufferLesson struct {
	scene  *litScene
	glass  *transparents
	fb     *opengl.Framebuffer
	screen *opengl.Program
	quad   *opengl.Geometry
	effect scene.PostEffect
}

func (l *framebufferLesson) Setup(env *Env) error {
	var err error
	if l.scene, err = newLitScene(env); err != nil {
		return err
	}
	if l.glass, err = newTransparents(env); err != nil {
		return err
	}
	if l.screen, err = loadProgram(env, "screen.vert", "screen.frag"); err != nil {
		return err
	}
	l.quad = opengl.UploadGeometry(scene.ScreenQuad())

	if l.fb, err = opengl.NewFramebuffer(env.Window.GetFramebufferSize()); err != nil {
		return err
	}

	l.screen.Use()
	l.screen.SetInt("screenTexture", 0)
	return nil
}

func (l *framebufferLesson) Update(env *Env, f Frame) {
	l.scene.update(env, f)
	for d, key := range effectKeys {
		if !env.Window.IsKeyPressed(key) {
			continue
		}
		if e, ok := scene.EffectForDigit(d); ok && e != l.effect {
			l.effect = e
			env.Log.Debug("post effect selected", "effect", e)
		}
	}
}

func (l *framebufferLesson) Render(env *Env, _ Frame) {
	w, h := env.Window.Width, env.Window.Height
	if w == 0 || h == 0 {
		// minimized
		return
	}
	if err := l.fb.Resize(w, h); err != nil {
		env.Log.Error("framebuffer resize failed", "width", w, "height", h, "err", err)
		return
	}

	// Pass 1: the scene into the off-screen target.
	l.fb.Bind()
	gl.Enable(gl.DEPTH_TEST)
	l.scene.clearTo(opengl.ColorDepth | opengl.StencilBuffer)
	l.scene.use()
	l.scene.drawModel(modelTransform(modelY, modelScale))
	l.scene.drawLamps()
	l.glass.draw(l.scene.view, l.scene.projection, l.scene.cam.Position)

	// Pass 2: the color attachment onto a full-screen quad.
	opengl.BindDefaultFramebuffer(w, h)
	gl.Disable(gl.DEPTH_TEST)
	opengl.Clear(1, 1, 1, opengl.ColorBuffer)

	l.screen.Use()
	l.screen.SetInt("effect", int32(l.effect))
	l.fb.BindColorTexture(0)
	l.quad.Draw()

	gl.Enable(gl.DEPTH_TEST)
}

func (l *framebufferLesson) Teardown() {
	release(l.quad, l.screen, l.fb, l.glass, l.scene)
}
