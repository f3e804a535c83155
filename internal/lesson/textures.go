package lesson

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"

	"learn-opengl/internal/opengl"
	"learn-opengl/internal/window"
	"learn-opengl/scene"
)

func init() {
	Register(Info{
		Order:   3,
		Name:    "textures",
		Title:   "Textures",
		Summary: "a quad mixing two textures; Up/Down change the mix",
		New:     func() Lesson { return &texturesLesson{mix: 0.2} },
	})
}

const mixStep = 0.01

type texturesLesson struct {
	quad       *opengl.Geometry
	prog       *opengl.Program
	tex1, tex2 *opengl.Texture
	mix        float32
}

func (l *texturesLesson) Setup(env *Env) error {
	var err error
	if l.prog, err = loadProgram(env, "quad.vert", "mix.frag"); err != nil {
		return err
	}
	l.quad = opengl.UploadGeometry(scene.TexturedQuad())

	if l.tex1, err = loadTexture(env, "textures/container.jpg", true, opengl.TextureOptions{
		WrapS:     gl.CLAMP_TO_EDGE,
		WrapT:     gl.REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_NEAREST,
		MagFilter: gl.LINEAR,
	}); err != nil {
		return err
	}
	if l.tex2, err = loadTexture(env, "textures/404.png", true, opengl.TextureOptions{
		WrapS:     gl.MIRRORED_REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_NEAREST,
		MagFilter: gl.NEAREST,
	}); err != nil {
		return err
	}

	l.prog.Use()
	l.prog.SetInt("tex1", 0)
	l.prog.SetInt("tex2", 1)
	return nil
}

func (l *texturesLesson) Update(env *Env, _ Frame) {
	l.mix = adjustMix(env.Window, l.mix)
}

// adjustMix nudges the blend factor while Up or Down is held, staying in
// [0, 1].
func adjustMix(win *window.Window, mix float32) float32 {
	if win.IsKeyPressed(window.KeyUp) {
		mix = min(mix+mixStep, 1)
	}
	if win.IsKeyPressed(window.KeyDown) {
		mix = max(mix-mixStep, 0)
	}
	return mix
}

func (l *texturesLesson) Render(*Env, Frame) {
	opengl.Clear(0.2, 0.3, 0.3, opengl.ColorBuffer)

	l.tex1.Bind(0)
	l.tex2.Bind(1)
	l.prog.Use()
	l.prog.SetFloat("mixParam", l.mix)
	l.quad.Draw()
}

func (l *texturesLesson) Teardown() {
	release(l.quad, l.tex1, l.tex2, l.prog)
}
