package lesson

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/internal/opengl"
	"learn-opengl/scene"
)

func init() {
	Register(Info{
		Order:   4,
		Name:    "coordinates",
		Title:   "Coordinate Systems",
		Summary: "ten textured cubes seen through a WASD/mouse/scroll fly camera",
		New:     func() Lesson { return &coordinatesLesson{mix: 0.2} },
	})
}

// The first camera lesson uses a gentler mouse unless the config sets one.
const coordinatesSensitivity = 0.05

type coordinatesLesson struct {
	cube       *opengl.Geometry
	prog       *opengl.Program
	tex1, tex2 *opengl.Texture
	cam        *FlyCamera
	mix        float32
}

func (l *coordinatesLesson) Setup(env *Env) error {
	var err error
	if l.prog, err = loadProgram(env, "cube.vert", "mix.frag"); err != nil {
		return err
	}
	l.cube = opengl.UploadGeometry(scene.TexturedCube())

	if l.tex1, err = loadTexture(env, "textures/container.jpg", true, opengl.TextureOptions{
		MinFilter: gl.LINEAR_MIPMAP_NEAREST,
	}); err != nil {
		return err
	}
	if l.tex2, err = loadTexture(env, "textures/404.png", true, opengl.TextureOptions{
		WrapS:     gl.MIRRORED_REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_NEAREST,
		MagFilter: gl.NEAREST,
	}); err != nil {
		return err
	}

	l.prog.Use()
	l.prog.SetInt("tex1", 0)
	l.prog.SetInt("tex2", 1)

	l.cam = NewFlyCamera(env, scene.NewCamera(mgl32.Vec3{0, 0, 3}))
	l.cam.MouseSensitivity = lessonSensitivity(env.Config, coordinatesSensitivity)

	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (l *coordinatesLesson) Update(env *Env, f Frame) {
	l.cam.Move(env.Window, f.Delta)
	l.mix = adjustMix(env.Window, l.mix)
}

func (l *coordinatesLesson) Render(env *Env, f Frame) {
	opengl.Clear(0.2, 0.3, 0.3, opengl.ColorDepth)

	l.tex1.Bind(0)
	l.tex2.Bind(1)
	l.prog.Use()
	l.prog.SetFloat("mixParam", l.mix)
	l.prog.SetMat4("view", l.cam.GetViewMatrix())
	l.prog.SetMat4("projection", l.cam.Projection(env.Window))

	for i := range scene.CubePositions {
		l.prog.SetMat4("model", scene.CubeModel(i, f.Time))
		l.cube.Draw()
	}
}

func (l *coordinatesLesson) Teardown() {
	release(l.cube, l.tex1, l.tex2, l.prog)
}
