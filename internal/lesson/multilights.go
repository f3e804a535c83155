package lesson

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/internal/opengl"
	"learn-opengl/internal/window"
	"learn-opengl/scene"
)

func init() {
	Register(Info{
		Order:   6,
		Name:    "multilights",
		Title:   "Multiple Lights",
		Summary: "directional, point and spot lights; keys 1-4 switch between four moods",
		New:     func() Lesson { return &multiLightsLesson{} },
	})
}

var moodKeys = [...]struct {
	key  int
	mood scene.Mood
}{
	{window.Key1, scene.Desert},
	{window.Key2, scene.Factory},
	{window.Key3, scene.Horror},
	{window.Key4, scene.Biochemical},
}

type multiLightsLesson struct {
	vbo               *opengl.Buffer
	cube              *opengl.VertexArray
	prog              *opengl.Program
	lamps             *lampSet
	diffuse, specular *opengl.Texture
	emission          *opengl.Texture
	cam               *FlyCamera

	mood     scene.Mood
	lighting scene.Lighting
}

func (l *multiLightsLesson) Setup(env *Env) error {
	var err error
	if l.prog, err = loadProgram(env, "lit.vert", "multilight.frag"); err != nil {
		return err
	}

	geom := scene.LitCube()
	l.vbo = opengl.NewVertexBuffer(geom.Vertices)
	l.cube = opengl.NewVertexArray(l.vbo, geom.Layout, geom.Count())
	if l.lamps, err = newLampSet(env, l.vbo, geom); err != nil {
		return err
	}

	if l.diffuse, err = loadTexture(env, "textures/box_diffuse.png", true, opengl.TextureOptions{}); err != nil {
		return err
	}
	if l.specular, err = loadTexture(env, "textures/box_specular.png", true, opengl.TextureOptions{}); err != nil {
		return err
	}
	if l.emission, err = loadTexture(env, "textures/matrix.jpg", true, opengl.TextureOptions{}); err != nil {
		return err
	}
	l.prog.Use()
	l.prog.SetInt("material.diffuse", 0)
	l.prog.SetInt("material.specular", 1)
	l.prog.SetInt("material.emission", 2)

	l.setMood(env, scene.Desert)
	l.cam = NewFlyCamera(env, scene.NewCamera(mgl32.Vec3{0, 0, 3}))
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (l *multiLightsLesson) setMood(env *Env, m scene.Mood) {
	l.mood = m
	l.lighting = scene.MoodLighting(m)
	env.Window.SetTitle(fmt.Sprintf("%s - Multiple Lights (%s)", env.Config.Window.Title, m))
	env.Log.Debug("mood selected", "mood", m)
}

func (l *multiLightsLesson) Update(env *Env, f Frame) {
	l.cam.Move(env.Window, f.Delta)
	for _, mk := range moodKeys {
		if env.Window.IsKeyPressed(mk.key) && l.mood != mk.mood {
			l.setMood(env, mk.mood)
		}
	}
}

func (l *multiLightsLesson) Render(env *Env, _ Frame) {
	c := l.lighting.Clear
	opengl.Clear(c.X(), c.Y(), c.Z(), opengl.ColorDepth)

	view := l.cam.GetViewMatrix()
	projection := l.cam.Projection(env.Window)

	l.prog.Use()
	l.prog.SetMat4("view", view)
	l.prog.SetMat4("projection", projection)
	l.prog.SetVec3("viewPos", l.cam.Position)
	l.prog.SetFloat("material.shininess", objectShine)
	l.prog.SetBool("pure", false)
	l.prog.SetBool("emissive", true)
	l.lighting.Apply(l.prog, l.cam.Camera)

	l.diffuse.Bind(0)
	l.specular.Bind(1)
	l.emission.Bind(2)
	for i := range scene.CubePositions {
		l.prog.SetMat4("model", scene.TiltedCubeModel(i))
		l.cube.Draw()
	}

	l.lamps.draw(view, projection, l.lighting)
}

func (l *multiLightsLesson) Teardown() {
	release(l.lamps, l.cube, l.vbo, l.diffuse, l.specular, l.emission, l.prog)
}
