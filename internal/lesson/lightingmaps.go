package lesson

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/internal/opengl"
	"learn-opengl/scene"
)

func init() {
	Register(Info{
		Order:   5,
		Name:    "lightingmaps",
		Title:   "Lighting Maps",
		Summary: "containers with diffuse, specular and emission maps lit by a flashlight",
		New:     func() Lesson { return &lightingMapsLesson{} },
	})
}

type lightingMapsLesson struct {
	cube                        *opengl.Geometry
	prog                        *opengl.Program
	diffuse, specular, emission *opengl.Texture
	cam                         *FlyCamera
	clear                       mgl32.Vec3
	light                       scene.SpotLight
}

func (l *lightingMapsLesson) Setup(env *Env) error {
	var err error
	if l.prog, err = loadProgram(env, "lit.vert", "flashlight.frag"); err != nil {
		return err
	}
	l.cube = opengl.UploadGeometry(scene.LitCube())

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

	l.clear, l.light = scene.FlashlightOnly()
	l.cam = NewFlyCamera(env, scene.NewCamera(mgl32.Vec3{0, 0, 3}))
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (l *lightingMapsLesson) Update(env *Env, f Frame) {
	l.cam.Move(env.Window, f.Delta)
}

func (l *lightingMapsLesson) Render(env *Env, _ Frame) {
	opengl.Clear(l.clear.X(), l.clear.Y(), l.clear.Z(), opengl.ColorDepth)

	l.prog.Use()
	l.prog.SetMat4("view", l.cam.GetViewMatrix())
	l.prog.SetMat4("projection", l.cam.Projection(env.Window))
	l.prog.SetVec3("viewPos", l.cam.Position)
	l.prog.SetFloat("material.shininess", objectShine)
	scene.ApplySpot(l.prog, "light", l.light, l.cam.Camera)

	l.diffuse.Bind(0)
	l.specular.Bind(1)
	l.emission.Bind(2)
	for i := range scene.CubePositions {
		l.prog.SetMat4("model", scene.TiltedCubeModel(i))
		l.cube.Draw()
	}
}

func (l *lightingMapsLesson) Teardown() {
	release(l.cube, l.diffuse, l.specular, l.emission, l.prog)
}
