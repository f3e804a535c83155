package lesson

import (
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/internal/opengl"
	"learn-opengl/scene"
)

const (
	lampScale   = 0.2
	objectShine = 64.0
)

// lampSet draws each point light as a small flat-colored cube. It reads
// only the positions out of a lit cube vertex buffer owned by the caller.
type lampSet struct {
	prog *opengl.Program
	vao  *opengl.VertexArray
}

func newLampSet(env *Env, cubeVBO *opengl.Buffer, cube scene.Geometry) (*lampSet, error) {
	prog, err := loadProgram(env, "lamp.vert", "lamp.frag")
	if err != nil {
		return nil, err
	}
	vao := opengl.NewVertexArray(cubeVBO, cube.Layout.Select(0), cube.Count())
	return &lampSet{prog: prog, vao: vao}, nil
}

// draw renders one lamp per point light, tinted with its color.
func (s *lampSet) draw(view, projection mgl32.Mat4, lighting scene.Lighting) {
	s.prog.Use()
	s.prog.SetMat4("view", view)
	s.prog.SetMat4("projection", projection)
	colors := lighting.LampColors()
	for i, p := range lighting.Points {
		pos := p.Position
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mgl32.Scale3D(lampScale, lampScale, lampScale))
		s.prog.SetMat4("model", model)
		s.prog.SetVec3("color", colors[i])
		s.vao.Draw()
	}
}

func (s *lampSet) Delete() {
	if s == nil {
		return
	}
	release(s.vao, s.prog)
}

// litScene is the loaded model under the point light rig, with its lamps
// and a fly camera.
type litScene struct {
	prog     *opengl.Program
	model    *opengl.GPUModel
	cubeVBO  *opengl.Buffer
	lamps    *lampSet
	lighting scene.Lighting
	cam      *FlyCamera

	view, projection mgl32.Mat4
}

func newLitScene(env *Env) (*litScene, error) {
	s := &litScene{lighting: scene.ModelLighting()}
	var err error
	if s.prog, err = loadProgram(env, "lit.vert", "multilight.frag"); err != nil {
		return s, err
	}
	cube := scene.LitCube()
	s.cubeVBO = opengl.NewVertexBuffer(cube.Vertices)
	if s.lamps, err = newLampSet(env, s.cubeVBO, cube); err != nil {
		return s, err
	}
	s.model = loadModel(env)
	s.cam = NewFlyCamera(env, scene.NewCamera(mgl32.Vec3{0, 0, 3}))
	return s, nil
}

// modelTransform centers the model in view and scales it down.
func modelTransform(y, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, y, 0).Mul4(mgl32.Scale3D(scale, scale, scale))
}

func (s *litScene) update(env *Env, f Frame) {
	s.cam.Move(env.Window, f.Delta)
	s.view = s.cam.GetViewMatrix()
	s.projection = s.cam.Projection(env.Window)
}

// use binds the lighting program with the camera and lights of this frame.
func (s *litScene) use() {
	s.prog.Use()
	s.prog.SetMat4("view", s.view)
	s.prog.SetMat4("projection", s.projection)
	s.prog.SetVec3("viewPos", s.cam.Position)
	s.prog.SetFloat("material.shininess", objectShine)
	s.prog.SetBool("pure", false)
	s.prog.SetBool("emissive", false)
	s.lighting.Apply(s.prog, s.cam.Camera)
}

func (s *litScene) drawModel(model mgl32.Mat4) {
	s.prog.SetMat4("model", model)
	s.model.Draw(s.prog)
}

func (s *litScene) drawLamps() {
	s.lamps.draw(s.view, s.projection, s.lighting)
}

// clearTo clears the bound framebuffer to the rig's background color.
func (s *litScene) clearTo(mask uint32) {
	c := s.lighting.Clear
	opengl.Clear(c.X(), c.Y(), c.Z(), mask)
}

func (s *litScene) Delete() {
	if s == nil {
		return
	}
	release(s.model, s.lamps, s.cubeVBO, s.prog)
}
