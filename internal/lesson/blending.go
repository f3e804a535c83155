package lesson

import (
	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/internal/opengl"
	"learn-opengl/scene"
)

func init() {
	Register(Info{
		Order:   9,
		Name:    "blending",
		Title:   "Blending",
		Summary: "grass cut out with discard and glass panes blended back to front",
		New:     func() Lesson { return &blendingLesson{} },
	})
}

const grassScale = 0.8

// transparents draws the grass sprites and the glass panes. Both textures
// are loaded unflipped; the quad's uvs account for that.
type transparents struct {
	prog         *opengl.Program
	quad         *opengl.Geometry
	grass, glass *opengl.Texture
}

func newTransparents(env *Env) (*transparents, error) {
	t := &transparents{}
	var err error
	if t.prog, err = loadProgram(env, "blending.vert", "blending.frag"); err != nil {
		return t, err
	}
	t.quad = opengl.UploadGeometry(scene.TransparentQuad())
	if t.grass, err = loadTexture(env, "textures/grass.png", false, opengl.TextureOptions{}); err != nil {
		return t, err
	}
	if t.glass, err = loadTexture(env, "textures/window.png", false, opengl.TextureOptions{}); err != nil {
		return t, err
	}
	return t, nil
}

// draw renders the cut-out grass first, then the blended panes sorted
// farthest first so nearer glass composites over farther glass.
func (t *transparents) draw(view, projection mgl32.Mat4, eye mgl32.Vec3) {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	t.prog.Use()
	t.prog.SetInt("texture1", 0)
	t.prog.SetMat4("view", view)
	t.prog.SetMat4("projection", projection)

	t.grass.Bind(0)
	for _, pos := range scene.GrassPositions {
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mgl32.Scale3D(grassScale, grassScale, grassScale))
		t.prog.SetMat4("model", model)
		t.quad.Draw()
	}

	t.glass.Bind(0)
	for _, pos := range scene.SortBackToFront(scene.WindowPositions, eye) {
		t.prog.SetMat4("model", mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
		t.quad.Draw()
	}

	gl.Disable(gl.BLEND)
}

func (t *transparents) Delete() {
	if t == nil {
		return
	}
	release(t.quad, t.grass, t.glass, t.prog)
}

type blendingLesson struct {
	scene *litScene
	glass *transparents
}

func (l *blendingLesson) Setup(env *Env) error {
	var err error
	if l.scene, err = newLitScene(env); err != nil {
		return err
	}
	if l.glass, err = newTransparents(env); err != nil {
		return err
	}
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (l *blendingLesson) Update(env *Env, f Frame) {
	l.scene.update(env, f)
}

func (l *blendingLesson) Render(*Env, Frame) {
	l.scene.clearTo(opengl.ColorDepth)
	l.scene.use()
	l.scene.drawModel(modelTransform(modelY, modelScale))
	l.scene.drawLamps()
	l.glass.draw(l.scene.view, l.scene.projection, l.scene.cam.Position)
}

func (l *blendingLesson) Teardown() {
	release(l.glass, l.scene)
}
