package scene

import "github.com/go-gl/mathgl/mgl32"

// Geometry is a static vertex table together with its layout and optional
// index buffer.
type Geometry struct {
	Name     string
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// Count is the number of elements a draw call needs: indices if present,
// vertices otherwise.
func (g Geometry) Count() int32 {
	if len(g.Indices) > 0 {
		return int32(len(g.Indices))
	}
	return int32(g.Layout.VertexCount(g.Vertices))
}

// Hexagon is six corner positions drawn as two halves, each through its
// own index buffer.
func Hexagon() (verts Geometry, upper, lower []uint32) {
	verts = Geometry{
		Name: "hexagon",
		Vertices: []float32{
			0.25, 0.5, 0.0,
			0.5, 0.0, 0.0,
			0.25, -0.5, 0.0,
			-0.25, -0.5, 0.0,
			-0.5, 0.0, 0.0,
			-0.25, 0.5, 0.0,
		},
		Layout: Interleaved(3),
	}
	upper = []uint32{
		0, 1, 2,
		0, 2, 3,
	}
	lower = []uint32{
		0, 3, 4,
		0, 4, 5,
	}
	return verts, upper, lower
}

func Triangle() Geometry {
	return Geometry{
		Name: "triangle",
		Vertices: []float32{
			0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,
			-0.5, -0.5, 0.0,
		},
		Layout: Interleaved(3),
	}
}

// TexturedQuad has position, color and uv attributes. The uvs only cover a
// quarter of the texture, which zooms into its lower-left corner.
func TexturedQuad() Geometry {
	return Geometry{
		Name: "textured-quad",
		Vertices: []float32{
			// positions     // colors     // uv
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.25, 0.25,
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 0.25, 0.0,
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 0.25,
		},
		Indices: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
		Layout: Interleaved(3, 3, 2),
	}
}

// litCube is 36 vertices of position, normal and uv.
var litCube = []float32{
	// positions       // normals        // uv
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,

	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
}

// LitCube is a unit cube with per-face normals and uvs, laid out as
// position (0), normal (1), uv (2).
func LitCube() Geometry {
	v := make([]float32, len(litCube))
	copy(v, litCube)
	return Geometry{Name: "lit-cube", Vertices: v, Layout: Interleaved(3, 3, 2)}
}

// TexturedCube is LitCube without normals: position (0), uv (1).
func TexturedCube() Geometry {
	const src = 8
	v := make([]float32, 0, len(litCube)/src*5)
	for i := 0; i+src <= len(litCube); i += src {
		v = append(v, litCube[i:i+3]...)
		v = append(v, litCube[i+6:i+8]...)
	}
	return Geometry{Name: "textured-cube", Vertices: v, Layout: Interleaved(3, 2)}
}

// TransparentQuad is a unit quad standing on y = -0.5, laid out like
// LitCube (position, normal, uv) so the same shaders can draw it. Its uv
// v axis is flipped to match textures loaded without a vertical flip.
func TransparentQuad() Geometry {
	return Geometry{
		Name: "transparent-quad",
		Vertices: []float32{
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
			0.0, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 1.0,
			1.0, -0.5, 0.0, 0.0, 0.0, 1.0, 1.0, 1.0,

			0.0, 0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
			1.0, -0.5, 0.0, 0.0, 0.0, 1.0, 1.0, 1.0,
			1.0, 0.5, 0.0, 0.0, 0.0, 1.0, 1.0, 0.0,
		},
		Layout: Interleaved(3, 3, 2),
	}
}

// ScreenQuad covers the whole viewport in normalized device coordinates:
// position (0, vec2), uv (1).
func ScreenQuad() Geometry {
	return Geometry{
		Name: "screen-quad",
		Vertices: []float32{
			-1.0, 1.0, 0.0, 1.0,
			-1.0, -1.0, 0.0, 0.0,
			1.0, -1.0, 1.0, 0.0,

			-1.0, 1.0, 0.0, 1.0,
			1.0, -1.0, 1.0, 0.0,
			1.0, 1.0, 1.0, 1.0,
		},
		Layout: Interleaved(2, 2),
	}
}

// CubePositions are the world positions of the ten containers.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// CubeRotationAxis is the axis every container turns around.
var CubeRotationAxis = mgl32.Vec3{1.0, 0.3, 0.5}

// CubeModel is the model matrix of container i at time t (seconds). Every
// third container spins at 25 degrees per second; the others keep a fixed
// tilt of 20 degrees per index.
func CubeModel(i int, t float32) mgl32.Mat4 {
	if i%3 != 0 {
		return TiltedCubeModel(i)
	}
	return cubeModel(i, t*25)
}

// TiltedCubeModel is the still pose of container i, tilted by 20 degrees
// per index.
func TiltedCubeModel(i int) mgl32.Mat4 {
	return cubeModel(i, 20*float32(i))
}

func cubeModel(i int, angle float32) mgl32.Mat4 {
	pos := CubePositions[i%len(CubePositions)]
	return mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angle), CubeRotationAxis.Normalize()))
}

// GrassPositions place the grass sprites around the model.
var GrassPositions = []mgl32.Vec3{
	{0.9, -1.4, 0.4},
	{0.8, -1.4, 0.8},
	{0.4, -1.4, 0.1},
	{-0.8, -1.4, 0.1},
}

// WindowPositions place the semi-transparent glass panes.
var WindowPositions = []mgl32.Vec3{
	{0.0, 0.0, 2.0},
	{-1.5, 0.0, -0.48},
	{1.5, 0.0, 0.51},
	{0.0, 0.0, 0.7},
	{-0.3, 0.0, -2.3},
	{0.5, 0.0, -0.6},
}
