package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleaved(t *testing.T) {
	l := Interleaved(3, 3, 2)

	assert.Equal(t, 8, l.Stride)
	assert.Equal(t, int32(32), l.StrideBytes())
	assert.Equal(t, []Attrib{
		{Location: 0, Size: 3, Offset: 0},
		{Location: 1, Size: 3, Offset: 3},
		{Location: 2, Size: 2, Offset: 6},
	}, l.Attribs)
}

func TestSelectKeepsStride(t *testing.T) {
	l := Interleaved(3, 3, 2).Select(0, 2, 7)

	assert.Equal(t, 8, l.Stride)
	require.Len(t, l.Attribs, 2)
	assert.Equal(t, Attrib{Location: 0, Size: 3, Offset: 0}, l.Attribs[0])
	assert.Equal(t, Attrib{Location: 2, Size: 2, Offset: 6}, l.Attribs[1])
}

func TestGeometryTables(t *testing.T) {
	tests := []struct {
		geom     Geometry
		vertices int
		count    int32
	}{
		{Triangle(), 3, 3},
		{TexturedQuad(), 4, 6},
		{LitCube(), 36, 36},
		{TexturedCube(), 36, 36},
		{TransparentQuad(), 6, 6},
		{ScreenQuad(), 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.geom.Name, func(t *testing.T) {
			assert.Zero(t, len(tt.geom.Vertices)%tt.geom.Layout.Stride, "partial vertex")
			assert.Equal(t, tt.vertices, tt.geom.Layout.VertexCount(tt.geom.Vertices))
			assert.Equal(t, tt.count, tt.geom.Count())
			for _, idx := range tt.geom.Indices {
				assert.Less(t, int(idx), tt.vertices)
			}
		})
	}
}

func TestHexagonIndexSets(t *testing.T) {
	verts, upper, lower := Hexagon()

	assert.Equal(t, 6, verts.Layout.VertexCount(verts.Vertices))
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, upper)
	assert.Equal(t, []uint32{0, 3, 4, 0, 4, 5}, lower)
}

func TestTexturedCubeMatchesLitCube(t *testing.T) {
	lit := LitCube()
	tex := TexturedCube()

	for i := 0; i < 36; i++ {
		l := lit.Vertices[i*8 : i*8+8]
		c := tex.Vertices[i*5 : i*5+5]
		assert.Equal(t, l[0:3], c[0:3], "position %d", i)
		assert.Equal(t, l[6:8], c[3:5], "uv %d", i)
	}
}

func TestLitCubeIsCopied(t *testing.T) {
	a := LitCube()
	a.Vertices[0] = 42
	assert.NotEqual(t, float32(42), LitCube().Vertices[0])
}

func TestCubeModel(t *testing.T) {
	// Container 0 spins with time, container 1 keeps its tilt.
	at0 := CubeModel(0, 0)
	at1 := CubeModel(0, 1)
	assert.True(t, matApprox(at0, mgl32.Ident4()))
	assert.False(t, matApprox(at0, at1))

	assert.True(t, matApprox(CubeModel(1, 0), CubeModel(1, 10)))

	pos := CubeModel(4, 3).Col(3).Vec3()
	assert.True(t, vecApprox(pos, CubePositions[4]))

	assert.True(t, matApprox(TiltedCubeModel(0), mgl32.Ident4()))
	assert.True(t, matApprox(TiltedCubeModel(2), CubeModel(2, 99)))
	// Container 3 spins in CubeModel but is tilted by 60 degrees here.
	assert.False(t, matApprox(TiltedCubeModel(3), CubeModel(3, 0)))
}

func TestSortBackToFront(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 3}
	in := []mgl32.Vec3{
		{0, 0, 2},
		{0, 0, -5},
		{1, 0, 0},
		{0, 0, 2.5},
	}
	orig := append([]mgl32.Vec3(nil), in...)

	out := SortBackToFront(in, eye)

	assert.Equal(t, []mgl32.Vec3{{0, 0, -5}, {1, 0, 0}, {0, 0, 2}, {0, 0, 2.5}}, out)
	assert.Equal(t, orig, in, "input must not be reordered")
}

func TestSortBackToFrontStable(t *testing.T) {
	eye := mgl32.Vec3{}
	in := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	assert.Equal(t, in, SortBackToFront(in, eye))
	assert.Empty(t, SortBackToFront(nil, eye))
}

func TestPostEffects(t *testing.T) {
	for d := 0; d <= 5; d++ {
		e, ok := EffectForDigit(d)
		require.True(t, ok, d)
		assert.Equal(t, PostEffect(d), e)

		parsed, err := ParsePostEffect(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, parsed)
	}

	_, ok := EffectForDigit(6)
	assert.False(t, ok)
	_, err := ParsePostEffect("sepia")
	assert.Error(t, err)
	assert.Equal(t, "PostEffect(9)", PostEffect(9).String())
	assert.Equal(t, "grayscale", EffectGrayscale.String())
}
