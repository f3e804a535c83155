package lesson

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learn-opengl/core"
)

func TestRegistryOrder(t *testing.T) {
	want := []string{
		"triangle", "shaders", "textures", "coordinates", "lightingmaps",
		"multilights", "model", "stencil", "blending", "framebuffer",
	}
	all := All()
	require.Len(t, all, len(want))
	for i, info := range all {
		assert.Equal(t, want[i], info.Name)
		assert.NotEmpty(t, info.Title, info.Name)
		assert.NotEmpty(t, info.Summary, info.Name)
		assert.NotNil(t, info.New(), info.Name)
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup("Stencil")
	require.True(t, ok)
	assert.Equal(t, "stencil", info.Name)

	_, ok = Lookup("raytracing")
	assert.False(t, ok)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(Info{Name: "triangle", New: func() Lesson { return &triangleLesson{} }})
	})
	assert.Panics(t, func() { Register(Info{Name: "nameless"}) })
}

func TestEmbeddedShaders(t *testing.T) {
	files, err := fs.Glob(shaderFS, "shaders/*")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, f := range files {
		src, err := shaderFS.ReadFile(f)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(src), "#version 330 core"), f)
		assert.Contains(t, string(src), "void main()", f)
	}
}

func TestPulseColor(t *testing.T) {
	for _, tm := range []float32{0, 0.5, 1.57, 3.14, 4.71, 100} {
		c := pulseColor(tm)
		assert.Zero(t, c.X())
		assert.Zero(t, c.Z())
		assert.Equal(t, float32(1), c.W())
		assert.GreaterOrEqual(t, c.Y(), float32(0))
		assert.LessOrEqual(t, c.Y(), float32(1))
	}
	assert.InDelta(t, 0.5, pulseColor(0).Y(), 1e-6)
}

func TestMultiLightShaderEmission(t *testing.T) {
	src, err := shaderFS.ReadFile("shaders/multilight.frag")
	require.NoError(t, err)
	for _, decl := range []string{"sampler2D emission;", "uniform bool emissive;", "material.emission"} {
		assert.Contains(t, string(src), decl)
	}
}

func TestLessonSensitivity(t *testing.T) {
	cfg := core.DefaultConfig()
	assert.Equal(t, float32(coordinatesSensitivity), lessonSensitivity(cfg, coordinatesSensitivity))

	cfg.Camera.Sensitivity = 0.3
	assert.Equal(t, float32(0.3), lessonSensitivity(cfg, coordinatesSensitivity))
}
