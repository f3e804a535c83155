package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// Info describes the current GL context.
type Info struct {
	Version          string
	Renderer         string
	GLSL             string
	MaxVertexAttribs int32
}

// Init loads the GL function pointers and reports the context. It must be
// called after the window's context is made current.
func Init(log *slog.Logger) (Info, error) {
	if err := gl.Init(); err != nil {
		return Info{}, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	info := Info{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &info.MaxVertexAttribs)

	log.Info("OpenGL context ready",
		"version", info.Version,
		"renderer", info.Renderer,
		"glsl", info.GLSL,
		"max_vertex_attribs", info.MaxVertexAttribs)
	return info, nil
}

// SetViewport maps normalized device coordinates onto the whole framebuffer.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear sets the clear color and clears the buffers in mask.
func Clear(r, g, b float32, mask uint32) {
	gl.ClearColor(r, g, b, 1.0)
	gl.Clear(mask)
}

const (
	ColorBuffer   = gl.COLOR_BUFFER_BIT
	DepthBuffer   = gl.DEPTH_BUFFER_BIT
	StencilBuffer = gl.STENCIL_BUFFER_BIT
	ColorDepth    = gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT
)
