package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.3-core/gl"

	"learn-opengl/scene"
)

// Texture is an uploaded 2D texture.
type Texture struct {
	ID     uint32
	Width  int32
	Height int32
}

// TextureOptions overrides sampling parameters. Zero fields take the
// defaults: REPEAT wrapping (CLAMP_TO_EDGE for textures with alpha),
// trilinear minification, linear magnification.
type TextureOptions struct {
	WrapS     int32
	WrapT     int32
	MinFilter int32
	MagFilter int32
}

func (o TextureOptions) withDefaults(hasAlpha bool) TextureOptions {
	wrap := int32(gl.REPEAT)
	if hasAlpha {
		// Interpolating against the repeated opposite edge leaves
		// semi-transparent borders.
		wrap = gl.CLAMP_TO_EDGE
	}
	if o.WrapS == 0 {
		o.WrapS = wrap
	}
	if o.WrapT == 0 {
		o.WrapT = wrap
	}
	if o.MinFilter == 0 {
		o.MinFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	if o.MagFilter == 0 {
		o.MagFilter = gl.LINEAR
	}
	return o
}

// UploadTexture uploads a scene.Texture to the GPU and builds mipmaps.
// Call this from the main goroutine (OpenGL context must be current).
func UploadTexture(tex *scene.Texture, opts TextureOptions) (*Texture, error) {
	if tex == nil {
		return nil, fmt.Errorf("nil texture")
	}
	if len(tex.Pixels) == 0 || len(tex.Pixels) < tex.Width*tex.Height*4 {
		return nil, fmt.Errorf("texture %q has no pixel data", tex.Name)
	}
	opts = opts.withDefaults(tex.HasAlpha)

	t := &Texture{Width: int32(tex.Width), Height: int32(tex.Height)}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.WrapT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, opts.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		t.Width,
		t.Height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&tex.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Bind binds the texture to the given texture unit (0, 1, 2, ...).
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete frees the GPU texture.
func (t *Texture) Delete() {
	if t == nil || t.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
