package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// Framebuffer is an off-screen render target: an RGB color texture that
// can be sampled afterwards, plus a combined depth/stencil renderbuffer.
type Framebuffer struct {
	FBO      uint32
	ColorTex uint32
	RBO      uint32
	Width    int32
	Height   int32
}

func NewFramebuffer(width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{}
	if err := fb.alloc(width, height); err != nil {
		fb.Delete()
		return nil, err
	}
	return fb, nil
}

func clampSize(width, height int) (int32, int32) {
	return int32(max(width, 1)), int32(max(height, 1))
}

func (fb *Framebuffer) alloc(width, height int) error {
	fb.Width, fb.Height = clampSize(width, height)

	gl.GenFramebuffers(1, &fb.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.FBO)

	gl.GenTextures(1, &fb.ColorTex)
	gl.BindTexture(gl.TEXTURE_2D, fb.ColorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, fb.Width, fb.Height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.ColorTex, 0)

	gl.GenRenderbuffers(1, &fb.RBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.RBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, fb.Width, fb.Height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.RBO)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer incomplete (0x%X)", status)
	}
	return nil
}

func (fb *Framebuffer) free() {
	if fb.FBO != 0 {
		gl.DeleteFramebuffers(1, &fb.FBO)
		fb.FBO = 0
	}
	if fb.ColorTex != 0 {
		gl.DeleteTextures(1, &fb.ColorTex)
		fb.ColorTex = 0
	}
	if fb.RBO != 0 {
		gl.DeleteRenderbuffers(1, &fb.RBO)
		fb.RBO = 0
	}
}

// Resize recreates the attachments at the new pixel dimensions. It is a
// no-op when the size is unchanged.
// After a failed allocation the next call tries again.
func (fb *Framebuffer) Resize(width, height int) error {
	if fb.sizeMatches(width, height) {
		return nil
	}
	fb.free()
	if err := fb.alloc(width, height); err != nil {
		fb.discard()
		return err
	}
	return nil
}

// sizeMatches reports whether live attachments already have this size.
func (fb *Framebuffer) sizeMatches(width, height int) bool {
	w, h := clampSize(width, height)
	return fb.FBO != 0 && w == fb.Width && h == fb.Height
}

// discard releases the attachments and forgets the size.
func (fb *Framebuffer) discard() {
	fb.free()
	fb.Width, fb.Height = 0, 0
}

// Bind makes the framebuffer the render target and sets the viewport to
// cover it.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.FBO)
	gl.Viewport(0, 0, fb.Width, fb.Height)
}

// BindColorTexture binds the color attachment for sampling on unit.
func (fb *Framebuffer) BindColorTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, fb.ColorTex)
}

// BindDefaultFramebuffer switches back to the window's framebuffer.
func BindDefaultFramebuffer(width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (fb *Framebuffer) Delete() {
	if fb != nil {
		fb.free()
	}
}
