package opengl

import "testing"

func TestFramebufferSizeMatches(t *testing.T) {
	fb := &Framebuffer{FBO: 1, Width: 800, Height: 600}
	if !fb.sizeMatches(800, 600) {
		t.Error("same size should not reallocate")
	}
	if fb.sizeMatches(1024, 600) {
		t.Error("new width should reallocate")
	}

	small := &Framebuffer{FBO: 1, Width: 1, Height: 1}
	if !small.sizeMatches(0, -3) {
		t.Error("sizes below one clamp to one pixel")
	}
}

func TestFramebufferRetriesAfterFailedAlloc(t *testing.T) {
	// A failed alloc has already stored the requested size.
	fb := &Framebuffer{Width: 800, Height: 600}
	fb.discard()

	if fb.Width != 0 || fb.Height != 0 {
		t.Errorf("size not reset: %dx%d", fb.Width, fb.Height)
	}
	if fb.sizeMatches(800, 600) {
		t.Error("resize to the failed size must be attempted again")
	}
}
