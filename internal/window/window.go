package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"learn-opengl/core"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	onResize func(width, height int)
}

// New initializes GLFW and opens a window with a current OpenGL 3.3 core
// context.
func New(config core.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	if config.Samples > 0 {
		glfw.WindowHint(glfw.Samples, config.Samples)
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}
	window.Width, window.Height = handle.GetFramebufferSize()

	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		if window.onResize != nil {
			window.onResize(width, height)
		}
	})

	return window, nil
}

// OnFramebufferResize registers a handler for framebuffer size changes.
func (w *Window) OnFramebufferResize(cb func(width, height int)) {
	w.onResize = cb
}

// Aspect is the live framebuffer aspect ratio. A minimized window reports 1.
func (w *Window) Aspect() float32 {
	if w.Width <= 0 || w.Height <= 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

// Time is seconds since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

// CaptureCursor hides the cursor and keeps it inside the window, as the
// fly camera expects.
func (w *Window) CaptureCursor() {
	w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

type CursorPosCallback func(x, y float64)

func (w *Window) SetCursorPosCallback(cb CursorPosCallback) {
	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		cb(x, y)
	})
}

// ScrollCallback is the type for scroll event handlers
type ScrollCallback func(xoff, yoff float64)

func (w *Window) SetScrollCallback(cb ScrollCallback) {
	w.Handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

func boolToInt(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

const (
	Key0      = int(glfw.Key0)
	Key1      = int(glfw.Key1)
	Key2      = int(glfw.Key2)
	Key3      = int(glfw.Key3)
	Key4      = int(glfw.Key4)
	Key5      = int(glfw.Key5)
	KeyA      = int(glfw.KeyA)
	KeyD      = int(glfw.KeyD)
	KeyS      = int(glfw.KeyS)
	KeyW      = int(glfw.KeyW)
	KeyEscape = int(glfw.KeyEscape)
	KeyRight  = int(glfw.KeyRight)
	KeyLeft   = int(glfw.KeyLeft)
	KeyDown   = int(glfw.KeyDown)
	KeyUp     = int(glfw.KeyUp)
)
