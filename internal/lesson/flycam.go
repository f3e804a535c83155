package lesson

import (
	"github.com/go-gl/mathgl/mgl32"

	"learn-opengl/core"
	"learn-opengl/internal/window"
	"learn-opengl/scene"
)

// FlyCamera connects a scene.Camera to WASD, mouse look and scroll zoom.
type FlyCamera struct {
	*scene.Camera
	mouse *core.MouseTracker
}

// NewFlyCamera captures the cursor and installs the mouse callbacks.
// Speed and sensitivity come from the config.
func NewFlyCamera(env *Env, cam *scene.Camera) *FlyCamera {
	cam.MovementSpeed = env.Config.Camera.Speed
	cam.MouseSensitivity = env.Config.Camera.Sensitivity

	fc := &FlyCamera{Camera: cam, mouse: core.NewMouseTracker()}
	win := env.Window
	win.CaptureCursor()
	win.SetCursorPosCallback(func(x, y float64) {
		dx, dy := fc.mouse.Move(x, y)
		fc.ProcessMouseMovement(dx, dy, true)
	})
	win.SetScrollCallback(func(_, yoff float64) {
		fc.ProcessMouseScroll(float32(yoff))
	})
	return fc
}

// lessonSensitivity returns want while the configured sensitivity is still
// the default. An explicit camera.sensitivity in the config wins.
func lessonSensitivity(cfg core.Config, want float32) float32 {
	if cfg.Camera.Sensitivity != core.DefaultConfig().Camera.Sensitivity {
		return cfg.Camera.Sensitivity
	}
	return want
}

// Move applies the WASD keys for this frame.
func (fc *FlyCamera) Move(win *window.Window, dt float32) {
	if win.IsKeyPressed(window.KeyW) {
		fc.ProcessKeyboard(scene.Forward, dt)
	}
	if win.IsKeyPressed(window.KeyS) {
		fc.ProcessKeyboard(scene.Backward, dt)
	}
	if win.IsKeyPressed(window.KeyA) {
		fc.ProcessKeyboard(scene.Left, dt)
	}
	if win.IsKeyPressed(window.KeyD) {
		fc.ProcessKeyboard(scene.Right, dt)
	}
}

// Projection follows the live framebuffer aspect ratio.
func (fc *FlyCamera) Projection(win *window.Window) mgl32.Mat4 {
	return fc.GetProjectionMatrix(win.Aspect())
}
