package lesson

import (
	"context"
	"fmt"
	"log/slog"

	"learn-opengl/core"
	"learn-opengl/internal/opengl"
	"learn-opengl/internal/window"
)

// Run opens a window for l and drives it until the window closes, Escape is
// pressed or ctx is cancelled.
func Run(ctx context.Context, cfg core.Config, log *slog.Logger, info Info) error {
	log = log.With("lesson", info.Name)

	wcfg := cfg.Window
	if info.Title != "" {
		wcfg.Title = fmt.Sprintf("%s - %s", wcfg.Title, info.Title)
	}
	win, err := window.New(wcfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	if _, err := opengl.Init(log); err != nil {
		return err
	}
	opengl.SetViewport(win.GetFramebufferSize())
	win.OnFramebufferResize(func(width, height int) {
		opengl.SetViewport(width, height)
		log.Debug("framebuffer resized", "width", width, "height", height)
	})

	env := &Env{Window: win, Config: cfg, Log: log}
	l := info.New()
	defer l.Teardown()
	if err := l.Setup(env); err != nil {
		return fmt.Errorf("lesson %s setup: %w", info.Name, err)
	}
	log.Info("lesson started")

	timer := core.NewFrameTimer(win.Time)
	frames := 0
	for !win.ShouldClose() {
		if err := ctx.Err(); err != nil {
			log.Info("interrupted", "frames", frames)
			return nil
		}
		now, dt := timer.Tick()
		frame := Frame{Time: now, Delta: dt}

		if win.IsKeyPressed(window.KeyEscape) {
			win.SetShouldClose(true)
		}
		l.Update(env, frame)
		l.Render(env, frame)

		win.SwapBuffers()
		win.PollEvents()
		frames++
	}
	log.Info("lesson finished", "frames", frames)
	return nil
}
