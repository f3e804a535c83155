// Package lesson holds the tutorial programs and the loop that runs them.
package lesson

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"learn-opengl/core"
	"learn-opengl/internal/window"
)

// Lesson is one tutorial program. Setup runs once the GL context is
// current; Teardown releases whatever Setup created, also after a partial
// Setup failure.
type Lesson interface {
	Setup(env *Env) error
	Update(env *Env, frame Frame)
	Render(env *Env, frame Frame)
	Teardown()
}

// Env is what a running lesson sees of the outside world.
type Env struct {
	Window *window.Window
	Config core.Config
	Log    *slog.Logger
}

// Asset resolves a path under the configured assets directory.
func (e *Env) Asset(rel string) string {
	return e.Config.AssetPath(rel)
}

// Frame carries the timing of the current frame in seconds.
type Frame struct {
	Time  float32
	Delta float32
}

// Info describes a registered lesson.
type Info struct {
	Order   int
	Name    string
	Title   string
	Summary string
	New     func() Lesson
}

var registry = map[string]Info{}

// Register adds a lesson. It panics on duplicate names since registration
// happens from init.
func Register(info Info) {
	if info.Name == "" || info.New == nil {
		panic("lesson: Register needs a name and a constructor")
	}
	if _, dup := registry[info.Name]; dup {
		panic(fmt.Sprintf("lesson: %q registered twice", info.Name))
	}
	registry[info.Name] = info
}

// Lookup finds a lesson by name, ignoring case.
func Lookup(name string) (Info, bool) {
	info, ok := registry[strings.ToLower(name)]
	return info, ok
}

// All returns the registered lessons in tutorial order.
func All() []Info {
	out := make([]Info, 0, len(registry))
	for _, info := range registry {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b Info) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
