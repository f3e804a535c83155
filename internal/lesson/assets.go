package lesson

import (
	"embed"
	"fmt"

	"learn-opengl/internal/opengl"
	"learn-opengl/scene"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// loadProgram builds a program from two embedded shader files. Compile and
// link errors carry the GL info log and are logged before being returned.
func loadProgram(env *Env, vert, frag string) (*opengl.Program, error) {
	vs, err := shaderFS.ReadFile("shaders/" + vert)
	if err != nil {
		return nil, fmt.Errorf("read shader %s: %w", vert, err)
	}
	fs, err := shaderFS.ReadFile("shaders/" + frag)
	if err != nil {
		return nil, fmt.Errorf("read shader %s: %w", frag, err)
	}
	name := vert + "+" + frag
	prog, err := opengl.NewProgram(name, string(vs), string(fs))
	if err != nil {
		env.Log.Error("shader program failed", "program", name, "err", err)
		return nil, err
	}
	return prog, nil
}

// loadTexture uploads an image from the assets directory. A file that is
// missing or cannot be decoded is logged and replaced by a placeholder so
// the lesson keeps running.
func loadTexture(env *Env, rel string, flipY bool, opts opengl.TextureOptions) (*opengl.Texture, error) {
	path := env.Asset(rel)
	tex, err := scene.LoadTexture(path, flipY)
	if err != nil {
		env.Log.Warn("texture failed to load, using placeholder", "path", path, "err", err)
		tex = scene.MissingTexture(path)
	}
	return opengl.UploadTexture(tex, opts)
}

// loadModel loads the configured model. A missing or broken model is
// logged and the lesson continues with nothing to draw.
func loadModel(env *Env) *opengl.GPUModel {
	path := env.Asset(env.Config.Assets.Model)
	model, err := scene.LoadModel(path, env.Log)
	if err != nil {
		env.Log.Error("model failed to load", "path", path, "err", err)
		return &opengl.GPUModel{}
	}
	gpu, err := opengl.UploadModel(model, env.Log)
	if err != nil {
		env.Log.Error("model upload failed", "path", path, "err", err)
		return &opengl.GPUModel{}
	}
	env.Log.Info("model loaded", "path", path, "meshes", len(model.Meshes), "vertices", model.VertexCount())
	return gpu
}

// release deletes whatever GL objects were created, in order, skipping nils.
type deleter interface{ Delete() }

func release(items ...deleter) {
	for _, it := range items {
		if it == nil {
			continue
		}
		it.Delete()
	}
}
