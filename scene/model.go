package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// LoadModel picks a loader from the file extension.
func LoadModel(path string, log *slog.Logger) (*Model, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path, log)
	case ".gltf", ".glb":
		return LoadGLTF(path, log)
	default:
		return nil, fmt.Errorf("unsupported model format %q", ext)
	}
}
