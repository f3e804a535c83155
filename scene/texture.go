package scene

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture holds CPU-side pixel data for a 2D texture.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major). Unless the
	// texture was loaded flipped, the first row is the top of the image.
	Pixels []byte
	// HasAlpha is set when any pixel is not fully opaque. Such textures are
	// sampled with clamped edges so borders do not bleed.
	HasAlpha bool
}

// LoadTexture reads an image file and returns it as RGBA8. With flipY the
// rows are reversed so the first row is the bottom of the image, matching
// OpenGL's texture origin.
func LoadTexture(path string, flipY bool) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	tex, err := DecodeTexture(path, f, flipY)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return tex, nil
}

// DecodeTexture decodes any registered image format from r.
func DecodeTexture(name string, r io.Reader, flipY bool) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return textureFromImage(name, img, flipY), nil
}

func decodeImageBytes(name string, data []byte) (*Texture, error) {
	return DecodeTexture(name, bytes.NewReader(data), false)
}

func textureFromImage(name string, img image.Image, flipY bool) *Texture {
	var rgba *image.RGBA
	if flipY {
		rgba = transform.FlipV(img)
	} else {
		rgba = clone.AsRGBA(img)
	}
	b := rgba.Bounds()
	return &Texture{
		Name:     name,
		Width:    b.Dx(),
		Height:   b.Dy(),
		Pixels:   rgba.Pix,
		HasAlpha: !rgba.Opaque(),
	}
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0-255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:     name,
		Width:    1,
		Height:   1,
		Pixels:   []byte{r, g, b, a},
		HasAlpha: a != 255,
	}
}

// MissingTexture is the bright placeholder used when a texture file cannot
// be loaded.
func MissingTexture(name string) *Texture {
	return NewSolidTexture(name, 255, 0, 255, 255)
}
