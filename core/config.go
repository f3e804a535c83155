package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = "learngl.toml"

type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
	VSync     bool   `toml:"vsync"`
	Samples   int    `toml:"samples"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     800,
		Height:    600,
		Title:     "LearnOpenGL",
		Resizable: true,
		VSync:     true,
	}
}

// AssetConfig locates textures and models on disk.
type AssetConfig struct {
	Dir   string `toml:"dir"`
	Model string `toml:"model"` // relative to Dir
}

type CameraConfig struct {
	Speed       float32 `toml:"speed"`
	Sensitivity float32 `toml:"sensitivity"`
}

type Config struct {
	LogLevel string       `toml:"log_level"`
	Window   WindowConfig `toml:"window"`
	Assets   AssetConfig  `toml:"assets"`
	Camera   CameraConfig `toml:"camera"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Window:   DefaultWindowConfig(),
		Assets: AssetConfig{
			Dir:   "assets",
			Model: filepath.Join("models", "nanosuit", "nanosuit.obj"),
		},
		Camera: CameraConfig{
			Speed:       2.5,
			Sensitivity: 0.1,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path tries
// DefaultConfigFile and silently keeps the defaults if it does not exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return fmt.Errorf("window samples must not be negative, got %d", c.Window.Samples)
	}
	if c.Camera.Speed < 0 || c.Camera.Sensitivity < 0 {
		return fmt.Errorf("camera speed and sensitivity must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// AssetPath resolves a path relative to the asset directory. Absolute
// paths are returned untouched.
func (c Config) AssetPath(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Assets.Dir, rel)
}
