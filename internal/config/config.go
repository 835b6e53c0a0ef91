package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kjkrol/gltriangle/internal/shader"
	"github.com/kjkrol/gltriangle/pkg/mesh"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Shaders ShadersConfig `yaml:"shaders"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Title             string         `yaml:"title"`
	Width             int            `yaml:"width"`
	Height            int            `yaml:"height"`
	ContextVersion    ContextVersion `yaml:"contextVersion"`
	CoreProfile       *bool          `yaml:"coreProfile,omitempty"`
	ForwardCompatible *bool          `yaml:"forwardCompatible,omitempty"`
}

type ContextVersion struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

type ShadersConfig struct {
	Vertex      string `yaml:"vertex"`
	Fragment    string `yaml:"fragment"`
	FailOnError bool   `yaml:"failOnError,omitempty"`
}

type RenderConfig struct {
	ClearColor []float32 `yaml:"clearColor,flow"`
	Vertices   []float32 `yaml:"vertices,flow,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration the program runs with when no file is
// given.
func Default() Config {
	var c Config
	c.normalize()
	return c
}

// Load reads a YAML configuration from path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() {
	if c.Window.Title == "" {
		c.Window.Title = "OpenGL tutorial"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 720
	}
	if c.Window.Height == 0 {
		c.Window.Height = 480
	}
	if c.Window.ContextVersion == (ContextVersion{}) {
		c.Window.ContextVersion = ContextVersion{Major: 3, Minor: 3}
	}
	if c.Window.CoreProfile == nil {
		c.Window.CoreProfile = boolPtr(true)
	}
	if c.Window.ForwardCompatible == nil {
		c.Window.ForwardCompatible = boolPtr(true)
	}
	if c.Shaders.Vertex == "" {
		c.Shaders.Vertex = shader.DefaultVertexPath
	}
	if c.Shaders.Fragment == "" {
		c.Shaders.Fragment = shader.DefaultFragmentPath
	}
	if len(c.Render.ClearColor) == 0 {
		c.Render.ClearColor = []float32{0.2, 0.2, 0.45, 1.0}
	}
	if len(c.Render.ClearColor) == 3 {
		c.Render.ClearColor = append(c.Render.ClearColor, 1.0)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.ContextVersion.Major < 3 {
		return fmt.Errorf("%w: OpenGL %d.%d is below 3.0", ErrInvalid, c.Window.ContextVersion.Major, c.Window.ContextVersion.Minor)
	}
	if len(c.Render.ClearColor) != 4 {
		return fmt.Errorf("%w: clearColor needs 3 or 4 components, got %d", ErrInvalid, len(c.Render.ClearColor))
	}
	for _, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clearColor component %v outside [0, 1]", ErrInvalid, v)
		}
	}
	if len(c.Render.Vertices) > 0 {
		if err := (mesh.Mesh{Vertices: c.Render.Vertices}).Validate(); err != nil {
			return fmt.Errorf("%w: vertices: %v", ErrInvalid, err)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) ShaderPaths() shader.Paths {
	return shader.Paths{Vertex: c.Shaders.Vertex, Fragment: c.Shaders.Fragment}
}

// Mesh returns the configured vertices, or the default triangle.
func (c Config) Mesh() mesh.Mesh {
	if len(c.Render.Vertices) == 0 {
		return mesh.Triangle()
	}
	return mesh.Mesh{Vertices: c.Render.Vertices}
}

func (c Config) ClearColor() [4]float32 {
	var rgba [4]float32
	copy(rgba[:], c.Render.ClearColor)
	return rgba
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	return level, nil
}

func boolPtr(v bool) *bool {
	return &v
}
