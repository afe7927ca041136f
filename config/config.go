package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window       WindowSpec `yaml:"window"`
	Map          MapSpec    `yaml:"map"`
	Passes       []string   `yaml:"passes"`
	Consolidated bool       `yaml:"consolidated"`
	Camera       CameraSpec `yaml:"camera"`
	HotReload    bool       `yaml:"hot_reload"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type MapSpec struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

// CameraSpec is an orthographic camera: the visible box and the camera position.
type CameraSpec struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
}

// LoadSpec reads a YAML file from the config directory on disk, falling back
// to the embedded copy.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadConfig reads and validates the application config.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		filename = "config.yaml"
	}
	cfg, err := LoadSpec[Config](filename)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width <= 0 {
		c.Window.Width = 960
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 540
	}
	if c.Window.Title == "" {
		c.Window.Title = "tilemap"
	}
	if c.Map.Dir == "" {
		c.Map.Dir = "."
	}
	if c.Camera.Right == c.Camera.Left {
		c.Camera.Right = c.Camera.Left + float32(c.Window.Width)
	}
	if c.Camera.Top == c.Camera.Bottom {
		c.Camera.Top = c.Camera.Bottom + float32(c.Window.Height)
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Map.File == "" {
		errs = append(errs, errors.New("map.file is required"))
	}
	if len(c.Passes) == 0 {
		errs = append(errs, errors.New("at least one pass is required"))
	}
	seen := make(map[string]bool, len(c.Passes))
	for _, p := range c.Passes {
		if seen[p] {
			errs = append(errs, fmt.Errorf("pass %q listed twice", p))
		}
		seen[p] = true
	}
	return errors.Join(errs...)
}
