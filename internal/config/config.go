// Package config loads the optional settings file of the ies tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ShapeConfig holds defaults for the shape command.
type ShapeConfig struct {
	WebScale             float32 `yaml:"web_scale"`               // 0 picks a scale from the brightest value
	MaxPointsPerPolyline int     `yaml:"max_points_per_polyline"` // hint passed to lightshape.Params
	Format               string  `yaml:"format"`                  // "summary", "json" or "sexp"
}

// ScaleConfig holds defaults for the scale command.
type ScaleConfig struct {
	OutputSuffix string `yaml:"output_suffix"` // appended to the input name when -o is not given
}

// Config is the top-level structure of config.yaml.
type Config struct {
	Shape ShapeConfig `yaml:"shape"`
	Scale ScaleConfig `yaml:"scale"`
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Shape: ShapeConfig{
			WebScale:             0,
			MaxPointsPerPolyline: 32,
			Format:               "summary",
		},
		Scale: ScaleConfig{
			OutputSuffix: "_scaled",
		},
	}
}

// DefaultPath returns the platform config file location.
func DefaultPath() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: %APPDATA%\OpenTraceIES
		return filepath.Join(appData, "OpenTraceIES", "config.yaml"), nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "opentraceies", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "opentraceies", "config.yaml"), nil
}

// Load reads path on top of the defaults. The file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return decode(path, data)
}

// LoadOptional is Load for the default location: a missing file yields
// the defaults.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return decode(path, data)
}

func decode(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings and fills in zero values.
func (c *Config) Validate() error {
	if c.Shape.WebScale < 0 {
		return fmt.Errorf("shape.web_scale must not be negative, got %g", c.Shape.WebScale)
	}
	if c.Shape.MaxPointsPerPolyline < 2 {
		c.Shape.MaxPointsPerPolyline = 32
	}
	switch c.Shape.Format {
	case "":
		c.Shape.Format = "summary"
	case "summary", "json", "sexp":
	default:
		return fmt.Errorf("unknown shape.format %q", c.Shape.Format)
	}
	return nil
}
