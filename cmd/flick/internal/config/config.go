package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flick/pkg/errors"
	"github.com/go-drift/flick/pkg/scenario"
	"github.com/go-drift/flick/pkg/widgets"
)

// FileName is the optional configuration file looked up in the config directory.
const FileName = "flick.yaml"

// Config represents the optional flick.yaml configuration.
type Config struct {
	Physics scenario.Physics `yaml:"physics"`
	Demo    DemoConfig       `yaml:"demo"`
}

// DemoConfig contains settings for the interactive demo.
type DemoConfig struct {
	Lines int           `yaml:"lines,omitempty"`
	Frame time.Duration `yaml:"frame,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root      string
	Physics   widgets.Physics
	DemoLines int
	DemoFrame time.Duration
}

const (
	defaultDemoLines = 400
	defaultDemoFrame = 16 * time.Millisecond
)

// LoadOptional reads flick.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrap("config.Load", errors.KindConfig, path, fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap("config.Load", errors.KindConfig, path, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}

	return &cfg, nil
}

// Resolve loads flick.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Physics.Validate("physics"); err != nil {
		return nil, errors.Wrap("config.Resolve", errors.KindConfig, filepath.Join(dir, FileName), err)
	}
	if cfg.Demo.Lines < 0 {
		return nil, errors.Wrap("config.Resolve", errors.KindConfig, filepath.Join(dir, FileName),
			&errors.ParseError{Field: "demo.lines", Reason: "must not be negative", Got: cfg.Demo.Lines})
	}
	if cfg.Demo.Frame < 0 {
		return nil, errors.Wrap("config.Resolve", errors.KindConfig, filepath.Join(dir, FileName),
			&errors.ParseError{Field: "demo.frame", Reason: "must not be negative", Got: cfg.Demo.Frame})
	}

	resolved := &Resolved{
		Root:      dir,
		Physics:   cfg.Physics.Apply(widgets.DefaultPhysics()),
		DemoLines: cfg.Demo.Lines,
		DemoFrame: cfg.Demo.Frame,
	}
	if resolved.DemoLines == 0 {
		resolved.DemoLines = defaultDemoLines
	}
	if resolved.DemoFrame == 0 {
		resolved.DemoFrame = defaultDemoFrame
	}
	return resolved, nil
}
