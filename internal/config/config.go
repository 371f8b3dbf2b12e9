package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tweakpanel/internal/tweak"
)

// DefaultFile is the file read when no path is given.
const DefaultFile = "tweakpanel.yaml"

// Config represents the optional tweakpanel.yaml configuration.
type Config struct {
	Step      *float64          `yaml:"step,omitempty"`
	Panel     PanelConfig       `yaml:"panel"`
	Sections  SectionsConfig    `yaml:"sections"`
	Baselines string            `yaml:"baselines,omitempty"`
	Sim       map[string]string `yaml:"sim,omitempty"`
}

// PanelConfig contains panel geometry and visibility.
type PanelConfig struct {
	Width  int   `yaml:"width,omitempty"`
	Height int   `yaml:"height,omitempty"`
	Open   *bool `yaml:"open,omitempty"`
}

// SectionsConfig selects which sections are shown.
type SectionsConfig struct {
	Disabled []string `yaml:"disabled,omitempty"`
}

// Resolved contains configuration values with defaults applied.
type Resolved struct {
	Step        float64
	PanelWidth  int
	PanelHeight int
	PanelOpen   bool
	Disabled    []string
	Scope       tweak.BaselineScope
	Sim         map[string]string
}

const (
	defaultPanelWidth  = 420
	defaultPanelHeight = 720
)

// Defaults returns the configuration used when no file is present.
func Defaults() *Resolved {
	return &Resolved{
		Step:        tweak.DefaultStep,
		PanelWidth:  defaultPanelWidth,
		PanelHeight: defaultPanelHeight,
		PanelOpen:   true,
		Scope:       tweak.ScopeInstance,
		Sim:         map[string]string{},
	}
}

// LoadOptional reads the file at path if present. A missing file yields an
// empty configuration.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Resolve applies defaults and validates the configuration.
func (c *Config) Resolve() (*Resolved, error) {
	r := Defaults()
	if c == nil {
		return r, nil
	}
	if c.Step != nil {
		step := *c.Step
		if math.IsNaN(step) || math.IsInf(step, 0) {
			return nil, fmt.Errorf("step must be a finite number (got %v)", step)
		}
		if step < 0 {
			step = 0
		}
		r.Step = step
	}
	if c.Panel.Width < 0 || c.Panel.Height < 0 {
		return nil, fmt.Errorf("panel size cannot be negative (got %dx%d)", c.Panel.Width, c.Panel.Height)
	}
	if c.Panel.Width > 0 {
		r.PanelWidth = c.Panel.Width
	}
	if c.Panel.Height > 0 {
		r.PanelHeight = c.Panel.Height
	}
	if c.Panel.Open != nil {
		r.PanelOpen = *c.Panel.Open
	}
	for _, name := range c.Sections.Disabled {
		name = strings.TrimSpace(name)
		if name != "" {
			r.Disabled = append(r.Disabled, name)
		}
	}
	scope, err := tweak.ParseBaselineScope(strings.TrimSpace(c.Baselines))
	if err != nil {
		return nil, err
	}
	r.Scope = scope
	for k, v := range c.Sim {
		r.Sim[k] = v
	}
	return r, nil
}

// Load reads and resolves the file at path.
func Load(path string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}
