// Package config loads skinview settings and batch manifests from YAML.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/skinview/pkg/orchestrator"
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
)

// Config represents a skinview configuration file.
type Config struct {
	// Render defaults
	AvatarSize  int    `yaml:"avatar_size"`
	PreviewSize int    `yaml:"preview_size"`
	Gap         int    `yaml:"gap"`
	Model       string `yaml:"model"`
	View        string `yaml:"view"`
	Side        string `yaml:"side"`
	RegionScale int    `yaml:"region_scale"`

	// RegionBackground is the region map backdrop, e.g. "#282828".
	RegionBackground string `yaml:"region_background"`

	// Output
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`

	// Execution
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// Batch
	Jobs []JobConfig `yaml:"jobs"`

	// baseDir resolves relative job paths; set by LoadFromFile.
	baseDir string
}

// JobConfig is one entry of the jobs list. Empty fields inherit the
// top-level defaults.
type JobConfig struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Base64 bool   `yaml:"base64"`
	Size   int    `yaml:"size"`
	View   string `yaml:"view"`
	Side   string `yaml:"side"`
	Model  string `yaml:"model"`
	Gap    *int   `yaml:"gap"`
	Format string `yaml:"format"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		AvatarSize:  128,
		PreviewSize: 256,
		Gap:         pipeline.DefaultGap,
		Model:       "steve",
		View:        "front",
		Side:        "both",
		RegionScale: pipeline.DefaultRegionMapScale,

		Format:  "png",
		Quality: 90,

		Workers:  0,
		LogLevel: "info",

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// Parse parses YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the top-level defaults.
func (c Config) Validate() error {
	if c.AvatarSize <= 0 || c.PreviewSize <= 0 {
		return fmt.Errorf("%w: sizes must be positive", pipeline.ErrInvalidParameter)
	}
	if c.Gap < 0 {
		return fmt.Errorf("%w: gap must not be negative", pipeline.ErrInvalidParameter)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", pipeline.ErrInvalidParameter)
	}
	if _, err := pipeline.ParseModel(c.Model); err != nil {
		return err
	}
	if _, err := pipeline.ParseView(c.View); err != nil {
		return err
	}
	if _, err := pipeline.ParseSide(c.Side); err != nil {
		return err
	}
	if _, err := ports.ParseImageFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", pipeline.ErrInvalidParameter, err)
	}
	if c.RegionBackground != "" {
		if _, err := ParseColor(c.RegionBackground); err != nil {
			return err
		}
	}
	return nil
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		Workers:     c.Workers,
		JPEGQuality: c.Quality,
	}
}

// BuildJobs resolves the jobs list into orchestrator jobs.
func (c Config) BuildJobs() ([]orchestrator.Job, error) {
	jobs := make([]orchestrator.Job, 0, len(c.Jobs))
	for i, jc := range c.Jobs {
		job, err := c.BuildJob(jc)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// BuildJob resolves one job entry against the defaults.
func (c Config) BuildJob(jc JobConfig) (orchestrator.Job, error) {
	kind, err := orchestrator.ParseKind(jc.Kind)
	if err != nil {
		return orchestrator.Job{}, err
	}
	if jc.Input == "" || jc.Output == "" {
		return orchestrator.Job{}, fmt.Errorf("%w: input and output are required", pipeline.ErrInvalidParameter)
	}

	model, err := pipeline.ParseModel(fallback(jc.Model, c.Model))
	if err != nil {
		return orchestrator.Job{}, err
	}
	view, err := pipeline.ParseView(fallback(jc.View, c.View))
	if err != nil {
		return orchestrator.Job{}, err
	}
	side, err := pipeline.ParseSide(fallback(jc.Side, c.Side))
	if err != nil {
		return orchestrator.Job{}, err
	}

	output := c.resolve(jc.Output)
	formatName := jc.Format
	if formatName == "" {
		// The output extension wins over the global default.
		formatName = strings.TrimPrefix(filepath.Ext(output), ".")
		if _, err := ports.ParseImageFormat(formatName); formatName == "" || err != nil {
			formatName = c.Format
		}
	}
	format, err := ports.ParseImageFormat(formatName)
	if err != nil {
		return orchestrator.Job{}, fmt.Errorf("%w: %v", pipeline.ErrInvalidParameter, err)
	}

	size := jc.Size
	if size == 0 {
		size = c.AvatarSize
		if kind == orchestrator.KindPreview {
			size = c.PreviewSize
		}
	}
	gap := c.Gap
	if jc.Gap != nil {
		gap = *jc.Gap
	}
	var background color.Color
	if c.RegionBackground != "" {
		bg, err := ParseColor(c.RegionBackground)
		if err != nil {
			return orchestrator.Job{}, err
		}
		background = bg
	}

	return orchestrator.Job{
		Name:   jc.Name,
		Kind:   kind,
		Input:  c.resolve(jc.Input),
		Output: output,
		Base64: jc.Base64,
		Size:   size,
		View:   view,
		Side:   side,
		Model:  model,
		Gap:    gap,
		Scale:  c.RegionScale,
		Format: format,

		Background: background,
	}, nil
}

func (c Config) resolve(path string) string {
	if c.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.baseDir, path)
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// ParseColor parses a hex colour in #rgb, #rrggbb or #rrggbbaa form.
func ParseColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: colour %q", pipeline.ErrInvalidParameter, hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: colour %q", pipeline.ErrInvalidParameter, hex)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
