package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/skinview/pkg/orchestrator"
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.AvatarSize != 128 || cfg.PreviewSize != 256 {
		t.Errorf("unexpected sizes %d/%d", cfg.AvatarSize, cfg.PreviewSize)
	}
	if cfg.Gap != pipeline.DefaultGap {
		t.Errorf("expected gap %d, got %d", pipeline.DefaultGap, cfg.Gap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
avatar_size: 64
gap: 0
model: slim
workers: 3
quality: 75
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AvatarSize != 64 {
		t.Errorf("expected avatar_size 64, got %d", cfg.AvatarSize)
	}
	if cfg.Gap != 0 {
		t.Errorf("explicit zero gap should be kept, got %d", cfg.Gap)
	}
	if cfg.PreviewSize != 256 {
		t.Errorf("unset keys should keep defaults, got preview_size %d", cfg.PreviewSize)
	}

	oc := cfg.ToOrchestratorConfig()
	if oc.Workers != 3 || oc.JPEGQuality != 75 {
		t.Errorf("unexpected orchestrator config %+v", oc)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"avatar_size: -1",
		"gap: -4",
		"workers: -2",
		"model: giant",
		"view: top",
		"side: left",
		"format: svg",
		"region_background: '#12'",
		"avatar_size: [",
	}

	for _, doc := range tests {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%q: expected error", doc)
		}
	}
}

func TestBuildJobs(t *testing.T) {
	cfg, err := Parse([]byte(`
preview_size: 192
side: front
region_background: "#102030"
jobs:
  - kind: avatar
    input: skins/steve.png
    output: out/steve.jpg
    view: back
  - kind: preview
    input: skins/alex.png
    output: out/alex.png
    model: alex
    gap: 0
  - kind: regions
    input: skins/alex.txt
    output: out/alex-regions.png
    base64: true
    format: bmp
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	jobs, err := cfg.BuildJobs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}

	avatar := jobs[0]
	if avatar.Kind != orchestrator.KindAvatar || avatar.Size != 128 || avatar.View != pipeline.ViewBack {
		t.Errorf("unexpected avatar job %+v", avatar)
	}
	if avatar.Format != ports.FormatJPEG {
		t.Errorf("expected format from extension, got %s", avatar.Format)
	}

	preview := jobs[1]
	if preview.Size != 192 || preview.Gap != 0 || preview.Model != pipeline.ModelAlex || preview.Side != pipeline.SideFront {
		t.Errorf("unexpected preview job %+v", preview)
	}

	regions := jobs[2]
	if !regions.Base64 || regions.Format != ports.FormatBMP || regions.Scale != pipeline.DefaultRegionMapScale {
		t.Errorf("unexpected regions job %+v", regions)
	}
	if regions.Background != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("unexpected background %v", regions.Background)
	}
}

func TestBuildJob_FormatFallback(t *testing.T) {
	cfg := Defaults()
	cfg.Format = "gif"

	tests := []struct {
		output string
		want   ports.ImageFormat
	}{
		{"out/face", ports.FormatGIF},
		{"out/face.unknown", ports.FormatGIF},
		{"out/face.tif", ports.FormatTIFF},
	}
	for _, tt := range tests {
		job, err := cfg.BuildJob(JobConfig{Kind: "avatar", Input: "a.png", Output: tt.output})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.output, err)
		}
		if job.Format != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.output, tt.want, job.Format)
		}
	}
}

func TestBuildJobs_Errors(t *testing.T) {
	tests := []JobConfig{
		{Kind: "poster", Input: "a.png", Output: "b.png"},
		{Kind: "avatar", Output: "b.png"},
		{Kind: "avatar", Input: "a.png", Output: "b.png", View: "up"},
		{Kind: "avatar", Input: "a.png", Output: "b.png", Format: "svg"},
	}

	for _, jc := range tests {
		cfg := Defaults()
		cfg.Jobs = []JobConfig{jc}
		if _, err := cfg.BuildJobs(); !errors.Is(err, pipeline.ErrInvalidParameter) {
			t.Errorf("%+v: expected ErrInvalidParameter, got %v", jc, err)
		}
	}
}

func TestLoadFromFile_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skinview.yaml")
	doc := []byte("jobs:\n  - kind: cape\n    input: cape.png\n    output: /tmp/cape-out.png\n")
	if err := os.WriteFile(path, doc, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jobs, err := cfg.BuildJobs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jobs[0].Input != filepath.Join(dir, "cape.png") {
		t.Errorf("expected input relative to the config file, got %s", jobs[0].Input)
	}
	if jobs[0].Output != "/tmp/cape-out.png" {
		t.Errorf("absolute paths should be kept, got %s", jobs[0].Output)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ffffff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"282828", color.NRGBA{R: 0x28, G: 0x28, B: 0x28, A: 255}},
		{"#f0a", color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 255}},
		{"#00000080", color.NRGBA{A: 0x80}},
		{"#ABCDEF", color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 255}},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12345", "#gggggg", "#1234567"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}
