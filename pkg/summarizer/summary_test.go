package summarizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/user/skinview/pkg/mocks"
	"github.com/user/skinview/pkg/orchestrator"
	"github.com/user/skinview/pkg/pipeline"
)

func sampleResults() []orchestrator.JobResult {
	return []orchestrator.JobResult{
		{
			Job:      orchestrator.Job{Kind: orchestrator.KindAvatar, Input: "steve.png", Output: "out/steve.png"},
			Layout:   pipeline.TextureLayout{Ratio: 1, Layer: pipeline.LayerDouble, Width: 64, Height: 64},
			Width:    128,
			Height:   128,
			Bytes:    2048,
			Duration: 12 * time.Millisecond,
		},
		{
			Job:      orchestrator.Job{Name: "alex|slim", Kind: orchestrator.KindPreview, Input: "alex.png", Output: "out/alex.png"},
			Duration: 3 * time.Millisecond,
			Err:      errors.New("malformed texture: 10x10"),
		},
	}
}

func TestBuilder_WithResults(t *testing.T) {
	s := NewBuilder().
		WithSettings(Settings{Workers: 4}).
		WithResults(sampleResults()).
		Build()

	if len(s.Jobs) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(s.Jobs))
	}
	if s.Jobs[0].Name != "steve" || s.Jobs[0].Texture != "64x64 double" {
		t.Errorf("unexpected first entry %+v", s.Jobs[0])
	}
	if !s.Jobs[1].Failed() || s.Jobs[1].Texture != "" {
		t.Errorf("unexpected second entry %+v", s.Jobs[1])
	}

	want := Totals{Jobs: 2, Succeeded: 1, Failed: 1, Bytes: 2048, DurationMs: 15}
	if s.Totals != want {
		t.Errorf("expected totals %+v, got %+v", want, s.Totals)
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	s := NewBuilder().WithSettings(Settings{Workers: 4, ConfigPath: "batch.yaml"}).WithResults(sampleResults()).Build()
	s.GeneratedAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	out := NewMarkdownFormatter().Format(s)

	for _, want := range []string{
		"# Render Summary",
		"2024-01-15 10:30:00 UTC",
		"| Jobs | 2 |",
		"| Failed | 1 |",
		"| Workers | 4 |",
		"`batch.yaml`",
		"| steve | avatar | 64x64 double | out/steve.png | 128x128 | 2.0 KB | 12 ms |",
		"| alex\\|slim | preview | - | out/alex.png | failed | - | 3 ms |",
		"## Errors",
		"malformed texture: 10x10",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestMarkdownFormatter_Format_Empty(t *testing.T) {
	out := NewMarkdownFormatter().Format(NewSummary())

	if !strings.Contains(out, "No jobs were run.") {
		t.Errorf("expected empty notice, got\n%s", out)
	}
	if strings.Contains(out, "## Errors") {
		t.Error("unexpected errors section")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(*Summary) string { return "report" }), fs)

	if err := w.Write("out/summary.md", NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if data, ok := fs.GetFile("out/summary.md"); !ok || string(data) != "report" {
		t.Errorf("expected report to be written, got %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(string, []byte) error { return errors.New("disk full") }

	if err := NewWriter(NewMarkdownFormatter(), fs).Write("x.md", NewSummary()); err == nil {
		t.Error("expected error")
	}
}
