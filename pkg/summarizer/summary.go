// Package summarizer builds reports of batch render runs.
package summarizer

import (
	"time"

	"github.com/user/skinview/pkg/orchestrator"
)

// Summary contains the outcome of a batch run.
type Summary struct {
	GeneratedAt time.Time
	Settings    Settings
	Jobs        []JobEntry
	Totals      Totals
}

// Settings contains the batch configuration.
type Settings struct {
	ConfigPath string
	Workers    int
}

// JobEntry is one row of the report.
type JobEntry struct {
	Name       string
	Kind       string
	Input      string
	Output     string
	Width      int
	Height     int
	Texture    string // e.g. "64x64 double"
	Bytes      int
	DurationMs int64
	Error      string
}

// Failed reports whether the job failed.
func (e JobEntry) Failed() bool {
	return e.Error != ""
}

// Totals aggregates the job entries.
type Totals struct {
	Jobs       int
	Succeeded  int
	Failed     int
	Bytes      int64
	DurationMs int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSettings sets the batch settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithResults appends one entry per job result.
func (b *Builder) WithResults(results []orchestrator.JobResult) *Builder {
	for _, r := range results {
		b.AddResult(r)
	}
	return b
}

// AddResult appends one job result and updates the totals.
func (b *Builder) AddResult(r orchestrator.JobResult) *Builder {
	entry := JobEntry{
		Name:       r.Job.DisplayName(),
		Kind:       r.Job.Kind.String(),
		Input:      r.Job.Input,
		Output:     r.Job.Output,
		Width:      r.Width,
		Height:     r.Height,
		Bytes:      r.Bytes,
		DurationMs: r.Duration.Milliseconds(),
	}
	if r.Layout.Width > 0 {
		entry.Texture = formatLayout(r.Layout.Width, r.Layout.Height, r.Layout.Layer.String())
	}
	if r.Err != nil {
		entry.Error = r.Err.Error()
	}

	t := &b.summary.Totals
	t.Jobs++
	if entry.Failed() {
		t.Failed++
	} else {
		t.Succeeded++
		t.Bytes += int64(entry.Bytes)
	}
	t.DurationMs += entry.DurationMs

	b.summary.Jobs = append(b.summary.Jobs, entry)
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
