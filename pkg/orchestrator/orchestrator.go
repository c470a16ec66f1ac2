// Package orchestrator runs render jobs end to end: read, decode, render,
// encode and write.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/user/skinview/pkg/adapters/ggrenderer"
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
)

// Kind selects what a job renders.
type Kind int

const (
	KindAvatar Kind = iota
	KindPreview
	KindCape
	KindRegions
)

// String returns the job kind name.
func (k Kind) String() string {
	switch k {
	case KindAvatar:
		return "avatar"
	case KindPreview:
		return "preview"
	case KindCape:
		return "cape"
	case KindRegions:
		return "regions"
	default:
		return "unknown"
	}
}

// ParseKind parses a job kind name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "avatar":
		return KindAvatar, nil
	case "preview":
		return KindPreview, nil
	case "cape":
		return KindCape, nil
	case "regions":
		return KindRegions, nil
	default:
		return 0, fmt.Errorf("%w: unknown job kind %q", pipeline.ErrInvalidParameter, s)
	}
}

// Job describes one texture to render.
type Job struct {
	Name   string // Defaults to the output file name without extension
	Kind   Kind
	Input  string
	Output string
	Base64 bool // Input file holds base64 text

	Size  int
	View  pipeline.ViewAngle
	Side  pipeline.Side
	Model pipeline.ModelVariant
	Gap   int

	// Region map only
	Scale      int
	Background color.Color

	Format ports.ImageFormat
}

// DisplayName returns the job name used in logs and debug output.
func (j Job) DisplayName() string {
	if j.Name != "" {
		return j.Name
	}
	base := filepath.Base(j.Output)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Config contains settings shared by every job.
type Config struct {
	Workers     int // 0 uses runtime.NumCPU
	JPEGQuality int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Workers:     0,
		JPEGQuality: ggrenderer.DefaultJPEGQuality,
	}
}

// JobResult reports the outcome of one job.
type JobResult struct {
	Job      Job
	Layout   pipeline.TextureLayout
	Width    int
	Height   int
	Bytes    int
	Duration time.Duration
	Err      error
}

// Orchestrator wires the render stages to the file system and codecs.
type Orchestrator struct {
	avatarStage  pipeline.Stage[pipeline.AvatarInput, pipeline.RenderResult]
	previewStage pipeline.Stage[pipeline.PreviewInput, pipeline.RenderResult]
	capeStage    pipeline.Stage[pipeline.CapeInput, pipeline.RenderResult]
	regionStage  pipeline.Stage[pipeline.RegionMapInput, pipeline.RegionMapResult]
	renderer     ports.Renderer
	fs           ports.FileSystem
	sink         ports.DebugSink
	logger       ports.Logger
	config       Config
}

// New creates a new Orchestrator.
func New(
	avatarStage pipeline.Stage[pipeline.AvatarInput, pipeline.RenderResult],
	previewStage pipeline.Stage[pipeline.PreviewInput, pipeline.RenderResult],
	capeStage pipeline.Stage[pipeline.CapeInput, pipeline.RenderResult],
	regionStage pipeline.Stage[pipeline.RegionMapInput, pipeline.RegionMapResult],
	renderer ports.Renderer,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
	config Config,
) *Orchestrator {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Orchestrator{
		avatarStage:  avatarStage,
		previewStage: previewStage,
		capeStage:    capeStage,
		regionStage:  regionStage,
		renderer:     renderer,
		fs:           fs,
		sink:         sink,
		logger:       logger,
		config:       config,
	}
}

// Render runs a single job.
func (o *Orchestrator) Render(ctx context.Context, job Job) (JobResult, error) {
	start := time.Now()
	result := JobResult{Job: job}
	name := job.DisplayName()

	texture, err := o.readTexture(job)
	if err != nil {
		o.logger.Error("Failed to read %s: %s", job.Input, err)
		return result, err
	}

	img, layout, err := o.render(ctx, job, name, texture)
	if err != nil {
		o.logger.Error("Failed to render %s: %s", name, err)
		return result, fmt.Errorf("%s stage: %w", job.Kind, err)
	}

	data, err := o.renderer.EncodeImage(img, job.Format, o.config.JPEGQuality)
	if err != nil {
		return result, fmt.Errorf("encode output: %w", err)
	}
	if err := o.fs.WriteFile(job.Output, data); err != nil {
		o.logger.Error("Failed to write output: %s", err)
		return result, fmt.Errorf("write output: %w", err)
	}

	b := img.Bounds()
	result.Layout = layout
	result.Width = b.Dx()
	result.Height = b.Dy()
	result.Bytes = len(data)
	result.Duration = time.Since(start)

	o.logger.Info("Rendered %s %s (%dx%d) to %s", job.Kind, name, result.Width, result.Height, job.Output)
	return result, nil
}

func (o *Orchestrator) readTexture(job Job) (image.Image, error) {
	data, err := o.fs.ReadFile(job.Input)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}
	if job.Base64 {
		if data, err = ggrenderer.DecodeBase64(string(data)); err != nil {
			return nil, fmt.Errorf("%w: %v", pipeline.ErrMalformedTexture, err)
		}
	}
	img, _, err := o.renderer.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pipeline.ErrMalformedTexture, err)
	}
	return img, nil
}

func (o *Orchestrator) render(ctx context.Context, job Job, name string, texture image.Image) (image.Image, pipeline.TextureLayout, error) {
	var (
		r   pipeline.RenderResult
		err error
	)

	switch job.Kind {
	case KindAvatar:
		r, err = o.avatarStage.Execute(ctx, pipeline.AvatarInput{
			Texture: texture,
			Size:    job.Size,
			View:    job.View,
			Model:   job.Model,
		})
	case KindPreview:
		r, err = o.previewStage.Execute(ctx, pipeline.PreviewInput{
			Texture: texture,
			Size:    job.Size,
			Side:    job.Side,
			Model:   job.Model,
			Gap:     job.Gap,
		})
	case KindCape:
		r, err = o.capeStage.Execute(ctx, pipeline.CapeInput{Texture: texture})
	case KindRegions:
		m, err := o.regionStage.Execute(ctx, pipeline.RegionMapInput{
			Name:       name,
			Texture:    texture,
			Model:      job.Model,
			Scale:      job.Scale,
			Background: job.Background,
		})
		if err != nil {
			return nil, pipeline.TextureLayout{}, err
		}
		return m.Image, m.Layout, nil
	default:
		return nil, pipeline.TextureLayout{}, fmt.Errorf("%w: job kind %d", pipeline.ErrInvalidParameter, job.Kind)
	}
	if err != nil {
		return nil, pipeline.TextureLayout{}, err
	}

	if o.sink.Enabled() {
		o.saveDebug(name, r)
	}
	return r.Image, r.Layout, nil
}

func (o *Orchestrator) saveDebug(name string, r pipeline.RenderResult) {
	if r.Layout.Width > 0 {
		if data, err := json.MarshalIndent(r.Layout, "", "  "); err == nil {
			if err := o.sink.SaveLayoutJSON(name, data); err != nil {
				o.logger.Warn("Failed to save debug output: %s", err)
			}
		}
	}
	if r.Canvas != nil {
		if err := o.sink.SaveCanvas(name, r.Canvas); err != nil {
			o.logger.Warn("Failed to save debug output: %s", err)
		}
	}
}

// ExpandJobs replaces every job whose input is a glob pattern with one job
// per matching file. The output of such a job names a directory; each match
// is written there under its own base name with the job format's extension.
// A pattern without matches is an error.
func (o *Orchestrator) ExpandJobs(jobs []Job) ([]Job, error) {
	expanded := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		if !IsPattern(job.Input) {
			expanded = append(expanded, job)
			continue
		}

		matches, err := o.fs.Glob(job.Input)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", job.Input, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: no textures match %s", pipeline.ErrInvalidParameter, job.Input)
		}

		for _, m := range matches {
			j := job
			base := filepath.Base(m)
			stem := strings.TrimSuffix(base, filepath.Ext(base))
			j.Input = m
			j.Output = filepath.Join(job.Output, stem+job.Format.Extension())
			if job.Name != "" {
				j.Name = job.Name + "-" + stem
			}
			expanded = append(expanded, j)
		}
	}
	return expanded, nil
}

// IsPattern reports whether path contains glob metacharacters.
func IsPattern(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

// indexedResult holds a job result with its position in the batch.
type indexedResult struct {
	index  int
	result JobResult
}

// RunBatch renders jobs on a worker pool. A failing job does not stop the
// batch; its error is reported in its JobResult. Results keep input order.
// The returned error is non-nil only when ctx is cancelled.
func (o *Orchestrator) RunBatch(ctx context.Context, jobs []Job) ([]JobResult, error) {
	if len(jobs) == 0 {
		return []JobResult{}, nil
	}

	workers := o.config.Workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	o.logger.Info("Rendering %d jobs with %d workers", len(jobs), workers)

	queue := make(chan int, len(jobs))
	results := make(chan indexedResult, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go o.worker(ctx, &wg, jobs, queue, results)
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]indexedResult, 0, len(jobs))
	for r := range results {
		collected = append(collected, r)
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	out := make([]JobResult, len(jobs))
	done := make([]bool, len(jobs))
	for _, r := range collected {
		out[r.index] = r.result
		done[r.index] = true
	}

	if err := ctx.Err(); err != nil {
		for i, job := range jobs {
			if !done[i] {
				out[i] = JobResult{Job: job, Err: err}
			}
		}
		o.logger.Warn("Batch interrupted")
		return out, err
	}

	failed := 0
	for _, r := range out {
		if r.Err != nil {
			failed++
		}
	}
	o.logger.Info("Batch completed: %d succeeded, %d failed", len(out)-failed, failed)
	return out, nil
}

func (o *Orchestrator) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs []Job,
	queue <-chan int,
	results chan<- indexedResult,
) {
	defer wg.Done()

	for idx := range queue {
		select {
		case <-ctx.Done():
			return
		default:
		}

		r, err := o.Render(ctx, jobs[idx])
		r.Err = err
		results <- indexedResult{index: idx, result: r}
	}
}
