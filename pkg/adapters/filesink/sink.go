// Package filesink writes debug artifacts under a directory, one
// subdirectory per job.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/user/skinview/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveLayoutJSON writes <name>/layout.json.
func (s *Sink) SaveLayoutJSON(name string, data []byte) error {
	return s.fs.WriteFile(s.path(name, "layout.json"), data)
}

// SaveRegionMap writes <name>/regions.png.
func (s *Sink) SaveRegionMap(name string, img image.Image) error {
	return s.savePNG(s.path(name, "regions.png"), img)
}

// SaveCanvas writes <name>/canvas.png.
func (s *Sink) SaveCanvas(name string, img image.Image) error {
	return s.savePNG(s.path(name, "canvas.png"), img)
}

func (s *Sink) savePNG(path string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return s.fs.WriteFile(path, data)
}

// path keeps job names from escaping the base directory.
func (s *Sink) path(name, file string) string {
	name = strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(name)
	if name == "" {
		name = "default"
	}
	return filepath.Join(s.baseDir, name, file)
}

var _ ports.DebugSink = (*Sink)(nil)
