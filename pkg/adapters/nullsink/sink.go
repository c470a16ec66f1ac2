// Package nullsink provides a debug sink that discards everything.
package nullsink

import (
	"image"

	"github.com/user/skinview/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool { return false }

func (s *Sink) SaveLayoutJSON(name string, data []byte) error    { return nil }
func (s *Sink) SaveRegionMap(name string, img image.Image) error { return nil }
func (s *Sink) SaveCanvas(name string, img image.Image) error    { return nil }

var _ ports.DebugSink = (*Sink)(nil)
