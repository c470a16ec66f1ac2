package mocks

import (
	"image"
	"sync"

	"github.com/user/skinview/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	LayoutJSON map[string][]byte
	RegionMaps map[string]image.Image
	Canvases   map[string]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:    enabled,
		LayoutJSON: make(map[string][]byte),
		RegionMaps: make(map[string]image.Image),
		Canvases:   make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayoutJSON(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LayoutJSON[name] = data
	return nil
}

func (m *DebugSink) SaveRegionMap(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RegionMaps[name] = img
	return nil
}

func (m *DebugSink) SaveCanvas(name string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Canvases[name] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)

// NullSink is a no-op implementation of ports.DebugSink.
type NullSink struct{}

func (m *NullSink) Enabled() bool                                    { return false }
func (m *NullSink) SaveLayoutJSON(name string, data []byte) error    { return nil }
func (m *NullSink) SaveRegionMap(name string, img image.Image) error { return nil }
func (m *NullSink) SaveCanvas(name string, img image.Image) error    { return nil }

var _ ports.DebugSink = (*NullSink)(nil)
