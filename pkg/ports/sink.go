package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate rendering results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveLayoutJSON saves the resolved texture layout as JSON.
	SaveLayoutJSON(name string, data []byte) error

	// SaveRegionMap saves the region table drawn over the source texture.
	SaveRegionMap(name string, img image.Image) error

	// SaveCanvas saves an unscaled composition canvas before final resizing.
	SaveCanvas(name string, img image.Image) error
}
