package skinview

import (
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
)

// Options holds the render parameters used by the helpers in this package.
type Options struct {
	AvatarSize  int // Avatar edge length in pixels
	PreviewSize int // Preview height in pixels
	View        pipeline.ViewAngle
	Side        pipeline.Side
	Model       pipeline.ModelVariant
	Gap         int // Gap between preview poses, in grid units

	Logger ports.Logger // nil discards stage logs
}

// OptionsBuilder provides a fluent interface for building Options.
type OptionsBuilder struct {
	options Options
}

// NewOptionsBuilder creates a builder with the default sizes: 128px
// avatars and 256px previews showing both sides.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{
		options: Options{
			AvatarSize:  128,
			PreviewSize: 256,
			Side:        pipeline.SideBoth,
			Gap:         pipeline.DefaultGap,
		},
	}
}

// NewThumbnailOptionsBuilder creates a builder tuned for small listings.
func NewThumbnailOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{
		options: Options{
			AvatarSize:  32,
			PreviewSize: 64,
			Side:        pipeline.SideFront,
			Gap:         pipeline.DefaultGap,
		},
	}
}

// Build returns the final Options. Values are not adjusted; the render
// helpers reject non-positive sizes and negative gaps with
// pipeline.ErrInvalidParameter.
func (b *OptionsBuilder) Build() Options {
	return b.options
}

// WithAvatarSize sets the avatar edge length.
func (b *OptionsBuilder) WithAvatarSize(size int) *OptionsBuilder {
	b.options.AvatarSize = size
	return b
}

// WithPreviewSize sets the preview height.
func (b *OptionsBuilder) WithPreviewSize(size int) *OptionsBuilder {
	b.options.PreviewSize = size
	return b
}

// WithView sets the avatar head face.
func (b *OptionsBuilder) WithView(view pipeline.ViewAngle) *OptionsBuilder {
	b.options.View = view
	return b
}

// WithSide sets which preview poses are drawn.
func (b *OptionsBuilder) WithSide(side pipeline.Side) *OptionsBuilder {
	b.options.Side = side
	return b
}

// WithModel sets the arm width variant.
func (b *OptionsBuilder) WithModel(model pipeline.ModelVariant) *OptionsBuilder {
	b.options.Model = model
	return b
}

// WithGap sets the gap between front and back poses.
func (b *OptionsBuilder) WithGap(gap int) *OptionsBuilder {
	b.options.Gap = gap
	return b
}

// WithLogger routes stage debug logs to logger.
func (b *OptionsBuilder) WithLogger(logger ports.Logger) *OptionsBuilder {
	b.options.Logger = logger
	return b
}
