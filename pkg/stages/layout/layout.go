// Package layout implements the texture layout resolution stage.
package layout

import (
	"context"
	"fmt"
	"image"

	"github.com/user/skinview/pkg/pipeline"
)

// GridUnits is the width of the canonical skin grid.
const GridUnits = 64

// Stage resolves the ratio and layer mode of a decoded skin.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute resolves the layout of the given texture.
func (s *Stage) Execute(ctx context.Context, texture image.Image) (pipeline.TextureLayout, error) {
	if texture == nil {
		return pipeline.TextureLayout{}, fmt.Errorf("%w: no texture", pipeline.ErrMalformedTexture)
	}
	b := texture.Bounds()
	return ComputeLayout(b.Dx(), b.Dy())
}

// ComputeLayout derives the scale ratio and layer mode from texture dimensions.
// This is exposed as a standalone function for testing and reuse.
//
// The width must be a positive multiple of 64. The height must be either
// 32*ratio (single layer) or 64*ratio (double layer).
func ComputeLayout(width, height int) (pipeline.TextureLayout, error) {
	if width <= 0 || width%GridUnits != 0 {
		return pipeline.TextureLayout{}, fmt.Errorf("%w: width %d is not a positive multiple of %d",
			pipeline.ErrMalformedTexture, width, GridUnits)
	}
	ratio := width / GridUnits

	var layer pipeline.LayerMode
	switch height {
	case 32 * ratio:
		layer = pipeline.LayerSingle
	case 64 * ratio:
		layer = pipeline.LayerDouble
	default:
		return pipeline.TextureLayout{}, fmt.Errorf("%w: height %d does not match width %d (want %d or %d)",
			pipeline.ErrMalformedTexture, height, width, 32*ratio, 64*ratio)
	}

	return pipeline.TextureLayout{
		Ratio:  ratio,
		Layer:  layer,
		Width:  width,
		Height: height,
	}, nil
}
