// Package avatar implements the face avatar stage.
package avatar

import (
	"context"
	"fmt"

	"golang.org/x/image/draw"

	"github.com/user/skinview/pkg/blit"
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
	"github.com/user/skinview/pkg/regions"
	"github.com/user/skinview/pkg/stages/layout"
)

// keyPixelX is the grid column sampled for the hat transparency key.
// Legacy editors filled unused hat pixels with the colour found there.
const keyPixelX = 63

// Stage renders a square face, with the hat layer on top.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new avatar stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("avatar"),
	}
}

// Execute renders an input.Size x input.Size avatar.
func (s *Stage) Execute(ctx context.Context, input pipeline.AvatarInput) (pipeline.RenderResult, error) {
	if input.Size <= 0 {
		return pipeline.RenderResult{}, fmt.Errorf("%w: avatar size %d", pipeline.ErrInvalidParameter, input.Size)
	}
	if !input.View.Valid() {
		return pipeline.RenderResult{}, fmt.Errorf("%w: view %d", pipeline.ErrInvalidParameter, input.View)
	}
	if !input.Model.Valid() {
		return pipeline.RenderResult{}, fmt.Errorf("%w: model %d", pipeline.ErrInvalidParameter, input.Model)
	}

	tl, err := layout.NewStage().Execute(ctx, input.Texture)
	if err != nil {
		return pipeline.RenderResult{}, err
	}

	src := blit.Normalize(input.Texture)
	dst := blit.NewCanvas(input.Size, input.Size)

	head := regions.MustLookup(input.Model, regions.Head(input.View)).Scale(tl.Ratio)
	blit.ScaledCopy(dst, dst.Bounds(), src, head, draw.Src)

	// The hat is keyed on a private copy so the source stays untouched.
	hatRect := regions.MustLookup(input.Model, regions.Hat(input.View)).Scale(tl.Ratio)
	hat := blit.Crop(src, hatRect)
	key := blit.ColorAt(src, keyPixelX*tl.Ratio, 0)
	keyed := blit.KeyTransparency(hat, key)
	blit.ScaledCopy(dst, dst.Bounds(), hat, hat.Bounds(), draw.Over)

	s.logger.Debug("Rendered %s avatar at %dpx (ratio %d, %d hat pixels keyed)",
		input.View, input.Size, tl.Ratio, keyed)

	return pipeline.RenderResult{Image: dst, Layout: tl}, nil
}
