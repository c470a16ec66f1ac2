// Package cape renders the front face of a cape texture on a fixed canvas.
package cape

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/skinview/pkg/blit"
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
)

// Stage renders cape previews.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new cape stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("cape"),
	}
}

// FrontRegion returns the cape front face of a w x h texture.
// On the reference 64x32 layout it is the 11x17 block at the origin.
func FrontRegion(w, h int) image.Rectangle {
	return image.Rect(0, 0, w*11/64, h*17/32)
}

// Execute draws the cape front, stretched to 64x100, centred near the top
// of a transparent 250x166 canvas.
func (s *Stage) Execute(ctx context.Context, input pipeline.CapeInput) (pipeline.RenderResult, error) {
	if input.Texture == nil {
		return pipeline.RenderResult{}, fmt.Errorf("%w: no texture", pipeline.ErrMalformedTexture)
	}

	src := blit.Normalize(input.Texture)
	sr := FrontRegion(src.Rect.Dx(), src.Rect.Dy())
	if sr.Empty() {
		return pipeline.RenderResult{}, fmt.Errorf("%w: cape texture %dx%d is too small",
			pipeline.ErrMalformedTexture, src.Rect.Dx(), src.Rect.Dy())
	}

	dst := blit.NewCanvas(pipeline.CapeCanvasWidth, pipeline.CapeCanvasHeight)
	dr := image.Rect(0, 0, pipeline.CapeFrontWidth, pipeline.CapeFrontHeight).
		Add(image.Pt(pipeline.CapeFrontX, pipeline.CapeFrontY))
	blit.ScaledCopy(dst, dr, src, sr, draw.Src)

	s.logger.Debug("Rendered cape from %dx%d texture", src.Rect.Dx(), src.Rect.Dy())

	return pipeline.RenderResult{Image: dst}, nil
}
