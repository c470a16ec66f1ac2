// Package preview implements the full body preview stage.
package preview

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/user/skinview/pkg/blit"
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
	"github.com/user/skinview/pkg/regions"
	"github.com/user/skinview/pkg/stages/layout"
)

// Stage renders the front and/or back pose of a skin.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new preview stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("preview"),
	}
}

// Execute renders the preview.
//
// The poses are composed at texture resolution on a transparent canvas and
// the whole canvas is scaled once to the output size. The canvas is 32 units
// square for a single side, with the pose centred, or (32+gap) x 32 units
// for both sides.
func (s *Stage) Execute(ctx context.Context, input pipeline.PreviewInput) (pipeline.RenderResult, error) {
	if err := validate(input); err != nil {
		return pipeline.RenderResult{}, err
	}

	tl, err := layout.NewStage().Execute(ctx, input.Texture)
	if err != nil {
		return pipeline.RenderResult{}, err
	}

	src := blit.Normalize(input.Texture)
	r := tl.Ratio

	canvasUnits, frontX, backX := arrange(input.Side, input.Gap)
	canvas := blit.NewCanvas(canvasUnits*r, poseHeight*r)

	if input.Side != pipeline.SideBack {
		drawPose(canvas, src, frontPoses[input.Model][tl.Layer], input.Model, frontX, r)
	}
	if input.Side != pipeline.SideFront {
		drawPose(canvas, src, backPoses[input.Model][tl.Layer], input.Model, backX, r)
	}

	width, height := OutputSize(input.Size, input.Side, input.Gap)
	out := blit.NewCanvas(width, height)
	blit.ScaledCopy(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src)

	s.logger.Debug("Rendered %s preview (%s, %s layer) at %dx%d from %dx%d canvas",
		input.Side, input.Model, tl.Layer, width, height, canvas.Rect.Dx(), canvas.Rect.Dy())

	return pipeline.RenderResult{Image: out, Layout: tl, Canvas: canvas}, nil
}

// OutputSize returns the preview dimensions for a requested size.
// A single side is size x size; both sides add the gap proportionally.
func OutputSize(size int, side pipeline.Side, gap int) (width, height int) {
	if side != pipeline.SideBoth {
		return size, size
	}
	return size * (2*poseWidth + gap) / poseHeight, size
}

func validate(input pipeline.PreviewInput) error {
	if input.Size <= 0 {
		return fmt.Errorf("%w: preview size %d", pipeline.ErrInvalidParameter, input.Size)
	}
	if input.Gap < 0 {
		return fmt.Errorf("%w: gap %d", pipeline.ErrInvalidParameter, input.Gap)
	}
	if !input.Side.Valid() {
		return fmt.Errorf("%w: side %d", pipeline.ErrInvalidParameter, input.Side)
	}
	if !input.Model.Valid() {
		return fmt.Errorf("%w: model %d", pipeline.ErrInvalidParameter, input.Model)
	}
	return nil
}

// arrange returns the canvas width and the pose origins, all in grid units.
func arrange(side pipeline.Side, gap int) (canvas, frontX, backX int) {
	if side == pipeline.SideBoth {
		return 2*poseWidth + gap, 0, poseWidth + gap
	}
	centred := (2*poseWidth - poseWidth) / 2
	return 2 * poseWidth, centred, centred
}

func drawPose(canvas *image.NRGBA, src *image.NRGBA, pose []placement, model pipeline.ModelVariant, originX, ratio int) {
	for _, p := range pose {
		sr := regions.MustLookup(model, p.part)
		dr := pipeline.Rect{X: originX + p.x, Y: p.y, W: sr.W, H: sr.H}.Scale(ratio)
		// Base parts never overlap, so they replace the transparent canvas
		// byte for byte; second layer parts blend over them.
		op := draw.Src
		if p.part.Overlay() {
			op = draw.Over
		}
		if p.mirror {
			blit.MirroredCopy(canvas, dr, src, sr.Scale(ratio), op)
		} else {
			blit.ScaledCopy(canvas, dr, src, sr.Scale(ratio), op)
		}
	}
}
