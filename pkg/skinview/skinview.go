// Package skinview provides one-call helpers to render skin avatars,
// full body previews and cape previews.
//
// Typical use:
//
//	tex, err := skinview.Decode(data)
//	opts := skinview.NewOptionsBuilder().WithModel(pipeline.ModelAlex).Build()
//	img, err := skinview.Preview(ctx, tex, opts)
package skinview

import (
	"context"
	"image"

	"github.com/user/skinview/pkg/adapters/ggrenderer"
	"github.com/user/skinview/pkg/adapters/logger"
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
	"github.com/user/skinview/pkg/stages/avatar"
	"github.com/user/skinview/pkg/stages/cape"
	"github.com/user/skinview/pkg/stages/layout"
	"github.com/user/skinview/pkg/stages/preview"
)

// Decode decodes an encoded texture (PNG, JPEG, GIF, BMP, WebP or TIFF).
func Decode(data []byte) (image.Image, error) {
	img, _, err := ggrenderer.New().DecodeImage(data)
	return img, err
}

// DecodeBase64 decodes a base64 encoded texture, with or without a data URI prefix.
func DecodeBase64(s string) (image.Image, error) {
	data, err := ggrenderer.DecodeBase64(s)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// EncodePNG encodes a rendered image as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	return ggrenderer.New().EncodeImage(img, ports.FormatPNG, 0)
}

// Layout reports the geometry of a texture, or ErrMalformedTexture.
func Layout(texture image.Image) (pipeline.TextureLayout, error) {
	return layout.NewStage().Execute(context.Background(), texture)
}

// Avatar renders an opts.AvatarSize square face.
func Avatar(ctx context.Context, texture image.Image, opts Options) (*image.NRGBA, error) {
	r, err := avatar.NewStage(stageLogger(opts)).Execute(ctx, pipeline.AvatarInput{
		Texture: texture,
		Size:    opts.AvatarSize,
		View:    opts.View,
		Model:   opts.Model,
	})
	if err != nil {
		return nil, err
	}
	return r.Image, nil
}

// Preview renders the full body preview, opts.PreviewSize pixels tall.
func Preview(ctx context.Context, texture image.Image, opts Options) (*image.NRGBA, error) {
	r, err := preview.NewStage(stageLogger(opts)).Execute(ctx, pipeline.PreviewInput{
		Texture: texture,
		Size:    opts.PreviewSize,
		Side:    opts.Side,
		Model:   opts.Model,
		Gap:     opts.Gap,
	})
	if err != nil {
		return nil, err
	}
	return r.Image, nil
}

// Cape renders a cape texture on the fixed 250x166 preview canvas.
func Cape(ctx context.Context, texture image.Image) (*image.NRGBA, error) {
	r, err := cape.NewStage(logger.NewNoop()).Execute(ctx, pipeline.CapeInput{Texture: texture})
	if err != nil {
		return nil, err
	}
	return r.Image, nil
}

func stageLogger(opts Options) ports.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return logger.NewNoop()
}
