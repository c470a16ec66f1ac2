package mocks

import (
	"image"
	"image/color"

	"github.com/user/skinview/pkg/pipeline"
)

// NewSkin returns an opaque skin texture whose every pixel is unique.
// Pixel (x, y) holds R=x%256, G=y%256, B=100+x/256+16*(y/256).
func NewSkin(ratio int, layer pipeline.LayerMode) *image.NRGBA {
	h := 32 * ratio
	if layer == pipeline.LayerDouble {
		h = 64 * ratio
	}
	return NewPattern(64*ratio, h)
}

// NewPattern returns an opaque w x h image with a unique colour per pixel.
func NewPattern(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, PatternAt(x, y))
		}
	}
	return img
}

// PatternAt returns the colour NewPattern stores at (x, y).
func PatternAt(x, y int) color.NRGBA {
	return color.NRGBA{
		R: uint8(x % 256),
		G: uint8(y % 256),
		B: uint8(100 + x/256 + 16*(y/256)),
		A: 255,
	}
}

// Fill paints r (in pixels) of img with c.
func Fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
