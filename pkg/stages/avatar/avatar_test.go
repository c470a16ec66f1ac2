package avatar

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/skinview/pkg/adapters/logger"
	"github.com/user/skinview/pkg/mocks"
	"github.com/user/skinview/pkg/pipeline"
)

var blue = color.NRGBA{B: 255, A: 255}

func newStage() *Stage {
	return NewStage(logger.NewNoop())
}

func TestStage_Execute_OutputIsSquare(t *testing.T) {
	stage := newStage()

	for _, ratio := range []int{1, 2, 4} {
		for _, layer := range []pipeline.LayerMode{pipeline.LayerSingle, pipeline.LayerDouble} {
			for _, size := range []int{1, 7, 64, 100} {
				result, err := stage.Execute(context.Background(), pipeline.AvatarInput{
					Texture: mocks.NewSkin(ratio, layer),
					Size:    size,
					View:    pipeline.ViewFront,
					Model:   pipeline.ModelSteve,
				})
				if err != nil {
					t.Fatalf("ratio %d %s size %d: unexpected error: %v", ratio, layer, size, err)
				}
				b := result.Image.Bounds()
				if b.Dx() != size || b.Dy() != size {
					t.Errorf("ratio %d %s: expected %dx%d, got %dx%d", ratio, layer, size, size, b.Dx(), b.Dy())
				}
			}
		}
	}
}

// TestStage_Execute_HeadWithHat renders a 64x64 double layer skin at 64px:
// every source pixel becomes an 8x8 block, the hat covers its right half.
func TestStage_Execute_HeadWithHat(t *testing.T) {
	skin := mocks.NewSkin(1, pipeline.LayerDouble)
	// Hat: left half transparent, right half opaque blue.
	mocks.Fill(skin, image.Rect(40, 8, 44, 16), color.NRGBA{})
	mocks.Fill(skin, image.Rect(44, 8, 48, 16), blue)

	result, err := newStage().Execute(context.Background(), pipeline.AvatarInput{
		Texture: skin,
		Size:    64,
		View:    pipeline.ViewFront,
		Model:   pipeline.ModelSteve,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			sx, sy := x/8, y/8
			want := mocks.PatternAt(8+sx, 8+sy)
			if sx >= 4 {
				want = blue
			}
			if got := result.Image.NRGBAAt(x, y); got != want {
				t.Fatalf("(%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}

	if result.Layout.Ratio != 1 || result.Layout.Layer != pipeline.LayerDouble {
		t.Errorf("unexpected layout %+v", result.Layout)
	}
}

func TestStage_Execute_HatKeyColourIsTransparent(t *testing.T) {
	black := color.NRGBA{A: 255}
	skin := mocks.NewSkin(2, pipeline.LayerSingle)
	skin.SetNRGBA(63*2, 0, black)
	// Whole front hat painted with the key colour, as legacy editors did.
	mocks.Fill(skin, image.Rect(80, 16, 96, 32), black)

	result, err := newStage().Execute(context.Background(), pipeline.AvatarInput{
		Texture: skin,
		Size:    16,
		View:    pipeline.ViewFront,
		Model:   pipeline.ModelAlex,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := mocks.PatternAt(16+x, 16+y)
			if got := result.Image.NRGBAAt(x, y); got != want {
				t.Fatalf("(%d,%d): black hat bled into avatar: expected %v, got %v", x, y, want, got)
			}
		}
	}

	// The source texture is only read.
	if skin.NRGBAAt(80, 16) != black {
		t.Error("source hat was modified")
	}
}

func TestStage_Execute_Views(t *testing.T) {
	tests := []struct {
		view  pipeline.ViewAngle
		headX int
	}{
		{pipeline.ViewFront, 8},
		{pipeline.ViewLeft, 16},
		{pipeline.ViewRight, 0},
		{pipeline.ViewBack, 24},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			skin := mocks.NewSkin(1, pipeline.LayerDouble)
			// Clear every hat so the head shows through.
			mocks.Fill(skin, image.Rect(32, 0, 64, 16), color.NRGBA{})

			result, err := newStage().Execute(context.Background(), pipeline.AvatarInput{
				Texture: skin,
				Size:    8,
				View:    tt.view,
				Model:   pipeline.ModelSteve,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got, want := result.Image.NRGBAAt(0, 0), mocks.PatternAt(tt.headX, 8); got != want {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestStage_Execute_Idempotent(t *testing.T) {
	stage := newStage()
	input := pipeline.AvatarInput{
		Texture: mocks.NewSkin(2, pipeline.LayerDouble),
		Size:    48,
		View:    pipeline.ViewLeft,
		Model:   pipeline.ModelSteve,
	}

	first, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(first.Image.Pix, second.Image.Pix) {
		t.Error("expected byte-identical output")
	}
}

func TestStage_Execute_Errors(t *testing.T) {
	skin := mocks.NewSkin(1, pipeline.LayerDouble)

	tests := []struct {
		name  string
		input pipeline.AvatarInput
		want  error
	}{
		{"zero size", pipeline.AvatarInput{Texture: skin, Size: 0}, pipeline.ErrInvalidParameter},
		{"negative size", pipeline.AvatarInput{Texture: skin, Size: -8}, pipeline.ErrInvalidParameter},
		{"unknown view", pipeline.AvatarInput{Texture: skin, Size: 8, View: pipeline.ViewAngle(9)}, pipeline.ErrInvalidParameter},
		{"unknown model", pipeline.AvatarInput{Texture: skin, Size: 8, Model: pipeline.ModelVariant(9)}, pipeline.ErrInvalidParameter},
		{"bad width", pipeline.AvatarInput{Texture: mocks.NewPattern(65, 64), Size: 8}, pipeline.ErrMalformedTexture},
		{"bad height", pipeline.AvatarInput{Texture: mocks.NewPattern(64, 40), Size: 8}, pipeline.ErrMalformedTexture},
		{"no texture", pipeline.AvatarInput{Size: 8}, pipeline.ErrMalformedTexture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newStage().Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
