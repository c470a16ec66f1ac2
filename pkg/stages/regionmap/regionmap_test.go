package regionmap

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/user/skinview/pkg/adapters/ggrenderer"
	"github.com/user/skinview/pkg/adapters/logger"
	"github.com/user/skinview/pkg/mocks"
	"github.com/user/skinview/pkg/pipeline"
)

func TestStage_Execute_DrawsEveryPart(t *testing.T) {
	tests := []struct {
		layer pipeline.LayerMode
		parts int
	}{
		{pipeline.LayerSingle, 14},
		{pipeline.LayerDouble, 28},
	}

	for _, tt := range tests {
		t.Run(tt.layer.String(), func(t *testing.T) {
			renderer := &mocks.Renderer{}
			stage := NewStage(renderer, &mocks.NullSink{}, logger.NewNoop())

			result, err := stage.Execute(context.Background(), pipeline.RegionMapInput{
				Texture: mocks.NewSkin(2, tt.layer),
				Model:   pipeline.ModelAlex,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Regions != tt.parts {
				t.Errorf("expected %d regions, got %d", tt.parts, result.Regions)
			}
			if len(renderer.Canvases) != 1 {
				t.Fatalf("expected one canvas, got %d", len(renderer.Canvases))
			}
			c := renderer.Canvases[0]
			if c.Images != 1 || c.Strokes != tt.parts || c.Rects != tt.parts {
				t.Errorf("unexpected draw calls: %d images, %d strokes, %d rects", c.Images, c.Strokes, c.Rects)
			}
			if len(c.Texts) != 2*tt.parts {
				t.Errorf("expected %d labels, got %d", 2*tt.parts, len(c.Texts))
			}
			if c.Width != 64*pipeline.DefaultRegionMapScale+legendWidth {
				t.Errorf("unexpected canvas width %d", c.Width)
			}
		})
	}
}

func TestStage_Execute_WithGG(t *testing.T) {
	stage := NewStage(ggrenderer.New(), &mocks.NullSink{}, logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.RegionMapInput{
		Texture: mocks.NewSkin(1, pipeline.LayerSingle),
		Scale:   4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 14 legend lines need more room than the 128px map.
	wantH := legendMargin*2 + 14*legendLine
	if b := result.Image.Bounds(); b.Dx() != 256+legendWidth || b.Dy() != wantH {
		t.Errorf("expected %dx%d, got %v", 256+legendWidth, wantH, b)
	}
}

func TestStage_Execute_SavesDebugOutput(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage := NewStage(&mocks.Renderer{}, sink, logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.RegionMapInput{
		Name:    "steve",
		Texture: mocks.NewSkin(1, pipeline.LayerDouble),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := sink.RegionMaps["steve"]; !ok {
		t.Error("expected region map to be saved")
	}

	var report struct {
		Model   string                   `json:"model"`
		Regions map[string]pipeline.Rect `json:"regions"`
	}
	if err := json.Unmarshal(sink.LayoutJSON["steve"], &report); err != nil {
		t.Fatalf("invalid layout JSON: %v", err)
	}
	if report.Model != "steve" || len(report.Regions) != 28 {
		t.Errorf("unexpected report: model %q, %d regions", report.Model, len(report.Regions))
	}
	if got := report.Regions["head-front"]; got != (pipeline.Rect{X: 8, Y: 8, W: 8, H: 8}) {
		t.Errorf("unexpected head-front rect %+v", got)
	}
}

func TestStage_Execute_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input pipeline.RegionMapInput
		want  error
	}{
		{"unknown model", pipeline.RegionMapInput{Texture: mocks.NewSkin(1, pipeline.LayerDouble), Model: 5}, pipeline.ErrInvalidParameter},
		{"negative scale", pipeline.RegionMapInput{Texture: mocks.NewSkin(1, pipeline.LayerDouble), Scale: -1}, pipeline.ErrInvalidParameter},
		{"malformed", pipeline.RegionMapInput{Texture: mocks.NewPattern(30, 30)}, pipeline.ErrMalformedTexture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage := NewStage(&mocks.Renderer{}, &mocks.NullSink{}, logger.NewNoop())
			if _, err := stage.Execute(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
