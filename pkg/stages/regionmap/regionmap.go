// Package regionmap draws the part table of a skin over its texture.
//
// The map is an authoring aid: every part the compositor reads is outlined
// and numbered, with a legend listing the part names.
package regionmap

import (
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"

	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
	"github.com/user/skinview/pkg/regions"
	"github.com/user/skinview/pkg/stages/layout"
)

// Legend geometry in screen pixels.
const (
	legendWidth  = 220
	legendLine   = 16
	legendMargin = 8
	swatchSize   = 10
)

var (
	background   = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	baseColor    = color.NRGBA{R: 255, G: 220, B: 0, A: 255}
	overlayColor = color.NRGBA{R: 0, G: 200, B: 255, A: 255}
	labelColor   = color.White
)

// Stage renders region maps.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new region map stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("regionmap"),
	}
}

// layoutReport is written to the debug sink next to the map.
type layoutReport struct {
	Model   string                   `json:"model"`
	Layout  pipeline.TextureLayout   `json:"layout"`
	Regions map[string]pipeline.Rect `json:"regions"`
}

// Execute renders the map.
func (s *Stage) Execute(ctx context.Context, input pipeline.RegionMapInput) (pipeline.RegionMapResult, error) {
	result := pipeline.RegionMapResult{}

	if !input.Model.Valid() {
		return result, fmt.Errorf("%w: model %d", pipeline.ErrInvalidParameter, input.Model)
	}
	scale := input.Scale
	if scale == 0 {
		scale = pipeline.DefaultRegionMapScale
	}
	if scale < 0 {
		return result, fmt.Errorf("%w: region map scale %d", pipeline.ErrInvalidParameter, scale)
	}

	tl, err := layout.NewStage().Execute(ctx, input.Texture)
	if err != nil {
		return result, err
	}

	table := regions.Table(input.Model, tl.Layer)
	gridH := tl.Height / tl.Ratio
	mapW := layout.GridUnits * scale
	mapH := gridH * scale
	height := mapH
	if legend := legendMargin*2 + len(table)*legendLine; legend > height {
		height = legend
	}

	bg := input.Background
	if bg == nil {
		bg = background
	}
	canvas := s.renderer.CreateCanvas(mapW+legendWidth, height, bg)
	canvas.DrawImageScaled(input.Texture, 0, 0, mapW, mapH)

	n := 0
	for _, part := range regions.Parts() {
		r, ok := table[part]
		if !ok {
			continue
		}
		n++

		c := baseColor
		if part.Overlay() {
			c = overlayColor
		}
		x, y, w, h := r.X*scale, r.Y*scale, r.W*scale, r.H*scale
		canvas.DrawRectStroke(x, y, w, h, c, 1)
		canvas.DrawText(strconv.Itoa(n), x+w/2, y+h/2, ports.TextStyle{Color: labelColor, Align: ports.AlignCenter})

		ly := legendMargin + (n-1)*legendLine + legendLine/2
		canvas.DrawRect(mapW+legendMargin, ly-swatchSize/2, swatchSize, swatchSize, c)
		canvas.DrawText(fmt.Sprintf("%2d %s", n, part), mapW+legendMargin+swatchSize+6, ly,
			ports.TextStyle{Color: labelColor, Align: ports.AlignLeft})
	}

	result.Image = canvas.ToImage()
	result.Layout = tl
	result.Regions = n

	s.logger.Debug("Region map drawn: %d parts at %dx scale", n, scale)

	if s.sink.Enabled() {
		s.saveDebug(input, result, table)
	}

	return result, nil
}

func (s *Stage) saveDebug(input pipeline.RegionMapInput, result pipeline.RegionMapResult, table map[regions.Part]pipeline.Rect) {
	report := layoutReport{
		Model:   input.Model.String(),
		Layout:  result.Layout,
		Regions: make(map[string]pipeline.Rect, len(table)),
	}
	for part, r := range table {
		report.Regions[part.String()] = r
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err == nil {
		err = s.sink.SaveLayoutJSON(input.Name, data)
	}
	if err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
	}
	if err := s.sink.SaveRegionMap(input.Name, result.Image); err != nil {
		s.logger.Warn("Failed to save debug output: %s", err)
	}
}
