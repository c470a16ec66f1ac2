package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, ports.ImageFormat, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	mu       sync.Mutex
	Canvases []*Canvas
	Encoded  []ports.ImageFormat
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{Width: width, Height: height}
	m.mu.Lock()
	m.Canvases = append(m.Canvases, c)
	m.mu.Unlock()
	return c
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, ports.ImageFormat, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return NewSkin(1, pipeline.LayerDouble), ports.FormatPNG, nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.mu.Lock()
	m.Encoded = append(m.Encoded, format)
	m.mu.Unlock()
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte(format.String()), nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas that records draw calls.
type Canvas struct {
	Width  int
	Height int

	Images  int
	Rects   int
	Strokes int
	Texts   []string
}

func (m *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) { m.Images++ }

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) { m.Rects++ }

func (m *Canvas) DrawRectStroke(x, y, w, h int, c color.Color, strokeWidth float64) { m.Strokes++ }

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.Texts = append(m.Texts, text)
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
}

var _ ports.Canvas = (*Canvas)(nil)
